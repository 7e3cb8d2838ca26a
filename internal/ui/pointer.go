package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	game_log "github.com/seedloom/seedloom/internal/log"
)

// ContactID identifies one contact. Touches use their ebiten touch ID; the
// mouse occupies a reserved slot so it multiplexes like any other contact.
type ContactID int64

const mouseContact ContactID = -1

// Session is the per-contact state, created on contact-start and destroyed
// on contact-end. Owned by the active mode's input pass; any session may
// appear or disappear at any time without disturbing the others.
type Session struct {
	ID             ContactID
	X, Y           float64 // surface-local, clamped
	PrevX, PrevY   float64
	StartX, StartY float64
	Started        time.Time
}

// Age is the time since contact-start.
func (s *Session) Age(now time.Time) time.Duration { return now.Sub(s.Started) }

// Strength stands in for contact pressure: it ramps from a light touch to
// full strength over the first 900ms of the hold.
func (s *Session) Strength(now time.Time) float64 {
	held := s.Age(now).Seconds() / 0.9
	if held > 1 {
		held = 1
	}
	return 0.55 + 0.45*held
}

// DragDelta is the movement since the previous frame.
func (s *Session) DragDelta() (dx, dy float64) { return s.X - s.PrevX, s.Y - s.PrevY }

type EventKind int

const (
	ContactBegin EventKind = iota
	ContactMove
	ContactEnd
)

// Event reports one session transition from a Gather pass. For ContactEnd
// the session has already been removed from the map but remains readable.
type Event struct {
	Kind EventKind
	S    *Session
}

// Pointers maintains the authoritative session map. Drag and pinch deltas
// are derived by callers from the sessions themselves.
type Pointers struct {
	sessions map[ContactID]*Session
	logger   *game_log.Logger
	now      func() time.Time
}

func NewPointers(logger *game_log.Logger) *Pointers {
	return &Pointers{
		sessions: map[ContactID]*Session{},
		logger:   logger,
		now:      time.Now,
	}
}

// Count returns the number of live sessions.
func (p *Pointers) Count() int { return len(p.sessions) }

// Get returns the session for id, if present.
func (p *Pointers) Get(id ContactID) (*Session, bool) {
	s, ok := p.sessions[id]
	return s, ok
}

// Each visits every live session.
func (p *Pointers) Each(fn func(*Session)) {
	for _, s := range p.sessions {
		fn(s)
	}
}

// Two returns two arbitrary distinct sessions for pinch math.
func (p *Pointers) Two() (a, b *Session, ok bool) {
	for _, s := range p.sessions {
		if a == nil {
			a = s
			continue
		}
		return a, s, true
	}
	return nil, nil, false
}

// DropAll destroys every session, as on mode teardown.
func (p *Pointers) DropAll() {
	p.sessions = map[ContactID]*Session{}
}

// Gather reads the current frame's input state, reconciles the session map
// and returns the transitions. Unmatched move sources are ignored; contacts
// that vanished produce ContactEnd.
func (p *Pointers) Gather(surf *Surface) []Event {
	var events []Event
	seen := map[ContactID]bool{}

	if isMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := cursorPosition()
		events = p.track(mouseContact, mx, my, surf, seen, events)
	}
	for _, tid := range touchIDs() {
		tx, ty := touchPosition(tid)
		events = p.track(ContactID(tid), tx, ty, surf, seen, events)
	}

	for id, s := range p.sessions {
		if !seen[id] {
			delete(p.sessions, id)
			events = append(events, Event{Kind: ContactEnd, S: s})
			if p.logger != nil {
				p.logger.Debugf("[POINTER] end id=%d after %s", id, s.Age(p.now()))
			}
		}
	}
	return events
}

func (p *Pointers) track(id ContactID, cx, cy int, surf *Surface, seen map[ContactID]bool, events []Event) []Event {
	seen[id] = true
	x, y := surf.Clamp(float64(cx), float64(cy))
	if s, ok := p.sessions[id]; ok {
		moved := x != s.X || y != s.Y
		s.PrevX, s.PrevY = s.X, s.Y
		s.X, s.Y = x, y
		if moved {
			events = append(events, Event{Kind: ContactMove, S: s})
		}
		return events
	}
	s := &Session{
		ID: id, X: x, Y: y,
		PrevX: x, PrevY: y,
		StartX: x, StartY: y,
		Started: p.now(),
	}
	p.sessions[id] = s
	if p.logger != nil {
		p.logger.Debugf("[POINTER] begin id=%d at (%.0f,%.0f)", id, x, y)
	}
	return append(events, Event{Kind: ContactBegin, S: s})
}
