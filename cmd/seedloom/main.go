package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/seedloom/seedloom/core/seed"
	"github.com/seedloom/seedloom/internal/config"
	game_log "github.com/seedloom/seedloom/internal/log"
	"github.com/seedloom/seedloom/internal/ui"
)

var (
	flagConfig   string
	flagSeed     string
	flagMode     string
	flagTempo    int
	flagLogLevel string
)

// logRecorder reports lesson progress to the log. It stands in whenever no
// classroom backend is attached.
type logRecorder struct{ logger *game_log.Logger }

func (r logRecorder) RecordInteraction(lessonID, alias string) {
	r.logger.Infof("[PROGRESS] %s/%s: interaction batch recorded", lessonID, alias)
}

func (r logRecorder) RecordPostReflectionText(lessonID, alias, text string) {
	r.logger.Infof("[PROGRESS] %s/%s: reflection (%d chars)", lessonID, alias, len(text))
}

func (r logRecorder) MarkLessonComplete(lessonID, alias string) {
	r.logger.Infof("[PROGRESS] %s/%s: lesson complete", lessonID, alias)
}

var rootCmd = &cobra.Command{
	Use:   "seedloom",
	Short: "Interactive seed visualization and sonification",
	Long: `Seedloom turns mathematical digit sequences into interactive visual
and sonic scenes: a rotating helix, symmetric paint, a particle field,
a guided ritual flow, tone bars, and a parameter wizard.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "path to a YAML settings file")
	rootCmd.Flags().StringVar(&flagSeed, "seed", "", "starting seed (pi, phi, euler, root2)")
	rootCmd.Flags().StringVar(&flagMode, "mode", "", "starting mode (helix, paint, field, flow, bars, wizard)")
	rootCmd.Flags().IntVar(&flagTempo, "tempo", 0, "playback tempo in BPM")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "log level (debug, info, warn, error)")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if flagSeed != "" {
		if _, ok := seed.Lookup(seed.ID(flagSeed)); !ok {
			return fmt.Errorf("unknown seed %q", flagSeed)
		}
		cfg.Seed = seed.ID(flagSeed)
	}
	if flagTempo != 0 {
		cfg.Tempo = flagTempo
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	cfg.Clamp()

	logger := game_log.New(os.Stdout, game_log.LevelFromString(cfg.LogLevel))
	logger.Infof("[MAIN] seed=%s tempo=%d harmony=%d", cfg.Seed, cfg.Tempo, cfg.Harmony)

	app := ui.NewApp(cfg, logRecorder{logger}, logger, flagMode)

	ebiten.SetWindowSize(cfg.WindowW, cfg.WindowH)
	ebiten.SetWindowTitle("Seedloom")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(app)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
