package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	debug      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}

	cmd := &cobra.Command{
		Use:          "lotto645",
		Short:        "Lotto 6/45 ticket generator",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&f.configPath, "config", ".config.yaml", "config file")
	cmd.PersistentFlags().BoolVar(&f.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(
		newTUICmd(f),
		newBotCmd(f),
		newExportCmd(f),
	)
	return cmd
}

// app is the wiring shared by every subcommand.
type app struct {
	cfg      *Config
	loc      *Locale
	gen      *Generator
	exporter *Exporter
}

func newApp(f *rootFlags) (*app, error) {
	cfg, err := loadConfig(f.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	loc, err := NewLocale(cfg.Locale)
	if err != nil {
		return nil, err
	}
	r, err := NewRenderer(RendererConfig{
		Layout:      DefaultLayout,
		Locale:      loc,
		FontRegular: cfg.Export.FontRegular,
		FontBold:    cfg.Export.FontBold,
		QR:          cfg.Export.QR,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	gen := NewGenerator()
	return &app{
		cfg:      cfg,
		loc:      loc,
		gen:      gen,
		exporter: NewExporter(r, gen, cfg.Export.Dir),
	}, nil
}

func newTUICmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Interactive terminal ticket",
		RunE: func(_ *cobra.Command, _ []string) error {
			flush, err := setupLogger(f.debug, "lotto645.log")
			if err != nil {
				return err
			}
			defer flush()

			a, err := newApp(f)
			if err != nil {
				return err
			}
			return RunTUI(TUIDeps{
				Gen:      a.gen,
				Exporter: a.exporter,
				Locale:   a.loc,
				Delay:    a.cfg.GenerateDelay,
			})
		},
	}
}

func newBotCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Run the Telegram bot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			flush, err := setupLogger(f.debug, "")
			if err != nil {
				return err
			}
			defer flush()

			a, err := newApp(f)
			if err != nil {
				return err
			}
			if err := a.cfg.validateBot(); err != nil {
				return err
			}

			var lottoAI *LottoAI
			if a.cfg.AI.Enabled {
				lottoAI, err = NewLottoAI(cmd.Context(), a.cfg.AI.Model)
				if err != nil {
					return fmt.Errorf("failed to create LottoAI: %w", err)
				}
			}

			log.Info("Starting Telegram bot...")
			tb, err := NewTelegramBot(BotDeps{
				AI:       lottoAI,
				Gen:      a.gen,
				Exporter: a.exporter,
				Locale:   a.loc,
				Delay:    a.cfg.GenerateDelay,
			}, a.cfg.TelegramAPIToken, a.cfg.ChatIDs...)
			if err != nil {
				return err
			}
			defer tb.Close()

			go tb.Listen()

			log.Info("Telegram bot started. Listening for commands...")
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			<-ctx.Done()
			log.Info("Received shutdown signal. Shutting down...")
			return nil
		},
	}
}
