package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/esimov/m3/color"
	"github.com/esimov/m3/config"
	"github.com/esimov/m3/internal/logger"
)

const helpBanner = `
┌┬┐┌─┐
│││ ─┤
┴ ┴└─┘

Material Design 3 theme and widgets for Gio.
`

type rootFlags struct {
	config   string
	logLevel string
	logHuman bool
}

// themeFlags are shared by the commands that derive a scheme.
type themeFlags struct {
	seed string
	dark bool
}

func (f *themeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.seed, "seed", config.DefaultSeed, "Seed color (#rrggbb, #aarrggbb or 0xaarrggbb)")
	cmd.Flags().BoolVar(&f.dark, "dark", false, "Use the dark scheme")
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "m3",
		Short:         "Material Design 3 theme and widgets for Gio",
		Long:          helpBanner,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.config, "config", "", "Settings file (.yaml, .yml or .toml)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&flags.logHuman, "log-human", false, "Human readable log output")

	cmd.AddCommand(newGalleryCmd(flags))
	cmd.AddCommand(newPaletteCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// settings loads the settings file, if any, and applies the flags the user
// set on top of it.
func settings(cmd *cobra.Command, root *rootFlags, theme *themeFlags) (config.Config, error) {
	cfg := config.Default()
	if root.config != "" {
		loaded, err := config.Load(root.config)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if theme != nil {
		if flags.Changed("seed") {
			cfg.Theme.Seed = theme.seed
		}
		if flags.Changed("dark") {
			cfg.Theme.Mode = color.Light.String()
			if theme.dark {
				cfg.Theme.Mode = color.Dark.String()
			}
		}
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = root.logLevel
	}
	if flags.Changed("log-human") {
		cfg.Log.Human = root.logHuman
	}

	if _, err := color.ParseARGB(cfg.Theme.Seed); err != nil {
		return config.Config{}, fmt.Errorf("invalid seed %q: %w", cfg.Theme.Seed, err)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newLogger builds the logger described by cfg, writing to the command's
// error stream.
func newLogger(cmd *cobra.Command, cfg config.Config) (*zerolog.Logger, error) {
	log, err := logger.New(logger.Options{
		Level:         cfg.Log.Level,
		HumanReadable: cfg.Log.Human,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	return log, nil
}

// scheme derives the scheme selected by cfg.
func scheme(cfg config.Config) (color.Schemes, color.Mode, error) {
	seed, err := cfg.Seed()
	if err != nil {
		return color.Schemes{}, 0, err
	}
	mode, err := cfg.Mode()
	if err != nil {
		return color.Schemes{}, 0, err
	}
	return color.Derive(seed), mode, nil
}
