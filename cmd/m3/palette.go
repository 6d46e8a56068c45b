package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/esimov/m3/color"
	"github.com/esimov/m3/internal/swatch"
	"github.com/esimov/m3/internal/tui"
	"github.com/esimov/m3/utils"
)

type paletteFlags struct {
	theme  themeFlags
	png    string
	scale  float64
	labels bool
	plain  bool
}

func newPaletteCmd(root *rootFlags) *cobra.Command {
	flags := &paletteFlags{}

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Print the color roles derived from a seed",
		Example: `  m3 palette --seed "#6750a4"
  m3 palette --seed 0xff00897b --dark --png scheme.png --scale 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := settings(cmd, root, &flags.theme)
			if err != nil {
				return err
			}
			log, err := newLogger(cmd, cfg)
			if err != nil {
				return err
			}
			schemes, mode, err := scheme(cfg)
			if err != nil {
				return err
			}
			s := schemes.Select(mode)
			log.Debug().
				Str("seed", schemes.Seed.String()).
				Str("mode", mode.String()).
				Msg("scheme derived")

			out := cmd.OutOrStdout()
			if flags.plain || !isTerminal(out) {
				fmt.Fprint(out, tui.Plain(s))
			} else {
				fmt.Fprint(out, tui.Table(s))
			}

			if flags.png == "" {
				return nil
			}
			opts := swatch.DefaultOptions
			opts.Scale = flags.scale
			opts.Labels = flags.labels
			return export(cmd, s, flags.png, opts)
		},
	}

	flags.theme.register(cmd)
	cmd.Flags().StringVar(&flags.png, "png", "", "Export a swatch sheet (.png, .jpg or .bmp)")
	cmd.Flags().Float64Var(&flags.scale, "scale", 1, "Swatch sheet scale")
	cmd.Flags().BoolVar(&flags.labels, "labels", true, "Write role names on the swatch sheet")
	cmd.Flags().BoolVar(&flags.plain, "plain", false, "Print without colors")

	cmd.AddCommand(newDiffCmd(root))
	cmd.AddCommand(newBrowseCmd(root))
	return cmd
}

// export renders the swatch sheet of s into path while a spinner runs on
// the error stream.
func export(cmd *cobra.Command, s *color.Scheme, path string, opts swatch.Options) error {
	errOut := cmd.ErrOrStderr()
	tty := isTerminal(errOut)

	spinner := utils.NewSpinner(utils.DecorateText("⚡ Rendering swatch sheet...", utils.StatusMessage), 100*time.Millisecond, tty)
	spinner.SetWriter(errOut)

	// The spinner hides the cursor; give it back on interrupt.
	defer onInterrupt(spinner.RestoreCursor, os.Exit)()

	start := time.Now()
	if tty {
		spinner.Start()
	}
	err := swatch.Save(swatch.Render(s, opts), path)
	if err != nil {
		spinner.StopMsg = utils.DecorateText("✘ Export failed\n", utils.ErrorMessage)
		spinner.Stop()
		return err
	}
	spinner.StopMsg = utils.DecorateText(fmt.Sprintf("✔ Saved %s in %s\n", path, utils.FormatTime(time.Since(start))), utils.SuccessMessage)
	if tty {
		spinner.Stop()
	} else {
		fmt.Fprint(errOut, spinner.StopMsg)
	}
	return nil
}

// onInterrupt calls restore then exit(1) when the process is interrupted,
// until the returned stop function is called. stop waits for the watcher to
// return.
func onInterrupt(restore func(), exit func(int)) (stop func()) {
	sig := make(chan os.Signal, 1)
	done := make(chan struct{})
	exited := make(chan struct{})
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		defer close(exited)
		select {
		case <-sig:
			restore()
			exit(1)
		case <-done:
		}
	}()
	return func() {
		signal.Stop(sig)
		close(done)
		<-exited
	}
}

type diffFlags struct {
	theme   themeFlags
	against string
}

func newDiffCmd(root *rootFlags) *cobra.Command {
	flags := &diffFlags{}

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Compare the schemes of two seeds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := settings(cmd, root, &flags.theme)
			if err != nil {
				return err
			}
			against, err := color.ParseARGB(flags.against)
			if err != nil {
				return fmt.Errorf("invalid seed %q: %w", flags.against, err)
			}
			schemes, mode, err := scheme(cfg)
			if err != nil {
				return err
			}
			other := color.Derive(against)
			fmt.Fprint(cmd.OutOrStdout(), tui.Diff(schemes.Select(mode), other.Select(mode)))
			return nil
		},
	}

	flags.theme.register(cmd)
	cmd.Flags().StringVar(&flags.against, "against", "", "Seed color to compare with")
	_ = cmd.MarkFlagRequired("against")
	return cmd
}

func newBrowseCmd(root *rootFlags) *cobra.Command {
	flags := &themeFlags{}

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Explore the scheme interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := settings(cmd, root, flags)
			if err != nil {
				return err
			}
			seed, err := cfg.Seed()
			if err != nil {
				return err
			}
			mode, err := cfg.Mode()
			if err != nil {
				return err
			}
			m, err := tea.NewProgram(tui.NewBrowser(seed, mode),
				tea.WithAltScreen(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			).Run()
			if err != nil {
				return fmt.Errorf("running browser: %w", err)
			}
			if b, ok := m.(tui.Browser); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", b.Seed(), b.Mode())
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
