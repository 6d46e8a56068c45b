package main

import (
	"os"

	"gioui.org/app"
	"gioui.org/unit"
	"github.com/spf13/cobra"

	"github.com/esimov/m3"
	"github.com/esimov/m3/edit"
	"github.com/esimov/m3/utils"
)

type galleryFlags struct {
	theme           themeFlags
	systemClipboard bool
	width, height   int
}

func newGalleryCmd(root *rootFlags) *cobra.Command {
	flags := &galleryFlags{}

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Open a window showing every widget",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := settings(cmd, root, &flags.theme)
			if err != nil {
				return err
			}
			log, err := newLogger(cmd, cfg)
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

			th := m3.NewTheme(seed, mode)
			th.Log = log
			if flags.systemClipboard {
				cb := edit.SystemClipboard{Log: log}
				if cb.Available() {
					th.Clipboard = cb
				} else {
					log.Warn().Msg("no system clipboard found, using the window clipboard")
				}
			}

			g := m3.NewGallery(th, m3.GalleryOptions{
				Width:    flags.width,
				Height:   flags.height,
				MaxLen:   cfg.TextField.MaxLen,
				FontSize: unit.Sp(cfg.TextField.FontSize),
			})
			go func() {
				if err := g.Run(); err != nil {
					cmd.PrintErrln(utils.DecorateText(err.Error(), utils.ErrorMessage))
					os.Exit(1)
				}
				os.Exit(0)
			}()
			app.Main()
			return nil
		},
	}

	flags.theme.register(cmd)
	cmd.Flags().BoolVar(&flags.systemClipboard, "system-clipboard", false, "Copy to the operating system clipboard directly")
	cmd.Flags().IntVar(&flags.width, "width", 480, "Window width")
	cmd.Flags().IntVar(&flags.height, "height", 720, "Window height")
	return cmd
}
