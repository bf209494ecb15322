package main

import (
	"fmt"
	"os"

	"github.com/blackcoderx/postdoc/pkg/docgen"
	"github.com/blackcoderx/postdoc/pkg/render"
	"github.com/blackcoderx/postdoc/pkg/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	previewWidth int
	previewStyle string
)

func init() {
	previewCmd.Flags().StringVarP(&envFile, "env", "e", "", "Environment file to substitute into the collection")
	previewCmd.Flags().IntVarP(&previewWidth, "width", "w", 100, "Wrap output at this column")
	previewCmd.Flags().StringVar(&previewStyle, "style", "", "Glamour style (dark, light, notty; default picks from the terminal)")
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview <collection.json>",
	Short: "Print a summary of the documentation in the terminal",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runPreview(cmd, args[0]); err != nil {
			ui.Error(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func runPreview(cmd *cobra.Command, collectionPath string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	g, err := newGenerator(cfg, cfg.Logger(os.Stderr))
	if err != nil {
		return err
	}

	bundle, err := g.Prepare(docgen.Options{
		CollectionPath:  collectionPath,
		EnvironmentPath: envFile,
		Title:           cfg.Title,
	})
	if err != nil {
		return err
	}

	style := previewStyle
	if style == "" && !term.IsTerminal(int(os.Stdout.Fd())) {
		style = "notty"
	}
	out, err := render.Preview(bundle, render.PreviewOptions{Width: previewWidth, Style: style})
	if err != nil {
		ui.Warn(cmd.ErrOrStderr(), "%v, showing plain markdown", err)
		fmt.Fprint(cmd.OutOrStdout(), render.PreviewMarkdown(bundle))
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
