package cli

import (
	"fmt"

	"codeberg.org/commentgen/server/internal/languages"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newLanguagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List supported languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), renderLanguages())
			return err
		},
	}
}

func renderLanguages() string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"ID", "Name", "Download"})

	for _, lang := range languages.All() {
		name := lang.Label()
		if lang == languages.Default {
			name += " (default)"
		}
		tw.AppendRow(table.Row{string(lang), name, languages.DownloadFilename(string(lang))})
	}

	return tw.Render()
}
