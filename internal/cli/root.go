// Package cli wires the commentgen terminal client: the interactive form
// and headless subcommands that share one Generation Client.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"codeberg.org/commentgen/server/internal/client"
	"codeberg.org/commentgen/server/internal/languages"
	"codeberg.org/commentgen/server/internal/logger"
	"codeberg.org/commentgen/server/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	endpoint    string
	downloadDir string
	logFile     string
	file        string
	language    string
}

// runs the root command with ctx
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// builds the commentgen command tree
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "commentgen",
		Short: "Add clear, function-level comments to source code",
		Long: `Paste code, pick a language and get it back with comments.

Without a subcommand an interactive form opens in the terminal.

Examples:
  commentgen                                  # interactive form
  commentgen --file main.go --language golang # open with code prefilled
  commentgen generate main.py -l python       # headless, prints to stdout
  cat util.c | commentgen generate -l c -o util_commented.c`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.endpoint, "endpoint", "", "comments API base URL (default $COMMENTGEN_API_ENDPOINT or the built-in URL)")
	rootCmd.Flags().StringVar(&opts.downloadDir, "download-dir", ".", "directory downloads are saved to")
	rootCmd.Flags().StringVar(&opts.logFile, "log-file", "", "write logs to this file while the form is open")
	rootCmd.Flags().StringVarP(&opts.file, "file", "f", "", "prefill the editor with this file")
	rootCmd.Flags().StringVarP(&opts.language, "language", "l", "", "initial language (detected from --file when omitted)")

	rootCmd.AddCommand(newGenerateCommand(&opts.endpoint))
	rootCmd.AddCommand(newLanguagesCommand())
	rootCmd.AddCommand(newVersionCommand(&opts.endpoint))

	return rootCmd
}

func runInteractive(opts *rootOptions) error {
	closeLog, err := redirectLogs(opts.logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	model := tui.New(tui.Options{
		Generator: client.New(opts.endpoint),
		Saver:     tui.DirSaver{Dir: opts.downloadDir},
	})

	if err := prefill(model, opts); err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running commentgen: %w", err)
	}

	return nil
}

// loads --file and --language into the form before it opens
func prefill(model *tui.Model, opts *rootOptions) error {
	if opts.language != "" {
		if !languages.Valid(opts.language) {
			return unsupportedLanguageError(opts.language)
		}
		model.SetLanguage(languages.Language(opts.language))
	}

	if opts.file == "" {
		return nil
	}

	data, err := os.ReadFile(opts.file)
	if err != nil {
		return fmt.Errorf("reading %s: %w", opts.file, err)
	}

	model.SetCode(string(data))

	if opts.language == "" {
		if lang, ok := languages.Detect(string(data)); ok {
			model.SetLanguage(lang)
		}
	}

	return nil
}

// the form owns the terminal, so logs go to a file or nowhere
func redirectLogs(path string) (func(), error) {
	if path == "" {
		logger.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	logger.SetOutput(f)

	return func() { _ = f.Close() }, nil
}
