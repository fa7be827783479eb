package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"codeberg.org/commentgen/server/internal/client"
	"codeberg.org/commentgen/server/internal/languages"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
)

var errNoInput = errors.New("no code to comment: pass a file or pipe code on stdin")

func newGenerateCommand(endpoint *string) *cobra.Command {
	var language string
	var output string

	cmd := &cobra.Command{
		Use:   "generate [file]",
		Short: "Comment a file or stdin without opening the form",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !languages.Valid(language) {
				return unsupportedLanguageError(language)
			}

			code, err := readCode(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			if strings.TrimSpace(code) == "" {
				return errNoInput
			}

			resp, err := client.New(*endpoint).Generate(cmd.Context(), code, language)
			if err != nil {
				return fmt.Errorf("generating comments: %w", err)
			}

			return writeOutput(cmd.OutOrStdout(), output, resp.CommentedCode)
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", string(languages.Default), "language of the code")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the commented code to this file instead of stdout")

	return cmd
}

// reads from the named file, or from stdin when it is not a terminal
func readCode(stdin io.Reader, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), nil
	}

	if f, ok := stdin.(*os.File); ok && term.IsTerminal(f.Fd()) {
		return "", errNoInput
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}

	return string(data), nil
}

func writeOutput(stdout io.Writer, path, commented string) error {
	if path == "" {
		_, err := fmt.Fprintln(stdout, commented)
		return err
	}

	if err := os.WriteFile(path, []byte(commented), 0o644); err != nil { //nolint:gosec // G306: user output file
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}

func unsupportedLanguageError(lang string) error {
	ids := make([]string, 0, len(languages.All()))
	for _, l := range languages.All() {
		ids = append(ids, string(l))
	}

	return fmt.Errorf("unsupported language %q (choose one of: %s)", lang, strings.Join(ids, ", "))
}
