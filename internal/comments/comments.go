package comments

import (
	"context"
	"fmt"
	"strings"

	"codeberg.org/commentgen/server/internal/llm"
)

func New(generator llm.TextGenerator) *Service {
	return &Service{generator: generator}
}

// Comment asks the model to annotate code written in language and returns the
// cleaned result.
func (s *Service) Comment(ctx context.Context, language, code string) (*Result, error) {
	resp, err := s.generator.GenerateText(ctx, llm.TextGenerationRequest{
		SystemPrompt: systemPrompt,
		Messages: []llm.Message{
			{Role: "user", Content: buildUserPrompt(language, code)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate comments: %w", err)
	}

	return &Result{
		CommentedCode: CleanOutput(resp.Text),
		Model:         s.generator.Model(),
		Usage:         resp.Usage,
	}, nil
}

// CleanOutput removes a markdown fence wrapping the whole response. Anything
// else is only trimmed.
func CleanOutput(output string) string {
	trimmed := strings.TrimSpace(output)

	if strings.HasPrefix(trimmed, "```") && strings.HasSuffix(trimmed, "```") {
		lines := strings.Split(trimmed, "\n")
		if len(lines) < 2 {
			return ""
		}

		return strings.Join(lines[1:len(lines)-1], "\n")
	}

	return trimmed
}
