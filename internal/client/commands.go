package client

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// sent when a generation request succeeds
type GenerationResultMsg struct {
	Response Response
}

// sent when a generation request fails
type GenerationErrorMsg struct {
	Err error
}

// returns a tea.Cmd that sends a single generation request
func (c *Client) GenerateCmd(code, language string) tea.Cmd {
	return func() tea.Msg {
		resp, err := c.Generate(context.Background(), code, language)
		if err != nil {
			return GenerationErrorMsg{Err: err}
		}

		return GenerationResultMsg{Response: *resp}
	}
}
