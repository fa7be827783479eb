package tui

import (
	"fmt"
	"strings"

	"codeberg.org/commentgen/server/internal/languages"
	"codeberg.org/commentgen/server/internal/logger"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const (
	headerTitle       = "AI Code Comment Generator"
	headerSubtitle    = "Paste code → get clear, function-level comments."
	outputPlaceholder = "Generated comments will appear here."
	outputLoading     = "Generating comments..."
)

// lays out the editor and output pane for a new terminal size
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	inner := max(width-panelStyle.GetHorizontalFrameSize(), 20)

	m.input.SetWidth(inner)
	m.input.SetHeight(inputHeight)

	// header, language row, button, toast, help and panel borders
	chrome := inputHeight + 14
	outputHeight := max(height-chrome, 5)

	m.viewport.Width = inner
	m.viewport.Height = outputHeight
	m.help.Width = width

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(inner),
	)
	if err != nil {
		logger.ErrorErr(err, "failed to create output renderer")
		m.renderer = nil
	} else {
		m.renderer = renderer
	}

	m.refreshOutput()
}

// re-renders the output into the viewport
func (m *Model) refreshOutput() {
	m.viewport.SetContent(m.renderOutput())
}

func (m *Model) renderOutput() string {
	output := m.session.Output
	if output == "" {
		return ""
	}

	if m.outputFailed {
		return errorOutputStyle.Render(output)
	}

	if m.renderer == nil {
		return output
	}

	fence := codeFence(output)
	md := fmt.Sprintf("%s%s\n%s\n%s", fence, m.session.Language.Fence(), output, fence)
	rendered, err := m.renderer.Render(md)
	if err != nil {
		logger.ErrorErr(err, "failed to render output")
		return output
	}

	return strings.Trim(rendered, "\n")
}

// returns a backtick fence longer than any backtick run in code,
// so fences inside the output cannot close the block
func codeFence(code string) string {
	longest, run := 0, 0
	for _, r := range code {
		if r != '`' {
			run = 0
			continue
		}

		run++
		longest = max(longest, run)
	}

	return strings.Repeat("`", max(3, longest+1))
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Your Code"))
	b.WriteString("\n")
	b.WriteString(panelStyle.Render(m.input.View()))
	b.WriteString("\n")

	b.WriteString(m.languageView())
	b.WriteString("\n\n")

	b.WriteString(m.buttonView())
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Commented Code"))
	b.WriteString("\n")
	b.WriteString(panelStyle.Render(m.outputView()))
	b.WriteString("\n")

	b.WriteString(m.notificationView())
	b.WriteString("\n")

	b.WriteString(m.help.View(keys))

	return b.String()
}

func (m *Model) headerView() string {
	return lipgloss.JoinHorizontal(lipgloss.Center,
		logoStyle.Render("//"),
		" ",
		titleStyle.Render(headerTitle),
		"  ",
		subtitleStyle.Render(headerSubtitle),
	)
}

func (m *Model) languageView() string {
	parts := []string{labelStyle.Render("Language ")}
	for _, lang := range languages.All() {
		if lang == m.session.Language {
			parts = append(parts, languageSelectedStyle.Render(lang.Label()))
			continue
		}
		parts = append(parts, languageStyle.Render(lang.Label()))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) buttonView() string {
	if m.session.IsLoading {
		return buttonDisabledStyle.Render(m.spinner.View() + " Generating...")
	}

	if !m.canSubmit() {
		return buttonDisabledStyle.Render("Generate Comments")
	}

	return buttonStyle.Render("Generate Comments")
}

func (m *Model) outputView() string {
	placeholder := placeholderStyle.
		Width(m.viewport.Width).
		Height(m.viewport.Height)

	if m.session.IsLoading && m.session.Output == "" {
		return placeholder.Render(m.spinner.View() + " " + outputLoading)
	}

	if m.session.Output == "" {
		return placeholder.Render(outputPlaceholder)
	}

	return m.viewport.View()
}

func (m *Model) notificationView() string {
	n := m.session.Notification
	if n == nil {
		return ""
	}

	if n.Leaving {
		return toastLeavingStyle.Render(n.Message)
	}

	if n.Kind == NotificationError {
		return toastErrorStyle.Render("✗ " + n.Message)
	}

	return toastSuccessStyle.Render("✓ " + n.Message)
}
