package tui

import (
	"strings"
	"time"

	"codeberg.org/commentgen/server/internal/client"
	"codeberg.org/commentgen/server/internal/languages"
	"codeberg.org/commentgen/server/internal/logger"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// text shown in the output pane when generation fails
const GenerationFailedText = "Error generating comments. Please try again."

const (
	notificationVisibleFor = 2700 * time.Millisecond
	notificationLeavingFor = 300 * time.Millisecond
)

const (
	defaultWidth  = 100
	defaultHeight = 40
	inputHeight   = 10
)

const inputPlaceholder = "def add(a, b):\n    return a + b\n\nfunction hello(name) {\n  return `Hello ${name}`;\n}"

// returns a new comment generator UI in its initial state
func New(opts Options) *Model {
	ta := textarea.New()
	ta.Placeholder = inputPlaceholder
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		session:   initialSession(),
		generator: opts.Generator,
		clipboard: opts.Clipboard,
		saver:     opts.Saver,
		input:     ta,
		spinner:   sp,
		help:      help.New(),
	}

	if m.clipboard == nil {
		m.clipboard = SystemClipboard{}
	}

	if m.saver == nil {
		m.saver = DirSaver{Dir: "."}
	}

	m.resize(defaultWidth, defaultHeight)

	return m
}

func initialSession() Session {
	return Session{
		SourceCode: "",
		Language:   languages.Default,
		Output:     "",
	}
}

// returns a copy of the current session state
func (m *Model) Session() Session {
	s := m.session
	if s.Notification != nil {
		n := *s.Notification
		s.Notification = &n
	}

	return s
}

// replaces the code in the editor
func (m *Model) SetCode(code string) {
	m.input.SetValue(code)
	m.session.SourceCode = m.input.Value()
}

// selects the language used for the next submission
func (m *Model) SetLanguage(lang languages.Language) {
	if languages.Valid(string(lang)) {
		m.session.Language = lang
	}
}

func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, keys.Submit):
			return m, m.submit()

		case key.Matches(msg, keys.Copy):
			return m, m.copyOutput()

		case key.Matches(msg, keys.Download):
			return m, m.downloadOutput()

		case key.Matches(msg, keys.New):
			m.reset()
			return m, nil

		case key.Matches(msg, keys.NextLanguage):
			m.session.Language = m.session.Language.Next()
			m.refreshOutput()
			return m, nil

		case key.Matches(msg, keys.PrevLanguage):
			m.session.Language = m.session.Language.Prev()
			m.refreshOutput()
			return m, nil

		case key.Matches(msg, keys.Detect):
			lang, ok := languages.Detect(m.session.SourceCode)
			if !ok {
				return m, m.notify(NotificationError, "Could not detect language")
			}
			m.session.Language = lang
			m.refreshOutput()
			return m, nil

		case key.Matches(msg, keys.ScrollUp, keys.ScrollDown):
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case client.GenerationResultMsg:
		m.session.Output = msg.Response.CommentedCode
		m.session.IsLoading = false
		m.outputFailed = false
		m.refreshOutput()
		return m, nil

	case client.GenerationErrorMsg:
		logger.ErrorErr(msg.Err, "error generating comments",
			"language", m.session.Language,
		)

		m.session.Output = GenerationFailedText
		m.session.IsLoading = false
		m.outputFailed = true
		m.refreshOutput()
		return m, m.notify(NotificationError, "Failed to generate comments")

	case copyResultMsg:
		if msg.err != nil {
			logger.ErrorErr(msg.err, "failed to copy")
			return m, m.notify(NotificationError, "Failed to copy to clipboard")
		}
		return m, m.notify(NotificationSuccess, "Copied to clipboard!")

	case downloadResultMsg:
		if msg.err != nil {
			logger.ErrorErr(msg.err, "failed to download", "filename", msg.filename)
			return m, m.notify(NotificationError, "Failed to download file")
		}
		logger.Debug("output downloaded", "path", msg.path)
		return m, m.notify(NotificationSuccess, "Downloaded "+msg.filename)

	case notificationLeavingMsg:
		n := m.session.Notification
		if n == nil || n.ID != msg.id {
			return m, nil
		}

		n.Leaving = true
		id := msg.id
		return m, tea.Tick(notificationLeavingFor, func(time.Time) tea.Msg {
			return notificationClearMsg{id: id}
		})

	case notificationClearMsg:
		if n := m.session.Notification; n != nil && n.ID == msg.id {
			m.session.Notification = nil
		}
		return m, nil

	case spinner.TickMsg:
		if !m.session.IsLoading {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.session.SourceCode = m.input.Value()

	return m, cmd
}

// reports whether a submission would be accepted right now
func (m *Model) canSubmit() bool {
	return strings.TrimSpace(m.session.SourceCode) != "" && !m.session.IsLoading
}

// starts a generation for the current code and language
func (m *Model) submit() tea.Cmd {
	if !m.canSubmit() || m.generator == nil {
		return nil
	}

	m.session.IsLoading = true

	return tea.Batch(
		m.generator.GenerateCmd(m.session.SourceCode, string(m.session.Language)),
		m.spinner.Tick,
	)
}

// copies the output to the clipboard
func (m *Model) copyOutput() tea.Cmd {
	output := m.session.Output
	if output == "" {
		return nil
	}

	cb := m.clipboard
	return func() tea.Msg {
		return copyResultMsg{err: cb.WriteAll(output)}
	}
}

// saves the output as commented_code.<ext>
func (m *Model) downloadOutput() tea.Cmd {
	output := m.session.Output
	if output == "" {
		return nil
	}

	filename := languages.DownloadFilename(string(m.session.Language))
	saver := m.saver
	return func() tea.Msg {
		path, err := saver.Save(filename, []byte(output))
		return downloadResultMsg{filename: filename, path: path, err: err}
	}
}

// clears code and output and restores the default language
func (m *Model) reset() {
	m.input.Reset()
	m.session.SourceCode = ""
	m.session.Output = ""
	m.session.Language = languages.Default
	m.outputFailed = false
	m.refreshOutput()
}

// shows a toast and schedules it to fade out
func (m *Model) notify(kind NotificationKind, message string) tea.Cmd {
	m.lastNotificationID++
	id := m.lastNotificationID

	m.session.Notification = &Notification{
		ID:      id,
		Message: message,
		Kind:    kind,
	}

	return tea.Tick(notificationVisibleFor, func(time.Time) tea.Msg {
		return notificationLeavingMsg{id: id}
	})
}
