package tui

import (
	"codeberg.org/commentgen/server/internal/languages"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

// issues generation requests; *client.Client satisfies it
type Generator interface {
	GenerateCmd(code, language string) tea.Cmd
}

// writes text to the system clipboard
type Clipboard interface {
	WriteAll(text string) error
}

// persists downloaded output and returns where it was written
type Saver interface {
	Save(filename string, content []byte) (string, error)
}

// dependencies for a new UI
type Options struct {
	Generator Generator
	Clipboard Clipboard // defaults to the system clipboard
	Saver     Saver     // defaults to the working directory
}

// all mutable form state for the current session
type Session struct {
	SourceCode   string
	Language     languages.Language
	Output       string
	IsLoading    bool
	Notification *Notification
}

// kind of transient toast
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

// a transient toast shown below the output pane
type Notification struct {
	ID      uint64
	Message string
	Kind    NotificationKind
	Leaving bool
}

// main TUI application model
type Model struct {
	session Session

	generator Generator
	clipboard Clipboard
	saver     Saver

	input    textarea.Model
	viewport viewport.Model
	spinner  spinner.Model
	help     help.Model
	renderer *glamour.TermRenderer

	width        int
	height       int
	outputFailed bool // output holds the generation failure text

	lastNotificationID uint64
}

// sent when a toast should start fading out
type notificationLeavingMsg struct {
	id uint64
}

// sent when a toast should be removed
type notificationClearMsg struct {
	id uint64
}

// sent when a clipboard write finishes
type copyResultMsg struct {
	err error
}

// sent when a download finishes
type downloadResultMsg struct {
	filename string
	path     string
	err      error
}
