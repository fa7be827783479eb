package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"codeberg.org/commentgen/server/internal/client"
	"codeberg.org/commentgen/server/internal/languages"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type generateCall struct {
	code     string
	language string
}

type fakeGenerator struct {
	calls []generateCall
}

func (g *fakeGenerator) GenerateCmd(code, language string) tea.Cmd {
	g.calls = append(g.calls, generateCall{code: code, language: language})
	return func() tea.Msg { return nil }
}

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

type failingSaver struct{}

func (failingSaver) Save(string, []byte) (string, error) {
	return "", errors.New("disk full")
}

func newTestModel(t *testing.T) (*Model, *fakeGenerator, *fakeClipboard) {
	t.Helper()

	gen := &fakeGenerator{}
	cb := &fakeClipboard{}
	m := New(Options{
		Generator: gen,
		Clipboard: cb,
		Saver:     DirSaver{Dir: t.TempDir()},
	})

	return m, gen, cb
}

func press(m *Model, k tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: k})
	return cmd
}

func TestNew_InitialState(t *testing.T) {
	m, _, _ := newTestModel(t)

	s := m.Session()
	assert.Empty(t, s.SourceCode)
	assert.Equal(t, languages.JavaScript, s.Language)
	assert.Empty(t, s.Output)
	assert.False(t, s.IsLoading)
	assert.Nil(t, s.Notification)
}

func TestSubmit_IgnoresBlankCode(t *testing.T) {
	for _, code := range []string{"", "   ", "\n\t \n"} {
		m, gen, _ := newTestModel(t)
		m.SetCode(code)

		cmd := press(m, tea.KeyCtrlS)

		assert.Nil(t, cmd)
		assert.Empty(t, gen.calls)
		assert.False(t, m.Session().IsLoading)
	}
}

func TestSubmit_SendsCodeAndLanguage(t *testing.T) {
	m, gen, _ := newTestModel(t)
	m.SetCode("def add(a, b): return a + b")
	m.SetLanguage(languages.Python)

	cmd := press(m, tea.KeyCtrlS)

	require.NotNil(t, cmd)
	require.Len(t, gen.calls, 1)
	assert.Equal(t, "def add(a, b): return a + b", gen.calls[0].code)
	assert.Equal(t, "python", gen.calls[0].language)
	assert.True(t, m.Session().IsLoading)
}

func TestSubmit_RejectedWhileLoading(t *testing.T) {
	m, gen, _ := newTestModel(t)
	m.SetCode("x = 1")

	press(m, tea.KeyCtrlS)
	cmd := press(m, tea.KeyCtrlS)

	assert.Nil(t, cmd)
	assert.Len(t, gen.calls, 1)
}

func TestGenerationResult_StoresOutputVerbatim(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.SetCode("x = 1")
	press(m, tea.KeyCtrlS)

	m.Update(client.GenerationResultMsg{
		Response: client.Response{CommentedCode: "// set x\nx = 1\n"},
	})

	s := m.Session()
	assert.Equal(t, "// set x\nx = 1\n", s.Output)
	assert.False(t, s.IsLoading)
	assert.Nil(t, s.Notification)
}

func TestGenerationResult_EmptyOutput(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.SetCode("x = 1")
	press(m, tea.KeyCtrlS)

	m.Update(client.GenerationResultMsg{})

	assert.Empty(t, m.Session().Output)
	assert.False(t, m.Session().IsLoading)
}

func TestGenerationError_ShowsFailureText(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.SetCode("x = 1")
	press(m, tea.KeyCtrlS)

	_, cmd := m.Update(client.GenerationErrorMsg{
		Err: &client.RequestError{StatusCode: 500, Body: "boom"},
	})

	s := m.Session()
	assert.Equal(t, GenerationFailedText, s.Output)
	assert.False(t, s.IsLoading)
	require.NotNil(t, s.Notification)
	assert.Equal(t, NotificationError, s.Notification.Kind)
	assert.NotNil(t, cmd)

	// can submit again after a failure
	assert.NotNil(t, press(m, tea.KeyCtrlS))
}

func TestReset_RestoresDefaults(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.SetCode("int main() {}")
	m.SetLanguage(languages.C)
	m.Update(client.GenerationResultMsg{Response: client.Response{CommentedCode: "// main\nint main() {}"}})

	press(m, tea.KeyCtrlN)

	s := m.Session()
	assert.Empty(t, s.SourceCode)
	assert.Empty(t, s.Output)
	assert.Equal(t, languages.JavaScript, s.Language)
}

func TestLanguageCycling(t *testing.T) {
	m, _, _ := newTestModel(t)

	press(m, tea.KeyTab)
	assert.Equal(t, languages.Golang, m.Session().Language)

	press(m, tea.KeyTab)
	assert.Equal(t, languages.C, m.Session().Language)

	press(m, tea.KeyShiftTab)
	press(m, tea.KeyShiftTab)
	assert.Equal(t, languages.JavaScript, m.Session().Language)
}

func TestDetect_NoMatch(t *testing.T) {
	m, _, _ := newTestModel(t)

	cmd := press(m, tea.KeyCtrlL)

	assert.NotNil(t, cmd)
	assert.Equal(t, languages.JavaScript, m.Session().Language)
	require.NotNil(t, m.Session().Notification)
	assert.Equal(t, NotificationError, m.Session().Notification.Kind)
}

func TestCopy_NoOutputIsNoop(t *testing.T) {
	m, _, cb := newTestModel(t)

	cmd := press(m, tea.KeyCtrlY)

	assert.Nil(t, cmd)
	assert.Empty(t, cb.text)
	assert.Nil(t, m.Session().Notification)
}

func TestCopy_WritesOutput(t *testing.T) {
	m, _, cb := newTestModel(t)
	m.Update(client.GenerationResultMsg{Response: client.Response{CommentedCode: "// hi"}})

	cmd := press(m, tea.KeyCtrlY)
	require.NotNil(t, cmd)

	m.Update(cmd())

	assert.Equal(t, "// hi", cb.text)
	require.NotNil(t, m.Session().Notification)
	assert.Equal(t, NotificationSuccess, m.Session().Notification.Kind)
	assert.Equal(t, "Copied to clipboard!", m.Session().Notification.Message)
}

func TestCopy_ClipboardFailure(t *testing.T) {
	m, _, cb := newTestModel(t)
	cb.err = errors.New("no clipboard utility")
	m.Update(client.GenerationResultMsg{Response: client.Response{CommentedCode: "// hi"}})

	cmd := press(m, tea.KeyCtrlY)
	require.NotNil(t, cmd)
	m.Update(cmd())

	require.NotNil(t, m.Session().Notification)
	assert.Equal(t, NotificationError, m.Session().Notification.Kind)
}

func TestDownload_NoOutputIsNoop(t *testing.T) {
	m, _, _ := newTestModel(t)

	assert.Nil(t, press(m, tea.KeyCtrlO))
}

func TestDownload_WritesFileWithLanguageExtension(t *testing.T) {
	dir := t.TempDir()
	m := New(Options{
		Generator: &fakeGenerator{},
		Clipboard: &fakeClipboard{},
		Saver:     DirSaver{Dir: dir},
	})
	m.SetLanguage(languages.Python)
	m.Update(client.GenerationResultMsg{Response: client.Response{CommentedCode: "# add\nx = 1"}})

	cmd := press(m, tea.KeyCtrlO)
	require.NotNil(t, cmd)
	m.Update(cmd())

	data, err := os.ReadFile(filepath.Join(dir, "commented_code.py"))
	require.NoError(t, err)
	assert.Equal(t, "# add\nx = 1", string(data))

	require.NotNil(t, m.Session().Notification)
	assert.Equal(t, NotificationSuccess, m.Session().Notification.Kind)
}

func TestDownload_SaveFailure(t *testing.T) {
	m := New(Options{Generator: &fakeGenerator{}, Clipboard: &fakeClipboard{}, Saver: failingSaver{}})
	m.Update(client.GenerationResultMsg{Response: client.Response{CommentedCode: "x"}})

	cmd := press(m, tea.KeyCtrlO)
	require.NotNil(t, cmd)
	m.Update(cmd())

	require.NotNil(t, m.Session().Notification)
	assert.Equal(t, NotificationError, m.Session().Notification.Kind)
}

func TestCodeFence(t *testing.T) {
	assert.Equal(t, "```", codeFence("x = 1"))
	assert.Equal(t, "```", codeFence("a `b` c"))
	assert.Equal(t, "````", codeFence("# ```\n```"))
	assert.Equal(t, "``````", codeFence("`````"))
}

func TestOutputPane_KeepsEmbeddedFences(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.SetLanguage(languages.Python)

	output := "# Example usage:\n# ```\n```\nprint('after_fence')"
	m.Update(client.GenerationResultMsg{Response: client.Response{CommentedCode: output}})

	assert.Equal(t, output, m.Session().Output)

	pane := ansi.Strip(m.viewport.View())
	for _, line := range []string{"# Example usage:", "# ```", "print('after_fence')"} {
		assert.Contains(t, pane, line)
	}

	// the bare fence line survives as its own line
	found := false
	for _, line := range strings.Split(pane, "\n") {
		if strings.TrimSpace(line) == "```" {
			found = true
		}
	}
	assert.True(t, found, "bare ``` line missing from output pane")
}

func TestNotification_Timings(t *testing.T) {
	assert.Equal(t, 2700*time.Millisecond, notificationVisibleFor)
	assert.Equal(t, 300*time.Millisecond, notificationLeavingFor)
}

func TestNotification_Lifecycle(t *testing.T) {
	m, _, _ := newTestModel(t)

	m.notify(NotificationSuccess, "first")
	id := m.Session().Notification.ID

	_, cmd := m.Update(notificationLeavingMsg{id: id})
	assert.NotNil(t, cmd)
	assert.True(t, m.Session().Notification.Leaving)

	m.Update(notificationClearMsg{id: id})
	assert.Nil(t, m.Session().Notification)
}

func TestNotification_StaleTimersIgnored(t *testing.T) {
	m, _, _ := newTestModel(t)

	m.notify(NotificationSuccess, "first")
	stale := m.Session().Notification.ID
	m.notify(NotificationError, "second")

	_, cmd := m.Update(notificationLeavingMsg{id: stale})
	assert.Nil(t, cmd)
	assert.False(t, m.Session().Notification.Leaving)

	m.Update(notificationClearMsg{id: stale})
	require.NotNil(t, m.Session().Notification)
	assert.Equal(t, "second", m.Session().Notification.Message)
}

func TestView_RendersState(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})

	view := m.View()
	assert.Contains(t, view, headerTitle)
	assert.Contains(t, view, outputPlaceholder)
	assert.Contains(t, view, "JavaScript")

	m.SetCode("x = 1")
	press(m, tea.KeyCtrlS)
	assert.Contains(t, m.View(), "Generating...")

	m.Update(client.GenerationErrorMsg{Err: errors.New("down")})
	assert.Contains(t, m.View(), GenerationFailedText)
}

func TestDirSaver_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	path, err := DirSaver{Dir: dir}.Save("commented_code.go", []byte("package main"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "commented_code.go"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "package main", string(data))
}
