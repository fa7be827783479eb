package languages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtension(t *testing.T) {
	tests := []struct {
		lang     string
		expected string
	}{
		{"c", "c"},
		{"cpp", "cpp"},
		{"python", "py"},
		{"java", "java"},
		{"javascript", "js"},
		{"golang", "go"},
		{"unknownlang", "txt"},
		{"", "txt"},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			assert.Equal(t, tt.expected, Extension(tt.lang))
		})
	}
}

func TestDownloadFilename(t *testing.T) {
	assert.Equal(t, "commented_code.py", DownloadFilename("python"))
	assert.Equal(t, "commented_code.txt", DownloadFilename("rust"))
}

func TestDefaultIsJavaScript(t *testing.T) {
	assert.Equal(t, Language("javascript"), Default)
}

func TestValidAndLabels(t *testing.T) {
	for _, lang := range All() {
		assert.True(t, Valid(string(lang)), lang)
		assert.NotEmpty(t, lang.Label())
		assert.NotEmpty(t, lang.Fence())
	}

	assert.False(t, Valid("rust"))
	assert.Equal(t, "C++", CPP.Label())
	assert.Equal(t, "Go", Golang.Label())
	assert.Equal(t, "rust", Language("rust").Label())
}

func TestNextPrevWrap(t *testing.T) {
	assert.Equal(t, CPP, C.Next())
	assert.Equal(t, C, Golang.Next())
	assert.Equal(t, Golang, C.Prev())
	assert.Equal(t, Java, JavaScript.Prev())
	assert.Equal(t, Default, Language("rust").Next())
}

func TestAllReturnsCopy(t *testing.T) {
	langs := All()
	langs[0] = "rust"

	assert.Equal(t, C, All()[0])
}

func TestFromLexerName(t *testing.T) {
	tests := []struct {
		name     string
		expected Language
		ok       bool
	}{
		{"Go", Golang, true},
		{"C++", CPP, true},
		{"C", C, true},
		{"Python", Python, true},
		{"Python 2", Python, true},
		{"Java", Java, true},
		{"JavaScript", JavaScript, true},
		{"Rust", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lang, ok := fromLexerName(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, lang)
		})
	}
}

func TestDetectEmpty(t *testing.T) {
	_, ok := Detect("   \n")
	assert.False(t, ok)
}
