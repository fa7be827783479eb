package languages

import (
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
)

// chroma lexer names for each supported language
var lexerNames = map[string]Language{
	"c":          C,
	"c++":        CPP,
	"python":     Python,
	"python 2":   Python,
	"java":       Java,
	"javascript": JavaScript,
	"go":         Golang,
}

// Detect guesses the language of code using chroma's lexer analysers.
// The second return is false when no supported language matches.
func Detect(code string) (Language, bool) {
	if strings.TrimSpace(code) == "" {
		return "", false
	}

	lexer := lexers.Analyse(code)
	if lexer == nil {
		return "", false
	}

	return fromLexerName(lexer.Config().Name)
}

func fromLexerName(name string) (Language, bool) {
	lang, ok := lexerNames[strings.ToLower(name)]
	return lang, ok
}
