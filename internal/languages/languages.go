// Package languages holds the fixed set of source languages a user can pick,
// with their display labels, download extensions and highlighting aliases.
package languages

// identifies a supported language on the wire (the "language" request field)
type Language string

const (
	C          Language = "c"
	CPP        Language = "cpp"
	Python     Language = "python"
	Java       Language = "java"
	JavaScript Language = "javascript"
	Golang     Language = "golang"
)

// language selected on startup and after a reset
const Default = JavaScript

// extension used for downloads of unknown languages
const fallbackExtension = "txt"

type info struct {
	label     string
	extension string
	fence     string // markdown fence / chroma alias
}

var table = map[Language]info{
	C:          {label: "C", extension: "c", fence: "c"},
	CPP:        {label: "C++", extension: "cpp", fence: "cpp"},
	Python:     {label: "Python", extension: "py", fence: "python"},
	Java:       {label: "Java", extension: "java", fence: "java"},
	JavaScript: {label: "JavaScript", extension: "js", fence: "javascript"},
	Golang:     {label: "Go", extension: "go", fence: "go"},
}

// display order, matching the language picker
var all = []Language{C, CPP, Python, Java, JavaScript, Golang}

// returns every supported language in picker order
func All() []Language {
	out := make([]Language, len(all))
	copy(out, all)
	return out
}

// reports whether lang is one of the supported languages
func Valid(lang string) bool {
	_, ok := table[Language(lang)]
	return ok
}

// returns the human-readable name shown in the picker
func (l Language) Label() string {
	if i, ok := table[l]; ok {
		return i.label
	}

	return string(l)
}

// returns the markdown fence tag used when rendering code in this language
func (l Language) Fence() string {
	if i, ok := table[l]; ok {
		return i.fence
	}

	return ""
}

// Extension maps a language id to the file extension used for downloads.
// Unknown ids fall back to "txt".
func Extension(lang string) string {
	if i, ok := table[Language(lang)]; ok {
		return i.extension
	}

	return fallbackExtension
}

// returns the download filename for output in lang
func DownloadFilename(lang string) string {
	return "commented_code." + Extension(lang)
}

// returns the language after l in picker order, wrapping around
func (l Language) Next() Language {
	return l.step(1)
}

// returns the language before l in picker order, wrapping around
func (l Language) Prev() Language {
	return l.step(-1)
}

func (l Language) step(delta int) Language {
	for i, lang := range all {
		if lang == l {
			return all[(i+delta+len(all))%len(all)]
		}
	}

	return Default
}
