package comments

import "codeberg.org/commentgen/server/internal/llm"

// adds explanatory comments to source code using an LLM
type Service struct {
	generator llm.TextGenerator
}

// contains the commented code and generation metadata
type Result struct {
	CommentedCode string
	Model         string
	Usage         llm.Usage
}
