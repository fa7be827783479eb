package comments

import "fmt"

const systemPrompt = "You are an expert programmer. Your task is to add clear and concise comments to the provided code. " +
	"Only add comments where necessary to explain complex or non-obvious parts. " +
	"Do not alter the original code logic. " +
	"Return ONLY the full, updated code with your comments integrated, without any extra text or explanations."

// builds the user turn sent alongside the system prompt
func buildUserPrompt(language, code string) string {
	return fmt.Sprintf("Please add comments to the following %s code:\n\n```\n%s\n```", language, code)
}
