package llm

import _ "embed"

// Embeds for prompts used by the llm package.

//go:embed prompts/experts.yaml
var expertsYAML []byte

//go:embed prompts/profile.txt
var ProfileUser string

//go:embed prompts/question.txt
var QuestionUser string
