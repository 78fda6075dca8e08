package aiquiz

import (
	"fmt"
	"strings"
)

const systemPrompt = `
You are a quiz generator for a study application. You write multiple choice questions.

Rules:
1. Every question has exactly 4 options and exactly one of them is correct.
2. Incorrect options must be plausible but clearly wrong.
3. Options within a question must all be different.
4. The "answer" field must contain the exact text of the correct option from the "options" array.
5. Cover different aspects of the topic when possible.
6. If the topic is not sensible or is invalid, do not make a quiz for it.

Return ONLY a JSON array, with no text before or after it, in this exact format:
[
  {
    "question": "...",
    "options": ["...", "...", "...", "..."],
    "answer": "..."
  }
]
`

var difficultyGuidance = map[Difficulty]string{
	DifficultyEasy:   "Make the questions basic and suitable for beginners. Use simple vocabulary and straightforward concepts.",
	DifficultyMedium: "Make the questions moderately challenging with some complexity. Require basic to intermediate knowledge.",
	DifficultyHard:   "Make the questions challenging and complex. Include advanced concepts, detailed knowledge, and nuanced understanding.",
}

func BuildUserPrompt(req QuestionRequest) string {
	guidance, ok := difficultyGuidance[req.Difficulty]
	if !ok {
		guidance = difficultyGuidance[DifficultyEasy]
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Generate %d multiple choice questions about the topic %q.\n\n", req.QuestionCount, req.Topic))
	sb.WriteString(fmt.Sprintf("Difficulty Level: %s\n", strings.ToUpper(string(req.Difficulty))))
	sb.WriteString(guidance)
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("Return exactly %d questions, each with exactly 4 options, as a JSON array and nothing else.", req.QuestionCount))
	return sb.String()
}
