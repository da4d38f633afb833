package models

// QuestionRecord is the structured result of one generation call: a sentence
// with a blanked-out word, a comma-and-space separated choice list, the
// canonical answer and a short hint. It is never persisted on its own; the
// client holds it between generation and submission.
type QuestionRecord struct {
	Sentence string `json:"sentence"`
	Choices  string `json:"choices"`
	Answer   string `json:"answer"`
	Hint     string `json:"hint"`
}

// GenerationMetadata carries additional information about a generated question
type GenerationMetadata struct {
	ProcessingTime int    `json:"processing_time_ms"`
	Provider       string `json:"provider"`
	Model          string `json:"model"`
}

// GenerationResponse is the raw provider output before parsing
type GenerationResponse struct {
	Content  string
	Metadata GenerationMetadata
}
