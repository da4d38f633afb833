package models

// QuestionResponse is returned by the question generation endpoint
type QuestionResponse struct {
	QuestionRecord
	RequestID string             `json:"request_id"`
	Metadata  GenerationMetadata `json:"metadata"`
}

type AnswerResponse struct {
	Correct bool `json:"correct"`
}

type ScoreResponse struct {
	Score     int64 `json:"score"`
	Attempted int64 `json:"attempted"`
}

type TopicResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// uniform error responses
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ErrorResponse) Error() string {
	return e.Code + ": " + e.Message
}
