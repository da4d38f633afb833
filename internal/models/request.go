package models

import "strings"

type QuestionRequest struct {
	TopicID   uint   `json:"topic_id"`
	RequestID string `json:"request_id"`
}

// implements the Validator interface
func (r *QuestionRequest) Validate() error {
	if r.TopicID == 0 {
		return &ErrorResponse{
			Code:    "missing_topic_id",
			Message: "topic_id field is required",
		}
	}
	return nil
}

// AnswerRequest echoes the full question record back alongside the user's
// answer. The record is never cached server-side, so the submission carries
// everything the ledger persists.
type AnswerRequest struct {
	TopicID    uint   `json:"topic_id"`
	Sentence   string `json:"sentence"`
	Choices    string `json:"choices"`
	Answer     string `json:"answer"`
	Hint       string `json:"hint"`
	UserAnswer string `json:"user_answer"`
}

func (r *AnswerRequest) Validate() error {
	if r.TopicID == 0 {
		return &ErrorResponse{Code: "missing_topic_id", Message: "topic_id field is required"}
	}
	if strings.TrimSpace(r.Sentence) == "" {
		return &ErrorResponse{Code: "missing_sentence", Message: "sentence field is required"}
	}
	if strings.TrimSpace(r.Answer) == "" {
		return &ErrorResponse{Code: "missing_answer", Message: "answer field is required"}
	}
	if strings.TrimSpace(r.UserAnswer) == "" {
		return &ErrorResponse{Code: "missing_user_answer", Message: "user_answer field is required"}
	}
	return nil
}
