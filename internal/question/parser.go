package question

import (
	"fmt"
	"strings"

	"blankquiz/internal/models"
)

// The provider replies with free text, not a typed structure. The contract is
// a line-based mini-grammar: one line per label, value after the label. Any
// deviation is a parse failure, never a heuristic recovery.
var labels = []string{"Sentence:", "Choices:", "Answer:", "Hint:"}

// GenerationError reports a provider reply that could not be parsed into a
// complete question record, or a failed provider call. Raw keeps the full
// reply for diagnostics.
type GenerationError struct {
	Reason  string
	Missing []string
	Raw     string
	Err     error
}

func (e *GenerationError) Error() string {
	msg := "question generation failed: " + e.Reason
	if len(e.Missing) > 0 {
		msg += " (missing: " + strings.Join(e.Missing, ", ") + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// ParseReply extracts the four labeled fields from a raw provider reply.
//
// The reply is split into non-empty trimmed lines. For each label the first
// line with a case-insensitive matching prefix wins; repeated labels and
// echoed instructions are ignored. Label order does not matter. A label with
// no matching line fails the whole reply: a record is either fully populated
// or not returned at all.
func ParseReply(raw string) (*models.QuestionRecord, error) {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	values := make(map[string]string, len(labels))
	var missing []string
	for _, label := range labels {
		value, found := firstLabeledValue(lines, label)
		if !found {
			missing = append(missing, strings.TrimSuffix(label, ":"))
			continue
		}
		values[label] = value
	}

	if len(missing) > 0 {
		return nil, &GenerationError{
			Reason:  fmt.Sprintf("reply is missing %d of %d required fields", len(missing), len(labels)),
			Missing: missing,
			Raw:     raw,
		}
	}

	return &models.QuestionRecord{
		Sentence: values["Sentence:"],
		Choices:  values["Choices:"],
		Answer:   values["Answer:"],
		Hint:     values["Hint:"],
	}, nil
}

// firstLabeledValue returns the value of the first line starting with label,
// compared case-insensitively, with the label stripped and whitespace trimmed.
func firstLabeledValue(lines []string, label string) (string, bool) {
	for _, line := range lines {
		if len(line) < len(label) {
			continue
		}
		if strings.EqualFold(line[:len(label)], label) {
			// An empty value counts as missing: the field must be present
			// and non-empty for the record to be trusted downstream.
			value := strings.TrimSpace(line[len(label):])
			if value == "" {
				continue
			}
			return value, true
		}
	}
	return "", false
}
