package scoring

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"blankquiz/internal/models"
	"blankquiz/internal/store"
)

// Ledger persists answer attempts and derives per-topic scores. Each call is
// a single atomic read or write; nothing is cached between calls.
type Ledger struct {
	db *gorm.DB
}

func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

// IsCorrect compares a submitted answer against the canonical one,
// ignoring case and surrounding whitespace.
func IsCorrect(userAnswer, answer string) bool {
	return strings.EqualFold(strings.TrimSpace(userAnswer), strings.TrimSpace(answer))
}

// RecordAttempt computes correctness and persists the attempt. It always
// writes, whether or not the topic id references a seeded topic.
func (l *Ledger) RecordAttempt(req *models.AnswerRequest) (bool, error) {
	correct := IsCorrect(req.UserAnswer, req.Answer)

	attempt := &store.Attempt{
		TopicID:    req.TopicID,
		Sentence:   req.Sentence,
		Choices:    req.Choices,
		Answer:     req.Answer,
		Hint:       req.Hint,
		UserAnswer: req.UserAnswer,
		Correct:    correct,
	}
	if err := l.db.Create(attempt).Error; err != nil {
		return false, fmt.Errorf("failed to record attempt: %w", err)
	}
	return correct, nil
}

// Score returns the number of correct attempts and the total attempt count
// for a topic, recomputed fresh on every call. A topic with no attempts
// yields zeros, never an absent result.
func (l *Ledger) Score(topicID uint) (*models.ScoreResponse, error) {
	var attempted int64
	if err := l.db.Model(&store.Attempt{}).Where("topic_id = ?", topicID).Count(&attempted).Error; err != nil {
		return nil, fmt.Errorf("failed to count attempts: %w", err)
	}

	var score int64
	if err := l.db.Model(&store.Attempt{}).Where("topic_id = ? AND correct = ?", topicID, true).Count(&score).Error; err != nil {
		return nil, fmt.Errorf("failed to count correct attempts: %w", err)
	}

	return &models.ScoreResponse{Score: score, Attempted: attempted}, nil
}

// TopicActivity is one row of the periodic activity report
type TopicActivity struct {
	TopicID   uint
	Attempted int64
	Correct   int64
}

// ActivityByTopic aggregates attempt counts per topic for reporting
func (l *Ledger) ActivityByTopic() ([]TopicActivity, error) {
	var rows []TopicActivity
	err := l.db.Model(&store.Attempt{}).
		Select("topic_id, COUNT(*) AS attempted, SUM(CASE WHEN correct THEN 1 ELSE 0 END) AS correct").
		Group("topic_id").
		Order("topic_id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate activity: %w", err)
	}
	return rows, nil
}
