package handlers

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"blankquiz/internal/models"
	"blankquiz/internal/scoring"
	"blankquiz/internal/store"
	"blankquiz/internal/topics"
)

type mockGenerator struct {
	generateFn func(ctx context.Context, topicName string, requestID string) (*models.QuestionRecord, *models.GenerationMetadata, error)
	calls      int
}

func (m *mockGenerator) Generate(ctx context.Context, topicName string, requestID string) (*models.QuestionRecord, *models.GenerationMetadata, error) {
	m.calls++
	if m.generateFn == nil {
		return &models.QuestionRecord{
			Sentence: "The sky is ____.",
			Choices:  "blue, red, green, yellow",
			Answer:   "blue",
			Hint:     "color of day",
		}, &models.GenerationMetadata{Provider: "mock", Model: "test-model"}, nil
	}
	return m.generateFn(ctx, topicName, requestID)
}

type mockPromptManager struct{}

func (m *mockPromptManager) BuildPrompt(mode, variant string, data map[string]string) (string, error) {
	return "mock prompt", nil
}

func (m *mockPromptManager) GetTemplates() map[string]map[string]string {
	return map[string]map[string]string{"question": {"default": "mock prompt"}}
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := store.Init(db); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	return db
}

func newTestQuizHandler(t *testing.T, generator QuestionGenerator) (*QuizHandler, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	handler := NewQuizHandler(generator, topics.NewDirectory(db), scoring.NewLedger(db), zap.NewNop())
	return handler, db
}
