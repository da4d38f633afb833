package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"blankquiz/internal/llm"
	"blankquiz/internal/metrics"
	"blankquiz/internal/middleware"
	"blankquiz/internal/models"
	"blankquiz/internal/question"
	"blankquiz/internal/scoring"
	"blankquiz/internal/topics"
	"blankquiz/internal/utils"
)

// QuestionGenerator is satisfied by question.Generator
type QuestionGenerator interface {
	Generate(ctx context.Context, topicName string, requestID string) (*models.QuestionRecord, *models.GenerationMetadata, error)
}

type QuizHandler struct {
	generator QuestionGenerator
	directory *topics.Directory
	ledger    *scoring.Ledger
	logger    *zap.Logger
}

func NewQuizHandler(generator QuestionGenerator, directory *topics.Directory, ledger *scoring.Ledger, logger *zap.Logger) *QuizHandler {
	return &QuizHandler{
		generator: generator,
		directory: directory,
		ledger:    ledger,
		logger:    logger,
	}
}

func (h *QuizHandler) TopicsHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.directory.List()
	if err != nil {
		h.logger.Error("Failed to list topics", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "storage_error",
			Message: "Failed to list topics",
		})
		return
	}

	response := make([]models.TopicResponse, 0, len(list))
	for _, topic := range list {
		response = append(response, models.TopicResponse{ID: topic.ID, Name: topic.Name})
	}
	utils.JSON(w, http.StatusOK, response)
}

func (h *QuizHandler) QuestionHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.QuestionRequest](r)
	req.RequestID = ensureRequestID(req.RequestID)

	// Resolve before generating: an unknown topic must never reach the provider
	topicName, err := h.directory.Resolve(req.TopicID)
	if errors.Is(err, topics.ErrNotFound) {
		metrics.ObserveGeneration("invalid_topic")
		utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "invalid_topic",
			Message: "Invalid topic",
		})
		return
	}
	if err != nil {
		h.logger.Error("Failed to resolve topic", zap.Error(err), zap.Uint("topic_id", req.TopicID))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "storage_error",
			Message: "Failed to resolve topic",
		})
		return
	}

	record, metadata, err := h.generator.Generate(r.Context(), topicName, req.RequestID)
	if err != nil {
		h.handleGenerationError(w, err, req.RequestID)
		return
	}

	metrics.ObserveGeneration("ok")
	h.logger.Info("Question generated",
		zap.String("request_id", req.RequestID),
		zap.String("topic", topicName),
		zap.Int("processing_time_ms", metadata.ProcessingTime))

	utils.JSON(w, http.StatusOK, models.QuestionResponse{
		QuestionRecord: *record,
		RequestID:      req.RequestID,
		Metadata:       *metadata,
	})
}

func (h *QuizHandler) handleGenerationError(w http.ResponseWriter, err error, requestID string) {
	var providerErr *llm.ProviderError
	if errors.As(err, &providerErr) {
		metrics.ObserveGeneration("provider_error")
		h.logger.Error("Provider error", zap.Error(err), zap.String("request_id", requestID))

		status := http.StatusBadGateway
		switch providerErr.Code {
		case llm.ErrCodeRateLimit:
			status = http.StatusTooManyRequests
		case llm.ErrCodeTimeout:
			status = http.StatusGatewayTimeout
		}
		utils.JSON(w, status, models.ErrorResponse{
			Code:    "generation_error",
			Message: "Failed to generate question",
		})
		return
	}

	var genErr *question.GenerationError
	if errors.As(err, &genErr) {
		metrics.ObserveGeneration("parse_error")
	} else {
		metrics.ObserveGeneration("provider_error")
	}
	h.logger.Error("Generation failed", zap.Error(err), zap.String("request_id", requestID))
	utils.JSON(w, http.StatusBadGateway, models.ErrorResponse{
		Code:    "generation_error",
		Message: "Failed to generate question",
	})
}

func (h *QuizHandler) AnswerHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.AnswerRequest](r)

	correct, err := h.ledger.RecordAttempt(req)
	if err != nil {
		h.logger.Error("Failed to record attempt", zap.Error(err), zap.Uint("topic_id", req.TopicID))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "storage_error",
			Message: "Failed to record attempt",
		})
		return
	}

	utils.JSON(w, http.StatusOK, models.AnswerResponse{Correct: correct})
}

func (h *QuizHandler) ScoreHandler(w http.ResponseWriter, r *http.Request) {
	topicID, err := strconv.ParseUint(chi.URLParam(r, "topicID"), 10, 32)
	if err != nil {
		utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "invalid_topic_id",
			Message: "Topic id must be a positive integer",
		})
		return
	}

	score, err := h.ledger.Score(uint(topicID))
	if err != nil {
		h.logger.Error("Failed to compute score", zap.Error(err), zap.Uint64("topic_id", topicID))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "storage_error",
			Message: "Failed to compute score",
		})
		return
	}

	utils.JSON(w, http.StatusOK, score)
}

func ensureRequestID(requestID string) string {
	if requestID == "" {
		return uuid.New().String()
	}
	return requestID
}
