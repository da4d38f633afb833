package handlers

import (
	"net/http"

	"gorm.io/gorm"

	"blankquiz/internal/llm"
	"blankquiz/internal/prompts"
	"blankquiz/internal/utils"
)

type ReadinessCheck struct {
	Status  string `json:"status"` // "ok" | "failed"
	Message string `json:"message,omitempty"`
}

type ReadinessResponse struct {
	Status  string                    `json:"status"`  // "ready" | "not_ready"
	Service string                    `json:"service"`
	Checks  map[string]ReadinessCheck `json:"checks"`
}

type HealthHandler struct {
	provider      llm.Provider
	promptManager prompts.PromptProvider
	db            *gorm.DB
}

func NewHealthHandler(provider llm.Provider, promptManager prompts.PromptProvider, db *gorm.DB) *HealthHandler {
	return &HealthHandler{
		provider:      provider,
		promptManager: promptManager,
		db:            db,
	}
}

func (h *HealthHandler) HealthzHandler(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "blankquiz",
		"version": "1.0.0",
	})
}

func (h *HealthHandler) ReadyzHandler(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]ReadinessCheck)
	allChecksPass := true

	if h.provider == nil {
		checks["provider"] = ReadinessCheck{Status: "failed", Message: "Provider not initialized"}
		allChecksPass = false
	} else {
		checks["provider"] = ReadinessCheck{Status: "ok"}
	}

	if h.promptManager == nil || len(h.promptManager.GetTemplates()) == 0 {
		checks["prompt_manager"] = ReadinessCheck{Status: "failed", Message: "No prompt templates loaded"}
		allChecksPass = false
	} else {
		checks["prompt_manager"] = ReadinessCheck{Status: "ok"}
	}

	if h.db == nil {
		checks["database"] = ReadinessCheck{Status: "failed", Message: "Database not connected"}
		allChecksPass = false
	} else if sqlDB, err := h.db.DB(); err != nil || sqlDB.Ping() != nil {
		checks["database"] = ReadinessCheck{Status: "failed", Message: "Database unreachable"}
		allChecksPass = false
	} else {
		checks["database"] = ReadinessCheck{Status: "ok"}
	}

	response := ReadinessResponse{
		Service: "blankquiz",
		Checks:  checks,
	}

	if allChecksPass {
		response.Status = "ready"
		utils.JSON(w, http.StatusOK, response)
	} else {
		response.Status = "not_ready"
		utils.JSON(w, http.StatusServiceUnavailable, response)
	}
}
