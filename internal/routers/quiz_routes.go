package routers

import (
	"blankquiz/internal/handlers"
	"blankquiz/internal/middleware"
	"blankquiz/internal/models"

	"github.com/go-chi/chi/v5"
)

func QuizRoutes(router *chi.Mux, quizHandler *handlers.QuizHandler) {
	router.Route("/api/v1/quiz", func(r chi.Router) {
		r.Get("/topics", quizHandler.TopicsHandler)
		r.With(middleware.ValidateRequest[*models.QuestionRequest]()).Post("/question", quizHandler.QuestionHandler)
		r.With(middleware.ValidateRequest[*models.AnswerRequest]()).Post("/answer", quizHandler.AnswerHandler)
		r.Get("/score/{topicID}", quizHandler.ScoreHandler)
	})
}
