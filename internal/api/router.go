package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"siliconguide.io/silicon-guide/internal/logging"
)

func NewRouter(apiHandler *APIHandler, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(logging.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"status":"ok"}`))
		})

		// Handbook
		r.Get("/chapters", apiHandler.ListChaptersHandler)
		r.Get("/chapters/{chapterID}", apiHandler.GetChapterHandler)
		r.Get("/chapters/{chapterID}/resources", apiHandler.ListChapterResourcesHandler)
		r.Get("/sections", apiHandler.ListSectionsHandler)
		r.Get("/sections/{section}/chapters", apiHandler.ListSectionChaptersHandler)
		r.Get("/resources/{resourceID}", apiHandler.GetResourceHandler)
		r.Post("/resources/{resourceID}/summary", apiHandler.ResourceSummaryHandler)

		// Tutor sessions
		r.Post("/sessions", apiHandler.CreateSessionHandler)
		r.Get("/sessions", apiHandler.ListSessionsHandler)
		r.Get("/sessions/{sessionID}", apiHandler.GetSessionHandler)
		r.Delete("/sessions/{sessionID}", apiHandler.DeleteSessionHandler)
		r.Post("/sessions/{sessionID}/messages", apiHandler.PostMessageHandler)
		r.Post("/turns/{turnID}/feedback", apiHandler.TurnFeedbackHandler)

		r.Post("/classify", apiHandler.ClassifyHandler)
		r.Get("/discover", apiHandler.DiscoverHandler)
		r.Get("/discover/seed", apiHandler.DiscoverSeedHandler)
		r.Get("/learning-path", apiHandler.LearningPathHandler)
		r.Get("/session-summary", apiHandler.SessionSummaryHandler)
	})

	return r
}
