package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"siliconguide.io/silicon-guide/internal/assistant"
	"siliconguide.io/silicon-guide/internal/core"
	"siliconguide.io/silicon-guide/internal/discovery"
	"siliconguide.io/silicon-guide/internal/handbook"
	"siliconguide.io/silicon-guide/internal/render"
	"siliconguide.io/silicon-guide/internal/store"
	"siliconguide.io/silicon-guide/internal/study"
)

type APIHandler struct {
	chatService *core.ChatService
	handbook    handbook.Repository
	agent       *discovery.Agent
	logger      *zap.Logger
}

func NewAPIHandler(cs *core.ChatService, hb handbook.Repository, agent *discovery.Agent, logger *zap.Logger) *APIHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &APIHandler{chatService: cs, handbook: hb, agent: agent, logger: logger}
}

type ErrorResponse struct {
	Error     string `json:"error"`
	ErrorCode string `json:"error_code"`
}

const (
	codeInvalidRequest = "invalid_request"
	codeEmptyQuery     = "empty_query"
	codeNotFound       = "not_found"
	codeInternal       = "internal_error"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg, ErrorCode: code})
}

// fail maps domain errors onto status codes. Anything unrecognised is logged
// and reported as an internal error with the generic message.
func (h *APIHandler) fail(w http.ResponseWriter, r *http.Request, err error, msg string) {
	switch {
	case errors.Is(err, core.ErrEmptyQuery), errors.Is(err, discovery.ErrEmptyQuery):
		writeError(w, http.StatusBadRequest, codeEmptyQuery, "query cannot be empty")
	case errors.Is(err, store.ErrSessionNotFound),
		errors.Is(err, store.ErrTurnNotFound),
		errors.Is(err, handbook.ErrChapterNotFound),
		errors.Is(err, handbook.ErrResourceNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, err.Error())
	default:
		h.logger.Error(msg,
			zap.String("path", r.URL.Path),
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Error(err))
		writeError(w, http.StatusInternalServerError, codeInternal, msg)
	}
}

// decodeBody reads an optional JSON body into v. An empty body leaves v
// untouched.
func decodeBody(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func origin(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

// Handbook

func (h *APIHandler) ListChaptersHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.handbook.Chapters())
}

func (h *APIHandler) GetChapterHandler(w http.ResponseWriter, r *http.Request) {
	ch, err := h.handbook.Chapter(chi.URLParam(r, "chapterID"))
	if err != nil {
		h.fail(w, r, err, "Failed to get chapter")
		return
	}
	writeJSON(w, http.StatusOK, ch)
}

func (h *APIHandler) ListChapterResourcesHandler(w http.ResponseWriter, r *http.Request) {
	resources, err := h.handbook.Resources(chi.URLParam(r, "chapterID"))
	if err != nil {
		h.fail(w, r, err, "Failed to list resources")
		return
	}
	writeJSON(w, http.StatusOK, resources)
}

func (h *APIHandler) ListSectionsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.handbook.Sections())
}

func (h *APIHandler) ListSectionChaptersHandler(w http.ResponseWriter, r *http.Request) {
	section := chi.URLParam(r, "section")
	if unescaped, err := url.PathUnescape(section); err == nil {
		section = unescaped
	}
	chapters := h.handbook.ChaptersBySection(section)
	if len(chapters) == 0 {
		writeError(w, http.StatusNotFound, codeNotFound, "section not found")
		return
	}
	summaries := make([]handbook.ChapterSummary, len(chapters))
	for i, ch := range chapters {
		summaries[i] = ch.Summary()
	}
	writeJSON(w, http.StatusOK, summaries)
}

type ResourceResponse struct {
	handbook.Resource
	ChapterID string `json:"chapter_id"`
}

func (h *APIHandler) GetResourceHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "resourceID")
	res, err := h.handbook.Resource(id)
	if err != nil {
		h.fail(w, r, err, "Failed to get resource")
		return
	}
	ch, err := h.handbook.ResourceChapter(id)
	if err != nil {
		h.fail(w, r, err, "Failed to get resource")
		return
	}
	writeJSON(w, http.StatusOK, ResourceResponse{Resource: res, ChapterID: ch.ID})
}

// Sessions

type CreateSessionRequest struct {
	ChapterID  string `json:"chapter_id,omitempty"`
	ResourceID string `json:"resource_id,omitempty"`
}

func (h *APIHandler) CreateSessionHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequest, "Invalid request body: "+err.Error())
		return
	}

	tr, err := h.chatService.StartSession(r.Context(), assistant.Context{ChapterID: req.ChapterID, ResourceID: req.ResourceID})
	if err != nil {
		h.fail(w, r, err, "Failed to create session")
		return
	}
	writeJSON(w, http.StatusCreated, tr)
}

func (h *APIHandler) ListSessionsHandler(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.chatService.Sessions(r.Context())
	if err != nil {
		h.fail(w, r, err, "Failed to list sessions")
		return
	}
	writeJSON(w, http.StatusOK, sessions)
}

func (h *APIHandler) GetSessionHandler(w http.ResponseWriter, r *http.Request) {
	tr, err := h.chatService.Session(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		h.fail(w, r, err, "Failed to get session")
		return
	}
	writeJSON(w, http.StatusOK, tr)
}

func (h *APIHandler) DeleteSessionHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.chatService.CloseSession(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
		h.fail(w, r, err, "Failed to close session")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type PostMessageRequest struct {
	Content string `json:"content"`
}

type TurnResponse struct {
	store.Turn
	HTML string `json:"html"`
}

func (h *APIHandler) PostMessageHandler(w http.ResponseWriter, r *http.Request) {
	var req PostMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequest, "Invalid request body: "+err.Error())
		return
	}

	reply, err := h.chatService.PostMessage(r.Context(), chi.URLParam(r, "sessionID"), req.Content)
	if err != nil {
		h.fail(w, r, err, "Failed to post message")
		return
	}
	writeJSON(w, http.StatusOK, TurnResponse{Turn: *reply, HTML: render.HTML(reply.Text)})
}

type FeedbackRequest struct {
	Negative bool `json:"negative"`
}

func (h *APIHandler) TurnFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := h.chatService.SetFeedback(r.Context(), chi.URLParam(r, "turnID"), req.Negative); err != nil {
		h.fail(w, r, err, "Failed to set feedback")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Stateless helpers

type ClassifyRequest struct {
	Query      string `json:"query"`
	ChapterID  string `json:"chapter_id,omitempty"`
	ResourceID string `json:"resource_id,omitempty"`
}

type ClassifyResponse struct {
	assistant.Response
	HTML string `json:"html"`
}

func (h *APIHandler) ClassifyHandler(w http.ResponseWriter, r *http.Request) {
	var req ClassifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequest, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.chatService.Classify(req.Query, assistant.Context{ChapterID: req.ChapterID, ResourceID: req.ResourceID})
	if err != nil {
		h.fail(w, r, err, "Failed to classify query")
		return
	}
	writeJSON(w, http.StatusOK, ClassifyResponse{Response: resp, HTML: render.HTML(resp.Text)})
}

type DiscoverResponse struct {
	Query   string                       `json:"query"`
	Results []discovery.Result           `json:"results"`
	Counts  map[discovery.ResultType]int `json:"counts"`
	Text    string                       `json:"text"`
}

func (h *APIHandler) discover(w http.ResponseWriter, r *http.Request, query string, filter discovery.ResultType) {
	results, err := h.agent.Search(query)
	if err != nil {
		h.fail(w, r, err, "Failed to search")
		return
	}
	filtered := discovery.FilterByType(results, filter)
	writeJSON(w, http.StatusOK, DiscoverResponse{
		Query:   query,
		Results: filtered,
		Counts:  discovery.CountByType(results),
		Text:    discovery.FormatText(query, filtered, origin(r)),
	})
}

func (h *APIHandler) DiscoverHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	h.discover(w, r, strings.TrimSpace(q.Get("q")), discovery.ResultType(q.Get("type")))
}

// DiscoverSeedHandler runs the search suggested by a chapter's title.
func (h *APIHandler) DiscoverSeedHandler(w http.ResponseWriter, r *http.Request) {
	ch, err := h.handbook.Chapter(r.URL.Query().Get("chapter_id"))
	if err != nil {
		h.fail(w, r, err, "Failed to seed search")
		return
	}
	seed := discovery.SeedQuery(ch.Title)
	if seed == "" {
		writeJSON(w, http.StatusOK, DiscoverResponse{Results: []discovery.Result{}, Counts: discovery.CountByType(nil)})
		return
	}
	h.discover(w, r, seed, discovery.TypeAll)
}

type LearningPathResponse struct {
	Items []study.PathItem `json:"items"`
	Text  string           `json:"text"`
}

func (h *APIHandler) LearningPathHandler(w http.ResponseWriter, r *http.Request) {
	items := study.LearningPath()
	writeJSON(w, http.StatusOK, LearningPathResponse{Items: items, Text: study.FormatLearningPath(items, origin(r))})
}

func (h *APIHandler) SessionSummaryHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"summary": study.SessionSummary()})
}

func (h *APIHandler) ResourceSummaryHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "resourceID")
	res, err := h.handbook.Resource(id)
	if err != nil {
		h.fail(w, r, err, "Failed to summarize resource")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"resource_id": id, "summary": study.SummarizeResource(res)})
}
