package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"askgemini/internal/assistant"
	"askgemini/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/sirupsen/logrus"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// Asker answers a prompt. *assistant.Forwarder implements it.
type Asker interface {
	Answer(ctx context.Context, prompt string) assistant.Result
}

// History records and lists exchanges. *store.ExchangeStore implements it.
type History interface {
	Record(ctx context.Context, prompt, answer, outcome string) (int64, error)
	Recent(ctx context.Context, limit int) ([]store.Exchange, error)
}

// AskRequest is the body of POST /api/ai/ask.
type AskRequest struct {
	Prompt *string `json:"prompt"`
}

// Bind implements render.Binder.
func (a *AskRequest) Bind(r *http.Request) error {
	if a.Prompt == nil {
		return errors.New("prompt is required")
	}
	return nil
}

// AskAPI exposes the forwarder over HTTP.
type AskAPI struct {
	Asker   Asker
	History History
	Log     *logrus.Logger
}

// NewAskAPI creates a new AskAPI. history may be nil.
func NewAskAPI(asker Asker, history History, logger *logrus.Logger) *AskAPI {
	return &AskAPI{
		Asker:   asker,
		History: history,
		Log:     logger,
	}
}

// Routes mounts the handlers on r.
func (api *AskAPI) Routes(r chi.Router) {
	r.Route("/api/ai", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		r.Post("/ask", api.AskHandler)
		r.Get("/history", api.HistoryHandler)
	})
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		render.PlainText(w, r, "ok")
	})
}

// AskHandler handles POST /api/ai/ask.
func (api *AskAPI) AskHandler(w http.ResponseWriter, r *http.Request) {
	req := &AskRequest{}
	if err := render.Bind(r, req); err != nil {
		api.Log.Debugf("bad ask request: %s", err)
		render.Status(r, http.StatusBadRequest)
		render.PlainText(w, r, err.Error())
		return
	}

	res := api.Asker.Answer(r.Context(), *req.Prompt)

	if api.History != nil {
		if _, err := api.History.Record(r.Context(), *req.Prompt, res.Text, res.Kind.String()); err != nil {
			api.Log.WithError(err).Warn("Failed to record exchange")
		}
	}

	render.JSON(w, r, res)
}

// HistoryHandler handles GET /api/ai/history.
func (api *AskAPI) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	if api.History == nil {
		render.Status(r, http.StatusNotFound)
		render.PlainText(w, r, "exchange history is disabled")
		return
	}

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			render.Status(r, http.StatusBadRequest)
			render.PlainText(w, r, "limit must be a positive integer")
			return
		}
		limit = min(n, maxHistoryLimit)
	}

	exchanges, err := api.History.Recent(r.Context(), limit)
	if err != nil {
		api.Log.WithError(err).Error("Failed to load exchanges")
		render.Status(r, http.StatusInternalServerError)
		render.PlainText(w, r, "failed to load history")
		return
	}

	render.JSON(w, r, exchanges)
}
