package handlers

import (
	"context"
	"errors"
	"log/slog"
	"math"
	nethttp "net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/cfb-meta-service/internal/analysis"
	"github.com/preston-bernstein/cfb-meta-service/internal/app/games"
	"github.com/preston-bernstein/cfb-meta-service/internal/logging"
	"github.com/preston-bernstein/cfb-meta-service/internal/providers"
	"github.com/preston-bernstein/cfb-meta-service/internal/timeutil"
)

const (
	defaultTop = 10
	topAll     = "all"
)

// GamesService is the slice of the games service the HTTP layer needs.
type GamesService interface {
	Rank(ctx context.Context, q games.Query) (games.Ranking, error)
	Game(ctx context.Context, date, id string) (analysis.Summary, error)
	Status() games.Status
}

// Handler wires HTTP routes to the games service.
type Handler struct {
	svc        GamesService
	logger     *slog.Logger
	defaultTop int
}

// NewHandler constructs a Handler. A non-positive defaultTop uses 10.
func NewHandler(svc GamesService, logger *slog.Logger, defaultTopGames int) *Handler {
	if defaultTopGames <= 0 {
		defaultTopGames = defaultTop
	}
	return &Handler{
		svc:        svc,
		logger:     logger,
		defaultTop: defaultTopGames,
	}
}

// Health reports liveness.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports whether upstream fetches are healthy enough to serve traffic.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	status := h.svc.Status()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// Games returns the ranked slate for ?date (today when absent).
func (h *Handler) Games(w nethttp.ResponseWriter, r *nethttp.Request) {
	q, msg := h.parseQuery(r)
	if msg != "" {
		writeError(w, r, nethttp.StatusBadRequest, msg, h.logger)
		return
	}

	ranking, err := h.svc.Rank(r.Context(), q)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	logging.Info(loggerFromContext(r, h.logger), "served ranking",
		logging.FieldDate, ranking.Date,
		logging.FieldCount, len(ranking.Games),
		logging.FieldSkipped, ranking.Skipped,
	)
	writeJSON(w, nethttp.StatusOK, ranking, h.logger)
}

// GameByID returns one game's export record.
func (h *Handler) GameByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" || strings.ContainsAny(id, " \t/") {
		writeError(w, r, nethttp.StatusBadRequest, "invalid game id", h.logger)
		return
	}
	date := r.URL.Query().Get("date")
	if date != "" {
		if _, err := timeutil.ParseDate(date); err != nil {
			writeError(w, r, nethttp.StatusBadRequest, invalidDateMessage, h.logger)
			return
		}
	}

	row, err := h.svc.Game(r.Context(), date, id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, row, h.logger)
}

const invalidDateMessage = "invalid date format (expected YYYY-MM-DD or YYYYMMDD)"

func (h *Handler) parseQuery(r *nethttp.Request) (games.Query, string) {
	values := r.URL.Query()
	q := games.Query{
		Date:     values.Get("date"),
		Timezone: values.Get("tz"),
		Limit:    h.defaultTop,
	}
	if q.Date != "" {
		if _, err := timeutil.ParseDate(q.Date); err != nil {
			return q, invalidDateMessage
		}
	}

	switch raw := strings.TrimSpace(values.Get("top")); {
	case raw == "":
	case strings.EqualFold(raw, topAll):
		q.Limit = analysis.NoLimit
	default:
		top, err := strconv.Atoi(raw)
		if err != nil || top < 0 {
			return q, "invalid top (expected a non-negative integer or \"all\")"
		}
		q.Limit = top
	}

	flags := []struct {
		name string
		dest *bool
	}{
		{"live", &q.OnlyLive},
		{"ranked", &q.OnlyRanked},
		{"featured", &q.Featured},
		{"notes", &q.IncludeNotes},
	}
	for _, f := range flags {
		raw := values.Get(f.name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return q, "invalid " + f.name + " (expected true or false)"
		}
		*f.dest = v
	}
	return q, ""
}

func (h *Handler) writeServiceError(w nethttp.ResponseWriter, r *nethttp.Request, err error) {
	logger := loggerFromContext(r, h.logger)
	switch {
	case errors.Is(err, games.ErrInvalidDate):
		writeError(w, r, nethttp.StatusBadRequest, invalidDateMessage, h.logger)
		return
	case errors.Is(err, games.ErrGameNotFound):
		writeError(w, r, nethttp.StatusNotFound, "game not found", h.logger)
		return
	}

	if rlErr, ok := providers.AsRateLimitError(err); ok {
		logging.Warn(logger, "upstream rate limited", "error", err)
		if rlErr.RetryAfter > 0 {
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(rlErr.RetryAfter.Seconds()))))
		}
		writeError(w, r, nethttp.StatusServiceUnavailable, "upstream rate limited", h.logger)
		return
	}
	if _, ok := providers.AsAcquisitionError(err); ok {
		logging.Error(logger, "scoreboard acquisition failed", err)
		writeError(w, r, nethttp.StatusBadGateway, err.Error(), h.logger)
		return
	}

	logging.Error(logger, "request failed", err)
	writeError(w, r, nethttp.StatusInternalServerError, "internal error", h.logger)
}
