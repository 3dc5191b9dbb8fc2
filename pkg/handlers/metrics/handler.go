package metrics

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pm-tools/teampulse/pkg/adapters"
	"github.com/pm-tools/teampulse/pkg/models/api"
	"github.com/pm-tools/teampulse/pkg/models/domain"
	"github.com/pm-tools/teampulse/pkg/services/bus"
	"github.com/rs/zerolog"
)

// MetricsService is what the handler needs from the aggregation engine.
type MetricsService interface {
	IdealHourlyRate(ctx context.Context, projectID string) (float64, error)
	Salaries(ctx context.Context, projectID string) ([]domain.SalaryAllocation, error)
	FinancialReport(ctx context.Context, projectID string) (*domain.FinancialReport, error)
	ProjectMetrics(ctx context.Context, projectID string) (*domain.ProjectMetricsSnapshot, error)
	SprintMetrics(ctx context.Context, sprintID string) (*domain.SprintMetricsSnapshot, error)
	Dashboard(ctx context.Context) (*domain.DashboardSnapshot, error)
}

// EventBus is the publish/subscribe surface exposed over HTTP.
type EventBus interface {
	Publish(event domain.MetricsUpdateEvent)
	SubscribeProject(projectID string) *bus.Subscription
	SubscribeDashboard() *bus.Subscription
}

type Handler struct {
	engine MetricsService
	events EventBus
}

func NewHandler(engine MetricsService, events EventBus) *Handler {
	return &Handler{engine: engine, events: events}
}

func (h *Handler) GetRate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	projectID := chi.URLParam(r, "projectID")

	rate, err := h.engine.IdealHourlyRate(ctx, projectID)
	if err != nil {
		writeError(w, r, err, "failed to compute ideal hourly rate")
		return
	}

	writeJSON(w, r, api.HourlyRate{ProjectID: projectID, Rate: rate})
}

func (h *Handler) GetSalaries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	projectID := chi.URLParam(r, "projectID")

	salaries, err := h.engine.Salaries(ctx, projectID)
	if err != nil {
		writeError(w, r, err, "failed to compute salaries")
		return
	}

	writeJSON(w, r, adapters.MapSalaryAllocationsDomainToApi(salaries))
}

func (h *Handler) GetFinancialReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	projectID := chi.URLParam(r, "projectID")

	report, err := h.engine.FinancialReport(ctx, projectID)
	if err != nil {
		writeError(w, r, err, "failed to generate financial report")
		return
	}

	writeJSON(w, r, adapters.MapFinancialReportDomainToApi(report))
}

func (h *Handler) GetProjectMetrics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	projectID := chi.URLParam(r, "projectID")

	snapshot, err := h.engine.ProjectMetrics(ctx, projectID)
	if err != nil {
		writeError(w, r, err, "failed to compute project metrics")
		return
	}

	writeJSON(w, r, adapters.MapProjectMetricsDomainToApi(*snapshot))
}

func (h *Handler) GetSprintMetrics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sprintID := chi.URLParam(r, "sprintID")

	snapshot, err := h.engine.SprintMetrics(ctx, sprintID)
	if err != nil {
		writeError(w, r, err, "failed to compute sprint metrics")
		return
	}

	writeJSON(w, r, adapters.MapSprintMetricsDomainToApi(*snapshot))
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	snapshot, err := h.engine.Dashboard(ctx)
	if err != nil {
		writeError(w, r, err, "failed to compute dashboard")
		return
	}

	writeJSON(w, r, adapters.MapDashboardDomainToApi(snapshot))
}

// PublishEvent lets mutation workflows announce a metric change. The event
// is fanned out to live subscribers and then forgotten.
func (h *Handler) PublishEvent(w http.ResponseWriter, r *http.Request) {
	var payload api.MetricsUpdateEvent
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid event payload", http.StatusBadRequest)
		return
	}

	event := adapters.MapEventApiToDomain(payload)
	switch event.Kind {
	case domain.EventKindSprint, domain.EventKindProject, domain.EventKindDashboard:
	default:
		http.Error(w, "unknown event kind", http.StatusBadRequest)
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	h.events.Publish(event)
	w.WriteHeader(http.StatusAccepted)
}

// StreamProjectEvents serves the project channel over SSE. The project_id
// query parameter is accepted but the stream is unfiltered multicast:
// subscribers see every project's events.
func (h *Handler) StreamProjectEvents(w http.ResponseWriter, r *http.Request) {
	sub := h.events.SubscribeProject(r.URL.Query().Get("project_id"))
	defer sub.Close()
	h.stream(w, r, sub)
}

func (h *Handler) StreamDashboardEvents(w http.ResponseWriter, r *http.Request) {
	sub := h.events.SubscribeDashboard()
	defer sub.Close()
	h.stream(w, r, sub)
}

func (h *Handler) stream(w http.ResponseWriter, r *http.Request, sub *bus.Subscription) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-sub.Events():
			if !ok {
				return
			}
			data, err := json.Marshal(adapters.MapEventDomainToApi(event))
			if err != nil {
				logger.Error().Err(err).Msg("failed to encode event")
				continue
			}
			if _, err := w.Write([]byte("data: " + string(data) + "\n\n")); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	if domain.IsNotFound(err) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	zerolog.Ctx(r.Context()).Error().Err(err).Msg(msg)
	http.Error(w, msg, http.StatusInternalServerError)
}
