package colors

import (
	"errors"
	"net/http"

	"resistor-api/internal/handlers"
	"resistor-api/internal/observability"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("colors")

// Handler serves the color table over HTTP.
type Handler struct {
	registry *Registry
}

func NewHandler(registry *Registry) *Handler {
	return &Handler{registry: registry}
}

// List handles GET /colors.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "colors.list")
	defer span.End()

	names := h.registry.Names()

	lookupCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", "list")))
	span.SetAttributes(attribute.Int("colors.count", len(names)))
	span.SetStatus(codes.Ok, "")

	handlers.WriteJSON(w, http.StatusOK, names)
}

// Get handles GET /colors/{name}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	logger := observability.LoggerWithTrace(r.Context())

	ctx, span := tracer.Start(r.Context(), "colors.get",
		trace.WithAttributes(attribute.String("color.name", name)),
	)
	defer span.End()

	band, err := h.registry.Get(name)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrUnknownColor) {
			status = http.StatusNotFound
		}
		observability.RecordError(ctx, span, logger, errorCounter, "get", err.Error(), err, status, w)
		return
	}

	lookupCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", "get")))
	span.SetAttributes(attribute.Int("color.digit", band.Digit))
	span.SetStatus(codes.Ok, "")

	logger.Debug("color resolved",
		zap.String("color", name),
		zap.String("request_id", observability.RequestIDFromContext(ctx)),
	)

	handlers.WriteJSON(w, http.StatusOK, band)
}
