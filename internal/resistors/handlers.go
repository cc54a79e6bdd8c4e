package resistors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"resistor-api/internal/handlers"
	"resistor-api/internal/observability"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// tracer is the resistors package's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("resistors")

// Handler serves the value-from-bands endpoints.
type Handler struct {
	calc *Calculator
}

func NewHandler(calc *Calculator) *Handler {
	return &Handler{calc: calc}
}

// ValueFromBody handles POST /resistors/value-from-bands.
func (h *Handler) ValueFromBody(w http.ResponseWriter, r *http.Request) {
	var bands Bands
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	err := dec.Decode(&bands)

	h.decode(w, r, "post", bands, err)
}

// ValueFromQuery handles GET /resistors/value-from-bands. An absent or empty
// thirdBand parameter selects 4-band decoding.
func (h *Handler) ValueFromQuery(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	bands := Bands{
		First:      q.Get("firstBand"),
		Second:     q.Get("secondBand"),
		Multiplier: q.Get("multiplier"),
		Tolerance:  q.Get("tolerance"),
	}
	if third := q.Get("thirdBand"); third != "" {
		bands.Third = &third
	}

	h.decode(w, r, "get", bands, nil)
}

// decode is the shared implementation behind both endpoints: it validates the
// request, runs the calculator inside a child span, records metrics and
// writes the response. parseErr is any error hit while reading the request.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, opName string, bands Bands, parseErr error) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "resistors.value_from_bands",
		trace.WithAttributes(
			attribute.String("resistors.operation", opName),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	if parseErr != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, "invalid request body", parseErr, http.StatusBadRequest, w)
		return
	}

	if missing := missingBands(bands); len(missing) > 0 {
		err := fmt.Errorf("missing required band: %s", strings.Join(missing, ", "))
		observability.RecordError(ctx, span, logger, errorCounter, opName, err.Error(), err, http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(bandAttributes(bands)...)

	start := time.Now()
	value, err := h.calc.Calculate(bands)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if err != nil {
		var unknown *UnknownColorError
		status := http.StatusInternalServerError
		if errors.As(err, &unknown) {
			status = http.StatusNotFound
			span.SetAttributes(attribute.String("resistors.failed_band", string(unknown.Position)))
		}
		observability.RecordError(ctx, span, logger, errorCounter, opName, err.Error(), err, status, w)
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("operation", opName),
		attribute.Int("bands", bandCount(bands)),
	)
	decodeCounter.Add(ctx, 1, attrs)
	decodeHistogram.Record(ctx, elapsed, attrs)
	resistanceGauge.Record(ctx, value.Resistance, attrs)

	display := Format(value)
	span.AddEvent("decoding.complete", trace.WithAttributes(
		attribute.Float64("resistance", value.Resistance),
		attribute.Float64("tolerance", value.Tolerance),
	))
	span.SetStatus(codes.Ok, "")

	logger.Info("resistor value decoded",
		zap.String("operation", opName),
		zap.Int("bands", bandCount(bands)),
		zap.Float64("resistance_ohms", value.Resistance),
		zap.Float64("tolerance_percent", value.Tolerance),
		zap.String("display", display),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, ValueResponse{Value: value, Display: display})
}

func missingBands(b Bands) []string {
	var missing []string
	if b.First == "" {
		missing = append(missing, "firstBand")
	}
	if b.Second == "" {
		missing = append(missing, "secondBand")
	}
	if b.Multiplier == "" {
		missing = append(missing, "multiplier")
	}
	if b.Tolerance == "" {
		missing = append(missing, "tolerance")
	}
	return missing
}

func bandCount(b Bands) int {
	if b.FiveBand() {
		return 5
	}
	return 4
}

func bandAttributes(b Bands) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("resistors.band.first", b.First),
		attribute.String("resistors.band.second", b.Second),
		attribute.String("resistors.band.multiplier", b.Multiplier),
		attribute.String("resistors.band.tolerance", b.Tolerance),
		attribute.Int("resistors.band.count", bandCount(b)),
	}
	if b.Third != nil {
		attrs = append(attrs, attribute.String("resistors.band.third", *b.Third))
	}
	return attrs
}
