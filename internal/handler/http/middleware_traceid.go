package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	traceIDHeader = "X-Trace-ID"

	// maxTraceIDLength bounds client-supplied trace ids; longer ones are
	// replaced.
	maxTraceIDLength = 128
)

// withTraceID attaches a request-scoped child logger carrying trace_id to the
// request context and echoes the id back in the X-Trace-ID response header.
//
// A usable client id is kept. Otherwise the id of the active OpenTelemetry
// span is used so logs and traces share it, and without a span a UUID is
// generated. The span, if any, also carries the id as an attribute.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		span := trace.SpanFromContext(ctx)

		traceID := r.Header.Get(traceIDHeader)
		if !usableTraceID(traceID) {
			if sc := span.SpanContext(); sc.HasTraceID() {
				traceID = sc.TraceID().String()
			} else {
				traceID = uuid.NewString()
			}
		}
		span.SetAttributes(attribute.String("app.trace_id", traceID))

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}

// usableTraceID accepts short printable ASCII ids, which keeps control
// characters out of logs and response headers.
func usableTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}

	return true
}
