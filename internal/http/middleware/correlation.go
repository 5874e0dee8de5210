// Package middleware contains the shared Gin middleware that forms the
// request pipeline of the starter template:
//
//   - CorrelationID() binds a per-request correlation identifier
//     (propagated via X-Correlation-ID) to the request context and stamps
//     it on the response.
//   - Logger() emits structured access logs and attaches a request-scoped
//     zerolog.Logger carrying the correlation ID.
//   - ErrorHandler() is the translation boundary: typed apperr failures
//     become JSON envelopes or HTML fragments, and panics become generic
//     500 responses.
//   - Metrics() instruments traffic with Prometheus.
//   - SecurityHeaders() applies conservative hardening headers.
//
// Ordering matters: CorrelationID() → Logger() → ErrorHandler() → routes,
// so that every log line and every error response carries the correlation
// ID, and so that access logs observe the status the error boundary wrote.
package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// correlationIDKey is the Gin context key under which the ID is stored.
	correlationIDKey = "correlationID"
	// HeaderCorrelationID is the HTTP header used to propagate the ID on
	// both requests and responses.
	HeaderCorrelationID = "X-Correlation-ID"
)

// ctxKey is an unexported context key type so values set here cannot collide
// with other packages.
type ctxKey int

const ctxKeyCorrelationID ctxKey = iota

// CorrelationID attaches a correlation identifier to every request.
//
// Behavior:
//   - If the incoming request carries a non-empty X-Correlation-ID header,
//     that value is reused; otherwise a new UUIDv4 is generated.
//   - The ID is stored in the Gin context, added to the request's
//     context.Context (readable via CorrelationIDFrom), and written to the
//     response header before the handler runs, so the header is present on
//     every exit path including errors and panics.
//
// Each request gets its own binding; concurrent requests never observe each
// other's ID because the ID lives in the per-request context only.
func CorrelationID() gin.HandlerFunc {
	return func(c *gin.Context) {
		cid := c.GetHeader(HeaderCorrelationID)
		if cid == "" {
			cid = uuid.NewString()
		}

		c.Set(correlationIDKey, cid)
		c.Writer.Header().Set(HeaderCorrelationID, cid)

		ctx := context.WithValue(c.Request.Context(), ctxKeyCorrelationID, cid)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// CorrelationIDFrom returns the correlation ID bound to ctx, or "" when none
// is set. Services can use this to tag their own log events.
func CorrelationIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKeyCorrelationID).(string); ok {
		return v
	}
	return ""
}

// correlationID reads the ID from the Gin context, falling back to the
// request context. Used by the other middleware in this package.
func correlationID(c *gin.Context) string {
	if v, ok := c.Get(correlationIDKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	if c.Request != nil {
		return CorrelationIDFrom(c.Request.Context())
	}
	return ""
}
