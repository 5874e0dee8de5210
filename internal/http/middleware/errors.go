package middleware

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/tzelal/go-htmx-starter/internal/apperr"
	"github.com/tzelal/go-htmx-starter/internal/http/htmx"
)

// genericErrorMessage is the only text an untyped failure may leak to the
// caller. The underlying error stays in the logs.
const genericErrorMessage = "Internal server error"

// ErrorEnvelope is the JSON error shape returned to API clients:
//
//	{"error": {"message": "...", "details": {...}}}
type ErrorEnvelope struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the human-readable message and optional structured
// details of a failure.
type ErrorBody struct {
	Message string         `json:"message" example:"Item 42 not found"`
	Details map[string]any `json:"details"`
}

// errorFragment renders the HTML snippet returned to fragment-preferring
// clients. Only the message is interpolated (escaped by html/template);
// structured details are never rendered to HTML.
var errorFragment = template.Must(template.New("error").Parse(
	`<div class="p-4 bg-red-100 border border-red-400 rounded">
    <p class="text-red-800 font-semibold">{{.}}</p>
</div>
`))

// ErrorHandler is the translation boundary of the request pipeline. It must
// wrap every route.
//
// Handlers signal expected failures by attaching a typed *apperr.Error via
// c.Error(...) and aborting. After the handler chain returns, ErrorHandler
// inspects the collected errors:
//
//   - Typed failure: logged at warn level (message, status, details) and
//     rendered with the kind's fixed status. Fragment-preferring clients get
//     an HTML snippet containing only the message; everyone else gets the
//     ErrorEnvelope JSON.
//   - Anything else (an untyped error or a panic): logged at error level
//     with the concrete type of the failure and, for panics, a stack trace.
//     The response is a generic 500 — the underlying message never reaches
//     the caller.
//
// The middleware never re-raises: every request that enters it terminates
// with a well-formed response. The correlation header is already on the
// response at this point because CorrelationID() sets it before dispatch.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				// A panicking handler may still carry a typed failure.
				if ae := asAppError(rec); ae != nil {
					renderTyped(c, ae)
					return
				}
				LoggerFrom(c).Error().
					Interface("panic", rec).
					Str("origin", fmt.Sprintf("%T", rec)).
					Bytes("stack", debug.Stack()).
					Msg("unhandled panic")
				renderGeneric(c)
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var ae *apperr.Error
		if errors.As(err, &ae) {
			renderTyped(c, ae)
			return
		}

		LoggerFrom(c).Error().
			Err(err).
			Str("origin", fmt.Sprintf("%T", err)).
			Msg("unhandled error")
		renderGeneric(c)
	}
}

// asAppError extracts a typed failure from a panic value, whether it was
// panicked directly or wrapped in an error.
func asAppError(rec any) *apperr.Error {
	switch v := rec.(type) {
	case *apperr.Error:
		return v
	case error:
		var ae *apperr.Error
		if errors.As(v, &ae) {
			return ae
		}
	}
	return nil
}

// renderTyped writes the response for an expected failure.
func renderTyped(c *gin.Context, ae *apperr.Error) {
	LoggerFrom(c).Warn().
		Str("kind", string(ae.Kind)).
		Int("status", ae.Status()).
		Interface("details", ae.Details()).
		Msg(ae.Message)

	if c.Writer.Written() {
		c.Abort()
		return
	}
	if htmx.IsHTMX(c.Request) {
		writeFragment(c, ae.Status(), ae.Message)
		return
	}
	c.AbortWithStatusJSON(ae.Status(), ErrorEnvelope{
		Error: ErrorBody{Message: ae.Message, Details: ae.Details()},
	})
}

// renderGeneric writes the fixed 500 response for untyped failures.
func renderGeneric(c *gin.Context) {
	if c.Writer.Written() {
		c.Abort()
		return
	}
	if htmx.IsHTMX(c.Request) {
		writeFragment(c, http.StatusInternalServerError, genericErrorMessage)
		return
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorEnvelope{
		Error: ErrorBody{Message: genericErrorMessage, Details: map[string]any{}},
	})
}

// writeFragment emits the escaped HTML error snippet with the given status.
func writeFragment(c *gin.Context, status int, message string) {
	c.Abort()
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	// Execute cannot fail here: the template is static and the data a string.
	_ = errorFragment.Execute(c.Writer, message)
}
