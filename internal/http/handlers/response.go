// Package handlers provides the HTTP handler implementations for the starter
// template: the JSON items API, the HTMX fragment endpoints, and the health
// probes.
//
// Handlers are transport-thin: they bind input, call the item service, and
// write success responses. Failures are never rendered here — handlers attach
// a typed apperr value to the Gin context and abort, and the error-boundary
// middleware translates it into a JSON envelope or HTML fragment. That keeps
// the error wire format in exactly one place.
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/tzelal/go-htmx-starter/internal/apperr"
)

// MessageResponse is the standard message-only success body, e.g. for
// deletions.
type MessageResponse struct {
	Message string `json:"message" example:"Item 1 deleted successfully"`
}

// abortErr records err on the context and stops the handler chain. The
// error-boundary middleware picks it up and writes the response.
func abortErr(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// bindingError converts a Gin binding failure into the template's Validation
// failure. The binder's message is developer-facing, so it travels in the
// details rather than the user-visible message.
func bindingError(err error) *apperr.Error {
	return apperr.Validation("", map[string]any{"body": err.Error()})
}

// ok writes a success JSON response.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}
