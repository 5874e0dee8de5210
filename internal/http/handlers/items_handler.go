// Item HTTP handlers (JSON API).
//
// This file exposes REST endpoints for the example item resource:
//   - GET    /items          (list, optional limit/offset)
//   - GET    /items/{id}     (fetch one)
//   - POST   /items          (create, 201)
//   - PUT    /items/{id}     (partial update)
//   - DELETE /items/{id}     (delete, 200 with a message body)
//
// DELETE deliberately returns 200 rather than 204: consumers of the original
// API depend on the message body.
package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tzelal/go-htmx-starter/internal/apperr"
	"github.com/tzelal/go-htmx-starter/internal/domain"
	"github.com/tzelal/go-htmx-starter/internal/utils"
)

// ItemService defines the item operations consumed by the HTTP layer.
//
// Implementations must be safe for concurrent use and report expected
// failures as *apperr.Error values.
type ItemService interface {
	List(ctx context.Context) ([]domain.Item, error)
	Get(ctx context.Context, id int) (*domain.Item, error)
	Create(ctx context.Context, req domain.CreateItemRequest) (*domain.Item, error)
	Update(ctx context.Context, id int, req domain.UpdateItemRequest) (*domain.Item, error)
	Delete(ctx context.Context, id int) error
}

// Handlers groups the HTTP endpoints of the starter template around the
// injected item service.
type Handlers struct {
	itemSvc ItemService
	// version is reported by the health endpoint.
	version string
	// basePath is the API prefix (e.g. "/api/v1"), used by HTML templates
	// to address the HTMX endpoints.
	basePath string
	// projectName is rendered on the index page.
	projectName string
}

// New constructs a Handlers instance.
func New(itemSvc ItemService, version, basePath, projectName string) *Handlers {
	return &Handlers{
		itemSvc:     itemSvc,
		version:     version,
		basePath:    basePath,
		projectName: projectName,
	}
}

// itemID parses the :id route parameter. A non-numeric id is a validation
// failure, mirroring the path-parameter coercion of the API contract.
func itemID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		abortErr(c, apperr.Validation("", map[string]any{"id": "must be an integer"}))
		return 0, false
	}
	return id, true
}

// ListItems godoc
// @ID          listItems
// @Summary     List items
// @Description Returns all items, ordered by id. limit and offset are optional.
// @Tags        Items
// @Produce     json
// @Param       limit   query  int  false  "Maximum number of items to return"
// @Param       offset  query  int  false  "Number of items to skip"
// @Success     200  {array}   domain.Item
// @Failure     500  {object}  middleware.ErrorEnvelope  "Internal error"
// @Router      /items [get]
func (h *Handlers) ListItems(c *gin.Context) {
	items, err := h.itemSvc.List(c.Request.Context())
	if err != nil {
		abortErr(c, err)
		return
	}

	// Optional window over the full list; defaults return everything so the
	// response shape stays a plain array.
	offset := utils.AtoiDefault(c.Query("offset"), 0)
	limit := utils.AtoiDefault(c.Query("limit"), len(items))
	if offset < 0 {
		offset = 0
	}
	if offset > len(items) {
		offset = len(items)
	}
	end := offset + limit
	if limit < 0 || end > len(items) {
		end = len(items)
	}

	ok(c, http.StatusOK, items[offset:end])
}

// GetItem godoc
// @ID          getItem
// @Summary     Get an item
// @Tags        Items
// @Produce     json
// @Param       id  path  int  true  "Item ID"
// @Success     200  {object}  domain.Item
// @Failure     404  {object}  middleware.ErrorEnvelope  "Item not found"
// @Failure     422  {object}  middleware.ErrorEnvelope  "Invalid id"
// @Router      /items/{id} [get]
func (h *Handlers) GetItem(c *gin.Context) {
	id, okID := itemID(c)
	if !okID {
		return
	}
	item, err := h.itemSvc.Get(c.Request.Context(), id)
	if err != nil {
		abortErr(c, err)
		return
	}
	ok(c, http.StatusOK, item)
}

// CreateItem godoc
// @ID          createItem
// @Summary     Create an item
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       body  body  domain.CreateItemRequest  true  "Item payload"
// @Success     201  {object}  domain.Item
// @Failure     422  {object}  middleware.ErrorEnvelope  "Validation error"
// @Router      /items [post]
func (h *Handlers) CreateItem(c *gin.Context) {
	var req domain.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortErr(c, bindingError(err))
		return
	}
	item, err := h.itemSvc.Create(c.Request.Context(), req)
	if err != nil {
		abortErr(c, err)
		return
	}
	ok(c, http.StatusCreated, item)
}

// UpdateItem godoc
// @ID          updateItem
// @Summary     Update an item
// @Description Applies the provided fields to an existing item; omitted fields are unchanged.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       id    path  int  true  "Item ID"
// @Param       body  body  domain.UpdateItemRequest  true  "Fields to update"
// @Success     200  {object}  domain.Item
// @Failure     404  {object}  middleware.ErrorEnvelope  "Item not found"
// @Failure     422  {object}  middleware.ErrorEnvelope  "Validation error"
// @Router      /items/{id} [put]
func (h *Handlers) UpdateItem(c *gin.Context) {
	id, okID := itemID(c)
	if !okID {
		return
	}
	var req domain.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortErr(c, bindingError(err))
		return
	}
	item, err := h.itemSvc.Update(c.Request.Context(), id, req)
	if err != nil {
		abortErr(c, err)
		return
	}
	ok(c, http.StatusOK, item)
}

// DeleteItem godoc
// @ID          deleteItem
// @Summary     Delete an item
// @Description Deletes an item and returns a confirmation message with status 200.
// @Tags        Items
// @Produce     json
// @Param       id  path  int  true  "Item ID"
// @Success     200  {object}  handlers.MessageResponse
// @Failure     404  {object}  middleware.ErrorEnvelope  "Item not found"
// @Router      /items/{id} [delete]
func (h *Handlers) DeleteItem(c *gin.Context) {
	id, okID := itemID(c)
	if !okID {
		return
	}
	if err := h.itemSvc.Delete(c.Request.Context(), id); err != nil {
		abortErr(c, err)
		return
	}
	ok(c, http.StatusOK, MessageResponse{
		Message: "Item " + strconv.Itoa(id) + " deleted successfully",
	})
}
