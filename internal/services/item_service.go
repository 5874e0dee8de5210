// Package services contains the business logic of the starter template.
//
// Services sit between HTTP handlers and repositories: they validate input,
// apply domain rules, and report expected failures as typed apperr values.
// Handlers never interpret repository results directly.
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tzelal/go-htmx-starter/internal/apperr"
	"github.com/tzelal/go-htmx-starter/internal/domain"
	"github.com/tzelal/go-htmx-starter/internal/repo"
)

// Validation limits for item fields. Shared by the JSON API and the HTMX
// form path so both surfaces enforce identical rules.
const (
	maxNameLen        = 100
	maxDescriptionLen = 500
)

// ItemService implements CRUD operations for the example item resource on
// top of an injected repository. It is safe for concurrent use as long as
// the repository is.
type ItemService struct {
	Repo repo.ItemRepository
}

// NewItemService returns an ItemService backed by r.
func NewItemService(r repo.ItemRepository) *ItemService {
	return &ItemService{Repo: r}
}

// List returns all items.
func (s *ItemService) List(ctx context.Context) ([]domain.Item, error) {
	return s.Repo.List(ctx)
}

// Get returns the item with the given id, or a NotFound failure.
func (s *ItemService) Get(ctx context.Context, id int) (*domain.Item, error) {
	it, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, notFound(id)
	}
	return it, nil
}

// Create validates the payload and stores a new item.
func (s *ItemService) Create(ctx context.Context, req domain.CreateItemRequest) (*domain.Item, error) {
	name := strings.TrimSpace(req.Name)
	if details := validateFields(name, req.Description, req.Price); len(details) > 0 {
		return nil, apperr.Validation("", details)
	}

	now := time.Now().UTC()
	return s.Repo.Create(ctx, domain.Item{
		Name:        name,
		Description: req.Description,
		Price:       req.Price,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

// Update applies the set fields of req to an existing item. Unset fields are
// left untouched.
func (s *ItemService) Update(ctx context.Context, id int, req domain.UpdateItemRequest) (*domain.Item, error) {
	it, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, notFound(id)
	}

	updated := *it
	if req.Name != nil {
		updated.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		updated.Description = *req.Description
	}
	if req.Price != nil {
		updated.Price = *req.Price
	}
	if details := validateFields(updated.Name, updated.Description, updated.Price); len(details) > 0 {
		return nil, apperr.Validation("", details)
	}
	updated.UpdatedAt = time.Now().UTC()

	found, err := s.Repo.Update(ctx, updated)
	if err != nil {
		return nil, err
	}
	if !found {
		// Item vanished between Get and Update.
		return nil, notFound(id)
	}
	return &updated, nil
}

// Delete removes the item with the given id, or reports NotFound.
func (s *ItemService) Delete(ctx context.Context, id int) error {
	found, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return notFound(id)
	}
	return nil
}

// notFound builds the canonical not-found failure for an item id.
func notFound(id int) *apperr.Error {
	return apperr.NotFound(fmt.Sprintf("Item %d not found", id), nil)
}

// validateFields checks the item field constraints and returns one entry per
// violated field. An empty map means the fields are valid.
func validateFields(name, description string, price float64) map[string]any {
	details := map[string]any{}
	if name == "" {
		details["name"] = "must not be empty"
	} else if len(name) > maxNameLen {
		details["name"] = fmt.Sprintf("must be at most %d characters", maxNameLen)
	}
	if len(description) > maxDescriptionLen {
		details["description"] = fmt.Sprintf("must be at most %d characters", maxDescriptionLen)
	}
	if price <= 0 {
		details["price"] = "must be greater than zero"
	}
	return details
}
