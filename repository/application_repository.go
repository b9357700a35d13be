package repository

import (
	"context"
	"errors"
	"time"

	"clanPortal/internal/store"
	"clanPortal/models"
)

// ErrInvalidCategory reports an application type outside the closed set.
var ErrInvalidCategory = errors.New("invalid application type")

// categoryCollections maps each category to its collection file name. The
// names are the on-disk layout of the existing deployment.
var categoryCollections = map[models.Category]string{
	models.CategoryGang:      "gangapplications",
	models.CategoryFaction:   "factionapplications",
	models.CategoryWhitelist: "whitelistapplications",
	models.CategoryAdmin:     "adminapplications",
}

// ApplicationRepository stores one collection per application category.
type ApplicationRepository struct {
	collections map[models.Category]*store.Collection
	now         func() time.Time
}

func NewApplicationRepository(s *store.Store) *ApplicationRepository {
	cols := make(map[models.Category]*store.Collection, len(categoryCollections))
	for cat, name := range categoryCollections {
		cols[cat] = s.Collection(name)
	}
	return &ApplicationRepository{collections: cols, now: time.Now}
}

// Submit appends an application to the category's collection, stamping the
// submitting username and the current time. The username must come from the
// caller's session, never from the request body.
func (r *ApplicationRepository) Submit(ctx context.Context, category models.Category, username string, content any) (*models.Application, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c, ok := r.collections[category]
	if !ok {
		return nil, ErrInvalidCategory
	}
	app := models.Application{User: username, Content: content, Date: r.now().UTC()}
	if err := store.Append(c, app); err != nil {
		return nil, err
	}
	return &app, nil
}

// List returns every application in the category, in submission order.
// Role gating happens in the HTTP layer before this is called.
func (r *ApplicationRepository) List(ctx context.Context, category models.Category) ([]models.Application, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c, ok := r.collections[category]
	if !ok {
		return nil, ErrInvalidCategory
	}
	return store.Load[models.Application](c)
}
