package client

import (
	"context"
	"net/http"
	"strconv"

	"github.com/projetoguri/sgpg/internal/apperr"
	"github.com/projetoguri/sgpg/internal/model"
)

// Record is what every stored entity exposes to the generic resource.
type Record[D any] interface {
	Deleted() bool
	DTO() D
}

// Resource implements the five calls every entity endpoint supports.
type Resource[T Record[D], D any] struct {
	c    *Client
	path string
	// normalize adjusts list entries for display.
	normalize func(*T)
}

func newResource[T Record[D], D any](c *Client, path string) *Resource[T, D] {
	return &Resource[T, D]{c: c, path: path}
}

// GetAll fetches the full set. Soft-deleted records are dropped unless
// includeDeleted is set; the backend never filters.
func (r *Resource[T, D]) GetAll(ctx context.Context, includeDeleted bool) ([]T, error) {
	var env model.Envelope[[]T]
	if err := r.c.do(ctx, http.MethodGet, []string{r.path}, nil, &env); err != nil {
		return nil, err
	}

	records := make([]T, 0, len(env.Records))
	for _, rec := range env.Records {
		if !includeDeleted && rec.Deleted() {
			continue
		}
		if r.normalize != nil {
			r.normalize(&rec)
		}
		records = append(records, rec)
	}
	return records, nil
}

// GetByID fetches one record. A missing record is reported as a 404.
func (r *Resource[T, D]) GetByID(ctx context.Context, id int) (*T, error) {
	return r.one(ctx, http.MethodGet, id, nil)
}

// Create posts a new record and returns it as stored.
func (r *Resource[T, D]) Create(ctx context.Context, dto D) (*T, error) {
	var env model.Envelope[*T]
	if err := r.c.do(ctx, http.MethodPost, []string{r.path}, dto, &env); err != nil {
		return nil, err
	}
	return env.Records, nil
}

// Update replaces the record's fields with dto.
func (r *Resource[T, D]) Update(ctx context.Context, id int, dto D) (*T, error) {
	return r.one(ctx, http.MethodPut, id, dto)
}

// Delete calls the hard-delete endpoint. The UI never does; it soft-deletes
// through Update with is_deleted set.
func (r *Resource[T, D]) Delete(ctx context.Context, id int) (*T, error) {
	return r.one(ctx, http.MethodDelete, id, nil)
}

func (r *Resource[T, D]) one(ctx context.Context, method string, id int, body any) (*T, error) {
	var env model.Envelope[*T]
	if err := r.c.do(ctx, method, []string{r.path, strconv.Itoa(id)}, body, &env); err != nil {
		return nil, err
	}
	if env.Records == nil && method == http.MethodGet {
		return nil, apperr.WithStatus(http.StatusNotFound, "Registro não encontrado.")
	}
	return env.Records, nil
}
