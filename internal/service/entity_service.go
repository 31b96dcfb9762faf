package service

import (
	"context"
	"net/http"

	"github.com/projetoguri/sgpg/internal/apperr"
	"github.com/projetoguri/sgpg/internal/client"
	"github.com/projetoguri/sgpg/internal/model"
	"github.com/projetoguri/sgpg/internal/policy"
	"github.com/rs/zerolog"
)

// Backend is the REST resource an EntityService works on.
type Backend[T any, D any] interface {
	GetAll(ctx context.Context, includeDeleted bool) ([]T, error)
	GetByID(ctx context.Context, id int) (*T, error)
	Create(ctx context.Context, dto D) (*T, error)
	Update(ctx context.Context, id int, dto D) (*T, error)
}

// SoftDeletable is a DTO that can produce its deleted copy.
type SoftDeletable[D any] interface {
	SoftDeleted() D
}

// EntityService handles the list/create/update/delete flow shared by every
// entity, with the role policy checked before any write.
type EntityService[T client.Record[D], D SoftDeletable[D]] struct {
	backend Backend[T, D]
	kind    policy.Resource
	log     zerolog.Logger
}

// NewEntityService creates a new EntityService for one resource.
func NewEntityService[T client.Record[D], D SoftDeletable[D]](backend Backend[T, D], kind policy.Resource, log zerolog.Logger) *EntityService[T, D] {
	return &EntityService[T, D]{
		backend: backend,
		kind:    kind,
		log:     log.With().Str("resource", string(kind)).Logger(),
	}
}

// Resource returns the policy resource this service is checked against.
func (s *EntityService[T, D]) Resource() policy.Resource { return s.kind }

// List retrieves the live records, or every record when includeDeleted is set.
func (s *EntityService[T, D]) List(ctx context.Context, includeDeleted bool) ([]T, error) {
	records, err := s.backend.GetAll(ctx, includeDeleted)
	if err != nil {
		s.log.Error().Err(err).Msg("List failed")
		return nil, err
	}
	return records, nil
}

// Get retrieves one record by its ID.
func (s *EntityService[T, D]) Get(ctx context.Context, id int) (*T, error) {
	rec, err := s.backend.GetByID(ctx, id)
	if err != nil {
		if apperr.IsStatus(err, http.StatusNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error().Err(err).Int("id", id).Msg("Get failed")
		return nil, err
	}
	return rec, nil
}

// Create stores a new record on behalf of actor.
func (s *EntityService[T, D]) Create(ctx context.Context, actor *model.Session, dto D) (*T, error) {
	if err := s.authorize(actor, policy.Create); err != nil {
		return nil, err
	}
	rec, err := s.backend.Create(ctx, dto)
	if err != nil {
		s.log.Error().Err(err).Int("actor", actor.EmployeeID).Msg("Create failed")
		return nil, err
	}
	s.log.Info().Int("actor", actor.EmployeeID).Msg("Record created")
	return rec, nil
}

// Update replaces the fields of record id with dto.
func (s *EntityService[T, D]) Update(ctx context.Context, actor *model.Session, id int, dto D) error {
	if err := s.authorize(actor, policy.Update); err != nil {
		return err
	}
	if _, err := s.backend.Update(ctx, id, dto); err != nil {
		s.log.Error().Err(err).Int("id", id).Int("actor", actor.EmployeeID).Msg("Update failed")
		return err
	}
	s.log.Info().Int("id", id).Int("actor", actor.EmployeeID).Msg("Record updated")
	return nil
}

// Delete soft-deletes record id: the stored record is sent back with
// is_deleted set. The backend's hard delete is never called.
func (s *EntityService[T, D]) Delete(ctx context.Context, actor *model.Session, id int) error {
	if err := s.authorize(actor, policy.Delete); err != nil {
		return err
	}
	rec, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if (*rec).Deleted() {
		return nil
	}
	if _, err := s.backend.Update(ctx, id, (*rec).DTO().SoftDeleted()); err != nil {
		s.log.Error().Err(err).Int("id", id).Int("actor", actor.EmployeeID).Msg("Delete failed")
		return err
	}
	s.log.Info().Int("id", id).Int("actor", actor.EmployeeID).Msg("Record deleted")
	return nil
}

func (s *EntityService[T, D]) authorize(actor *model.Session, action policy.Action) error {
	if actor == nil || !policy.Allowed(actor.EmployeeRole, s.kind, action) {
		return ErrPermissionDenied
	}
	return nil
}
