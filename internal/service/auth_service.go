package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/projetoguri/sgpg/internal/apperr"
	"github.com/projetoguri/sgpg/internal/model"
	"github.com/projetoguri/sgpg/internal/session"
	"github.com/rs/zerolog"
)

// Common auth errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmployeeDeleted    = errors.New("employee is deleted")
)

// AuthState is the gate's view of the browser.
type AuthState int

const (
	StateLoading AuthState = iota
	StateAuthenticated
	StateAnonymous
)

func (s AuthState) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return "loading"
	}
}

// EmployeeDirectory is the part of the REST client the gate needs.
type EmployeeDirectory interface {
	Login(ctx context.Context, email, password string) (*model.Employee, error)
	GetByID(ctx context.Context, id int) (*model.Employee, error)
}

// AuthService resolves and mutates the signed-in identity of one browser.
type AuthService struct {
	employees  EmployeeDirectory
	store      *session.Store
	staleAfter time.Duration
	now        func() time.Time
	log        zerolog.Logger
}

// NewAuthService creates a new AuthService. Sessions older than staleAfter
// are re-fetched from the backend on boot.
func NewAuthService(employees EmployeeDirectory, store *session.Store, staleAfter time.Duration, log zerolog.Logger) *AuthService {
	return &AuthService{
		employees:  employees,
		store:      store,
		staleAfter: staleAfter,
		now:        time.Now,
		log:        log.With().Str("component", "auth").Logger(),
	}
}

// Boot reads the persisted session and decides the state for this request.
//
// A fresh session is trusted and only its updated_at moves forward. A stale
// one costs exactly one GET /employees/{id}; if the backend says the
// employee is gone or deleted the browser is signed out, any other failure
// keeps the cached session so the next boot retries.
func (s *AuthService) Boot(ctx context.Context, st session.Storage) (AuthState, *model.Session, error) {
	sess, err := s.store.Load(st)
	if err != nil {
		return StateAnonymous, nil, err
	}
	if sess == nil {
		return StateAnonymous, nil, nil
	}
	if sess.IsDeleted {
		return s.forceLogout(st, sess, "cached session belongs to a deleted employee")
	}

	now := s.now()
	if sess.Age(now) <= s.staleAfter {
		sess.UpdatedAt = now
		s.persist(st, sess)
		return StateAuthenticated, sess, nil
	}

	employee, err := s.employees.GetByID(ctx, sess.EmployeeID)
	switch {
	case apperr.IsStatus(err, http.StatusNotFound):
		return s.forceLogout(st, sess, "employee no longer exists")
	case err != nil:
		s.log.Warn().Err(err).
			Int("employee_id", sess.EmployeeID).
			Dur("age", sess.Age(now)).
			Msg("Session refresh failed, keeping cached session")
		return StateAuthenticated, sess, nil
	case employee.IsDeleted:
		return s.forceLogout(st, sess, "employee was deleted")
	}

	refreshed := model.NewSession(employee, now)
	s.persist(st, refreshed)
	s.log.Debug().Int("employee_id", refreshed.EmployeeID).Msg("Session refreshed from backend")
	return StateAuthenticated, refreshed, nil
}

// SignIn checks the credentials and persists the new session. On failure
// nothing is written.
func (s *AuthService) SignIn(ctx context.Context, st session.Storage, email, password string) (*model.Session, error) {
	employee, err := s.employees.Login(ctx, email, password)
	if err != nil {
		if apperr.IsStatus(err, http.StatusUnauthorized) ||
			apperr.IsStatus(err, http.StatusBadRequest) ||
			apperr.IsStatus(err, http.StatusNotFound) {
			s.log.Info().Str("email", email).Msg("Sign-in rejected")
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if employee.IsDeleted {
		s.log.Info().Int("employee_id", employee.EmployeeID).Msg("Sign-in by deleted employee rejected")
		return nil, ErrEmployeeDeleted
	}

	sess := model.NewSession(employee, s.now())
	if err := s.store.Save(st, sess); err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}
	s.log.Info().Int("employee_id", sess.EmployeeID).Stringer("role", sess.EmployeeRole).Msg("Employee signed in")
	return sess, nil
}

// SignOut clears the persisted session.
func (s *AuthService) SignOut(st session.Storage, sess *model.Session) error {
	if err := s.store.Clear(st); err != nil {
		return err
	}
	if sess != nil {
		s.log.Info().Int("employee_id", sess.EmployeeID).Msg("Employee signed out")
	}
	return nil
}

func (s *AuthService) forceLogout(st session.Storage, sess *model.Session, reason string) (AuthState, *model.Session, error) {
	s.log.Warn().Int("employee_id", sess.EmployeeID).Str("reason", reason).Msg("Forcing sign-out")
	if err := s.store.Clear(st); err != nil {
		return StateAnonymous, nil, err
	}
	return StateAnonymous, nil, nil
}

// persist writes the session back. A storage failure only costs the
// updated_at bump, so it is logged rather than returned.
func (s *AuthService) persist(st session.Storage, sess *model.Session) {
	if err := s.store.Save(st, sess); err != nil {
		s.log.Warn().Err(err).Int("employee_id", sess.EmployeeID).Msg("Could not persist session")
	}
}
