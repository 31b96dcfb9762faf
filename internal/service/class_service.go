package service

import (
	"context"

	"github.com/projetoguri/sgpg/internal/model"
	"github.com/projetoguri/sgpg/internal/policy"
	"github.com/rs/zerolog"
)

// RosterBackend is the class roster join endpoint.
type RosterBackend interface {
	Roster(ctx context.Context, classID int) ([]model.StudentOfClass, error)
	Enroll(ctx context.Context, dto model.StudentOfClassDTO) (*model.StudentOfClass, error)
	Unenroll(ctx context.Context, classID, studentID int) error
}

// ClassService handles classes, their rosters and the teacher picker.
type ClassService struct {
	*EntityService[model.Class, model.ClassDTO]
	roster    RosterBackend
	employees Backend[model.Employee, model.EmployeeDTO]
}

// ClassBackend is what the REST client offers for classes.
type ClassBackend interface {
	Backend[model.Class, model.ClassDTO]
	RosterBackend
}

// NewClassService creates a new ClassService.
func NewClassService(classes ClassBackend, employees Backend[model.Employee, model.EmployeeDTO], log zerolog.Logger) *ClassService {
	return &ClassService{
		EntityService: NewEntityService[model.Class, model.ClassDTO](classes, policy.Classes, log),
		roster:        classes,
		employees:     employees,
	}
}

// Teachers lists the employees that may teach a class.
func (s *ClassService) Teachers(ctx context.Context) ([]model.Employee, error) {
	all, err := s.employees.GetAll(ctx, false)
	if err != nil {
		return nil, err
	}
	teachers := make([]model.Employee, 0, len(all))
	for i := range all {
		if policy.TeacherCandidate(&all[i]) {
			teachers = append(teachers, all[i])
		}
	}
	return teachers, nil
}

// Roster lists the students enrolled in a class.
func (s *ClassService) Roster(ctx context.Context, classID int) ([]model.StudentOfClass, error) {
	entries, err := s.roster.Roster(ctx, classID)
	if err != nil {
		s.log.Error().Err(err).Int("class_id", classID).Msg("Roster failed")
		return nil, err
	}
	return entries, nil
}

// Enroll adds a student to a class. Changing a roster counts as updating
// the class.
func (s *ClassService) Enroll(ctx context.Context, actor *model.Session, dto model.StudentOfClassDTO) error {
	if err := s.authorize(actor, policy.Update); err != nil {
		return err
	}
	entries, err := s.Roster(ctx, dto.ClassID)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.StudentID == dto.StudentID {
			return ErrAlreadyEnrolled
		}
	}
	if _, err := s.roster.Enroll(ctx, dto); err != nil {
		s.log.Error().Err(err).Int("class_id", dto.ClassID).Int("student_id", dto.StudentID).Msg("Enroll failed")
		return err
	}
	s.log.Info().Int("class_id", dto.ClassID).Int("student_id", dto.StudentID).Int("actor", actor.EmployeeID).Msg("Student enrolled")
	return nil
}

// Unenroll removes a student from a class.
func (s *ClassService) Unenroll(ctx context.Context, actor *model.Session, classID, studentID int) error {
	if err := s.authorize(actor, policy.Update); err != nil {
		return err
	}
	if err := s.roster.Unenroll(ctx, classID, studentID); err != nil {
		s.log.Error().Err(err).Int("class_id", classID).Int("student_id", studentID).Msg("Unenroll failed")
		return err
	}
	s.log.Info().Int("class_id", classID).Int("student_id", studentID).Int("actor", actor.EmployeeID).Msg("Student unenrolled")
	return nil
}
