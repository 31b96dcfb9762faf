package client

import (
	"context"
	"net/http"
	"strconv"

	"github.com/projetoguri/sgpg/internal/model"
)

// ClassResource adds the class roster join endpoint.
type ClassResource struct {
	*Resource[model.Class, model.ClassDTO]
}

// Roster lists the students enrolled in a class.
func (r *ClassResource) Roster(ctx context.Context, classID int) ([]model.StudentOfClass, error) {
	var env model.Envelope[[]model.StudentOfClass]
	if err := r.c.do(ctx, http.MethodGet, r.rosterPath(classID), nil, &env); err != nil {
		return nil, err
	}
	if env.Records == nil {
		return []model.StudentOfClass{}, nil
	}
	return env.Records, nil
}

// Enroll adds a student to the class named in dto.
func (r *ClassResource) Enroll(ctx context.Context, dto model.StudentOfClassDTO) (*model.StudentOfClass, error) {
	var env model.Envelope[*model.StudentOfClass]
	if err := r.c.do(ctx, http.MethodPost, r.rosterPath(dto.ClassID), dto, &env); err != nil {
		return nil, err
	}
	return env.Records, nil
}

// Unenroll removes a student from a class.
func (r *ClassResource) Unenroll(ctx context.Context, classID, studentID int) error {
	path := append(r.rosterPath(classID), strconv.Itoa(studentID))
	return r.c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (r *ClassResource) rosterPath(classID int) []string {
	return []string{r.path, strconv.Itoa(classID), "students"}
}
