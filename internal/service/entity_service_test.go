package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/projetoguri/sgpg/internal/apperr"
	"github.com/projetoguri/sgpg/internal/model"
	"github.com/projetoguri/sgpg/internal/policy"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClasses struct {
	classes  map[int]model.Class
	updates  map[int]model.ClassDTO
	roster   []model.StudentOfClass
	enrolled []model.StudentOfClassDTO
	removed  [][2]int
}

func newFakeClasses() *fakeClasses {
	return &fakeClasses{
		classes: map[int]model.Class{
			1: {ClassID: 1, ClassDTO: model.ClassDTO{ClassName: "Violão I", CreatedBy: 4}},
			2: {ClassID: 2, ClassDTO: model.ClassDTO{ClassName: "Flauta", IsDeleted: true}},
		},
		updates: map[int]model.ClassDTO{},
	}
}

func (f *fakeClasses) GetAll(_ context.Context, includeDeleted bool) ([]model.Class, error) {
	var out []model.Class
	for _, c := range f.classes {
		if includeDeleted || !c.IsDeleted {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeClasses) GetByID(_ context.Context, id int) (*model.Class, error) {
	c, ok := f.classes[id]
	if !ok {
		return nil, apperr.WithStatus(http.StatusNotFound, "Registro não encontrado.")
	}
	return &c, nil
}

func (f *fakeClasses) Create(_ context.Context, dto model.ClassDTO) (*model.Class, error) {
	c := model.Class{ClassDTO: dto, ClassID: len(f.classes) + 1}
	f.classes[c.ClassID] = c
	return &c, nil
}

func (f *fakeClasses) Update(_ context.Context, id int, dto model.ClassDTO) (*model.Class, error) {
	f.updates[id] = dto
	c := model.Class{ClassDTO: dto, ClassID: id}
	return &c, nil
}

func (f *fakeClasses) Roster(_ context.Context, classID int) ([]model.StudentOfClass, error) {
	return f.roster, nil
}

func (f *fakeClasses) Enroll(_ context.Context, dto model.StudentOfClassDTO) (*model.StudentOfClass, error) {
	f.enrolled = append(f.enrolled, dto)
	return &model.StudentOfClass{StudentOfClassDTO: dto}, nil
}

func (f *fakeClasses) Unenroll(_ context.Context, classID, studentID int) error {
	f.removed = append(f.removed, [2]int{classID, studentID})
	return nil
}

type fakeEmployees struct {
	records []model.Employee
}

func (f *fakeEmployees) GetAll(_ context.Context, includeDeleted bool) ([]model.Employee, error) {
	return f.records, nil
}
func (f *fakeEmployees) GetByID(context.Context, int) (*model.Employee, error) { return nil, nil }
func (f *fakeEmployees) Create(context.Context, model.EmployeeDTO) (*model.Employee, error) {
	return nil, nil
}
func (f *fakeEmployees) Update(context.Context, int, model.EmployeeDTO) (*model.Employee, error) {
	return nil, nil
}

var (
	adminActor       = &model.Session{EmployeeID: 4, EmployeeRole: model.RoleAdmin}
	coordinatorActor = &model.Session{EmployeeID: 3, EmployeeRole: model.RoleCoordinator}
)

func TestEntityServiceSoftDelete(t *testing.T) {
	backend := newFakeClasses()
	svc := NewEntityService[model.Class, model.ClassDTO](backend, policy.Classes, zerolog.Nop())

	require.NoError(t, svc.Delete(context.Background(), adminActor, 1))
	sent, ok := backend.updates[1]
	require.True(t, ok)
	assert.True(t, sent.IsDeleted)
	assert.Equal(t, "Violão I", sent.ClassName)
	assert.Equal(t, 4, sent.CreatedBy)

	// Already deleted: nothing to send.
	require.NoError(t, svc.Delete(context.Background(), adminActor, 2))
	_, ok = backend.updates[2]
	assert.False(t, ok)
}

func TestEntityServicePolicy(t *testing.T) {
	backend := newFakeClasses()
	svc := NewEntityService[model.Class, model.ClassDTO](backend, policy.Classes, zerolog.Nop())
	ctx := context.Background()

	_, err := svc.Create(ctx, coordinatorActor, model.ClassDTO{ClassName: "Canto"})
	assert.ErrorIs(t, err, ErrPermissionDenied)
	assert.ErrorIs(t, svc.Update(ctx, coordinatorActor, 1, model.ClassDTO{}), ErrPermissionDenied)
	assert.ErrorIs(t, svc.Delete(ctx, coordinatorActor, 1), ErrPermissionDenied)
	assert.ErrorIs(t, svc.Delete(ctx, nil, 1), ErrPermissionDenied)
	assert.Empty(t, backend.updates)

	created, err := svc.Create(ctx, adminActor, model.ClassDTO{ClassName: "Canto"})
	require.NoError(t, err)
	assert.Equal(t, "Canto", created.ClassName)
}

func TestEntityServiceGet(t *testing.T) {
	svc := NewEntityService[model.Class, model.ClassDTO](newFakeClasses(), policy.Classes, zerolog.Nop())

	_, err := svc.Get(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)

	live, err := svc.List(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, live, 1)

	all, err := svc.List(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestClassServiceRoster(t *testing.T) {
	backend := newFakeClasses()
	backend.roster = []model.StudentOfClass{{StudentOfClassDTO: model.StudentOfClassDTO{StudentID: 10, ClassID: 1}}}
	svc := NewClassService(backend, &fakeEmployees{}, zerolog.Nop())
	ctx := context.Background()

	err := svc.Enroll(ctx, adminActor, model.StudentOfClassDTO{StudentID: 10, ClassID: 1, CreatedBy: 4})
	assert.ErrorIs(t, err, ErrAlreadyEnrolled)

	require.NoError(t, svc.Enroll(ctx, adminActor, model.StudentOfClassDTO{StudentID: 11, ClassID: 1, CreatedBy: 4}))
	require.Len(t, backend.enrolled, 1)
	assert.Equal(t, 11, backend.enrolled[0].StudentID)

	assert.ErrorIs(t, svc.Unenroll(ctx, coordinatorActor, 1, 10), ErrPermissionDenied)
	require.NoError(t, svc.Unenroll(ctx, adminActor, 1, 10))
	assert.Equal(t, [][2]int{{1, 10}}, backend.removed)
}

func TestClassServiceTeachers(t *testing.T) {
	employees := &fakeEmployees{records: []model.Employee{
		{EmployeeID: 1, EmployeeRole: model.RoleTeacher},
		{EmployeeID: 2, EmployeeRole: model.RoleStaff},
		{EmployeeID: 3, EmployeeRole: model.RoleTeacher},
	}}
	svc := NewClassService(newFakeClasses(), employees, zerolog.Nop())

	teachers, err := svc.Teachers(context.Background())
	require.NoError(t, err)
	require.Len(t, teachers, 2)
	assert.Equal(t, 1, teachers[0].EmployeeID)
	assert.Equal(t, 3, teachers[1].EmployeeID)
}
