package policy

import (
	"testing"

	"github.com/projetoguri/sgpg/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestAllowed(t *testing.T) {
	tests := []struct {
		name     string
		role     model.RoleCode
		resource Resource
		action   Action
		want     bool
	}{
		{"admin creates class", model.RoleAdmin, Classes, Create, true},
		{"coordinator cannot create class", model.RoleCoordinator, Classes, Create, false},
		{"teacher cannot delete class", model.RoleTeacher, Classes, Delete, false},
		{"coordinator creates student", model.RoleCoordinator, Students, Create, true},
		{"staff cannot update student", model.RoleStaff, Students, Update, false},
		{"coordinator cannot delete student", model.RoleCoordinator, Students, Delete, false},
		{"admin deletes student", model.RoleAdmin, Students, Delete, true},
		{"teacher edits instruments", model.RoleTeacher, Instruments, Update, true},
		{"staff creates employee", model.RoleStaff, Employees, Create, true},
		{"staff cannot assign role", model.RoleStaff, Employees, AssignRole, false},
		{"admin sets salary", model.RoleAdmin, Employees, SetSalary, true},
		{"unknown role denied", model.RoleCode(9), Roles, Create, false},
		{"field action on other resource denied", model.RoleAdmin, Students, SetSalary, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Allowed(tt.role, tt.resource, tt.action))
		})
	}
}

func TestPermissions(t *testing.T) {
	assert.Equal(t, Set{Create: true, Update: true}, Permissions(model.RoleCoordinator, Students))
	assert.Equal(t, Set{Create: true, Update: true, Delete: true, AssignRole: true, SetSalary: true},
		Permissions(model.RoleAdmin, Employees))
}

func TestTeacherCandidate(t *testing.T) {
	teacher := &model.Employee{EmployeeRole: model.RoleTeacher}
	assert.True(t, TeacherCandidate(teacher))
	assert.False(t, TeacherCandidate(&model.Employee{EmployeeRole: model.RoleAdmin}))
	assert.False(t, TeacherCandidate(&model.Employee{EmployeeRole: model.RoleTeacher, IsDeleted: true}))
	assert.False(t, TeacherCandidate(nil))
}
