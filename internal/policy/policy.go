// Package policy holds the single table of what each role may do.
package policy

import "github.com/projetoguri/sgpg/internal/model"

// Resource is a managed entity family.
type Resource string

const (
	Students    Resource = "students"
	Employees   Resource = "employees"
	Roles       Resource = "roles"
	Instruments Resource = "instruments"
	Classes     Resource = "classes"
)

// Action is something a role may be allowed to do on a resource.
type Action string

const (
	Create Action = "create"
	Update Action = "update"
	Delete Action = "delete"

	// Employee field actions.
	AssignRole Action = "assign_role"
	SetSalary  Action = "set_salary"
)

type rule struct {
	resource Resource
	action   Action
}

var (
	everyone   = []model.RoleCode{model.RoleTeacher, model.RoleStaff, model.RoleCoordinator, model.RoleAdmin}
	adminOnly  = []model.RoleCode{model.RoleAdmin}
	management = []model.RoleCode{model.RoleCoordinator, model.RoleAdmin}
)

var table = map[rule][]model.RoleCode{
	{Students, Create}: management,
	{Students, Update}: management,
	{Students, Delete}: adminOnly,

	{Employees, Create}:     everyone,
	{Employees, Update}:     everyone,
	{Employees, Delete}:     everyone,
	{Employees, AssignRole}: adminOnly,
	{Employees, SetSalary}:  adminOnly,

	{Roles, Create}: everyone,
	{Roles, Update}: everyone,
	{Roles, Delete}: everyone,

	{Instruments, Create}: everyone,
	{Instruments, Update}: everyone,
	{Instruments, Delete}: everyone,

	{Classes, Create}: adminOnly,
	{Classes, Update}: adminOnly,
	{Classes, Delete}: adminOnly,
}

// Allowed reports whether role may perform action on resource. Unknown roles,
// resources and actions are denied.
func Allowed(role model.RoleCode, resource Resource, action Action) bool {
	for _, r := range table[rule{resource, action}] {
		if r == role {
			return true
		}
	}
	return false
}

// Set is the resolved permission set of one role on one resource, shaped for
// templates.
type Set struct {
	Create     bool
	Update     bool
	Delete     bool
	AssignRole bool
	SetSalary  bool
}

// Permissions resolves every action of resource for role.
func Permissions(role model.RoleCode, resource Resource) Set {
	return Set{
		Create:     Allowed(role, resource, Create),
		Update:     Allowed(role, resource, Update),
		Delete:     Allowed(role, resource, Delete),
		AssignRole: Allowed(role, resource, AssignRole),
		SetSalary:  Allowed(role, resource, SetSalary),
	}
}

// TeacherCandidate reports whether an employee may be picked as a class
// teacher.
func TeacherCandidate(e *model.Employee) bool {
	return e != nil && !e.IsDeleted && e.EmployeeRole == model.RoleTeacher
}
