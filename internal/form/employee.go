package form

import (
	"strings"

	"github.com/projetoguri/sgpg/internal/format"
	"github.com/projetoguri/sgpg/internal/model"
	"github.com/projetoguri/sgpg/internal/policy"
)

// defaultPasswordDigits is how many leading CPF digits make up the initial
// password when none is typed.
const defaultPasswordDigits = 4

// Employee is the employee create/edit form.
type Employee struct {
	Name            string  `form:"name" binding:"required,max=255"`
	CPF             string  `form:"cpf" binding:"required,cpf"`
	Email           string  `form:"email" binding:"required,email,max=255"`
	Password        string  `form:"password" binding:"max=128"`
	ConfirmPassword string  `form:"confirm_password" binding:"required_with=Password,eqfield=Password"`
	Phone           string  `form:"phone" binding:"required,phone"`
	Addr            string  `form:"addr" binding:"max=255"`
	Salary          float64 `form:"salary" binding:"gte=0"`
	Role            int     `form:"role" binding:"gte=0"`
}

// EmployeeFrom fills the edit form from a stored record.
func EmployeeFrom(e model.Employee) Employee {
	return Employee{
		Name:   e.EmployeeName,
		CPF:    format.CPF(e.EmployeeCPF),
		Email:  e.EmployeeEmail,
		Phone:  format.Phone(e.EmployeePhone),
		Addr:   e.EmployeeAddr,
		Salary: float64(e.EmployeeSalary),
		Role:   int(e.EmployeeRole),
	}
}

// CreateDTO builds the payload for a new employee. An empty password becomes
// the first four digits of the CPF. Role and salary come from the form only
// when actor may set them.
func (f Employee) CreateDTO(actor *model.Session) model.EmployeeDTO {
	cpf := format.Digits(f.CPF)
	password := f.Password
	if strings.TrimSpace(password) == "" {
		password = cpf
		if len(password) > defaultPasswordDigits {
			password = password[:defaultPasswordDigits]
		}
	}

	dto := model.EmployeeDTO{
		EmployeeName:     trim(f.Name),
		EmployeeCPF:      cpf,
		EmployeeEmail:    trim(f.Email),
		EmployeePassword: password,
		EmployeePhone:    format.Digits(f.Phone),
		EmployeeAddr:     trim(f.Addr),
		EmployeeRole:     model.RoleStaff,
		CreatedBy:        actor.EmployeeID,
	}
	if policy.Allowed(actor.EmployeeRole, policy.Employees, policy.AssignRole) && f.Role > 0 {
		dto.EmployeeRole = model.RoleCode(f.Role)
	}
	if policy.Allowed(actor.EmployeeRole, policy.Employees, policy.SetSalary) {
		dto.EmployeeSalary = model.Money(f.Salary)
	}
	return dto
}

// UpdateDTO builds the payload for an edit. The CPF and creator never change;
// an empty password keeps the stored one.
func (f Employee) UpdateDTO(actor *model.Session, stored model.Employee) model.EmployeeDTO {
	dto := stored.DTO()
	dto.EmployeeName = trim(f.Name)
	dto.EmployeeCPF = format.Digits(stored.EmployeeCPF)
	dto.EmployeeEmail = trim(f.Email)
	dto.EmployeePhone = format.Digits(f.Phone)
	dto.EmployeeAddr = trim(f.Addr)
	if strings.TrimSpace(f.Password) != "" {
		dto.EmployeePassword = f.Password
	}
	if policy.Allowed(actor.EmployeeRole, policy.Employees, policy.AssignRole) && f.Role > 0 {
		dto.EmployeeRole = model.RoleCode(f.Role)
	}
	if policy.Allowed(actor.EmployeeRole, policy.Employees, policy.SetSalary) {
		dto.EmployeeSalary = model.Money(f.Salary)
	}
	return dto
}
