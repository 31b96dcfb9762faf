package model

import (
	"encoding/json"
	"strconv"
	"time"
)

// Money accepts both JSON numbers and numeric strings; the backend sends
// decimal columns as strings.
type Money float64

func (m *Money) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*m = 0
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		*m = Money(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*m = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*m = Money(f)
	return nil
}

// EmployeeDTO is the write payload for an employee. The password is omitted
// on updates that keep the stored one.
type EmployeeDTO struct {
	EmployeeName     string   `json:"employee_name"`
	EmployeeCPF      string   `json:"employee_cpf"`
	EmployeeEmail    string   `json:"employee_email"`
	EmployeePassword string   `json:"employee_password,omitempty"`
	EmployeePhone    string   `json:"employee_phone"`
	EmployeeAddr     string   `json:"employee_addr"`
	EmployeeSalary   Money    `json:"employee_salary"`
	EmployeeRole     RoleCode `json:"employee_role"`
	CreatedBy        int      `json:"created_by"`
	IsDeleted        bool     `json:"is_deleted"`
}

// Employee is the record returned by the backend. It never carries the password.
type Employee struct {
	EmployeeID     int        `json:"employee_id"`
	EmployeeName   string     `json:"employee_name"`
	EmployeeCPF    string     `json:"employee_cpf"`
	EmployeeEmail  string     `json:"employee_email"`
	EmployeePhone  string     `json:"employee_phone"`
	EmployeeAddr   string     `json:"employee_addr"`
	EmployeeSalary Money      `json:"employee_salary"`
	EmployeeRole   RoleCode   `json:"employee_role"`
	CreatedBy      int        `json:"created_by"`
	IsDeleted      bool       `json:"is_deleted"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at"`
	DeletedAt      *time.Time `json:"deleted_at"`
}

func (e Employee) Deleted() bool { return e.IsDeleted }

// DTO rebuilds the write payload from the record, without a password.
func (e Employee) DTO() EmployeeDTO {
	return EmployeeDTO{
		EmployeeName:   e.EmployeeName,
		EmployeeCPF:    e.EmployeeCPF,
		EmployeeEmail:  e.EmployeeEmail,
		EmployeePhone:  e.EmployeePhone,
		EmployeeAddr:   e.EmployeeAddr,
		EmployeeSalary: e.EmployeeSalary,
		EmployeeRole:   e.EmployeeRole,
		CreatedBy:      e.CreatedBy,
		IsDeleted:      e.IsDeleted,
	}
}

func (d EmployeeDTO) SoftDeleted() EmployeeDTO { d.IsDeleted = true; return d }
