package model

import "time"

// Session is the locally persisted proof of the signed-in employee.
// It is serialized with exactly these six keys.
type Session struct {
	EmployeeID    int       `json:"employee_id"`
	EmployeeName  string    `json:"employee_name"`
	EmployeeEmail string    `json:"employee_email"`
	EmployeeRole  RoleCode  `json:"employee_role"`
	IsDeleted     bool      `json:"is_deleted"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewSession builds a session from the employee record returned by the backend.
func NewSession(e *Employee, now time.Time) *Session {
	return &Session{
		EmployeeID:    e.EmployeeID,
		EmployeeName:  e.EmployeeName,
		EmployeeEmail: e.EmployeeEmail,
		EmployeeRole:  e.EmployeeRole,
		IsDeleted:     e.IsDeleted,
		UpdatedAt:     now,
	}
}

// Age returns how long ago the session was last refreshed.
func (s *Session) Age(now time.Time) time.Duration {
	return now.Sub(s.UpdatedAt)
}

// LoginRequest is the sign-in form.
type LoginRequest struct {
	Email    string `form:"email" json:"employee_email" binding:"required,email,max=255"`
	Password string `form:"password" json:"employee_password" binding:"required,max=128"`
}
