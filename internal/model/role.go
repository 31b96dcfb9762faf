package model

import "time"

// RoleCode is the integer role attached to every employee.
type RoleCode int

const (
	RoleTeacher     RoleCode = 1
	RoleStaff       RoleCode = 2
	RoleCoordinator RoleCode = 3
	RoleAdmin       RoleCode = 4
)

// String returns the display name for built-in role codes.
func (r RoleCode) String() string {
	switch r {
	case RoleTeacher:
		return "Professor"
	case RoleStaff:
		return "Funcionário"
	case RoleCoordinator:
		return "Coordenador"
	case RoleAdmin:
		return "Administrador"
	default:
		return "Desconhecido"
	}
}

// RoleDTO is the write payload for a role.
type RoleDTO struct {
	RoleTitle string  `json:"role_title"`
	RoleDesc  *string `json:"role_desc"`
	CreatedBy int     `json:"created_by"`
	IsDeleted bool    `json:"is_deleted"`
}

// Role is a job title an employee can hold.
type Role struct {
	RoleDTO
	RoleID    int        `json:"role_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at"`
}

func (r Role) Deleted() bool { return r.IsDeleted }
func (r Role) DTO() RoleDTO  { return r.RoleDTO }

func (d RoleDTO) SoftDeleted() RoleDTO { d.IsDeleted = true; return d }
