package form

import (
	"github.com/projetoguri/sgpg/internal/format"
	"github.com/projetoguri/sgpg/internal/model"
)

// Role is the role create/edit form.
type Role struct {
	Title string `form:"title" binding:"required,max=255"`
	Desc  string `form:"desc" binding:"max=1000"`
}

func RoleFrom(r model.Role) Role {
	return Role{Title: r.RoleTitle, Desc: text(r.RoleDesc)}
}

func (f Role) CreateDTO(actor *model.Session) model.RoleDTO {
	return model.RoleDTO{
		RoleTitle: trim(f.Title),
		RoleDesc:  format.Blank(f.Desc),
		CreatedBy: actor.EmployeeID,
	}
}

func (f Role) UpdateDTO(_ *model.Session, stored model.Role) model.RoleDTO {
	dto := stored.DTO()
	dto.RoleTitle = trim(f.Title)
	dto.RoleDesc = format.Blank(f.Desc)
	return dto
}
