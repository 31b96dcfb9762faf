package form

import (
	"github.com/projetoguri/sgpg/internal/format"
	"github.com/projetoguri/sgpg/internal/model"
)

// Class is the class create/edit form.
type Class struct {
	Name     string `form:"name" binding:"required,max=255"`
	Desc     string `form:"desc" binding:"max=1000"`
	Teacher  int    `form:"teacher" binding:"gte=0"`
	Duration int    `form:"duration" binding:"gte=0"`
	Days     string `form:"days" binding:"max=255"`
}

// ClassFrom fills the edit form from a stored record.
func ClassFrom(c model.Class) Class {
	return Class{
		Name:     c.ClassName,
		Desc:     text(c.ClassDesc),
		Teacher:  idValue(c.ClassTeacher),
		Duration: idValue(c.ClassDuration),
		Days:     text(c.ClassDays),
	}
}

func (f Class) fill(dto *model.ClassDTO) {
	dto.ClassName = trim(f.Name)
	dto.ClassDesc = format.Blank(f.Desc)
	dto.ClassTeacher = optionalID(f.Teacher)
	dto.ClassDuration = optionalID(f.Duration)
	dto.ClassDays = format.Blank(f.Days)
}

// CreateDTO builds the payload for a new class.
func (f Class) CreateDTO(actor *model.Session) model.ClassDTO {
	dto := model.ClassDTO{CreatedBy: actor.EmployeeID}
	f.fill(&dto)
	return dto
}

// UpdateDTO builds the payload for an edit.
func (f Class) UpdateDTO(_ *model.Session, stored model.Class) model.ClassDTO {
	dto := stored.DTO()
	f.fill(&dto)
	return dto
}

// Enroll adds a student to a class roster.
type Enroll struct {
	StudentID int `form:"student_id" binding:"required,gt=0"`
}

// DTO builds the roster entry for classID.
func (f Enroll) DTO(actor *model.Session, classID int) model.StudentOfClassDTO {
	return model.StudentOfClassDTO{
		StudentID: f.StudentID,
		ClassID:   classID,
		CreatedBy: actor.EmployeeID,
	}
}
