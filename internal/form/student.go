package form

import (
	"github.com/projetoguri/sgpg/internal/format"
	"github.com/projetoguri/sgpg/internal/model"
)

// Student is the student create/edit form.
type Student struct {
	Name  string `form:"name" binding:"required,max=255"`
	RG    string `form:"rg" binding:"max=20"`
	CPF   string `form:"cpf" binding:"required,cpf"`
	Email string `form:"email" binding:"omitempty,email,max=255"`
	Phone string `form:"phone" binding:"omitempty,phone"`
	Addr  string `form:"addr" binding:"required,max=255"`
}

// StudentFrom fills the edit form from a stored record.
func StudentFrom(s model.Student) Student {
	return Student{
		Name:  s.StudentName,
		RG:    text(s.StudentRG),
		CPF:   format.CPF(s.StudentCPF),
		Email: text(s.StudentEmail),
		Phone: format.Phone(text(s.StudentPhone)),
		Addr:  s.StudentAddr,
	}
}

// CreateDTO builds the payload for a new student.
func (f Student) CreateDTO(actor *model.Session) model.StudentDTO {
	return model.StudentDTO{
		StudentName:  trim(f.Name),
		StudentRG:    digitsOrNil(f.RG),
		StudentCPF:   format.Digits(f.CPF),
		StudentEmail: format.Blank(f.Email),
		StudentPhone: digitsOrNil(f.Phone),
		StudentAddr:  trim(f.Addr),
		CreatedBy:    actor.EmployeeID,
	}
}

// UpdateDTO builds the payload for an edit. The CPF is fixed once created;
// responsible and scholarship are kept as stored.
func (f Student) UpdateDTO(_ *model.Session, stored model.Student) model.StudentDTO {
	dto := stored.DTO()
	dto.StudentName = trim(f.Name)
	dto.StudentRG = digitsOrNil(f.RG)
	dto.StudentEmail = format.Blank(f.Email)
	dto.StudentPhone = digitsOrNil(f.Phone)
	dto.StudentAddr = trim(f.Addr)
	return dto
}
