package model

import "time"

// StudentDTO is the write payload for a student.
type StudentDTO struct {
	StudentName        string  `json:"student_name"`
	StudentRG          *string `json:"student_rg"`
	StudentCPF         string  `json:"student_cpf"`
	StudentEmail       *string `json:"student_email"`
	StudentPhone       *string `json:"student_phone"`
	StudentAddr        string  `json:"student_addr"`
	StudentResponsible *int    `json:"student_responsible"`
	StudentScholarship *int    `json:"student_scholarship"`
	CreatedBy          int     `json:"created_by"`
	IsDeleted          bool    `json:"is_deleted"`
}

// Student is a student record.
type Student struct {
	StudentDTO
	StudentID int        `json:"student_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at"`
}

func (s Student) Deleted() bool   { return s.IsDeleted }
func (s Student) DTO() StudentDTO { return s.StudentDTO }

func (d StudentDTO) SoftDeleted() StudentDTO { d.IsDeleted = true; return d }
