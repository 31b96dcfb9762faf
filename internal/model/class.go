package model

import "time"

// ClassDTO is the write payload for a class.
type ClassDTO struct {
	ClassName     string  `json:"class_name"`
	ClassDesc     *string `json:"class_desc"`
	ClassTeacher  *int    `json:"class_teacher"`
	ClassDuration *int    `json:"class_duration"`
	ClassDays     *string `json:"class_days"`
	CreatedBy     int     `json:"created_by"`
	IsDeleted     bool    `json:"is_deleted"`
}

// Class is a music class taught by one teacher.
type Class struct {
	ClassDTO
	ClassID   int        `json:"class_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at"`
}

func (c Class) Deleted() bool { return c.IsDeleted }
func (c Class) DTO() ClassDTO { return c.ClassDTO }

// StudentOfClassDTO enrolls a student in a class.
type StudentOfClassDTO struct {
	StudentID int `json:"student_id"`
	ClassID   int `json:"class_id"`
	CreatedBy int `json:"created_by"`
}

// StudentOfClass is one roster entry with the enrolled student embedded.
type StudentOfClass struct {
	StudentOfClassDTO
	CreatedAt time.Time `json:"created_at"`
	Student   Student   `json:"students"`
}

func (d ClassDTO) SoftDeleted() ClassDTO { d.IsDeleted = true; return d }
