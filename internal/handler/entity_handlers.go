package handler

import (
	"context"

	"github.com/projetoguri/sgpg/internal/form"
	"github.com/projetoguri/sgpg/internal/model"
	"github.com/projetoguri/sgpg/internal/service"
	"github.com/projetoguri/sgpg/internal/session"
	"github.com/rs/zerolog"
)

type (
	StudentHandler         = CRUDHandler[model.Student, model.StudentDTO, form.Student]
	EmployeeHandler        = CRUDHandler[model.Employee, model.EmployeeDTO, form.Employee]
	RoleHandler            = CRUDHandler[model.Role, model.RoleDTO, form.Role]
	InstrumentHandler      = CRUDHandler[model.Instrument, model.InstrumentDTO, form.Instrument]
	InstrumentTypeHandler  = CRUDHandler[model.InstrumentType, model.InstrumentTypeDTO, form.InstrumentType]
	InstrumentBrandHandler = CRUDHandler[model.InstrumentBrand, model.InstrumentBrandDTO, form.InstrumentBrand]
	ClassHandler           = CRUDHandler[model.Class, model.ClassDTO, form.Class]
)

// Services groups the entity services the page handlers work on.
type Services struct {
	Students         *service.EntityService[model.Student, model.StudentDTO]
	Employees        *service.EntityService[model.Employee, model.EmployeeDTO]
	Roles            *service.EntityService[model.Role, model.RoleDTO]
	Instruments      *service.EntityService[model.Instrument, model.InstrumentDTO]
	InstrumentTypes  *service.EntityService[model.InstrumentType, model.InstrumentTypeDTO]
	InstrumentBrands *service.EntityService[model.InstrumentBrand, model.InstrumentBrandDTO]
	Classes          *service.ClassService
}

// EmployeeLookups feeds the role picker and role column.
type EmployeeLookups struct {
	Roles      []model.Role
	RoleTitles map[model.RoleCode]string
}

// InstrumentLookups feeds the type, brand and student pickers.
type InstrumentLookups struct {
	Types        []model.InstrumentType
	Brands       []model.InstrumentBrand
	Students     []model.Student
	TypeNames    map[int]string
	BrandNames   map[int]string
	StudentNames map[int]string
}

// ClassLookups feeds the teacher picker and teacher column.
type ClassLookups struct {
	Teachers     []model.Employee
	TeacherNames map[int]string
}

func NewStudentHandler(s *Services, flasher *session.Flasher, log zerolog.Logger) *StudentHandler {
	return NewCRUDHandler(s.Students, Entity[model.Student, model.StudentDTO, form.Student]{
		Name:       "students",
		Path:       "/students",
		Title:      "Alunos",
		Created:    "Aluno criado com sucesso.",
		Updated:    "Aluno atualizado com sucesso.",
		Deleted:    "Aluno excluído com sucesso.",
		FromRecord: form.StudentFrom,
		Label:      func(r model.Student) string { return r.StudentName },
	}, flasher, log)
}

func NewEmployeeHandler(s *Services, flasher *session.Flasher, log zerolog.Logger) *EmployeeHandler {
	return NewCRUDHandler(s.Employees, Entity[model.Employee, model.EmployeeDTO, form.Employee]{
		Name:       "employees",
		Path:       "/employees",
		Title:      "Funcionários",
		Created:    "Funcionário criado com sucesso.",
		Updated:    "Funcionário atualizado com sucesso.",
		Deleted:    "Funcionário excluído com sucesso.",
		FromRecord: form.EmployeeFrom,
		Label:      func(r model.Employee) string { return r.EmployeeName },
		Lookups: func(ctx context.Context) (any, error) {
			roles, err := s.Roles.List(ctx, false)
			if err != nil {
				return nil, err
			}
			titles := make(map[model.RoleCode]string, len(roles))
			for _, r := range roles {
				titles[model.RoleCode(r.RoleID)] = r.RoleTitle
			}
			return EmployeeLookups{Roles: roles, RoleTitles: titles}, nil
		},
	}, flasher, log)
}

func NewRoleHandler(s *Services, flasher *session.Flasher, log zerolog.Logger) *RoleHandler {
	return NewCRUDHandler(s.Roles, Entity[model.Role, model.RoleDTO, form.Role]{
		Name:       "roles",
		Path:       "/roles",
		Title:      "Cargos",
		Created:    "Cargo criado com sucesso.",
		Updated:    "Cargo atualizado com sucesso.",
		Deleted:    "Cargo excluído com sucesso.",
		FromRecord: form.RoleFrom,
		Label:      func(r model.Role) string { return r.RoleTitle },
	}, flasher, log)
}

func NewInstrumentHandler(s *Services, flasher *session.Flasher, log zerolog.Logger) *InstrumentHandler {
	return NewCRUDHandler(s.Instruments, Entity[model.Instrument, model.InstrumentDTO, form.Instrument]{
		Name:       "instruments",
		Path:       "/instruments",
		Title:      "Instrumentos",
		Created:    "Instrumento criado com sucesso.",
		Updated:    "Instrumento atualizado com sucesso.",
		Deleted:    "Instrumento excluído com sucesso.",
		FromRecord: form.InstrumentFrom,
		Label:      func(r model.Instrument) string { return r.InstrumentModel },
		Lookups: func(ctx context.Context) (any, error) {
			types, err := s.InstrumentTypes.List(ctx, false)
			if err != nil {
				return nil, err
			}
			brands, err := s.InstrumentBrands.List(ctx, false)
			if err != nil {
				return nil, err
			}
			students, err := s.Students.List(ctx, false)
			if err != nil {
				return nil, err
			}

			l := InstrumentLookups{
				Types:        types,
				Brands:       brands,
				Students:     students,
				TypeNames:    make(map[int]string, len(types)),
				BrandNames:   make(map[int]string, len(brands)),
				StudentNames: make(map[int]string, len(students)),
			}
			for _, t := range types {
				l.TypeNames[t.InstrumentTypeID] = t.InstrumentTypeName
			}
			for _, b := range brands {
				l.BrandNames[b.InstrumentBrandID] = b.InstrumentBrandName
			}
			for _, st := range students {
				l.StudentNames[st.StudentID] = st.StudentName
			}
			return l, nil
		},
	}, flasher, log)
}

func NewInstrumentTypeHandler(s *Services, flasher *session.Flasher, log zerolog.Logger) *InstrumentTypeHandler {
	return NewCRUDHandler(s.InstrumentTypes, Entity[model.InstrumentType, model.InstrumentTypeDTO, form.InstrumentType]{
		Name:       "instrument_types",
		Path:       "/instruments/types",
		Title:      "Tipos de instrumento",
		Created:    "Tipo criado com sucesso.",
		Updated:    "Tipo atualizado com sucesso.",
		Deleted:    "Tipo excluído com sucesso.",
		FromRecord: form.InstrumentTypeFrom,
		Label:      func(r model.InstrumentType) string { return r.InstrumentTypeName },
	}, flasher, log)
}

func NewInstrumentBrandHandler(s *Services, flasher *session.Flasher, log zerolog.Logger) *InstrumentBrandHandler {
	return NewCRUDHandler(s.InstrumentBrands, Entity[model.InstrumentBrand, model.InstrumentBrandDTO, form.InstrumentBrand]{
		Name:       "instrument_brands",
		Path:       "/instruments/brands",
		Title:      "Marcas de instrumento",
		Created:    "Marca criada com sucesso.",
		Updated:    "Marca atualizada com sucesso.",
		Deleted:    "Marca excluída com sucesso.",
		FromRecord: form.InstrumentBrandFrom,
		Label:      func(r model.InstrumentBrand) string { return r.InstrumentBrandName },
	}, flasher, log)
}

func NewClassHandler(s *Services, flasher *session.Flasher, log zerolog.Logger) *ClassHandler {
	return NewCRUDHandler(s.Classes.EntityService, Entity[model.Class, model.ClassDTO, form.Class]{
		Name:       "classes",
		Path:       "/classes",
		Title:      "Turmas",
		Created:    "Turma criada com sucesso.",
		Updated:    "Turma atualizada com sucesso.",
		Deleted:    "Turma excluída com sucesso.",
		FromRecord: form.ClassFrom,
		Label:      func(r model.Class) string { return r.ClassName },
		Lookups: func(ctx context.Context) (any, error) {
			teachers, err := s.Classes.Teachers(ctx)
			if err != nil {
				return nil, err
			}
			names := make(map[int]string, len(teachers))
			for _, t := range teachers {
				names[t.EmployeeID] = t.EmployeeName
			}
			return ClassLookups{Teachers: teachers, TeacherNames: names}, nil
		},
	}, flasher, log)
}
