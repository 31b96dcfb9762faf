package web_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/projetoguri/sgpg/internal/form"
	"github.com/projetoguri/sgpg/internal/handler"
	"github.com/projetoguri/sgpg/internal/model"
	"github.com/projetoguri/sgpg/internal/policy"
	"github.com/projetoguri/sgpg/internal/service"
	"github.com/projetoguri/sgpg/internal/session"
	"github.com/projetoguri/sgpg/internal/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

var admin = &model.Session{EmployeeID: 1, EmployeeName: "Ana Souza", EmployeeEmail: "ana@guri.org", EmployeeRole: model.RoleAdmin}

func render(t *testing.T, name string, page handler.Page) string {
	t.Helper()
	tmpl, err := web.Templates()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, name, page))
	return buf.String()
}

func TestLoginPage(t *testing.T) {
	out := render(t, "login.html", handler.Page{
		Title:   "Entrar",
		Flashes: []session.Flash{{Level: session.FlashError, Title: "Opa!", Message: "E-mail ou senha inválidos."}},
		Data:    handler.LoginData{Email: "ana@guri.org", Errors: map[string]string{"password": "Campo obrigatório."}},
	})

	assert.Contains(t, out, `value="ana@guri.org"`)
	assert.Contains(t, out, "Campo obrigatório.")
	assert.Contains(t, out, `class="toast error"`)
	assert.NotContains(t, out, `action="/logout"`)
}

func TestDashboardPage(t *testing.T) {
	out := render(t, "dashboard.html", handler.Page{
		Title:   "Início",
		Menu:    "home",
		Session: admin,
		Data:    &service.DashboardData{Students: 1, Instruments: 0, Employees: 3, Classes: 2},
	})

	assert.Contains(t, out, "Olá, Ana!")
	assert.Contains(t, out, "<strong>1</strong> Aluno<")
	assert.Contains(t, out, "<strong>0</strong> Instrumentos")
	assert.Contains(t, out, `action="/logout"`)
	assert.Contains(t, out, `href="/" class="active"`)
}

func TestEmployeeListShowsRoleTitlesAndSalary(t *testing.T) {
	records := []model.Employee{
		{EmployeeID: 1, EmployeeName: "Ana", EmployeePhone: "11987654321", EmployeeRole: model.RoleAdmin, EmployeeSalary: 4500},
		{EmployeeID: 2, EmployeeName: "Bia", EmployeeRole: 9, IsDeleted: true},
	}
	lookups := handler.EmployeeLookups{RoleTitles: map[model.RoleCode]string{model.RoleAdmin: "Diretoria"}}

	out := render(t, "employees_list.html", handler.Page{Session: admin, Menu: "employees", Data: handler.ListData[model.Employee]{
		Records:     records,
		ShowDeleted: true,
		Path:        "/employees",
		Perm:        policy.Permissions(model.RoleAdmin, policy.Employees),
		Lookups:     lookups,
	}})

	assert.Contains(t, out, "Diretoria")
	assert.Contains(t, out, "Desconhecido")
	assert.Contains(t, out, "(11) 9 8765-4321")
	assert.Contains(t, out, "R$ 4.500,00")
	assert.Contains(t, out, `href="/employees/1/edit"`)
	assert.NotContains(t, out, `href="/employees/2/edit"`)
	assert.Contains(t, out, "Ocultar excluídos")
}

func TestStudentListHidesButtonsWithoutPermission(t *testing.T) {
	out := render(t, "students_list.html", handler.Page{Session: admin, Data: handler.ListData[model.Student]{
		Records: []model.Student{{StudentID: 4, StudentDTO: model.StudentDTO{StudentName: "Caio", StudentCPF: "52998224725"}}},
		Path:    "/students",
		Perm:    policy.Permissions(model.RoleStaff, policy.Students),
	}})

	assert.Contains(t, out, "529.982.247-25")
	assert.NotContains(t, out, "Novo aluno")
	assert.NotContains(t, out, "/students/4/edit")
	assert.Contains(t, out, `href="/students?deleted=1"`)
}

func TestEmptyListAfterBackendFailure(t *testing.T) {
	for _, name := range []string{"employees_list.html", "instruments_list.html", "classes_list.html"} {
		var data any
		switch name {
		case "employees_list.html":
			data = handler.ListData[model.Employee]{Path: "/employees"}
		case "instruments_list.html":
			data = handler.ListData[model.Instrument]{Path: "/instruments"}
		default:
			data = handler.ListData[model.Class]{Path: "/classes"}
		}
		out := render(t, name, handler.Page{Session: admin, Data: data})
		assert.Contains(t, out, `class="empty"`, name)
	}
}

func TestEmployeeFormOnEdit(t *testing.T) {
	out := render(t, "employees_form.html", handler.Page{Session: admin, Data: handler.FormData[form.Employee]{
		Form:    form.Employee{Name: "Ana", CPF: "529.982.247-25", Role: 4, Password: "nunca"},
		Errors:  form.Errors{"email": "E-mail inválido."},
		Action:  "/employees/1",
		Path:    "/employees",
		Edit:    true,
		Perm:    policy.Permissions(model.RoleAdmin, policy.Employees),
		Lookups: handler.EmployeeLookups{Roles: []model.Role{{RoleID: 2, RoleDTO: model.RoleDTO{RoleTitle: "Funcionário"}}, {RoleID: 4, RoleDTO: model.RoleDTO{RoleTitle: "Administrador"}}}},
	}})

	assert.Contains(t, out, `value="529.982.247-25" data-mask="cpf" readonly`)
	assert.Contains(t, out, `<option value="4" selected>Administrador</option>`)
	assert.Contains(t, out, "E-mail inválido.")
	assert.Contains(t, out, "Deixe em branco para manter a senha atual.")
	assert.NotContains(t, out, "nunca")
}

func TestEmployeeFormHidesRoleAndSalaryForStaff(t *testing.T) {
	out := render(t, "employees_form.html", handler.Page{Data: handler.FormData[form.Employee]{
		Action:  "/employees",
		Path:    "/employees",
		Perm:    policy.Permissions(model.RoleStaff, policy.Employees),
		Lookups: handler.EmployeeLookups{},
	}})

	assert.NotContains(t, out, `name="role"`)
	assert.NotContains(t, out, `name="salary"`)
	assert.NotContains(t, out, "readonly")
}

func TestInstrumentPages(t *testing.T) {
	lookups := handler.InstrumentLookups{
		Types:        []model.InstrumentType{{InstrumentTypeID: 1, InstrumentTypeDTO: model.InstrumentTypeDTO{InstrumentTypeName: "Violino"}}},
		Brands:       []model.InstrumentBrand{{InstrumentBrandID: 2, InstrumentBrandDTO: model.InstrumentBrandDTO{InstrumentBrandName: "Yamaha"}}},
		Students:     []model.Student{{StudentID: 5, StudentDTO: model.StudentDTO{StudentName: "Davi"}}},
		TypeNames:    map[int]string{1: "Violino"},
		BrandNames:   map[int]string{2: "Yamaha"},
		StudentNames: map[int]string{5: "Davi"},
	}

	list := render(t, "instruments_list.html", handler.Page{Session: admin, Data: handler.ListData[model.Instrument]{
		Records: []model.Instrument{
			{InstrumentID: 1, InstrumentDTO: model.InstrumentDTO{InstrumentModel: "V-10", InstrumentType: 1, InstrumentBrand: 2, InstrumentStudent: ptr(5)}},
			{InstrumentID: 2, InstrumentDTO: model.InstrumentDTO{InstrumentModel: "V-20", InstrumentType: 1, InstrumentBrand: 2},
				Brand: &model.InstrumentBrand{InstrumentBrandDTO: model.InstrumentBrandDTO{InstrumentBrandName: "Eagle"}}},
		},
		Path:    "/instruments",
		Perm:    policy.Permissions(model.RoleAdmin, policy.Instruments),
		Lookups: lookups,
	}})
	assert.Contains(t, list, "Davi")
	assert.Contains(t, list, "Eagle")
	assert.Contains(t, list, "Disponível")

	f := render(t, "instruments_form.html", handler.Page{Session: admin, Data: handler.FormData[form.Instrument]{
		Form:    form.Instrument{Model: "V-10", Type: 1, Brand: 2, Student: 5},
		Action:  "/instruments/1",
		Path:    "/instruments",
		Edit:    true,
		Lookups: lookups,
	}})
	assert.Contains(t, f, `<option value="1" selected>Violino</option>`)
	assert.Contains(t, f, `<option value="5" selected>Davi</option>`)
}

func TestTypeAndBrandPages(t *testing.T) {
	types := render(t, "instrument_types_list.html", handler.Page{Session: admin, Data: handler.ListData[model.InstrumentType]{
		Records: []model.InstrumentType{{InstrumentTypeID: 1, InstrumentTypeDTO: model.InstrumentTypeDTO{InstrumentTypeName: "Flauta", InstrumentTypeDesc: ptr("Sopro")}}},
		Path:    "/instruments/types",
	}})
	assert.Contains(t, types, "Sopro")

	brands := render(t, "instrument_brands_list.html", handler.Page{Session: admin, Data: handler.ListData[model.InstrumentBrand]{
		Records: []model.InstrumentBrand{{InstrumentBrandID: 1, InstrumentBrandDTO: model.InstrumentBrandDTO{InstrumentBrandName: "Yamaha", InstrumentBrandLogo: ptr("https://example.com/y.png")}}},
		Path:    "/instruments/brands",
	}})
	assert.Contains(t, brands, `src="https://example.com/y.png"`)

	for name, data := range map[string]any{
		"instrument_types_form.html":  handler.FormData[form.InstrumentType]{Path: "/instruments/types", Action: "/instruments/types"},
		"instrument_brands_form.html": handler.FormData[form.InstrumentBrand]{Path: "/instruments/brands", Action: "/instruments/brands"},
		"roles_form.html":             handler.FormData[form.Role]{Path: "/roles", Action: "/roles"},
		"students_form.html":          handler.FormData[form.Student]{Path: "/students", Action: "/students"},
	} {
		out := render(t, name, handler.Page{Session: admin, Data: data})
		assert.Contains(t, out, "Criar", name)
	}
}

func TestClassPages(t *testing.T) {
	list := render(t, "classes_list.html", handler.Page{Session: admin, Data: handler.ListData[model.Class]{
		Records: []model.Class{{ClassID: 3, ClassDTO: model.ClassDTO{ClassName: "Violino I", ClassTeacher: ptr(7), ClassDuration: ptr(90), ClassDays: ptr("Seg, Qua")}}},
		Path:    "/classes",
		Perm:    policy.Permissions(model.RoleAdmin, policy.Classes),
		Lookups: handler.ClassLookups{TeacherNames: map[int]string{7: "Prof. Rui"}},
	}})
	assert.Contains(t, list, "Prof. Rui")
	assert.Contains(t, list, "90 min")
	assert.Contains(t, list, `href="/classes/3/students"`)

	f := render(t, "classes_form.html", handler.Page{Session: admin, Data: handler.FormData[form.Class]{
		Form:    form.Class{Name: "Violino I", Teacher: 7},
		Path:    "/classes",
		Action:  "/classes/3",
		Edit:    true,
		Lookups: handler.ClassLookups{Teachers: []model.Employee{{EmployeeID: 7, EmployeeName: "Prof. Rui"}}},
	}})
	assert.Contains(t, f, `<option value="7" selected>Prof. Rui</option>`)

	roster := render(t, "roster.html", handler.Page{Session: admin, Data: handler.RosterData{
		Class: model.Class{ClassID: 3, ClassDTO: model.ClassDTO{ClassName: "Violino I"}},
		Entries: []model.StudentOfClass{{
			StudentOfClassDTO: model.StudentOfClassDTO{StudentID: 5, ClassID: 3},
			CreatedAt:         time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			Student:           model.Student{StudentID: 5, StudentDTO: model.StudentDTO{StudentName: "Davi"}},
		}},
		Available: []model.Student{{StudentID: 6, StudentDTO: model.StudentDTO{StudentName: "Eva"}}},
		Perm:      policy.Permissions(model.RoleAdmin, policy.Classes),
	}})
	assert.Contains(t, roster, "02/03/2026")
	assert.Contains(t, roster, `action="/classes/3/students/5/delete"`)
	assert.Contains(t, roster, `<option value="6">Eva</option>`)
}

func TestConfirmAndNotFoundPages(t *testing.T) {
	out := render(t, "confirm_delete.html", handler.Page{Session: admin, Data: handler.ConfirmData{
		Label: "Violino I", Action: "/classes/3/delete", Path: "/classes",
	}})
	assert.Contains(t, out, "Violino I")
	assert.Contains(t, out, `action="/classes/3/delete"`)

	out = render(t, "not_found.html", handler.Page{Session: admin})
	assert.Contains(t, out, "404")
}
