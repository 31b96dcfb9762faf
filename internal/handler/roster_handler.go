package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/projetoguri/sgpg/internal/form"
	"github.com/projetoguri/sgpg/internal/middleware"
	"github.com/projetoguri/sgpg/internal/model"
	"github.com/projetoguri/sgpg/internal/policy"
	"github.com/projetoguri/sgpg/internal/response"
	"github.com/projetoguri/sgpg/internal/service"
	"github.com/projetoguri/sgpg/internal/session"
	"github.com/projetoguri/sgpg/internal/validator"
	"github.com/rs/zerolog"
)

// RosterData is the class roster page model.
type RosterData struct {
	Class     model.Class
	Entries   []model.StudentOfClass
	Available []model.Student
	Errors    map[string]string
	Perm      policy.Set
}

// RosterHandler handles the students enrolled in a class.
type RosterHandler struct {
	pages
	classService *service.ClassService
	students     *service.EntityService[model.Student, model.StudentDTO]
}

// NewRosterHandler creates a new RosterHandler.
func NewRosterHandler(classService *service.ClassService, students *service.EntityService[model.Student, model.StudentDTO], flasher *session.Flasher, log zerolog.Logger) *RosterHandler {
	return &RosterHandler{
		pages:        pages{flasher: flasher, log: log.With().Str("handler", "roster").Logger()},
		classService: classService,
		students:     students,
	}
}

func rosterPath(classID int) string {
	return "/classes/" + strconv.Itoa(classID) + "/students"
}

// ShowRoster godoc
// GET /classes/:id/students
// Lists the enrolled students and those that can still be enrolled.
func (h *RosterHandler) ShowRoster(c *gin.Context) {
	h.showRoster(c, http.StatusOK, nil)
}

func (h *RosterHandler) showRoster(c *gin.Context, status int, errs map[string]string) {
	classID, ok := paramID(c, "id")
	if !ok {
		h.notice(c, response.ErrInvalidID, "/classes")
		return
	}

	ctx := c.Request.Context()
	class, err := h.classService.Get(ctx, classID)
	if err != nil {
		h.fail(c, err, "/classes")
		return
	}
	entries, err := h.classService.Roster(ctx, classID)
	if err != nil {
		h.fail(c, err, "/classes")
		return
	}
	students, err := h.students.List(ctx, false)
	if err != nil {
		h.fail(c, err, "/classes")
		return
	}

	enrolled := make(map[int]bool, len(entries))
	for _, e := range entries {
		enrolled[e.StudentID] = true
	}
	available := make([]model.Student, 0, len(students))
	for _, s := range students {
		if !enrolled[s.StudentID] {
			available = append(available, s)
		}
	}

	var perm policy.Set
	if sess := middleware.CurrentSession(c); sess != nil {
		perm = policy.Permissions(sess.EmployeeRole, policy.Classes)
	}

	data := RosterData{Class: *class, Entries: entries, Available: available, Errors: errs, Perm: perm}
	if errs != nil {
		h.render(c, status, "roster.html", class.ClassName, "classes", data, validationFlash())
		return
	}
	h.render(c, status, "roster.html", class.ClassName, "classes", data)
}

// Enroll godoc
// POST /classes/:id/students
// Adds a student to the class.
func (h *RosterHandler) Enroll(c *gin.Context) {
	classID, ok := paramID(c, "id")
	if !ok {
		h.notice(c, response.ErrInvalidID, "/classes")
		return
	}

	var f form.Enroll
	if errs := validator.Bind(c, &f); errs != nil {
		h.showRoster(c, http.StatusUnprocessableEntity, errs)
		return
	}

	actor := middleware.CurrentSession(c)
	if err := h.classService.Enroll(c.Request.Context(), actor, f.DTO(actor, classID)); err != nil {
		h.fail(c, err, rosterPath(classID))
		return
	}
	h.success(c, "Aluno matriculado com sucesso.", rosterPath(classID))
}

// Unenroll godoc
// POST /classes/:id/students/:student_id/delete
// Removes a student from the class.
func (h *RosterHandler) Unenroll(c *gin.Context) {
	classID, ok := paramID(c, "id")
	if !ok {
		h.notice(c, response.ErrInvalidID, "/classes")
		return
	}
	studentID, ok := paramID(c, "student_id")
	if !ok {
		h.notice(c, response.ErrInvalidID, rosterPath(classID))
		return
	}

	if err := h.classService.Unenroll(c.Request.Context(), middleware.CurrentSession(c), classID, studentID); err != nil {
		h.fail(c, err, rosterPath(classID))
		return
	}
	h.success(c, "Aluno removido da turma.", rosterPath(classID))
}
