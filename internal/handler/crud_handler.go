package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/projetoguri/sgpg/internal/client"
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

// EntityForm builds the payloads for one entity.
type EntityForm[T any, D any] interface {
	CreateDTO(actor *model.Session) D
	UpdateDTO(actor *model.Session, stored T) D
}

// Entity describes one managed entity to the CRUD handler.
type Entity[T any, D any, F any] struct {
	// Name is the template prefix and menu key; Path the list URL.
	Name  string
	Path  string
	Title string

	// Notification messages.
	Created string
	Updated string
	Deleted string

	FromRecord func(T) F
	// Label names a record on the delete confirmation.
	Label func(T) string
	// Lookups loads the related records list and form pages show, such as
	// select options.
	Lookups func(ctx context.Context) (any, error)
}

// ListData is the list page model.
type ListData[T any] struct {
	Records     []T
	ShowDeleted bool
	Path        string
	Perm        policy.Set
	Lookups     any
}

// FormData is the create/edit page model.
type FormData[F any] struct {
	Form    F
	Errors  form.Errors
	Action  string
	Path    string
	Edit    bool
	Perm    policy.Set
	Lookups any
}

// ConfirmData is the delete confirmation page model.
type ConfirmData struct {
	Label  string
	Action string
	Path   string
}

// CRUDHandler serves the list, form and delete pages of one entity.
type CRUDHandler[T client.Record[D], D service.SoftDeletable[D], F EntityForm[T, D]] struct {
	pages
	svc    *service.EntityService[T, D]
	entity Entity[T, D, F]
}

// NewCRUDHandler creates a new CRUDHandler.
func NewCRUDHandler[T client.Record[D], D service.SoftDeletable[D], F EntityForm[T, D]](
	svc *service.EntityService[T, D],
	entity Entity[T, D, F],
	flasher *session.Flasher,
	log zerolog.Logger,
) *CRUDHandler[T, D, F] {
	return &CRUDHandler[T, D, F]{
		pages:  pages{flasher: flasher, log: log.With().Str("handler", entity.Name).Logger()},
		svc:    svc,
		entity: entity,
	}
}

// Resource returns the policy resource guarding this handler's writes.
func (h *CRUDHandler[T, D, F]) Resource() policy.Resource { return h.svc.Resource() }

// Path returns the list page URL.
func (h *CRUDHandler[T, D, F]) Path() string { return h.entity.Path }

func (h *CRUDHandler[T, D, F]) perm(c *gin.Context) policy.Set {
	sess := middleware.CurrentSession(c)
	if sess == nil {
		return policy.Set{}
	}
	return policy.Permissions(sess.EmployeeRole, h.svc.Resource())
}

func (h *CRUDHandler[T, D, F]) lookups(c *gin.Context) (any, error) {
	if h.entity.Lookups == nil {
		return nil, nil
	}
	return h.entity.Lookups(c.Request.Context())
}

func (h *CRUDHandler[T, D, F]) recordPath(id int, suffix ...string) string {
	p := h.entity.Path + "/" + strconv.Itoa(id)
	for _, s := range suffix {
		p += "/" + s
	}
	return p
}

// List godoc
// GET /{entity}?deleted=1
// Lists live records, or all of them with deleted=1.
func (h *CRUDHandler[T, D, F]) List(c *gin.Context) {
	deleted := showDeleted(c)
	records, err := h.svc.List(c.Request.Context(), deleted)
	if err != nil {
		h.render(c, http.StatusBadGateway, h.entity.Name+"_list.html", h.entity.Title, h.entity.Name,
			ListData[T]{Path: h.entity.Path, ShowDeleted: deleted}, h.errorFlash(c, err))
		return
	}
	lookups, err := h.lookups(c)
	if err != nil {
		h.render(c, http.StatusBadGateway, h.entity.Name+"_list.html", h.entity.Title, h.entity.Name,
			ListData[T]{Path: h.entity.Path, ShowDeleted: deleted}, h.errorFlash(c, err))
		return
	}

	h.render(c, http.StatusOK, h.entity.Name+"_list.html", h.entity.Title, h.entity.Name, ListData[T]{
		Records:     records,
		ShowDeleted: deleted,
		Path:        h.entity.Path,
		Perm:        h.perm(c),
		Lookups:     lookups,
	})
}

// New godoc
// GET /{entity}/new
// Shows an empty create form.
func (h *CRUDHandler[T, D, F]) New(c *gin.Context) {
	var f F
	h.showForm(c, http.StatusOK, f, nil, 0)
}

// Edit godoc
// GET /{entity}/:id/edit
// Shows the edit form filled from the stored record.
func (h *CRUDHandler[T, D, F]) Edit(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		h.notice(c, response.ErrInvalidID, h.entity.Path)
		return
	}
	rec, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, h.entity.Path)
		return
	}
	h.showForm(c, http.StatusOK, h.entity.FromRecord(*rec), nil, id)
}

func (h *CRUDHandler[T, D, F]) showForm(c *gin.Context, status int, f F, errs form.Errors, id int) {
	lookups, err := h.lookups(c)
	if err != nil {
		h.fail(c, err, h.entity.Path)
		return
	}

	data := FormData[F]{
		Form:    f,
		Errors:  errs,
		Action:  h.entity.Path,
		Path:    h.entity.Path,
		Edit:    id > 0,
		Perm:    h.perm(c),
		Lookups: lookups,
	}
	if id > 0 {
		data.Action = h.recordPath(id)
	}

	if errs != nil {
		h.render(c, status, h.entity.Name+"_form.html", h.entity.Title, h.entity.Name, data, validationFlash())
		return
	}
	h.render(c, status, h.entity.Name+"_form.html", h.entity.Title, h.entity.Name, data)
}

// Create godoc
// POST /{entity}
// Validates the form and creates the record.
func (h *CRUDHandler[T, D, F]) Create(c *gin.Context) {
	var f F
	if errs := validator.Bind(c, &f); errs != nil {
		h.showForm(c, http.StatusUnprocessableEntity, f, errs, 0)
		return
	}

	actor := middleware.CurrentSession(c)
	if _, err := h.svc.Create(c.Request.Context(), actor, f.CreateDTO(actor)); err != nil {
		h.fail(c, err, h.entity.Path)
		return
	}
	h.success(c, h.entity.Created, h.entity.Path)
}

// Update godoc
// POST /{entity}/:id
// Validates the form and updates the record. An edit that changes nothing
// is refused.
func (h *CRUDHandler[T, D, F]) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		h.notice(c, response.ErrInvalidID, h.entity.Path)
		return
	}

	var f F
	if errs := validator.Bind(c, &f); errs != nil {
		h.showForm(c, http.StatusUnprocessableEntity, f, errs, id)
		return
	}

	ctx := c.Request.Context()
	stored, err := h.svc.Get(ctx, id)
	if err != nil {
		h.fail(c, err, h.entity.Path)
		return
	}

	actor := middleware.CurrentSession(c)
	if form.Untouched[T, D](actor, *stored, h.entity.FromRecord(*stored), f) {
		h.notice(c, response.ErrUnchanged, h.recordPath(id, "edit"))
		return
	}

	if err := h.svc.Update(ctx, actor, id, f.UpdateDTO(actor, *stored)); err != nil {
		h.fail(c, err, h.entity.Path)
		return
	}
	h.success(c, h.entity.Updated, h.entity.Path)
}

// ConfirmDelete godoc
// GET /{entity}/:id/delete
// Asks for confirmation before a delete.
func (h *CRUDHandler[T, D, F]) ConfirmDelete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		h.notice(c, response.ErrInvalidID, h.entity.Path)
		return
	}
	rec, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, h.entity.Path)
		return
	}

	h.render(c, http.StatusOK, "confirm_delete.html", h.entity.Title, h.entity.Name, ConfirmData{
		Label:  h.entity.Label(*rec),
		Action: h.recordPath(id, "delete"),
		Path:   h.entity.Path,
	})
}

// Delete godoc
// POST /{entity}/:id/delete
// Soft-deletes the record.
func (h *CRUDHandler[T, D, F]) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		h.notice(c, response.ErrInvalidID, h.entity.Path)
		return
	}
	if err := h.svc.Delete(c.Request.Context(), middleware.CurrentSession(c), id); err != nil {
		h.fail(c, err, h.entity.Path)
		return
	}
	h.success(c, h.entity.Deleted, h.entity.Path)
}
