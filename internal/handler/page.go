package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/projetoguri/sgpg/internal/apperr"
	"github.com/projetoguri/sgpg/internal/middleware"
	"github.com/projetoguri/sgpg/internal/model"
	"github.com/projetoguri/sgpg/internal/response"
	"github.com/projetoguri/sgpg/internal/service"
	"github.com/projetoguri/sgpg/internal/session"
	"github.com/rs/zerolog"
)

// Page is what every HTML template receives.
type Page struct {
	Title   string
	Menu    string
	Session *model.Session
	Flashes []session.Flash
	Data    any
}

// pages carries what every page handler needs to render and notify.
type pages struct {
	flasher *session.Flasher
	log     zerolog.Logger
}

func (p *pages) render(c *gin.Context, status int, name, title, menu string, data any, extra ...session.Flash) {
	flashes := p.flasher.Pop(c.Writer, c.Request)
	c.HTML(status, name, Page{
		Title:   title,
		Menu:    menu,
		Session: middleware.CurrentSession(c),
		Flashes: append(flashes, extra...),
		Data:    data,
	})
}

func (p *pages) redirect(c *gin.Context, to string) {
	c.Redirect(http.StatusSeeOther, to)
}

func (p *pages) success(c *gin.Context, message, to string) {
	p.flasher.Add(c.Writer, c.Request, session.Flash{Level: session.FlashSuccess, Title: "Eba!", Message: message})
	p.redirect(c, to)
}

func (p *pages) notice(c *gin.Context, code response.ErrCode, to string) {
	p.flasher.Add(c.Writer, c.Request, session.Flash{Level: session.FlashInfo, Message: response.GetMessage(code)})
	p.redirect(c, to)
}

// fail turns any error into a notification and sends the browser to.
func (p *pages) fail(c *gin.Context, err error, to string) {
	p.flasher.Add(c.Writer, c.Request, p.errorFlash(c, err))
	p.redirect(c, to)
}

func (p *pages) errorFlash(c *gin.Context, err error) session.Flash {
	code := errorCode(err)
	if code == response.ErrInternal {
		evt := p.log.Error().Err(err).Str("request_id", c.GetString(response.ContextKeyRequestID))
		if ae, ok := apperr.As(err); ok {
			evt = evt.Int("status", ae.Status).Str("stack", ae.Stack())
		}
		evt.Msg("Request failed")
	}
	return session.Flash{Level: session.FlashError, Title: "Opa!", Message: response.GetMessage(code)}
}

func validationFlash() session.Flash {
	return session.Flash{Level: session.FlashError, Title: "Opa!", Message: response.GetMessage(response.ErrValidation)}
}

// errorCode maps the errors services raise on purpose to their codes.
// Everything else is reported with the generic message.
func errorCode(err error) response.ErrCode {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		return response.ErrPermissionDenied
	case errors.Is(err, service.ErrNotFound):
		return response.ErrNotFound
	case errors.Is(err, service.ErrAlreadyEnrolled):
		return response.ErrAlreadyEnrolled
	case errors.Is(err, service.ErrInvalidCredentials):
		return response.ErrInvalidCredentials
	case errors.Is(err, service.ErrEmployeeDeleted):
		return response.ErrEmployeeDeleted
	default:
		return response.ErrInternal
	}
}

func paramID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func showDeleted(c *gin.Context) bool {
	v := c.Query("deleted")
	return v == "1" || v == "true"
}
