// Package form declares the entity forms, their field rules and the DTO
// builders that turn a submitted form into a backend payload.
package form

import (
	"reflect"
	"strings"

	"github.com/projetoguri/sgpg/internal/format"
	"github.com/projetoguri/sgpg/internal/model"
)

// Errors maps a form field name to its message.
type Errors map[string]string

// Unchanged reports whether two payloads are identical.
func Unchanged[D any](a, b D) bool {
	return reflect.DeepEqual(a, b)
}

// Editor is a form that rebuilds the payload of a stored record.
type Editor[T any, D any] interface {
	UpdateDTO(actor *model.Session, stored T) D
}

// Untouched reports whether submitted, posted from an edit form that was
// filled from stored, changes nothing. Both sides go through the same
// UpdateDTO, so a stored "" and a blank field compare equal. Such a submit
// is refused.
func Untouched[T any, D any, F Editor[T, D]](actor *model.Session, stored T, filled, submitted F) bool {
	return Unchanged(filled.UpdateDTO(actor, stored), submitted.UpdateDTO(actor, stored))
}

func optionalID(id int) *int {
	if id <= 0 {
		return nil
	}
	return &id
}

func idValue(id *int) int {
	if id == nil {
		return 0
	}
	return *id
}

func text(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func digitsOrNil(s string) *string {
	return format.Blank(format.Digits(s))
}

func trim(s string) string { return strings.TrimSpace(s) }
