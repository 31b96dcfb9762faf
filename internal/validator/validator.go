package validator

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/pt_BR"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	pt_translations "github.com/go-playground/validator/v10/translations/pt_BR"
	"github.com/projetoguri/sgpg/internal/format"
)

// trans is the singleton Brazilian Portuguese translator for validation errors.
var (
	trans ut.Translator
	once  sync.Once
)

// Messages shown next to form fields. They override the stock translations
// for the rules the forms use.
var messages = map[string]string{
	"required":      "Campo obrigatório.",
	"required_with": "Campo obrigatório.",
	"url":           "URL inválida.",
	"email":         "E-mail inválido.",
	"cpf":           "CPF inválido.",
	"phone":         "Telefone inválido.",
	"eqfield":       "As senhas não correspondem.",
	"max":           "Valor muito longo.",
	"gte":           "Valor inválido.",
	"gt":            "Selecione uma opção.",
}

// Setup registers the validator with pt_BR translations and the cpf/phone
// rules on Gin's binding engine. Safe to call more than once.
func Setup() {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*govalidator.Validate)
		if !ok {
			return
		}

		// Use the form tag name so errors line up with the submitted fields.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"form", "json"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return fld.Name
		})

		_ = v.RegisterValidation("cpf", func(fl govalidator.FieldLevel) bool {
			return format.ValidCPF(fl.Field().String())
		})
		_ = v.RegisterValidation("phone", func(fl govalidator.FieldLevel) bool {
			return format.ValidPhone(fl.Field().String())
		})

		ptLocale := pt_BR.New()
		uni := ut.New(ptLocale, ptLocale)
		trans, _ = uni.GetTranslator("pt_BR")
		_ = pt_translations.RegisterDefaultTranslations(v, trans)

		for tag, msg := range messages {
			msg := msg
			_ = v.RegisterTranslation(tag, trans,
				func(ut ut.Translator) error { return ut.Add(tag, msg, true) },
				func(ut ut.Translator, fe govalidator.FieldError) string {
					t, _ := ut.T(fe.Tag())
					return t
				})
		}
	})
}

// TranslateErrors takes a binding/validation error and returns a map of
// field name → human-readable error message. If the error is not a
// validation error, it returns a single-key map with "detail".
func TranslateErrors(err error) map[string]string {
	fields := make(map[string]string)

	var ve govalidator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			if trans == nil {
				fields[fe.Field()] = fe.Error()
				continue
			}
			fields[fe.Field()] = fe.Translate(trans)
		}
		return fields
	}

	fields["detail"] = err.Error()
	return fields
}

// Bind binds and validates the submitted form into dst.
// Returns nil on success or a translated field error map on failure.
func Bind(c *gin.Context, dst interface{}) map[string]string {
	if err := c.ShouldBind(dst); err != nil {
		return TranslateErrors(err)
	}
	return nil
}

// Struct validates an already populated value with the same rules as Bind,
// for callers outside an HTTP request.
func Struct(dst interface{}) map[string]string {
	if err := binding.Validator.ValidateStruct(dst); err != nil {
		return TranslateErrors(err)
	}
	return nil
}
