// Package web holds the embedded HTML templates and static assets.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/projetoguri/sgpg/internal/format"
	"github.com/projetoguri/sgpg/internal/model"
	"github.com/projetoguri/sgpg/internal/policy"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates parses every page template. Templates are addressed by file name.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(Funcs()).ParseFS(templateFS, "templates/*.html")
}

// Static serves the files under static/.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

// Row is what the row_actions partial receives.
type Row struct {
	Path    string
	Perm    policy.Set
	ID      int
	Deleted bool
}

// Funcs returns the helpers available to every template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"str": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
		"intval": func(i *int) int {
			if i == nil {
				return 0
			}
			return *i
		},
		"cpf":       format.CPF,
		"phone":     format.Phone,
		"plural":    format.Plural,
		"firstName": format.FirstName,
		"money":     func(m model.Money) string { return format.BRL(float64(m)) },
		"roleName": func(titles map[model.RoleCode]string, code model.RoleCode) string {
			if t, ok := titles[code]; ok && t != "" {
				return t
			}
			return code.String()
		},
		"row": func(path string, perm policy.Set, id int, deleted bool) Row {
			return Row{Path: path, Perm: perm, ID: id, Deleted: deleted}
		},
	}
}
