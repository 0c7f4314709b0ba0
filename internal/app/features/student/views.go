// internal/app/features/student/views/views.go
package student

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "student",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
