// internal/app/features/faculty/views/views.go
package faculty

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "faculty",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
