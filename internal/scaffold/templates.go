package scaffold

import (
	"embed"
	"io/fs"
)

//go:embed templates
var templateFS embed.FS

// builtinTemplates returns the embedded template tree rooted at templates/.
func builtinTemplates() fs.FS {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}
