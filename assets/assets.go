// Package assets bundles the template definitions, knowledge documents, and
// record fixtures shipped with the binary.
package assets

import (
	"embed"
	"io/fs"

	"github.com/spf13/afero"
)

//go:embed templates
var templates embed.FS

// Templates returns a read-only filesystem rooted at the template tree.
func Templates() afero.Fs {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		panic(err)
	}
	return afero.FromIOFS{FS: sub}
}
