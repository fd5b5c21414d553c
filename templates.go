// Package candidateform exposes the embedded HTML assets of the candidate
// form so applications can serve or extend them without importing the
// renderer packages directly.
package candidateform

import (
	"io/fs"

	vanilla "github.com/goliatone/go-candidateform/pkg/renderers/vanilla"
)

// EmbeddedTemplates exposes the built-in vanilla renderer templates.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// StylesheetFS exposes the default stylesheet bundle. Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(candidateform.StylesheetFS()),
//	  ),
//	)
func StylesheetFS() fs.FS {
	return vanilla.AssetsFS()
}
