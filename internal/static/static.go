// Package static embeds the assets served under /static/.
package static

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed styles
var files embed.FS

// FS returns the embedded assets rooted at the static directory.
func FS() fs.FS {
	return files
}

// Handler serves the assets. Mount it behind http.StripPrefix("/static/", …).
func Handler() http.Handler {
	return http.FileServerFS(files)
}
