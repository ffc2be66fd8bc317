package asset

import (
	"embed"
	"io/fs"
	"path"
	"strings"
)

//go:embed public
var public embed.FS

// Public returns the embedded public dir, rooted so that "next.svg"
// resolves to public/next.svg.
func Public() fs.FS {
	sub, err := fs.Sub(public, "public")
	if err != nil {
		// the directive above guarantees the dir exists
		panic(err)
	}
	return sub
}

// Exists reports whether a request path like "/next.svg" maps to a file.
func Exists(urlPath string) bool {
	name := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	if name == "" || name == "." {
		return false
	}

	info, err := fs.Stat(Public(), name)
	if err != nil {
		return false
	}

	return !info.IsDir()
}
