package http

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"
)

// static serves files from the configured directory for GET requests that
// match no API route. Directories are only served through their index.html.
func (h *Handler) static() http.HandlerFunc {
	if h.staticDir == "" {
		return notFound
	}

	files := http.FileServer(http.FS(indexOnlyFS{os.DirFS(h.staticDir)}))
	return files.ServeHTTP
}

// indexOnlyFS hides every path with a segment starting with "." and every
// directory that has no index.html.
type indexOnlyFS struct {
	fs.FS
}

func (f indexOnlyFS) Open(name string) (fs.File, error) {
	if hasDotSegment(name) {
		return nil, fs.ErrNotExist
	}

	file, err := f.FS.Open(name)
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if !info.IsDir() {
		return file, nil
	}

	index, err := f.FS.Open(path.Join(name, "index.html"))
	if err != nil {
		file.Close()
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fs.ErrNotExist
		}
		return nil, err
	}
	index.Close()

	return file, nil
}

// hasDotSegment reports whether any element of name starts with a dot.
// The root "." itself is allowed.
func hasDotSegment(name string) bool {
	if name == "." {
		return false
	}
	for _, segment := range strings.Split(name, "/") {
		if strings.HasPrefix(segment, ".") {
			return true
		}
	}
	return false
}
