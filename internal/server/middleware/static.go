package middleware

import (
	"io/fs"
	"net/http"
	"path"
	"strings"
)

// Static serves files from dir for GET and HEAD requests.
//
// A request is served when its path names a regular file under dir, or a directory
// containing index.html. Paths with a segment starting with "." are never served.
// Anything else falls through to the next handler, so routes and the not found
// handler still apply when no file matches. A missing dir is not an error.
func Static(dir string) func(http.Handler) http.Handler {
	root := http.Dir(dir)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}

			name := path.Clean("/" + r.URL.Path)
			if hasDotSegment(name) {
				next.ServeHTTP(w, r)
				return
			}

			f, info, ok := openStaticFile(root, name)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			defer f.Close()

			http.ServeContent(w, r, info.Name(), info.ModTime(), f)
		})
	}
}

// openStaticFile opens name in root, resolving directories to their index.html.
// ok is false unless the result is a regular file.
func openStaticFile(root http.FileSystem, name string) (http.File, fs.FileInfo, bool) {
	f, info, ok := openRegular(root, name)
	if ok {
		return f, info, true
	}
	if info != nil && info.IsDir() {
		return openRegular(root, path.Join(name, "index.html"))
	}
	return nil, nil, false
}

// openRegular returns the stat result even when the file is not regular so the caller
// can tell directories apart from missing files.
func openRegular(root http.FileSystem, name string) (http.File, fs.FileInfo, bool) {
	f, err := root.Open(name)
	if err != nil {
		return nil, nil, false
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, nil, false
	}
	if !info.Mode().IsRegular() {
		_ = f.Close()
		return nil, info, false
	}
	return f, info, true
}

func hasDotSegment(name string) bool {
	for _, segment := range strings.Split(name, "/") {
		if strings.HasPrefix(segment, ".") {
			return true
		}
	}
	return false
}
