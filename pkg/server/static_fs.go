// Copyright 2019-2021 VMware, Inc.
// SPDX-License-Identifier: BSD-2-Clause

package server

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"
)

const indexPage = "index.html"

// noDirFileSystem hides directories that have no index.html so http.FileServer answers 404 instead
// of generating a listing for them.
type noDirFileSystem struct {
	fs http.FileSystem
}

func (nd noDirFileSystem) Open(name string) (http.File, error) {
	f, err := nd.fs.Open(name)
	if err != nil {
		return nil, err
	}

	s, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if !s.IsDir() {
		return f, nil
	}

	index, err := nd.fs.Open(path.Join(name, indexPage))
	if err != nil {
		_ = f.Close()
		return nil, os.ErrNotExist
	}
	_ = index.Close()
	return f, nil
}

// newStaticHandler serves root with http.FileServer. a request that names an index.html file directly
// is answered with that file rather than FileServer's redirect to the enclosing directory.
func newStaticHandler(root http.FileSystem) http.Handler {
	fileServer := http.FileServer(root)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upath := r.URL.Path
		if !strings.HasPrefix(upath, "/") {
			upath = "/" + upath
		}
		if strings.HasSuffix(upath, "/"+indexPage) {
			serveIndexFile(w, r, root, path.Clean(upath))
			return
		}
		fileServer.ServeHTTP(w, r)
	})
}

func serveIndexFile(w http.ResponseWriter, r *http.Request, root http.FileSystem, name string) {
	f, err := root.Open(name)
	if err != nil {
		msg, code := toHTTPError(err)
		http.Error(w, msg, code)
		return
	}
	defer f.Close()

	d, err := f.Stat()
	if err != nil {
		msg, code := toHTTPError(err)
		http.Error(w, msg, code)
		return
	}
	if d.IsDir() {
		http.NotFound(w, r)
		return
	}
	http.ServeContent(w, r, d.Name(), d.ModTime(), f)
}

// toHTTPError maps file system errors onto the same statuses http.FileServer uses
func toHTTPError(err error) (msg string, httpStatus int) {
	if errors.Is(err, fs.ErrNotExist) {
		return "404 page not found", http.StatusNotFound
	}
	if errors.Is(err, fs.ErrPermission) {
		return "403 Forbidden", http.StatusForbidden
	}
	return "500 Internal Server Error", http.StatusInternalServerError
}
