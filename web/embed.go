package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/*.tmpl static/*
var Assets embed.FS

// StaticFS serves the /static assets: the board script and its stylesheet.
func StaticFS() (http.FileSystem, error) {
	sub, err := fs.Sub(Assets, "static")
	if err != nil {
		return nil, err
	}
	return http.FS(sub), nil
}

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.ParseFS(Assets, "templates/*.tmpl")
}
