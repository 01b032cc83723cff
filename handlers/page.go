package handlers

import (
	"encoding/json"
	"html/template"
	"net/http"

	"productcatalog/logger"
	"productcatalog/models"
)

const (
	// InertiaHeader marks requests from, and responses to, the page client.
	InertiaHeader         = "X-Inertia"
	inertiaVersionHeader  = "X-Inertia-Version"
	inertiaLocationHeader = "X-Inertia-Location"
)

var pageShell = template.Must(template.New("app").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<link rel="stylesheet" href="/web/app.css">
<script src="/web/app.js" defer></script>
</head>
<body>
<div id="app" data-page="{{.Page}}"></div>
</body>
</html>
`))

// PageRenderer answers page visits with a page object, either as JSON for the
// client router or embedded in the HTML shell on a full load.
type PageRenderer struct {
	title   string
	version string
}

// NewPageRenderer creates a renderer; version changes force clients to reload.
func NewPageRenderer(title, version string) *PageRenderer {
	return &PageRenderer{title: title, version: version}
}

// Render writes component with props.
func (p *PageRenderer) Render(w http.ResponseWriter, r *http.Request, component string, props interface{}) {
	page := models.Page{
		Component: component,
		Props:     props,
		URL:       r.URL.RequestURI(),
		Version:   p.version,
	}

	w.Header().Set("Vary", InertiaHeader)

	if isPageVisit(r) {
		if r.Method == http.MethodGet {
			if v := r.Header.Get(inertiaVersionHeader); v != "" && v != p.version {
				w.Header().Set(inertiaLocationHeader, r.URL.RequestURI())
				w.WriteHeader(http.StatusConflict)
				return
			}
		}
		w.Header().Set(InertiaHeader, "true")
		writeJSON(w, http.StatusOK, page)
		return
	}

	encoded, err := json.Marshal(page)
	if err != nil {
		logger.WithFields(map[string]interface{}{
			"component": component,
			"error":     err.Error(),
		}).Error("Failed to encode page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageShell.Execute(w, struct {
		Title string
		Page  string
	}{Title: p.title, Page: string(encoded)}); err != nil {
		logger.WithFields(map[string]interface{}{
			"component": component,
			"error":     err.Error(),
		}).Error("Failed to render page shell")
	}
}

// redirect sends the client to location with 303 so it follows with GET.
func redirect(w http.ResponseWriter, r *http.Request, location string) {
	http.Redirect(w, r, location, http.StatusSeeOther)
}
