package api

import (
	"net/http"
	"strings"
)

func (a *App) initializeRoutes() {
	a.Router.HandleFunc("/api/routes", a.getRoutes).Methods("GET")
	a.Router.HandleFunc("/api/routes/resolve", a.resolveRoute).Methods("GET")

	for _, e := range a.Table.Entries() {
		a.Router.HandleFunc(muxTemplate(e.Path), a.panelView).Methods("GET", "HEAD")
	}

	a.Router.PathPrefix("/").Handler(http.FileServer(http.Dir(a.PanelDir)))
}

// muxTemplate turns "/configuration/edit/:name" into "/configuration/edit/{name}".
func muxTemplate(path string) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		if strings.HasPrefix(seg, ":") {
			segments[i] = "{" + seg[1:] + "}"
		}
	}
	return strings.Join(segments, "/")
}
