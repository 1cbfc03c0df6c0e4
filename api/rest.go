package api

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/Bnei-Baruch/udpserial-panel/common"
	"github.com/Bnei-Baruch/udpserial-panel/pkg/httputil"
	"github.com/Bnei-Baruch/udpserial-panel/pkg/middleware"
	"github.com/Bnei-Baruch/udpserial-panel/pkg/router"
)

type RoutesResponse struct {
	LinkActiveClass string              `json:"linkActiveClass"`
	Routes          []router.RouteEntry `json:"routes"`
}

type ResolveResponse struct {
	*router.NavigationState
	View            router.View `json:"view"`
	Name            string      `json:"name,omitempty"`
	LinkActiveClass string      `json:"linkActiveClass"`
}

func (a *App) getRoutes(w http.ResponseWriter, r *http.Request) {
	httputil.RespondWithJSON(w, http.StatusOK, RoutesResponse{
		LinkActiveClass: a.Table.LinkActiveClass(),
		Routes:          a.Table.Entries(),
	})
}

func (a *App) resolveRoute(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		httputil.NewBadRequestError(errors.New("path is required")).Abort(w, r)
		return
	}

	nav := router.NewNavigator(a.Table, router.RendererFunc(func(state router.NavigationState) error {
		setView(r, state.View())
		httputil.RespondWithJSON(w, http.StatusOK, ResolveResponse{
			NavigationState: &state,
			View:            state.View(),
			Name:            state.Entry.Name,
			LinkActiveClass: a.Table.LinkActiveClass(),
		})
		return nil
	}))

	if _, err := nav.Navigate(path); err != nil {
		abortNavigation(w, r, err)
	}
}

// panelView answers a deep link into the panel with the panel shell, or with
// a redirect when the path is a redirect entry.
func (a *App) panelView(w http.ResponseWriter, r *http.Request) {
	res := a.Table.Resolve(r.URL.Path)
	if res.Kind == router.Redirect {
		http.Redirect(w, r, res.Target, http.StatusFound)
		return
	}

	nav := router.NewNavigator(a.Table, a.shellRenderer(w, r))
	if _, err := nav.Navigate(r.URL.Path); err != nil {
		abortNavigation(w, r, err)
	}
}

// shellRenderer serves the panel index page; the client side picks the view
// up from its own route table.
func (a *App) shellRenderer(w http.ResponseWriter, r *http.Request) router.Renderer {
	return router.RendererFunc(func(state router.NavigationState) error {
		f, err := os.Open(filepath.Join(a.PanelDir, common.PanelIndex))
		if err != nil {
			return errors.Wrap(err, "open panel index")
		}
		defer f.Close()

		fi, err := f.Stat()
		if err != nil {
			return errors.Wrap(err, "stat panel index")
		}

		setView(r, state.View())
		w.Header().Set(common.ViewHeader, state.View().String())
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		http.ServeContent(w, r, common.PanelIndex, fi.ModTime(), f)
		return nil
	})
}

func abortNavigation(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, router.ErrNotFound) {
		httputil.NewNotFoundError(err).Abort(w, r)
		return
	}
	httputil.NewInternalError(err).Abort(w, r)
}

func setView(r *http.Request, v router.View) {
	if rCtx, ok := middleware.ContextFromRequest(r); ok {
		rCtx.View = v.String()
	}
}
