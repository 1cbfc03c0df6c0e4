package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"

	"github.com/Bnei-Baruch/udpserial-panel/common"
	"github.com/Bnei-Baruch/udpserial-panel/pkg/middleware"
	"github.com/Bnei-Baruch/udpserial-panel/pkg/router"
)

type App struct {
	Router   *mux.Router
	Handler  http.Handler
	Table    *router.Table
	PanelDir string
}

func (a *App) Initialize(table *router.Table, panelDir string, allowedOrigins []string) {
	log.Info().Msg("initializing app")

	a.InitApp(table, panelDir, allowedOrigins)
}

func (a *App) InitApp(table *router.Table, panelDir string, allowedOrigins []string) {
	a.Table = table
	a.PanelDir = panelDir
	if a.PanelDir == "" {
		a.PanelDir = common.DefaultPanelDir
	}
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	a.Router = mux.NewRouter().StrictSlash(true)
	a.initializeRoutes()

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
		},
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With"},
		ExposedHeaders: []string{common.ViewHeader},
	})

	a.Handler = middleware.ContextMiddleware(
		middleware.LoggingMiddleware(
			middleware.RecoveryMiddleware(
				middleware.RealIPMiddleware(
					corsMiddleware.Handler(
						a.Router)))))
}

func (a *App) Run(listenAddr string) {
	addr := listenAddr
	if addr == "" {
		addr = common.DefaultListenAddress
	}

	log.Info().Msgf("app run %s", addr)
	if err := http.ListenAndServe(addr, a.Handler); err != nil {
		log.Fatal().Err(err).Msg("http.ListenAndServe")
	}
}
