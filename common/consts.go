package common

import "os"

const (
	DefaultListenAddress = ":8080"
	DefaultPanelDir      = "./panel/dist"
	PanelIndex           = "index.html"
	ViewHeader           = "X-Panel-View"
)

var (
	ListenAddress   = os.Getenv("LISTEN_ADDRESS")
	PanelDir        = os.Getenv("PANEL_DIR")
	RoutesFile      = os.Getenv("ROUTES_FILE")
	LinkActiveClass = os.Getenv("LINK_ACTIVE_CLASS")
	LogPath         = os.Getenv("LOG_PATH")
	LogLevel        = os.Getenv("LOG_LEVEL")
	CorsOrigins     = os.Getenv("CORS_ORIGINS")
)
