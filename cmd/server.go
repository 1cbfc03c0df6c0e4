package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Bnei-Baruch/udpserial-panel/api"
	"github.com/Bnei-Baruch/udpserial-panel/common"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the panel and its route API",
	RunE:  serve,
}

var (
	listenAddress string
	panelDir      string
	corsOrigins   string
)

func init() {
	serveCmd.Flags().StringVar(&listenAddress, "listen", common.ListenAddress, "listen address (env LISTEN_ADDRESS)")
	serveCmd.Flags().StringVar(&panelDir, "panel", common.PanelDir, "panel dist directory (env PANEL_DIR)")
	serveCmd.Flags().StringVar(&corsOrigins, "cors", common.CorsOrigins, "comma separated allowed origins (env CORS_ORIGINS)")
	rootCmd.AddCommand(serveCmd)
}

func serve(cmd *cobra.Command, args []string) error {
	table, err := loadTable()
	if err != nil {
		return err
	}

	var origins []string
	for _, o := range strings.Split(corsOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	a := api.App{}
	a.Initialize(table, panelDir, origins)
	a.Run(listenAddress)
	return nil
}
