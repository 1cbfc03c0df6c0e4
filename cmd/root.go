package cmd

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Bnei-Baruch/udpserial-panel/common"
	"github.com/Bnei-Baruch/udpserial-panel/pkg/middleware"
	"github.com/Bnei-Baruch/udpserial-panel/pkg/router"
)

var rootCmd = &cobra.Command{
	Use:           "udpserial-panel",
	Short:         "udpserial web panel",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		middleware.InitLog(middleware.Config{
			ConsoleLoggingEnabled: true,
			FileLoggingEnabled:    logPath != "",
			EncodeLogsAsJson:      logJson,
			Level:                 logLevel,
			LocalTime:             true,
			Directory:             logPath,
			Filename:              "panel.log",
			MaxSize:               100,
			MaxBackups:            10,
			MaxAge:                30,
		})
	},
}

var (
	routesFile      string
	linkActiveClass string
	logPath         string
	logLevel        string
	logJson         bool
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&routesFile, "routes", common.RoutesFile, "route table file, built-in panel table when empty (env ROUTES_FILE)")
	pf.StringVar(&linkActiveClass, "link-active-class", common.LinkActiveClass, "active link class override (env LINK_ACTIVE_CLASS)")
	pf.StringVar(&logPath, "log-path", common.LogPath, "directory for rolling log files (env LOG_PATH)")
	pf.StringVar(&logLevel, "log-level", common.LogLevel, "log level (env LOG_LEVEL)")
	pf.BoolVar(&logJson, "log-json", false, "write console logs as json")
}

func Execute() error {
	return rootCmd.Execute()
}

func loadTable() (*router.Table, error) {
	var opts []router.Option
	if linkActiveClass != "" {
		opts = append(opts, router.WithLinkActiveClass(linkActiveClass))
	}

	if routesFile == "" {
		table, err := router.NewPanelTable(opts...)
		return table, errors.Wrap(err, "panel table")
	}

	table, err := router.LoadTable(routesFile)
	if err != nil {
		return nil, err
	}
	if len(opts) > 0 {
		table, err = router.NewTable(table.Entries(), opts...)
		if err != nil {
			return nil, err
		}
	}

	log.Info().Str("file", routesFile).Int("routes", len(table.Entries())).Msg("loaded route table")
	return table, nil
}
