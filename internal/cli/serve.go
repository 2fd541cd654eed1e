package cli

import (
	"github.com/spf13/cobra"

	"github.com/thinktide/timeaccount/internal/config"
	"github.com/thinktide/timeaccount/internal/server"
)

var serveAddr string
var serveDir string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve exported reports over HTTP",
	Long: `Serve the export directory over HTTP so reports can be viewed from a
browser on another machine.

Examples:
  timeaccount serve
  timeaccount serve --addr :9090
  timeaccount serve --dir /tmp/reports`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
	serveCmd.Flags().StringVar(&serveDir, "dir", "", "Directory to serve (default: configured export directory)")
}

func runServe(cmd *cobra.Command, args []string) error {
	dir := serveDir
	if dir == "" {
		var err error
		dir, err = config.Get(st, config.KeyExportDirectory)
		if err != nil {
			return err
		}
	}
	dir = config.ExpandPath(dir)

	srv := server.New(log, server.Config{
		Addr: serveAddr,
		Dir:  dir,
	})

	log.Info().Str("addr", serveAddr).Str("dir", dir).Msg("serving reports")
	return srv.Start()
}
