package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"psteg/internal/server"
)

func serveAppCommand(st *appState) *cobra.Command {
	var port string

	command := &cobra.Command{
		Use:     "serve",
		Short:   "Serve an API to hide and reveal messages over the web",
		Example: "psteg serve --port 8888",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			serverConfig := st.config.Server
			if cmd.Flags().Changed("port") {
				serverConfig.Port = port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.StartServer(ctx, st.logger, serverConfig)
		},
	}

	command.Flags().StringVar(&port, "port", "8080", "Port on which to start the server")

	return command
}
