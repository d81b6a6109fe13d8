package cmd

import (
	"MoodFM/server"

	"github.com/spf13/cobra"
)

var serverPort string

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "启动 MoodFM HTTP 服务",
	Long:  `Start the HTTP API. The port comes from --port, then PORT, then 3000.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if serverPort != "" {
			cfg.Port = serverPort
		}
		return server.Start(cfg)
	},
}

func init() {
	serverCmd.Flags().StringVarP(&serverPort, "port", "p", "", "port to listen on (overrides PORT)")
	rootCmd.AddCommand(serverCmd)
}
