package main

import (
	"fmt"
	"os"

	"github.com/rogerio-castellano/inventory-service/internal/config"
	"github.com/spf13/cobra"
)

//go:generate swag init --dir .. --generalInfo api/main.go --output ../internal/docs

// @title Inventory Service API
// @version 1.0
// @description REST API for managing products, sales and prices of an in-memory inventory.
// @host localhost:3000
// @BasePath /
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := config.New()
	var cfgFile string

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, cfgFile)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	root := &cobra.Command{
		Use:           "inventory",
		Short:         "In-memory inventory management service",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "path to a config file (yaml, json or toml)")
	flags.Int("port", config.DefaultPort, "HTTP listen port")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	_ = v.BindPFlag("server.port", flags.Lookup("port"))
	_ = v.BindPFlag("log.level", flags.Lookup("log-level"))

	root.AddCommand(serve)
	return root
}
