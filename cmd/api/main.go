// @title Cattle Farm Manager API
// @version 1.0
// @description Gestión de finca: potreros, rebaños, rotación, ganado, ordeño y mantenimiento.
// @BasePath /
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cattle-farm-manager/internal/config"
	"cattle-farm-manager/internal/platform/logger"
)

var (
	configPath string

	cfg *config.Config
	log *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "cattle-farm",
	Short: "API de gestión de finca ganadera",
	Long: `API de gestión de finca ganadera: potreros y rotación, rebaños,
fichas de animales, sanidad, ordeño, mantenimiento y alertas.

Sin subcomando arranca el servidor HTTP (igual que "serve").`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded

		l, err := logger.New(logger.Options{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
			App:    cfg.App.Name,
		})
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		log = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "archivo de configuración (yaml/json/toml)")

	rootCmd.AddCommand(serveCmd, migrateCmd, remindersCmd, tokenCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
