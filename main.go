package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/delta/pon-sentimen-dashboard/models"
	"github.com/delta/pon-sentimen-dashboard/preprocess"
	"github.com/delta/pon-sentimen-dashboard/utils"
)

var (
	configFile string
	stage      string
)

var rootCmd = &cobra.Command{
	Use:          "pon-sentimen",
	Short:        "Dashboard analisis sentimen pelaksanaan PON 2024",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initPackages()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "config.json", "configuration file")
	rootCmd.PersistentFlags().StringVar(&stage, "stage", "", "one of Dev, Docker, Prod, Test (default $SENTIMEN_ENV)")

	rootCmd.AddCommand(serveCmd, importCmd, predictCmd, prepareCmd)
}

// initPackages loads the configuration and initialises the packages every
// command relies on
func initPackages() error {
	if stage == "" {
		stage = utils.StageFromEnv()
	}
	if err := utils.InitConfiguration(configFile, stage); err != nil {
		return err
	}

	config := utils.GetConfiguration()
	utils.Init(config)
	preprocess.Init(config)
	models.Init(config)

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
