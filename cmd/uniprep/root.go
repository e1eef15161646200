package main

import (
	"log"

	"github.com/protml/uniprep/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:     "uniprep",
	Short:   "Prepare the UniProt Swiss-Prot database as a labeled protein-sequence dataset",
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	cobra.OnInitialize(initSettings)
}

// initSettings registers defaults and reads the optional uniprep.yaml; a
// missing config file is fine, flags and defaults cover everything.
func initSettings() {
	config.SetDefaults()

	viper.SetConfigName("uniprep")
	viper.AddConfigPath(".")
	_ = viper.ReadInConfig()
}
