package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "stockboard",
	Short: "In-memory inventory dashboard",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		initConfig()
	},
}

func init() {
	rootCmd.PersistentFlags().Uint64("seed", 0, "Random seed for the generated catalog (0 = time based)")
	_ = viper.BindPFlag("SEED", rootCmd.PersistentFlags().Lookup("seed"))
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()
	viper.AutomaticEnv()
}
