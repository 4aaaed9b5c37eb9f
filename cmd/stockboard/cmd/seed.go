package cmd

import (
	"encoding/json"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stockboard/stockboard/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Print a generated demo catalog as JSON",
	Long:  "Print a generated demo catalog as JSON. The output can be edited and passed back to serve with --catalog.",
	RunE: func(_ *cobra.Command, _ []string) error {
		products := seed.Generate(seed.NewRand(viper.GetUint64("SEED")), time.Now().UTC())

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(products)
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
