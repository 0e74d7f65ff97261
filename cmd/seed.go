package cmd

import (
	"fmt"
	"log"
	"time"

	"norm-lab/internal/dataset"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	seedCount int
	seedValue int64
	seedOut   string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate a random unnormalized dataset file",
	RunE: func(cmd *cobra.Command, args []string) error {
		count := viper.GetInt("settings.seed_count")
		if seedCount > 0 {
			count = seedCount
		}

		seed := seedValue
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		records := dataset.Generate(count, seed)
		if err := dataset.Save(seedOut, records); err != nil {
			return err
		}

		log.Printf("Wrote %d records to %s (seed %d)", len(records), seedOut, seed)
		fmt.Printf("Run it with: norm-lab run --dataset %s\n", seedOut)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(seedCmd)

	seedCmd.Flags().IntVar(&seedCount, "count", 0, "Number of records to generate (overrides config)")
	seedCmd.Flags().Int64Var(&seedValue, "seed", 0, "Random seed (default: current time)")
	seedCmd.Flags().StringVar(&seedOut, "out", "dataset.yaml", "Output file")

	viper.BindPFlag("settings.seed_count", seedCmd.Flags().Lookup("count"))
	viper.SetDefault("settings.seed_count", 25)
}
