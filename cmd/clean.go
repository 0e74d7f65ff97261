package cmd

import (
	"log"

	"norm-lab/internal/dialect"
	"norm-lab/internal/materialize"
	"norm-lab/internal/schema"

	"github.com/spf13/cobra"
)

var dataOnly bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Drop all stage tables (or just their data with --data-only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		d := dialect.GetDialect(DriverName)
		if dataOnly {
			return truncateStageTables(d)
		}
		return cleanStageTables(d)
	},
}

func init() {
	RootCmd.AddCommand(cleanCmd)

	cleanCmd.Flags().BoolVar(&dataOnly, "data-only", false, "Empty the stage tables instead of dropping them")
}

// reverseStageTables returns the stage tables dependents-first, the order
// both dropping and truncating must follow.
func reverseStageTables() []string {
	names := schema.StageTableNames()
	reversed := make([]string, len(names))
	for i, n := range names {
		reversed[len(names)-1-i] = n
	}
	return reversed
}

func cleanStageTables(d dialect.Dialect) error {
	reversed := reverseStageTables()
	log.Printf("Dropping %d stage tables...", len(reversed))
	if err := materialize.Drop(DB, d, reversed); err != nil {
		return err
	}
	log.Println("Stage tables dropped.")
	return nil
}

func truncateStageTables(d dialect.Dialect) error {
	count := 0
	for _, name := range reverseStageTables() {
		exists, err := materialize.TableExists(DB, d, name)
		if err != nil {
			return err
		}
		if !exists {
			continue
		}
		if _, err := DB.Exec(d.TruncateQuery(name)); err != nil {
			log.Printf("Warning: Failed to empty %s: %v (continuing...)\n", name, err)
			continue
		}
		count++
	}
	log.Printf("Emptied %d stage tables.", count)
	return nil
}
