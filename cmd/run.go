package cmd

import (
	"fmt"
	"log"
	"time"

	"norm-lab/internal/dataset"
	"norm-lab/internal/dialect"
	"norm-lab/internal/materialize"
	"norm-lab/internal/normalize"
	"norm-lab/internal/schema"
	"norm-lab/internal/verify"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	datasetPath string
	stage       string
	dryRun      bool
	cleanFirst  bool
	strict      bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the normalization pipeline and verify each stage",
	RunE: func(cmd *cobra.Command, args []string) error {
		if stage != "1nf" && stage != "2nf" && stage != "3nf" && stage != "all" {
			return fmt.Errorf("invalid --stage %q (want 1nf, 2nf, 3nf or all)", stage)
		}

		records, err := loadRecords()
		if err != nil {
			return err
		}
		fmt.Printf("Loaded %d unnormalized records\n", len(records))

		d := dialect.GetDialect(DriverName)
		log.Printf("Using Dialect: %s\n", d.Name())

		if cleanFirst {
			if err := cleanStageTables(d); err != nil {
				return err
			}
		}

		// Transform everything up front; materialization only starts once
		// every requested stage derived cleanly.
		flat, err := normalize.Decompose(records)
		if err != nil {
			return fmt.Errorf("1NF decomposition failed: %w", err)
		}
		stages := []stagePlan{{"1NF", schema.Build1NF(flat)}}

		if stage == "2nf" || stage == "3nf" || stage == "all" {
			second, err := normalize.Extract(flat)
			if err != nil {
				return fmt.Errorf("2NF extraction failed: %w", err)
			}
			stages = append(stages, stagePlan{"2NF", schema.Build2NF(second)})

			if stage == "3nf" || stage == "all" {
				third, err := normalize.Resolve(second)
				if err != nil {
					return fmt.Errorf("3NF resolution failed: %w", err)
				}
				stages = append(stages, stagePlan{"3NF", schema.Build3NF(third)})
			}
		}

		if dryRun {
			log.Println("[SIMULATION] Dry-Run Mode Active: No tables will be created.")
			for _, s := range stages {
				fmt.Printf("\n%s tables:\n", s.name)
				for i, t := range schema.SortByDependency(s.tables) {
					fmt.Printf("[%02d] %-20s %d columns, %d rows (Dependencies: %v)\n",
						i+1, t.Name, len(t.Columns), len(t.Rows), t.Dependencies)
				}
			}
			return nil
		}

		start := time.Now()

		uiprogress.Start()
		bar := uiprogress.AddBar(len(stages) * 2).AppendCompleted().PrependElapsed()
		bar.PrependFunc(func(b *uiprogress.Bar) string {
			return "Processing: "
		})

		var reports []stageReport
		for _, s := range stages {
			if err := materialize.Materialize(DB, d, s.tables); err != nil {
				uiprogress.Stop()
				return fmt.Errorf("failed to materialize %s: %w", s.name, err)
			}
			bar.Incr()

			report, err := verify.Run(DB, d, s.tables)
			if err != nil {
				uiprogress.Stop()
				return fmt.Errorf("failed to verify %s: %w", s.name, err)
			}
			bar.Incr()
			reports = append(reports, stageReport{stage: s.name, report: report})
		}
		uiprogress.Stop()

		printReports(reports)
		log.Printf("Pipeline Done! Time Elapsed: %s", time.Since(start))

		failures := 0
		for _, r := range reports {
			failures += r.report.FailureCount()
		}
		if failures > 0 && strict {
			return fmt.Errorf("%d integrity check(s) failed", failures)
		}
		return nil
	},
}

type stagePlan struct {
	name   string
	tables []*schema.Table
}

type stageReport struct {
	stage  string
	report *verify.Report
}

func loadRecords() ([]dataset.UnnormalizedRecord, error) {
	path := datasetPath
	if path == "" {
		path = viper.GetString("settings.dataset")
	}
	if path == "" {
		log.Println("No dataset given, using the built-in sample")
		return dataset.Sample(), nil
	}
	return dataset.Load(path)
}

// printReports renders the per-stage check summary.
func printReports(reports []stageReport) {
	fmt.Println("\n📊 Integrity Report:")
	total, passed := 0, 0
	for _, r := range reports {
		fmt.Printf("--- %s ---\n", r.stage)
		for _, res := range r.report.Results {
			icon := "✓"
			status := "OK"
			if !res.Passed {
				icon = "!"
				status = "FAIL"
			}
			fmt.Printf("[%s] %-12s %-22s %s\n", icon, res.Check, res.Table, status)
			for _, detail := range res.Details {
				fmt.Printf("    └ %s\n", detail)
			}
			total++
			if res.Passed {
				passed++
			}
		}
	}
	fmt.Println("--------------------------------------------------")
	fmt.Printf("Checks passed: %d/%d\n", passed, total)
}

func init() {
	RootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&datasetPath, "dataset", "", "YAML dataset file (default: built-in sample)")
	runCmd.Flags().StringVar(&stage, "stage", "all", "Target stage: 1nf, 2nf, 3nf or all")
	runCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Plan the stages without touching the database")
	runCmd.Flags().BoolVar(&cleanFirst, "clean", false, "Drop stage tables before materializing")
	runCmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when any integrity check fails")

	viper.BindPFlag("settings.dataset", runCmd.Flags().Lookup("dataset"))
}
