package cmd

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	dsn        string
	DB         *sql.DB
	cfgFile    string
	DriverName string // sqlite, postgres, mysql, sqlserver, oracle
)

var RootCmd = &cobra.Command{
	Use:   "norm-lab",
	Short: "A database normalization demonstrator",
	Long: `
  _  _  ___  ___ __  __     _      _   ___
 | \| |/ _ \| _ \  \/  |___| |    /_\ | _ )
 | .' | (_) |   / |\/| |___| |__ / _ \| _ \
 |_|\_|\___/|_|_\_|  |_|   |____/_/ \_\___/

NORM-LAB - UNF -> 1NF -> 2NF -> 3NF, materialized and verified
`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Precedence: --dsn flag, then the active entry of the databases:
		// list, then database.dsn, then in-memory SQLite.
		connStr := viper.GetString("database.dsn")
		configDriver := viper.GetString("database.driver")
		if dsn == "" {
			if active, err := GetActiveDBConfig(); err == nil {
				connStr = active.DSN
				configDriver = active.Driver
				fmt.Printf("Using database %q (%s)\n", active.Name, active.Driver)
			}
		}
		if connStr == "" {
			connStr = ":memory:"
		}

		if configDriver != "" {
			DriverName = configDriver
		} else {
			DriverName = detectDriver(connStr)
		}

		var err error
		DB, err = sql.Open(driverFor(DriverName), connStr)
		if err != nil {
			return fmt.Errorf("failed to open db: %w", err)
		}
		if err := DB.Ping(); err != nil {
			return fmt.Errorf("failed to connect to db: %w", err)
		}

		if DriverName == "sqlite" {
			// The connection pool would hand each query a fresh empty
			// in-memory database; the whole run must share one connection.
			DB.SetMaxOpenConns(1)
		}
		return nil
	},
}

// detectDriver guesses the driver from DSN shape.
func detectDriver(connStr string) string {
	switch {
	case strings.HasPrefix(connStr, "postgres://") || strings.Contains(connStr, "sslmode"):
		return "postgres"
	case strings.HasPrefix(connStr, "sqlserver://"):
		return "sqlserver"
	case strings.HasPrefix(connStr, "oracle://"):
		return "oracle"
	case strings.Contains(connStr, "@tcp("):
		return "mysql"
	default:
		return "sqlite"
	}
}

// driverFor maps the logical driver name to the registered sql driver.
func driverFor(name string) string {
	switch name {
	case "mssql":
		return "sqlserver"
	default:
		return name
	}
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./norm-lab.yaml)")
	RootCmd.PersistentFlags().StringVar(&dsn, "dsn", "", "Database Source Name (DSN)")

	viper.BindPFlag("database.dsn", RootCmd.PersistentFlags().Lookup("dsn"))

	// In-memory SQLite unless configured otherwise.
	viper.SetDefault("database.dsn", ":memory:")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		ex, err := os.Executable()
		if err == nil {
			viper.AddConfigPath(filepath.Dir(ex))
		}
		viper.AddConfigPath(".")

		viper.SetConfigName("norm-lab")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
