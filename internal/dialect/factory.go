package dialect

// GetDialect returns the Dialect implementation for a driver name.
func GetDialect(driver string) Dialect {
	switch driver {
	case "postgres":
		return &PostgresDialect{}
	case "mysql":
		return &MysqlDialect{}
	case "sqlserver", "mssql":
		return &MSSQLDialect{}
	case "oracle":
		return &OracleDialect{}
	default: // sqlite
		return &SQLiteDialect{}
	}
}

// Ensure interface implementation
var _ Dialect = (*SQLiteDialect)(nil)
var _ Dialect = (*PostgresDialect)(nil)
var _ Dialect = (*MysqlDialect)(nil)
var _ Dialect = (*MSSQLDialect)(nil)
var _ Dialect = (*OracleDialect)(nil)
