package completion

// commonKeywords are SQL keywords shared across all dialects.
var commonKeywords = []string{
	"SELECT", "FROM", "WHERE", "JOIN", "LEFT", "RIGHT", "INNER", "OUTER",
	"FULL", "CROSS", "ON", "AND", "OR", "NOT", "IN", "EXISTS", "BETWEEN",
	"LIKE", "IS", "NULL", "AS", "CASE", "WHEN", "THEN", "ELSE", "END",
	"INSERT", "INTO", "VALUES", "UPDATE", "SET", "DELETE", "CREATE",
	"ALTER", "DROP", "TABLE", "VIEW", "INDEX", "UNIQUE", "PRIMARY", "KEY",
	"FOREIGN", "REFERENCES", "CONSTRAINT", "DEFAULT", "CHECK", "CASCADE",
	"GROUP", "BY", "ORDER", "ASC", "DESC", "HAVING", "LIMIT", "OFFSET",
	"DISTINCT", "ALL", "ANY", "UNION", "INTERSECT", "EXCEPT", "WITH",
	"RECURSIVE", "BEGIN", "COMMIT", "ROLLBACK", "TRANSACTION", "GRANT",
	"REVOKE", "EXPLAIN", "TRUNCATE", "IF", "REPLACE", "TEMPORARY", "USE",
	"SHOW", "DESCRIBE",
}

// commonFunctions are built-in SQL functions shared across all dialects.
var commonFunctions = []string{
	"COUNT", "SUM", "AVG", "MIN", "MAX", "COALESCE", "NULLIF", "CAST",
	"LOWER", "UPPER", "TRIM", "LTRIM", "RTRIM", "LENGTH", "SUBSTRING",
	"CONCAT", "ABS", "CEIL", "FLOOR", "ROUND", "NOW", "CURRENT_TIMESTAMP",
	"CURRENT_DATE", "CURRENT_TIME", "EXTRACT", "DATE_TRUNC", "TO_CHAR",
	"TO_DATE", "ROW_NUMBER", "RANK", "DENSE_RANK", "LAG", "LEAD",
	"FIRST_VALUE", "LAST_VALUE", "NTILE", "STRING_AGG", "ARRAY_AGG",
}

// postgresKeywords are additional keywords specific to PostgreSQL.
var postgresKeywords = []string{
	"ILIKE", "RETURNING", "SERIAL", "BIGSERIAL", "SIMILAR", "LATERAL",
	"MATERIALIZED", "CONCURRENTLY", "SCHEMA", "EXTENSION", "SEQUENCE",
	"NOTIFY", "LISTEN", "COPY", "VACUUM", "ANALYZE",
}

// mysqlKeywords are additional keywords specific to MySQL.
var mysqlKeywords = []string{
	"AUTO_INCREMENT", "ENGINE", "CHARSET", "COLLATE", "DATABASES",
	"TABLES", "COLUMNS", "STATUS", "VARIABLES", "PROCESSLIST", "BINARY",
	"UNSIGNED", "ZEROFILL", "ENUM", "MEDIUMTEXT", "LONGTEXT", "TINYINT",
	"MEDIUMINT",
}

// sqliteKeywords are additional keywords specific to SQLite.
var sqliteKeywords = []string{
	"PRAGMA", "AUTOINCREMENT", "GLOB", "ATTACH", "DETACH", "REINDEX",
	"INDEXED", "WITHOUT", "ROWID", "STRICT",
}

// duckdbKeywords are additional keywords specific to DuckDB.
var duckdbKeywords = []string{
	"PIVOT", "UNPIVOT", "SAMPLE", "USING", "QUALIFY", "COLUMNS", "STRUCT",
	"LIST", "MAP", "HUGEINT", "UBIGINT", "UINTEGER",
}

// keywordsForDialect returns the keyword catalog for the given dialect.
func keywordsForDialect(dialect string) []string {
	result := make([]string, len(commonKeywords))
	copy(result, commonKeywords)

	switch dialect {
	case "postgres", "postgresql":
		result = append(result, postgresKeywords...)
	case "mysql":
		result = append(result, mysqlKeywords...)
	case "sqlite":
		result = append(result, sqliteKeywords...)
	case "duckdb":
		result = append(result, duckdbKeywords...)
	}

	return result
}

// functionsForDialect returns the function catalog for the given dialect.
// All dialects currently share the same list.
func functionsForDialect(dialect string) []string {
	result := make([]string, len(commonFunctions))
	copy(result, commonFunctions)
	return result
}
