package sqlstore

import (
	"fmt"
	"strings"

	"github.com/pressly/goose/v3"
)

type dialect struct {
	name       string
	driverName string
	goose      goose.Dialect
	// postgres needs $n placeholders and has no LastInsertId
	numberedParams bool
	returningID    bool
	dsn            func(Config) (string, error)
}

var dialects = map[string]dialect{
	"sqlite": {
		name:       "sqlite",
		driverName: "sqlite",
		goose:      goose.DialectSQLite3,
		dsn:        sqliteDSN,
	},
	"mysql": {
		name:       "mysql",
		driverName: "mysql",
		goose:      goose.DialectMySQL,
		dsn:        mysqlDSN,
	},
	"postgres": {
		name:           "postgres",
		driverName:     "pgx",
		goose:          goose.DialectPostgres,
		numberedParams: true,
		returningID:    true,
		dsn:            postgresDSN,
	},
}

func dialectFor(driver string) (dialect, error) {
	d, ok := dialects[strings.ToLower(strings.TrimSpace(driver))]
	if !ok {
		return dialect{}, fmt.Errorf("unsupported database driver %q", driver)
	}
	return d, nil
}
