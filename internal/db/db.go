package db

import "database/sql"

// DB wraps the shared connection pool handed to every store.
type DB struct {
	*sql.DB
}
