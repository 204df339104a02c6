package mysql

import (
	"database/sql"

	"github.com/alexedwards/scs/mysqlstore"
	"github.com/alexedwards/scs/v2"
	mysqldriver "github.com/go-sql-driver/mysql"
)

// MySQL error 1061: duplicate key name
const errDupKeyName = 1061

// NewSessionStore creates the sessions table if it does not exist and returns a session store.
// The collation of the database should be utf8mb4_unicode_ci.
func NewSessionStore(db *sql.DB) (scs.Store, error) {

	// MySQL accepts only one statement per Exec by default
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS sessions (
			token CHAR(43) PRIMARY KEY,
			data BLOB NOT NULL,
			expiry TIMESTAMP(6) NOT NULL
		)`); err != nil {
		return nil, err
	}

	if _, err := db.Exec(`CREATE INDEX sessions_expiry_idx ON sessions (expiry)`); err != nil {
		if myErr, ok := err.(*mysqldriver.MySQLError); !ok || myErr.Number != errDupKeyName {
			return nil, err
		}
	}

	return mysqlstore.New(db), nil
}
