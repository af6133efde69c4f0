package repositories

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// isDuplicateEntryError reports whether the error is a MySQL/MariaDB unique
// constraint violation (error 1062), used to translate duplicate inserts
// into domain errors instead of opaque store failures.
func isDuplicateEntryError(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
