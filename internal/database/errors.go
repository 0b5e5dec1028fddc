// errors.go
//
// A factory floor management data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of floorsdb.
// floorsdb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// floorsdb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with floorsdb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package database

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/localnerve/floorsdb/internal/types"
	"gorm.io/gorm"
)

// MySQL server error numbers
const (
	mysqlDuplicateEntry     = 1062
	mysqlRowIsReferenced    = 1451
	mysqlNoReferencedRow    = 1452
	postgresUniqueViolation = "23505"
	postgresFKViolation     = "23503"
)

// Classify converts a driver or GORM error into a store error of the matching kind.
// Errors that are already store errors pass through untouched.
func Classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := types.AsStoreError(err); ok {
		return err
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return types.NotFound(op, "record not found")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return types.Conflict(op, "duplicate entry", nil)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return types.Validation(op, "referenced record does not exist")
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlDuplicateEntry:
			return types.Conflict(op, "duplicate entry", nil)
		case mysqlRowIsReferenced, mysqlNoReferencedRow:
			return types.Validation(op, "referenced record does not exist")
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case postgresUniqueViolation:
			return types.Conflict(op, "duplicate entry", nil)
		case postgresFKViolation:
			return types.Validation(op, "referenced record does not exist")
		}
	}

	return types.Storage(op, err)
}
