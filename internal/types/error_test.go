// error_test.go
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

package types_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/localnerve/floorsdb/internal/types"
)

func TestStoreErrorKinds(t *testing.T) {
	cause := errors.New("connection reset")

	tests := []struct {
		err  error
		kind types.ErrorKind
	}{
		{types.Validation("createProduct", "name is required"), types.KindValidation},
		{types.NotFound("deleteProduct", "product %d not found", 4), types.KindNotFound},
		{types.Conflict("createUser", "username already exists", map[string]string{"username": "jdoe"}), types.KindConflict},
		{types.Storage("listProducts", cause), types.KindStorage},
		{cause, types.KindStorage},
	}

	for _, tt := range tests {
		if got := types.KindOf(tt.err); got != tt.kind {
			t.Errorf("%v: expected kind %s, got %s", tt.err, tt.kind, got)
		}
	}
}

func TestStoreErrorWrapping(t *testing.T) {
	cause := errors.New("connection reset")
	err := fmt.Errorf("request failed: %w", types.Storage("listProducts", cause))

	if !errors.Is(err, cause) {
		t.Error("Expected the storage error to unwrap to its cause")
	}
	if !types.IsKind(err, types.KindStorage) {
		t.Error("Expected a wrapped storage error to keep its kind")
	}

	se, ok := types.AsStoreError(err)
	if !ok || se.Op != "listProducts" {
		t.Fatalf("Expected StoreError for listProducts, got %+v", se)
	}
	if !strings.Contains(se.Error(), "connection reset") {
		t.Errorf("Expected message to carry the cause, got %s", se.Error())
	}

	nf := types.NotFound("getShift", "shift %d not found", 9)
	if nf.Error() != "getShift: shift 9 not found" {
		t.Errorf("Unexpected message: %s", nf.Error())
	}
}
