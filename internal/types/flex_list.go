// flex_list.go
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

package types

import (
	"bytes"
	"encoding/json"
)

// FlexList accepts a JSON array, or a lone element that becomes a one item list.
// Clients post single allocations and station order entries without wrapping them.
type FlexList[T any] []T

func (f *FlexList[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] != '[' {
		var item T
		if err := json.Unmarshal(data, &item); err != nil {
			return err
		}
		*f = FlexList[T]{item}
		return nil
	}

	items := []T{}
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*f = items
	return nil
}

// Slice returns the items as a plain slice
func (f FlexList[T]) Slice() []T {
	return []T(f)
}

// MapList converts every item with fn, keeping order
func MapList[T, U any](f FlexList[T], fn func(T) U) []U {
	out := make([]U, len(f))
	for i, item := range f {
		out[i] = fn(item)
	}
	return out
}
