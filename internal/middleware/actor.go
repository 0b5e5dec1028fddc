// actor.go
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

package middleware

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/floorsdb/internal/types"
)

const actorKey = "actor"

// ActorHeader names the user performing a write; audit rows record it as performed_by
const ActorHeader = "X-User-Id"

// Actor reads the optional X-User-Id header into the request context.
// A present but malformed value is rejected.
func Actor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Get(ActorHeader))
		if raw == "" {
			return c.Next()
		}

		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			return &types.CustomError{
				Code:    fiber.StatusBadRequest,
				Message: ActorHeader + " must be a positive integer user id",
				Type:    "actor",
			}
		}

		c.Locals(actorKey, id)
		return c.Next()
	}
}

// ActorFrom returns the acting user id, 0 when none was given
func ActorFrom(c *fiber.Ctx) uint64 {
	if id, ok := c.Locals(actorKey).(uint64); ok {
		return id
	}
	return 0
}
