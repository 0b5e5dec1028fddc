// common.go
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

package handlers

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/floorsdb/internal/utils"
)

// invalidInput sends the 400 used for unreadable bodies and malformed path or query values
func invalidInput(c *fiber.Ctx, errorType string) error {
	return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, errorType)
}

// pathID parses a positive integer path parameter
func pathID(c *fiber.Ctx, name string) (uint64, bool) {
	return parseID(c.Params(name))
}

// queryID parses an optional positive integer query value; absent is (0, true)
func queryID(c *fiber.Ctx, name string) (uint64, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, true
	}
	return parseID(raw)
}

func parseID(raw string) (uint64, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// message sends {"message": text} with status
func message(c *fiber.Ctx, status int, text string, extra fiber.Map) error {
	body := fiber.Map{"message": text}
	for k, v := range extra {
		body[k] = v
	}
	return c.Status(status).JSON(body)
}

// decodedParam returns a path parameter with percent escapes decoded, for names with spaces
func decodedParam(c *fiber.Ctx, name string) string {
	raw := c.Params(name)
	if value, err := url.PathUnescape(raw); err == nil {
		return value
	}
	return raw
}
