// response.go
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

package utils

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/floorsdb/internal/metrics"
	"github.com/localnerve/floorsdb/internal/types"
)

// SuccessResponse sends a standard success response
func SuccessResponse(c *fiber.Ctx, data interface{}, status int) error {
	return c.Status(status).JSON(data)
}

// ErrorResponse sends a standard error response
func ErrorResponse(c *fiber.Ctx, message string, status int, errorType string) error {
	return c.Status(status).JSON(errorBody(c, status, message, errorType))
}

// NotFoundResponse sends a 404 not found response
func NotFoundResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"status":    fiber.StatusNotFound,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
	})
}

// StoreErrorResponse renders a store failure with the status its kind maps to.
// Conflict and validation details are passed through to the client.
func StoreErrorResponse(c *fiber.Ctx, err error) error {
	se, ok := types.AsStoreError(err)
	if !ok {
		se = &types.StoreError{Kind: types.KindStorage, Op: "unknown", Message: "storage failure", Err: err}
	}

	status := StatusForKind(se.Kind)
	metrics.RecordStoreError(string(se.Kind))

	message := se.Message
	if se.Kind == types.KindStorage {
		log.Printf("%s failed: %v", se.Op, se.Err)
	}

	body := errorBody(c, status, message, se.Op)
	if se.Details != nil {
		body["details"] = se.Details
	}
	return c.Status(status).JSON(body)
}

// StatusForKind maps an error kind to its HTTP status
func StatusForKind(kind types.ErrorKind) int {
	switch kind {
	case types.KindValidation:
		return fiber.StatusBadRequest
	case types.KindNotFound:
		return fiber.StatusNotFound
	case types.KindConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// MutationSuccessResponse sends a success response for mutations that report affected rows
func MutationSuccessResponse(c *fiber.Ctx, status int, affectedRows int64, extra fiber.Map) error {
	body := fiber.Map{
		"message":      "Success",
		"ok":           true,
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
		"affectedRows": affectedRows,
	}
	for k, v := range extra {
		body[k] = v
	}
	return c.Status(status).JSON(body)
}

func errorBody(c *fiber.Ctx, status int, message, errorType string) fiber.Map {
	return fiber.Map{
		"status":    status,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	}
}

// ErrorResponseStruct defines the schema for error responses
type ErrorResponseStruct struct {
	Status    int         `json:"status"`
	Message   string      `json:"message"`
	Ok        bool        `json:"ok"`
	Timestamp string      `json:"timestamp"`
	URL       string      `json:"url"`
	Type      string      `json:"type,omitempty"`
	Details   interface{} `json:"details,omitempty"`
}

// SuccessResponseStruct defines the schema for mutation success responses
type SuccessResponseStruct struct {
	Message      string `json:"message"`
	Ok           bool   `json:"ok"`
	Timestamp    string `json:"timestamp"`
	AffectedRows int64  `json:"affectedRows"`
	ID           uint64 `json:"id,omitempty"`
}
