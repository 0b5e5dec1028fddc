// response_test.go
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

package utils_test

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/floorsdb/internal/metrics"
	"github.com/localnerve/floorsdb/internal/types"
	"github.com/localnerve/floorsdb/internal/utils"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
)

func TestStoreErrorResponse(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		errType string
		details bool
	}{
		{"validation", types.Validation("createShift", "name is required"), fiber.StatusBadRequest, "createShift", false},
		{"not found", types.NotFound("getShift", "shift 3 not found"), fiber.StatusNotFound, "getShift", false},
		{"conflict", types.Conflict("createAllocations", "stations already allocated", map[string][]uint64{"station_ids": {5}}), fiber.StatusConflict, "createAllocations", true},
		{"storage", types.Storage("listShifts", errors.New("disk full")), fiber.StatusInternalServerError, "listShifts", false},
		{"unclassified", errors.New("boom"), fiber.StatusInternalServerError, "unknown", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind := string(types.KindOf(tt.err))
			before := promtest.ToFloat64(metrics.StoreErrors.WithLabelValues(kind))

			app := fiber.New()
			app.Get("/x", func(c *fiber.Ctx) error {
				return utils.StoreErrorResponse(c, tt.err)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
			if err != nil {
				t.Fatalf("Request failed: %v", err)
			}
			if resp.StatusCode != tt.status {
				t.Errorf("Expected status %d, got %d", tt.status, resp.StatusCode)
			}

			var body map[string]interface{}
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}
			if body["ok"] != false || body["type"] != tt.errType || body["url"] != "/x" {
				t.Errorf("Unexpected envelope: %v", body)
			}
			if _, ok := body["details"]; ok != tt.details {
				t.Errorf("Expected details present=%v, got %v", tt.details, body)
			}
			if body["message"] == "disk full" {
				t.Error("Expected storage causes to stay out of the response")
			}

			if after := promtest.ToFloat64(metrics.StoreErrors.WithLabelValues(kind)); after != before+1 {
				t.Errorf("Expected %s counter to increase by 1, got %v -> %v", kind, before, after)
			}
		})
	}
}

func TestMutationSuccessResponse(t *testing.T) {
	app := fiber.New()
	app.Post("/x", func(c *fiber.Ctx) error {
		return utils.MutationSuccessResponse(c, fiber.StatusOK, 3, fiber.Map{"id": 7})
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/x", nil))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}

	var body utils.SuccessResponseStruct
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !body.Ok || body.AffectedRows != 3 || body.ID != 7 {
		t.Errorf("Unexpected body: %+v", body)
	}
}
