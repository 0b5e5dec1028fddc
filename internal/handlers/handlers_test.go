// handlers_test.go
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

package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/floorsdb/internal/config"
	"github.com/localnerve/floorsdb/internal/handlers"
	"github.com/localnerve/floorsdb/internal/middleware"
	"github.com/localnerve/floorsdb/internal/testutil"
	"golang.org/x/crypto/bcrypt"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	db := testutil.NewTestDB(t)
	cfg := &config.Config{
		DBType:            "sqlite",
		DBDatabase:        ":memory:",
		DBConnectionLimit: 1,
		BcryptCost:        bcrypt.MinCost,
	}

	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	handlers.NewRoutes(cfg, db).Register(app.Group("/api"))
	app.Use(handlers.NotFound)
	return app
}

type call struct {
	method string
	path   string
	body   interface{}
	actor  string
}

func do(t *testing.T, app *fiber.App, c call) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if c.body != nil {
		var raw []byte
		if s, ok := c.body.(string); ok {
			raw = []byte(s)
		} else {
			raw, _ = json.Marshal(c.body)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(c.method, c.path, reader)
	if c.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.actor != "" {
		req.Header.Set(middleware.ActorHeader, c.actor)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to execute %s %s: %v", c.method, c.path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response: %v", err)
	}
	return resp.StatusCode, body
}

func decode(t *testing.T, body []byte, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(body, out); err != nil {
		t.Fatalf("Failed to decode response %s: %v", body, err)
	}
}

func expectStatus(t *testing.T, got int, want int, body []byte) {
	t.Helper()
	if got != want {
		t.Fatalf("Expected status %d, got %d: %s", want, got, body)
	}
}

const widget = `{
	"name": "Widget",
	"parameters": [
		{"parameterName": "Weight", "max": "10", "min": "1", "unit": "kg", "compulsory": true, "status": "Active"}
	]
}`

// seedFloor creates product Widget (1), station Assembly (1) and active user jdoe (1) through the API
func seedFloor(t *testing.T, app *fiber.App) {
	t.Helper()

	status, body := do(t, app, call{method: "POST", path: "/api/products", body: widget})
	expectStatus(t, status, http.StatusCreated, body)

	status, body = do(t, app, call{method: "POST", path: "/api/stations", body: map[string]interface{}{
		"product_name": "Widget", "station_name": "Assembly", "cycle_time": "1.5",
	}})
	expectStatus(t, status, http.StatusCreated, body)

	status, body = do(t, app, call{method: "POST", path: "/api/users/register", body: map[string]interface{}{
		"username": "jdoe", "password": "pw", "first_name": "Jane", "last_name": "Doe", "joining_date": "2024-01-02",
	}})
	expectStatus(t, status, http.StatusCreated, body)
}

func TestProductRoundTrip(t *testing.T) {
	app := setupApp(t)

	status, body := do(t, app, call{method: "POST", path: "/api/products", body: widget})
	expectStatus(t, status, http.StatusCreated, body)

	var created struct {
		Message   string `json:"message"`
		ProductID uint64 `json:"productId"`
	}
	decode(t, body, &created)
	if created.ProductID == 0 {
		t.Fatalf("Expected a product id, got %s", body)
	}

	status, body = do(t, app, call{method: "GET", path: "/api/products/1"})
	expectStatus(t, status, http.StatusOK, body)

	var product struct {
		Name       string `json:"name"`
		Parameters []struct {
			MaxValue   string `json:"max_value"`
			Compulsory bool   `json:"compulsory"`
		} `json:"parameters"`
	}
	decode(t, body, &product)
	if product.Name != "Widget" || len(product.Parameters) != 1 {
		t.Fatalf("Unexpected product: %s", body)
	}
	if product.Parameters[0].MaxValue != "10" || !product.Parameters[0].Compulsory {
		t.Errorf("Expected max_value \"10\" and compulsory, got %+v", product.Parameters[0])
	}

	status, body = do(t, app, call{method: "POST", path: "/api/products", body: widget})
	expectStatus(t, status, http.StatusConflict, body)

	var conflict map[string]interface{}
	decode(t, body, &conflict)
	if conflict["ok"] != false || conflict["type"] != "createProduct" {
		t.Errorf("Expected error envelope from createProduct, got %s", body)
	}
}

func TestProductErrors(t *testing.T) {
	app := setupApp(t)

	tests := []struct {
		name   string
		call   call
		status int
	}{
		{"missing product", call{method: "GET", path: "/api/products/42"}, http.StatusNotFound},
		{"bad id", call{method: "GET", path: "/api/products/abc"}, http.StatusBadRequest},
		{"bad body", call{method: "POST", path: "/api/products", body: `{"name":`}, http.StatusBadRequest},
		{"empty name", call{method: "POST", path: "/api/products", body: `{"name": ""}`}, http.StatusBadRequest},
		{"delete missing", call{method: "DELETE", path: "/api/products/42"}, http.StatusNotFound},
		{"unknown route", call{method: "GET", path: "/api/nothing"}, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := do(t, app, tt.call)
			if status != tt.status {
				t.Errorf("Expected status %d, got %d: %s", tt.status, status, body)
			}
		})
	}
}

func TestReorderProducts(t *testing.T) {
	app := setupApp(t)

	for _, name := range []string{"A", "B", "C"} {
		status, body := do(t, app, call{method: "POST", path: "/api/products", body: map[string]string{"name": name}})
		expectStatus(t, status, http.StatusCreated, body)
	}

	status, body := do(t, app, call{method: "PUT", path: "/api/products/reorder", body: `{"productIds": [3, "1", 2]}`})
	expectStatus(t, status, http.StatusOK, body)

	status, body = do(t, app, call{method: "GET", path: "/api/products"})
	expectStatus(t, status, http.StatusOK, body)

	var products []struct {
		ID uint64 `json:"id"`
	}
	decode(t, body, &products)
	if len(products) != 3 || products[0].ID != 3 || products[1].ID != 1 || products[2].ID != 2 {
		t.Errorf("Expected order [3 1 2], got %s", body)
	}
}

func TestParameterValues(t *testing.T) {
	app := setupApp(t)
	seedFloor(t, app)

	rows := `{"rows": [{"name": "R1", "Weight": "5", "Color": ""}, {"name": "R2", "Weight": 7}]}`
	status, body := do(t, app, call{method: "POST", path: "/api/products/1/values", body: rows})
	expectStatus(t, status, http.StatusOK, body)

	var saved struct {
		AffectedRows int64 `json:"affectedRows"`
	}
	decode(t, body, &saved)
	if saved.AffectedRows != 2 {
		t.Errorf("Expected 2 stored values, got %d", saved.AffectedRows)
	}

	status, body = do(t, app, call{method: "GET", path: "/api/products/1/values"})
	expectStatus(t, status, http.StatusOK, body)

	var values []map[string]string
	decode(t, body, &values)
	if len(values) != 2 || values[0]["name"] != "R1" || values[0]["Weight"] != "5" {
		t.Errorf("Unexpected values: %s", body)
	}
	if _, ok := values[0]["Color"]; ok {
		t.Error("Expected empty value to be dropped")
	}
}

func TestStationParameterAssignment(t *testing.T) {
	app := setupApp(t)
	seedFloor(t, app)

	status, body := do(t, app, call{method: "POST", path: "/api/stations/parameters", body: `{"name": "Torque", "unit": "Nm"}`})
	expectStatus(t, status, http.StatusCreated, body)

	status, body = do(t, app, call{method: "POST", path: "/api/stations/1/parameters/1"})
	expectStatus(t, status, http.StatusCreated, body)

	status, body = do(t, app, call{method: "POST", path: "/api/stations/1/parameters/1"})
	expectStatus(t, status, http.StatusConflict, body)

	status, body = do(t, app, call{method: "GET", path: "/api/stations/by-product/Widget"})
	expectStatus(t, status, http.StatusOK, body)

	var stations []struct {
		StationName string `json:"station_name"`
		ProductName string `json:"product_name"`
		Parameters  []struct {
			Name string `json:"name"`
		} `json:"parameters"`
	}
	decode(t, body, &stations)
	if len(stations) != 1 || stations[0].ProductName != "Widget" || len(stations[0].Parameters) != 1 {
		t.Fatalf("Unexpected stations: %s", body)
	}

	status, body = do(t, app, call{method: "DELETE", path: "/api/stations/1/parameters/1"})
	expectStatus(t, status, http.StatusOK, body)
	status, body = do(t, app, call{method: "DELETE", path: "/api/stations/1/parameters/1"})
	expectStatus(t, status, http.StatusOK, body)

	status, body = do(t, app, call{method: "GET", path: "/api/stations/by-product/Nothing"})
	expectStatus(t, status, http.StatusNotFound, body)
}

func TestMachines(t *testing.T) {
	app := setupApp(t)
	seedFloor(t, app)

	payload := `{"product_name": "Widget", "machines": [{"machine": "Press", "cycleTime": 2}, {"machineName": "Lathe", "products_per_hour": "12"}]}`
	status, body := do(t, app, call{method: "POST", path: "/api/machines", body: payload})
	expectStatus(t, status, http.StatusCreated, body)

	status, body = do(t, app, call{method: "GET", path: "/api/machines/by-product/Widget"})
	expectStatus(t, status, http.StatusOK, body)

	var machines []map[string]interface{}
	decode(t, body, &machines)
	if len(machines) != 2 || machines[0]["machine"] != "Press" || machines[1]["perHour"] != float64(12) {
		t.Errorf("Unexpected machines: %s", body)
	}

	status, body = do(t, app, call{method: "DELETE", path: "/api/machines", body: `{"product_id": 1, "machine_name": "Press"}`})
	expectStatus(t, status, http.StatusOK, body)

	var deleted struct {
		Deleted int64 `json:"deleted"`
	}
	decode(t, body, &deleted)
	if deleted.Deleted != 1 {
		t.Errorf("Expected 1 deleted, got %d", deleted.Deleted)
	}

	status, body = do(t, app, call{method: "POST", path: "/api/machines", body: `{"product_name": "Nope", "machines": [{"machine": "X"}]}`})
	expectStatus(t, status, http.StatusNotFound, body)
}

func TestAllocationConflictAndAudit(t *testing.T) {
	app := setupApp(t)
	seedFloor(t, app)

	entry := `{"user_id": 1, "station_id": 1, "allocation_date": "2024-01-15"}`
	status, body := do(t, app, call{method: "POST", path: "/api/allocations", body: entry, actor: "1"})
	expectStatus(t, status, http.StatusCreated, body)

	status, body = do(t, app, call{method: "POST", path: "/api/allocations", body: "[" + entry + "]"})
	expectStatus(t, status, http.StatusConflict, body)

	var conflict struct {
		Details struct {
			StationIDs []uint64 `json:"station_ids"`
		} `json:"details"`
	}
	decode(t, body, &conflict)
	if len(conflict.Details.StationIDs) != 1 || conflict.Details.StationIDs[0] != 1 {
		t.Errorf("Expected conflict on station 1, got %s", body)
	}

	status, body = do(t, app, call{method: "GET", path: "/api/allocations?date=2024-01-15"})
	expectStatus(t, status, http.StatusOK, body)

	var allocations []map[string]interface{}
	decode(t, body, &allocations)
	if len(allocations) != 1 || allocations[0]["station_name"] != "Assembly" || allocations[0]["username"] != "jdoe" {
		t.Errorf("Unexpected allocations: %s", body)
	}

	status, body = do(t, app, call{method: "GET", path: "/api/allocations/audit?allocation_id=1"})
	expectStatus(t, status, http.StatusOK, body)

	var audits []struct {
		Action      string  `json:"action"`
		PerformedBy *uint64 `json:"performed_by"`
	}
	decode(t, body, &audits)
	if len(audits) != 1 || audits[0].Action != "assigned" || audits[0].PerformedBy == nil || *audits[0].PerformedBy != 1 {
		t.Errorf("Expected one assigned audit by user 1, got %s", body)
	}

	status, body = do(t, app, call{method: "GET", path: "/api/allocations/available-workers?date=2024-01-15"})
	expectStatus(t, status, http.StatusOK, body)
	if string(body) != "[]" {
		t.Errorf("Expected no available workers, got %s", body)
	}

	status, body = do(t, app, call{method: "DELETE", path: "/api/allocations/by-date/2024-01-15", actor: "1"})
	expectStatus(t, status, http.StatusOK, body)

	status, body = do(t, app, call{method: "GET", path: "/api/allocations/1"})
	expectStatus(t, status, http.StatusNotFound, body)

	status, body = do(t, app, call{method: "POST", path: "/api/allocations", body: entry, actor: "me"})
	expectStatus(t, status, http.StatusBadRequest, body)
}

func TestWorkerAllocationBoard(t *testing.T) {
	app := setupApp(t)
	seedFloor(t, app)

	payload := `{"date": "2024-01-15", "product": "Widget", "allocations": {"1": [1]}}`
	status, body := do(t, app, call{method: "POST", path: "/api/worker-allocations", body: payload})
	expectStatus(t, status, http.StatusOK, body)

	status, body = do(t, app, call{method: "GET", path: "/api/worker-allocations?date=2024-01-15&product=Widget"})
	expectStatus(t, status, http.StatusOK, body)
	if string(body) != `{"1":[1]}` {
		t.Errorf("Expected {\"1\":[1]}, got %s", body)
	}

	status, body = do(t, app, call{method: "GET", path: "/api/worker-allocations?date=2024-01-15"})
	expectStatus(t, status, http.StatusBadRequest, body)
}

func TestShiftRoutes(t *testing.T) {
	app := setupApp(t)

	status, body := do(t, app, call{method: "POST", path: "/api/shifts", body: `{"name": "Morning", "start_time": "06:00", "end_time": "14:00", "is_active": true}`})
	expectStatus(t, status, http.StatusCreated, body)

	status, body = do(t, app, call{method: "PUT", path: "/api/shifts/1", body: `{"name": "Early", "start_time": "05:00", "end_time": "13:00", "is_active": false}`})
	expectStatus(t, status, http.StatusOK, body)

	var shift map[string]interface{}
	decode(t, body, &shift)
	if shift["name"] != "Early" {
		t.Errorf("Expected updated shift, got %s", body)
	}

	status, body = do(t, app, call{method: "POST", path: "/api/shifts", body: `{"name": "Night"}`})
	expectStatus(t, status, http.StatusBadRequest, body)

	status, body = do(t, app, call{method: "DELETE", path: "/api/shifts/1"})
	expectStatus(t, status, http.StatusOK, body)
	status, body = do(t, app, call{method: "GET", path: "/api/shifts/1"})
	expectStatus(t, status, http.StatusNotFound, body)
}

func TestUserRoutes(t *testing.T) {
	app := setupApp(t)

	register := `{"username": "jdoe", "password": "pw", "first_name": "Jane", "last_name": "Doe", "joining_date": "2024-01-02"}`
	status, body := do(t, app, call{method: "POST", path: "/api/users/register", body: register})
	expectStatus(t, status, http.StatusCreated, body)

	status, body = do(t, app, call{method: "POST", path: "/api/users/register", body: register})
	expectStatus(t, status, http.StatusConflict, body)

	status, body = do(t, app, call{method: "POST", path: "/api/users/register", body: `{"username": "x"}`})
	expectStatus(t, status, http.StatusBadRequest, body)

	perms := `{"permissions": {"productConfiguration": {"view": true, "add": false, "update": true, "delete": false}}}`
	status, body = do(t, app, call{method: "PUT", path: "/api/users/1/permissions", body: perms})
	expectStatus(t, status, http.StatusOK, body)

	status, body = do(t, app, call{method: "GET", path: "/api/users/1/permissions"})
	expectStatus(t, status, http.StatusOK, body)

	var got map[string]map[string]bool
	decode(t, body, &got)
	if !got["productConfiguration"]["view"] || got["productConfiguration"]["add"] {
		t.Errorf("Unexpected permissions: %s", body)
	}

	status, body = do(t, app, call{method: "PUT", path: "/api/users/1", body: `{}`})
	expectStatus(t, status, http.StatusBadRequest, body)

	status, body = do(t, app, call{method: "GET", path: "/api/users"})
	expectStatus(t, status, http.StatusOK, body)
	if bytes.Contains(body, []byte("password")) {
		t.Errorf("Expected no password material in %s", body)
	}
}

func TestReportValidation(t *testing.T) {
	app := setupApp(t)

	for _, path := range []string{
		"/api/reports/station-completions?from=2024-01-01",
		"/api/reports/employee-completions",
		"/api/reports/weekly-completions?from=2024-02-01&to=2024-01-01",
		"/api/reports/product-details",
		"/api/reports/product-details?productId=x",
	} {
		status, body := do(t, app, call{method: "GET", path: path})
		if status != http.StatusBadRequest {
			t.Errorf("Expected 400 for %s, got %d: %s", path, status, body)
		}
	}

	status, body := do(t, app, call{method: "GET", path: "/api/reports/station-completions?from=2024-01-01&to=2024-01-31"})
	expectStatus(t, status, http.StatusOK, body)
	if string(body) != "[]" {
		t.Errorf("Expected empty report, got %s", body)
	}
}

func TestHealth(t *testing.T) {
	app := setupApp(t)

	status, body := do(t, app, call{method: "GET", path: "/api/health"})
	expectStatus(t, status, http.StatusOK, body)

	var result map[string]interface{}
	decode(t, body, &result)
	if result["status"] != "healthy" || result["database"] != "ok" {
		t.Errorf("Unexpected health: %s", body)
	}

	status, body = do(t, app, call{method: "GET", path: "/api/db-check"})
	expectStatus(t, status, http.StatusOK, body)
}
