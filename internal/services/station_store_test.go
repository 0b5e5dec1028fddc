// station_store_test.go
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

package services_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/localnerve/floorsdb/internal/models"
	"github.com/localnerve/floorsdb/internal/services"
	"github.com/localnerve/floorsdb/internal/testutil"
	"github.com/localnerve/floorsdb/internal/types"
)

func decodeStation(t *testing.T, payload string) services.StationInput {
	t.Helper()
	var input services.StationInput
	if err := json.Unmarshal([]byte(payload), &input); err != nil {
		t.Fatalf("Failed to decode station payload: %v", err)
	}
	return input
}

func createStation(t *testing.T, store *services.StationStore, payload string) uint64 {
	t.Helper()
	id, err := store.CreateStation(context.Background(), decodeStation(t, payload))
	if err != nil {
		t.Fatalf("CreateStation failed: %v", err)
	}
	return id
}

func createParameterDefinition(t *testing.T, store *services.StationStore, name string) uint64 {
	t.Helper()
	id, err := store.CreateParameterDefinition(context.Background(), services.ParameterDefinitionInput{Name: name, Unit: "mm"})
	if err != nil {
		t.Fatalf("CreateParameterDefinition failed: %v", err)
	}
	return id
}

func TestCreateStationResolvesProduct(t *testing.T) {
	db := testutil.NewTestDB(t)
	products := services.NewProductStore(db)
	store := services.NewStationStore(db)
	ctx := context.Background()

	productID := createProduct(t, products, "Widget")

	first := createStation(t, store, `{"product_name": "Widget", "station_name": "Cutting", "cycle_time": "2.5", "daily_count": 100}`)
	second := createStation(t, store, `{"product_id": "1", "station_name": "Welding", "report_type": "Done"}`)

	stations, err := store.ListStationsByProduct(ctx, "Widget")
	if err != nil {
		t.Fatalf("ListStationsByProduct failed: %v", err)
	}
	if len(stations) != 2 {
		t.Fatalf("Expected 2 stations, got %d", len(stations))
	}
	if stations[0].ID != first || stations[1].ID != second {
		t.Errorf("Expected stations in number order, got %d, %d", stations[0].ID, stations[1].ID)
	}
	if stations[0].ProductID != productID || stations[0].ProductName != "Widget" {
		t.Errorf("Expected product Widget, got %d/%s", stations[0].ProductID, stations[0].ProductName)
	}
	if stations[0].StationNumber != 1 || stations[1].StationNumber != 2 {
		t.Errorf("Expected station numbers 1 and 2, got %d and %d", stations[0].StationNumber, stations[1].StationNumber)
	}
	if stations[0].CycleTime != 2.5 || stations[0].DailyCount != 100 {
		t.Errorf("Unexpected metrics: %+v", stations[0])
	}
	if stations[0].ReportType != models.ReportPending || stations[1].ReportType != models.ReportDone {
		t.Errorf("Unexpected report types %q, %q", stations[0].ReportType, stations[1].ReportType)
	}
}

func TestCreateStationValidation(t *testing.T) {
	db := testutil.NewTestDB(t)
	createProduct(t, services.NewProductStore(db), "Widget")
	store := services.NewStationStore(db)
	ctx := context.Background()

	tests := []struct {
		name    string
		payload string
		kind    types.ErrorKind
	}{
		{"missing name", `{"product_name": "Widget"}`, types.KindValidation},
		{"missing product", `{"station_name": "Cutting"}`, types.KindValidation},
		{"bad report type", `{"product_name": "Widget", "station_name": "Cutting", "report_type": "Later"}`, types.KindValidation},
		{"unknown product", `{"product_name": "Gadget", "station_name": "Cutting"}`, types.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.CreateStation(ctx, decodeStation(t, tt.payload))
			if !types.IsKind(err, tt.kind) {
				t.Errorf("Expected %s, got %v", tt.kind, err)
			}
		})
	}
}

func TestListStationsByProductUnknown(t *testing.T) {
	db := testutil.NewTestDB(t)
	store := services.NewStationStore(db)

	_, err := store.ListStationsByProduct(context.Background(), "Nothing")
	if !types.IsKind(err, types.KindNotFound) {
		t.Errorf("Expected not found, got %v", err)
	}
}

func TestUpdateStationAndOrder(t *testing.T) {
	db := testutil.NewTestDB(t)
	products := services.NewProductStore(db)
	store := services.NewStationStore(db)
	ctx := context.Background()

	createProduct(t, products, "Widget")
	createProduct(t, products, "Gadget")
	a := createStation(t, store, `{"product_name": "Widget", "station_name": "A"}`)
	b := createStation(t, store, `{"product_name": "Widget", "station_name": "B"}`)
	c := createStation(t, store, `{"product_name": "Widget", "station_name": "C"}`)

	if err := store.UpdateStation(ctx, b, decodeStation(t, `{"station_name": "B2", "station_number": 9, "products_per_hour": 12, "report_type": "In process"}`)); err != nil {
		t.Fatalf("UpdateStation failed: %v", err)
	}
	if err := store.UpdateStation(ctx, 999, decodeStation(t, `{"station_name": "X"}`)); !types.IsKind(err, types.KindNotFound) {
		t.Errorf("Expected not found, got %v", err)
	}

	if err := store.UpdateStationOrder(ctx, []services.StationOrderEntry{{ID: types.FlexUint64(c)}, {ID: types.FlexUint64(a)}, {ID: types.FlexUint64(b)}}); err != nil {
		t.Fatalf("UpdateStationOrder failed: %v", err)
	}

	stations, err := store.ListStationsByProduct(ctx, "Widget")
	if err != nil {
		t.Fatalf("ListStationsByProduct failed: %v", err)
	}
	want := []uint64{c, a, b}
	for i, id := range want {
		if stations[i].ID != id || stations[i].StationNumber != i+1 {
			t.Errorf("Position %d: expected station %d numbered %d, got %d numbered %d", i, id, i+1, stations[i].ID, stations[i].StationNumber)
		}
	}
	if stations[2].StationName != "B2" || stations[2].ProductsPerHour != 12 || stations[2].ReportType != models.ReportInProcess {
		t.Errorf("Expected updated station fields, got %+v", stations[2])
	}

	// Moving a station to another product
	if err := store.UpdateStation(ctx, a, decodeStation(t, `{"product_name": "Gadget", "station_name": "A"}`)); err != nil {
		t.Fatalf("UpdateStation product move failed: %v", err)
	}
	all, err := store.ListStations(ctx)
	if err != nil {
		t.Fatalf("ListStations failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 stations, got %d", len(all))
	}
	if all[0].ProductName != "Gadget" || all[1].ProductName != "Widget" {
		t.Errorf("Expected stations grouped by product name, got %+v", all)
	}
}

func TestStationParameterAssignment(t *testing.T) {
	db := testutil.NewTestDB(t)
	createProduct(t, services.NewProductStore(db), "Widget")
	store := services.NewStationStore(db)
	ctx := context.Background()

	stationID := createStation(t, store, `{"product_name": "Widget", "station_name": "Cutting"}`)
	width := createParameterDefinition(t, store, "Width")
	depth := createParameterDefinition(t, store, "Depth")

	if err := store.AddParameterToStation(ctx, stationID, width); err != nil {
		t.Fatalf("AddParameterToStation failed: %v", err)
	}
	err := store.AddParameterToStation(ctx, stationID, width)
	if !types.IsKind(err, types.KindConflict) {
		t.Fatalf("Expected conflict on duplicate assignment, got %v", err)
	}
	if n := testutil.Count(t, db, &models.StationParameterAssignment{}, "station_id = ? AND parameter_id = ?", stationID, width); n != 1 {
		t.Errorf("Expected exactly one join row, got %d", n)
	}

	if err := store.AddParameterToStation(ctx, stationID, 999); !types.IsKind(err, types.KindNotFound) {
		t.Errorf("Expected not found for unknown parameter, got %v", err)
	}
	if err := store.AddParameterToStation(ctx, 999, depth); !types.IsKind(err, types.KindNotFound) {
		t.Errorf("Expected not found for unknown station, got %v", err)
	}

	if err := store.AddParameterToStation(ctx, stationID, depth); err != nil {
		t.Fatalf("AddParameterToStation failed: %v", err)
	}
	params, err := store.ListStationParameters(ctx, stationID)
	if err != nil {
		t.Fatalf("ListStationParameters failed: %v", err)
	}
	if len(params) != 2 || params[0].Name != "Width" {
		t.Errorf("Expected Width then Depth, got %+v", params)
	}

	stations, err := store.ListStationsByProduct(ctx, "Widget")
	if err != nil {
		t.Fatalf("ListStationsByProduct failed: %v", err)
	}
	if len(stations[0].Parameters) != 2 {
		t.Errorf("Expected 2 attached parameters, got %d", len(stations[0].Parameters))
	}

	for i := 0; i < 2; i++ {
		if err := store.RemoveParameterFromStation(ctx, stationID, width); err != nil {
			t.Errorf("RemoveParameterFromStation call %d failed: %v", i+1, err)
		}
	}
	if n := testutil.Count(t, db, &models.StationParameterAssignment{}, "station_id = ?", stationID); n != 1 {
		t.Errorf("Expected 1 assignment after removal, got %d", n)
	}

	defs, err := store.ListAllParameterDefinitions(ctx)
	if err != nil {
		t.Fatalf("ListAllParameterDefinitions failed: %v", err)
	}
	if len(defs) != 2 || defs[0].Name != "Depth" {
		t.Errorf("Expected definitions ordered by name, got %+v", defs)
	}

	if _, err := store.CreateParameterDefinition(ctx, services.ParameterDefinitionInput{Name: "Width"}); !types.IsKind(err, types.KindConflict) {
		t.Errorf("Expected conflict on duplicate definition, got %v", err)
	}
}

func TestDeleteStation(t *testing.T) {
	db := testutil.NewTestDB(t)
	createProduct(t, services.NewProductStore(db), "Widget")
	store := services.NewStationStore(db)
	ctx := context.Background()

	stationID := createStation(t, store, `{"product_name": "Widget", "station_name": "Cutting"}`)
	param := createParameterDefinition(t, store, "Width")
	if err := store.AddParameterToStation(ctx, stationID, param); err != nil {
		t.Fatalf("AddParameterToStation failed: %v", err)
	}

	if err := store.DeleteStation(ctx, stationID); err != nil {
		t.Fatalf("DeleteStation failed: %v", err)
	}
	if n := testutil.Count(t, db, &models.StationParameterAssignment{}, ""); n != 0 {
		t.Errorf("Expected assignments removed, got %d", n)
	}
	if err := store.DeleteStation(ctx, stationID); !types.IsKind(err, types.KindNotFound) {
		t.Errorf("Expected not found, got %v", err)
	}
}

func TestMachines(t *testing.T) {
	db := testutil.NewTestDB(t)
	createProduct(t, services.NewProductStore(db), "Widget")
	store := services.NewStationStore(db)
	ctx := context.Background()

	var input services.AddMachinesInput
	payload := `{
		"product_name": "Widget",
		"machines": [
			{"machine": "Lathe", "cycleTime": 3, "dailyCount": "40", "perHour": 7.5},
			{"machineName": "Press", "cycle_time": "1.5", "products_per_hour": 20},
			{"machine": "Lathe"}
		]
	}`
	if err := json.Unmarshal([]byte(payload), &input); err != nil {
		t.Fatalf("Failed to decode machines: %v", err)
	}

	n, err := store.AddMachines(ctx, services.ProductRef(input.ProductID, input.ProductName), input.Machines)
	if err != nil {
		t.Fatalf("AddMachines failed: %v", err)
	}
	if n != 3 {
		t.Errorf("Expected 3 machines added, got %d", n)
	}

	machines, err := store.ListMachinesByProduct(ctx, "Widget")
	if err != nil {
		t.Fatalf("ListMachinesByProduct failed: %v", err)
	}
	if len(machines) != 3 {
		t.Fatalf("Expected 3 machines, got %d", len(machines))
	}
	if machines[0].MachineName != "Lathe" || machines[0].CycleTime != 3 || machines[0].DailyCount != 40 || machines[0].ProductsPerHour != 7.5 {
		t.Errorf("Unexpected first machine: %+v", machines[0])
	}
	if machines[1].MachineName != "Press" || machines[1].CycleTime != 1.5 || machines[1].ProductsPerHour != 20 {
		t.Errorf("Unexpected second machine: %+v", machines[1])
	}
	if machines[2].CycleTime != 0 || machines[2].DailyCount != 0 {
		t.Errorf("Expected numeric defaults of 0, got %+v", machines[2])
	}

	deleted, err := store.DeleteMachine(ctx, "1", "Lathe")
	if err != nil {
		t.Fatalf("DeleteMachine failed: %v", err)
	}
	if deleted != 2 {
		t.Errorf("Expected 2 deleted, got %d", deleted)
	}

	bad := []services.MachineInput{{Machine: "Ok"}, {CycleTime: types.FlexFloat64{Value: 1, Set: true}}}
	if _, err := store.AddMachines(ctx, "Widget", bad); !types.IsKind(err, types.KindValidation) {
		t.Errorf("Expected validation error for unnamed machine, got %v", err)
	}
	if n := testutil.Count(t, db, &models.Machine{}, ""); n != 1 {
		t.Errorf("Expected no rows from rejected batch, got %d machines", n)
	}

	if _, err := store.AddMachines(ctx, "Gadget", []services.MachineInput{{Machine: "Drill"}}); !types.IsKind(err, types.KindNotFound) {
		t.Errorf("Expected not found for unknown product, got %v", err)
	}
	if _, err := store.ListMachinesByProduct(ctx, "Gadget"); !types.IsKind(err, types.KindNotFound) {
		t.Errorf("Expected not found for unknown product, got %v", err)
	}
}
