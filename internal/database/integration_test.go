// integration_test.go
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

package database_test

import (
	"context"
	"os"
	"testing"

	"github.com/localnerve/floorsdb/internal/database"
	"github.com/localnerve/floorsdb/internal/models"
	"github.com/localnerve/floorsdb/internal/services"
	"github.com/localnerve/floorsdb/internal/testutil"
	"github.com/localnerve/floorsdb/internal/types"
)

// TestMySQLIntegration runs the transactional write paths against a real MySQL server.
// It needs Docker and FLOORSDB_IT=1.
func TestMySQLIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if os.Getenv("FLOORSDB_IT") == "" {
		t.Skip("Set FLOORSDB_IT=1 to run against a MySQL testcontainer")
	}

	ctx := context.Background()
	mysql, err := testutil.StartMySQL(ctx, os.Getenv("MYSQL_IMAGE"))
	if err != nil {
		t.Fatalf("Failed to start MySQL: %v", err)
	}
	defer mysql.Terminate(ctx)

	db, err := database.Connect(mysql.Config)
	if err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate failed: %v", err)
	}

	if result := services.HealthCheck(mysql.Config, db); !result.Healthy() {
		t.Fatalf("Expected healthy database, got %+v", result)
	}

	products := services.NewProductStore(db)
	id, err := products.CreateProduct(ctx, services.ProductInput{
		Name:       "Widget",
		Parameters: []services.ParameterInput{{ParameterName: "Weight", Unit: "kg", Status: "Active"}},
	})
	if err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}

	if _, err := products.CreateProduct(ctx, services.ProductInput{Name: "Widget"}); !types.IsKind(err, types.KindConflict) {
		t.Errorf("Expected conflict on duplicate product name, got %v", err)
	}

	stations := services.NewStationStore(db)
	stationID, err := stations.CreateStation(ctx, services.StationInput{ProductName: "Widget", StationName: "Assembly"})
	if err != nil {
		t.Fatalf("CreateStation failed: %v", err)
	}
	paramID, err := stations.CreateParameterDefinition(ctx, services.ParameterDefinitionInput{Name: "Torque"})
	if err != nil {
		t.Fatalf("CreateParameterDefinition failed: %v", err)
	}
	if err := stations.AddParameterToStation(ctx, stationID, paramID); err != nil {
		t.Fatalf("AddParameterToStation failed: %v", err)
	}
	if err := stations.AddParameterToStation(ctx, stationID, paramID); !types.IsKind(err, types.KindConflict) {
		t.Errorf("Expected conflict on repeated assignment, got %v", err)
	}

	if err := products.DeleteProduct(ctx, id); err != nil {
		t.Fatalf("DeleteProduct failed: %v", err)
	}
	if n := testutil.Count(t, db, &models.Station{}, "product_id = ?", id); n != 0 {
		t.Errorf("Expected stations to cascade with the product, got %d", n)
	}
	if n := testutil.Count(t, db, &models.StationParameterAssignment{}, "station_id = ?", stationID); n != 0 {
		t.Errorf("Expected assignments to cascade with the station, got %d", n)
	}
}
