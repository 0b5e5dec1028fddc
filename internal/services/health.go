// health.go
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

package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/localnerve/floorsdb/internal/config"
	"github.com/localnerve/floorsdb/internal/utils"
	"gorm.io/gorm"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Database     string            `json:"database"`
	Host         string            `json:"host,omitempty"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// Healthy reports whether every check passed
func (r HealthCheckResult) Healthy() bool {
	return r.Status == "healthy"
}

// HealthCheck pings the database and, for networked drivers, the database host
func HealthCheck(cfg *config.Config, db *gorm.DB) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		Details: make(map[string]string),
	}

	fail := func(message string) {
		result.Status = "unhealthy"
		if result.ErrorMessage == "" {
			result.ErrorMessage = message
		} else {
			result.ErrorMessage += "; " + message
		}
		log.Printf("Health check failed - %s", message)
	}

	sqlDB, err := db.DB()
	if err != nil {
		result.Database = "error"
		result.Details["database_error"] = err.Error()
		fail(fmt.Sprintf("database connection error: %v", err))
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()

		if err := sqlDB.PingContext(ctx); err != nil {
			result.Database = "unreachable"
			result.Details["database_ping_error"] = err.Error()
			fail(fmt.Sprintf("database ping failed: %v", err))
		} else {
			result.Database = "ok"
			result.Details["database_type"] = cfg.DBType
			result.Details["database_name"] = cfg.DBDatabase
		}
	}

	if !cfg.IsSQLite() {
		if err := utils.PingDatabaseHost(cfg.DBHost, cfg.DBPort); err != nil {
			result.Host = "unreachable"
			result.Details["host_error"] = err.Error()
			fail(fmt.Sprintf("database host ping failed: %v", err))
		} else {
			result.Host = "ok"
		}
	}

	if result.Healthy() {
		log.Println("Health check passed - all systems operational")
	}

	return result
}
