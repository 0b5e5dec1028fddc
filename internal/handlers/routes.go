// routes.go
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
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/floorsdb/internal/config"
	"github.com/localnerve/floorsdb/internal/middleware"
	"github.com/localnerve/floorsdb/internal/services"
	"github.com/localnerve/floorsdb/internal/types"
	"gorm.io/gorm"
)

// Routes holds one handler per resource, all sharing the same database handle
type Routes struct {
	Health      *HealthHandler
	Products    *ProductHandler
	Stations    *StationHandler
	Shifts      *ShiftHandler
	Allocations *AllocationHandler
	Users       *UserHandler
	Reports     *ReportHandler
}

// NewRoutes builds the stores and handlers over db
func NewRoutes(cfg *config.Config, db *gorm.DB) *Routes {
	return &Routes{
		Health:      &HealthHandler{Config: cfg, DB: db},
		Products:    &ProductHandler{Store: services.NewProductStore(db)},
		Stations:    &StationHandler{Store: services.NewStationStore(db)},
		Shifts:      &ShiftHandler{Store: services.NewShiftStore(db)},
		Allocations: &AllocationHandler{Store: services.NewAllocationStore(db)},
		Users:       &UserHandler{Store: services.NewUserStore(db, cfg.BcryptCost)},
		Reports:     &ReportHandler{Store: services.NewReportStore(db)},
	}
}

// Register mounts every route on api, normally the /api group.
// Static segments are registered before the parameter routes they would otherwise match.
func (r *Routes) Register(api fiber.Router) {
	api.Use(middleware.VersionMiddleware())
	api.Use(middleware.Actor())

	api.Get("/health", r.Health.Health)
	api.Get("/db-check", r.Health.DBCheck)

	products := api.Group("/products")
	products.Get("/", r.Products.ListProducts)
	products.Post("/", r.Products.CreateProduct)
	products.Get("/all-with-details", r.Products.ListProductsWithDetails)
	products.Put("/reorder", r.Products.ReorderProducts)
	products.Get("/:productId", r.Products.GetProduct)
	products.Put("/:productId", r.Products.UpdateProduct)
	products.Delete("/:productId", r.Products.DeleteProduct)
	products.Get("/:productId/values", r.Products.GetParameterValues)
	products.Post("/:productId/values", r.Products.SaveParameterValues)
	api.Get("/product-names", r.Products.ListProductNames)

	stations := api.Group("/stations")
	stations.Post("/", r.Stations.CreateStation)
	stations.Get("/", r.Stations.ListStations)
	stations.Get("/by-product/:productName", r.Stations.ListStationsByProduct)
	stations.Get("/parameters", r.Stations.ListParameterDefinitions)
	stations.Post("/parameters", r.Stations.CreateParameterDefinition)
	stations.Put("/order", r.Stations.UpdateStationOrder)
	stations.Put("/:id", r.Stations.UpdateStation)
	stations.Delete("/:id", r.Stations.DeleteStation)
	stations.Get("/:stationId/parameters", r.Stations.ListStationParameters)
	stations.Post("/:stationId/parameters/:parameterId", r.Stations.AddParameterToStation)
	stations.Delete("/:stationId/parameters/:parameterId", r.Stations.RemoveParameterFromStation)

	machines := api.Group("/machines")
	machines.Post("/", r.Stations.AddMachines)
	machines.Delete("/", r.Stations.DeleteMachine)
	machines.Get("/by-product/:productName", r.Stations.ListMachinesByProduct)

	shifts := api.Group("/shifts")
	shifts.Get("/", r.Shifts.ListShifts)
	shifts.Post("/", r.Shifts.CreateShift)
	shifts.Get("/:id", r.Shifts.GetShift)
	shifts.Put("/:id", r.Shifts.UpdateShift)
	shifts.Delete("/:id", r.Shifts.DeleteShift)

	allocations := api.Group("/allocations")
	allocations.Get("/", r.Allocations.ListAllocations)
	allocations.Post("/", r.Allocations.CreateAllocations)
	allocations.Get("/available-workers", r.Allocations.ListAvailableWorkers)
	allocations.Get("/audit", r.Allocations.ListAudit)
	allocations.Delete("/by-date/:date", r.Allocations.DeleteAllocationsByDate)
	allocations.Get("/:id", r.Allocations.GetAllocation)
	allocations.Put("/:id", r.Allocations.UpdateAllocation)
	allocations.Delete("/:id", r.Allocations.DeleteAllocation)

	api.Get("/worker-allocations", r.Allocations.GetBoard)
	api.Post("/worker-allocations", r.Allocations.ReplaceBoard)

	users := api.Group("/users")
	users.Get("/", r.Users.ListUsers)
	users.Get("/active", r.Users.ListActiveUsers)
	users.Post("/register", r.Users.RegisterUser)
	users.Put("/:id", r.Users.UpdateUser)
	users.Delete("/:id", r.Users.DeleteUser)
	users.Get("/:id/permissions", r.Users.GetUserPermissions)
	users.Put("/:id/permissions", r.Users.UpdateUserPermissions)

	reports := api.Group("/reports")
	reports.Get("/station-completions", r.Reports.StationCompletions)
	reports.Get("/employee-completions", r.Reports.EmployeeCompletions)
	reports.Get("/weekly-completions", r.Reports.WeeklyCompletions)
	reports.Get("/product-details", r.Reports.ProductDetails)
}

// NotFound is the catch-all for unmatched routes
func NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"status":    fiber.StatusNotFound,
		"message":   "[404] Resource Not Found",
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
	})
}

// ErrorHandler renders errors that escape handlers, including middleware CustomErrors
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	if e, ok := err.(*types.CustomError); ok {
		code = e.Code
		message = e.Message
		errorType = e.Type
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}
