// reports.go
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
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/floorsdb/internal/services"
	"github.com/localnerve/floorsdb/internal/utils"
)

// ReportHandler handles the read-only report routes
type ReportHandler struct {
	Store *services.ReportStore
}

// StationCompletions handles GET /api/reports/station-completions?from=&to=
// @Summary Completed visits per station in a date range
// @Tags Reports
// @Produce json
// @Param from query string true "YYYY-MM-DD"
// @Param to query string true "YYYY-MM-DD"
// @Success 200 {array} services.StationCompletion
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /reports/station-completions [get]
func (h *ReportHandler) StationCompletions(c *fiber.Ctx) error {
	rows, err := h.Store.StationCompletions(c.UserContext(), c.Query("from"), c.Query("to"))
	if err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return c.JSON(rows)
}

// EmployeeCompletions handles GET /api/reports/employee-completions?from=&to=
// @Summary Completed visits per worker in a date range
// @Tags Reports
// @Produce json
// @Param from query string true "YYYY-MM-DD"
// @Param to query string true "YYYY-MM-DD"
// @Success 200 {array} services.EmployeeCompletion
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /reports/employee-completions [get]
func (h *ReportHandler) EmployeeCompletions(c *fiber.Ctx) error {
	rows, err := h.Store.EmployeeCompletions(c.UserContext(), c.Query("from"), c.Query("to"))
	if err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return c.JSON(rows)
}

// WeeklyCompletions handles GET /api/reports/weekly-completions?from=&to=
// @Summary Completed visits per weekday and station, Monday first
// @Tags Reports
// @Produce json
// @Param from query string true "YYYY-MM-DD"
// @Param to query string true "YYYY-MM-DD"
// @Success 200 {array} services.WeekdayCompletion
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /reports/weekly-completions [get]
func (h *ReportHandler) WeeklyCompletions(c *fiber.Ctx) error {
	rows, err := h.Store.WeeklyCompletions(c.UserContext(), c.Query("from"), c.Query("to"))
	if err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return c.JSON(rows)
}

// ProductDetails handles GET /api/reports/product-details?productId=
// @Summary Station visit history of a product with days spent
// @Tags Reports
// @Produce json
// @Param productId query int true "Product ID"
// @Success 200 {array} services.StationVisit
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /reports/product-details [get]
func (h *ReportHandler) ProductDetails(c *fiber.Ctx) error {
	productID, ok := queryID(c, "productId")
	if !ok {
		return invalidInput(c, "reports.validation.productId")
	}

	visits, err := h.Store.ProductDetails(c.UserContext(), productID)
	if err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return c.JSON(visits)
}
