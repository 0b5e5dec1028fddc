// allocations.go
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
	"github.com/localnerve/floorsdb/internal/middleware"
	"github.com/localnerve/floorsdb/internal/services"
	"github.com/localnerve/floorsdb/internal/types"
	"github.com/localnerve/floorsdb/internal/utils"
)

// AllocationHandler handles worker allocation and board routes.
// Writes record the X-User-Id actor on their audit rows.
type AllocationHandler struct {
	Store *services.AllocationStore
}

// ListAllocations handles GET /api/allocations?date=&station_id=&user_id=
// @Summary List allocations, newest date first
// @Tags Allocations
// @Produce json
// @Param date query string false "YYYY-MM-DD"
// @Param station_id query int false "Station ID"
// @Param user_id query int false "User ID"
// @Success 200 {array} models.WorkerAllocation
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /allocations [get]
func (h *AllocationHandler) ListAllocations(c *fiber.Ctx) error {
	stationID, ok := queryID(c, "station_id")
	if !ok {
		return invalidInput(c, "allocations.validation.station_id")
	}
	userID, ok := queryID(c, "user_id")
	if !ok {
		return invalidInput(c, "allocations.validation.user_id")
	}

	filter := services.AllocationFilter{Date: c.Query("date"), StationID: stationID, UserID: userID}
	allocations, err := h.Store.ListAllocations(c.UserContext(), filter)
	if err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return c.JSON(allocations)
}

// CreateAllocations handles POST /api/allocations
// @Summary Create one allocation or a batch
// @Description A station already holding an allocation on the date fails the whole batch with 409
// @Tags Allocations
// @Accept json
// @Produce json
// @Param X-User-Id header int false "Acting user"
// @Param body body []services.AllocationInput true "Allocations"
// @Success 201 {array} models.WorkerAllocation
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /allocations [post]
func (h *AllocationHandler) CreateAllocations(c *fiber.Ctx) error {
	var body types.FlexList[services.AllocationInput]
	if err := c.BodyParser(&body); err != nil {
		return invalidInput(c, "allocations.validation.input")
	}

	created, err := h.Store.CreateAllocations(c.UserContext(), body.Slice(), middleware.ActorFrom(c))
	if err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetAllocation handles GET /api/allocations/:id
// @Summary Get an allocation
// @Tags Allocations
// @Produce json
// @Param id path int true "Allocation ID"
// @Success 200 {object} models.WorkerAllocation
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /allocations/{id} [get]
func (h *AllocationHandler) GetAllocation(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidInput(c, "allocations.validation.id")
	}

	allocation, err := h.Store.GetAllocationByID(c.UserContext(), id)
	if err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return c.JSON(allocation)
}

// UpdateAllocation handles PUT /api/allocations/:id
// @Summary Replace an allocation
// @Tags Allocations
// @Accept json
// @Produce json
// @Param X-User-Id header int false "Acting user"
// @Param id path int true "Allocation ID"
// @Param body body services.AllocationInput true "Allocation"
// @Success 200 {object} models.WorkerAllocation
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /allocations/{id} [put]
func (h *AllocationHandler) UpdateAllocation(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidInput(c, "allocations.validation.id")
	}

	var body services.AllocationInput
	if err := c.BodyParser(&body); err != nil {
		return invalidInput(c, "allocations.validation.input")
	}

	ctx := c.UserContext()
	if err := h.Store.UpdateAllocation(ctx, id, body, middleware.ActorFrom(c)); err != nil {
		return utils.StoreErrorResponse(c, err)
	}

	allocation, err := h.Store.GetAllocationByID(ctx, id)
	if err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return c.JSON(allocation)
}

// DeleteAllocation handles DELETE /api/allocations/:id
// @Summary Delete an allocation
// @Tags Allocations
// @Produce json
// @Param X-User-Id header int false "Acting user"
// @Param id path int true "Allocation ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /allocations/{id} [delete]
func (h *AllocationHandler) DeleteAllocation(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidInput(c, "allocations.validation.id")
	}

	if err := h.Store.DeleteAllocation(c.UserContext(), id, middleware.ActorFrom(c)); err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return message(c, fiber.StatusOK, "Allocation deleted", nil)
}

// ListAvailableWorkers handles GET /api/allocations/available-workers?date=&station_id=
// @Summary Active workers with no allocation on the date
// @Tags Allocations
// @Produce json
// @Param date query string true "YYYY-MM-DD"
// @Param station_id query int false "Station ID"
// @Success 200 {array} services.AvailableWorker
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /allocations/available-workers [get]
func (h *AllocationHandler) ListAvailableWorkers(c *fiber.Ctx) error {
	stationID, ok := queryID(c, "station_id")
	if !ok {
		return invalidInput(c, "allocations.validation.station_id")
	}

	workers, err := h.Store.ListAvailableWorkers(c.UserContext(), c.Query("date"), stationID)
	if err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return c.JSON(workers)
}

// DeleteAllocationsByDate handles DELETE /api/allocations/by-date/:date
// @Summary Delete every allocation on a date
// @Tags Allocations
// @Produce json
// @Param X-User-Id header int false "Acting user"
// @Param date path string true "YYYY-MM-DD"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /allocations/by-date/{date} [delete]
func (h *AllocationHandler) DeleteAllocationsByDate(c *fiber.Ctx) error {
	deleted, err := h.Store.DeleteAllocationsByDate(c.UserContext(), c.Params("date"), middleware.ActorFrom(c))
	if err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return utils.MutationSuccessResponse(c, fiber.StatusOK, int64(deleted), nil)
}

// ListAudit handles GET /api/allocations/audit?allocation_id=
// @Summary Allocation audit trail, oldest first
// @Tags Allocations
// @Produce json
// @Param allocation_id query int false "Allocation ID"
// @Success 200 {array} models.AllocationAudit
// @Router /allocations/audit [get]
func (h *AllocationHandler) ListAudit(c *fiber.Ctx) error {
	allocationID, ok := queryID(c, "allocation_id")
	if !ok {
		return invalidInput(c, "allocations.validation.allocation_id")
	}

	audits, err := h.Store.ListAudit(c.UserContext(), allocationID)
	if err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return c.JSON(audits)
}

// GetBoard handles GET /api/worker-allocations?date=&product=
// @Summary Workers per station of a product on a date
// @Tags Allocations
// @Produce json
// @Param date query string true "YYYY-MM-DD"
// @Param product query string true "Product name"
// @Success 200 {object} map[string][]int
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /worker-allocations [get]
func (h *AllocationHandler) GetBoard(c *fiber.Ctx) error {
	date := c.Query("date")
	product := c.Query("product")
	if date == "" || product == "" {
		return utils.ErrorResponse(c, "date and product are required", fiber.StatusBadRequest, "getBoard")
	}

	board, err := h.Store.GetBoard(c.UserContext(), date, product)
	if err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return c.JSON(board)
}

// ReplaceBoard handles POST /api/worker-allocations
// @Summary Replace the workers of the named stations for a product and date
// @Tags Allocations
// @Accept json
// @Produce json
// @Param X-User-Id header int false "Acting user"
// @Param body body services.BoardInput true "{date, product, allocations: {stationId: [workerId]}}"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /worker-allocations [post]
func (h *AllocationHandler) ReplaceBoard(c *fiber.Ctx) error {
	var body services.BoardInput
	if err := c.BodyParser(&body); err != nil {
		return invalidInput(c, "allocations.validation.input")
	}

	assigned, err := h.Store.ReplaceBoard(c.UserContext(), body, middleware.ActorFrom(c))
	if err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return message(c, fiber.StatusOK, "Allocations saved", fiber.Map{"assigned": assigned})
}
