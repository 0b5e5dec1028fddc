// shifts.go
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

// ShiftHandler handles shift routes
type ShiftHandler struct {
	Store *services.ShiftStore
}

// ListShifts handles GET /api/shifts
// @Summary List shifts
// @Tags Shifts
// @Produce json
// @Success 200 {array} models.Shift
// @Router /shifts [get]
func (h *ShiftHandler) ListShifts(c *fiber.Ctx) error {
	shifts, err := h.Store.ListShifts(c.UserContext())
	if err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return c.JSON(shifts)
}

// GetShift handles GET /api/shifts/:id
// @Summary Get a shift
// @Tags Shifts
// @Produce json
// @Param id path int true "Shift ID"
// @Success 200 {object} models.Shift
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /shifts/{id} [get]
func (h *ShiftHandler) GetShift(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidInput(c, "shifts.validation.id")
	}

	shift, err := h.Store.GetShift(c.UserContext(), id)
	if err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return c.JSON(shift)
}

// CreateShift handles POST /api/shifts
// @Summary Create a shift
// @Tags Shifts
// @Accept json
// @Produce json
// @Param body body services.ShiftInput true "Shift"
// @Success 201 {object} models.Shift
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /shifts [post]
func (h *ShiftHandler) CreateShift(c *fiber.Ctx) error {
	var body services.ShiftInput
	if err := c.BodyParser(&body); err != nil {
		return invalidInput(c, "shifts.validation.input")
	}

	shift, err := h.Store.CreateShift(c.UserContext(), body)
	if err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(shift)
}

// UpdateShift handles PUT /api/shifts/:id
// @Summary Replace a shift
// @Tags Shifts
// @Accept json
// @Produce json
// @Param id path int true "Shift ID"
// @Param body body services.ShiftInput true "Shift"
// @Success 200 {object} models.Shift
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /shifts/{id} [put]
func (h *ShiftHandler) UpdateShift(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidInput(c, "shifts.validation.id")
	}

	var body services.ShiftInput
	if err := c.BodyParser(&body); err != nil {
		return invalidInput(c, "shifts.validation.input")
	}

	shift, err := h.Store.UpdateShift(c.UserContext(), id, body)
	if err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return c.JSON(shift)
}

// DeleteShift handles DELETE /api/shifts/:id
// @Summary Delete a shift; allocations referencing it keep their window
// @Tags Shifts
// @Produce json
// @Param id path int true "Shift ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /shifts/{id} [delete]
func (h *ShiftHandler) DeleteShift(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidInput(c, "shifts.validation.id")
	}

	if err := h.Store.DeleteShift(c.UserContext(), id); err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return message(c, fiber.StatusOK, "Shift deleted", nil)
}
