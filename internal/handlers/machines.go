// machines.go
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

// AddMachines handles POST /api/machines
// @Summary Add machines to a product
// @Description The product is given by product_id or product_name
// @Tags Machines
// @Accept json
// @Produce json
// @Param body body services.AddMachinesInput true "Machines"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /machines [post]
func (h *StationHandler) AddMachines(c *fiber.Ctx) error {
	var body services.AddMachinesInput
	if err := c.BodyParser(&body); err != nil {
		return invalidInput(c, "machines.validation.input")
	}

	ref := services.ProductRef(body.ProductID, body.ProductName)
	inserted, err := h.Store.AddMachines(c.UserContext(), ref, body.Machines)
	if err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return message(c, fiber.StatusCreated, "Machines inserted successfully", fiber.Map{"inserted": inserted})
}

// DeleteMachine handles DELETE /api/machines
// @Summary Delete a product's machines by name
// @Tags Machines
// @Accept json
// @Produce json
// @Param body body services.DeleteMachineInput true "Machine"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /machines [delete]
func (h *StationHandler) DeleteMachine(c *fiber.Ctx) error {
	var body services.DeleteMachineInput
	if err := c.BodyParser(&body); err != nil {
		return invalidInput(c, "machines.validation.input")
	}

	ref := services.ProductRef(body.ProductID, body.ProductName)
	deleted, err := h.Store.DeleteMachine(c.UserContext(), ref, body.MachineName)
	if err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return c.JSON(fiber.Map{"deleted": deleted})
}

// ListMachinesByProduct handles GET /api/machines/by-product/:productName
// @Summary Machines of a product in insertion order
// @Tags Machines
// @Produce json
// @Param productName path string true "Product name"
// @Success 200 {array} models.Machine
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /machines/by-product/{productName} [get]
func (h *StationHandler) ListMachinesByProduct(c *fiber.Ctx) error {
	machines, err := h.Store.ListMachinesByProduct(c.UserContext(), decodedParam(c, "productName"))
	if err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return c.JSON(machines)
}
