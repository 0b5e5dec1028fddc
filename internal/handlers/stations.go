// stations.go
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
	"github.com/localnerve/floorsdb/internal/types"
	"github.com/localnerve/floorsdb/internal/utils"
)

// StationHandler handles station, station parameter and machine routes
type StationHandler struct {
	Store *services.StationStore
}

// CreateStation handles POST /api/stations
// @Summary Create a station on a product
// @Description The product is given by product_id or product_name
// @Tags Stations
// @Accept json
// @Produce json
// @Param body body services.StationInput true "Station"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /stations [post]
func (h *StationHandler) CreateStation(c *fiber.Ctx) error {
	var body services.StationInput
	if err := c.BodyParser(&body); err != nil {
		return invalidInput(c, "stations.validation.input")
	}

	id, err := h.Store.CreateStation(c.UserContext(), body)
	if err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return message(c, fiber.StatusCreated, "Station created successfully", fiber.Map{"stationId": id})
}

// ListStations handles GET /api/stations
// @Summary List all stations grouped by product
// @Tags Stations
// @Produce json
// @Success 200 {array} models.Station
// @Router /stations [get]
func (h *StationHandler) ListStations(c *fiber.Ctx) error {
	stations, err := h.Store.ListStations(c.UserContext())
	if err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return c.JSON(stations)
}

// ListStationsByProduct handles GET /api/stations/by-product/:productName
// @Summary Stations of a product with their assigned parameters
// @Tags Stations
// @Produce json
// @Param productName path string true "Product name"
// @Success 200 {array} models.Station
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /stations/by-product/{productName} [get]
func (h *StationHandler) ListStationsByProduct(c *fiber.Ctx) error {
	stations, err := h.Store.ListStationsByProduct(c.UserContext(), decodedParam(c, "productName"))
	if err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return c.JSON(stations)
}

// UpdateStation handles PUT /api/stations/:id
// @Summary Overwrite every field of a station
// @Tags Stations
// @Accept json
// @Produce json
// @Param id path int true "Station ID"
// @Param body body services.StationInput true "Station"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /stations/{id} [put]
func (h *StationHandler) UpdateStation(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidInput(c, "stations.validation.id")
	}

	var body services.StationInput
	if err := c.BodyParser(&body); err != nil {
		return invalidInput(c, "stations.validation.input")
	}

	if err := h.Store.UpdateStation(c.UserContext(), id, body); err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return message(c, fiber.StatusOK, "Station updated successfully", nil)
}

// UpdateStationOrder handles PUT /api/stations/order
// @Summary Renumber stations from their position in the list
// @Tags Stations
// @Accept json
// @Produce json
// @Param body body object true "{stations: [{id}, ...]}"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /stations/order [put]
func (h *StationHandler) UpdateStationOrder(c *fiber.Ctx) error {
	var body struct {
		Stations types.FlexList[services.StationOrderEntry] `json:"stations"`
	}
	if err := c.BodyParser(&body); err != nil {
		return invalidInput(c, "stations.validation.input")
	}

	if err := h.Store.UpdateStationOrder(c.UserContext(), body.Stations.Slice()); err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return message(c, fiber.StatusOK, "Station order updated", nil)
}

// DeleteStation handles DELETE /api/stations/:id
// @Summary Delete a station and its parameter assignments
// @Tags Stations
// @Produce json
// @Param id path int true "Station ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /stations/{id} [delete]
func (h *StationHandler) DeleteStation(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidInput(c, "stations.validation.id")
	}

	if err := h.Store.DeleteStation(c.UserContext(), id); err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return message(c, fiber.StatusOK, "Station deleted successfully", nil)
}

// ListParameterDefinitions handles GET /api/stations/parameters
// @Summary List every station parameter definition by name
// @Tags Stations
// @Produce json
// @Success 200 {array} models.StationParameter
// @Router /stations/parameters [get]
func (h *StationHandler) ListParameterDefinitions(c *fiber.Ctx) error {
	params, err := h.Store.ListAllParameterDefinitions(c.UserContext())
	if err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return c.JSON(params)
}

// CreateParameterDefinition handles POST /api/stations/parameters
// @Summary Create a reusable station parameter
// @Tags Stations
// @Accept json
// @Produce json
// @Param body body services.ParameterDefinitionInput true "Parameter"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /stations/parameters [post]
func (h *StationHandler) CreateParameterDefinition(c *fiber.Ctx) error {
	var body services.ParameterDefinitionInput
	if err := c.BodyParser(&body); err != nil {
		return invalidInput(c, "stations.validation.input")
	}

	id, err := h.Store.CreateParameterDefinition(c.UserContext(), body)
	if err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return message(c, fiber.StatusCreated, "Parameter created successfully", fiber.Map{"parameterId": id})
}

// ListStationParameters handles GET /api/stations/:stationId/parameters
// @Summary Parameters assigned to a station
// @Tags Stations
// @Produce json
// @Param stationId path int true "Station ID"
// @Success 200 {array} models.StationParameter
// @Router /stations/{stationId}/parameters [get]
func (h *StationHandler) ListStationParameters(c *fiber.Ctx) error {
	id, ok := pathID(c, "stationId")
	if !ok {
		return invalidInput(c, "stations.validation.id")
	}

	params, err := h.Store.ListStationParameters(c.UserContext(), id)
	if err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return c.JSON(params)
}

// AddParameterToStation handles POST /api/stations/:stationId/parameters/:parameterId
// @Summary Assign a parameter to a station
// @Tags Stations
// @Produce json
// @Param stationId path int true "Station ID"
// @Param parameterId path int true "Parameter ID"
// @Success 201 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /stations/{stationId}/parameters/{parameterId} [post]
func (h *StationHandler) AddParameterToStation(c *fiber.Ctx) error {
	stationID, ok := pathID(c, "stationId")
	if !ok {
		return invalidInput(c, "stations.validation.id")
	}
	parameterID, ok := pathID(c, "parameterId")
	if !ok {
		return invalidInput(c, "stations.validation.id")
	}

	if err := h.Store.AddParameterToStation(c.UserContext(), stationID, parameterID); err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return message(c, fiber.StatusCreated, "Parameter added to station", nil)
}

// RemoveParameterFromStation handles DELETE /api/stations/:stationId/parameters/:parameterId
// @Summary Unassign a parameter from a station, succeeding when it was not assigned
// @Tags Stations
// @Produce json
// @Param stationId path int true "Station ID"
// @Param parameterId path int true "Parameter ID"
// @Success 200 {object} map[string]interface{}
// @Router /stations/{stationId}/parameters/{parameterId} [delete]
func (h *StationHandler) RemoveParameterFromStation(c *fiber.Ctx) error {
	stationID, ok := pathID(c, "stationId")
	if !ok {
		return invalidInput(c, "stations.validation.id")
	}
	parameterID, ok := pathID(c, "parameterId")
	if !ok {
		return invalidInput(c, "stations.validation.id")
	}

	if err := h.Store.RemoveParameterFromStation(c.UserContext(), stationID, parameterID); err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return message(c, fiber.StatusOK, "Parameter removed from station", nil)
}
