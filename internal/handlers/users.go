// users.go
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

// UserHandler handles user and permission routes
type UserHandler struct {
	Store *services.UserStore
}

// ListUsers handles GET /api/users
// @Summary List users with their permission matrix, newest first
// @Tags Users
// @Produce json
// @Success 200 {array} models.User
// @Router /users [get]
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.Store.ListUsers(c.UserContext())
	if err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return c.JSON(users)
}

// ListActiveUsers handles GET /api/users/active
// @Summary List active users
// @Tags Users
// @Produce json
// @Success 200 {array} models.User
// @Router /users/active [get]
func (h *UserHandler) ListActiveUsers(c *fiber.Ctx) error {
	users, err := h.Store.ListActiveUsers(c.UserContext())
	if err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return c.JSON(users)
}

// RegisterUser handles POST /api/users/register
// @Summary Register a user with per-module permissions
// @Tags Users
// @Accept json
// @Produce json
// @Param body body services.RegisterUserInput true "User"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /users/register [post]
func (h *UserHandler) RegisterUser(c *fiber.Ctx) error {
	var body services.RegisterUserInput
	if err := c.BodyParser(&body); err != nil {
		return invalidInput(c, "users.validation.input")
	}

	id, err := h.Store.CreateUser(c.UserContext(), body)
	if err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return message(c, fiber.StatusCreated, "User created successfully", fiber.Map{"userId": id})
}

// UpdateUser handles PUT /api/users/:id
// @Summary Update the given user fields
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param body body services.UserPatch true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidInput(c, "users.validation.id")
	}

	var body services.UserPatch
	if err := c.BodyParser(&body); err != nil {
		return invalidInput(c, "users.validation.input")
	}

	if err := h.Store.UpdateUser(c.UserContext(), id, body); err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return message(c, fiber.StatusOK, "User updated", nil)
}

// DeleteUser handles DELETE /api/users/:id
// @Summary Delete a user and their permissions
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{}
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidInput(c, "users.validation.id")
	}

	if err := h.Store.DeleteUser(c.UserContext(), id); err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return message(c, fiber.StatusOK, "User deleted", nil)
}

// GetUserPermissions handles GET /api/users/:id/permissions
// @Summary Permission matrix of a user
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]models.PermissionSet
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /users/{id}/permissions [get]
func (h *UserHandler) GetUserPermissions(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidInput(c, "users.validation.id")
	}

	perms, err := h.Store.GetUserPermissions(c.UserContext(), id)
	if err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return c.JSON(perms)
}

// UpdateUserPermissions handles PUT /api/users/:id/permissions
// @Summary Upsert the given modules of a user's permission matrix
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param body body object true "{permissions: {module: {view, add, update, delete}}}"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /users/{id}/permissions [put]
func (h *UserHandler) UpdateUserPermissions(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidInput(c, "users.validation.id")
	}

	var body struct {
		Permissions map[string]services.PermissionInput `json:"permissions"`
	}
	if err := c.BodyParser(&body); err != nil {
		return invalidInput(c, "users.validation.input")
	}

	if err := h.Store.UpdateUserPermissions(c.UserContext(), id, body.Permissions); err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return message(c, fiber.StatusOK, "Permissions updated", nil)
}
