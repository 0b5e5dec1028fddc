// products.go
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

// ProductHandler handles product, parameter and parameter value routes
type ProductHandler struct {
	Store *services.ProductStore
}

// ListProducts handles GET /api/products?search=
// @Summary List products
// @Description Products ordered by display order, optionally filtered by a case-insensitive name match
// @Tags Products
// @Produce json
// @Param search query string false "Name substring"
// @Success 200 {array} models.Product
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /products [get]
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.Store.ListProducts(c.UserContext(), c.Query("search"))
	if err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return c.JSON(products)
}

// ListProductsWithDetails handles GET /api/products/all-with-details?search=
// @Summary List products with parameters and values
// @Tags Products
// @Produce json
// @Param search query string false "Name substring"
// @Success 200 {array} services.ProductDetails
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /products/all-with-details [get]
func (h *ProductHandler) ListProductsWithDetails(c *fiber.Ctx) error {
	products, err := h.Store.ListProductsWithDetails(c.UserContext(), c.Query("search"))
	if err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return c.JSON(products)
}

// ListProductNames handles GET /api/product-names
// @Summary List product ids and names
// @Tags Products
// @Produce json
// @Success 200 {array} services.ProductName
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /product-names [get]
func (h *ProductHandler) ListProductNames(c *fiber.Ctx) error {
	names, err := h.Store.ListProductNames(c.UserContext())
	if err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return c.JSON(names)
}

// GetProduct handles GET /api/products/:productId
// @Summary Get a product with its parameters
// @Tags Products
// @Produce json
// @Param productId path int true "Product ID"
// @Success 200 {object} services.ProductWithParameters
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /products/{productId} [get]
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, ok := pathID(c, "productId")
	if !ok {
		return invalidInput(c, "products.validation.id")
	}

	product, err := h.Store.GetProductWithParameters(c.UserContext(), id)
	if err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return c.JSON(product)
}

// CreateProduct handles POST /api/products
// @Summary Create a product with its parameters
// @Tags Products
// @Accept json
// @Produce json
// @Param body body services.ProductInput true "Product"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /products [post]
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var body services.ProductInput
	if err := c.BodyParser(&body); err != nil {
		return invalidInput(c, "products.validation.input")
	}

	id, err := h.Store.CreateProduct(c.UserContext(), body)
	if err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return message(c, fiber.StatusCreated, "Product created successfully", fiber.Map{"productId": id})
}

// UpdateProduct handles PUT /api/products/:productId
// @Summary Replace a product's name and full parameter list
// @Tags Products
// @Accept json
// @Produce json
// @Param productId path int true "Product ID"
// @Param body body services.ProductInput true "Product"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /products/{productId} [put]
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, ok := pathID(c, "productId")
	if !ok {
		return invalidInput(c, "products.validation.id")
	}

	var body services.ProductInput
	if err := c.BodyParser(&body); err != nil {
		return invalidInput(c, "products.validation.input")
	}

	if err := h.Store.UpdateProduct(c.UserContext(), id, body); err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return message(c, fiber.StatusOK, "Product updated successfully", nil)
}

// DeleteProduct handles DELETE /api/products/:productId
// @Summary Delete a product with its parameters and values
// @Tags Products
// @Produce json
// @Param productId path int true "Product ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /products/{productId} [delete]
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, ok := pathID(c, "productId")
	if !ok {
		return invalidInput(c, "products.validation.id")
	}

	if err := h.Store.DeleteProduct(c.UserContext(), id); err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return message(c, fiber.StatusOK, "Product deleted successfully", nil)
}

// ReorderProducts handles PUT /api/products/reorder
// @Summary Set display order from the position of each id
// @Tags Products
// @Accept json
// @Produce json
// @Param body body object true "{productIds: [id, ...]}"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /products/reorder [put]
func (h *ProductHandler) ReorderProducts(c *fiber.Ctx) error {
	var body struct {
		ProductIDs types.FlexList[types.FlexUint64] `json:"productIds"`
	}
	if err := c.BodyParser(&body); err != nil {
		return invalidInput(c, "products.validation.input")
	}

	ids := types.MapList(body.ProductIDs, types.FlexUint64.Uint64)
	if err := h.Store.ReorderProducts(c.UserContext(), ids); err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return message(c, fiber.StatusOK, "Products reordered successfully", nil)
}

// GetParameterValues handles GET /api/products/:productId/values
// @Summary Recorded parameter values, one object per record
// @Tags Products
// @Produce json
// @Param productId path int true "Product ID"
// @Success 200 {array} map[string]string
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /products/{productId}/values [get]
func (h *ProductHandler) GetParameterValues(c *fiber.Ctx) error {
	id, ok := pathID(c, "productId")
	if !ok {
		return invalidInput(c, "products.validation.id")
	}

	rows, err := h.Store.GetParameterValues(c.UserContext(), id)
	if err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return c.JSON(rows)
}

// SaveParameterValues handles POST /api/products/:productId/values
// @Summary Replace all recorded parameter values of a product
// @Tags Products
// @Accept json
// @Produce json
// @Param productId path int true "Product ID"
// @Param body body object true "{rows: [{name, <parameter>: value}]}"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /products/{productId}/values [post]
func (h *ProductHandler) SaveParameterValues(c *fiber.Ctx) error {
	id, ok := pathID(c, "productId")
	if !ok {
		return invalidInput(c, "products.validation.id")
	}

	var body struct {
		Rows []services.ParameterValueRow `json:"rows"`
	}
	if err := c.BodyParser(&body); err != nil {
		return invalidInput(c, "products.validation.input")
	}

	saved, err := h.Store.SaveParameterValues(c.UserContext(), id, body.Rows)
	if err != nil {
		return utils.StoreErrorResponse(c, err)
	}
	return utils.MutationSuccessResponse(c, fiber.StatusOK, int64(saved), nil)
}
