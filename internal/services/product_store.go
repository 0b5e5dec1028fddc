// product_store.go
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
	"sort"
	"strconv"
	"strings"

	"github.com/localnerve/floorsdb/internal/database"
	"github.com/localnerve/floorsdb/internal/models"
	"github.com/localnerve/floorsdb/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ParameterInput is one parameter definition as sent by the product editor.
// Numeric fields arrive as numbers, numeric strings or "" (stored as null).
type ParameterInput struct {
	ParameterName string           `json:"parameterName"`
	Max           types.FlexString `json:"max"`
	Min           types.FlexString `json:"min"`
	Unit          string           `json:"unit"`
	Evaluation    string           `json:"evaluation"`
	SampleSize    types.FlexString `json:"sampleSize"`
	Compulsory    types.FlexString `json:"compulsory"`
	Status        string           `json:"status"`
}

// ProductInput is the payload of create and update product
type ProductInput struct {
	Name       string           `json:"name"`
	Parameters []ParameterInput `json:"parameters"`
}

// ProductWithParameters is a product and its parameter definitions
type ProductWithParameters struct {
	models.Product
	Parameters []models.Parameter `json:"parameters"`
}

// ProductDetails is a product with its parameter definitions and recorded values
type ProductDetails struct {
	models.Product
	Parameters      []models.Parameter      `json:"parameters"`
	ParameterValues []models.ParameterValue `json:"parameterValues"`
}

// ProductName is the id/name pair used by product pickers
type ProductName struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// ParameterValueRow is one record of the data-entry grid: "name" is the record
// name, every other key is a parameter name.
type ParameterValueRow map[string]types.FlexString

const recordNameKey = "name"

// ProductStore owns products, parameters and parameter_values
type ProductStore struct {
	db *gorm.DB
}

// NewProductStore creates a ProductStore on the given handle
func NewProductStore(db *gorm.DB) *ProductStore {
	return &ProductStore{db: db}
}

// CreateProduct inserts a product and its parameters in one transaction and returns the new id
func (s *ProductStore) CreateProduct(ctx context.Context, input ProductInput) (uint64, error) {
	const op = "createProduct"

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return 0, types.Validation(op, "product name is required")
	}
	params, err := buildParameters(op, input.Parameters)
	if err != nil {
		return 0, err
	}

	product := models.Product{Name: name}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkProductNameFree(tx, op, name, 0); err != nil {
			return err
		}
		if err := tx.Create(&product).Error; err != nil {
			return err
		}
		return insertParameters(tx, product.ID, params)
	})
	if err != nil {
		return 0, database.Classify(op, err)
	}

	return product.ID, nil
}

// UpdateProduct renames the product and replaces its full parameter set
func (s *ProductStore) UpdateProduct(ctx context.Context, productID uint64, input ProductInput) error {
	const op = "updateProduct"

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return types.Validation(op, "product name is required")
	}
	params, err := buildParameters(op, input.Parameters)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := productExists(tx, op, productID); err != nil {
			return err
		}
		if err := checkProductNameFree(tx, op, name, productID); err != nil {
			return err
		}
		if err := tx.Model(&models.Product{}).Where("id = ?", productID).Update("name", name).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", productID).Delete(&models.Parameter{}).Error; err != nil {
			return err
		}
		return insertParameters(tx, productID, params)
	})

	return database.Classify(op, err)
}

// DeleteProduct removes a product with its parameters and parameter values
func (s *ProductStore) DeleteProduct(ctx context.Context, productID uint64) error {
	const op = "deleteProduct"

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := productExists(tx, op, productID); err != nil {
			return err
		}
		// Owned rows go explicitly so drivers without enforced cascades stay consistent
		if err := tx.Where("product_id = ?", productID).Delete(&models.ParameterValue{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", productID).Delete(&models.Parameter{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Product{}, productID).Error
	})

	return database.Classify(op, err)
}

// ReorderProducts sets display_order to each id's position. Unknown ids are ignored.
func (s *ProductStore) ReorderProducts(ctx context.Context, orderedIDs []uint64) error {
	const op = "reorderProducts"

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, id := range orderedIDs {
			if err := tx.Model(&models.Product{}).Where("id = ?", id).Update("display_order", i).Error; err != nil {
				return err
			}
		}
		return nil
	})

	return database.Classify(op, err)
}

// ListProducts returns products ordered by display_order, optionally filtered by a
// case-insensitive substring of the name
func (s *ProductStore) ListProducts(ctx context.Context, search string) ([]models.Product, error) {
	var products []models.Product
	if err := s.productQuery(ctx, search).Find(&products).Error; err != nil {
		return nil, database.Classify("listProducts", err)
	}
	return nonNil(products), nil
}

// ListProductsWithDetails returns the product list with parameters and values attached
func (s *ProductStore) ListProductsWithDetails(ctx context.Context, search string) ([]ProductDetails, error) {
	const op = "listProductsWithDetails"

	var products []models.Product
	if err := s.productQuery(ctx, search).Find(&products).Error; err != nil {
		return nil, database.Classify(op, err)
	}

	result := make([]ProductDetails, len(products))
	if len(products) == 0 {
		return result, nil
	}

	ids := make([]uint64, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}

	var params []models.Parameter
	if err := s.db.WithContext(ctx).Where("product_id IN ?", ids).Order("id").Find(&params).Error; err != nil {
		return nil, database.Classify(op, err)
	}
	var values []models.ParameterValue
	if err := s.db.WithContext(ctx).Where("product_id IN ?", ids).Order("id").Find(&values).Error; err != nil {
		return nil, database.Classify(op, err)
	}

	paramsByProduct := make(map[uint64][]models.Parameter)
	for _, p := range params {
		paramsByProduct[p.ProductID] = append(paramsByProduct[p.ProductID], p)
	}
	valuesByProduct := make(map[uint64][]models.ParameterValue)
	for _, v := range values {
		valuesByProduct[v.ProductID] = append(valuesByProduct[v.ProductID], v)
	}

	for i, p := range products {
		result[i] = ProductDetails{
			Product:         p,
			Parameters:      nonNil(paramsByProduct[p.ID]),
			ParameterValues: nonNil(valuesByProduct[p.ID]),
		}
	}
	return result, nil
}

// GetProductWithParameters returns a product and its parameter definitions
func (s *ProductStore) GetProductWithParameters(ctx context.Context, productID uint64) (*ProductWithParameters, error) {
	const op = "getProductWithParameters"

	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, productID).Error; err != nil {
		if isNotFound(err) {
			return nil, types.NotFound(op, "product %d not found", productID)
		}
		return nil, database.Classify(op, err)
	}

	var params []models.Parameter
	if err := s.db.WithContext(ctx).Where("product_id = ?", productID).Order("id").Find(&params).Error; err != nil {
		return nil, database.Classify(op, err)
	}

	return &ProductWithParameters{Product: product, Parameters: nonNil(params)}, nil
}

// ListProductNames returns id/name pairs ordered by name
func (s *ProductStore) ListProductNames(ctx context.Context) ([]ProductName, error) {
	names := []ProductName{}
	err := s.db.WithContext(ctx).Model(&models.Product{}).
		Select("id", "name").
		Order("name").
		Scan(&names).Error
	if err != nil {
		return nil, database.Classify("listProductNames", err)
	}
	return names, nil
}

// ResolveProduct finds a product by numeric id, falling back to an exact name match
func (s *ProductStore) ResolveProduct(ctx context.Context, ref string) (*models.Product, error) {
	return resolveProduct(s.db.WithContext(ctx), "resolveProduct", ref)
}

// SaveParameterValues replaces every stored value of the product with the given rows.
// Empty and null values are not stored.
func (s *ProductStore) SaveParameterValues(ctx context.Context, productID uint64, rows []ParameterValueRow) (int, error) {
	const op = "saveParameterValues"

	values, err := flattenValueRows(op, productID, rows)
	if err != nil {
		return 0, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := productExists(tx, op, productID); err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", productID).Delete(&models.ParameterValue{}).Error; err != nil {
			return err
		}
		if len(values) == 0 {
			return nil
		}
		return tx.Create(&values).Error
	})
	if err != nil {
		return 0, database.Classify(op, err)
	}

	return len(values), nil
}

// GetParameterValues returns the stored values pivoted into one object per record,
// records in first-stored order
func (s *ProductStore) GetParameterValues(ctx context.Context, productID uint64) ([]map[string]string, error) {
	var values []models.ParameterValue
	err := s.db.WithContext(ctx).
		Session(&gorm.Session{Logger: s.db.Logger.LogMode(logger.Silent)}).
		Where("product_id = ?", productID).
		Order("id").
		Find(&values).Error
	if err != nil {
		return nil, database.Classify("getParameterValues", err)
	}

	records := []map[string]string{}
	index := make(map[string]int)
	for _, v := range values {
		i, ok := index[v.RecordName]
		if !ok {
			i = len(records)
			index[v.RecordName] = i
			records = append(records, map[string]string{recordNameKey: v.RecordName})
		}
		records[i][v.ParameterName] = v.Value
	}
	return records, nil
}

func (s *ProductStore) productQuery(ctx context.Context, search string) *gorm.DB {
	query := s.db.WithContext(ctx).Model(&models.Product{})
	if term := strings.TrimSpace(search); term != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(term)+"%")
	}
	return query.Order("display_order").Order("id")
}

// buildParameters validates editor input and converts it to rows without a product id
func buildParameters(op string, inputs []ParameterInput) ([]models.Parameter, error) {
	params := make([]models.Parameter, 0, len(inputs))
	for i, in := range inputs {
		name := strings.TrimSpace(in.ParameterName)
		if name == "" {
			return nil, types.Validation(op, "parameter %d: parameterName is required", i+1)
		}

		status := models.ParameterPending
		if in.Status != "" {
			status = models.ParameterStatus(in.Status)
			if !status.Valid() {
				return nil, types.Validation(op, "parameter %q: invalid status %q", name, in.Status)
			}
		}

		maxValue, err := parseNullDecimal(in.Max)
		if err != nil {
			return nil, types.Validation(op, "parameter %q: max must be a number", name)
		}
		minValue, err := parseNullDecimal(in.Min)
		if err != nil {
			return nil, types.Validation(op, "parameter %q: min must be a number", name)
		}

		var sampleSize *int
		if v := strings.TrimSpace(in.SampleSize.Value); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, types.Validation(op, "parameter %q: sampleSize must be an integer", name)
			}
			sampleSize = &n
		}

		params = append(params, models.Parameter{
			ParameterName: name,
			MaxValue:      maxValue,
			MinValue:      minValue,
			Unit:          in.Unit,
			Evaluation:    in.Evaluation,
			SampleSize:    sampleSize,
			Compulsory:    truthy(in.Compulsory),
			Status:        status,
		})
	}
	return params, nil
}

func insertParameters(tx *gorm.DB, productID uint64, params []models.Parameter) error {
	if len(params) == 0 {
		return nil
	}
	for i := range params {
		params[i].ID = 0
		params[i].ProductID = productID
	}
	return tx.Create(&params).Error
}

// flattenValueRows turns grid rows into value rows. A repeated record/parameter
// pair keeps the last value.
func flattenValueRows(op string, productID uint64, rows []ParameterValueRow) ([]models.ParameterValue, error) {
	var values []models.ParameterValue
	seen := make(map[[2]string]int)

	for i, row := range rows {
		record := strings.TrimSpace(row[recordNameKey].Value)
		if record == "" {
			return nil, types.Validation(op, "row %d: name is required", i+1)
		}

		keys := make([]string, 0, len(row))
		for k := range row {
			if k != recordNameKey {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)

		for _, k := range keys {
			v := row[k].Value
			if v == "" {
				continue
			}
			key := [2]string{record, k}
			if at, ok := seen[key]; ok {
				values[at].Value = v
				continue
			}
			seen[key] = len(values)
			values = append(values, models.ParameterValue{
				ProductID:     productID,
				RecordName:    record,
				ParameterName: k,
				Value:         v,
			})
		}
	}
	return values, nil
}

func parseNullDecimal(f types.FlexString) (decimal.NullDecimal, error) {
	v := strings.TrimSpace(f.Value)
	if v == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(d), nil
}

func truthy(f types.FlexString) bool {
	switch strings.ToLower(strings.TrimSpace(f.Value)) {
	case "", "0", "false":
		return false
	}
	return true
}

func productExists(tx *gorm.DB, op string, productID uint64) error {
	var product models.Product
	if err := tx.Select("id").First(&product, productID).Error; err != nil {
		if isNotFound(err) {
			return types.NotFound(op, "product %d not found", productID)
		}
		return err
	}
	return nil
}

func checkProductNameFree(tx *gorm.DB, op, name string, exceptID uint64) error {
	var count int64
	query := tx.Model(&models.Product{}).Where("name = ?", name)
	if exceptID != 0 {
		query = query.Where("id <> ?", exceptID)
	}
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return types.Conflict(op, "product name already exists", map[string]interface{}{"name": name})
	}
	return nil
}

// resolveProduct looks a product up by id when ref is numeric, else by name
func resolveProduct(db *gorm.DB, op, ref string) (*models.Product, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, types.Validation(op, "product is required")
	}

	var product models.Product
	if id, err := strconv.ParseUint(ref, 10, 64); err == nil {
		err := db.First(&product, id).Error
		if err == nil {
			return &product, nil
		}
		if !isNotFound(err) {
			return nil, database.Classify(op, err)
		}
	}

	if err := db.Where("name = ?", ref).First(&product).Error; err != nil {
		if isNotFound(err) {
			return nil, types.NotFound(op, "product %q not found", ref)
		}
		return nil, database.Classify(op, err)
	}
	return &product, nil
}
