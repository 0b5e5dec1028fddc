// station_store.go
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
	"strconv"
	"strings"

	"github.com/localnerve/floorsdb/internal/database"
	"github.com/localnerve/floorsdb/internal/models"
	"github.com/localnerve/floorsdb/internal/types"
	"gorm.io/gorm"
)

// StationInput is the create/update payload for a station. The product is given
// either by product_id or by product_name.
type StationInput struct {
	ProductID       types.FlexUint64  `json:"product_id"`
	ProductName     string            `json:"product_name"`
	StationNumber   types.FlexFloat64 `json:"station_number"`
	StationName     string            `json:"station_name"`
	CycleTime       types.FlexFloat64 `json:"cycle_time"`
	DailyCount      types.FlexFloat64 `json:"daily_count"`
	ProductsPerHour types.FlexFloat64 `json:"products_per_hour"`
	ReportType      string            `json:"report_type"`
}

// ProductRef returns the reference used to resolve the station's product
func (in StationInput) ProductRef() string {
	return ProductRef(in.ProductID, in.ProductName)
}

// StationOrderEntry is one element of a reorder request, already in the desired order
type StationOrderEntry struct {
	ID types.FlexUint64 `json:"id"`
}

// ParameterDefinitionInput creates a reusable station parameter
type ParameterDefinitionInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Unit        string `json:"unit"`
}

// ProductRef picks the id when one is given, else the name
func ProductRef(id types.FlexUint64, name string) string {
	if id != 0 {
		return strconv.FormatUint(id.Uint64(), 10)
	}
	return strings.TrimSpace(name)
}

// StationStore owns stations, station parameters, their assignments and machines
type StationStore struct {
	db *gorm.DB
}

// NewStationStore creates a StationStore on the given handle
func NewStationStore(db *gorm.DB) *StationStore {
	return &StationStore{db: db}
}

// CreateStation inserts a station and returns its id. A missing station_number
// places the station after the product's last one.
func (s *StationStore) CreateStation(ctx context.Context, input StationInput) (uint64, error) {
	const op = "createStation"

	station, err := stationFromInput(op, input)
	if err != nil {
		return 0, err
	}
	if input.ProductRef() == "" {
		return 0, types.Validation(op, "product_id or product_name is required")
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		product, err := resolveProduct(tx, op, input.ProductRef())
		if err != nil {
			return err
		}
		station.ProductID = product.ID

		if !input.StationNumber.Set {
			var last int
			if err := tx.Model(&models.Station{}).
				Where("product_id = ?", product.ID).
				Select("COALESCE(MAX(station_number), 0)").
				Scan(&last).Error; err != nil {
				return err
			}
			station.StationNumber = last + 1
		}

		return tx.Create(&station).Error
	})
	if err != nil {
		return 0, database.Classify(op, err)
	}

	return station.ID, nil
}

// ListStations returns every station grouped by product, then by station_number
func (s *StationStore) ListStations(ctx context.Context) ([]models.Station, error) {
	var stations []models.Station
	err := s.stationQuery(ctx).
		Order("products.display_order").
		Order("products.name").
		Order("stations.station_number").
		Order("stations.id").
		Find(&stations).Error
	if err != nil {
		return nil, database.Classify("listStations", err)
	}
	return nonNil(stations), nil
}

// ListStationsByProduct returns a product's stations by station_number with their assigned parameters
func (s *StationStore) ListStationsByProduct(ctx context.Context, productName string) ([]models.Station, error) {
	const op = "listStationsByProduct"

	product, err := productByName(s.db.WithContext(ctx), op, productName)
	if err != nil {
		return nil, err
	}

	var stations []models.Station
	err = s.stationQuery(ctx).
		Where("stations.product_id = ?", product.ID).
		Order("stations.station_number").
		Order("stations.id").
		Find(&stations).Error
	if err != nil {
		return nil, database.Classify(op, err)
	}
	if len(stations) == 0 {
		return []models.Station{}, nil
	}

	ids := make([]uint64, len(stations))
	for i, st := range stations {
		ids[i] = st.ID
	}

	var assigned []assignedParameter
	err = s.db.WithContext(ctx).
		Table("station_parameter_assignments").
		Select("station_parameter_assignments.station_id, station_parameters.id, station_parameters.name, station_parameters.description, station_parameters.unit").
		Joins("JOIN station_parameters ON station_parameters.id = station_parameter_assignments.parameter_id").
		Where("station_parameter_assignments.station_id IN ?", ids).
		Order("station_parameter_assignments.id").
		Scan(&assigned).Error
	if err != nil {
		return nil, database.Classify(op, err)
	}

	byStation := make(map[uint64][]models.StationParameter)
	for _, a := range assigned {
		byStation[a.StationID] = append(byStation[a.StationID], models.StationParameter{
			ID:          a.ID,
			Name:        a.Name,
			Description: a.Description,
			Unit:        a.Unit,
		})
	}
	for i := range stations {
		stations[i].Parameters = nonNil(byStation[stations[i].ID])
	}

	return stations, nil
}

// UpdateStation overwrites every field of the station
func (s *StationStore) UpdateStation(ctx context.Context, id uint64, input StationInput) error {
	const op = "updateStation"

	station, err := stationFromInput(op, input)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.Station
		if err := tx.First(&current, id).Error; err != nil {
			if isNotFound(err) {
				return types.NotFound(op, "station %d not found", id)
			}
			return err
		}

		productID := current.ProductID
		if ref := input.ProductRef(); ref != "" {
			product, err := resolveProduct(tx, op, ref)
			if err != nil {
				return err
			}
			productID = product.ID
		}

		return tx.Model(&models.Station{}).Where("id = ?", id).Updates(map[string]interface{}{
			"product_id":        productID,
			"station_number":    station.StationNumber,
			"station_name":      station.StationName,
			"cycle_time":        station.CycleTime,
			"daily_count":       station.DailyCount,
			"products_per_hour": station.ProductsPerHour,
			"report_type":       station.ReportType,
		}).Error
	})

	return database.Classify(op, err)
}

// UpdateStationOrder sets station_number to position+1 for each entry, in one transaction
func (s *StationStore) UpdateStationOrder(ctx context.Context, entries []StationOrderEntry) error {
	const op = "updateStationOrder"

	for i, e := range entries {
		if e.ID == 0 {
			return types.Validation(op, "entry %d: id is required", i+1)
		}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, e := range entries {
			if err := tx.Model(&models.Station{}).
				Where("id = ?", e.ID.Uint64()).
				Update("station_number", i+1).Error; err != nil {
				return err
			}
		}
		return nil
	})

	return database.Classify(op, err)
}

// DeleteStation removes a station and its parameter assignments
func (s *StationStore) DeleteStation(ctx context.Context, id uint64) error {
	const op = "deleteStation"

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := stationExists(tx, op, id); err != nil {
			return err
		}
		if err := tx.Where("station_id = ?", id).Delete(&models.StationParameterAssignment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Station{}, id).Error
	})

	return database.Classify(op, err)
}

// AddParameterToStation assigns a parameter definition to a station.
// Assigning an existing pair is a conflict.
func (s *StationStore) AddParameterToStation(ctx context.Context, stationID, parameterID uint64) error {
	const op = "addParameterToStation"

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := stationExists(tx, op, stationID); err != nil {
			return err
		}

		var param models.StationParameter
		if err := tx.Select("id").First(&param, parameterID).Error; err != nil {
			if isNotFound(err) {
				return types.NotFound(op, "parameter %d not found", parameterID)
			}
			return err
		}

		var count int64
		if err := tx.Model(&models.StationParameterAssignment{}).
			Where("station_id = ? AND parameter_id = ?", stationID, parameterID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return types.Conflict(op, "parameter already assigned to station", map[string]uint64{
				"station_id":   stationID,
				"parameter_id": parameterID,
			})
		}

		return tx.Create(&models.StationParameterAssignment{StationID: stationID, ParameterID: parameterID}).Error
	})

	return database.Classify(op, err)
}

// RemoveParameterFromStation deletes the assignment if present
func (s *StationStore) RemoveParameterFromStation(ctx context.Context, stationID, parameterID uint64) error {
	err := s.db.WithContext(ctx).
		Where("station_id = ? AND parameter_id = ?", stationID, parameterID).
		Delete(&models.StationParameterAssignment{}).Error
	return database.Classify("removeParameterFromStation", err)
}

// ListStationParameters returns the parameter definitions assigned to a station
func (s *StationStore) ListStationParameters(ctx context.Context, stationID uint64) ([]models.StationParameter, error) {
	const op = "listStationParameters"

	db := s.db.WithContext(ctx)
	if err := stationExists(db, op, stationID); err != nil {
		return nil, database.Classify(op, err)
	}

	var params []models.StationParameter
	err := db.Model(&models.StationParameter{}).
		Select("station_parameters.*").
		Joins("JOIN station_parameter_assignments ON station_parameter_assignments.parameter_id = station_parameters.id").
		Where("station_parameter_assignments.station_id = ?", stationID).
		Order("station_parameter_assignments.id").
		Find(&params).Error
	if err != nil {
		return nil, database.Classify(op, err)
	}
	return nonNil(params), nil
}

// ListAllParameterDefinitions returns every station parameter definition ordered by name
func (s *StationStore) ListAllParameterDefinitions(ctx context.Context) ([]models.StationParameter, error) {
	var params []models.StationParameter
	if err := s.db.WithContext(ctx).Order("name").Find(&params).Error; err != nil {
		return nil, database.Classify("listAllParameterDefinitions", err)
	}
	return nonNil(params), nil
}

// CreateParameterDefinition adds a reusable station parameter and returns its id
func (s *StationStore) CreateParameterDefinition(ctx context.Context, input ParameterDefinitionInput) (uint64, error) {
	const op = "createParameterDefinition"

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return 0, types.Validation(op, "name is required")
	}

	param := models.StationParameter{Name: name, Description: input.Description, Unit: input.Unit}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.StationParameter{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return types.Conflict(op, "parameter name already exists", map[string]string{"name": name})
		}
		return tx.Create(&param).Error
	})
	if err != nil {
		return 0, database.Classify(op, err)
	}

	return param.ID, nil
}

// assignedParameter is a parameter definition tagged with the station it is assigned to
type assignedParameter struct {
	StationID   uint64
	ID          uint64
	Name        string
	Description string
	Unit        string
}

func (s *StationStore) stationQuery(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Model(&models.Station{}).
		Select("stations.*, products.name AS product_name").
		Joins("JOIN products ON products.id = stations.product_id")
}

func stationFromInput(op string, input StationInput) (models.Station, error) {
	name := strings.TrimSpace(input.StationName)
	if name == "" {
		return models.Station{}, types.Validation(op, "station_name is required")
	}

	reportType := models.ReportPending
	if input.ReportType != "" {
		reportType = models.ReportType(input.ReportType)
		if !reportType.Valid() {
			return models.Station{}, types.Validation(op, "invalid report_type %q", input.ReportType)
		}
	}

	return models.Station{
		StationNumber:   int(input.StationNumber.Or(0)),
		StationName:     name,
		CycleTime:       input.CycleTime.Or(0),
		DailyCount:      int(input.DailyCount.Or(0)),
		ProductsPerHour: input.ProductsPerHour.Or(0),
		ReportType:      reportType,
	}, nil
}

func stationExists(tx *gorm.DB, op string, id uint64) error {
	var station models.Station
	if err := tx.Select("id").First(&station, id).Error; err != nil {
		if isNotFound(err) {
			return types.NotFound(op, "station %d not found", id)
		}
		return err
	}
	return nil
}

func productByName(db *gorm.DB, op, name string) (*models.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, types.Validation(op, "product name is required")
	}

	var product models.Product
	if err := db.Where("name = ?", name).First(&product).Error; err != nil {
		if isNotFound(err) {
			return nil, types.NotFound(op, "product %q not found", name)
		}
		return nil, database.Classify(op, err)
	}
	return &product, nil
}
