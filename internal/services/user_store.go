// user_store.go
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
	"strings"

	"github.com/localnerve/floorsdb/internal/database"
	"github.com/localnerve/floorsdb/internal/models"
	"github.com/localnerve/floorsdb/internal/types"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// PermissionInput is one module's capability flags; booleans, 0/1 and "true"/"false" are accepted
type PermissionInput struct {
	View   types.FlexString `json:"view"`
	Add    types.FlexString `json:"add"`
	Update types.FlexString `json:"update"`
	Delete types.FlexString `json:"delete"`
}

func (p PermissionInput) set() models.PermissionSet {
	return models.PermissionSet{
		View:   truthy(p.View),
		Add:    truthy(p.Add),
		Update: truthy(p.Update),
		Delete: truthy(p.Delete),
	}
}

// RegisterUserInput is the user registration payload
type RegisterUserInput struct {
	Username     string                     `json:"username"`
	Password     string                     `json:"password"`
	FirstName    string                     `json:"first_name"`
	LastName     string                     `json:"last_name"`
	Nickname     string                     `json:"nickname"`
	MobileNumber string                     `json:"mobile_number"`
	Designation  string                     `json:"designation"`
	JoiningDate  string                     `json:"joining_date"`
	UserType     string                     `json:"user_type"`
	Status       string                     `json:"status"`
	Permissions  map[string]PermissionInput `json:"permissions"`
}

// UserPatch lists the updatable user fields. Nil fields are left unchanged.
type UserPatch struct {
	Username     *string `json:"username"`
	Password     *string `json:"password"`
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	Nickname     *string `json:"nickname"`
	MobileNumber *string `json:"mobile_number"`
	Designation  *string `json:"designation"`
	JoiningDate  *string `json:"joining_date"`
	UserType     *string `json:"user_type"`
	Status       *string `json:"status"`
}

// UserStore owns users and user_permissions
type UserStore struct {
	db         *gorm.DB
	bcryptCost int
}

// NewUserStore creates a UserStore hashing passwords at the given bcrypt cost
func NewUserStore(db *gorm.DB, bcryptCost int) *UserStore {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserStore{db: db, bcryptCost: bcryptCost}
}

// ListUsers returns every user, newest first, with the permission matrix attached
func (s *UserStore) ListUsers(ctx context.Context) ([]models.User, error) {
	const op = "listUsers"

	var users []models.User
	if err := s.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&users).Error; err != nil {
		return nil, database.Classify(op, err)
	}
	if len(users) == 0 {
		return []models.User{}, nil
	}

	ids := make([]uint64, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}

	var perms []models.UserPermission
	if err := s.db.WithContext(ctx).Where("user_id IN ?", ids).Find(&perms).Error; err != nil {
		return nil, database.Classify(op, err)
	}

	byUser := make(map[uint64]map[string]models.PermissionSet, len(users))
	for _, p := range perms {
		if byUser[p.UserID] == nil {
			byUser[p.UserID] = map[string]models.PermissionSet{}
		}
		byUser[p.UserID][p.ModuleName] = p.Set()
	}
	for i := range users {
		users[i].Permissions = byUser[users[i].ID]
		if users[i].Permissions == nil {
			users[i].Permissions = map[string]models.PermissionSet{}
		}
	}
	return users, nil
}

// ListActiveUsers returns Active users ordered by first then last name
func (s *UserStore) ListActiveUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).
		Where("status = ?", models.UserActive).
		Order("first_name").
		Order("last_name").
		Find(&users).Error
	if err != nil {
		return nil, database.Classify("listActiveUsers", err)
	}
	return nonNil(users), nil
}

// CreateUser hashes the password and inserts the user with its permissions in one
// transaction. An existing username is a conflict.
func (s *UserStore) CreateUser(ctx context.Context, input RegisterUserInput) (uint64, error) {
	const op = "createUser"

	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" || strings.TrimSpace(input.FirstName) == "" ||
		strings.TrimSpace(input.LastName) == "" || input.JoiningDate == "" {
		return 0, types.Validation(op, "username, password, first_name, last_name and joining_date are required")
	}
	if !validDate(input.JoiningDate) {
		return 0, types.Validation(op, "joining_date must be YYYY-MM-DD")
	}

	userType := models.UserOperator
	if input.UserType != "" {
		userType = models.UserType(input.UserType)
		if !userType.Valid() {
			return 0, types.Validation(op, "invalid user_type %q", input.UserType)
		}
	}
	status := models.UserActive
	if input.Status != "" {
		status = models.UserStatus(input.Status)
		if !status.Valid() {
			return 0, types.Validation(op, "invalid status %q", input.Status)
		}
	}

	user := models.User{
		Username:     username,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Nickname:     optional(input.Nickname),
		MobileNumber: optional(input.MobileNumber),
		Designation:  optional(input.Designation),
		JoiningDate:  input.JoiningDate,
		UserType:     userType,
		Status:       status,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkUsernameFree(tx, op, username, 0); err != nil {
			return err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
		if err != nil {
			return err
		}
		user.PasswordHash = string(hash)

		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		if len(input.Permissions) == 0 {
			return nil
		}
		rows := make([]models.UserPermission, 0, len(input.Permissions))
		for _, module := range sortedKeys(input.Permissions) {
			rows = append(rows, permissionRow(user.ID, module, input.Permissions[module].set()))
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return 0, database.Classify(op, err)
	}

	return user.ID, nil
}

// UpdateUser applies the non-nil fields of the patch. A new password is re-hashed.
func (s *UserStore) UpdateUser(ctx context.Context, id uint64, patch UserPatch) error {
	const op = "updateUser"

	updates, err := s.patchColumns(op, patch)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := userExists(tx, op, id); err != nil {
			return err
		}
		if username, ok := updates["username"].(string); ok {
			if err := checkUsernameFree(tx, op, username, id); err != nil {
				return err
			}
		}
		return tx.Model(&models.User{}).Where("id = ?", id).Updates(updates).Error
	})

	return database.Classify(op, err)
}

// DeleteUser removes the user and their permissions. Deleting a missing user succeeds.
func (s *UserStore) DeleteUser(ctx context.Context, id uint64) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.UserPermission{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
	return database.Classify("deleteUser", err)
}

// GetUserPermissions returns the user's permission matrix keyed by module name
func (s *UserStore) GetUserPermissions(ctx context.Context, id uint64) (map[string]models.PermissionSet, error) {
	var perms []models.UserPermission
	if err := s.db.WithContext(ctx).Where("user_id = ?", id).Order("module_name").Find(&perms).Error; err != nil {
		return nil, database.Classify("getUserPermissions", err)
	}

	result := make(map[string]models.PermissionSet, len(perms))
	for _, p := range perms {
		result[p.ModuleName] = p.Set()
	}
	return result, nil
}

// UpdateUserPermissions upserts one row per module: updated when the (user, module)
// row exists, inserted otherwise
func (s *UserStore) UpdateUserPermissions(ctx context.Context, id uint64, permissions map[string]PermissionInput) error {
	const op = "updateUserPermissions"

	if permissions == nil {
		return types.Validation(op, "permissions object is required")
	}
	for module := range permissions {
		if strings.TrimSpace(module) == "" {
			return types.Validation(op, "module name must not be empty")
		}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := userExists(tx, op, id); err != nil {
			return err
		}

		for _, module := range sortedKeys(permissions) {
			set := permissions[module].set()

			var existing models.UserPermission
			err := tx.Where("user_id = ? AND module_name = ?", id, module).Take(&existing).Error
			switch {
			case err == nil:
				if err := tx.Model(&existing).Updates(map[string]interface{}{
					"can_view":   set.View,
					"can_add":    set.Add,
					"can_update": set.Update,
					"can_delete": set.Delete,
				}).Error; err != nil {
					return err
				}
			case isNotFound(err):
				row := permissionRow(id, module, set)
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			default:
				return err
			}
		}
		return nil
	})

	return database.Classify(op, err)
}

// patchColumns validates the patch and maps it to column updates
func (s *UserStore) patchColumns(op string, patch UserPatch) (map[string]interface{}, error) {
	updates := map[string]interface{}{}

	required := []struct {
		column string
		value  *string
	}{
		{"username", patch.Username},
		{"first_name", patch.FirstName},
		{"last_name", patch.LastName},
	}
	for _, f := range required {
		if f.value == nil {
			continue
		}
		v := strings.TrimSpace(*f.value)
		if v == "" {
			return nil, types.Validation(op, "%s must not be empty", f.column)
		}
		updates[f.column] = v
	}

	nullable := []struct {
		column string
		value  *string
	}{
		{"nickname", patch.Nickname},
		{"mobile_number", patch.MobileNumber},
		{"designation", patch.Designation},
	}
	for _, f := range nullable {
		if f.value != nil {
			updates[f.column] = optional(*f.value)
		}
	}

	if patch.JoiningDate != nil {
		if !validDate(*patch.JoiningDate) {
			return nil, types.Validation(op, "joining_date must be YYYY-MM-DD")
		}
		updates["joining_date"] = *patch.JoiningDate
	}
	if patch.UserType != nil {
		if !models.UserType(*patch.UserType).Valid() {
			return nil, types.Validation(op, "invalid user_type %q", *patch.UserType)
		}
		updates["user_type"] = *patch.UserType
	}
	if patch.Status != nil {
		if !models.UserStatus(*patch.Status).Valid() {
			return nil, types.Validation(op, "invalid status %q", *patch.Status)
		}
		updates["status"] = *patch.Status
	}
	if patch.Password != nil {
		if *patch.Password == "" {
			return nil, types.Validation(op, "password must not be empty")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), s.bcryptCost)
		if err != nil {
			return nil, types.Storage(op, err)
		}
		updates["password_hash"] = string(hash)
	}

	if len(updates) == 0 {
		return nil, types.Validation(op, "no valid fields to update")
	}
	return updates, nil
}

// CheckPassword reports whether password matches the stored hash of username
func (s *UserStore) CheckPassword(ctx context.Context, username, password string) (bool, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Select("password_hash").Where("username = ?", username).Take(&user).Error; err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, database.Classify("checkPassword", err)
	}
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil, nil
}

func checkUsernameFree(tx *gorm.DB, op, username string, exceptID uint64) error {
	var count int64
	query := tx.Model(&models.User{}).Where("username = ?", username)
	if exceptID != 0 {
		query = query.Where("id <> ?", exceptID)
	}
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return types.Conflict(op, "username already exists", map[string]string{"username": username})
	}
	return nil
}

func userExists(tx *gorm.DB, op string, id uint64) error {
	var user models.User
	if err := tx.Select("id").First(&user, id).Error; err != nil {
		if isNotFound(err) {
			return types.NotFound(op, "user %d not found", id)
		}
		return err
	}
	return nil
}

func permissionRow(userID uint64, module string, set models.PermissionSet) models.UserPermission {
	return models.UserPermission{
		UserID:     userID,
		ModuleName: module,
		CanView:    set.View,
		CanAdd:     set.Add,
		CanUpdate:  set.Update,
		CanDelete:  set.Delete,
	}
}

func optional(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
