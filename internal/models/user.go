// user.go
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

package models

import "time"

// UserType is the role of a user on the floor
type UserType string

const (
	UserOperator   UserType = "Operator"
	UserSupervisor UserType = "Supervisor"
	UserAdmin      UserType = "Admin"
)

// Valid reports whether t is a known user type
func (t UserType) Valid() bool {
	switch t {
	case UserOperator, UserSupervisor, UserAdmin:
		return true
	}
	return false
}

// UserStatus is the account state of a user
type UserStatus string

const (
	UserActive   UserStatus = "Active"
	UserInactive UserStatus = "Inactive"
	UserLocked   UserStatus = "Locked"
)

// Valid reports whether s is a known user status
func (s UserStatus) Valid() bool {
	switch s {
	case UserActive, UserInactive, UserLocked:
		return true
	}
	return false
}

// User is a worker or staff account
type User struct {
	ID           uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string     `gorm:"size:255;not null;uniqueIndex" json:"username"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	FirstName    string     `gorm:"size:255;not null" json:"first_name"`
	LastName     string     `gorm:"size:255;not null" json:"last_name"`
	Nickname     *string    `gorm:"size:255" json:"nickname"`
	MobileNumber *string    `gorm:"size:32" json:"mobile_number"`
	Designation  *string    `gorm:"size:255" json:"designation"`
	JoiningDate  string     `gorm:"type:varchar(10);not null" json:"joining_date"`
	UserType     UserType   `gorm:"size:16;not null" json:"user_type"`
	Status       UserStatus `gorm:"size:16;not null;index" json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	Permissions map[string]PermissionSet `gorm:"-" json:"permissions,omitempty"`
}

// PermissionSet is the capability flags of one module
type PermissionSet struct {
	View   bool `json:"view"`
	Add    bool `json:"add"`
	Update bool `json:"update"`
	Delete bool `json:"delete"`
}

// UserPermission is one row of the permission matrix, unique per (user, module)
type UserPermission struct {
	ID         uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint64 `gorm:"not null;uniqueIndex:idx_user_module" json:"user_id"`
	ModuleName string `gorm:"size:128;not null;uniqueIndex:idx_user_module" json:"module_name"`
	CanView    bool   `gorm:"not null" json:"can_view"`
	CanAdd     bool   `gorm:"not null" json:"can_add"`
	CanUpdate  bool   `gorm:"not null" json:"can_update"`
	CanDelete  bool   `gorm:"not null" json:"can_delete"`

	User *User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// Set returns the row's flags
func (p UserPermission) Set() PermissionSet {
	return PermissionSet{View: p.CanView, Add: p.CanAdd, Update: p.CanUpdate, Delete: p.CanDelete}
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}

// TableName overrides the table name for UserPermission
func (UserPermission) TableName() string {
	return "user_permissions"
}
