// user_store_test.go
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

package services_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/localnerve/floorsdb/internal/models"
	"github.com/localnerve/floorsdb/internal/services"
	"github.com/localnerve/floorsdb/internal/testutil"
	"github.com/localnerve/floorsdb/internal/types"
	"golang.org/x/crypto/bcrypt"
)

const registration = `{
	"username": "jdoe",
	"password": "s3cret",
	"first_name": "Jane",
	"last_name": "Doe",
	"mobile_number": "555-0100",
	"joining_date": "2024-01-02",
	"permissions": {
		"productConfiguration": {"view": true, "add": 1, "update": false, "delete": 0},
		"reports": {"view": true}
	}
}`

func decodeRegistration(t *testing.T, payload string) services.RegisterUserInput {
	t.Helper()
	var input services.RegisterUserInput
	if err := json.Unmarshal([]byte(payload), &input); err != nil {
		t.Fatalf("Failed to decode registration: %v", err)
	}
	return input
}

func strPtr(s string) *string {
	return &s
}

func TestCreateUserHashesAndStoresPermissions(t *testing.T) {
	db := testutil.NewTestDB(t)
	store := services.NewUserStore(db, bcrypt.MinCost)
	ctx := context.Background()

	id, err := store.CreateUser(ctx, decodeRegistration(t, registration))
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		t.Fatalf("Failed to load user: %v", err)
	}
	if user.PasswordHash == "s3cret" || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret")) != nil {
		t.Error("Expected a bcrypt hash of the password")
	}
	if user.UserType != models.UserOperator || user.Status != models.UserActive {
		t.Errorf("Expected Operator/Active defaults, got %s/%s", user.UserType, user.Status)
	}
	if user.Nickname != nil {
		t.Errorf("Expected empty nickname to be null, got %q", *user.Nickname)
	}

	perms, err := store.GetUserPermissions(ctx, id)
	if err != nil {
		t.Fatalf("GetUserPermissions failed: %v", err)
	}
	want := models.PermissionSet{View: true, Add: true}
	if perms["productConfiguration"] != want {
		t.Errorf("Expected %+v, got %+v", want, perms["productConfiguration"])
	}
	if !perms["reports"].View || perms["reports"].Delete {
		t.Errorf("Unexpected reports permissions: %+v", perms["reports"])
	}
}

func TestCreateUserDuplicateUsernameRollsBack(t *testing.T) {
	db := testutil.NewTestDB(t)
	store := services.NewUserStore(db, bcrypt.MinCost)
	ctx := context.Background()

	if _, err := store.CreateUser(ctx, decodeRegistration(t, registration)); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	users := testutil.Count(t, db, &models.User{}, "")
	perms := testutil.Count(t, db, &models.UserPermission{}, "")

	_, err := store.CreateUser(ctx, decodeRegistration(t, registration))
	if !types.IsKind(err, types.KindConflict) {
		t.Fatalf("Expected conflict, got %v", err)
	}
	if n := testutil.Count(t, db, &models.User{}, ""); n != users {
		t.Errorf("Expected %d users, got %d", users, n)
	}
	if n := testutil.Count(t, db, &models.UserPermission{}, ""); n != perms {
		t.Errorf("Expected %d permission rows, got %d", perms, n)
	}
}

func TestCreateUserValidation(t *testing.T) {
	db := testutil.NewTestDB(t)
	store := services.NewUserStore(db, bcrypt.MinCost)
	ctx := context.Background()

	payloads := []string{
		`{"password": "p", "first_name": "A", "last_name": "B", "joining_date": "2024-01-01"}`,
		`{"username": "a", "first_name": "A", "last_name": "B", "joining_date": "2024-01-01"}`,
		`{"username": "a", "password": "p", "last_name": "B", "joining_date": "2024-01-01"}`,
		`{"username": "a", "password": "p", "first_name": "A", "joining_date": "2024-01-01"}`,
		`{"username": "a", "password": "p", "first_name": "A", "last_name": "B"}`,
		`{"username": "a", "password": "p", "first_name": "A", "last_name": "B", "joining_date": "2024-01-01", "user_type": "Boss"}`,
	}
	for _, p := range payloads {
		if _, err := store.CreateUser(ctx, decodeRegistration(t, p)); !types.IsKind(err, types.KindValidation) {
			t.Errorf("Expected validation error for %s, got %v", p, err)
		}
	}
}

func TestUpdateUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	store := services.NewUserStore(db, bcrypt.MinCost)
	ctx := context.Background()

	id, err := store.CreateUser(ctx, decodeRegistration(t, registration))
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	other, err := store.CreateUser(ctx, decodeRegistration(t, `{"username": "bob", "password": "p", "first_name": "Bob", "last_name": "Roe", "joining_date": "2024-01-03"}`))
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	patch := services.UserPatch{
		Designation: strPtr("Lead"),
		UserType:    strPtr("Supervisor"),
		Password:    strPtr("n3w"),
		Nickname:    strPtr(""),
	}
	if err := store.UpdateUser(ctx, id, patch); err != nil {
		t.Fatalf("UpdateUser failed: %v", err)
	}

	var user models.User
	db.First(&user, id)
	if user.Designation == nil || *user.Designation != "Lead" || user.UserType != models.UserSupervisor {
		t.Errorf("Expected updated designation and type, got %+v", user)
	}
	if user.FirstName != "Jane" {
		t.Errorf("Expected untouched first name, got %s", user.FirstName)
	}
	ok, err := store.CheckPassword(ctx, "jdoe", "n3w")
	if err != nil || !ok {
		t.Errorf("Expected new password to verify, got %v (%v)", ok, err)
	}

	if err := store.UpdateUser(ctx, id, services.UserPatch{}); !types.IsKind(err, types.KindValidation) {
		t.Errorf("Expected validation error for empty patch, got %v", err)
	}
	if err := store.UpdateUser(ctx, 999, services.UserPatch{FirstName: strPtr("X")}); !types.IsKind(err, types.KindNotFound) {
		t.Errorf("Expected not found, got %v", err)
	}
	if err := store.UpdateUser(ctx, other, services.UserPatch{Username: strPtr("jdoe")}); !types.IsKind(err, types.KindConflict) {
		t.Errorf("Expected conflict on username clash, got %v", err)
	}
	if err := store.UpdateUser(ctx, id, services.UserPatch{Status: strPtr("Gone")}); !types.IsKind(err, types.KindValidation) {
		t.Errorf("Expected validation error for bad status, got %v", err)
	}
}

func TestListUsersAttachesPermissions(t *testing.T) {
	db := testutil.NewTestDB(t)
	store := services.NewUserStore(db, bcrypt.MinCost)
	ctx := context.Background()

	jane, err := store.CreateUser(ctx, decodeRegistration(t, registration))
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if _, err := store.CreateUser(ctx, decodeRegistration(t, `{"username": "al", "password": "p", "first_name": "Al", "last_name": "Zed", "joining_date": "2024-01-03", "status": "Inactive"}`)); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	users, err := store.ListUsers(ctx)
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("Expected 2 users, got %d", len(users))
	}
	for _, u := range users {
		if u.Permissions == nil {
			t.Errorf("Expected a permissions object for %s", u.Username)
		}
		if u.ID == jane && len(u.Permissions) != 2 {
			t.Errorf("Expected 2 modules for jdoe, got %d", len(u.Permissions))
		}
	}

	body, _ := json.Marshal(users[0])
	var rendered map[string]interface{}
	json.Unmarshal(body, &rendered)
	if _, ok := rendered["password_hash"]; ok {
		t.Error("Expected password hash to be hidden")
	}

	active, err := store.ListActiveUsers(ctx)
	if err != nil {
		t.Fatalf("ListActiveUsers failed: %v", err)
	}
	if len(active) != 1 || active[0].Username != "jdoe" {
		t.Errorf("Expected only jdoe active, got %+v", active)
	}

	if err := store.DeleteUser(ctx, jane); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}
	if n := testutil.Count(t, db, &models.UserPermission{}, "user_id = ?", jane); n != 0 {
		t.Errorf("Expected permissions removed with user, got %d", n)
	}
	if err := store.DeleteUser(ctx, jane); err != nil {
		t.Errorf("Expected repeated delete to succeed, got %v", err)
	}
}

func TestUpdateUserPermissionsUpserts(t *testing.T) {
	db := testutil.NewTestDB(t)
	store := services.NewUserStore(db, bcrypt.MinCost)
	ctx := context.Background()

	id, err := store.CreateUser(ctx, decodeRegistration(t, `{"username": "op", "password": "p", "first_name": "O", "last_name": "P", "joining_date": "2024-01-03"}`))
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	decode := func(payload string) map[string]services.PermissionInput {
		var perms map[string]services.PermissionInput
		if err := json.Unmarshal([]byte(payload), &perms); err != nil {
			t.Fatalf("Failed to decode permissions: %v", err)
		}
		return perms
	}

	if err := store.UpdateUserPermissions(ctx, id, decode(`{"productConfiguration": {"view": true, "add": false, "update": true, "delete": false}}`)); err != nil {
		t.Fatalf("UpdateUserPermissions insert failed: %v", err)
	}
	if err := store.UpdateUserPermissions(ctx, id, decode(`{"productConfiguration": {"view": false, "add": false, "update": true, "delete": false}}`)); err != nil {
		t.Fatalf("UpdateUserPermissions update failed: %v", err)
	}

	if n := testutil.Count(t, db, &models.UserPermission{}, "user_id = ? AND module_name = ?", id, "productConfiguration"); n != 1 {
		t.Errorf("Expected one permission row, got %d", n)
	}
	perms, err := store.GetUserPermissions(ctx, id)
	if err != nil {
		t.Fatalf("GetUserPermissions failed: %v", err)
	}
	if got := perms["productConfiguration"]; got.View || !got.Update {
		t.Errorf("Expected view=false update=true, got %+v", got)
	}

	if err := store.UpdateUserPermissions(ctx, 999, decode(`{"reports": {"view": true}}`)); !types.IsKind(err, types.KindNotFound) {
		t.Errorf("Expected not found, got %v", err)
	}
	if err := store.UpdateUserPermissions(ctx, id, nil); !types.IsKind(err, types.KindValidation) {
		t.Errorf("Expected validation error, got %v", err)
	}
}
