// error.go
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

package types

import (
	"errors"
	"fmt"
)

// CustomError is returned by middleware and rendered by the server error handler
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

// ErrorKind classifies store failures
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindNotFound   ErrorKind = "not_found"
	KindConflict   ErrorKind = "conflict"
	KindStorage    ErrorKind = "storage"
)

// StoreError is the error every store operation returns to its caller.
// Validation and NotFound mean nothing was written; Conflict and Storage
// mean a write was attempted and rolled back.
type StoreError struct {
	Kind    ErrorKind
	Op      string
	Message string
	Details interface{}
	Err     error
}

func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Validation reports missing or malformed input
func Validation(op, format string, args ...interface{}) error {
	return &StoreError{Kind: KindValidation, Op: op, Message: fmt.Sprintf(format, args...)}
}

// NotFound reports a referenced entity that does not exist
func NotFound(op, format string, args ...interface{}) error {
	return &StoreError{Kind: KindNotFound, Op: op, Message: fmt.Sprintf(format, args...)}
}

// Conflict reports a uniqueness violation; details are passed through to the caller
func Conflict(op, message string, details interface{}) error {
	return &StoreError{Kind: KindConflict, Op: op, Message: message, Details: details}
}

// Storage wraps an underlying query or transaction failure
func Storage(op string, err error) error {
	return &StoreError{Kind: KindStorage, Op: op, Message: "storage failure", Err: err}
}

// AsStoreError unwraps err into a *StoreError
func AsStoreError(err error) (*StoreError, bool) {
	var se *StoreError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// KindOf returns the kind of err, storage for anything unclassified
func KindOf(err error) ErrorKind {
	if se, ok := AsStoreError(err); ok {
		return se.Kind
	}
	return KindStorage
}

// IsKind reports whether err is a StoreError of the given kind
func IsKind(err error, kind ErrorKind) bool {
	se, ok := AsStoreError(err)
	return ok && se.Kind == kind
}
