package models

import (
	"errors"
	"fmt"
)

var (
	ErrNoRecord        = errors.New("models: no matching record found")
	ErrUserNotFound    = errors.New("models: user not found")
	ErrDuplicateEmail  = errors.New("models: duplicate email")
	ErrInvoiceNotFound = errors.New("invoice not found")
)

// ErrDeleteFailed is the message the delete action currently fails with
// before reaching the store. Kept verbatim, typo included.
var ErrDeleteFailed = errors.New("Faild to Delete")

// Authentication failure categories raised by the sign-in flow.
const (
	AuthCategoryCredentials = "CredentialsSignin"
	AuthCategoryDisabled    = "AccountDisabled"
	AuthCategorySession     = "SessionRejected"
)

// AuthError is a categorized authentication failure. Callers switch on
// Category; anything not wrapped in an AuthError is an infrastructure
// error and propagates unchanged.
type AuthError struct {
	Category string
	Err      error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("auth: %s: %v", e.Category, e.Err)
	}
	return "auth: " + e.Category
}

func (e *AuthError) Unwrap() error {
	return e.Err
}
