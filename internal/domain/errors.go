// Package domain provides shared domain-level sentinel errors.
package domain

import "errors"

// ErrNotFound indicates the requested entity does not exist.
var ErrNotFound = errors.New("not found")

// ErrAlreadyWon indicates the deal has already transitioned to won.
var ErrAlreadyWon = errors.New("deal already won")

// ErrValidation indicates the request failed validation.
var ErrValidation = errors.New("validation failed")
