// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"github.com/pkg/errors"
)

// ErrRecordNotFound is returned when no record in a collection matches the lookup.
var ErrRecordNotFound = errors.New("record not found")
