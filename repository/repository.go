// Package repository is the data-access layer for payments and users.
package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound no row with the requested key
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate unique key already taken
	ErrDuplicate = errors.New("duplicate record")
)

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}
