package repository

import (
	"errors"

	"gorm.io/gorm"
)

// translateGormError maps GORM errors onto the repository sentinels.
// Duplicate key translation relies on gorm.Config.TranslateError being enabled.
func translateGormError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateKey
	default:
		return err
	}
}
