package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Domain error taxonomy. Handlers map each kind to one fixed HTTP status and
// never echo raw storage errors to clients.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("already exists")
	ErrValidation = errors.New("invalid input")
)

// translate maps a storage error onto the domain taxonomy. Anything it does
// not recognize passes through and is treated as internal by the caller.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: referenced row does not exist", ErrValidation)
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return fmt.Errorf("%w: value outside allowed set", ErrValidation)
	default:
		return err
	}
}
