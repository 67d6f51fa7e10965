package repositories

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	domainerrors "mise.backend/internal/domain/errors"
)

// uniqueViolation is the Postgres SQLSTATE for a unique constraint violation.
const uniqueViolation = pq.ErrorCode("23505")

// translateError maps driver errors onto domain errors.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainerrors.ErrNotFound
	}
	if isUniqueViolation(err) {
		return domainerrors.ErrAlreadyExists
	}
	return err
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func toJSON(v interface{}) datatypes.JSON {
	data, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON("null")
	}
	return datatypes.JSON(data)
}

func fromJSON(data datatypes.JSON, out interface{}) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode json column: %w", err)
	}
	return nil
}
