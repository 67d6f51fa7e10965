package entities

import (
	"sort"

	domainerrors "mise.backend/internal/domain/errors"
)

func validationError(message string) error {
	return domainerrors.BadRequest(message)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
