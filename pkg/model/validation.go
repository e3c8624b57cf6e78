package model

import (
	"errors"
	"fmt"
)

// ErrDuplicateParamID reports a definition list that reuses an id.
var ErrDuplicateParamID = errors.New("model: duplicate param id")

// ValidateParams rejects definition lists whose ids are not unique.
func ValidateParams(params []Param) error {
	seen := make(map[int]int, len(params))
	for idx, p := range params {
		if first, exists := seen[p.ID]; exists {
			return fmt.Errorf("%w: %d (positions %d and %d)", ErrDuplicateParamID, p.ID, first, idx)
		}
		seen[p.ID] = idx
	}
	return nil
}
