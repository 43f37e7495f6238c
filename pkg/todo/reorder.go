// This file implements the dense, swap-based reorder path: one todo
// moves one position among its current status+scope siblings and every
// sibling's index is rewritten to 0..N-1. O(n) on purpose; columns are
// small and explicit reordering is rare, unlike the sparse insertions
// in ordering.go.
package todo

import (
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/dayboard/pkg/types"
)

// Reorder moves a todo one position up or down within its partition.
// At either boundary the call is a no-op and nothing is rewritten.
func (s *Service) Reorder(id uuid.UUID, direction types.ReorderDirection) error {
	t, err := s.store.Get(id)
	if err != nil {
		return err
	}

	status := types.FilterPending
	if t.Done() {
		status = types.FilterDone
	}

	siblings, err := s.store.Column(t.Scope(), status)
	if err != nil {
		return err
	}

	pos := -1
	for i, sib := range siblings {
		if sib.ID == id {
			pos = i
			break
		}
	}
	if pos < 0 {
		return &types.NotFoundError{ID: id}
	}

	switch {
	case direction == types.ReorderUp && pos > 0:
		siblings[pos], siblings[pos-1] = siblings[pos-1], siblings[pos]
	case direction == types.ReorderDown && pos+1 < len(siblings):
		siblings[pos], siblings[pos+1] = siblings[pos+1], siblings[pos]
	default:
		return nil
	}

	now := time.Now()
	for i, sib := range siblings {
		sib.OrderIndex = int64(i)
		sib.Touch(now)
		if err := s.store.Update(sib); err != nil {
			return err
		}
	}
	return nil
}
