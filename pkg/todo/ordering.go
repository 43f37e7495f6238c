// This file implements the sparse insertion scheme. A record entering a
// partition gets an index computed from one observed extremum, so the
// frequent insert paths are O(1) and never rewrite existing rows. The
// dense 0..N-1 rewrite in reorder.go is a deliberately separate code
// path for explicit user-driven reordering; the two schemes coexist on
// the same order_index field.
//
// Two uncoordinated writers can observe the same extremum and be
// assigned colliding indices. That never corrupts data or loses a
// record; the tie resolves by physical insertion order at read time.
package todo

import "github.com/mesh-intelligence/dayboard/pkg/types"

// nextTopIndex returns the index for a record entering the top of a
// pending partition: one below the observed minimum, or 0 when the
// partition is empty. Repeated top insertion yields a strictly
// decreasing sequence.
func nextTopIndex(min int64, ok bool) int64 {
	if !ok {
		return 0
	}
	return min - 1
}

// nextBottomIndex returns the index for a record entering the bottom of
// a partition: one above the observed maximum, or 0 when empty.
func nextBottomIndex(max int64, ok bool) int64 {
	if !ok {
		return 0
	}
	return max + 1
}

// topIndex computes the index for inserting at the top of the pending
// partition in scope.
func (s *Service) topIndex(scope types.Scope) (int64, error) {
	min, ok, err := s.store.MinOrderIndex(scope, types.FilterPending)
	if err != nil {
		return 0, err
	}
	return nextTopIndex(min, ok), nil
}

// bottomPendingIndex computes the index for inserting at the bottom of
// the pending partition in scope.
func (s *Service) bottomPendingIndex(scope types.Scope) (int64, error) {
	max, ok, err := s.store.MaxOrderIndex(scope, types.FilterPending)
	if err != nil {
		return 0, err
	}
	return nextBottomIndex(max, ok), nil
}

// bottomDoneIndex computes the index for a record entering the done
// partition in scope. The maximum is taken over ALL records in the
// scope, any status, so a newly completed todo's raw index exceeds
// everything already stored there.
func (s *Service) bottomDoneIndex(scope types.Scope) (int64, error) {
	max, ok, err := s.store.MaxOrderIndex(scope, types.FilterAny)
	if err != nil {
		return 0, err
	}
	return nextBottomIndex(max, ok), nil
}
