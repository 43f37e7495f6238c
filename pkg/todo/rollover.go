// This file implements day rollover: overdue pending work is relocated
// into today's column at the bottom, preserving relative order. The
// per-record writes are independent, so an interrupted rollover is safe
// to re-run: already-migrated todos no longer match the overdue
// predicate. Repeated calls with the same today move nothing further.
package todo

import (
	"time"

	"github.com/mesh-intelligence/dayboard/pkg/types"
)

// RolloverTo moves every non-done todo scheduled strictly before today
// into today's column and returns the number of todos moved.
func (s *Service) RolloverTo(today types.Date) (int, error) {
	overdue, err := s.store.Overdue(today)
	if err != nil {
		return 0, err
	}
	if len(overdue) == 0 {
		return 0, nil
	}

	next, err := s.bottomPendingIndex(types.ScopeDay(today))
	if err != nil {
		return 0, err
	}

	now := time.Now()
	moved := 0
	for _, t := range overdue {
		next++

		day := today
		t.ScheduledFor = &day
		t.OrderIndex = next
		t.Touch(now)

		if err := s.store.Update(t); err != nil {
			return moved, err
		}
		moved++
	}
	return moved, nil
}
