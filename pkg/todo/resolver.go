// This file implements project/epic consistency resolution. The epic
// link is a lookup into the flat todos collection, never nested
// ownership. Only the one-level invariants are enforced (no self-loop,
// epic must exist, project agreement); longer reference chains
// (A -> B -> A) are not detected.
package todo

import (
	"errors"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/dayboard/pkg/types"
)

// resolveEpicProject validates the caller's project tag against the
// referenced epic and returns the tag to persist.
//
// No epic: the project is used as given. Epic present: the epic must
// exist (EpicNotFound otherwise); an explicit project must equal the
// epic's project (ProjectMismatch otherwise); an unset project inherits
// the epic's. The epic's project is read at call time, so re-resolution
// after the epic itself changed validates against its current tag.
func (s *Service) resolveEpicProject(epicID uuid.UUID, project string) (string, error) {
	if epicID == uuid.Nil {
		return project, nil
	}

	epic, err := s.store.Get(epicID)
	if err != nil {
		var notFound *types.NotFoundError
		if errors.As(err, &notFound) {
			return "", &types.EpicNotFoundError{ID: epicID}
		}
		return "", err
	}

	if project == "" {
		return epic.Project, nil
	}
	if project != epic.Project {
		return "", &types.ProjectMismatchError{Given: project, Epic: epic.Project}
	}
	return project, nil
}
