package types

import "github.com/google/uuid"

// projectFilterKind discriminates the ProjectFilter variants.
type projectFilterKind int

const (
	projectAny projectFilterKind = iota
	projectEquals
	projectIsNull
)

// ProjectFilter selects todos by project tag: any project, an exact
// tag, or only untagged todos. The zero value matches any project.
type ProjectFilter struct {
	kind projectFilterKind
	name string
}

// ProjectAny matches todos regardless of project tag.
func ProjectAny() ProjectFilter {
	return ProjectFilter{kind: projectAny}
}

// ProjectEquals matches todos whose project tag equals name.
func ProjectEquals(name string) ProjectFilter {
	return ProjectFilter{kind: projectEquals, name: name}
}

// ProjectIsNull matches todos with no project tag.
func ProjectIsNull() ProjectFilter {
	return ProjectFilter{kind: projectIsNull}
}

// IsAny reports whether the filter matches any project.
func (f ProjectFilter) IsAny() bool { return f.kind == projectAny }

// IsNull reports whether the filter matches only untagged todos.
func (f ProjectFilter) IsNull() bool { return f.kind == projectIsNull }

// Equals returns the exact tag the filter matches, if any.
func (f ProjectFilter) Equals() (string, bool) {
	return f.name, f.kind == projectEquals
}

// ListOptions filters and scopes a List call. EpicID of uuid.Nil means
// no epic filter. Results are always sorted pending-before-done, then
// by OrderIndex ascending.
type ListOptions struct {
	Scope       Scope
	IncludeDone bool
	Project     ProjectFilter
	EpicID      uuid.UUID
}

// ListToday returns the default options for today's column: pending
// only, all projects.
func ListToday(today Date) ListOptions {
	return ListOptions{Scope: ScopeDay(today)}
}

// MovePlacement selects where a moved todo lands in its target column.
type MovePlacement int

const (
	PlaceTop MovePlacement = iota
	PlaceBottom
)

// ReorderDirection selects the neighbor a todo swaps with.
type ReorderDirection int

const (
	ReorderUp ReorderDirection = iota
	ReorderDown
)

// StatusFilter restricts a partition query to one status, or neither.
type StatusFilter int

const (
	FilterAny StatusFilter = iota
	FilterPending
	FilterDone
)
