package types

// Scope identifies a column: a specific calendar day, or the undated
// backlog. The zero value is the backlog.
type Scope struct {
	day    Date
	hasDay bool
}

// ScopeDay returns the scope for the given calendar day.
func ScopeDay(d Date) Scope {
	return Scope{day: d, hasDay: true}
}

// ScopeBacklog returns the backlog scope.
func ScopeBacklog() Scope {
	return Scope{}
}

// IsBacklog reports whether the scope is the undated backlog.
func (s Scope) IsBacklog() bool {
	return !s.hasDay
}

// Day returns the scope's calendar day. The second return value is
// false for the backlog scope.
func (s Scope) Day() (Date, bool) {
	return s.day, s.hasDay
}

// String returns "backlog" or the day in YYYY-MM-DD form.
func (s Scope) String() string {
	if !s.hasDay {
		return "backlog"
	}
	return s.day.String()
}
