// Package types defines the Todo entity, listing options, the Store
// interface, and the error taxonomy shared by the dayboard core and its
// collaborators (CLI, adapters).
package types
