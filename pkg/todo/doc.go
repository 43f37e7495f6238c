// Package todo implements the dayboard core: the service orchestrating
// todo operations against a Store, the sparse ordering policy that
// assigns partition-relative indices, and the epic/project resolver
// enforcing tag consistency across the one-level epic link.
package todo
