// Package dayboard exposes build metadata for the module.
package dayboard

// Version is the semantic version of the dayboard module.
const Version = "0.1.0"
