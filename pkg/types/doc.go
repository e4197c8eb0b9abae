// Package types defines the entity records, patch structs, configuration,
// and standard error types shared by the taskdesk storage backend and its
// command surfaces.
package types
