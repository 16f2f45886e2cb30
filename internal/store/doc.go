// Package store defines the persistence interfaces and the
// storage-agnostic list-query representation used by the API handlers.
// The MongoDB implementations live in internal/platform/mongodb.
package store
