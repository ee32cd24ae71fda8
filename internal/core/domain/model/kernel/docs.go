// Package kernel contains shared value objects used across all domain aggregates.
//
// The package currently provides UUID, an immutable identifier value object
// wrapping github.com/google/uuid. Zero-value UUIDs are invalid; identifiers
// must be produced by NewUUID, UUIDFromString, or UUIDFromBytes so that every
// entity holds a usable identity from the moment it is constructed.
package kernel
