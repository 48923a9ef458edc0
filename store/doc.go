// Package store implements a thin record store over a REST API: find, save
// and delete lifecycle operations with explicit errors and no client-side
// state. API conventions (URL paths, error classification, document shape)
// are injected through a Profile, so the same pipeline serves plain JSON
// APIs and convention-heavy ones alike.
//
// The store keeps no identity map and does no caching or batching; every
// operation is one HTTP round trip.
package store
