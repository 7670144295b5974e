// Package lineup implements the one-shot lineup fetch: a single HTTP GET of
// the festival's artists.json, decoded into model.Artist records in feed
// order. There is no retry and no caching; failures are reported to the
// caller and through the status callback so the UI can fall back to an
// empty list.
package lineup
