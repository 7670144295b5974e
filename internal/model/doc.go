package model

// Package model defines the lineup data structures shared across the app:
// artists as published in the festival's artists.json, their top tracks,
// the weekend filter predicate, and loader status enums. Artist data is
// read-only after load; nothing in this package mutates it.
