// Package playback arbitrates audio previews across an open-ended set of
// track controls. A Coordinator owns at most one Audio handle at a time and
// guarantees that no two controls are ever in the playing state together.
// It is not safe for concurrent use: callers invoke it from the UI goroutine
// and deliver audio "ended" notifications there as well.
package playback
