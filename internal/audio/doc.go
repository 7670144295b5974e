// Package audio plays track previews through github.com/gopxl/beep/v2.
// A Player hands out one Stream per preview URL; streams fetch and decode the
// MP3 in the background and report natural end of playback through the
// dispatcher supplied by the UI, so observers always run on the UI goroutine.
package audio
