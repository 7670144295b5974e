package audio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
)

// Stream is a single preview bound to a URL. It implements playback.Audio.
type Stream struct {
	player *Player
	url    string

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	paused  bool
	started bool
	closed  bool
	ctrl    *beep.Ctrl
	decoder beep.StreamSeekCloser
	onEnded func()

	endOnce sync.Once
}

func newStream(p *Player, url string) *Stream {
	ctx, cancel := context.WithCancel(context.Background())
	return &Stream{
		player: p,
		url:    url,
		ctx:    ctx,
		cancel: cancel,
		paused: true,
	}
}

// Play starts loading on first call, otherwise resumes
func (s *Stream) Play() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.paused = false
	ctrl := s.ctrl
	first := !s.started
	s.started = true
	s.mu.Unlock()

	if ctrl != nil {
		speaker.Lock()
		ctrl.Paused = false
		speaker.Unlock()
	}
	if first {
		go s.load()
	}
}

// Pause halts output and keeps the decoder position
func (s *Stream) Pause() {
	s.mu.Lock()
	s.paused = true
	ctrl := s.ctrl
	s.mu.Unlock()

	if ctrl != nil {
		speaker.Lock()
		ctrl.Paused = true
		speaker.Unlock()
	}
}

// Paused reports true until Play and after Pause
func (s *Stream) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

// OnEnded registers the one-shot end-of-playback observer
func (s *Stream) OnEnded(fn func()) {
	s.mu.Lock()
	s.onEnded = fn
	s.mu.Unlock()
}

// Close cancels any in-flight fetch and detaches the stream from the speaker
func (s *Stream) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.paused = true
	ctrl, decoder := s.ctrl, s.decoder
	s.mu.Unlock()

	s.cancel()

	if ctrl != nil {
		// a nil streamer ends the sequence; finish sees closed and stays quiet
		speaker.Lock()
		ctrl.Streamer = nil
		speaker.Unlock()
	}
	if decoder != nil {
		if err := decoder.Close(); err != nil {
			log.Printf("Audio: failed to close decoder for %s: %v", s.url, err)
		}
	}
}

// load fetches, decodes and attaches the preview to the speaker
func (s *Stream) load() {
	data, err := s.fetch()
	if err != nil {
		s.fail(err)
		return
	}

	decoder, format, err := mp3.Decode(io.NopCloser(bytes.NewReader(data)))
	if err != nil {
		s.fail(fmt.Errorf("failed to decode preview: %w", err))
		return
	}

	if err := s.player.ensureSpeaker(); err != nil {
		decoder.Close()
		s.fail(err)
		return
	}

	resampled := beep.Resample(ResampleQuality, format.SampleRate, s.player.sampleRate, decoder)

	streamer, ok := s.attach(resampled, decoder)
	if !ok {
		decoder.Close()
		return
	}
	speaker.Play(streamer)
	log.Printf("Audio: playing %s (%d Hz source)", s.url, format.SampleRate)
}

// attach wraps source in the pause control followed by the end callback.
// It reports false when the stream was closed while loading.
func (s *Stream) attach(source beep.Streamer, decoder beep.StreamSeekCloser) (beep.Streamer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, false
	}
	s.ctrl = &beep.Ctrl{Streamer: source, Paused: s.paused}
	s.decoder = decoder

	// the callback runs with the speaker lock held, so finish on another goroutine
	return beep.Seq(s.ctrl, beep.Callback(func() { go s.finish() })), true
}

// fetch downloads the preview body into memory
func (s *Stream) fetch() ([]byte, error) {
	req, err := http.NewRequestWithContext(s.ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build preview request: %w", err)
	}

	resp, err := s.player.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch preview: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected preview status: %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxPreviewBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read preview: %w", err)
	}
	return data, nil
}

// fail reports a load error as end of playback so the control is released
func (s *Stream) fail(err error) {
	if s.ctx.Err() == nil {
		log.Printf("Audio: preview %s failed: %v", s.url, err)
	}
	s.finish()
}

// finish fires the ended observer once, unless the stream was closed
func (s *Stream) finish() {
	s.endOnce.Do(func() {
		s.mu.Lock()
		closed, fn := s.closed, s.onEnded
		s.paused = true
		s.mu.Unlock()

		if closed || fn == nil {
			return
		}
		s.player.dispatch(fn)
	})
}
