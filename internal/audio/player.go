package audio

import (
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/ytget/lineup-browser/internal/playback"
)

// Output settings
const (
	DefaultSampleRate     beep.SampleRate = 44100
	SpeakerBufferDuration                 = 100 * time.Millisecond
	ResampleQuality                       = 4
)

// Fetch limits
const (
	DefaultFetchTimeout = 20 * time.Second
	MaxPreviewBytes     = 10 << 20
)

// Player creates preview streams that share one speaker
type Player struct {
	client     *http.Client
	dispatch   func(func())
	sampleRate beep.SampleRate

	speakerOnce sync.Once
	speakerErr  error
}

// NewPlayer creates a player. dispatch runs ended observers; pass fyne.Do from
// the UI. A nil client uses a client with DefaultFetchTimeout.
func NewPlayer(client *http.Client, dispatch func(func())) *Player {
	if client == nil {
		client = &http.Client{Timeout: DefaultFetchTimeout}
	}
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	return &Player{
		client:     client,
		dispatch:   dispatch,
		sampleRate: DefaultSampleRate,
	}
}

// NewAudio implements playback.AudioFactory
func (p *Player) NewAudio(url string) playback.Audio {
	return newStream(p, url)
}

// ensureSpeaker initializes the output device on first use
func (p *Player) ensureSpeaker() error {
	p.speakerOnce.Do(func() {
		if err := speaker.Init(p.sampleRate, p.sampleRate.N(SpeakerBufferDuration)); err != nil {
			p.speakerErr = fmt.Errorf("failed to initialize speaker: %w", err)
			return
		}
		log.Printf("Audio: speaker initialized at %d Hz", p.sampleRate)
	})
	return p.speakerErr
}

// Close silences every stream still attached to the speaker
func (p *Player) Close() {
	speaker.Clear()
}
