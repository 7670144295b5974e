package lineup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/ytget/lineup-browser/internal/model"
)

// Timeout and size limits
const (
	DefaultLoadTimeout = 30 * time.Second
	MaxResponseBytes   = 32 << 20
)

// ErrNoURL is returned when Load is called before a source URL is set
var ErrNoURL = errors.New("lineup: no data URL configured")

// Service fetches the lineup feed
type Service struct {
	client  *http.Client
	url     string
	timeout time.Duration

	mu       sync.RWMutex
	status   model.LoadStatus
	onUpdate func(model.LoadStatus, error) // callback for UI updates
}

// NewService creates a new lineup service for url. A nil client uses
// http.DefaultClient.
func NewService(client *http.Client, url string) *Service {
	if client == nil {
		client = http.DefaultClient
	}
	return &Service{
		client:  client,
		url:     strings.TrimSpace(url),
		timeout: DefaultLoadTimeout,
		status:  model.LoadStatusIdle,
	}
}

// SetUpdateCallback sets the callback function for status updates
func (s *Service) SetUpdateCallback(callback func(model.LoadStatus, error)) {
	s.mu.Lock()
	s.onUpdate = callback
	s.mu.Unlock()
}

// SetTimeout sets the timeout applied to each Load
func (s *Service) SetTimeout(timeout time.Duration) {
	s.mu.Lock()
	s.timeout = timeout
	s.mu.Unlock()
}

// SetURL sets the data URL used by the next Load
func (s *Service) SetURL(url string) {
	s.mu.Lock()
	s.url = strings.TrimSpace(url)
	s.mu.Unlock()
}

// URL returns the configured data URL
func (s *Service) URL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.url
}

// Status returns the status of the most recent Load
func (s *Service) Status() model.LoadStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Load performs one GET and decodes the artist array. On failure the
// returned slice is empty (never nil) alongside the error.
func (s *Service) Load(ctx context.Context) ([]*model.Artist, error) {
	s.mu.RLock()
	url, timeout := s.url, s.timeout
	s.mu.RUnlock()

	s.setStatus(model.LoadStatusLoading, nil)

	if url == "" {
		s.setStatus(model.LoadStatusError, ErrNoURL)
		return []*model.Artist{}, ErrNoURL
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	artists, err := s.fetch(ctx, url)
	if errors.Is(ctx.Err(), context.Canceled) {
		// superseded by the caller; a newer load owns the status now
		return []*model.Artist{}, ctx.Err()
	}
	if err != nil {
		log.Printf("Error fetching artists data from %s: %v", url, err)
		s.setStatus(model.LoadStatusError, err)
		return []*model.Artist{}, err
	}

	log.Printf("Loaded %d artists from %s", len(artists), url)
	s.setStatus(model.LoadStatusReady, nil)
	return artists, nil
}

// fetch issues the GET and decodes the body
func (s *Service) fetch(ctx context.Context, url string) ([]*model.Artist, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lineup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	return ParseArtists(io.LimitReader(resp.Body, MaxResponseBytes))
}

// ParseArtists decodes a JSON array of artist records, keeping feed order
func ParseArtists(r io.Reader) ([]*model.Artist, error) {
	var artists []*model.Artist
	if err := json.NewDecoder(r).Decode(&artists); err != nil {
		return nil, fmt.Errorf("failed to decode artists: %w", err)
	}

	cleaned := make([]*model.Artist, 0, len(artists))
	for i, artist := range artists {
		if artist == nil {
			log.Printf("Skipping null artist record at index %d", i)
			continue
		}
		artist.Normalize()
		cleaned = append(cleaned, artist)
	}
	return cleaned, nil
}

// setStatus records the status and notifies the callback if set
func (s *Service) setStatus(status model.LoadStatus, err error) {
	s.mu.Lock()
	s.status = status
	callback := s.onUpdate
	s.mu.Unlock()

	if callback != nil {
		callback(status, err)
	}
}
