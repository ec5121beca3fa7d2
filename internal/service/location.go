package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/pkordes/travel-planner/internal/domain"
)

// TextGenerator produces free text for a prompt. *genai.Client satisfies it.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// DescriptionCache is the bounded cache of generated location descriptions.
type DescriptionCache = expirable.LRU[string, string]

// NewDescriptionCache returns an LRU holding at most size descriptions, each
// for at most ttl.
func NewDescriptionCache(size int, ttl time.Duration) *DescriptionCache {
	return expirable.NewLRU[string, string](size, nil, ttl)
}

// LocationService answers destination questions with generated text.
// Descriptions are cached by normalized location name; recommendations are not.
type LocationService struct {
	gen   TextGenerator
	cache *DescriptionCache
}

// NewLocationService constructs a LocationService. A nil gen makes every call
// return ErrGeneratorDisabled.
func NewLocationService(gen TextGenerator, cache *DescriptionCache) *LocationService {
	return &LocationService{gen: gen, cache: cache}
}

// ErrGeneratorDisabled is returned when no text generator is configured.
var ErrGeneratorDisabled = errors.New("text generation is not configured")

// Describe returns a short travel description of the named location.
func (s *LocationService) Describe(ctx context.Context, name string) (string, error) {
	key, err := locationKey(name)
	if err != nil {
		return "", fmt.Errorf("service.LocationService.Describe: %w", err)
	}
	if desc, ok := s.cache.Get(key); ok {
		return desc, nil
	}
	if s.gen == nil {
		return "", fmt.Errorf("service.LocationService.Describe: %w", ErrGeneratorDisabled)
	}

	prompt := fmt.Sprintf("Write a two-sentence travel description of %s for a trip planner. "+
		"Plain text only.", strings.TrimSpace(name))
	desc, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("service.LocationService.Describe: %w", err)
	}
	s.cache.Add(key, desc)
	return desc, nil
}

// Recommend asks for places worth visiting near the destination.
// The generator is prompted for a JSON array; code fences around it are tolerated.
func (s *LocationService) Recommend(ctx context.Context, destination string) ([]domain.Recommendation, error) {
	if _, err := locationKey(destination); err != nil {
		return nil, fmt.Errorf("service.LocationService.Recommend: %w", err)
	}
	if s.gen == nil {
		return nil, fmt.Errorf("service.LocationService.Recommend: %w", ErrGeneratorDisabled)
	}

	prompt := fmt.Sprintf("Suggest up to 5 places to visit in or near %s. Respond with only a JSON array "+
		`of objects with "name" and "description" string fields.`, strings.TrimSpace(destination))
	raw, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("service.LocationService.Recommend: %w", err)
	}

	var recs []domain.Recommendation
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &recs); err != nil {
		return nil, fmt.Errorf("service.LocationService.Recommend: parsing generated JSON: %w", err)
	}
	out := make([]domain.Recommendation, 0, len(recs))
	for _, r := range recs {
		if strings.TrimSpace(r.Name) != "" {
			out = append(out, r)
		}
	}
	return out, nil
}

func locationKey(name string) (string, error) {
	key := strings.ToLower(strings.Join(strings.Fields(name), " "))
	if key == "" {
		return "", fmt.Errorf("%w: location name is required", domain.ErrValidation)
	}
	return key, nil
}

// stripCodeFence removes a surrounding ```json ... ``` block if present.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "```"))
}
