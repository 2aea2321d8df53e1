package countries

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pawtraits-dev/pawtraits-backend/pkg/db/models"
	pkgerrors "github.com/pawtraits-dev/pawtraits-backend/pkg/errors"
	"github.com/pawtraits-dev/pawtraits-backend/pkg/logger"
	"github.com/pawtraits-dev/pawtraits-backend/pkg/redis"
)

const (
	cacheName = "countries"
	cacheTTL  = time.Hour
)

type cacheStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	CacheKey(name string) string
}

// Service serves the country reference list, cached in redis. The table
// changes rarely; a stale hour is acceptable.
type Service interface {
	List(ctx context.Context) ([]models.Country, error)
}

type service struct {
	repo   CountryRepository
	cache  cacheStore
	logger *logger.Logger
}

// NewService builds the country list service.
func NewService(repo CountryRepository, cache cacheStore, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("country repository required")
	}
	if cache == nil {
		return nil, fmt.Errorf("cache store required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{repo: repo, cache: cache, logger: logg}, nil
}

// List returns the countries, reading through the redis cache. Cache
// failures degrade to a direct table read.
func (s *service) List(ctx context.Context) ([]models.Country, error) {
	key := s.cache.CacheKey(cacheName)

	if raw, err := s.cache.Get(ctx, key); err == nil {
		var cached []models.Country
		if jsonErr := json.Unmarshal([]byte(raw), &cached); jsonErr == nil {
			return cached, nil
		}
		s.logger.Warn(ctx, "discarding malformed country cache entry")
	} else if !redis.IsMiss(err) {
		s.logger.Warn(ctx, fmt.Sprintf("country cache read failed: %v", err))
	}

	countries, err := s.repo.ListCountries(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load countries")
	}

	if payload, jsonErr := json.Marshal(countries); jsonErr == nil {
		if setErr := s.cache.Set(ctx, key, payload, cacheTTL); setErr != nil {
			s.logger.Warn(ctx, fmt.Sprintf("country cache write failed: %v", setErr))
		}
	}

	return countries, nil
}
