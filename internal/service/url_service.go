package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"snipr-be/internal/apperrors"
	"snipr-be/internal/cache"
	"snipr-be/internal/models"
	"snipr-be/internal/repository"
)

const (
	// encodeMaxRetries bounds how often Encode retries after losing the
	// counter race to a concurrent writer.
	encodeMaxRetries = 5
	encodeRetryDelay = 10 * time.Millisecond

	linkCacheTTL = time.Hour
)

// URLService defines the interface for URL shortening business logic
type URLService interface {
	Encode(ctx context.Context, url string) (*models.EncodeResponse, error)
	Decode(ctx context.Context, shortURL string) (*models.DecodeResponse, error)
	Resolve(ctx context.Context, counter int64) (string, error)
}

type urlService struct {
	repo    repository.LinkRepository
	cache   cache.Cache
	baseURL string
}

// NewURLService creates a new URL service. cacheClient may be nil, in
// which case every lookup goes to the database.
func NewURLService(repo repository.LinkRepository, cacheClient cache.Cache, baseURL string) URLService {
	return &urlService{
		repo:    repo,
		cache:   cacheClient,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// Encode allocates the next counter value and stores the link under it.
// Reading the max counter and inserting are two separate store
// operations, so two concurrent encodes can pick the same counter; the
// unique constraint rejects the loser and we retry with a fresh value,
// up to encodeMaxRetries times.
func (s *urlService) Encode(ctx context.Context, url string) (*models.EncodeResponse, error) {
	var counter int64

	backoff := retry.WithMaxRetries(encodeMaxRetries, retry.NewConstant(encodeRetryDelay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		next, err := s.repo.NextCounter(ctx)
		if err != nil {
			return err
		}

		link, err := s.repo.Insert(ctx, url, next)
		if err != nil {
			if errors.Is(err, apperrors.ErrCounterTaken) {
				return retry.RetryableError(err)
			}
			return err
		}

		counter = link.Counter
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode url: %w", err)
	}

	if s.cache != nil {
		s.cache.Set(ctx, linkCacheKey(counter), url, linkCacheTTL)
	}

	return &models.EncodeResponse{
		ShortURL: fmt.Sprintf("%s/%d", s.baseURL, counter),
	}, nil
}

// Decode resolves a short URL back to the original. Anything that does
// not start with the configured base URL, has a non-numeric trailing
// segment, or points at a counter with no stored link is an invalid URL.
func (s *urlService) Decode(ctx context.Context, shortURL string) (*models.DecodeResponse, error) {
	counter, err := s.parseShortURL(shortURL)
	if err != nil {
		return nil, err
	}

	original, err := s.Resolve(ctx, counter)
	if err != nil {
		return nil, err
	}

	return &models.DecodeResponse{URL: original}, nil
}

// Resolve looks up the original URL for a counter, consulting the cache
// first when one is configured.
func (s *urlService) Resolve(ctx context.Context, counter int64) (string, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, linkCacheKey(counter)); err == nil && cached != "" {
			return cached, nil
		}
	}

	link, err := s.repo.FindByCounter(ctx, counter)
	if err != nil {
		if errors.Is(err, apperrors.ErrLinkNotFound) {
			return "", apperrors.ErrInvalidURL
		}
		return "", fmt.Errorf("failed to resolve counter %d: %w", counter, err)
	}

	if s.cache != nil {
		s.cache.Set(ctx, linkCacheKey(counter), link.URL, linkCacheTTL)
	}

	return link.URL, nil
}

func (s *urlService) parseShortURL(shortURL string) (int64, error) {
	if !strings.HasPrefix(shortURL, s.baseURL+"/") {
		return 0, apperrors.ErrInvalidURL
	}

	segment := shortURL[strings.LastIndex(shortURL, "/")+1:]
	counter, err := strconv.ParseInt(segment, 10, 64)
	if err != nil {
		return 0, apperrors.ErrInvalidURL
	}

	return counter, nil
}

func linkCacheKey(counter int64) string {
	return fmt.Sprintf("link:%d", counter)
}
