package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snipr-be/internal/apperrors"
)

const testBaseURL = "http://short.test"

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	svc := NewURLService(newFakeLinkRepo(), nil, testBaseURL)
	ctx := context.Background()

	encoded, err := svc.Encode(ctx, "https://example.com/some/long/path?q=1")
	require.NoError(t, err)
	require.NotEmpty(t, encoded.ShortURL)

	decoded, err := svc.Decode(ctx, encoded.ShortURL)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/some/long/path?q=1", decoded.URL)
}

func TestEncodeCountersAreSequential(t *testing.T) {
	t.Parallel()

	svc := NewURLService(newFakeLinkRepo(), nil, testBaseURL)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		encoded, err := svc.Encode(ctx, fmt.Sprintf("https://example.com/page-%d", i))
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("%s/%d", testBaseURL, i), encoded.ShortURL)
	}
}

func TestEncodeDecodeScenario(t *testing.T) {
	t.Parallel()

	svc := NewURLService(newFakeLinkRepo(), nil, testBaseURL)
	ctx := context.Background()

	first, err := svc.Encode(ctx, "https://example.com/a")
	require.NoError(t, err)
	assert.Equal(t, testBaseURL+"/1", first.ShortURL)

	second, err := svc.Encode(ctx, "https://example.com/b")
	require.NoError(t, err)
	assert.Equal(t, testBaseURL+"/2", second.ShortURL)

	decoded, err := svc.Decode(ctx, testBaseURL+"/1")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a", decoded.URL)

	_, err = svc.Decode(ctx, testBaseURL+"/999")
	assert.ErrorIs(t, err, apperrors.ErrInvalidURL)
}

func TestDecodeRejectsForeignBaseURL(t *testing.T) {
	t.Parallel()

	svc := NewURLService(newFakeLinkRepo(), nil, testBaseURL)
	ctx := context.Background()

	_, err := svc.Encode(ctx, "https://example.com/a")
	require.NoError(t, err)

	for _, input := range []string{
		"http://other.test/1",
		"short.test/1",
		"https://short.test/1", // scheme differs from the configured base
		"",
	} {
		_, err := svc.Decode(ctx, input)
		assert.ErrorIs(t, err, apperrors.ErrInvalidURL, "input %q", input)
	}
}

func TestDecodeRejectsNonNumericCounter(t *testing.T) {
	t.Parallel()

	svc := NewURLService(newFakeLinkRepo(), nil, testBaseURL)

	_, err := svc.Decode(context.Background(), testBaseURL+"/abc")
	assert.ErrorIs(t, err, apperrors.ErrInvalidURL)
}

func TestEncodeRetriesOnCounterConflict(t *testing.T) {
	t.Parallel()

	repo := newFakeLinkRepo()
	repo.forcedConflicts = 2 // lose the race twice before succeeding
	svc := NewURLService(repo, nil, testBaseURL)

	encoded, err := svc.Encode(context.Background(), "https://example.com/contested")
	require.NoError(t, err)
	assert.Equal(t, testBaseURL+"/1", encoded.ShortURL)
	assert.Equal(t, 3, repo.insertCalls)
}

func TestEncodeGivesUpAfterBoundedRetries(t *testing.T) {
	t.Parallel()

	repo := newFakeLinkRepo()
	repo.forcedConflicts = 100 // never wins the race
	svc := NewURLService(repo, nil, testBaseURL)

	_, err := svc.Encode(context.Background(), "https://example.com/contested")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrCounterTaken)
	assert.Equal(t, encodeMaxRetries+1, repo.insertCalls)
}

func TestResolveUsesCache(t *testing.T) {
	t.Parallel()

	repo := newFakeLinkRepo()
	memCache := newFakeCache()
	svc := NewURLService(repo, memCache, testBaseURL)
	ctx := context.Background()

	encoded, err := svc.Encode(ctx, "https://example.com/cached")
	require.NoError(t, err)

	// Encode primed the cache; a decode must not need the store
	cached, err := memCache.Get(ctx, "link:1")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/cached", cached)

	decoded, err := svc.Decode(ctx, encoded.ShortURL)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/cached", decoded.URL)
}

func TestBaseURLTrailingSlashNormalized(t *testing.T) {
	t.Parallel()

	svc := NewURLService(newFakeLinkRepo(), nil, testBaseURL+"/")
	ctx := context.Background()

	encoded, err := svc.Encode(ctx, "https://example.com/a")
	require.NoError(t, err)
	assert.Equal(t, testBaseURL+"/1", encoded.ShortURL)

	decoded, err := svc.Decode(ctx, encoded.ShortURL)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a", decoded.URL)
}
