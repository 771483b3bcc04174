package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"snipr-be/internal/apperrors"
	"snipr-be/internal/entities"
)

// fakeUserRepo is an in-memory UserRepository for service tests.
type fakeUserRepo struct {
	mu     sync.Mutex
	users  map[string]*entities.User // keyed by email
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entities.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, email, passwordHash string, firstName, lastName *string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[email]; exists {
		return nil, apperrors.ErrEmailTaken
	}

	r.nextID++
	user := &entities.User{
		ID:           fmt.Sprintf("user-%d", r.nextID),
		Email:        email,
		PasswordHash: passwordHash,
		FirstName:    firstName,
		LastName:     lastName,
		CreatedAt:    time.Now(),
	}
	r.users[email] = user
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, exists := r.users[email]
	if !exists {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) delete(email string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, email)
}

// fakeLinkRepo is an in-memory LinkRepository. forcedConflicts makes the
// next N Insert calls fail with ErrCounterTaken, simulating a concurrent
// encode winning the counter race.
type fakeLinkRepo struct {
	mu              sync.Mutex
	links           map[int64]*entities.Link
	nextID          int
	forcedConflicts int
	insertCalls     int
}

func newFakeLinkRepo() *fakeLinkRepo {
	return &fakeLinkRepo{links: make(map[int64]*entities.Link)}
}

func (r *fakeLinkRepo) NextCounter(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var max int64
	for counter := range r.links {
		if counter > max {
			max = counter
		}
	}
	return max + 1, nil
}

func (r *fakeLinkRepo) Insert(_ context.Context, url string, counter int64) (*entities.Link, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.insertCalls++
	if r.forcedConflicts > 0 {
		r.forcedConflicts--
		return nil, apperrors.ErrCounterTaken
	}
	if _, exists := r.links[counter]; exists {
		return nil, apperrors.ErrCounterTaken
	}

	r.nextID++
	link := &entities.Link{
		ID:        fmt.Sprintf("link-%d", r.nextID),
		URL:       url,
		Counter:   counter,
		CreatedAt: time.Now(),
	}
	r.links[counter] = link
	return link, nil
}

func (r *fakeLinkRepo) FindByCounter(_ context.Context, counter int64) (*entities.Link, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	link, exists := r.links[counter]
	if !exists {
		return nil, apperrors.ErrLinkNotFound
	}
	return link, nil
}

// fakeCache is an in-memory cache.Cache.
type fakeCache struct {
	mu      sync.Mutex
	entries map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]string)}
}

func (c *fakeCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	value, exists := c.entries[key]
	if !exists {
		return "", fmt.Errorf("key not found")
	}
	return value, nil
}

func (c *fakeCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = value
	return nil
}

func (c *fakeCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
	return nil
}
