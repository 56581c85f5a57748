package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/dmitrijs2005/notewave/internal/logging"
	"github.com/dmitrijs2005/notewave/internal/repositories/kv"
)

var errBroken = errors.New("storage unavailable")

// flakyRepo is a memory repository whose reads and writes can be made to
// fail.
type flakyRepo struct {
	*kv.MemoryRepository
	failGet bool
	failSet bool
}

func newFlakyRepo() *flakyRepo {
	return &flakyRepo{MemoryRepository: kv.NewMemoryRepository()}
}

func (r *flakyRepo) Get(ctx context.Context, key string) ([]byte, error) {
	if r.failGet {
		return nil, errBroken
	}
	return r.MemoryRepository.Get(ctx, key)
}

func (r *flakyRepo) Set(ctx context.Context, key string, value []byte) error {
	if r.failSet {
		return errBroken
	}
	return r.MemoryRepository.Set(ctx, key, value)
}

func (r *flakyRepo) SetMany(ctx context.Context, values map[string][]byte) error {
	if r.failSet {
		return errBroken
	}
	return r.MemoryRepository.SetMany(ctx, values)
}

// fakeClock returns a fixed instant that only moves when advanced.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newTestNoteService(t *testing.T, repo kv.Repository, clock *fakeClock) *NoteService {
	t.Helper()
	return NewNoteService(repo, logging.NewNop(), WithClock(clock.Now), WithIDGenerator(sequentialIDs()))
}
