package gameserver_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/cory-johannsen/wonders/internal/gameserver"
	"github.com/cory-johannsen/wonders/internal/storage"
	"github.com/cory-johannsen/wonders/internal/storage/memory"
)

var fixedNow = time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)

// scriptedRoller replays fixed draws. Exhausted scripts yield 0 and false.
type scriptedRoller struct {
	mu     sync.Mutex
	below  []int
	chance []bool
}

func (s *scriptedRoller) Below(_ string, bound int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.below) == 0 {
		return 0
	}
	v := s.below[0] % bound
	s.below = s.below[1:]
	return v
}

func (s *scriptedRoller) Chance(_ string, _ float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.chance) == 0 {
		return false
	}
	v := s.chance[0]
	s.chance = s.chance[1:]
	return v
}

// countingStore counts writes and can be made to fail.
type countingStore struct {
	*memory.Store
	puts    atomic.Int32
	deletes atomic.Int32
	failGet atomic.Bool
	failPut atomic.Bool
}

var errStoreDown = errors.New("store down")

func newCountingStore() *countingStore {
	return &countingStore{Store: memory.New()}
}

func (s *countingStore) Get(ctx context.Context, key string) ([]byte, error) {
	if s.failGet.Load() {
		return nil, errStoreDown
	}
	return s.Store.Get(ctx, key)
}

func (s *countingStore) Put(ctx context.Context, key string, value []byte) error {
	if s.failPut.Load() {
		return errStoreDown
	}
	s.puts.Add(1)
	return s.Store.Put(ctx, key, value)
}

func (s *countingStore) Delete(ctx context.Context, key string) error {
	s.deletes.Add(1)
	return s.Store.Delete(ctx, key)
}

var _ storage.Store = (*countingStore)(nil)

// newGame builds a Game whose clock never fires on its own during a test.
func newGame(t *testing.T, store storage.Store, opts gameserver.Options) *gameserver.Game {
	t.Helper()
	opts.Store = store
	opts.Logger = zaptest.NewLogger(t)
	if opts.Roller == nil {
		opts.Roller = &scriptedRoller{}
	}
	if opts.TickInterval == 0 {
		opts.TickInterval = time.Hour
	}
	opts.Now = func() time.Time { return fixedNow }
	g := gameserver.NewGame(opts)
	t.Cleanup(g.StopClock)
	return g
}
