package gameserver_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/wonders/internal/gameserver"
)

func TestClock_Ticks(t *testing.T) {
	var ticks atomic.Int32
	clk := gameserver.NewClock(10*time.Millisecond, func(context.Context) { ticks.Add(1) })
	clk.Start(context.Background())
	defer clk.Stop()

	require.Eventually(t, func() bool { return ticks.Load() >= 2 }, 2*time.Second, 5*time.Millisecond)
	assert.True(t, clk.Running())
}

func TestClock_StopIsIdempotent(t *testing.T) {
	var ticks atomic.Int32
	clk := gameserver.NewClock(10*time.Millisecond, func(context.Context) { ticks.Add(1) })
	clk.Stop()
	clk.Start(context.Background())
	clk.Stop()
	clk.Stop()
	assert.False(t, clk.Running())

	time.Sleep(30 * time.Millisecond)
	settled := ticks.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, settled, ticks.Load(), "no ticks after stop")
}

func TestClock_RestartKeepsSingleLoop(t *testing.T) {
	var active, peak atomic.Int32
	tick := func(context.Context) {
		n := active.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(2 * time.Millisecond)
		active.Add(-1)
	}
	clk := gameserver.NewClock(5*time.Millisecond, tick)
	for i := 0; i < 5; i++ {
		clk.Start(context.Background())
	}
	time.Sleep(100 * time.Millisecond)
	clk.Stop()
	assert.LessOrEqual(t, peak.Load(), int32(1))
}

func TestClock_TickContextCancelledOnStop(t *testing.T) {
	ctxs := make(chan context.Context, 1)
	clk := gameserver.NewClock(5*time.Millisecond, func(ctx context.Context) {
		select {
		case ctxs <- ctx:
		default:
		}
	})
	clk.Start(context.Background())

	var got context.Context
	select {
	case got = <-ctxs:
	case <-time.After(2 * time.Second):
		t.Fatal("no tick")
	}
	clk.Stop()
	assert.Error(t, got.Err())
}
