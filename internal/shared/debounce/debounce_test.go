package debounce

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDelay = 20 * time.Millisecond

// TestDebouncer_LastTriggerWins は静止期間内の連続したTriggerで最後の1回だけが実行されることを検証します。
func TestDebouncer_LastTriggerWins(t *testing.T) {
	t.Parallel()

	d := New(testDelay)
	defer d.Close()

	var calls atomic.Int32
	fired := make(chan uint64, 3)
	fn := func(ctx context.Context, gen uint64) {
		calls.Add(1)
		fired <- gen
	}

	d.Trigger(fn)
	d.Trigger(fn)
	last := d.Trigger(fn)

	select {
	case gen := <-fired:
		assert.Equal(t, last, gen)
		assert.True(t, d.Current(gen))
	case <-time.After(time.Second):
		t.Fatal("debounced func did not fire")
	}

	time.Sleep(3 * testDelay)
	assert.Equal(t, int32(1), calls.Load())
}

// TestDebouncer_TriggerCancelsInFlight は新しいTriggerが実行中の処理のcontextをキャンセルし、古い世代を無効化することを検証します。
func TestDebouncer_TriggerCancelsInFlight(t *testing.T) {
	t.Parallel()

	d := New(testDelay)
	defer d.Close()

	started := make(chan struct{})
	done := make(chan bool, 1)
	first := d.Trigger(func(ctx context.Context, gen uint64) {
		close(started)
		<-ctx.Done()
		done <- d.Current(gen)
	})

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("first func did not start")
	}

	second := d.Trigger(func(ctx context.Context, gen uint64) {})
	require.Greater(t, second, first)

	select {
	case current := <-done:
		assert.False(t, current, "stale generation must not be current")
	case <-time.After(time.Second):
		t.Fatal("in-flight context was not cancelled")
	}
}

// TestDebouncer_CancelAndClose はCancel・Close後に予約済みの処理が実行されないことを検証します。
func TestDebouncer_CancelAndClose(t *testing.T) {
	t.Parallel()

	d := New(testDelay)
	var calls atomic.Int32
	fn := func(ctx context.Context, gen uint64) { calls.Add(1) }

	gen := d.Trigger(fn)
	d.Cancel()
	assert.False(t, d.Current(gen))

	d.Trigger(fn)
	d.Close()
	d.Close()
	assert.Equal(t, uint64(0), d.Trigger(fn))

	time.Sleep(3 * testDelay)
	assert.Equal(t, int32(0), calls.Load())
}

func TestDebouncer_Do(t *testing.T) {
	t.Parallel()

	d := New(time.Hour)
	old := d.Trigger(func(context.Context, uint64) {})
	gen := d.Trigger(func(context.Context, uint64) {})

	ran := false
	assert.False(t, d.Do(old, func() { ran = true }))
	assert.False(t, ran)

	assert.True(t, d.Do(gen, func() { ran = true }))
	assert.True(t, ran)

	d.Close()
	ran = false
	assert.False(t, d.Do(gen, func() { ran = true }))
	assert.False(t, ran)
}

// TestDebouncer_DoBlocksClose はfnの実行中に呼ばれたCloseがfnの完了まで待たされることを検証します。
func TestDebouncer_DoBlocksClose(t *testing.T) {
	t.Parallel()

	d := New(time.Hour)
	gen := d.Trigger(func(context.Context, uint64) {})

	closed := make(chan struct{})
	var closedDuringFn atomic.Bool
	ok := d.Do(gen, func() {
		go func() {
			d.Close()
			close(closed)
		}()
		select {
		case <-closed:
			closedDuringFn.Store(true)
		case <-time.After(3 * testDelay):
		}
	})

	require.True(t, ok)
	assert.False(t, closedDuringFn.Load())
	select {
	case <-closed:
	case <-time.After(time.Second):
		t.Fatal("Close did not complete after fn returned")
	}
	assert.False(t, d.Current(gen))
}
