// Package debounce は世代番号付きのデバウンサーを提供します。
//
// Triggerのたびに世代が進み、保留中の実行は取り消され、実行中の処理のcontextはキャンセルされます。
// 遅れて完了した古い処理は Current(gen) が false になるため、呼び出し側で結果を破棄できます。
package debounce

import (
	"context"
	"sync"
	"time"
)

// Func はデバウンス後に実行される処理です。
// ctxは次のTrigger・Cancel・Closeでキャンセルされます。
type Func func(ctx context.Context, gen uint64)

// Debouncer は最後に予約された処理だけを静止期間後に実行します。
type Debouncer struct {
	delay time.Duration

	mu     sync.Mutex
	gen    uint64
	timer  *time.Timer
	cancel context.CancelFunc
	closed bool
}

// New は静止期間delayのDebouncerを生成します。
func New(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger は保留中・実行中の処理を取り消し、delay後にfnを実行する予約をして新しい世代番号を返します。
// Close済みの場合は何もせず0を返します。
func (d *Debouncer) Trigger(fn Func) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return 0
	}
	d.stopLocked()
	d.gen++
	gen := d.gen

	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	d.timer = time.AfterFunc(d.delay, func() {
		fn(ctx, gen)
	})
	return gen
}

// Cancel は保留中・実行中の処理を取り消します。世代も進むため、実行中の処理の結果は古いものとして扱われます。
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	d.gen++
}

// Current はgenが最新の世代であり、かつClose前であるかを返します。
func (d *Debouncer) Current(gen uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return !d.closed && gen == d.gen
}

// Do はgenが最新の世代でありClose前である場合のみ、ロックを保持したままfnを実行して true を返します。
// fnの実行中にTrigger・Cancel・Closeは完了しないため、判定と結果の反映の間に世代が変わることはありません。
// fnからDebouncerのメソッドを呼び出してはいけません。
func (d *Debouncer) Do(gen uint64, fn func()) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed || gen != d.gen {
		return false
	}
	fn()
	return true
}

// Close は以降の予約をすべて無効にします。複数回呼び出しても安全です。
func (d *Debouncer) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	d.closed = true
}

func (d *Debouncer) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}
