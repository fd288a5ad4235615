package data

import (
	"context"
	"sync"

	"fund-dashboard/internal/dashboard/monitor"
	"fund-dashboard/internal/dashboard/result"
)

// FetchFunc 一次参数化查询
type FetchFunc[P comparable, T any] func(ctx context.Context, params P) result.Result[T]

// Tracker 保存某个 hook 在最新参数下的结果.
// 参数变化时进入 Loading 并异步查询; 每次查询带有代数 (generation),
// 只有最新一代的响应会被写回, 旧参数的慢响应直接丢弃.
type Tracker[P comparable, T any] struct {
	name  string
	fetch FetchFunc[P, T]

	mu       sync.Mutex
	gen      uint64
	params   P
	started  bool
	current  result.Result[T]
	cancel   context.CancelFunc
	onChange func(P, result.Result[T])
	inflight sync.WaitGroup
}

func NewTracker[P comparable, T any](name string, fetch FetchFunc[P, T]) *Tracker[P, T] {
	return &Tracker[P, T]{
		name:    name,
		fetch:   fetch,
		current: result.NewLoading[T](),
	}
}

// OnChange 每次写回结果后回调 (在查询 goroutine 中调用)
func (t *Tracker[P, T]) OnChange(fn func(P, result.Result[T])) *Tracker[P, T] {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onChange = fn
	return t
}

// Update 参数与当前相同且已发起过查询时不做任何事
func (t *Tracker[P, T]) Update(ctx context.Context, params P) {
	t.mu.Lock()
	if t.started && t.params == params {
		t.mu.Unlock()
		return
	}
	t.params = params
	t.started = true
	t.launchLocked(ctx)
	t.mu.Unlock()
}

// Refresh 按当前参数重新查询, 尚未 Update 过则忽略
func (t *Tracker[P, T]) Refresh(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.started {
		return
	}
	t.launchLocked(ctx)
}

// Current 当前参数与结果
func (t *Tracker[P, T]) Current() (P, result.Result[T]) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.params, t.current
}

// Wait 等待所有已发起的查询返回 (包括会被丢弃的旧查询)
func (t *Tracker[P, T]) Wait() {
	t.inflight.Wait()
}

// Stop 取消进行中的查询
func (t *Tracker[P, T]) Stop() {
	t.mu.Lock()
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	t.gen++
	t.mu.Unlock()
	t.inflight.Wait()
}

func (t *Tracker[P, T]) launchLocked(ctx context.Context) {
	if t.cancel != nil {
		t.cancel()
	}
	t.gen++
	gen := t.gen
	params := t.params
	t.current = result.NewLoading[T]()

	fetchCtx, cancel := context.WithCancel(ctx)
	t.cancel = cancel

	t.inflight.Add(1)
	go func() {
		defer t.inflight.Done()
		r := t.fetch(fetchCtx, params)

		t.mu.Lock()
		if gen != t.gen {
			t.mu.Unlock()
			cancel()
			monitor.StaleResponsesDropped.WithLabelValues(t.name).Inc()
			return
		}
		t.current = r
		t.cancel = nil
		onChange := t.onChange
		t.mu.Unlock()
		cancel()

		if onChange != nil {
			onChange(params, r)
		}
	}()
}
