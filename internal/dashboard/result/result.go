// Package result holds the state every data hook resolves to.
//
// A Result is exactly one of Loading, NotFound, Failed or Ready, so combinations
// like "loading and failed" or "failed with data" cannot be represented. The
// {loading, error, data} envelope consumed by page components is a projection of it.
package result

import "errors"

type State int

const (
	Loading State = iota
	NotFound
	Failed
	Ready
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case NotFound:
		return "not_found"
	case Failed:
		return "failed"
	case Ready:
		return "ready"
	}
	return "unknown"
}

type Result[T any] struct {
	state State
	data  T
	err   error
}

func NewLoading[T any]() Result[T] {
	return Result[T]{state: Loading}
}

func NewNotFound[T any]() Result[T] {
	return Result[T]{state: NotFound}
}

// NewFailed err 为 nil 时填充一个通用错误, Failed 总是带原因
func NewFailed[T any](err error) Result[T] {
	if err == nil {
		err = errors.New("request failed")
	}
	return Result[T]{state: Failed, err: err}
}

func NewReady[T any](data T) Result[T] {
	return Result[T]{state: Ready, data: data}
}

func (r Result[T]) State() State { return r.state }

func (r Result[T]) IsLoading() bool { return r.state == Loading }

func (r Result[T]) IsReady() bool { return r.state == Ready }

// Err 只有 Failed 状态非 nil
func (r Result[T]) Err() error { return r.err }

// Data ok=false 时返回零值
func (r Result[T]) Data() (T, bool) {
	if r.state != Ready {
		var zero T
		return zero, false
	}
	return r.data, true
}

// Map 只变换 Ready 的数据, 其它状态原样传递
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	switch r.state {
	case Ready:
		return NewReady(fn(r.data))
	case Failed:
		return NewFailed[U](r.err)
	case NotFound:
		return NewNotFound[U]()
	}
	return NewLoading[U]()
}

// Envelope 单实体 hook 的返回形状
type Envelope[T any] struct {
	Loading bool `json:"loading"`
	Error   bool `json:"error"`
	Data    *T   `json:"data"`
}

// ListEnvelope 列表 hook 的返回形状, Data 不为 nil
type ListEnvelope[T any] struct {
	Loading bool `json:"loading"`
	Error   bool `json:"error"`
	Data    []T  `json:"data"`
}

func ToEnvelope[T any](r Result[T]) Envelope[T] {
	env := Envelope[T]{
		Loading: r.state == Loading,
		Error:   r.state == Failed,
	}
	if r.state == Ready {
		data := r.data
		env.Data = &data
	}
	return env
}

func ToListEnvelope[T any](r Result[[]T]) ListEnvelope[T] {
	env := ListEnvelope[T]{
		Loading: r.state == Loading,
		Error:   r.state == Failed,
		Data:    []T{},
	}
	if r.state == Ready && r.data != nil {
		env.Data = r.data
	}
	return env
}
