package list

import "github.com/xuning888/seqlist/pkg/logger"

type options[T any] struct {
	cloner   func(T) (T, error)
	releaser func(T)
	debug    bool
	log      logger.Logger
}

// Option 构造链表时的可选项
type Option[T any] func(*options[T])

// WithCloner 设置元素的拷贝操作, 拷贝构造, 拷贝赋值, NewRepeat, InsertRange 都会使用它.
// 默认是直接赋值. 返回 error 时当前操作失败, 链表保持原样.
func WithCloner[T any](cloner func(T) (T, error)) Option[T] {
	return func(o *options[T]) {
		o.cloner = cloner
	}
}

// WithReleaser 设置元素的析构操作, 每个被销毁的元素恰好调用一次
func WithReleaser[T any](releaser func(T)) Option[T] {
	return func(o *options[T]) {
		o.releaser = releaser
	}
}

// WithDebugChecks 开启位置归属检查, 每次 Insert/Erase 都会遍历链表, O(n)
func WithDebugChecks[T any](enabled bool) Option[T] {
	return func(o *options[T]) {
		o.debug = enabled
	}
}

func WithLogger[T any](lg logger.Logger) Option[T] {
	return func(o *options[T]) {
		o.log = lg
	}
}
