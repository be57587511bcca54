package list

// ReverseIterator 反向迭代器, 持有一个正向迭代器 base, 解引用的是 base 的前一个节点.
// 所以 RBegin() 的 base 是 End(), 解引用得到 Back().
type ReverseIterator[T any] struct {
	base Iterator[T]
}

// Base 返回底层的正向迭代器
func (r ReverseIterator[T]) Base() Iterator[T] {
	return r.base
}

func (r ReverseIterator[T]) Next() ReverseIterator[T] {
	return ReverseIterator[T]{base: r.base.Prev()}
}

func (r ReverseIterator[T]) Prev() ReverseIterator[T] {
	return ReverseIterator[T]{base: r.base.Next()}
}

func (r ReverseIterator[T]) Equal(other ReverseIterator[T]) bool {
	return r.base == other.base
}

func (r ReverseIterator[T]) Value() T {
	return r.base.Prev().Value()
}

func (r ReverseIterator[T]) Ref() *T {
	return r.base.Prev().Ref()
}

func (r ReverseIterator[T]) Set(v T) {
	r.base.Prev().Set(v)
}

func (r ReverseIterator[T]) Const() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{base: r.base.Const()}
}

type ConstReverseIterator[T any] struct {
	base ConstIterator[T]
}

func (r ConstReverseIterator[T]) Base() ConstIterator[T] {
	return r.base
}

func (r ConstReverseIterator[T]) Next() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{base: r.base.Prev()}
}

func (r ConstReverseIterator[T]) Prev() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{base: r.base.Next()}
}

func (r ConstReverseIterator[T]) Equal(other ConstReverseIterator[T]) bool {
	return r.base == other.base
}

func (r ConstReverseIterator[T]) Value() T {
	return r.base.Prev().Value()
}
