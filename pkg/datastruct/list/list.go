package list

import (
	"iter"
	"slices"

	"github.com/pkg/errors"
	"github.com/xuning888/seqlist/pkg/logger"
)

// List 泛型双向链表, 两端各有一个永久的哨兵节点, 真实元素都在两个哨兵之间.
// List 不是并发安全的.
//
// 零值 List 可以直接使用.
type List[T any] struct {
	front *node[T]
	back  *node[T]
	size  int
	opts  options[T]
}

// New 创建一个空链表
func New[T any](opts ...Option[T]) *List[T] {
	l := &List[T]{}
	for _, opt := range opts {
		opt(&l.opts)
	}
	l.init()
	return l
}

// NewRepeat 创建包含 count 个 value 拷贝的链表
func NewRepeat[T any](count int, value T, opts ...Option[T]) (*List[T], error) {
	if count < 0 {
		return nil, ErrNegativeCount
	}
	l := New(opts...)
	var c chain[T]
	for i := 0; i < count; i++ {
		v, err := l.clone(value)
		if err != nil {
			c.discard(l.opts.releaser)
			return nil, err
		}
		c.push(v)
	}
	l.spliceBefore(l.back, c)
	return l, nil
}

// FromSlice 按顺序把 vs 放进一个新链表
func FromSlice[T any](vs []T, opts ...Option[T]) *List[T] {
	l := New(opts...)
	l.InsertValues(l.End(), vs...)
	return l
}

// Move 把 src 的全部节点转移到一个新链表, O(1). src 变成空链表.
func Move[T any](src *List[T]) *List[T] {
	src.lazyInit()
	l := &List[T]{opts: src.opts}
	l.init()
	l.steal(src)
	return l
}

func (l *List[T]) init() {
	l.front = newSentinel[T]()
	l.back = newSentinel[T]()
	l.front.next = l.back
	l.back.prev = l.front
	l.size = 0
}

func (l *List[T]) lazyInit() {
	if l.front == nil {
		l.init()
	}
}

func (l *List[T]) Len() int {
	return l.size
}

func (l *List[T]) Empty() bool {
	return l.size == 0
}

// Front 返回第一个元素, 空链表返回 ErrEmptyContainer
func (l *List[T]) Front() (T, error) {
	ref, err := l.FrontRef()
	if err != nil {
		var zero T
		return zero, err
	}
	return *ref, nil
}

// Back 返回最后一个元素, 空链表返回 ErrEmptyContainer
func (l *List[T]) Back() (T, error) {
	ref, err := l.BackRef()
	if err != nil {
		var zero T
		return zero, err
	}
	return *ref, nil
}

// FrontRef 返回第一个元素的地址
func (l *List[T]) FrontRef() (*T, error) {
	if l.size == 0 {
		return nil, ErrEmptyContainer
	}
	return l.front.next.get(), nil
}

// BackRef 返回最后一个元素的地址
func (l *List[T]) BackRef() (*T, error) {
	if l.size == 0 {
		return nil, ErrEmptyContainer
	}
	return l.back.prev.get(), nil
}

// Begin 第一个元素的位置, 空链表时等于 End()
func (l *List[T]) Begin() Iterator[T] {
	l.lazyInit()
	return Iterator[T]{n: l.front.next}
}

// End 最后一个元素之后的位置, 也就是尾哨兵
func (l *List[T]) End() Iterator[T] {
	l.lazyInit()
	return Iterator[T]{n: l.back}
}

func (l *List[T]) CBegin() ConstIterator[T] {
	return l.Begin().Const()
}

func (l *List[T]) CEnd() ConstIterator[T] {
	return l.End().Const()
}

func (l *List[T]) RBegin() ReverseIterator[T] {
	return ReverseIterator[T]{base: l.End()}
}

func (l *List[T]) REnd() ReverseIterator[T] {
	return ReverseIterator[T]{base: l.Begin()}
}

func (l *List[T]) CRBegin() ConstReverseIterator[T] {
	return l.RBegin().Const()
}

func (l *List[T]) CREnd() ConstReverseIterator[T] {
	return l.REnd().Const()
}

// All 正序遍历. 遍历过程中不要修改链表.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		l.lazyInit()
		for n := l.front.next; n != l.back; n = n.next {
			if !yield(n.slot.value) {
				return
			}
		}
	}
}

// Backward 逆序遍历
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		l.lazyInit()
		for n := l.back.prev; n != l.front; n = n.prev {
			if !yield(n.slot.value) {
				return
			}
		}
	}
}

func (l *List[T]) Values() []T {
	values := make([]T, 0, l.size)
	for v := range l.All() {
		values = append(values, v)
	}
	return values
}

// Insert 在 pos 前面插入 v, 返回新元素的位置. O(1)
func (l *List[T]) Insert(pos Position[T], v T) Iterator[T] {
	at := l.check(pos)
	n := allocNode[T]()
	n.construct(v)
	n.linkBefore(at)
	l.size++
	return Iterator[T]{n: n}
}

// InsertSeq 把 seq 中的元素按顺序插到 pos 前面, 返回第一个插入的位置.
// seq 为空时原样返回 pos. seq 不能在遍历过程中观察 l 本身.
func (l *List[T]) InsertSeq(pos Position[T], seq iter.Seq[T]) Iterator[T] {
	at := l.check(pos)
	var first *node[T]
	for v := range seq {
		n := allocNode[T]()
		n.construct(v)
		n.linkBefore(at)
		l.size++
		if first == nil {
			first = n
		}
	}
	if first == nil {
		return Iterator[T]{n: at}
	}
	return Iterator[T]{n: first}
}

func (l *List[T]) InsertValues(pos Position[T], vs ...T) Iterator[T] {
	return l.InsertSeq(pos, slices.Values(vs))
}

// InsertRange 把 [first, last) 中元素的拷贝插到 pos 前面, 区间可以来自另一个链表.
// 先在链外构造好所有拷贝再一次性挂上去, 拷贝失败时 l 不变.
func (l *List[T]) InsertRange(pos, first, last Position[T]) (Iterator[T], error) {
	at := l.check(pos)
	c, err := l.copyChain(first.node(), last.node())
	if err != nil {
		return Iterator[T]{n: at}, err
	}
	if c.size == 0 {
		return Iterator[T]{n: at}, nil
	}
	l.spliceBefore(at, c)
	return Iterator[T]{n: c.first}, nil
}

// Emplace 把已经构造好的 v 移进链表, 和 Insert 相同
func (l *List[T]) Emplace(pos Position[T], v T) Iterator[T] {
	return l.Insert(pos, v)
}

func (l *List[T]) EmplaceFront(v T) Iterator[T] {
	return l.Insert(l.Begin(), v)
}

func (l *List[T]) EmplaceBack(v T) Iterator[T] {
	return l.Insert(l.End(), v)
}

func (l *List[T]) PushFront(v T) Iterator[T] {
	return l.Insert(l.Begin(), v)
}

func (l *List[T]) PushBack(v T) Iterator[T] {
	return l.Insert(l.End(), v)
}

// Erase 删除 pos 上的元素, 返回它后面的位置. 删除 End() 什么也不做, 返回 End().
// 指向被删除元素的迭代器全部失效.
func (l *List[T]) Erase(pos Position[T]) Iterator[T] {
	return Iterator[T]{n: l.erase(l.check(pos))}
}

// EraseRange 删除 [first, last), 返回 last
func (l *List[T]) EraseRange(first, last Position[T]) Iterator[T] {
	n, end := l.check(first), l.check(last)
	for n != end {
		n = l.erase(n)
	}
	return Iterator[T]{n: end}
}

func (l *List[T]) erase(n *node[T]) *node[T] {
	if n == l.back {
		return l.back
	}
	n.destroy(l.opts.releaser)
	l.size--
	return n.unlink()
}

// PopFront 空链表上调用等价于 Erase(End()), 不做任何事
func (l *List[T]) PopFront() {
	l.Erase(l.Begin())
}

func (l *List[T]) PopBack() {
	if l.size > 0 {
		l.Erase(l.End().Prev())
	}
}

func (l *List[T]) Clear() {
	l.EraseRange(l.Begin(), l.End())
}

// Assign 拷贝赋值: dst 的旧值交给 releaser, 再放入 src 值的拷贝.
// src 可以是另一个链表的位置.
func (l *List[T]) Assign(dst, src Position[T]) error {
	d := l.check(dst)
	v, err := l.clone(*src.node().get())
	if err != nil {
		return err
	}
	d.assign(v, l.opts.releaser)
	return nil
}

// Reverse 原地反转, O(n). 交换每个节点 (包括两个哨兵) 的 next 和 prev,
// 再交换头尾哨兵的角色, 元素本身不会被拷贝.
func (l *List[T]) Reverse() {
	l.lazyInit()
	for n := l.front; n != nil; n = n.prev {
		n.next, n.prev = n.prev, n.next
	}
	l.front, l.back = l.back, l.front
	l.verify()
}

// Clone 深拷贝, 新链表和 l 共用同样的选项, 存储完全独立
func (l *List[T]) Clone() (*List[T], error) {
	l.lazyInit()
	dst := &List[T]{opts: l.opts}
	dst.init()
	if err := dst.CopyFrom(l); err != nil {
		return nil, err
	}
	return dst, nil
}

// CopyFrom 拷贝赋值, 用 l 自己的 cloner 拷贝 src 的每个元素.
// 拷贝失败时 l 保持原来的内容.
func (l *List[T]) CopyFrom(src *List[T]) error {
	if l == src {
		return nil
	}
	l.lazyInit()
	src.lazyInit()
	c, err := l.copyChain(src.front.next, src.back)
	if err != nil {
		return err
	}
	l.Clear()
	l.spliceBefore(l.back, c)
	l.verify()
	return nil
}

// MoveFrom 移动赋值, 先清空 l, 再接管 src 的全部节点. src 变成空链表.
// 指向这些元素的迭代器仍然有效, 之后属于 l.
func (l *List[T]) MoveFrom(src *List[T]) {
	if l == src {
		return
	}
	l.Clear()
	l.steal(src)
	l.verify()
}

// steal 要求 l 为空
func (l *List[T]) steal(src *List[T]) {
	src.lazyInit()
	if src.size == 0 {
		return
	}
	first, last := src.front.next, src.back.prev
	l.front.next = first
	first.prev = l.front
	l.back.prev = last
	last.next = l.back
	l.size = src.size

	src.front.next = src.back
	src.back.prev = src.front
	src.size = 0
}

func (l *List[T]) clone(v T) (T, error) {
	if l.opts.cloner == nil {
		return v, nil
	}
	c, err := l.opts.cloner(v)
	if err != nil {
		return c, errors.Wrap(err, "list: copy element")
	}
	return c, nil
}

// copyChain 拷贝 [first, last) 到一条还没挂上任何链表的链
func (l *List[T]) copyChain(first, last *node[T]) (chain[T], error) {
	var c chain[T]
	for n := first; n != last; n = n.next {
		v, err := l.clone(*n.get())
		if err != nil {
			c.discard(l.opts.releaser)
			return chain[T]{}, err
		}
		c.push(v)
	}
	return c, nil
}

func (l *List[T]) spliceBefore(at *node[T], c chain[T]) {
	if c.size == 0 {
		return
	}
	c.first.prev = at.prev
	c.last.next = at
	at.prev.next = c.first
	at.prev = c.last
	l.size += c.size
}

func (l *List[T]) log() logger.Logger {
	if l.opts.log != nil {
		return l.opts.log
	}
	return logger.Default()
}

// chain 一段游离的节点, 在挂到链表之前构造好
type chain[T any] struct {
	first *node[T]
	last  *node[T]
	size  int
}

func (c *chain[T]) push(v T) {
	n := allocNode[T]()
	n.construct(v)
	if c.last == nil {
		c.first = n
	} else {
		c.last.next = n
		n.prev = c.last
	}
	c.last = n
	c.size++
}

func (c *chain[T]) discard(release func(T)) {
	for n := c.first; n != nil; {
		next := n.next
		n.destroy(release)
		n.next, n.prev = nil, nil
		n = next
	}
	c.first, c.last, c.size = nil, nil, 0
}
