package list

// Position 链表中的一个位置, Iterator 和 ConstIterator 都满足它,
// 所以 List 的 Insert/Erase 两种迭代器都能接收
type Position[T any] interface {
	node() *node[T]
}

var (
	_ Position[int] = Iterator[int]{}
	_ Position[int] = ConstIterator[int]{}
)

// Iterator 可读写的双向迭代器, 只持有当前节点, 不持有链表.
// 只要它指向的节点没被删除, 链表其他位置的插入删除都不会让它失效.
// 两个迭代器相等当且仅当指向同一个节点, 可以直接用 == 比较.
type Iterator[T any] struct {
	n *node[T]
}

func (it Iterator[T]) node() *node[T] {
	return it.n
}

// Next 返回后一个位置
func (it Iterator[T]) Next() Iterator[T] {
	return Iterator[T]{n: it.n.next}
}

// Prev 返回前一个位置
func (it Iterator[T]) Prev() Iterator[T] {
	return Iterator[T]{n: it.n.prev}
}

func (it Iterator[T]) Equal(other Position[T]) bool {
	return it.n == other.node()
}

// Value 解引用. 在 End() 或者已删除的位置上调用会 panic(ErrSentinelAccess),
// 这只是兜底, 调用方不应该依赖它.
func (it Iterator[T]) Value() T {
	return *it.n.get()
}

// Ref 返回元素的地址, 在节点被删除之前有效
func (it Iterator[T]) Ref() *T {
	return it.n.get()
}

// Set 直接覆盖元素, 不经过 releaser. 需要拷贝赋值语义时用 List.Assign.
func (it Iterator[T]) Set(v T) {
	*it.n.get() = v
}

// Const 转成只读迭代器, 反方向的转换不存在
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{n: it.n}
}

// ConstIterator 只读的双向迭代器
type ConstIterator[T any] struct {
	n *node[T]
}

func (it ConstIterator[T]) node() *node[T] {
	return it.n
}

func (it ConstIterator[T]) Next() ConstIterator[T] {
	return ConstIterator[T]{n: it.n.next}
}

func (it ConstIterator[T]) Prev() ConstIterator[T] {
	return ConstIterator[T]{n: it.n.prev}
}

func (it ConstIterator[T]) Equal(other Position[T]) bool {
	return it.n == other.node()
}

func (it ConstIterator[T]) Value() T {
	return *it.n.get()
}
