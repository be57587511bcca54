package list

// slot 节点的值槽, live 为 false 时 value 没有被构造过
type slot[T any] struct {
	value T
	live  bool
}

// node 链表中的一个节点, 分配和构造是两个独立的步骤,
// 哨兵节点只分配不构造, 所以 T 不需要有意义的零值
type node[T any] struct {
	next *node[T]
	prev *node[T]
	slot slot[T]
}

func newSentinel[T any]() *node[T] {
	return &node[T]{}
}

func allocNode[T any]() *node[T] {
	return &node[T]{}
}

// construct 把 v 放进槽里. 对一个已经构造过的节点再次构造是实现上的错误.
func (n *node[T]) construct(v T) {
	if n.slot.live {
		panic("list: construct on a live node")
	}
	n.slot.value = v
	n.slot.live = true
}

// destroy 析构槽中的值, release 对每个 live 值恰好调用一次.
// 析构后把 value 置零, 让 GC 能回收它引用的内存.
func (n *node[T]) destroy(release func(T)) {
	if !n.slot.live {
		panic("list: destroy on a sentinel node")
	}
	if release != nil {
		release(n.slot.value)
	}
	var zero T
	n.slot.value = zero
	n.slot.live = false
}

// get 读取 live 值, 哨兵和已删除的节点上没有值可读
func (n *node[T]) get() *T {
	if !n.slot.live {
		panic(ErrSentinelAccess)
	}
	return &n.slot.value
}

// assign 覆盖一个 live 值, 旧值先交给 release
func (n *node[T]) assign(v T, release func(T)) {
	old := n.get()
	if release != nil {
		release(*old)
	}
	*old = v
}

func (n *node[T]) isSentinel() bool {
	return !n.slot.live
}

// unlink 把节点从链上摘下, 并断开它自己的指针
func (n *node[T]) unlink() (next *node[T]) {
	next = n.next
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next = nil
	n.prev = nil
	return next
}

// linkBefore 把 n 挂到 at 的前面
func (n *node[T]) linkBefore(at *node[T]) {
	n.next = at
	n.prev = at.prev
	at.prev.next = n
	at.prev = n
}
