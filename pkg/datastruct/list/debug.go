package list

import "fmt"

// check 取出 pos 对应的节点. 默认不做任何校验, 传入别的链表的位置或者已经失效的位置是未定义行为;
// 开启 WithDebugChecks 后会确认 pos 是 l 中的元素或 End(), 否则 panic(ErrForeignPosition).
func (l *List[T]) check(pos Position[T]) *node[T] {
	l.lazyInit()
	n := pos.node()
	if l.opts.debug && !l.owns(n) {
		l.fail(ErrForeignPosition)
	}
	return n
}

func (l *List[T]) owns(target *node[T]) bool {
	if target == nil {
		return false
	}
	for n := l.front.next; n != nil; n = n.next {
		if n == target {
			return true
		}
		if n == l.back {
			return false
		}
	}
	return false
}

// verify 开启 debug 检查时, 在整体操作之后校验链表的结构
func (l *List[T]) verify() {
	if !l.opts.debug {
		return
	}
	if err := l.validate(); err != nil {
		l.fail(err)
	}
}

// validate 检查双向链接是否一致, 哨兵是否没有值, size 是否准确
func (l *List[T]) validate() error {
	if l.front == l.back {
		return fmt.Errorf("list: front and back sentinel are the same node")
	}
	if !l.front.isSentinel() || !l.back.isSentinel() {
		return fmt.Errorf("list: sentinel holds a value")
	}
	if l.front.prev != nil || l.back.next != nil {
		return fmt.Errorf("list: sentinel points outside the list")
	}
	count := 0
	for n := l.front.next; n != l.back; n = n.next {
		if n == nil {
			return fmt.Errorf("list: chain broken after %d nodes", count)
		}
		if n.isSentinel() {
			return fmt.Errorf("list: interior node %d holds no value", count)
		}
		if n.prev.next != n || n.next.prev != n {
			return fmt.Errorf("list: links of node %d are inconsistent", count)
		}
		count++
	}
	if l.back.prev.next != l.back {
		return fmt.Errorf("list: back sentinel link is inconsistent")
	}
	if count != l.size {
		return fmt.Errorf("list: size is %d but chain holds %d nodes", l.size, count)
	}
	return nil
}

func (l *List[T]) fail(err error) {
	l.log().Errorf("list: %v, size=%d", err, l.size)
	panic(err)
}
