package list

// 这里的算法只用 List 的公开迭代器接口实现

// Unique 删除相邻的重复元素, 每一段连续相等的元素只保留第一个. O(n)
// 保留下来的位置通过 Assign 从扫描游标拷贝过去, 最后一次性删掉尾部多余的节点.
// 只有 cloner 失败时才会返回 error, 此时链表结构完整, 但去重只做了一部分.
func Unique[T comparable](l *List[T]) error {
	return UniqueFunc(l, func(a, b T) bool {
		return a == b
	})
}

// UniqueFunc 和 Unique 相同, 用 eq 判断两个元素是否相等
func UniqueFunc[T any](l *List[T], eq func(a, b T) bool) error {
	if l.Len() < 2 {
		return nil
	}
	end := l.End()
	kept := l.Begin()
	for scan := kept.Next(); scan != end; scan = scan.Next() {
		if eq(kept.Value(), scan.Value()) {
			continue
		}
		kept = kept.Next()
		if kept == scan {
			continue
		}
		if err := l.Assign(kept, scan); err != nil {
			return err
		}
	}
	l.EraseRange(kept.Next(), end)
	return nil
}

// Equal 两个链表长度相同且对应元素都相等
func Equal[T comparable](a, b *List[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i, j := a.CBegin(), b.CBegin(); i != a.CEnd(); i, j = i.Next(), j.Next() {
		if i.Value() != j.Value() {
			return false
		}
	}
	return true
}

// Find 返回第一个等于 v 的位置, 找不到返回 End()
func Find[T comparable](l *List[T], v T) Iterator[T] {
	end := l.End()
	for it := l.Begin(); it != end; it = it.Next() {
		if it.Value() == v {
			return it
		}
	}
	return end
}
