package list

import "errors"

var (
	// ErrEmptyContainer Front/Back 在空链表上调用时返回
	ErrEmptyContainer = errors.New("list is empty")
	// ErrForeignPosition 开启 debug 检查后, 传入不属于该链表的位置时 panic 的值
	ErrForeignPosition = errors.New("position does not belong to this list")
	// ErrSentinelAccess 解引用哨兵节点或已经被删除的节点
	ErrSentinelAccess = errors.New("dereference of a sentinel or erased position")
	ErrNegativeCount  = errors.New("negative count")
	ErrorOutIndex     = errors.New("out of index")
	// ErrorEmpty 给 Dequeue 的调用方用
	ErrorEmpty = ErrEmptyContainer
)
