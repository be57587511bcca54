package script

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuning888/seqlist/pkg/datastruct/list"
)

const okReply = "OK"

func init() {
	RegisterCmd("push_back", execPushBack, -2)
	RegisterCmd("push_front", execPushFront, -2)
	RegisterCmd("pop_back", execPopBack, 1)
	RegisterCmd("pop_front", execPopFront, 1)
	RegisterCmd("front", execFront, 1)
	RegisterCmd("back", execBack, 1)
	RegisterCmd("len", execLen, 1)
	RegisterCmd("insert", execInsert, -3)
	RegisterCmd("erase", execErase, 2)
	RegisterCmd("erase_range", execEraseRange, 3)
	RegisterCmd("find", execFind, 2)
	RegisterCmd("reverse", execReverse, 1)
	RegisterCmd("unique", execUnique, 1)
	RegisterCmd("clear", execClear, 1)
	RegisterCmd("print", execPrint, 1)
	RegisterCmd("rprint", execRPrint, 1)
}

// execPushBack push_back v [v...]
func execPushBack(r *Runner, args []string) (string, error) {
	r.list.InsertValues(r.list.End(), args...)
	return strconv.Itoa(r.list.Len()), nil
}

// execPushFront push_front v [v...], 和 redis 的 lpush 一样逐个插到头部
func execPushFront(r *Runner, args []string) (string, error) {
	for _, v := range args {
		r.list.PushFront(v)
	}
	return strconv.Itoa(r.list.Len()), nil
}

func execPopBack(r *Runner, _ []string) (string, error) {
	r.list.PopBack()
	return okReply, nil
}

func execPopFront(r *Runner, _ []string) (string, error) {
	r.list.PopFront()
	return okReply, nil
}

func execFront(r *Runner, _ []string) (string, error) {
	v, err := r.list.Front()
	if err != nil {
		return "", errors.Wrap(err, "front")
	}
	return v, nil
}

func execBack(r *Runner, _ []string) (string, error) {
	v, err := r.list.Back()
	if err != nil {
		return "", errors.Wrap(err, "back")
	}
	return v, nil
}

func execLen(r *Runner, _ []string) (string, error) {
	return strconv.Itoa(r.list.Len()), nil
}

// execInsert insert index v [v...], 插到 index 位置之前, index 等于长度时追加到末尾
func execInsert(r *Runner, args []string) (string, error) {
	pos, err := r.position(args[0])
	if err != nil {
		return "", err
	}
	r.list.InsertValues(pos, args[1:]...)
	return strconv.Itoa(r.list.Len()), nil
}

// execErase erase index
func execErase(r *Runner, args []string) (string, error) {
	pos, err := r.position(args[0])
	if err != nil {
		return "", err
	}
	r.list.Erase(pos)
	return okReply, nil
}

// execEraseRange erase_range from to, 删除 [from, to)
func execEraseRange(r *Runner, args []string) (string, error) {
	from, err := r.index(args[0])
	if err != nil {
		return "", err
	}
	to, err := r.index(args[1])
	if err != nil {
		return "", err
	}
	if from > to {
		return "", errors.Wrapf(ErrOutOfRange, "range [%d, %d)", from, to)
	}
	first := r.at(from)
	r.list.EraseRange(first, r.at(to))
	return okReply, nil
}

// execFind find v, 返回第一个等于 v 的下标, 没有时返回 -1
func execFind(r *Runner, args []string) (string, error) {
	found := list.Find(r.list, args[0])
	if found == r.list.End() {
		return "-1", nil
	}
	idx := 0
	for it := r.list.Begin(); it != found; it = it.Next() {
		idx++
	}
	return strconv.Itoa(idx), nil
}

func execReverse(r *Runner, _ []string) (string, error) {
	r.list.Reverse()
	return okReply, nil
}

func execUnique(r *Runner, _ []string) (string, error) {
	if err := list.Unique(r.list); err != nil {
		return "", err
	}
	return strconv.Itoa(r.list.Len()), nil
}

func execClear(r *Runner, _ []string) (string, error) {
	r.list.Clear()
	return okReply, nil
}

func execPrint(r *Runner, _ []string) (string, error) {
	return format(r.list.Values()), nil
}

// execRPrint 用反向迭代器从尾到头输出
func execRPrint(r *Runner, _ []string) (string, error) {
	values := make([]string, 0, r.list.Len())
	for it := r.list.CRBegin(); it != r.list.CREnd(); it = it.Next() {
		values = append(values, it.Value())
	}
	return format(values), nil
}

func format(values []string) string {
	return "[" + strings.Join(values, " ") + "]"
}
