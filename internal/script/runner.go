package script

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuning888/seqlist/pkg/datastruct/list"
	"github.com/xuning888/seqlist/pkg/logger"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrNumberOfArgs   = errors.New("wrong number of arguments")
	ErrNotInteger     = errors.New("value is not an integer")
	ErrOutOfRange     = errors.New("index out of range")
)

// Runner 逐行执行脚本命令, 所有命令作用在同一个链表上
type Runner struct {
	list *list.List[string]
	log  logger.Logger
}

func NewRunner(lg logger.Logger, opts ...list.Option[string]) *Runner {
	if lg == nil {
		lg = logger.Nop()
	}
	opts = append([]list.Option[string]{list.WithLogger[string](lg)}, opts...)
	return &Runner{
		list: list.New(opts...),
		log:  lg,
	}
}

func (r *Runner) List() *list.List[string] {
	return r.list
}

// Exec 执行一行命令, 空行和 # 开头的注释行返回空字符串
func (r *Runner) Exec(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return "", nil
	}
	cmdName := strings.ToLower(fields[0])
	cmd := getCommand(cmdName)
	if cmd == nil {
		return "", errors.Wrapf(ErrUnknownCommand, "'%s'", cmdName)
	}
	if !cmd.validArity(len(fields)) {
		return "", errors.Wrapf(ErrNumberOfArgs, "'%s'", cmdName)
	}
	reply, err := cmd.exeFunc(r, fields[1:])
	if err != nil {
		r.log.Debugf("exec %s failed: %v", cmdName, err)
		return "", err
	}
	r.log.Debugf("exec %s, len=%d", cmdName, r.list.Len())
	return reply, nil
}

// Run 从 src 读取命令并把结果写到 dst. 单条命令失败只输出错误, 不会中断执行;
// 读写失败或者 ctx 被取消时返回.
func (r *Runner) Run(ctx context.Context, src io.Reader, dst io.Writer) error {
	scanner := bufio.NewScanner(src)
	lineNo := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lineNo++
		reply, err := r.Exec(scanner.Text())
		if err != nil {
			r.log.Warnf("line %d: %v", lineNo, err)
			reply = "(error) " + err.Error()
		}
		if reply == "" {
			continue
		}
		if _, err := fmt.Fprintln(dst, reply); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// index 解析下标, 负数从尾部开始计算, 合法范围是 [0, Len()]
func (r *Runner) index(arg string) (int, error) {
	idx, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.Wrapf(ErrNotInteger, "'%s'", arg)
	}
	size := r.list.Len()
	if idx < 0 {
		idx += size
	}
	if idx < 0 || idx > size {
		return 0, errors.Wrapf(ErrOutOfRange, "%s", arg)
	}
	return idx, nil
}

// at 从离 idx 较近的一端走到对应位置, idx == Len() 时是 End()
func (r *Runner) at(idx int) list.Iterator[string] {
	size := r.list.Len()
	if idx <= size/2 {
		it := r.list.Begin()
		for i := 0; i < idx; i++ {
			it = it.Next()
		}
		return it
	}
	it := r.list.End()
	for i := size; i > idx; i-- {
		it = it.Prev()
	}
	return it
}

func (r *Runner) position(arg string) (list.Iterator[string], error) {
	idx, err := r.index(arg)
	if err != nil {
		return list.Iterator[string]{}, err
	}
	return r.at(idx), nil
}
