package script

import "strings"

// ExeFunc 执行一条命令, args 不包含命令名
type ExeFunc func(r *Runner, args []string) (string, error)

var cmdTable = make(map[string]*command)

type command struct {
	cmdName string
	exeFunc ExeFunc
	// arity 包含命令名, 负数表示至少 -arity 个
	arity int
}

func RegisterCmd(cmdName string, exeFunc ExeFunc, arity int) {
	lower := strings.ToLower(cmdName)
	cmdTable[lower] = &command{
		cmdName: lower,
		exeFunc: exeFunc,
		arity:   arity,
	}
}

func getCommand(cmdName string) *command {
	cmd, ok := cmdTable[cmdName]
	if ok {
		return cmd
	}
	return nil
}

func (c *command) validArity(argNum int) bool {
	if c.arity >= 0 {
		return argNum == c.arity
	}
	return argNum >= -c.arity
}
