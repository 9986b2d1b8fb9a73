package console

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/galaplate/patterns/console/commands"
	"github.com/galaplate/patterns/logger"
)

var ErrCommandNotFound = errors.New("command not found")

// Command is implemented by everything the kernel can run.
type Command interface {
	GetSignature() string
	GetDescription() string
	Execute(args []string) error
}

type outputSetter interface {
	SetOutput(w io.Writer)
}

// Kernel dispatches command signatures to registered commands.
type Kernel struct {
	out      io.Writer
	commands map[string]Command
}

// NewKernel creates a kernel whose commands print to out, or to stdout when
// out is nil.
func NewKernel(out io.Writer) *Kernel {
	if out == nil {
		out = os.Stdout
	}
	return &Kernel{
		out:      out,
		commands: make(map[string]Command),
	}
}

// Register adds cmd, replacing a command with the same signature.
func (k *Kernel) Register(cmd Command) {
	if s, ok := cmd.(outputSetter); ok {
		s.SetOutput(k.out)
	}
	k.commands[cmd.GetSignature()] = cmd
}

func (k *Kernel) Call(signature string, args []string) error {
	cmd, ok := k.commands[signature]
	if !ok {
		return fmt.Errorf("%w: %s", ErrCommandNotFound, signature)
	}

	logger.Debug("Running command", map[string]any{"command": signature, "args": args})

	if err := cmd.Execute(args); err != nil {
		logger.Error("Command failed", map[string]any{"command": signature, "error": err.Error()})
		return err
	}
	return nil
}

// Commands returns the registered commands sorted by signature.
func (k *Kernel) Commands() []Command {
	list := make([]Command, 0, len(k.commands))
	for _, cmd := range k.commands {
		list = append(list, cmd)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].GetSignature() < list[j].GetSignature()
	})
	return list
}

func (k *Kernel) described() []commands.Described {
	cmds := k.Commands()
	out := make([]commands.Described, len(cmds))
	for i, cmd := range cmds {
		out[i] = cmd
	}
	return out
}
