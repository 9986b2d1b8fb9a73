package commands

import (
	"fmt"
	"io"
	"os"
)

// BaseCommand provides output helpers shared by all commands.
type BaseCommand struct {
	out io.Writer
}

// SetOutput redirects everything the command prints. The kernel calls it on
// registration.
func (b *BaseCommand) SetOutput(w io.Writer) {
	b.out = w
}

func (b *BaseCommand) Output() io.Writer {
	if b.out == nil {
		return os.Stdout
	}
	return b.out
}

func (b *BaseCommand) Println(a ...any) {
	fmt.Fprintln(b.Output(), a...)
}

func (b *BaseCommand) Printf(format string, a ...any) {
	fmt.Fprintf(b.Output(), format, a...)
}
