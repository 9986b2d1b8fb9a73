package commands

// Described is the part of a command that ListCommand prints.
type Described interface {
	GetSignature() string
	GetDescription() string
}

type ListCommand struct {
	BaseCommand
	Source func() []Described
}

func (c *ListCommand) GetSignature() string {
	return "list"
}

func (c *ListCommand) GetDescription() string {
	return "List available commands"
}

func (c *ListCommand) Execute(args []string) error {
	if c.Source == nil {
		return nil
	}

	width := 0
	entries := c.Source()
	for _, e := range entries {
		if n := len(e.GetSignature()); n > width {
			width = n
		}
	}

	for _, e := range entries {
		c.Printf("  %-*s  %s\n", width, e.GetSignature(), e.GetDescription())
	}
	return nil
}
