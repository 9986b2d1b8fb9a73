package commands

import (
	"fmt"

	"github.com/galaplate/patterns/builder"
	"github.com/galaplate/patterns/logger"
	"github.com/galaplate/patterns/supports"
)

type BuilderDemoCommand struct {
	BaseCommand
}

func (c *BuilderDemoCommand) GetSignature() string {
	return "demo:builder"
}

func (c *BuilderDemoCommand) GetDescription() string {
	return "Build a gaming computer, an office computer and a computer package"
}

func (c *BuilderDemoCommand) Execute(args []string) error {
	var director builder.Director[*builder.Computer]

	products := []fmt.Stringer{
		director.Construct(builder.NewGamingComputerBuilder()),
		director.Construct(builder.NewOfficeComputerBuilder()),
		builder.Construct[*builder.Package](builder.NewComputerPackage()),
	}

	for _, p := range products {
		if err := (supports.XValidator{}).Validate(p); err != nil {
			return fmt.Errorf("invalid product %T: %w", p, err)
		}
		logger.Info("Product constructed", map[string]any{"product": fmt.Sprintf("%T", p)})
		c.Println(p)
	}

	return nil
}
