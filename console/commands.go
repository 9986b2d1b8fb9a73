package console

import "github.com/galaplate/patterns/console/commands"

// RegisterCommands registers all built-in console commands.
func (k *Kernel) RegisterCommands() {
	k.Register(&commands.BuilderDemoCommand{})
	k.Register(&commands.FactoryDemoCommand{})

	k.Register(&commands.ListCommand{Source: k.described})
}
