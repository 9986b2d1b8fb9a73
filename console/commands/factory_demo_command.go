package commands

import (
	"github.com/galaplate/patterns/factory"
)

type FactoryDemoCommand struct {
	BaseCommand
}

func (c *FactoryDemoCommand) GetSignature() string {
	return "demo:factory"
}

func (c *FactoryDemoCommand) GetDescription() string {
	return "Create a dog with the factory function and with a dog factory"
}

func (c *FactoryDemoCommand) Execute(args []string) error {
	animal, err := factory.FactoryMethod("dog", "Billy", factory.Options{Human: "John"})
	if err != nil {
		return err
	}
	c.Println(animal.MakeSound())

	registry := factory.NewRegistry("dog")
	registry.Register("dog", factory.NewDogFactory("Billy", "John"))
	registry.Register("cat", factory.NewCatFactory("Milo"))

	creator, err := registry.Default()
	if err != nil {
		return err
	}
	c.Println(factory.MakeAnimalSpeak(creator))

	return nil
}
