// Package factory builds Animal products, either from a label through
// FactoryMethod or through one Creator per concrete animal.
package factory

import "fmt"

// Animal is the product handed out by every factory in this package.
type Animal interface {
	Name() string
	// MakeSound returns what the animal says.
	MakeSound() string
	// GoOut describes how the animal gets outside.
	GoOut() string
}

var (
	_ Animal = (*Cat)(nil)
	_ Animal = (*Dog)(nil)
)

type Cat struct {
	name string
}

func NewCat(name string) *Cat {
	return &Cat{name: name}
}

func (c *Cat) Name() string { return c.name }

func (c *Cat) MakeSound() string {
	return "I am a Cat so 'meoww'"
}

func (c *Cat) GoOut() string {
	return "I can go out alone."
}

// Dog needs its human to go out. An empty human means the dog has no owner.
type Dog struct {
	name  string
	human string
}

func NewDog(name, human string) *Dog {
	return &Dog{name: name, human: human}
}

func (d *Dog) Name() string { return d.name }

func (d *Dog) Human() string { return d.human }

func (d *Dog) MakeSound() string {
	return "I am a Dog so barff"
}

func (d *Dog) GoOut() string {
	if d.human == "" {
		return "I need to ask to go out."
	}
	return fmt.Sprintf("I need to ask to my %s to go out.", d.human)
}
