package builder

import "fmt"

// Computer is the product of the component builders.
type Computer struct {
	Case        string `json:"case" validate:"required"`
	Motherboard string `json:"motherboard" validate:"required"`
	CPU         string `json:"cpu" validate:"required"`
	RAM         string `json:"ram" validate:"required"`
}

func (c *Computer) String() string {
	return fmt.Sprintf("Computer: Case=%s, Motherboard=%s, CPU=%s, RAM=%s", c.Case, c.Motherboard, c.CPU, c.RAM)
}

// Package has the same fields as Computer but each one describes how the
// matching part is packed for shipping.
type Package struct {
	Case        string `json:"case" validate:"required"`
	Motherboard string `json:"motherboard" validate:"required"`
	CPU         string `json:"cpu" validate:"required"`
	RAM         string `json:"ram" validate:"required"`
}

func (p *Package) String() string {
	return fmt.Sprintf("Package: Case=%s, Motherboard=%s, CPU=%s, RAM=%s", p.Case, p.Motherboard, p.CPU, p.RAM)
}
