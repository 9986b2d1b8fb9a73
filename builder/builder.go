package builder

// Step names one construction step of a Builder.
type Step int

const (
	StepCase Step = iota
	StepMotherboard
	StepCPU
	StepRAM
)

// Steps is the order in which a Director runs the construction steps.
var Steps = [...]Step{StepCase, StepMotherboard, StepCPU, StepRAM}

func (s Step) String() string {
	switch s {
	case StepCase:
		return "case"
	case StepMotherboard:
		return "motherboard"
	case StepCPU:
		return "cpu"
	case StepRAM:
		return "ram"
	default:
		return "unknown"
	}
}

// Builder fills a product of type P one part at a time. Every step returns
// the builder itself and never fails.
type Builder[P any] interface {
	BuildCase() Builder[P]
	BuildMotherboard() Builder[P]
	BuildCPU() Builder[P]
	BuildRAM() Builder[P]
	Product() P
}

var (
	_ Builder[*Computer] = (*GamingComputerBuilder)(nil)
	_ Builder[*Computer] = (*OfficeComputerBuilder)(nil)
	_ Builder[*Package]  = (*ComputerPackage)(nil)
)

type GamingComputerBuilder struct {
	computer *Computer
}

func NewGamingComputerBuilder() *GamingComputerBuilder {
	return &GamingComputerBuilder{computer: &Computer{}}
}

func (b *GamingComputerBuilder) BuildCase() Builder[*Computer] {
	b.computer.Case = "Gaming Case"
	return b
}

func (b *GamingComputerBuilder) BuildMotherboard() Builder[*Computer] {
	b.computer.Motherboard = "Gaming Motherboard"
	return b
}

func (b *GamingComputerBuilder) BuildCPU() Builder[*Computer] {
	b.computer.CPU = "High-end CPU"
	return b
}

func (b *GamingComputerBuilder) BuildRAM() Builder[*Computer] {
	b.computer.RAM = "32GB RAM"
	return b
}

func (b *GamingComputerBuilder) Product() *Computer {
	return b.computer
}

type OfficeComputerBuilder struct {
	computer *Computer
}

func NewOfficeComputerBuilder() *OfficeComputerBuilder {
	return &OfficeComputerBuilder{computer: &Computer{}}
}

func (b *OfficeComputerBuilder) BuildCase() Builder[*Computer] {
	b.computer.Case = "Office Case"
	return b
}

func (b *OfficeComputerBuilder) BuildMotherboard() Builder[*Computer] {
	b.computer.Motherboard = "Office Motherboard"
	return b
}

func (b *OfficeComputerBuilder) BuildCPU() Builder[*Computer] {
	b.computer.CPU = "Mid-range CPU"
	return b
}

func (b *OfficeComputerBuilder) BuildRAM() Builder[*Computer] {
	b.computer.RAM = "8GB RAM"
	return b
}

func (b *OfficeComputerBuilder) Product() *Computer {
	return b.computer
}

// ComputerPackage builds the shipping package for a computer rather than
// the computer itself.
type ComputerPackage struct {
	pkg *Package
}

func NewComputerPackage() *ComputerPackage {
	return &ComputerPackage{pkg: &Package{}}
}

func (b *ComputerPackage) BuildCase() Builder[*Package] {
	b.pkg.Case = "XL Package with lot of protection."
	return b
}

func (b *ComputerPackage) BuildMotherboard() Builder[*Package] {
	b.pkg.Motherboard = "M package with standard protection."
	return b
}

func (b *ComputerPackage) BuildCPU() Builder[*Package] {
	b.pkg.CPU = "S package with standard protection."
	return b
}

func (b *ComputerPackage) BuildRAM() Builder[*Package] {
	b.pkg.RAM = "S package without protection."
	return b
}

func (b *ComputerPackage) Product() *Package {
	return b.pkg
}
