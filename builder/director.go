package builder

import (
	"fmt"

	"github.com/galaplate/patterns/logger"
)

// Director knows the construction order. The zero value is ready to use.
type Director[P any] struct{}

// Construct runs every step of b exactly once, in the order given by Steps,
// and returns the finished product.
func (Director[P]) Construct(b Builder[P]) P {
	logger.Debug("Constructing product", map[string]any{"builder": fmt.Sprintf("%T", b), "steps": stepNames()})

	return b.BuildCase().
		BuildMotherboard().
		BuildCPU().
		BuildRAM().
		Product()
}

// Construct is Director.Construct for callers that do not keep a Director.
func Construct[P any](b Builder[P]) P {
	return Director[P]{}.Construct(b)
}

func stepNames() []string {
	names := make([]string, len(Steps))
	for i, s := range Steps {
		names[i] = s.String()
	}
	return names
}
