package factory

import (
	"fmt"

	"github.com/galaplate/patterns/logger"
)

// Kind is the closed set of animals the dispatch function can build.
type Kind int

const (
	KindDog Kind = iota + 1
	KindCat
)

// Kinds lists every supported Kind.
var Kinds = [...]Kind{KindDog, KindCat}

func (k Kind) String() string {
	switch k {
	case KindDog:
		return "dog"
	case KindCat:
		return "cat"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a label such as "dog" to its Kind. Labels are case
// sensitive.
func ParseKind(label string) (Kind, error) {
	switch label {
	case "dog":
		return KindDog, nil
	case "cat":
		return KindCat, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, label)
	}
}

// Options carries the optional inputs of New. Human is the dog's owner and
// is ignored for cats; the zero value means no owner.
type Options struct {
	Human string
}

// New builds the Animal for kind.
func New(kind Kind, name string, opts Options) (Animal, error) {
	switch kind {
	case KindDog:
		return NewDog(name, opts.Human), nil
	case KindCat:
		return NewCat(name), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
}

// FactoryMethod builds an Animal from a text label. Any label other than
// "dog" or "cat" fails with ErrUnknownKind.
func FactoryMethod(label, name string, opts Options) (Animal, error) {
	kind, err := ParseKind(label)
	if err != nil {
		logger.Warn("Unknown animal label", map[string]any{"label": label, "name": name})
		return nil, err
	}

	logger.Debug("Creating animal", map[string]any{"kind": kind.String(), "name": name})
	return New(kind, name, opts)
}
