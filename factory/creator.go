package factory

// Creator produces one concrete kind of Animal.
type Creator interface {
	CreateAnimal() Animal
}

var (
	_ Creator = (*DogFactory)(nil)
	_ Creator = (*CatFactory)(nil)
)

// MakeAnimalSpeak creates an animal with c and returns its sound.
func MakeAnimalSpeak(c Creator) string {
	return c.CreateAnimal().MakeSound()
}

type DogFactory struct {
	Name  string
	Human string
}

func NewDogFactory(name, human string) *DogFactory {
	return &DogFactory{Name: name, Human: human}
}

func (f *DogFactory) CreateAnimal() Animal {
	return NewDog(f.Name, f.Human)
}

type CatFactory struct {
	Name string
}

func NewCatFactory(name string) *CatFactory {
	return &CatFactory{Name: name}
}

func (f *CatFactory) CreateAnimal() Animal {
	return NewCat(f.Name)
}
