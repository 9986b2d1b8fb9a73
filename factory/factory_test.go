package factory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactoryMethodCat(t *testing.T) {
	a, err := FactoryMethod("cat", "Whiskers", Options{})
	require.NoError(t, err)

	cat, ok := a.(*Cat)
	require.True(t, ok, "expected *Cat, got %T", a)
	assert.Equal(t, "Whiskers", cat.Name())
	assert.Equal(t, "I am a Cat so 'meoww'", a.MakeSound())
	assert.Equal(t, "I can go out alone.", a.GoOut())
}

func TestFactoryMethodCatIgnoresHuman(t *testing.T) {
	a, err := FactoryMethod("cat", "Whiskers", Options{Human: "Ann"})
	require.NoError(t, err)
	assert.Equal(t, "I can go out alone.", a.GoOut())
}

func TestFactoryMethodDog(t *testing.T) {
	a, err := FactoryMethod("dog", "Rex", Options{Human: "Ann"})
	require.NoError(t, err)

	dog, ok := a.(*Dog)
	require.True(t, ok, "expected *Dog, got %T", a)
	assert.Equal(t, "Rex", dog.Name())
	assert.Equal(t, "Ann", dog.Human())
	assert.Equal(t, "I am a Dog so barff", a.MakeSound())
	assert.Contains(t, a.GoOut(), "Ann")
	assert.Equal(t, "I need to ask to my Ann to go out.", a.GoOut())
}

func TestFactoryMethodDogWithoutHuman(t *testing.T) {
	a, err := FactoryMethod("dog", "Rex", Options{})
	require.NoError(t, err)
	assert.Equal(t, "I need to ask to go out.", a.GoOut())
}

func TestFactoryMethodUnknownLabel(t *testing.T) {
	for _, label := range []string{"bird", "", "Dog", "cats"} {
		a, err := FactoryMethod(label, "Tweety", Options{})
		assert.Nil(t, a, label)
		require.Error(t, err, label)
		assert.True(t, errors.Is(err, ErrUnknownKind), label)
	}
}

func TestNewCoversEveryKind(t *testing.T) {
	for _, k := range Kinds {
		a, err := New(k, "x", Options{})
		require.NoError(t, err, k.String())
		assert.NotNil(t, a)

		parsed, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}

	_, err := New(Kind(0), "x", Options{})
	assert.True(t, errors.Is(err, ErrUnknownKind))
	assert.Equal(t, "Kind(0)", Kind(0).String())
}

func TestCreators(t *testing.T) {
	dog := NewDogFactory("Rex", "Ann").CreateAnimal()
	require.IsType(t, &Dog{}, dog)
	assert.Equal(t, "Rex", dog.Name())
	assert.Equal(t, "I am a Dog so barff", dog.MakeSound())
	assert.Equal(t, "I need to ask to my Ann to go out.", dog.GoOut())

	cat := NewCatFactory("Milo").CreateAnimal()
	require.IsType(t, &Cat{}, cat)
	assert.Equal(t, "Milo", cat.Name())
	assert.Equal(t, "I am a Cat so 'meoww'", cat.MakeSound())
}

func TestCreatorsReturnFreshProducts(t *testing.T) {
	f := NewCatFactory("Milo")
	assert.NotSame(t, f.CreateAnimal(), f.CreateAnimal())
}

func TestMakeAnimalSpeak(t *testing.T) {
	assert.Equal(t, "I am a Dog so barff", MakeAnimalSpeak(NewDogFactory("Billy", "John")))
	assert.Equal(t, "I am a Cat so 'meoww'", MakeAnimalSpeak(NewCatFactory("Milo")))
}

func TestRegistry(t *testing.T) {
	r := NewRegistry("dog")

	_, err := r.Default()
	assert.True(t, errors.Is(err, ErrCreatorNotFound))

	dogs := NewDogFactory("Billy", "John")
	cats := NewCatFactory("Milo")
	r.Register("dog", dogs)
	r.Register("cat", cats)

	c, err := r.Default()
	require.NoError(t, err)
	assert.Same(t, dogs, c)

	require.NoError(t, r.SetDefault("cat"))
	c, err = r.Default()
	require.NoError(t, err)
	assert.Same(t, cats, c)

	err = r.SetDefault("bird")
	assert.True(t, errors.Is(err, ErrCreatorNotFound))

	c, err = r.Default()
	require.NoError(t, err)
	assert.Same(t, cats, c, "failed SetDefault must keep the previous default")

	assert.Equal(t, []string{"cat", "dog"}, r.Names())
}
