package render

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/require"
)

func TestRegistriesAreIsolated(t *testing.T) {
	a := NewRegistry()
	b := NewRegistry()

	img := ebiten.NewImage(2, 2)
	a.Register("ball", img)
	a.Register("", img)
	a.Register("nil", nil)

	require.Same(t, img, a.Image("ball"))
	require.Nil(t, b.Image("ball"))
	require.Equal(t, 1, a.Len())
	require.Equal(t, 0, b.Len())

	var unset *Registry
	require.Nil(t, unset.Image("ball"))
}

func TestLoadSprite(t *testing.T) {
	r := NewRegistry()

	s, err := r.LoadSprite("png/paddleBlu.png")
	require.NoError(t, err)
	require.Equal(t, "png/paddleBlu.png", s.Image)
	require.Equal(t, 104.0, s.Width)
	require.Equal(t, 24.0, s.Height)

	again, err := r.LoadSprite("png/paddleBlu.png")
	require.NoError(t, err)
	require.Equal(t, s, again)
	require.Equal(t, 1, r.Len())

	require.Nil(t, NewRegistry().Image("png/paddleBlu.png"))

	_, err = r.LoadSprite("png/missing.png")
	require.Error(t, err)
	_, err = r.LoadSprite("")
	require.Error(t, err)
	require.Equal(t, 1, r.Len())
}
