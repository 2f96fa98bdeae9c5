package slug

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func existsIn(taken ...string) ExistsFunc {
	set := make(map[string]bool, len(taken))
	for _, s := range taken {
		set[s] = true
	}
	return func(_ context.Context, s string) (bool, error) {
		return set[s], nil
	}
}

func TestMake(t *testing.T) {
	assert.Equal(t, "camiseta-deportiva", Make("Camiseta Deportiva"))
	assert.Equal(t, "categoria-electronica", Make("Categoría  Electrónica"))
	assert.Equal(t, "nino-bebe", Make("Niño & Bebé"))
	assert.Equal(t, "cafe-casa", Make("Café @ Casa"))
}

func TestUnique_SinColision(t *testing.T) {
	s, err := Unique(context.Background(), "Camiseta Deportiva", existsIn())
	require.NoError(t, err)
	assert.Equal(t, "camiseta-deportiva", s)
}

func TestUnique_SufijosIncrementales(t *testing.T) {
	s, err := Unique(context.Background(), "Camiseta", existsIn("camiseta"))
	require.NoError(t, err)
	assert.Equal(t, "camiseta-1", s)

	s, err = Unique(context.Background(), "Camiseta", existsIn("camiseta", "camiseta-1"))
	require.NoError(t, err)
	assert.Equal(t, "camiseta-2", s)
}

func TestUnique_Agotado(t *testing.T) {
	always := func(_ context.Context, _ string) (bool, error) { return true, nil }

	_, err := Unique(context.Background(), "Camiseta", always)
	assert.ErrorIs(t, err, ErrExhausted)
}
