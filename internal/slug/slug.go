// Package slug derives URL-safe unique identifiers from display names.
// Every catalog entity that carries a slug column (atributos, marcas,
// categorias, subcategorias, productos) goes through this package so the
// normalization and collision-probe rules stay in one place.
package slug

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gosimple "github.com/gosimple/slug"
)

// gosimple spells out connector glyphs as English words ("&" → "and",
// "@" → "at"); the catalog treats them as punctuation and collapses them
// to hyphens instead.
var connectorGlyphs = strings.NewReplacer("&", " ", "@", " ")

// maxAttempts bounds the collision probe. The loop normally terminates after
// one or two probes; the ceiling guards against pathological data sets.
const maxAttempts = 1000

// ErrExhausted is returned when no free slug could be found within the
// attempt ceiling. Callers should surface it as a validation error.
var ErrExhausted = errors.New("no se pudo generar un slug único")

// ExistsFunc reports whether a slug is already taken. Implementations must
// check ALL records of the entity type — active and soft-deleted — excluding
// the record currently being saved; the slug column carries a global unique
// constraint and slugs are never recycled while the deleted row exists.
type ExistsFunc func(ctx context.Context, slug string) (bool, error)

// Make normalizes a display name into its base slug: lowercase, accents
// stripped, whitespace and punctuation collapsed to single hyphens.
func Make(name string) string {
	return gosimple.Make(connectorGlyphs.Replace(name))
}

// Unique derives the base slug from name and probes for collisions,
// appending -1, -2, … until a free slug is found.
func Unique(ctx context.Context, name string, exists ExistsFunc) (string, error) {
	base := Make(name)
	candidate := base
	for i := 1; i <= maxAttempts; i++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	return "", ErrExhausted
}
