package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBool_TriState(t *testing.T) {
	assert.Nil(t, Bool(""))

	v := Bool("1")
	require.NotNil(t, v)
	assert.True(t, *v)

	v = Bool("true")
	require.NotNil(t, v)
	assert.True(t, *v)

	v = Bool("0")
	require.NotNil(t, v)
	assert.False(t, *v)

	v = Bool("false")
	require.NotNil(t, v)
	assert.False(t, *v)
}

func TestParseDateRange_FinDeDiaInclusivo(t *testing.T) {
	dr, err := ParseDateRange("", "2024-01-15")
	require.NoError(t, err)
	require.NotNil(t, dr.To)

	// 2024-01-15T23:59:59 queda dentro del rango
	inside := time.Date(2024, 1, 15, 23, 59, 59, 0, time.UTC)
	assert.False(t, inside.After(*dr.To))

	// 2024-01-16T00:00:01 queda fuera
	outside := time.Date(2024, 1, 16, 0, 0, 1, 0, time.UTC)
	assert.True(t, outside.After(*dr.To))
}

func TestParseDateRange_FechaInvalida(t *testing.T) {
	_, err := ParseDateRange("15-01-2024", "")
	require.Error(t, err)
	fe, ok := err.(*FieldError)
	require.True(t, ok)
	assert.Equal(t, "start_date", fe.Field)

	_, err = ParseDateRange("", "2024-13-45")
	require.Error(t, err)
	fe, ok = err.(*FieldError)
	require.True(t, ok)
	assert.Equal(t, "end_date", fe.Field)
}

func TestParsePage_Defaults(t *testing.T) {
	p := ParsePage("", "", 10, 100)
	assert.Equal(t, 1, p.Number)
	assert.Equal(t, 10, p.Size)

	// page_size no numérico cae al default
	p = ParsePage("2", "abc", 10, 100)
	assert.Equal(t, 2, p.Number)
	assert.Equal(t, 10, p.Size)

	// límite superior
	p = ParsePage("1", "5000", 10, 100)
	assert.Equal(t, 100, p.Size)
}

func TestPage_OffsetYTotales(t *testing.T) {
	p := Page{Number: 3, Size: 10}
	assert.Equal(t, 20, p.Offset())
	assert.Equal(t, 5, p.TotalPages(42))
	assert.Equal(t, 1, p.TotalPages(0))
}

func TestOrderClause(t *testing.T) {
	allowed := map[string]string{"id": "id", "name": "name", "orden": "orden", "created_at": "created_at"}
	fallback := "orden ASC, name ASC, id DESC"

	assert.Equal(t, "name ASC", OrderClause("name", allowed, fallback))
	assert.Equal(t, "name DESC", OrderClause("-name", allowed, fallback))
	assert.Equal(t, fallback, OrderClause("", allowed, fallback))
	assert.Equal(t, fallback, OrderClause("precio", allowed, fallback))
}
