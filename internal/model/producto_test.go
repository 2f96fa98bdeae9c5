package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestProducto_PrecioFinal(t *testing.T) {
	p := Producto{PrecioBase: dec("100.00")}
	require.NotNil(t, p.PrecioFinal())
	assert.True(t, p.PrecioFinal().Equal(decimal.RequireFromString("100.00")))

	p.PrecioDescuento = dec("80.00")
	assert.True(t, p.PrecioFinal().Equal(decimal.RequireFromString("80.00")))

	vacio := Producto{}
	assert.Nil(t, vacio.PrecioFinal())
}

func TestProducto_TieneDescuento(t *testing.T) {
	p := Producto{PrecioBase: dec("100.00"), PrecioDescuento: dec("80.00")}
	assert.True(t, p.TieneDescuento())

	// descuento igual al precio base no cuenta como descuento
	p.PrecioDescuento = dec("100.00")
	assert.False(t, p.TieneDescuento())

	p.PrecioDescuento = nil
	assert.False(t, p.TieneDescuento())

	sinBase := Producto{PrecioDescuento: dec("80.00")}
	assert.False(t, sinBase.TieneDescuento())
}

func TestProducto_Margenes(t *testing.T) {
	p := Producto{PrecioBase: dec("100.00"), PrecioCosto: dec("60.00")}

	margen := p.MargenGanancia()
	require.NotNil(t, margen)
	assert.True(t, margen.Equal(decimal.RequireFromString("40.00")))

	pct := p.PorcentajeGanancia()
	require.NotNil(t, pct)
	assert.Equal(t, "66.67", pct.StringFixed(2))
}

func TestProducto_Margenes_SinDatos(t *testing.T) {
	assert.Nil(t, (&Producto{PrecioBase: dec("100.00")}).MargenGanancia())
	assert.Nil(t, (&Producto{PrecioCosto: dec("60.00")}).MargenGanancia())

	costoCero := Producto{PrecioBase: dec("100.00"), PrecioCosto: dec("0")}
	assert.Nil(t, costoCero.PorcentajeGanancia())
}

func TestProducto_Volumen(t *testing.T) {
	p := Producto{Largo: dec("10"), Ancho: dec("5"), Alto: dec("2")}
	v := p.Volumen()
	require.NotNil(t, v)
	assert.True(t, v.Equal(decimal.NewFromInt(100)))

	p.Alto = nil
	assert.Nil(t, p.Volumen())
}

func TestProducto_Stock(t *testing.T) {
	p := Producto{StockActual: 5, StockMinimo: 10}
	assert.True(t, p.TieneStock())
	assert.True(t, p.StockBajo())

	p.StockActual = 11
	assert.False(t, p.StockBajo())

	p.StockActual = 0
	assert.False(t, p.TieneStock())
	assert.True(t, p.StockBajo())
}

func TestProducto_MarkDeleted_Restore(t *testing.T) {
	p := Producto{Activo: true, Publicado: true}
	now := time.Now()

	p.MarkDeleted(now)
	assert.True(t, p.IsDeleted())
	assert.False(t, p.Activo)
	assert.False(t, p.Publicado)

	p.Restore()
	assert.False(t, p.IsDeleted())
	assert.True(t, p.Activo)
	// restaurar no vuelve a publicar
	assert.False(t, p.Publicado)
}
