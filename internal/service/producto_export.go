package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"catalogo/internal/dto"
	"catalogo/internal/repository"
)

// ProductoExportService builds the XLSX download of the filtered product
// listing.
type ProductoExportService interface {
	Exportar(ctx context.Context, f dto.ProductoFiltro) (*bytes.Buffer, string, error)
}

type productoExportService struct {
	repo repository.ProductoRepository
}

func NewProductoExportService(repo repository.ProductoRepository) ProductoExportService {
	return &productoExportService{repo: repo}
}

var exportHeaders = []string{
	"SKU", "Nombre", "Categoría", "Marca", "Tipo",
	"Precio base", "Precio costo", "Precio descuento", "Precio final",
	"Moneda", "Stock", "Stock mínimo", "Activo", "Publicado", "Creado",
}

func decCell(d *decimal.Decimal) interface{} {
	if d == nil {
		return ""
	}
	f, _ := d.Float64()
	return f
}

func boolCell(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}

func (s *productoExportService) Exportar(ctx context.Context, filtro dto.ProductoFiltro) (*bytes.Buffer, string, error) {
	productos, err := s.repo.ListForExport(ctx, filtro)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Productos"
	f.SetSheetName(f.GetSheetName(0), sheet)

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, "", err
		}
	}
	_ = f.SetColWidth(sheet, "A", "B", 28)
	_ = f.SetColWidth(sheet, "C", "O", 16)

	for row, p := range productos {
		sku := ""
		if p.SkuBase != nil {
			sku = *p.SkuBase
		}
		marca := ""
		if nombre := p.MarcaNombre(); nombre != nil {
			marca = *nombre
		}
		values := []interface{}{
			sku, p.Nombre, p.CategoriaNombre(), marca, p.TipoProducto,
			decCell(p.PrecioBase), decCell(p.PrecioCosto), decCell(p.PrecioDescuento), decCell(p.PrecioFinal()),
			p.Moneda, p.StockActual, p.StockMinimo,
			boolCell(p.Activo), boolCell(p.Publicado),
			p.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, "", err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("productos_%s.xlsx", time.Now().Format("20060102_150405"))
	return buf, filename, nil
}
