// Package listing parses the raw query parameters shared by every catalog
// listing endpoint: tri-state boolean filters, creation date ranges,
// whitelisted ordering keys and page/page_size handling.
package listing

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Estado selects which soft-delete view of the entity store a listing reads.
const (
	EstadoActivos    = ""           // default: deleted_at IS NULL
	EstadoEliminados = "eliminados" // only deleted_at IS NOT NULL
	EstadoTodos      = "todos"      // no deletion filter
)

const dateLayout = "2006-01-02"

// FieldError identifies which query parameter was malformed so handlers can
// return a per-field 400 response.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Bool interprets a boolean-valued filter parameter. An absent or empty
// parameter means "no filter", not "false"; "1" and "true" select true,
// anything else selects false.
func Bool(param string) *bool {
	if param == "" {
		return nil
	}
	v := param == "1" || strings.EqualFold(param, "true")
	return &v
}

// DateRange holds an inclusive created_at window. To is already pushed to
// end-of-day so `created_at <= To` includes the whole last day.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// ParseDateRange validates start_date / end_date parameters (YYYY-MM-DD).
// A malformed value yields a FieldError naming the offending parameter.
func ParseDateRange(startStr, endStr string) (DateRange, error) {
	var dr DateRange
	if startStr != "" {
		t, err := time.Parse(dateLayout, startStr)
		if err != nil {
			return dr, &FieldError{Field: "start_date", Message: "El formato de la fecha de inicio debe ser YYYY-MM-DD."}
		}
		dr.From = &t
	}
	if endStr != "" {
		t, err := time.Parse(dateLayout, endStr)
		if err != nil {
			return dr, &FieldError{Field: "end_date", Message: "El formato de la fecha de fin debe ser YYYY-MM-DD."}
		}
		// Inclusive upper bound: 23:59:59.999999 of the requested day.
		eod := t.Add(24*time.Hour - time.Microsecond)
		dr.To = &eod
	}
	return dr, nil
}

// Page holds validated pagination parameters.
type Page struct {
	Number int
	Size   int
}

// ParsePage applies the default page size (10) when the parameter is absent
// or non-numeric, and clamps to sane bounds.
func ParsePage(pageStr, sizeStr string, defaultSize, maxSize int) Page {
	if defaultSize <= 0 {
		defaultSize = 10
	}
	p := Page{Number: 1, Size: defaultSize}
	if n, err := strconv.Atoi(pageStr); err == nil && n >= 1 {
		p.Number = n
	}
	if s, err := strconv.Atoi(sizeStr); err == nil && s >= 1 {
		p.Size = s
	}
	if maxSize > 0 && p.Size > maxSize {
		p.Size = maxSize
	}
	return p
}

// Offset returns the row offset for the page given the final ordering.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// TotalPages computes the page count for a filtered total.
func (p Page) TotalPages(total int64) int {
	if p.Size <= 0 {
		return 0
	}
	pages := int((total + int64(p.Size) - 1) / int64(p.Size))
	if pages < 1 {
		pages = 1
	}
	return pages
}

// OrderClause resolves an ordering parameter against a per-entity whitelist
// of sortable keys (param key → column expression). A leading '-' selects
// descending order. Unknown or absent keys fall back to the entity default.
func OrderClause(param string, allowed map[string]string, fallback string) string {
	key := param
	desc := false
	if strings.HasPrefix(key, "-") {
		key = key[1:]
		desc = true
	}
	col, ok := allowed[key]
	if !ok || key == "" {
		return fallback
	}
	if desc {
		return col + " DESC"
	}
	return col + " ASC"
}
