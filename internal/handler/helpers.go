package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"catalogo/internal/apierror"
	"catalogo/internal/config"
	"catalogo/internal/listing"
	"catalogo/internal/service"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	return runValidation(c, req)
}

// bindNormalized is bindAndValidate for the catalog write endpoints, which
// accept both the snake_case field names and the camelCase aliases the admin
// frontend sends. Aliased keys are renamed before binding; when both spellings
// arrive, snake_case wins.
func bindNormalized(c *gin.Context, req interface{}, renames map[string]string) bool {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	for camel, snake := range renames {
		v, ok := raw[camel]
		if !ok {
			continue
		}
		if _, dup := raw[snake]; !dup {
			raw[snake] = v
		}
		delete(raw, camel)
	}
	norm, err := json.Marshal(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := json.Unmarshal(norm, req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	return runValidation(c, req)
}

func runValidation(c *gin.Context, req interface{}) bool {
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// parseID reads the :id path parameter; writes the 400 response itself.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return uuid.Nil, false
	}
	return id, true
}

// respondError translates service-layer errors into HTTP responses.
func respondError(c *gin.Context, err error) {
	var campo *service.CampoInvalido
	if errors.As(err, &campo) {
		c.JSON(http.StatusBadRequest, apierror.NewFieldError(campo.Campo, campo.Mensaje))
		return
	}
	var param *listing.FieldError
	if errors.As(err, &param) {
		c.JSON(http.StatusBadRequest, apierror.NewFieldError(param.Field, param.Message))
		return
	}
	switch {
	case errors.Is(err, service.ErrNoEncontrado):
		c.JSON(http.StatusNotFound, apierror.New("Registro no encontrado"))
	case errors.Is(err, service.ErrYaEliminado):
		c.JSON(http.StatusBadRequest, apierror.New("El registro ya está eliminado"))
	case errors.Is(err, service.ErrNoEliminado):
		c.JSON(http.StatusBadRequest, apierror.New("El registro no está eliminado"))
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
	}
}

// listadoComun holds the query parameters every listing endpoint shares.
type listadoComun struct {
	Estado   string
	Search   string
	Ordering string
	Fechas   listing.DateRange
	Page     listing.Page
}

// parseListado reads estado/search/ordering/date-range/pagination from the
// query string; a malformed date writes the 400 response and returns false.
func parseListado(c *gin.Context, cfg *config.Config) (listadoComun, bool) {
	fechas, err := listing.ParseDateRange(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		respondError(c, err)
		return listadoComun{}, false
	}
	return listadoComun{
		Estado:   c.Query("estado"),
		Search:   c.Query("search"),
		Ordering: c.Query("ordering"),
		Fechas:   fechas,
		Page:     listing.ParsePage(c.Query("page"), c.Query("page_size"), cfg.PageSizeDefault, cfg.PageSizeMax),
	}, true
}
