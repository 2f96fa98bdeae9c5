package service

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by every catalog service. Handlers translate them
// to HTTP statuses with errors.Is.
var (
	ErrNoEncontrado = errors.New("registro no encontrado")
	ErrYaEliminado  = errors.New("el registro ya está eliminado")
	ErrNoEliminado  = errors.New("el registro no está eliminado")
)

// CampoInvalido reports a business validation failure tied to one request
// field (duplicate names, inactive foreign keys, malformed values).
type CampoInvalido struct {
	Campo   string
	Mensaje string
}

func (e *CampoInvalido) Error() string {
	return fmt.Sprintf("%s: %s", e.Campo, e.Mensaje)
}

func campoInvalido(campo, mensaje string) error {
	return &CampoInvalido{Campo: campo, Mensaje: mensaje}
}
