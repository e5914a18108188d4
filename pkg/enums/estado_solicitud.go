package enums

import "fmt"

// EstadoSolicitud tracks a one-time special price request.
type EstadoSolicitud string

const (
	EstadoSolicitudPendiente EstadoSolicitud = "PENDIENTE"
	EstadoSolicitudAprobada  EstadoSolicitud = "APROBADA"
	EstadoSolicitudRechazada EstadoSolicitud = "RECHAZADA"
)

var validEstadosSolicitud = []EstadoSolicitud{
	EstadoSolicitudPendiente,
	EstadoSolicitudAprobada,
	EstadoSolicitudRechazada,
}

// String implements fmt.Stringer.
func (e EstadoSolicitud) String() string {
	return string(e)
}

// IsValid reports whether the value is a known EstadoSolicitud.
func (e EstadoSolicitud) IsValid() bool {
	for _, candidate := range validEstadosSolicitud {
		if candidate == e {
			return true
		}
	}
	return false
}

// ParseEstadoSolicitud converts raw input into an EstadoSolicitud.
func ParseEstadoSolicitud(value string) (EstadoSolicitud, error) {
	for _, candidate := range validEstadosSolicitud {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid estado de solicitud %q", value)
}
