package dto

// PerPage tamaño fijo de página en los listados.
const PerPage = 20

// PageRequest paginación por número de página para listados.
type PageRequest struct {
	Page int `query:"page"`
}

// Normalize aplica la página mínima.
func (p *PageRequest) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
}

// Limit devuelve el tamaño de página.
func (p PageRequest) Limit() int { return PerPage }

// Offset devuelve el desplazamiento según la página.
func (p PageRequest) Offset() int { return (p.Page - 1) * PerPage }

// PageResponse metadatos de página en respuestas de listado.
type PageResponse struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	Total   int `json:"total,omitempty"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
