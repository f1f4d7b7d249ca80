package dto

// Mensaje estándar de las respuestas exitosas.
const MessageSuccess = "Success"

// Envelope sobre uniforme de todas las respuestas HTTP.
type Envelope struct {
	Status  int    `json:"status"`
	Data    any    `json:"data"`
	Message string `json:"message"`
}

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit" params:"limit" validate:"min=0,max=500"`
	Offset int `query:"offset" params:"offset" validate:"min=0"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero o negativos.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 10
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// ReferenceItemResponse entrada de un vocabulario de referencia.
type ReferenceItemResponse struct {
	ID          int64  `json:"id"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

// StatusResponse respuesta compuesta solo por un estado.
type StatusResponse struct {
	Status string `json:"status"`
}
