package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ClientInfo campos de presentación del cliente que se adjuntan a
// consultas y reportes en las vistas admin (nunca incluye credenciales).
type ClientInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company,omitempty"`
}
