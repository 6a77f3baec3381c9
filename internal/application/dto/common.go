package dto

// ErrorResponse cuerpo de error HTTP. Message va en el idioma del cliente.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse confirmación sin payload (borrados, cambios de rol, etc.).
type MessageResponse struct {
	Message string `json:"message"`
}
