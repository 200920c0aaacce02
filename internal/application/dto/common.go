package dto

// Categorías de mensaje que la UI usa para renderizar el aviso (estilo flash).
const (
	CategorySuccess = "success"
	CategoryWarning = "warning"
	CategoryDanger  = "danger"
	CategoryInfo    = "info"
)

// ErrorResponse cuerpo de error HTTP. Category le dice a la UI cómo
// presentar el mensaje junto a la redirección al listado correspondiente.
type ErrorResponse struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Category string `json:"category"`
}

// MessageResponse cuerpo de confirmación para operaciones sin payload.
type MessageResponse struct {
	Message  string `json:"message"`
	Category string `json:"category"`
}
