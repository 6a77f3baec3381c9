package dto

// UpdateSettingsRequest actualización parcial del singleton de configuración.
// nil = no tocar; presente (incluso vacío) = sobrescribir.
type UpdateSettingsRequest struct {
	HeaderText *string `json:"header_text"`
	FooterText *string `json:"footer_text"`
	Logo       *string `json:"logo"`
}

// SettingsResponse documento de configuración.
type SettingsResponse struct {
	ID         string `json:"id"`
	HeaderText string `json:"header_text"`
	FooterText string `json:"footer_text"`
	Logo       string `json:"logo,omitempty"`
}
