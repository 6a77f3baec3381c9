package entity

// SettingsID identificador fijo del documento singleton de configuración.
const SettingsID = "app_settings"

// Settings documento único de configuración de la aplicación.
type Settings struct {
	ID         string `bson:"id" json:"id"`
	HeaderText string `bson:"header_text" json:"header_text"`
	FooterText string `bson:"footer_text" json:"footer_text"`
	Logo       string `bson:"logo,omitempty" json:"logo,omitempty"`
}

// SettingsPatch actualización parcial del singleton: nil no toca el campo,
// puntero presente sobrescribe (también con cadena vacía).
type SettingsPatch struct {
	HeaderText *string
	FooterText *string
	Logo       *string
}

// DefaultSettings valores iniciales del singleton, en el idioma del cliente desplegado.
func DefaultSettings() *Settings {
	return &Settings{
		ID:         SettingsID,
		HeaderText: "منطقة شرق الدلتا",
		FooterText: "تصميم مقدم د. / رامي ابو الذهب",
	}
}
