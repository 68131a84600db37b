package settings

import "codeberg.org/hearth/server/hearth/settings"

type SettingsResponse struct {
	Success bool              `json:"success"`
	Data    settings.Settings `json:"data"`
}
