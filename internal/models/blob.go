package models

import "gorm.io/datatypes"

// StateBlob stores snapshot sections the backend does not model
// (settings, investments) so they round-trip through import/export verbatim.
type StateBlob struct {
	Key  string         `gorm:"primaryKey" json:"key"`
	Data datatypes.JSON `json:"data"`
}
