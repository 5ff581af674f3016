package models

// Category is reference data for classifying discretionary spend.
type Category struct {
	ID   string `gorm:"primaryKey" json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}
