package models

// DirectoryEntry is a named contact in the provider directory. The core
// only reads these rows; the admin CRUD surface owns their lifecycle.
type DirectoryEntry struct {
	BaseModel
	ProviderName string `json:"provider_name" gorm:"size:100;not null;uniqueIndex" validate:"required,max=100"`
	PhoneNumber  string `json:"phone_number" gorm:"size:40" validate:"max=40"`
	Specialty    string `json:"specialty" gorm:"size:100;index" validate:"max=100"`
}

// TableName returns the table name for DirectoryEntry
func (DirectoryEntry) TableName() string {
	return "directory_entries"
}
