package models

// SpecialtyContact is a typed fallback contact for a specialty, one row
// per (specialty, role). It replaces the older convention of encoding
// these contacts as magic directory names like "Cardiology PA Phone".
type SpecialtyContact struct {
	BaseModel
	Specialty   string      `json:"specialty" gorm:"size:100;not null;uniqueIndex:idx_specialty_contacts_key" validate:"required,max=100"`
	Role        ContactRole `json:"role" gorm:"type:varchar(20);not null;uniqueIndex:idx_specialty_contacts_key" validate:"required"`
	PhoneNumber string      `json:"phone_number" gorm:"size:40" validate:"max=40"`
}

// TableName returns the table name for SpecialtyContact
func (SpecialtyContact) TableName() string {
	return "specialty_contacts"
}

// Label renders the legacy display form of the contact, e.g.
// "Cardiology PA Phone", used as the second-phone source in read results.
func (c *SpecialtyContact) Label() string {
	return c.Specialty + " " + c.Role.DisplayName()
}
