package models

// SecondPhonePref selects which fallback contact the resolver tries first
type SecondPhonePref string

const (
	SecondPhonePrefAuto      SecondPhonePref = "auto"
	SecondPhonePrefPA        SecondPhonePref = "pa"
	SecondPhonePrefResidency SecondPhonePref = "residency"
)

// IsValid checks if the SecondPhonePref is valid
func (p SecondPhonePref) IsValid() bool {
	switch p {
	case SecondPhonePrefAuto, SecondPhonePrefPA, SecondPhonePrefResidency:
		return true
	}
	return false
}

// ContactRole identifies a specialty-level fallback contact
type ContactRole string

const (
	ContactRolePA        ContactRole = "pa"
	ContactRoleResidency ContactRole = "residency"
)

// IsValid checks if the ContactRole is valid
func (r ContactRole) IsValid() bool {
	switch r {
	case ContactRolePA, ContactRoleResidency:
		return true
	}
	return false
}

// DisplayName returns the label shown to callers for this role
func (r ContactRole) DisplayName() string {
	switch r {
	case ContactRolePA:
		return "PA Phone"
	case ContactRoleResidency:
		return "Residency"
	}
	return string(r)
}

// SpecialtyInternalMedicine is the only specialty whose assignments are
// keyed by healthcare plan in addition to date and specialty.
const SpecialtyInternalMedicine = "Internal Medicine"

// SpecialtyRequiresPlan reports whether assignments for the specialty
// must carry a healthcare plan
func SpecialtyRequiresPlan(specialty string) bool {
	return specialty == SpecialtyInternalMedicine
}
