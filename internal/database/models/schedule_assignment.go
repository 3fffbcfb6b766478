package models

import (
	"time"
)

// ScheduleAssignment records that a provider is on call for a specialty
// (and healthcare plan, when the specialty requires one) on a calendar day.
// At most one row exists per (date, specialty, healthcare_plan); the
// composite key is the identity of the fact, not the row id. The unique
// index is created with NULLS NOT DISTINCT so a missing plan still
// participates in the key (see database.Initialize).
type ScheduleAssignment struct {
	BaseModel
	Date               time.Time       `json:"date" gorm:"type:date;not null;index" validate:"required"`
	Specialty          string          `json:"specialty" gorm:"size:100;not null;index" validate:"required,max=100"`
	HealthcarePlan     *string         `json:"healthcare_plan,omitempty" gorm:"size:100"`
	ProviderName       string          `json:"provider_name" gorm:"size:100;not null" validate:"required,max=100"`
	SecondPhoneEnabled bool            `json:"second_phone_enabled" gorm:"default:false"`
	SecondPhonePref    SecondPhonePref `json:"second_phone_pref" gorm:"type:varchar(20);default:'auto'"`
	Cover              bool            `json:"cover" gorm:"default:false"`
	CoveringProvider   *string         `json:"covering_provider,omitempty" gorm:"size:100"`
}

// TableName returns the table name for ScheduleAssignment
func (ScheduleAssignment) TableName() string {
	return "schedule_assignments"
}
