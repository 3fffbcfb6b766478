package repository

import (
	"strings"
	"time"

	"oncall-directory-backend/internal/database/models"
	"oncall-directory-backend/internal/scheduling"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AssignmentRepository handles database operations for schedule assignments
type AssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// planCondition appends the plan predicate for one key; a nil plan matches
// only rows where healthcare_plan IS NULL, never an empty-string plan.
func planCondition(query *gorm.DB, plan *string) *gorm.DB {
	if plan == nil {
		return query.Where("healthcare_plan IS NULL")
	}
	return query.Where("healthcare_plan = ?", *plan)
}

// GetByKey retrieves the assignment for one (date, specialty, plan) key
func (r *AssignmentRepository) GetByKey(date time.Time, specialty string, plan *string) (*models.ScheduleAssignment, error) {
	var assignment models.ScheduleAssignment
	query := r.db.Where("date = ? AND specialty = ?", scheduling.FormatDay(date), specialty)
	err := planCondition(query, plan).First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetByKeys retrieves the persisted rows for every given composite key in
// one batched read.
func (r *AssignmentRepository) GetByKeys(keys []scheduling.AssignmentKey) ([]models.ScheduleAssignment, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	conds := make([]string, 0, len(keys))
	args := make([]interface{}, 0, len(keys)*3)
	for _, k := range keys {
		if k.PlanSet {
			conds = append(conds, "(date = ? AND specialty = ? AND healthcare_plan = ?)")
			args = append(args, k.Date, k.Specialty, k.Plan)
		} else {
			conds = append(conds, "(date = ? AND specialty = ? AND healthcare_plan IS NULL)")
			args = append(args, k.Date, k.Specialty)
		}
	}

	var assignments []models.ScheduleAssignment
	err := r.db.Where(strings.Join(conds, " OR "), args...).Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

// ListByRange retrieves assignments for a specialty over an inclusive date
// range, filtered by plan with the same NULL semantics as GetByKey.
func (r *AssignmentRepository) ListByRange(from, to time.Time, specialty string, plan *string) ([]models.ScheduleAssignment, error) {
	var assignments []models.ScheduleAssignment
	query := r.db.
		Where("date >= ? AND date <= ?", scheduling.FormatDay(from), scheduling.FormatDay(to)).
		Order("date, specialty, healthcare_plan")
	if specialty != "" {
		query = query.Where("specialty = ?", specialty)
	}
	err := planCondition(query, plan).Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

// ListAllByRange retrieves assignments over an inclusive date range across
// every healthcare plan, optionally filtered by specialty. Used by the
// month export, which is not plan-keyed.
func (r *AssignmentRepository) ListAllByRange(from, to time.Time, specialty string) ([]models.ScheduleAssignment, error) {
	var assignments []models.ScheduleAssignment
	query := r.db.
		Where("date >= ? AND date <= ?", scheduling.FormatDay(from), scheduling.FormatDay(to)).
		Order("date, specialty, healthcare_plan")
	if specialty != "" {
		query = query.Where("specialty = ?", specialty)
	}
	err := query.Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

// Upsert writes an assignment, overwriting provider and preferences when a
// row already holds the (date, specialty, healthcare_plan) key. The
// conflict target is the key's unique index; an upsert never produces a
// second row for the same key.
func (r *AssignmentRepository) Upsert(assignment *models.ScheduleAssignment) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "date"}, {Name: "specialty"}, {Name: "healthcare_plan"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"provider_name",
			"second_phone_enabled",
			"second_phone_pref",
			"cover",
			"covering_provider",
			"updated_at",
		}),
	}).Create(assignment).Error
}

// Delete removes the row identified by (date, specialty, provider, plan).
// Deleting an absent row is not an error.
func (r *AssignmentRepository) Delete(date time.Time, specialty, providerName string, plan *string) error {
	query := r.db.Where("date = ? AND specialty = ? AND provider_name = ?",
		scheduling.FormatDay(date), specialty, providerName)
	return planCondition(query, plan).Delete(&models.ScheduleAssignment{}).Error
}
