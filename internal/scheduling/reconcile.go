package scheduling

import (
	"time"

	"oncall-directory-backend/internal/database/models"
)

// StagedEntry is a client-held intent to place a provider on call for a
// key; it carries the same fields as a persisted assignment but has no
// identity beyond its composite key.
type StagedEntry struct {
	Date               time.Time
	Specialty          string
	HealthcarePlan     *string
	ProviderName       string
	SecondPhoneEnabled bool
	SecondPhonePref    models.SecondPhonePref
	Cover              bool
	CoveringProvider   *string
}

// StagedDeletion is a client-held intent to remove a provider's row for a key.
type StagedDeletion struct {
	Date           time.Time
	Specialty      string
	HealthcarePlan *string
	ProviderName   string
}

// AssignmentKey is the comparable composite identity of a schedule fact.
// PlanSet distinguishes "no plan" from an empty-string plan; the two must
// never match the same rows.
type AssignmentKey struct {
	Date      string
	Specialty string
	Plan      string
	PlanSet   bool
}

// RowKey extends AssignmentKey with the provider name, identifying one
// concrete row for dedup and delete-wins checks.
type RowKey struct {
	AssignmentKey
	Provider string
}

func keyOf(date time.Time, specialty string, plan *string) AssignmentKey {
	k := AssignmentKey{Date: FormatDay(date), Specialty: specialty}
	if plan != nil {
		k.Plan = *plan
		k.PlanSet = true
	}
	return k
}

// Key returns the composite key of the staged entry
func (e *StagedEntry) Key() AssignmentKey {
	return keyOf(e.Date, e.Specialty, e.HealthcarePlan)
}

// RowKey returns the row identity of the staged entry
func (e *StagedEntry) RowKey() RowKey {
	return RowKey{AssignmentKey: e.Key(), Provider: e.ProviderName}
}

// Key returns the composite key of the staged deletion
func (d *StagedDeletion) Key() AssignmentKey {
	return keyOf(d.Date, d.Specialty, d.HealthcarePlan)
}

// RowKey returns the row identity of the staged deletion
func (d *StagedDeletion) RowKey() RowKey {
	return RowKey{AssignmentKey: d.Key(), Provider: d.ProviderName}
}

// OpKind tags a planned operation
type OpKind string

const (
	OpInsert OpKind = "insert"
	OpUpdate OpKind = "update"
	OpRename OpKind = "rename"
	OpDelete OpKind = "delete"
)

// Operation is one planned write. A rename carries the outgoing provider
// name and structurally implies deleting the old row before upserting the
// new one; the ordering rule is part of the type, not a convention callers
// must remember.
type Operation struct {
	Kind        OpKind
	Entry       *StagedEntry    // set for insert, update, rename
	Deletion    *StagedDeletion // set for delete
	OldProvider string          // set for rename
}

// Plan is the minimal, conflict-free write-set for one reconciliation batch.
type Plan struct {
	Operations []Operation
}

// Empty reports whether the plan contains no work
func (p *Plan) Empty() bool {
	return len(p.Operations) == 0
}

// Deletions returns every row removal in the plan: explicit staged
// deletions plus the old-provider rows implied by renames. These must be
// applied before any upsert so the unique key index is never transiently
// violated.
func (p *Plan) Deletions() []StagedDeletion {
	var out []StagedDeletion
	for _, op := range p.Operations {
		switch op.Kind {
		case OpDelete:
			out = append(out, *op.Deletion)
		case OpRename:
			out = append(out, StagedDeletion{
				Date:           op.Entry.Date,
				Specialty:      op.Entry.Specialty,
				HealthcarePlan: op.Entry.HealthcarePlan,
				ProviderName:   op.OldProvider,
			})
		}
	}
	return out
}

// Upserts returns every insert/update/rename target in the plan, to be
// applied after all deletions.
func (p *Plan) Upserts() []StagedEntry {
	var out []StagedEntry
	for _, op := range p.Operations {
		switch op.Kind {
		case OpInsert, OpUpdate, OpRename:
			out = append(out, *op.Entry)
		}
	}
	return out
}

// BuildPlan diffs staged edits against the persisted rows for the touched
// keys and computes the minimal write-set:
//
//   - explicit deletions are authoritative and always emitted;
//   - staged entries are deduplicated by (date, provider, specialty, plan);
//   - an entry whose row is also slated for deletion in the same batch is
//     dropped (delete wins over a same-batch write of the identical fact);
//   - an entry matching the persisted row field-for-field is a no-op;
//   - a provider change on an occupied key becomes a rename, unless an
//     equivalent deletion of the old row is already staged, in which case a
//     plain update suffices;
//   - any other field drift on an occupied key is an update in place.
//
// The planner is pure: it issues no I/O and callers fetch persisted rows in
// one batched read beforehand.
func BuildPlan(staged []StagedEntry, deletions []StagedDeletion, persisted []models.ScheduleAssignment) Plan {
	var ops []Operation

	deleted := make(map[RowKey]bool, len(deletions))
	for i := range deletions {
		d := deletions[i]
		rk := d.RowKey()
		if deleted[rk] {
			continue
		}
		deleted[rk] = true
		ops = append(ops, Operation{Kind: OpDelete, Deletion: &d})
	}

	byKey := make(map[AssignmentKey]models.ScheduleAssignment, len(persisted))
	for _, row := range persisted {
		byKey[keyOf(row.Date, row.Specialty, row.HealthcarePlan)] = row
	}

	seen := make(map[RowKey]bool, len(staged))
	for i := range staged {
		e := staged[i]
		rk := e.RowKey()
		if seen[rk] {
			continue
		}
		seen[rk] = true
		if deleted[rk] {
			continue
		}

		current, exists := byKey[e.Key()]
		switch {
		case !exists:
			ops = append(ops, Operation{Kind: OpInsert, Entry: &e})
		case satisfiedBy(&current, &e):
			// already persisted as staged; skip the write
		case current.ProviderName != e.ProviderName:
			oldRow := RowKey{AssignmentKey: e.Key(), Provider: current.ProviderName}
			if deleted[oldRow] {
				ops = append(ops, Operation{Kind: OpUpdate, Entry: &e})
			} else {
				ops = append(ops, Operation{Kind: OpRename, Entry: &e, OldProvider: current.ProviderName})
			}
		default:
			// same provider, changed preferences: update only, no implicit delete
			ops = append(ops, Operation{Kind: OpUpdate, Entry: &e})
		}
	}

	return Plan{Operations: ops}
}

// TouchedKeys collects the distinct composite keys referenced by a batch,
// in first-seen order, for the single batched read of persisted rows.
func TouchedKeys(staged []StagedEntry, deletions []StagedDeletion) []AssignmentKey {
	seen := make(map[AssignmentKey]bool, len(staged)+len(deletions))
	var keys []AssignmentKey
	add := func(k AssignmentKey) {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	for i := range staged {
		add(staged[i].Key())
	}
	for i := range deletions {
		add(deletions[i].Key())
	}
	return keys
}

// satisfiedBy reports whether the persisted row already states the staged
// fact, provider and preferences included.
func satisfiedBy(row *models.ScheduleAssignment, e *StagedEntry) bool {
	return row.ProviderName == e.ProviderName &&
		row.SecondPhoneEnabled == e.SecondPhoneEnabled &&
		row.SecondPhonePref == e.SecondPhonePref &&
		row.Cover == e.Cover &&
		equalOptional(row.CoveringProvider, e.CoveringProvider)
}

func equalOptional(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
