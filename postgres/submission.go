package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"sapientdcs/contactus"

	"gorm.io/gorm"
)

// SubmissionModel is a stored submission. The full submission is kept in
// Payload; the columns beside it are the ones queried by downstream jobs.
type SubmissionModel struct {
	ID                                 string    `gorm:"primaryKey;type:uuid"`
	ReceivedAt                         time.Time `gorm:"not null"`
	Brand                              string
	Locale                             string
	ContactEmail                       string
	ContactFamilyName                  string
	PhoneE164                          string `gorm:"column:phone_e164"`
	Valid                              bool
	ContactDataValid                   bool
	ContactDataValidForExistingAccount bool
	Payload                            string           `gorm:"type:jsonb;not null"`
	Violations                         []ViolationModel `gorm:"foreignKey:SubmissionID"`
}

func (SubmissionModel) TableName() string {
	return "submissions"
}

type ViolationModel struct {
	ID           uint   `gorm:"primaryKey"`
	SubmissionID string `gorm:"type:uuid;not null"`
	Position     int    `gorm:"not null"`
	Field        string `gorm:"not null"`
	Target       string `gorm:"not null"`
	Message      string `gorm:"not null"`
}

func (ViolationModel) TableName() string {
	return "submission_violations"
}

// SubmissionRepository implements contactus.Repository on postgres.
type SubmissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) CreateRecord(ctx context.Context, rec contactus.Record) error {
	model, err := toSubmissionModel(rec)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return fmt.Errorf("postgres: create submission: %w", err)
	}
	return nil
}

func (r *SubmissionRepository) AllRecords(ctx context.Context) ([]contactus.Record, error) {
	var models []SubmissionModel
	err := r.db.WithContext(ctx).
		Preload("Violations", orderByPosition).
		Order("received_at").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("postgres: list submissions: %w", err)
	}

	records := make([]contactus.Record, len(models))
	for i, model := range models {
		rec, err := model.toRecord()
		if err != nil {
			return nil, err
		}
		records[i] = rec
	}
	return records, nil
}

func (r *SubmissionRepository) GetRecord(ctx context.Context, id string) (contactus.Record, error) {
	var model SubmissionModel
	err := r.db.WithContext(ctx).
		Preload("Violations", orderByPosition).
		Where("id = ?", id).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return contactus.Record{}, contactus.ErrRecordNotFound
	}
	if err != nil {
		return contactus.Record{}, fmt.Errorf("postgres: get submission: %w", err)
	}
	return model.toRecord()
}

func orderByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}

func toSubmissionModel(rec contactus.Record) (SubmissionModel, error) {
	payload, err := json.Marshal(rec.Submission)
	if err != nil {
		return SubmissionModel{}, fmt.Errorf("postgres: marshal submission: %w", err)
	}

	model := SubmissionModel{
		ID:                                 rec.ID,
		ReceivedAt:                         rec.ReceivedAt,
		Brand:                              rec.Submission.Brand,
		Locale:                             rec.Submission.Locale,
		ContactEmail:                       rec.Submission.ContactEmail,
		ContactFamilyName:                  rec.Submission.ContactFamilyName,
		PhoneE164:                          rec.PhoneE164,
		Valid:                              rec.Outcome.Valid,
		ContactDataValid:                   rec.Outcome.ContactDataValid,
		ContactDataValidForExistingAccount: rec.Outcome.ContactDataValidForExistingAccount,
		Payload:                            string(payload),
		Violations:                         make([]ViolationModel, len(rec.Outcome.Violations)),
	}
	for i, v := range rec.Outcome.Violations {
		model.Violations[i] = ViolationModel{
			Position: i,
			Field:    string(v.Field),
			Target:   string(v.Target),
			Message:  v.Message,
		}
	}
	return model, nil
}

func (m SubmissionModel) toRecord() (contactus.Record, error) {
	var s contactus.Submission
	if err := json.Unmarshal([]byte(m.Payload), &s); err != nil {
		return contactus.Record{}, fmt.Errorf("postgres: unmarshal submission %s: %w", m.ID, err)
	}

	violations := make([]contactus.Violation, len(m.Violations))
	for i, v := range m.Violations {
		violations[i] = contactus.Violation{
			Field:   contactus.Field(v.Field),
			Target:  contactus.Target(v.Target),
			Message: v.Message,
		}
	}

	return contactus.Record{
		ID:         m.ID,
		ReceivedAt: m.ReceivedAt,
		Submission: s,
		PhoneE164:  m.PhoneE164,
		Outcome: contactus.Outcome{
			Valid:                              m.Valid,
			ContactDataValid:                   m.ContactDataValid,
			ContactDataValidForExistingAccount: m.ContactDataValidForExistingAccount,
			Violations:                         violations,
		},
	}, nil
}
