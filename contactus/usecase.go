package contactus

import (
	"context"
	"strings"
	"time"

	"sapientdcs/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidRecordID = errs.Errorf(errs.EINVALID, "contactus: invalid record id")
	ErrRecordNotFound  = errs.Errorf(errs.ENOTFOUND, "contactus: record not found")
)

// Outcome is the result of validating a submission.
type Outcome struct {
	Valid                              bool        `json:"valid"`
	ContactDataValid                   bool        `json:"contactDataValid"`
	ContactDataValidForExistingAccount bool        `json:"contactDataValidForExistingAccount"`
	Violations                         []Violation `json:"violations"`
}

// Messages returns the violation messages of the outcome.
func (o Outcome) Messages() []string {
	messages := make([]string, len(o.Violations))
	for i, v := range o.Violations {
		messages[i] = v.Message
	}
	return messages
}

// Record is a received submission together with its validation outcome.
type Record struct {
	ID         string     `json:"id"`
	ReceivedAt time.Time  `json:"receivedAt"`
	Submission Submission `json:"submission"`
	Outcome    Outcome    `json:"outcome"`
	PhoneE164  string     `json:"phoneE164,omitempty"`
}

// Evaluate validates s and collects the outcome.
func Evaluate(s *Submission) Outcome {
	valid := s.Validate()
	return Outcome{
		Valid:                              valid,
		ContactDataValid:                   s.IsContactDataValid(),
		ContactDataValidForExistingAccount: s.IsContactDataValidForExistingAccount(),
		Violations:                         s.Violations(),
	}
}

type Service interface {
	Check(ctx context.Context, s Submission) Outcome
	Submit(ctx context.Context, s Submission) (Record, error)
	ListRecords(ctx context.Context) ([]Record, error)
	GetRecord(ctx context.Context, id string) (Record, error)
}

type Repository interface {
	CreateRecord(ctx context.Context, r Record) error
	AllRecords(ctx context.Context) ([]Record, error)
	GetRecord(ctx context.Context, id string) (Record, error)
}

type Usecase struct {
	r     Repository
	now   func() time.Time
	newID func() string
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{
		r:     r,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

func (uc *Usecase) Check(_ context.Context, s Submission) Outcome {
	return Evaluate(&s)
}

// Submit validates s and stores it with its outcome. Invalid submissions are
// stored too; the caller decides from the outcome whether to map them.
func (uc *Usecase) Submit(ctx context.Context, s Submission) (Record, error) {
	outcome := Evaluate(&s)
	r := Record{
		ID:         uc.newID(),
		ReceivedAt: uc.now().UTC(),
		Submission: s,
		Outcome:    outcome,
	}
	if e164, ok := FormatE164(s.ContactPrimaryPhoneNumber, s.Locale); ok {
		r.PhoneE164 = e164
	}

	if err := uc.r.CreateRecord(ctx, r); err != nil {
		return Record{}, err
	}
	return r, nil
}

func (uc *Usecase) ListRecords(ctx context.Context) ([]Record, error) {
	return uc.r.AllRecords(ctx)
}

func (uc *Usecase) GetRecord(ctx context.Context, id string) (Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Record{}, ErrInvalidRecordID
	}
	return uc.r.GetRecord(ctx, id)
}
