package httpserver

import (
	"time"

	"sapientdcs/contactus"
)

// SubmissionRequest is a Contact Us record as pushed by the DCS service:
// the flat schema fields plus the typed phone number list.
type SubmissionRequest struct {
	contactus.Submission
	PhoneNumbers []PhoneNumberRequest `json:"phoneNumber" validate:"max=20,dive"`
}

type PhoneNumberRequest struct {
	Type  string `json:"type" validate:"max=40"`
	Value string `json:"value" validate:"max=255"`
	Ext   string `json:"ext" validate:"max=40"`
}

// ToSubmission fills the phone fields from the phone number list. Flat
// phone fields sent by the caller are kept when the list has no match.
func (r SubmissionRequest) ToSubmission() contactus.Submission {
	s := r.Submission

	entries := make([]contactus.PhoneEntry, len(r.PhoneNumbers))
	for i, p := range r.PhoneNumbers {
		entries[i] = contactus.PhoneEntry{Type: p.Type, Value: p.Value, Ext: p.Ext}
	}
	if len(entries) == 0 {
		return s
	}

	if phone, ok := contactus.SelectPhone(entries); ok {
		s.ContactPrimaryPhoneNumber = phone.Value
		s.ContactPrimaryPhoneNumberExt = phone.Ext
	}
	if mobile, ok := contactus.SelectMobile(entries); ok {
		s.ContactMobilePhoneNumber = mobile.Value
	}
	return s
}

type GetSubmissionRequest struct {
	ID string `param:"id" json:"id" validate:"required,uuid"`
}

type OutcomeResponse struct {
	Valid                              bool                  `json:"valid"`
	ContactDataValid                   bool                  `json:"contactDataValid"`
	ContactDataValidForExistingAccount bool                  `json:"contactDataValidForExistingAccount"`
	Messages                           []string              `json:"messages"`
	Violations                         []contactus.Violation `json:"violations"`
}

func newOutcomeResponse(o contactus.Outcome) OutcomeResponse {
	violations := o.Violations
	if violations == nil {
		violations = []contactus.Violation{}
	}
	return OutcomeResponse{
		Valid:                              o.Valid,
		ContactDataValid:                   o.ContactDataValid,
		ContactDataValidForExistingAccount: o.ContactDataValidForExistingAccount,
		Messages:                           o.Messages(),
		Violations:                         violations,
	}
}

type RecordResponse struct {
	ID         string               `json:"id"`
	ReceivedAt time.Time            `json:"receivedAt"`
	PhoneE164  string               `json:"phoneE164,omitempty"`
	Submission contactus.Submission `json:"submission"`
	Outcome    OutcomeResponse      `json:"outcome"`
}

func newRecordResponse(r contactus.Record) RecordResponse {
	return RecordResponse{
		ID:         r.ID,
		ReceivedAt: r.ReceivedAt,
		PhoneE164:  r.PhoneE164,
		Submission: r.Submission,
		Outcome:    newOutcomeResponse(r.Outcome),
	}
}
