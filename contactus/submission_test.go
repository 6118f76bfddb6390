// nolint: funlen
package contactus_test

import (
	"strings"
	"testing"

	"sapientdcs/contactus"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_FieldLengths(t *testing.T) {
	tests := []struct {
		name  string
		field contactus.Field
		limit int
		set   func(s *contactus.Submission, v string)
	}{
		{"brand", contactus.FieldBrand, 255, func(s *contactus.Submission, v string) { s.Brand = v }},
		{"campaign", contactus.FieldCampaign, 255, func(s *contactus.Submission, v string) { s.Campaign = v }},
		{"micro site id", contactus.FieldMicroSiteID, 255, func(s *contactus.Submission, v string) { s.MicroSiteID = v }},
		{"production code", contactus.FieldProductionCode, 20, func(s *contactus.Submission, v string) { s.ProductionCode = v }},
		{"corporate", contactus.FieldCorporate, 255, func(s *contactus.Submission, v string) { s.Corporate = v }},
		{"email", contactus.FieldContactEmail, 80, func(s *contactus.Submission, v string) { s.ContactEmail = v }},
		{"honorific prefix", contactus.FieldContactHonorificPrefix, 40, func(s *contactus.Submission, v string) { s.ContactHonorificPrefix = v }},
		{"country", contactus.FieldContactCountry, 80, func(s *contactus.Submission, v string) { s.ContactCountry = v }},
		{"given name", contactus.FieldContactGivenName, 40, func(s *contactus.Submission, v string) { s.ContactGivenName = v }},
		{"family name", contactus.FieldContactFamilyName, 80, func(s *contactus.Submission, v string) { s.ContactFamilyName = v }},
		{"locality", contactus.FieldContactLocality, 40, func(s *contactus.Submission, v string) { s.ContactLocality = v }},
		{"region", contactus.FieldContactRegion, 40, func(s *contactus.Submission, v string) { s.ContactRegion = v }},
		{"postal code", contactus.FieldContactPostalCode, 20, func(s *contactus.Submission, v string) { s.ContactPostalCode = v }},
		{"language pref", contactus.FieldContactLanguagePref, 255, func(s *contactus.Submission, v string) { s.ContactLanguagePref = v }},
		{"primary phone", contactus.FieldContactPrimaryPhoneNumber, 40, func(s *contactus.Submission, v string) { s.ContactPrimaryPhoneNumber = v }},
	}

	for _, tt := range tests {
		t.Run(tt.name+" at limit is valid", func(t *testing.T) {
			var s contactus.Submission
			tt.set(&s, strings.Repeat("a", tt.limit))

			assert.True(t, s.Validate())
			assert.Empty(t, s.Messages())
		})

		t.Run(tt.name+" beyond limit is invalid", func(t *testing.T) {
			var s contactus.Submission
			tt.set(&s, strings.Repeat("a", tt.limit+1))

			assert.False(t, s.Validate())
			violations := s.Violations()
			require.Len(t, violations, 1)
			assert.Equal(t, tt.field, violations[0].Field)
			assert.Equal(t, tt.limit, tt.field.MaxLength())
			assert.True(t, strings.HasSuffix(violations[0].Message, "\n"))
		})
	}
}

func TestValidate_UnsetFields(t *testing.T) {
	var s contactus.Submission

	assert.True(t, s.Validate(), "expected empty submission to be valid")
	assert.Empty(t, s.Violations())
	assert.True(t, s.IsContactDataValid())
	assert.True(t, s.IsContactDataValidForExistingAccount())
}

func TestValidate_CountsCharactersNotBytes(t *testing.T) {
	s := contactus.Submission{ContactGivenName: strings.Repeat("é", 40)}

	assert.True(t, s.Validate())
}

func TestValidate_CountsCodePointsForAstralCharacters(t *testing.T) {
	// 40 emoji are 80 UTF-16 units but 40 code points.
	s := contactus.Submission{ContactGivenName: strings.Repeat("😀", 40)}
	assert.True(t, s.Validate())

	s.ContactGivenName = strings.Repeat("😀", 41)
	assert.False(t, s.Validate())
	assert.Equal(t, contactus.FieldContactGivenName, s.Violations()[0].Field)
}

func TestValidate_ExpiryDate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{name: "dd/MM/yyyy", value: "20/05/2015", valid: true},
		{name: "empty is skipped", value: "", valid: true},
		{name: "missing day", value: "06/2016", valid: false},
		{name: "two digit year", value: "16/05/16", valid: false},
		{name: "impossible month", value: "20/13/2015", valid: false},
		{name: "impossible day", value: "30/02/2015", valid: false},
		{name: "trailing text", value: "20/05/2015 10:00", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := contactus.Submission{ContactUsExpiryDate: tt.value}

			assert.Equal(t, tt.valid, s.Validate())
			if !tt.valid {
				violations := s.Violations()
				require.Len(t, violations, 1)
				assert.Equal(t, contactus.FieldExpiryDate, violations[0].Field)
				assert.Contains(t, violations[0].Message, "Expiry_date__c")
			}
		})
	}
}

func TestValidate_DatePurchased(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{name: "yyyy/MM/dd", value: "2015/02/14", valid: true},
		{name: "empty is skipped", value: "", valid: true},
		{name: "not a date", value: "NA", valid: false},
		{name: "day first", value: "15/05/16", valid: false},
		{name: "impossible month", value: "2015/13/01", valid: false},
		{name: "dashes", value: "2015-02-14", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := contactus.Submission{ContactUsDatePurchased: tt.value}

			assert.Equal(t, tt.valid, s.Validate())
			if !tt.valid {
				violations := s.Violations()
				require.Len(t, violations, 1)
				assert.Equal(t, contactus.FieldDatePurchased, violations[0].Field)
				assert.Equal(t, contactus.TargetCase, violations[0].Target)
			}
		})
	}
}

func TestValidate_ImpossibleDateMatchesShapeMessage(t *testing.T) {
	shape := contactus.Submission{ContactUsExpiryDate: "06/2016"}
	calendar := contactus.Submission{ContactUsExpiryDate: "45/05/2015"}

	shape.Validate()
	calendar.Validate()

	assert.Equal(t, shape.Messages(), calendar.Messages())
}

func TestValidate_StreetAddress(t *testing.T) {
	t.Run("short lines are valid", func(t *testing.T) {
		s := contactus.Submission{
			ContactStreetAddress1: "Unilever House",
			ContactStreetAddress2: "Springfield Drive",
		}

		assert.True(t, s.Validate())
	})

	t.Run("combined length beyond limit is invalid", func(t *testing.T) {
		s := contactus.Submission{
			ContactStreetAddress1: "Unilever House",
			ContactStreetAddress2: strings.Repeat("x", 241),
		}

		assert.False(t, s.Validate())
		violations := s.Violations()
		require.Len(t, violations, 1)
		assert.Equal(t, contactus.FieldContactStreetAddress, violations[0].Field)
	})

	t.Run("combined length at limit is valid", func(t *testing.T) {
		s := contactus.Submission{
			ContactStreetAddress1: "Unilever House",
			ContactStreetAddress2: strings.Repeat("x", 240),
		}

		assert.True(t, s.Validate())
	})

	t.Run("single line is never checked", func(t *testing.T) {
		s := contactus.Submission{ContactStreetAddress1: strings.Repeat("x", 300)}

		assert.True(t, s.Validate())
	})
}

func TestValidate_CollectsEveryViolation(t *testing.T) {
	s := contactus.Submission{
		Brand:               strings.Repeat("b", 256),
		ContactUsExpiryDate: "NA",
		ContactEmail:        strings.Repeat("e", 81),
		ContactPostalCode:   strings.Repeat("p", 21),
	}

	assert.False(t, s.Validate())
	fields := make([]contactus.Field, 0)
	for _, v := range s.Violations() {
		fields = append(fields, v.Field)
	}
	assert.Equal(t, []contactus.Field{
		contactus.FieldBrand,
		contactus.FieldExpiryDate,
		contactus.FieldContactEmail,
		contactus.FieldContactPostalCode,
	}, fields)
	assert.Len(t, s.Messages(), 4)
}

func TestValidate_RevalidationDoesNotAccumulate(t *testing.T) {
	s := contactus.Submission{ContactPostalCode: strings.Repeat("p", 21)}

	s.Validate()
	s.Validate()
	assert.Len(t, s.Messages(), 1)

	s.ContactPostalCode = "KT1 4ER"
	assert.True(t, s.Validate())
	assert.Empty(t, s.Messages())
}

func TestIsContactDataValid(t *testing.T) {
	tests := []struct {
		name                  string
		submission            contactus.Submission
		contactDataValid      bool
		validForExistingAccnt bool
	}{
		{
			name:                  "no violations",
			submission:            contactus.Submission{ContactEmail: "john.doe@gmail.com"},
			contactDataValid:      true,
			validForExistingAccnt: true,
		},
		{
			name:                  "postal code too long",
			submission:            contactus.Submission{ContactPostalCode: strings.Repeat("p", 21)},
			contactDataValid:      false,
			validForExistingAccnt: true,
		},
		{
			name:                  "email too long",
			submission:            contactus.Submission{ContactEmail: strings.Repeat("e", 81)},
			contactDataValid:      false,
			validForExistingAccnt: false,
		},
		{
			name:                  "family name too long",
			submission:            contactus.Submission{ContactFamilyName: strings.Repeat("f", 81)},
			contactDataValid:      false,
			validForExistingAccnt: false,
		},
		{
			name:                  "case fields only",
			submission:            contactus.Submission{Campaign: strings.Repeat("c", 256), ContactUsDatePurchased: "NA"},
			contactDataValid:      true,
			validForExistingAccnt: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.submission
			s.Validate()

			assert.Equal(t, tt.contactDataValid, s.IsContactDataValid())
			assert.Equal(t, tt.validForExistingAccnt, s.IsContactDataValidForExistingAccount())
		})
	}
}

func TestViolationMessages_DistinguishableBySubstring(t *testing.T) {
	s := contactus.Submission{
		ContactEmail:      strings.Repeat("e", 81),
		ContactFamilyName: strings.Repeat("f", 81),
		Corporate:         strings.Repeat("c", 256),
	}
	s.Validate()

	messages := s.Messages()
	require.Len(t, messages, 3)
	assert.NotContains(t, messages[0], "Account Object")
	assert.Contains(t, messages[1], "PersonEmail")
	assert.Contains(t, messages[1], "Account Object")
	assert.Contains(t, messages[2], "LastName")
}
