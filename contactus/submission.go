package contactus

import (
	"regexp"
	"time"
	"unicode/utf8"
)

const (
	expiryDateLayout    = "02/01/2006"
	purchaseDateLayout  = "2006/01/02"
	streetLineSeparator = ","
)

var (
	expiryDatePattern   = regexp.MustCompile(`^[0-9]{2}/[0-9]{2}/[0-9]{4}$`)
	purchaseDatePattern = regexp.MustCompile(`^[0-9]{4}/[0-9]{2}/[0-9]{2}$`)
)

// Submission is a Contact Us record retrieved from the DCS service. Field
// names follow the Contact Us entity schema; only the fields mapped to the
// CRM are validated. An empty string means the field was not supplied.
//
// A Submission is not safe for concurrent use.
type Submission struct {
	Brand          string `json:"brand"`
	Campaign       string `json:"campaign"`
	MicroSiteID    string `json:"microSiteId"`
	ProductionCode string `json:"productionCode"`
	Corporate      string `json:"corporate"`
	Entity         string `json:"entity"`
	Locale         string `json:"locale"`
	Category       string `json:"category"`

	ContactAge                   string `json:"contactAge"`
	ContactBirthday              string `json:"contactBirthday"`
	ContactCountry               string `json:"contactCountry"`
	ContactEmail                 string `json:"contactEmail"`
	ContactFamilyName            string `json:"contactFamilyName"`
	ContactGender                string `json:"contactGender"`
	ContactGivenName             string `json:"contactGivenName"`
	ContactHonorificPrefix       string `json:"contactHonorificPrefix"`
	ContactLanguagePref          string `json:"contactLanguagePref"`
	ContactLegalAgeConfirmation  string `json:"contactLegalAgeConfirmation"`
	ContactLocality              string `json:"contactLocality"`
	ContactMaritalStatus         string `json:"contactMaritalStatus"`
	ContactPostalCode            string `json:"contactPostalCode"`
	ContactPrimaryPhoneNumber    string `json:"contactPrimaryPhoneNumber"`
	ContactPrimaryPhoneNumberExt string `json:"contactPrimaryPhoneNumberExt"`
	ContactMobilePhoneNumber     string `json:"contactMobilePhoneNumber"`
	ContactRegion                string `json:"contactRegion"`
	ContactStreetAddress1        string `json:"contactStreetAddress1"`
	ContactStreetAddress2        string `json:"contactStreetAddress2"`
	ContactStreetAddress3        string `json:"contactStreetAddress3"`
	ContactType                  string `json:"contactType"`
	ContactUsername              string `json:"contactUsername"`

	ContactUsBrand                   string `json:"contactUsBrand"`
	ContactUsComments                string `json:"contactUsComments"`
	ContactUsContactType             string `json:"contactUsContactType"`
	ContactUsDatePurchased           string `json:"contactUsDatePurchased"`
	ContactUsExpiryDate              string `json:"contactUsExpiryDate"`
	ContactUsInquiryType             string `json:"contactUsInquiryType"`
	ContactUsManufacturingCode       string `json:"contactUsManufacturingCode"`
	ContactUsManufacturingCodeDetail string `json:"contactUsManufacturingCodeDetail"`
	ContactUsProduct                 string `json:"contactUsProduct"`
	ContactUsSize                    string `json:"contactUsSize"`
	ContactUsStoreNamePurchasedFrom  string `json:"contactUsStoreNamePurchasedFrom"`
	ContactUsSubject                 string `json:"contactUsSubject"`
	ContactUsTownPurchasedFrom       string `json:"contactUsTownPurchasedFrom"`
	ContactUsUpcCode                 string `json:"contactUsUpcCode"`
	ContactUsUpcCodeDetail           string `json:"contactUsUpcCodeDetail"`

	// Flags default to false when the upstream record omits them.
	ContactUsPrivacy      bool `json:"contactUsPrivacy"`
	ContactUsFormDateTime bool `json:"contactUsFormDateTime"`
	OptInBrand            bool `json:"optInBrand"`
	OptInCorporate        bool `json:"optInCorporate"`
	OptInMailAll          bool `json:"optInMailAll"`
	OptInMailBrand        bool `json:"optInMailBrand"`
	OptInMailHelp         bool `json:"optInMailHelp"`
	OptInOnlineAll        bool `json:"optInOnlineAll"`
	OptInOnlineBrand      bool `json:"optInOnlineBrand"`
	OptInSmsHelp          bool `json:"optInS"`
	OptInSmsAll           bool `json:"optInSmsAll"`
	OptInSmsBrand         bool `json:"optInSmsBrand"`
	OptInConsentComplain  bool `json:"optInConsentComplain"`
	OptInConsentMarketing bool `json:"optInConsentMarketing"`

	violations []Violation
}

// Validate checks every mapped field against the CRM field lengths and date
// formats. All checks run; each failure is recorded as a Violation. It
// returns true when nothing was recorded. Violations from a previous call are
// discarded first.
func (s *Submission) Validate() bool {
	s.violations = nil

	// Case object
	s.checkLength(FieldBrand, s.Brand)
	s.checkLength(FieldCampaign, s.Campaign)
	s.checkLength(FieldMicroSiteID, s.MicroSiteID)
	s.checkLength(FieldProductionCode, s.ProductionCode)
	s.checkLength(FieldCorporate, s.Corporate)
	s.checkDate(FieldExpiryDate, s.ContactUsExpiryDate, expiryDatePattern, expiryDateLayout)
	s.checkDate(FieldDatePurchased, s.ContactUsDatePurchased, purchaseDatePattern, purchaseDateLayout)

	// Account object
	s.checkLength(FieldContactEmail, s.ContactEmail)
	s.checkLength(FieldContactHonorificPrefix, s.ContactHonorificPrefix)
	s.checkLength(FieldContactCountry, s.ContactCountry)
	s.checkLength(FieldContactGivenName, s.ContactGivenName)
	s.checkLength(FieldContactFamilyName, s.ContactFamilyName)
	if s.ContactStreetAddress1 != "" && s.ContactStreetAddress2 != "" {
		s.checkLength(FieldContactStreetAddress, s.ContactStreetAddress1+streetLineSeparator+s.ContactStreetAddress2)
	}
	s.checkLength(FieldContactLocality, s.ContactLocality)
	s.checkLength(FieldContactRegion, s.ContactRegion)
	s.checkLength(FieldContactPostalCode, s.ContactPostalCode)
	s.checkLength(FieldContactLanguagePref, s.ContactLanguagePref)
	s.checkLength(FieldContactPrimaryPhoneNumber, s.ContactPrimaryPhoneNumber)

	return len(s.violations) == 0
}

// Violations returns the violations recorded by the last Validate call.
func (s *Submission) Violations() []Violation {
	violations := make([]Violation, len(s.violations))
	copy(violations, s.violations)
	return violations
}

// Messages returns the messages of the recorded violations, in check order.
func (s *Submission) Messages() []string {
	messages := make([]string, len(s.violations))
	for i, v := range s.violations {
		messages[i] = v.Message
	}
	return messages
}

// IsContactDataValid reports whether no recorded violation concerns a field
// mapped to the Account object. When false, the contact cannot be matched or
// created from this submission.
func (s *Submission) IsContactDataValid() bool {
	for _, v := range s.violations {
		if v.Target == TargetAccount {
			return false
		}
	}
	return true
}

// IsContactDataValidForExistingAccount reports whether the fields used to
// look up an existing account (email and family name) passed validation.
func (s *Submission) IsContactDataValidForExistingAccount() bool {
	for _, v := range s.violations {
		if v.Field == FieldContactEmail || v.Field == FieldContactFamilyName {
			return false
		}
	}
	return true
}

func (s *Submission) checkLength(f Field, value string) {
	if utf8.RuneCountInString(value) > f.rule().maxLength {
		s.record(f)
	}
}

func (s *Submission) checkDate(f Field, value string, pattern *regexp.Regexp, layout string) {
	if value == "" {
		return
	}
	if !pattern.MatchString(value) {
		s.record(f)
		return
	}
	if _, err := time.Parse(layout, value); err != nil {
		s.record(f)
	}
}

func (s *Submission) record(f Field) {
	r := f.rule()
	s.violations = append(s.violations, Violation{
		Field:   f,
		Target:  r.target,
		Message: r.message,
	})
}
