package contactus

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const defaultPhoneRegion = "GB"

// PhoneEntry is one element of the upstream phoneNumber list.
type PhoneEntry struct {
	Type  string `json:"type"`
	Value string `json:"value"`
	Ext   string `json:"ext,omitempty"`
}

// ExtractPhone returns the value of the first entry typed "phone" or
// "primary". An empty list yields ("", true); a non-empty list without a
// match yields ("", false).
func ExtractPhone(entries []PhoneEntry) (string, bool) {
	e, ok := SelectPhone(entries)
	return e.Value, ok
}

// ExtractMobile returns the value of the first entry typed "mobile", with the
// same empty and no-match results as ExtractPhone.
func ExtractMobile(entries []PhoneEntry) (string, bool) {
	e, ok := SelectMobile(entries)
	return e.Value, ok
}

// SelectPhone is ExtractPhone returning the whole matched entry.
func SelectPhone(entries []PhoneEntry) (PhoneEntry, bool) {
	return selectByType(entries, "phone", "primary")
}

// SelectMobile is ExtractMobile returning the whole matched entry.
func SelectMobile(entries []PhoneEntry) (PhoneEntry, bool) {
	return selectByType(entries, "mobile")
}

func selectByType(entries []PhoneEntry, types ...string) (PhoneEntry, bool) {
	if len(entries) == 0 {
		return PhoneEntry{}, true
	}
	for _, e := range entries {
		if e.Type == "" {
			continue
		}
		for _, t := range types {
			if strings.EqualFold(e.Type, t) {
				return e, true
			}
		}
	}
	return PhoneEntry{}, false
}

// FormatE164 formats number in E.164 using the region of locale ("en_GB",
// "fr-FR"). It returns false when the number is not a valid phone number.
func FormatE164(number, locale string) (string, bool) {
	number = strings.TrimSpace(number)
	if number == "" {
		return "", false
	}

	num, err := phonenumbers.Parse(number, regionFromLocale(locale))
	if err != nil {
		return "", false
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", false
	}
	return phonenumbers.Format(num, phonenumbers.E164), true
}

func regionFromLocale(locale string) string {
	parts := strings.FieldsFunc(locale, func(r rune) bool {
		return r == '_' || r == '-'
	})
	if len(parts) < 2 || len(parts[1]) != 2 {
		return defaultPhoneRegion
	}
	return strings.ToUpper(parts[1])
}
