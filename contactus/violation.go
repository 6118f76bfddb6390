package contactus

// Field identifies a validated submission field.
type Field string

const (
	FieldBrand                     Field = "brand"
	FieldCampaign                  Field = "campaign"
	FieldMicroSiteID               Field = "microSiteId"
	FieldProductionCode            Field = "productionCode"
	FieldCorporate                 Field = "corporate"
	FieldExpiryDate                Field = "contactUsExpiryDate"
	FieldDatePurchased             Field = "contactUsDatePurchased"
	FieldContactEmail              Field = "contactEmail"
	FieldContactHonorificPrefix    Field = "contactHonorificPrefix"
	FieldContactCountry            Field = "contactCountry"
	FieldContactGivenName          Field = "contactGivenName"
	FieldContactFamilyName         Field = "contactFamilyName"
	FieldContactStreetAddress      Field = "contactStreetAddress"
	FieldContactLocality           Field = "contactLocality"
	FieldContactRegion             Field = "contactRegion"
	FieldContactPostalCode         Field = "contactPostalCode"
	FieldContactLanguagePref       Field = "contactLanguagePref"
	FieldContactPrimaryPhoneNumber Field = "contactPrimaryPhoneNumber"
)

// Target is the CRM object a field is mapped onto.
type Target string

const (
	TargetCase    Target = "case"
	TargetAccount Target = "account"
)

// Violation is a single failed field check.
type Violation struct {
	Field   Field  `json:"field"`
	Target  Target `json:"target"`
	Message string `json:"message"`
}

type fieldRule struct {
	target    Target
	maxLength int
	message   string
}

// The limits and downstream field names are the CRM schema contract.
var fieldRules = map[Field]fieldRule{
	FieldBrand: {
		target: TargetCase, maxLength: 255,
		message: "Contactus Brand length is beyond the limit of Brand__c field of Salesforce Case Object\n",
	},
	FieldCampaign: {
		target: TargetCase, maxLength: 255,
		message: "Contactus campaign length is beyond the limit of Sapient_campaign__c field of Salesforce Case Object\n",
	},
	FieldMicroSiteID: {
		target: TargetCase, maxLength: 255,
		message: "Contactus MicroSiteId length is beyond the limit of Sapient_Micro_site_id__c field of Salesforce Case Object\n",
	},
	FieldProductionCode: {
		target: TargetCase, maxLength: 20,
		message: "Contactus ProductionCode length is beyond the limit of Production_Code__c field of Salesforce Case Object\n",
	},
	FieldCorporate: {
		target: TargetCase, maxLength: 255,
		message: "Contactus Corporate length is beyond the limit of Sapient_Corporate__c field of Salesforce Case Object\n",
	},
	FieldExpiryDate: {
		target:  TargetCase,
		message: "Contactus expiry date is not of dd/MM/yyyy to be converted to a date object for field Expiry_date__c of Salesforce Case Object\n",
	},
	FieldDatePurchased: {
		target:  TargetCase,
		message: "Contactus purchased date is not of yyyy/MM/dd to be converted to a date object for field Purchase_date__c of Salesforce Case Object\n",
	},
	FieldContactEmail: {
		target: TargetAccount, maxLength: 80,
		message: "Contact email length is beyond the limit of PersonEmail field of Salesforce Account Object\n",
	},
	FieldContactHonorificPrefix: {
		target: TargetAccount, maxLength: 40,
		message: "Contact HonorificPrefix length is beyond the limit of Salutation field of Salesforce Account Object\n",
	},
	FieldContactCountry: {
		target: TargetAccount, maxLength: 80,
		message: "Contact Country length is beyond the limit of PersonMailingCountry field of Salesforce Account Object\n",
	},
	FieldContactGivenName: {
		target: TargetAccount, maxLength: 40,
		message: "Contact GivenName length is beyond the limit of FirstName field of Salesforce Account Object\n",
	},
	FieldContactFamilyName: {
		target: TargetAccount, maxLength: 80,
		message: "Contact familyName length is beyond the limit of LastName field of Salesforce Account Object\n",
	},
	FieldContactStreetAddress: {
		target: TargetAccount, maxLength: 255,
		message: "Contact StreetAddress1 and StreetAddress2 combined length is beyond the limit of PersonMailingStreet field of Salesforce Account Object\n",
	},
	FieldContactLocality: {
		target: TargetAccount, maxLength: 40,
		message: "Contact locality length is beyond the limit of PersonMailingCity field of Salesforce Account Object\n",
	},
	FieldContactRegion: {
		target: TargetAccount, maxLength: 40,
		message: "Contact Region length is beyond the limit of PersonMailingState field of Salesforce Account Object\n",
	},
	FieldContactPostalCode: {
		target: TargetAccount, maxLength: 20,
		message: "Contact postalcode length is beyond the limit of PersonMailingPostcode field of Salesforce Account Object\n",
	},
	FieldContactLanguagePref: {
		target: TargetAccount, maxLength: 255,
		message: "Contact LanguagePref length is beyond the limit of Sapient_Language_preference__pc field of Salesforce Account Object\n",
	},
	FieldContactPrimaryPhoneNumber: {
		target: TargetAccount, maxLength: 40,
		message: "Contact phone length is beyond the limit of phone field of Salesforce Account Object\n",
	},
}

func (f Field) rule() fieldRule {
	return fieldRules[f]
}

// MaxLength returns the CRM length limit of f, or 0 for fields checked by
// format only.
func (f Field) MaxLength() int {
	return f.rule().maxLength
}
