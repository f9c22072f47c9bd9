package mapping

// fieldSynonyms maps a catalog field key to the alternate header spellings
// seen in real import files. Lookups normalize both sides, so entries here
// can keep their natural punctuation. Fields without an entry simply get no
// synonym score.
var fieldSynonyms = map[string][]string{
	"firstName": {"first", "fname", "given name", "forename", "first name"},
	"lastName":  {"last", "lname", "surname", "family name", "last name"},
	"email":     {"e-mail", "email address", "e-mail address", "mail", "emailaddress"},
	"phone":     {"mobile", "cell", "telephone", "phone number", "contact number", "tel", "mobile number"},
	"company":   {"organization", "organisation", "employer", "business", "company name", "account"},
	"jobTitle":  {"title", "position", "role", "occupation", "job"},
	"address":   {"street", "street address", "address line 1", "addr", "mailing address"},
	"city":      {"town", "locality"},
	"state":     {"province", "region", "county"},
	"zip":       {"zipcode", "zip code", "postal code", "postcode", "post code"},
	"country":   {"country code", "nation"},
	"website":   {"url", "web site", "homepage", "web address", "site"},
	"notes":     {"comments", "description", "remarks", "memo"},
	"birthday":  {"birth date", "date of birth", "dob", "birthdate"},
	"createdAt": {"created", "date created", "created date", "date added", "signup date"},
}

// SynonymsFor returns the known alternate header spellings for a field key.
// The returned slice must not be mutated.
func SynonymsFor(fieldKey string) []string {
	return fieldSynonyms[fieldKey]
}
