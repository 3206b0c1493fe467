package importing

import (
	"strings"

	"github.com/jonathan/signature-studio/internal/types"
)

// ExpectedHeaders is the canonical header row for the CSV starter template,
// matching the builder form fields.
var ExpectedHeaders = []string{
	"Name", "Title", "Department", "Email", "Phone", "Mobile", "Fax",
	"Address1", "Address2", "City", "State", "ZIP",
	"Company", "Website", "Calendar", "Facebook", "Instagram", "Twitter", "LinkedIn", "YouTube",
	"Disclaimer",
}

// fieldMapping maps lowercased header names to canonical record field keys.
// Unrecognized headers are ignored during row mapping.
var fieldMapping = map[string]string{
	"name":       "name",
	"title":      "title",
	"department": "department",
	"email":      "email",
	"phone":      "phone",
	"mobile":     "mobile",
	"fax":        "fax",
	"address1":   "address1",
	"address2":   "address2",
	"city":       "city",
	"state":      "state",
	"zip":        "zip",
	"company":    "company",
	"website":    "website",
	"calendar":   "calendar",
	"facebook":   "facebook",
	"instagram":  "instagram",
	"twitter":    "twitter",
	"linkedin":   "linkedin",
	"youtube":    "youtube",
	"disclaimer": "disclaimer",
}

// hasNameHeader reports whether any header matches "name" case-insensitively.
func hasNameHeader(headers []string) bool {
	for _, h := range headers {
		if strings.EqualFold(strings.TrimSpace(h), "name") {
			return true
		}
	}
	return false
}

// mapRow maps row values onto a record via the header→field lookup. Values are
// trimmed; headers without a known field are skipped.
func mapRow(headers, values []string) types.ContactRecord {
	var record types.ContactRecord

	for i, header := range headers {
		field, ok := fieldMapping[strings.ToLower(strings.TrimSpace(header))]
		if !ok {
			continue
		}
		value := ""
		if i < len(values) {
			value = strings.TrimSpace(values[i])
		}
		record.SetField(field, value)
	}

	return record
}
