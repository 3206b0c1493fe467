// Package types defines the data records shared across the signature studio packages.
package types

import "strings"

// ContactRecord holds one signature's worth of personal and contact fields.
// Every field is optional except Name; blank fields are omitted from rendered output.
type ContactRecord struct {
	Name       string `json:"name"`
	Title      string `json:"title,omitempty"`
	Department string `json:"department,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Mobile     string `json:"mobile,omitempty"`
	Fax        string `json:"fax,omitempty"`
	Address1   string `json:"address1,omitempty"`
	Address2   string `json:"address2,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	Zip        string `json:"zip,omitempty"`
	Company    string `json:"company,omitempty"`
	Website    string `json:"website,omitempty"`
	Calendar   string `json:"calendar,omitempty"`
	Facebook   string `json:"facebook,omitempty"`
	Instagram  string `json:"instagram,omitempty"`
	Twitter    string `json:"twitter,omitempty"`
	LinkedIn   string `json:"linkedin,omitempty"`
	YouTube    string `json:"youtube,omitempty"`
	Disclaimer string `json:"disclaimer,omitempty"`
}

// FieldKeys lists the canonical field keys in column order.
// Import headers are matched against these case-insensitively.
var FieldKeys = []string{
	"name", "title", "department", "email", "phone", "mobile", "fax",
	"address1", "address2", "city", "state", "zip",
	"company", "website", "calendar",
	"facebook", "instagram", "twitter", "linkedin", "youtube",
	"disclaimer",
}

// CompanyFieldKeys lists the fields that are company-wide and may be carried
// by a company template as record defaults.
var CompanyFieldKeys = []string{
	"company", "address1", "address2", "city", "state", "zip",
	"website", "facebook", "instagram", "twitter", "linkedin", "youtube",
}

// Field returns the value for a canonical field key, or "" for unknown keys.
func (r *ContactRecord) Field(key string) string {
	switch key {
	case "name":
		return r.Name
	case "title":
		return r.Title
	case "department":
		return r.Department
	case "email":
		return r.Email
	case "phone":
		return r.Phone
	case "mobile":
		return r.Mobile
	case "fax":
		return r.Fax
	case "address1":
		return r.Address1
	case "address2":
		return r.Address2
	case "city":
		return r.City
	case "state":
		return r.State
	case "zip":
		return r.Zip
	case "company":
		return r.Company
	case "website":
		return r.Website
	case "calendar":
		return r.Calendar
	case "facebook":
		return r.Facebook
	case "instagram":
		return r.Instagram
	case "twitter":
		return r.Twitter
	case "linkedin":
		return r.LinkedIn
	case "youtube":
		return r.YouTube
	case "disclaimer":
		return r.Disclaimer
	}
	return ""
}

// SetField assigns the value for a canonical field key.
// Returns false for unknown keys, which callers are expected to ignore.
func (r *ContactRecord) SetField(key, value string) bool {
	switch key {
	case "name":
		r.Name = value
	case "title":
		r.Title = value
	case "department":
		r.Department = value
	case "email":
		r.Email = value
	case "phone":
		r.Phone = value
	case "mobile":
		r.Mobile = value
	case "fax":
		r.Fax = value
	case "address1":
		r.Address1 = value
	case "address2":
		r.Address2 = value
	case "city":
		r.City = value
	case "state":
		r.State = value
	case "zip":
		r.Zip = value
	case "company":
		r.Company = value
	case "website":
		r.Website = value
	case "calendar":
		r.Calendar = value
	case "facebook":
		r.Facebook = value
	case "instagram":
		r.Instagram = value
	case "twitter":
		r.Twitter = value
	case "linkedin":
		r.LinkedIn = value
	case "youtube":
		r.YouTube = value
	case "disclaimer":
		r.Disclaimer = value
	default:
		return false
	}
	return true
}

// HasName reports whether the record carries a non-blank name.
// Records without a name are never rendered.
func (r *ContactRecord) HasName() bool {
	return strings.TrimSpace(r.Name) != ""
}

// ParseResult is the outcome of a successful import: the surviving records in
// input order plus the header row as it appeared in the source.
type ParseResult struct {
	Records []ContactRecord `json:"records"`
	Headers []string        `json:"headers"`
}
