package importing

import (
	"io"
	"strings"

	"github.com/emersion/go-vcard"

	"github.com/jonathan/signature-studio/internal/types"
)

// ParseVCards decodes a vCard stream (.vcf export from a contacts app) into
// contact records. The same survival rules as the delimited importers apply:
// cards without a formatted name are skipped, and a stream that yields no
// records is an error.
func ParseVCards(r io.Reader) (*types.ParseResult, error) {
	decoder := vcard.NewDecoder(r)

	records := []types.ContactRecord{}
	decoded := 0

	for {
		card, err := decoder.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ImportError{Kind: ErrNoHeaders, Message: "Could not parse the vCard data."}
		}
		decoded++

		record := recordFromCard(card)
		if !record.HasName() {
			continue
		}
		records = append(records, record)
	}

	if decoded == 0 {
		return nil, &ImportError{Kind: ErrEmptyInput, Message: "The vCard file is empty."}
	}
	if len(records) == 0 {
		return nil, &ImportError{Kind: ErrNoValidRows, Message: "The vCard file contains no named contacts."}
	}

	return &types.ParseResult{Records: records}, nil
}

// recordFromCard maps the vCard properties this tool understands onto a record.
func recordFromCard(card vcard.Card) types.ContactRecord {
	record := types.ContactRecord{
		Name:    strings.TrimSpace(card.PreferredValue(vcard.FieldFormattedName)),
		Title:   strings.TrimSpace(card.PreferredValue(vcard.FieldTitle)),
		Email:   strings.TrimSpace(card.PreferredValue(vcard.FieldEmail)),
		Website: strings.TrimSpace(card.PreferredValue(vcard.FieldURL)),
	}

	// ORG is semicolon-separated: organization, then units.
	if org := card.PreferredValue(vcard.FieldOrganization); org != "" {
		company, _, _ := strings.Cut(org, ";")
		record.Company = strings.TrimSpace(company)
	}

	for _, field := range card[vcard.FieldTelephone] {
		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}
		switch {
		case hasTelType(field, "cell") || hasTelType(field, "mobile"):
			if record.Mobile == "" {
				record.Mobile = value
			}
		case hasTelType(field, "fax"):
			if record.Fax == "" {
				record.Fax = value
			}
		default:
			if record.Phone == "" {
				record.Phone = value
			}
		}
	}

	if addr := card.Address(); addr != nil {
		record.Address1 = strings.TrimSpace(addr.StreetAddress)
		record.Address2 = strings.TrimSpace(addr.ExtendedAddress)
		record.City = strings.TrimSpace(addr.Locality)
		record.State = strings.TrimSpace(addr.Region)
		record.Zip = strings.TrimSpace(addr.PostalCode)
	}

	return record
}

// hasTelType reports whether a TEL field carries the given TYPE parameter.
func hasTelType(field *vcard.Field, telType string) bool {
	if field.Params == nil {
		return false
	}
	for _, t := range field.Params[vcard.ParamType] {
		if strings.EqualFold(t, telType) {
			return true
		}
	}
	return false
}
