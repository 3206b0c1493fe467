package formatting

import "strings"

// DefaultAddressSeparator joins address parts when the caller has no styled
// separator of its own.
const DefaultAddressSeparator = " | "

// AddressParts carries the raw address components of a record.
type AddressParts struct {
	Address1 string
	Address2 string
	City     string
	State    string
	Zip      string
}

// AddressLines returns the non-empty display parts of an address in order:
// address1, address2, then a combined "city, state zip" group. The comma
// between city and state/zip appears only when both sides are present.
func AddressLines(parts AddressParts) []string {
	lines := []string{}

	if v := strings.TrimSpace(parts.Address1); v != "" {
		lines = append(lines, v)
	}
	if v := strings.TrimSpace(parts.Address2); v != "" {
		lines = append(lines, v)
	}

	city := strings.TrimSpace(parts.City)
	state := strings.TrimSpace(parts.State)
	zip := strings.TrimSpace(parts.Zip)

	stateZip := state
	if zip != "" {
		if stateZip != "" {
			stateZip += " " + zip
		} else {
			stateZip = zip
		}
	}

	switch {
	case city != "" && stateZip != "":
		lines = append(lines, city+", "+stateZip)
	case city != "":
		lines = append(lines, city)
	case stateZip != "":
		lines = append(lines, stateZip)
	}

	return lines
}

// FormatAddress joins the display parts with the given separator. Empty
// components are omitted entirely, never leaving stray separators.
func FormatAddress(parts AddressParts, separator string) string {
	if separator == "" {
		separator = DefaultAddressSeparator
	}
	return strings.Join(AddressLines(parts), separator)
}
