package importing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleVCard = `BEGIN:VCARD
VERSION:4.0
FN:Jane Doe
TITLE:Marketing Manager
ORG:Acme Corp;Marketing
EMAIL:jane@acme.com
TEL;TYPE=cell:5551234567
TEL;TYPE=fax:5559999999
TEL;TYPE=work:5558888888
URL:https://acme.com
ADR:;Suite 200;456 Oak Ave;St. Paul;MN;55101;USA
END:VCARD
`

func TestParseVCards_EmptyInput(t *testing.T) {
	_, err := ParseVCards(strings.NewReader(""))
	require.Error(t, err)
	assert.Equal(t, "The vCard file is empty.", err.Error())
	assert.True(t, IsKind(err, ErrEmptyInput))
}

func TestParseVCards_GarbageInput(t *testing.T) {
	_, err := ParseVCards(strings.NewReader("this is not a vcard\n"))
	require.Error(t, err)
	assert.Equal(t, "Could not parse the vCard data.", err.Error())
}

func TestParseVCards_SingleCard(t *testing.T) {
	result, err := ParseVCards(strings.NewReader(sampleVCard))
	require.NoError(t, err)
	require.Len(t, result.Records, 1)

	record := result.Records[0]
	assert.Equal(t, "Jane Doe", record.Name)
	assert.Equal(t, "Marketing Manager", record.Title)
	assert.Equal(t, "Acme Corp", record.Company)
	assert.Equal(t, "jane@acme.com", record.Email)
	assert.Equal(t, "https://acme.com", record.Website)
}

func TestParseVCards_PhoneTypeRouting(t *testing.T) {
	result, err := ParseVCards(strings.NewReader(sampleVCard))
	require.NoError(t, err)

	record := result.Records[0]
	assert.Equal(t, "5551234567", record.Mobile)
	assert.Equal(t, "5559999999", record.Fax)
	assert.Equal(t, "5558888888", record.Phone)
}

func TestParseVCards_AddressMapping(t *testing.T) {
	result, err := ParseVCards(strings.NewReader(sampleVCard))
	require.NoError(t, err)

	record := result.Records[0]
	assert.Equal(t, "456 Oak Ave", record.Address1)
	assert.Equal(t, "Suite 200", record.Address2)
	assert.Equal(t, "St. Paul", record.City)
	assert.Equal(t, "MN", record.State)
	assert.Equal(t, "55101", record.Zip)
}

func TestParseVCards_MultipleCards(t *testing.T) {
	two := sampleVCard + "BEGIN:VCARD\nVERSION:4.0\nFN:Alan Turing\nEMAIL:alan@acme.com\nEND:VCARD\n"
	result, err := ParseVCards(strings.NewReader(two))
	require.NoError(t, err)
	require.Len(t, result.Records, 2)
	assert.Equal(t, "Alan Turing", result.Records[1].Name)
}

func TestParseVCards_SkipsUnnamedCards(t *testing.T) {
	unnamed := "BEGIN:VCARD\nVERSION:4.0\nFN:\nEMAIL:ghost@acme.com\nEND:VCARD\n"
	result, err := ParseVCards(strings.NewReader(unnamed + sampleVCard))
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "Jane Doe", result.Records[0].Name)
}

func TestParseVCards_AllUnnamed(t *testing.T) {
	unnamed := "BEGIN:VCARD\nVERSION:4.0\nFN:\nEMAIL:ghost@acme.com\nEND:VCARD\n"
	_, err := ParseVCards(strings.NewReader(unnamed))
	require.Error(t, err)
	assert.Equal(t, "The vCard file contains no named contacts.", err.Error())
	assert.True(t, IsKind(err, ErrNoValidRows))
}
