package importing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV_EmptyInput(t *testing.T) {
	_, err := ParseCSV("")
	require.Error(t, err)
	assert.Equal(t, "The uploaded file is empty.", err.Error())
	assert.True(t, IsKind(err, ErrEmptyInput))
}

func TestParseCSV_WhitespaceOnlyInput(t *testing.T) {
	_, err := ParseCSV("   \n  \n")
	require.Error(t, err)
	assert.True(t, IsKind(err, ErrEmptyInput))
}

func TestParseCSV_MissingNameColumn(t *testing.T) {
	_, err := ParseCSV("Title,Email\nEngineer,a@b.com")
	require.Error(t, err)
	assert.Equal(t, "CSV must include a 'Name' column.", err.Error())
	assert.True(t, IsKind(err, ErrMissingNameColumn))
}

func TestParseCSV_HeadersButNoRows(t *testing.T) {
	_, err := ParseCSV("Name,Title,Email\n")
	require.Error(t, err)
	assert.Equal(t, "The uploaded file contains headers but no valid employee data.", err.Error())
	assert.True(t, IsKind(err, ErrNoValidRows))
}

func TestParseCSV_SimpleRows(t *testing.T) {
	result, err := ParseCSV("Name,Title,Email\nAda Lovelace,Engineer,ada@acme.com\nAlan Turing,Scientist,alan@acme.com")
	require.NoError(t, err)
	require.Len(t, result.Records, 2)

	assert.Equal(t, "Ada Lovelace", result.Records[0].Name)
	assert.Equal(t, "Engineer", result.Records[0].Title)
	assert.Equal(t, "ada@acme.com", result.Records[0].Email)
	assert.Equal(t, "Alan Turing", result.Records[1].Name)
	assert.Equal(t, []string{"Name", "Title", "Email"}, result.Headers)
}

func TestParseCSV_SkipsRowsWithBlankName(t *testing.T) {
	result, err := ParseCSV("Name,Title\nAda Lovelace,Engineer\n,Ghost\nAlan Turing,Scientist")
	require.NoError(t, err)
	require.Len(t, result.Records, 2)
	assert.Equal(t, "Ada Lovelace", result.Records[0].Name)
	assert.Equal(t, "Alan Turing", result.Records[1].Name)
}

func TestParseCSV_AllRowsBlankName(t *testing.T) {
	_, err := ParseCSV("Name,Title\n,Engineer\n,Scientist")
	require.Error(t, err)
	assert.True(t, IsKind(err, ErrNoValidRows))
}

func TestParseCSV_QuotedFieldWithComma(t *testing.T) {
	result, err := ParseCSV("Name,Company\n\"Doe, Jane\",Acme")
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "Doe, Jane", result.Records[0].Name)
}

func TestParseCSV_QuotedFieldWithNewline(t *testing.T) {
	result, err := ParseCSV("Name,Disclaimer\nJane,\"Line one.\nLine two.\"")
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "Line one.\nLine two.", result.Records[0].Disclaimer)
}

func TestParseCSV_EscapedQuote(t *testing.T) {
	result, err := ParseCSV("Name,Title\nJane,\"The \"\"Boss\"\"\"")
	require.NoError(t, err)
	assert.Equal(t, `The "Boss"`, result.Records[0].Title)
}

func TestParseCSV_CRLFLineEndings(t *testing.T) {
	result, err := ParseCSV("Name,Title\r\nJane,Engineer\r\n")
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "Jane", result.Records[0].Name)
}

func TestParseCSV_SkipsBlankLines(t *testing.T) {
	result, err := ParseCSV("Name,Title\n\nJane,Engineer\n\n\nAlan,Scientist\n")
	require.NoError(t, err)
	assert.Len(t, result.Records, 2)
}

func TestParseCSV_CaseInsensitiveHeaders(t *testing.T) {
	result, err := ParseCSV("NAME,TITLE,EMAIL\nJane,Engineer,jane@acme.com")
	require.NoError(t, err)
	assert.Equal(t, "Jane", result.Records[0].Name)
	assert.Equal(t, "Engineer", result.Records[0].Title)
}

func TestParseCSV_UnknownHeadersIgnored(t *testing.T) {
	result, err := ParseCSV("Name,FavoriteColor\nJane,teal")
	require.NoError(t, err)
	assert.Equal(t, "Jane", result.Records[0].Name)
}

func TestParseCSV_ShortRowLeavesFieldsBlank(t *testing.T) {
	result, err := ParseCSV("Name,Title,Email\nJane,Engineer")
	require.NoError(t, err)
	assert.Equal(t, "", result.Records[0].Email)
}

func TestParseCSV_TrimsFieldWhitespace(t *testing.T) {
	result, err := ParseCSV("Name,Title\n  Jane  ,  Engineer  ")
	require.NoError(t, err)
	assert.Equal(t, "Jane", result.Records[0].Name)
	assert.Equal(t, "Engineer", result.Records[0].Title)
}
