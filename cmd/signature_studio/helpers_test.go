package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/signature-studio/internal/types"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRecord_Valid(t *testing.T) {
	path := writeFile(t, "record.json", `{"name": "Jane Doe", "title": "Engineer"}`)

	record, err := loadRecord(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", record.Name)
	assert.Equal(t, "Engineer", record.Title)
}

func TestLoadRecord_MissingFile(t *testing.T) {
	_, err := loadRecord(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadRecord_InvalidJSON(t *testing.T) {
	path := writeFile(t, "record.json", "{nope")
	_, err := loadRecord(path)
	assert.Error(t, err)
}

func TestLoadTemplate_Valid(t *testing.T) {
	path := writeFile(t, "template.json", `{"type": "company-template", "design": {}, "companyFields": {"company": "Acme"}}`)

	tpl, err := loadTemplate(path)
	require.NoError(t, err)
	assert.Equal(t, types.TemplateTypeCompany, tpl.Type)
	assert.Equal(t, "Acme", tpl.CompanyFields["company"])
}

func TestLoadTemplate_Invalid(t *testing.T) {
	path := writeFile(t, "template.json", `{"type": "mystery"}`)
	_, err := loadTemplate(path)
	assert.Error(t, err)
}

func TestApplySets_Valid(t *testing.T) {
	opts := types.DefaultDesignOptions()
	err := applySets(&opts, []string{"nameColor=#112233", "separatorStyle=bullet"})
	require.NoError(t, err)
	assert.Equal(t, "#112233", opts.NameColor)
	assert.Equal(t, "bullet", opts.SeparatorStyle)
}

func TestApplySets_MissingEquals(t *testing.T) {
	opts := types.DefaultDesignOptions()
	err := applySets(&opts, []string{"nameColor"})
	assert.ErrorContains(t, err, "expected key=value")
}

func TestApplySets_UnknownKey(t *testing.T) {
	opts := types.DefaultDesignOptions()
	err := applySets(&opts, []string{"sparkle=yes"})
	assert.ErrorContains(t, err, "unknown design option")
}

func TestImportRecords_AutoDetectCSV(t *testing.T) {
	path := writeFile(t, "roster.csv", "Name,Title\nJane Doe,Engineer")

	result, err := importRecords(path, "auto")
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "Jane Doe", result.Records[0].Name)
}

func TestImportRecords_AutoDetectTSV(t *testing.T) {
	path := writeFile(t, "roster.tsv", "Name\tTitle\nJane Doe\tEngineer")

	result, err := importRecords(path, "auto")
	require.NoError(t, err)
	assert.Len(t, result.Records, 1)
}

func TestImportRecords_AutoDetectVCard(t *testing.T) {
	path := writeFile(t, "contacts.vcf", "BEGIN:VCARD\nVERSION:4.0\nFN:Jane Doe\nEND:VCARD\n")

	result, err := importRecords(path, "auto")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", result.Records[0].Name)
}

func TestImportRecords_UnknownFormat(t *testing.T) {
	path := writeFile(t, "roster.csv", "Name\nJane")
	_, err := importRecords(path, "xml")
	assert.ErrorContains(t, err, "unknown format")
}

func TestWriteOutput_CreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.html")
	require.NoError(t, writeOutput(path, "<p>hi</p>"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<p>hi</p>", string(data))
}

func TestResolvePrefsStore_FlagWins(t *testing.T) {
	store, err := resolvePrefsStore("/tmp/flag.json", "/tmp/config.json")
	require.NoError(t, err)
	assert.NotNil(t, store)
}
