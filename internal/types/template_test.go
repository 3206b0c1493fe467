package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
}

func TestParseCompanyTemplate_Valid(t *testing.T) {
	data := []byte(`{
		"templateVersion": "1.0",
		"type": "company-template",
		"templateName": "Acme Standard",
		"design": {"nameColor": "#112233"},
		"companyFields": {"company": "Acme Corp", "website": "acme.com"}
	}`)

	tpl, err := ParseCompanyTemplate(data)
	require.NoError(t, err)
	assert.Equal(t, TemplateTypeCompany, tpl.Type)
	assert.Equal(t, "Acme Standard", tpl.TemplateName)
	assert.Equal(t, "#112233", tpl.Design.NameColor)
	assert.Equal(t, "Acme Corp", tpl.CompanyFields["company"])
}

func TestParseCompanyTemplate_InvalidJSON(t *testing.T) {
	_, err := ParseCompanyTemplate([]byte("{not json"))
	require.Error(t, err)
	var tplErr *TemplateError
	assert.ErrorAs(t, err, &tplErr)
}

func TestParseCompanyTemplate_MissingType(t *testing.T) {
	_, err := ParseCompanyTemplate([]byte(`{"design": {}}`))
	assert.Error(t, err)
}

func TestParseCompanyTemplate_UnknownType(t *testing.T) {
	_, err := ParseCompanyTemplate([]byte(`{"type": "mystery-template", "design": {}}`))
	assert.Error(t, err)
}

func TestParseCompanyTemplate_MissingDesign(t *testing.T) {
	_, err := ParseCompanyTemplate([]byte(`{"type": "design-template"}`))
	assert.Error(t, err)
}

func TestParseCompanyTemplate_MissingCompanyFieldsDefaultsEmpty(t *testing.T) {
	tpl, err := ParseCompanyTemplate([]byte(`{"type": "design-template", "design": {}}`))
	require.NoError(t, err)
	assert.NotNil(t, tpl.CompanyFields)
	assert.Empty(t, tpl.CompanyFields)
}

func TestParseCompanyTemplate_DropsUnknownCompanyFields(t *testing.T) {
	data := []byte(`{
		"type": "company-template",
		"design": {},
		"companyFields": {"company": "Acme", "name": "Jane", "shoeSize": "11"}
	}`)

	tpl, err := ParseCompanyTemplate(data)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"company": "Acme"}, tpl.CompanyFields)
}

func TestNewCompanyTemplate_WithCompanyFields(t *testing.T) {
	record := ContactRecord{Name: "Jane", Company: "Acme Corp", Website: "acme.com"}
	tpl := NewCompanyTemplate("Acme Standard", DefaultDesignOptions(), record, fixedClock)

	assert.Equal(t, TemplateTypeCompany, tpl.Type)
	assert.Equal(t, TemplateVersion, tpl.TemplateVersion)
	assert.Equal(t, "2026-03-15T12:00:00Z", tpl.ExportedAt)
	assert.Equal(t, "Acme Corp", tpl.CompanyFields["company"])
	// Personal fields never leak into a template.
	assert.NotContains(t, tpl.CompanyFields, "name")
}

func TestNewCompanyTemplate_DesignOnly(t *testing.T) {
	tpl := NewCompanyTemplate("My Look", DefaultDesignOptions(), ContactRecord{Name: "Jane"}, fixedClock)
	assert.Equal(t, TemplateTypeDesign, tpl.Type)
	assert.Empty(t, tpl.CompanyFields)
}

func TestCompanyTemplate_RoundTrip(t *testing.T) {
	record := ContactRecord{Company: "Acme Corp", City: "Minneapolis"}
	tpl := NewCompanyTemplate("Acme", DefaultDesignOptions(), record, fixedClock)

	data, err := tpl.MarshalIndent()
	require.NoError(t, err)

	parsed, err := ParseCompanyTemplate(data)
	require.NoError(t, err)
	assert.Equal(t, tpl.Type, parsed.Type)
	assert.Equal(t, tpl.CompanyFields, parsed.CompanyFields)
	assert.Equal(t, *tpl.Design, *parsed.Design)
}

func TestApplyCompanyDefaults_FillsOnlyBlanks(t *testing.T) {
	tpl := &CompanyTemplate{
		Type:   TemplateTypeCompany,
		Design: &DesignOptions{},
		CompanyFields: map[string]string{
			"company": "Acme Corp",
			"website": "acme.com",
		},
	}

	record := ContactRecord{Name: "Jane", Company: "Jane's Own LLC"}
	tpl.ApplyCompanyDefaults(&record)

	assert.Equal(t, "Jane's Own LLC", record.Company)
	assert.Equal(t, "acme.com", record.Website)
}

func TestTemplateError_Unwrap(t *testing.T) {
	cause := assert.AnError
	err := &TemplateError{Message: "boom", Cause: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "boom")
}
