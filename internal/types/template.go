package types

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/signature-studio/internal/schemas"
)

// Recognized template type tags.
const (
	TemplateTypeCompany = "company-template"
	TemplateTypeDesign  = "design-template"
)

// TemplateVersion is written into exported templates.
const TemplateVersion = "1.0"

// CompanyTemplate is the JSON exchange format for a persisted bundle of design
// options plus default company-wide field values. Design-only templates carry
// an empty CompanyFields map.
type CompanyTemplate struct {
	TemplateVersion string            `json:"templateVersion,omitempty"`
	ExportedAt      string            `json:"exportedAt,omitempty"`
	Type            string            `json:"type" validate:"required,oneof=company-template design-template"`
	TemplateName    string            `json:"templateName,omitempty"`
	Design          *DesignOptions    `json:"design" validate:"required"`
	CompanyFields   map[string]string `json:"companyFields,omitempty"`
}

// TemplateError represents a malformed or unrecognized template file.
// Application is all-or-nothing: a template that fails to parse changes nothing.
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid template: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid template: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

var templateValidate = validator.New()

// ParseCompanyTemplate parses and validates a company template JSON document.
// The payload is checked against the embedded JSON Schema first, then decoded
// and struct-validated; unknown company field keys are dropped and a missing
// companyFields object defaults to empty.
func ParseCompanyTemplate(data []byte) (*CompanyTemplate, error) {
	if err := schemas.ValidateCompanyTemplate(data); err != nil {
		return nil, &TemplateError{Message: "schema validation failed", Cause: err}
	}

	var tpl CompanyTemplate
	if err := json.Unmarshal(data, &tpl); err != nil {
		return nil, &TemplateError{Message: "failed to parse JSON", Cause: err}
	}

	if err := templateValidate.Struct(&tpl); err != nil {
		return nil, &TemplateError{Message: "missing required fields", Cause: err}
	}

	if tpl.CompanyFields == nil {
		tpl.CompanyFields = map[string]string{}
	} else {
		tpl.CompanyFields = filterCompanyFields(tpl.CompanyFields)
	}

	return &tpl, nil
}

// NewCompanyTemplate assembles an exportable template from the current design
// options and the company-wide fields of a record. The caller supplies the
// clock so exported output stays deterministic under test.
func NewCompanyTemplate(name string, design DesignOptions, record ContactRecord, now func() time.Time) *CompanyTemplate {
	fields := map[string]string{}
	for _, key := range CompanyFieldKeys {
		if value := record.Field(key); value != "" {
			fields[key] = value
		}
	}

	templateType := TemplateTypeDesign
	if len(fields) > 0 {
		templateType = TemplateTypeCompany
	}

	return &CompanyTemplate{
		TemplateVersion: TemplateVersion,
		ExportedAt:      now().UTC().Format(time.RFC3339),
		Type:            templateType,
		TemplateName:    name,
		Design:          &design,
		CompanyFields:   fields,
	}
}

// MarshalIndent renders the template as pretty-printed JSON for export.
func (t *CompanyTemplate) MarshalIndent() ([]byte, error) {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return nil, &TemplateError{Message: "failed to encode template", Cause: err}
	}
	return data, nil
}

// ApplyCompanyDefaults fills blank record fields from the template's company
// fields. Present, non-empty record values always win; defaults only fill gaps.
func (t *CompanyTemplate) ApplyCompanyDefaults(record *ContactRecord) {
	for _, key := range CompanyFieldKeys {
		value, ok := t.CompanyFields[key]
		if !ok || value == "" {
			continue
		}
		if record.Field(key) == "" {
			record.SetField(key, value)
		}
	}
}

// filterCompanyFields drops keys outside the fixed company-wide subset.
func filterCompanyFields(fields map[string]string) map[string]string {
	filtered := map[string]string{}
	for _, key := range CompanyFieldKeys {
		if value, ok := fields[key]; ok && value != "" {
			filtered[key] = value
		}
	}
	return filtered
}
