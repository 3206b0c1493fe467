package export

import (
	"strings"

	"github.com/jonathan/signature-studio/internal/importing"
)

// csvTemplateExamples seeds the starter file with two realistic rows so users
// can see which columns matter.
var csvTemplateExamples = []string{
	"John Smith,Software Engineer,Engineering,john@company.com,5551234567,5551234568,,123 Main St,Suite 100,Minneapolis,MN,55401,Acme Corp,www.acme.com,calendly.com/jsmith,facebook.com/acme,instagram.com/acme,,linkedin.com/company/acme,,",
	`Jane Doe,Marketing Manager,Marketing,jane@company.com,5559876543,5559876544,5551111111,456 Oak Ave,,St. Paul,MN,55101,Acme Corp,www.acme.com,,,,,linkedin.com/company/acme,youtube.com/@acme,"This email is confidential."`,
}

// CSVTemplateFilename names the downloadable starter template.
const CSVTemplateFilename = "signature-template.csv"

// CSVTemplate returns the starter CSV with the expected header row and
// example data.
func CSVTemplate() string {
	return strings.Join(importing.ExpectedHeaders, ",") + "\n" + strings.Join(csvTemplateExamples, "\n")
}
