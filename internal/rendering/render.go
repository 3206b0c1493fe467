package rendering

import (
	"fmt"
	"strings"

	"github.com/jonathan/signature-studio/internal/formatting"
	"github.com/jonathan/signature-studio/internal/types"
)

// Separator glyphs by style. Unrecognized styles fall back to pipe.
var separators = map[string]string{
	"pipe":   " | ",
	"bullet": " • ",
	"dash":   " — ",
	"none":   "  ",
}

// Logo widths in pixels by size. Unrecognized sizes fall back to medium.
var logoWidths = map[string]int{
	types.LogoSizeSmall:  60,
	types.LogoSizeMedium: 100,
	types.LogoSizeLarge:  150,
}

// Email-safe font stacks by family. Unrecognized families fall back to arial.
var fontStacks = map[string]string{
	"arial":     "Arial, sans-serif",
	"helvetica": "Helvetica, Arial, sans-serif",
	"georgia":   "Georgia, serif",
	"times":     "Times New Roman, Times, serif",
	"verdana":   "Verdana, Geneva, sans-serif",
	"tahoma":    "Tahoma, Geneva, sans-serif",
}

// addressSingleLineLimit is the joined length under which the address renders
// on one line instead of one line per part.
const addressSingleLineLimit = 40

// contactItemsPerLine chunks the contact block when it has three or more items,
// keeping lines short on mobile clients.
const contactItemsPerLine = 2

// SeparatorGlyph resolves a separator style to its literal glyph string.
func SeparatorGlyph(style string) string {
	if glyph, ok := separators[style]; ok {
		return glyph
	}
	return separators["pipe"]
}

// FontStack resolves a font family key to its email-safe CSS stack.
func FontStack(family string) string {
	if stack, ok := fontStacks[family]; ok {
		return stack
	}
	return fontStacks["arial"]
}

// LogoWidth resolves a logo size key to its pixel width.
func LogoWidth(size string) int {
	if width, ok := logoWidths[size]; ok {
		return width
	}
	return logoWidths[types.LogoSizeMedium]
}

// Render produces the HTML signature fragment for one record. Options are
// merged over built-in defaults and normalized first, so partial or invalid
// options degrade to defaults instead of failing. The output is deterministic:
// identical inputs yield identical strings, and there is no error path — every
// absent field simply omits its line.
//
// Callers are responsible for excluding records without a name; Render itself
// renders whatever lines the record supports.
func Render(record types.ContactRecord, opts types.DesignOptions) string {
	o := opts.MergeWithDefaults(types.DefaultDesignOptions()).Normalized()

	separator := SeparatorGlyph(o.SeparatorStyle)
	coloredSeparator := fmt.Sprintf(`<span style="color: %s;">%s</span>`, o.SeparatorColor, separator)
	fontStack := FontStack(o.FontFamily)

	sections := []string{}

	if record.HasName() {
		sections = append(sections, renderName(record.Name, o.NameColor))
	}
	if s := renderTitleCompany(record.Title, record.Company, coloredSeparator, o.TitleColor); s != "" {
		sections = append(sections, s)
	}
	if s := renderDepartment(record.Department, o.TitleColor); s != "" {
		sections = append(sections, s)
	}
	if s := renderContact(record, coloredSeparator, o.TitleColor, o.LinkColor); s != "" {
		sections = append(sections, s)
	}
	if s := renderAddress(record, separator, o.TitleColor); s != "" {
		sections = append(sections, s)
	}
	if s := renderWebsite(record.Website, o.LinkColor); s != "" {
		sections = append(sections, s)
	}
	if s := renderCalendar(record.Calendar, o.LinkColor); s != "" {
		sections = append(sections, s)
	}
	if s := renderSocial(record, &o); s != "" {
		sections = append(sections, s)
	}
	if s := renderDisclaimer(record.Disclaimer, o.TitleColor); s != "" {
		sections = append(sections, s)
	}

	content := strings.Join(sections, "")

	logoSrc := o.LogoSource()
	var signature string

	if logoSrc != "" {
		width := LogoWidth(o.LogoSize)
		websiteHref := ""
		if strings.TrimSpace(record.Website) != "" {
			websiteHref = formatting.FormatWebsiteHref(record.Website)
		}

		if o.LogoPosition == types.LogoPositionTop {
			signature = wrapWithLogoTop(content, logoSrc, width, websiteHref, fontStack)
		} else {
			signature = wrapWithLogoLeft(content, logoSrc, width, websiteHref, fontStack)
		}
	} else {
		signature = wrapInTable(content, fontStack)
	}

	if o.AddBackground {
		signature = wrapWithBackground(signature, o.BackgroundColor)
	}

	return signature
}

// wrapWithBackground adds a background container for dark mode compatibility.
func wrapWithBackground(signature, backgroundColor string) string {
	return fmt.Sprintf("<table cellpadding=\"0\" cellspacing=\"0\" border=\"0\" style=\"background-color: %s; border-radius: 4px;\">\n  <tr>\n    <td style=\"padding: 12px;\">\n%s\n    </td>\n  </tr>\n</table>", backgroundColor, signature)
}

// wrapInTable wraps content in an email-compatible table with no logo cell.
func wrapInTable(content, fontStack string) string {
	return fmt.Sprintf("<table cellpadding=\"0\" cellspacing=\"0\" border=\"0\" style=\"font-family: %s; font-size: 14px; line-height: 1.4; color: #333333;\">\n  <tr>\n    <td style=\"vertical-align: top;\">\n%s\n    </td>\n  </tr>\n</table>", fontStack, content)
}

// logoCell builds the logo image, linked to the website when one is present.
func logoCell(logoSrc string, width int, websiteHref string) string {
	img := fmt.Sprintf(`<img src="%s" alt="Logo" width="%d" style="display: block; border: 0;">`, EscapeHTML(logoSrc), width)
	if websiteHref == "" {
		return img
	}
	return fmt.Sprintf(`<a href="%s" style="text-decoration: none;">%s</a>`, EscapeHTML(websiteHref), img)
}

// wrapWithLogoLeft lays out a logo cell beside the content cell.
func wrapWithLogoLeft(content, logoSrc string, width int, websiteHref, fontStack string) string {
	return fmt.Sprintf("<table cellpadding=\"0\" cellspacing=\"0\" border=\"0\" style=\"font-family: %s; font-size: 14px; line-height: 1.4; color: #333333;\">\n  <tr>\n    <td style=\"vertical-align: top; padding-right: 15px;\">\n      %s\n    </td>\n    <td style=\"vertical-align: top;\">\n%s\n    </td>\n  </tr>\n</table>", fontStack, logoCell(logoSrc, width, websiteHref), content)
}

// wrapWithLogoTop stacks the logo block above the content block.
func wrapWithLogoTop(content, logoSrc string, width int, websiteHref, fontStack string) string {
	return fmt.Sprintf("<table cellpadding=\"0\" cellspacing=\"0\" border=\"0\" style=\"font-family: %s; font-size: 14px; line-height: 1.4; color: #333333;\">\n  <tr>\n    <td style=\"padding-bottom: 10px;\">\n      %s\n    </td>\n  </tr>\n  <tr>\n    <td style=\"vertical-align: top;\">\n%s\n    </td>\n  </tr>\n</table>", fontStack, logoCell(logoSrc, width, websiteHref), content)
}

func renderName(name, color string) string {
	escaped := EscapeHTML(strings.TrimSpace(name))
	return fmt.Sprintf("      <p style=\"margin: 0 0 2px 0; font-weight: bold; font-size: 16px; color: %s;\">%s</p>\n", color, escaped)
}

func renderTitleCompany(title, company, separator, color string) string {
	parts := []string{}
	if v := strings.TrimSpace(title); v != "" {
		parts = append(parts, EscapeHTML(v))
	}
	if v := strings.TrimSpace(company); v != "" {
		parts = append(parts, EscapeHTML(v))
	}
	if len(parts) == 0 {
		return ""
	}
	return fmt.Sprintf("      <p style=\"margin: 0 0 8px 0; color: %s;\">%s</p>\n", color, strings.Join(parts, separator))
}

func renderDepartment(department, color string) string {
	v := strings.TrimSpace(department)
	if v == "" {
		return ""
	}
	return fmt.Sprintf("      <p style=\"margin: 0 0 8px 0; color: %s;\">%s</p>\n", color, EscapeHTML(v))
}

// renderContact assembles phone, mobile, fax, and email in that order. Two or
// fewer items stay on one line; three or more chunk two per line.
func renderContact(record types.ContactRecord, separator, textColor, linkColor string) string {
	parts := []string{}

	if strings.TrimSpace(record.Phone) != "" {
		parts = append(parts, EscapeHTML(formatting.FormatPhone(record.Phone)))
	}
	if strings.TrimSpace(record.Mobile) != "" {
		parts = append(parts, "M: "+EscapeHTML(formatting.FormatPhone(record.Mobile)))
	}
	if strings.TrimSpace(record.Fax) != "" {
		parts = append(parts, "Fax: "+EscapeHTML(formatting.FormatPhone(record.Fax)))
	}
	if email := strings.TrimSpace(record.Email); email != "" {
		escaped := EscapeHTML(email)
		parts = append(parts, fmt.Sprintf(`<a href="mailto:%s" style="color: %s; text-decoration: none;">%s</a>`, escaped, linkColor, escaped))
	}

	if len(parts) == 0 {
		return ""
	}

	if len(parts) <= contactItemsPerLine {
		return fmt.Sprintf("      <p style=\"margin: 0 0 4px 0; color: %s;\">%s</p>\n", textColor, strings.Join(parts, separator))
	}

	lines := []string{}
	for i := 0; i < len(parts); i += contactItemsPerLine {
		end := min(i+contactItemsPerLine, len(parts))
		lines = append(lines, strings.Join(parts[i:end], separator))
	}

	var sb strings.Builder
	for i, line := range lines {
		margin := "2px"
		if i == len(lines)-1 {
			margin = "4px"
		}
		sb.WriteString(fmt.Sprintf("      <p style=\"margin: 0 0 %s 0; color: %s;\">%s</p>\n", margin, textColor, line))
	}
	return sb.String()
}

// renderAddress emits the address on one line when the joined parts are short,
// otherwise one line per part.
func renderAddress(record types.ContactRecord, separator, color string) string {
	parts := formatting.AddressLines(formatting.AddressParts{
		Address1: record.Address1,
		Address2: record.Address2,
		City:     record.City,
		State:    record.State,
		Zip:      record.Zip,
	})
	if len(parts) == 0 {
		return ""
	}

	if len(strings.Join(parts, separator)) < addressSingleLineLimit {
		escaped := make([]string, len(parts))
		for i, p := range parts {
			escaped[i] = EscapeHTML(p)
		}
		return fmt.Sprintf("      <p style=\"margin: 0 0 8px 0; color: %s;\">%s</p>\n", color, strings.Join(escaped, separator))
	}

	var sb strings.Builder
	for i, part := range parts {
		margin := "2px"
		if i == len(parts)-1 {
			margin = "8px"
		}
		sb.WriteString(fmt.Sprintf("      <p style=\"margin: 0 0 %s 0; color: %s;\">%s</p>\n", margin, color, EscapeHTML(part)))
	}
	return sb.String()
}

func renderWebsite(website, color string) string {
	if strings.TrimSpace(website) == "" {
		return ""
	}

	display := formatting.FormatWebsiteDisplay(website)
	href := formatting.FormatWebsiteHref(website)

	return fmt.Sprintf("      <p style=\"margin: 0 0 8px 0;\"><a href=\"%s\" style=\"color: %s; text-decoration: none;\">%s</a></p>\n", EscapeHTML(href), color, EscapeHTML(display))
}

func renderCalendar(calendar, color string) string {
	if strings.TrimSpace(calendar) == "" {
		return ""
	}

	href := formatting.FormatWebsiteHref(calendar)

	return fmt.Sprintf("      <p style=\"margin: 0 0 8px 0;\"><a href=\"%s\" style=\"color: %s; text-decoration: none;\">&#128197; Schedule a Meeting</a></p>\n", EscapeHTML(href), color)
}

// renderSocial emits an inline icon link per present platform in fixed order.
// The solid style recolors every icon to iconColor (falling back to linkColor);
// the branded style uses each platform's official color.
func renderSocial(record types.ContactRecord, opts *types.DesignOptions) string {
	solidColor := opts.IconColor
	if solidColor == "" {
		solidColor = opts.LinkColor
	}

	icons := []string{}
	for _, platform := range socialPlatforms {
		value := strings.TrimSpace(record.Field(platform.Key))
		if value == "" {
			continue
		}

		color := solidColor
		if opts.IconStyle == types.IconStyleBranded {
			color = brandColors[platform.Key]
		}

		url := formatting.FormatSocialURL(value)
		src := SocialIconDataURI(platform.Key, color)
		icons = append(icons, fmt.Sprintf(`<a href="%s" style="text-decoration: none; margin-right: 8px;"><img src="%s" alt="%s" width="20" height="20" style="display: inline-block; vertical-align: middle; border: 0;"></a>`, EscapeHTML(url), src, platform.Alt))
	}

	if len(icons) == 0 {
		return ""
	}

	return fmt.Sprintf("      <p style=\"margin: 0;\">\n        %s\n      </p>\n", strings.Join(icons, "\n        "))
}

// renderDisclaimer escapes each non-blank disclaimer line and joins them with
// line breaks, in small italic text separated from prior content.
func renderDisclaimer(disclaimer, color string) string {
	if strings.TrimSpace(disclaimer) == "" {
		return ""
	}

	lines := []string{}
	for _, line := range strings.Split(strings.TrimSpace(disclaimer), "\n") {
		if v := strings.TrimSpace(line); v != "" {
			lines = append(lines, EscapeHTML(v))
		}
	}
	if len(lines) == 0 {
		return ""
	}

	return fmt.Sprintf("      <p style=\"margin: 16px 0 0 0; font-size: 10px; line-height: 1.3; color: %s; font-style: italic;\">%s</p>\n", color, strings.Join(lines, "<br>"))
}
