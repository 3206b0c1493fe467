package types

import "strconv"

// Logo positions.
const (
	LogoPositionLeft = "left"
	LogoPositionTop  = "top"
)

// Logo sizes.
const (
	LogoSizeSmall  = "small"
	LogoSizeMedium = "medium"
	LogoSizeLarge  = "large"
)

// Icon styles.
const (
	IconStyleSolid   = "solid"
	IconStyleBranded = "branded"
)

// DesignOptions is the visual styling configuration applied uniformly to a
// render call. A zero value in any field means "use the default"; callers merge
// partial options over DefaultDesignOptions before rendering.
type DesignOptions struct {
	LogoPosition    string `json:"logoPosition,omitempty"`
	LogoSize        string `json:"logoSize,omitempty"`
	LogoURL         string `json:"logoUrl,omitempty"`
	LogoData        string `json:"logoData,omitempty"`
	NameColor       string `json:"nameColor,omitempty"`
	TitleColor      string `json:"titleColor,omitempty"`
	LinkColor       string `json:"linkColor,omitempty"`
	SeparatorColor  string `json:"separatorColor,omitempty"`
	IconColor       string `json:"iconColor,omitempty"`
	IconStyle       string `json:"iconStyle,omitempty"`
	SeparatorStyle  string `json:"separatorStyle,omitempty"`
	AddBackground   bool   `json:"addBackground,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	FontFamily      string `json:"fontFamily,omitempty"`
}

// DefaultDesignOptions returns the built-in defaults. Colors are chosen for
// dark mode compatibility in email clients.
func DefaultDesignOptions() DesignOptions {
	return DesignOptions{
		LogoPosition:    LogoPositionLeft,
		LogoSize:        LogoSizeMedium,
		NameColor:       "#2c3e50",
		TitleColor:      "#555555",
		LinkColor:       "#2980b9",
		SeparatorColor:  "#555555",
		IconColor:       "#2980b9",
		IconStyle:       IconStyleSolid,
		SeparatorStyle:  "pipe",
		AddBackground:   false,
		BackgroundColor: "#ffffff",
		FontFamily:      "arial",
	}
}

// MergeWithDefaults returns a new DesignOptions with empty string fields filled
// from defaults. Bool fields cannot distinguish unset from false, so false
// always means "no background"; the built-in default is false as well.
func (o DesignOptions) MergeWithDefaults(defaults DesignOptions) DesignOptions {
	result := o

	if result.LogoPosition == "" {
		result.LogoPosition = defaults.LogoPosition
	}
	if result.LogoSize == "" {
		result.LogoSize = defaults.LogoSize
	}
	if result.NameColor == "" {
		result.NameColor = defaults.NameColor
	}
	if result.TitleColor == "" {
		result.TitleColor = defaults.TitleColor
	}
	if result.LinkColor == "" {
		result.LinkColor = defaults.LinkColor
	}
	if result.SeparatorColor == "" {
		result.SeparatorColor = defaults.SeparatorColor
	}
	if result.IconColor == "" {
		result.IconColor = defaults.IconColor
	}
	if result.IconStyle == "" {
		result.IconStyle = defaults.IconStyle
	}
	if result.SeparatorStyle == "" {
		result.SeparatorStyle = defaults.SeparatorStyle
	}
	if result.BackgroundColor == "" {
		result.BackgroundColor = defaults.BackgroundColor
	}
	if result.FontFamily == "" {
		result.FontFamily = defaults.FontFamily
	}
	// LogoURL and LogoData stay as provided; both empty means no logo.

	return result
}

// Normalized returns a copy with every invalid color field replaced by its
// built-in default. Enum-valued fields are left alone: the renderer's lookup
// tables fall back to their defaults for unrecognized values.
func (o DesignOptions) Normalized() DesignOptions {
	defaults := DefaultDesignOptions()
	result := o

	if !IsValidHexColor(result.NameColor) {
		result.NameColor = defaults.NameColor
	}
	if !IsValidHexColor(result.TitleColor) {
		result.TitleColor = defaults.TitleColor
	}
	if !IsValidHexColor(result.LinkColor) {
		result.LinkColor = defaults.LinkColor
	}
	if !IsValidHexColor(result.SeparatorColor) {
		result.SeparatorColor = defaults.SeparatorColor
	}
	if !IsValidHexColor(result.IconColor) {
		result.IconColor = defaults.IconColor
	}
	if !IsValidHexColor(result.BackgroundColor) {
		result.BackgroundColor = defaults.BackgroundColor
	}

	return result
}

// SetLogoURL records an external logo URL and clears any embedded logo data.
// At most one logo source is meaningful at a time.
func (o *DesignOptions) SetLogoURL(url string) {
	o.LogoURL = url
	if url != "" {
		o.LogoData = ""
	}
}

// SetLogoData records an embedded (data URI) logo and clears any logo URL.
func (o *DesignOptions) SetLogoData(data string) {
	o.LogoData = data
	if data != "" {
		o.LogoURL = ""
	}
}

// LogoSource returns the effective logo source: embedded data wins over the
// URL, and "" means no logo.
func (o *DesignOptions) LogoSource() string {
	if o.LogoData != "" {
		return o.LogoData
	}
	return o.LogoURL
}

// OptionKeys lists the flat preference-store keys, one per design field.
var OptionKeys = []string{
	"logoPosition", "logoSize", "logoUrl", "logoData",
	"nameColor", "titleColor", "linkColor", "separatorColor", "iconColor",
	"iconStyle", "separatorStyle", "addBackground", "backgroundColor", "fontFamily",
}

// Option returns the string form of a design field for the flat preference
// store. Unknown keys yield "".
func (o *DesignOptions) Option(key string) string {
	switch key {
	case "logoPosition":
		return o.LogoPosition
	case "logoSize":
		return o.LogoSize
	case "logoUrl":
		return o.LogoURL
	case "logoData":
		return o.LogoData
	case "nameColor":
		return o.NameColor
	case "titleColor":
		return o.TitleColor
	case "linkColor":
		return o.LinkColor
	case "separatorColor":
		return o.SeparatorColor
	case "iconColor":
		return o.IconColor
	case "iconStyle":
		return o.IconStyle
	case "separatorStyle":
		return o.SeparatorStyle
	case "addBackground":
		return strconv.FormatBool(o.AddBackground)
	case "backgroundColor":
		return o.BackgroundColor
	case "fontFamily":
		return o.FontFamily
	}
	return ""
}

// SetOption assigns a design field from its stored string form. A malformed
// addBackground value falls back to false rather than erroring; stored values
// round-trip as strings and must never be trusted blindly.
func (o *DesignOptions) SetOption(key, value string) bool {
	switch key {
	case "logoPosition":
		o.LogoPosition = value
	case "logoSize":
		o.LogoSize = value
	case "logoUrl":
		o.SetLogoURL(value)
	case "logoData":
		o.SetLogoData(value)
	case "nameColor":
		o.NameColor = value
	case "titleColor":
		o.TitleColor = value
	case "linkColor":
		o.LinkColor = value
	case "separatorColor":
		o.SeparatorColor = value
	case "iconColor":
		o.IconColor = value
	case "iconStyle":
		o.IconStyle = value
	case "separatorStyle":
		o.SeparatorStyle = value
	case "addBackground":
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			parsed = false
		}
		o.AddBackground = parsed
	case "backgroundColor":
		o.BackgroundColor = value
	case "fontFamily":
		o.FontFamily = value
	default:
		return false
	}
	return true
}
