package rendering

import (
	"encoding/base64"
	"fmt"
)

// socialPlatform pairs a record field with its icon metadata. Icons always
// render in this order.
type socialPlatform struct {
	Key string
	Alt string
}

// socialPlatforms is the fixed platform order for the icon row.
var socialPlatforms = []socialPlatform{
	{Key: "facebook", Alt: "Facebook"},
	{Key: "instagram", Alt: "Instagram"},
	{Key: "twitter", Alt: "X"},
	{Key: "linkedin", Alt: "LinkedIn"},
	{Key: "youtube", Alt: "YouTube"},
}

// brandColors are the official platform colors used by the branded icon style.
var brandColors = map[string]string{
	"facebook":  "#1877F2",
	"instagram": "#E4405F",
	"twitter":   "#000000",
	"linkedin":  "#0A66C2",
	"youtube":   "#FF0000",
}

// socialIconSVGs holds the vector icon per platform with a %s placeholder for
// the fill color.
var socialIconSVGs = map[string]string{
	"facebook":  `<svg xmlns="http://www.w3.org/2000/svg" width="20" height="20" viewBox="0 0 24 24" fill="%s"><path d="M24 12.073c0-6.627-5.373-12-12-12s-12 5.373-12 12c0 5.99 4.388 10.954 10.125 11.854v-8.385H7.078v-3.47h3.047V9.43c0-3.007 1.792-4.669 4.533-4.669 1.312 0 2.686.235 2.686.235v2.953H15.83c-1.491 0-1.956.925-1.956 1.874v2.25h3.328l-.532 3.47h-2.796v8.385C19.612 23.027 24 18.062 24 12.073z"/></svg>`,
	"instagram": `<svg xmlns="http://www.w3.org/2000/svg" width="20" height="20" viewBox="0 0 24 24" fill="%s"><path d="M12 2.163c3.204 0 3.584.012 4.85.07 3.252.148 4.771 1.691 4.919 4.919.058 1.265.069 1.645.069 4.849 0 3.205-.012 3.584-.069 4.849-.149 3.225-1.664 4.771-4.919 4.919-1.266.058-1.644.07-4.85.07-3.204 0-3.584-.012-4.849-.07-3.26-.149-4.771-1.699-4.919-4.92-.058-1.265-.07-1.644-.07-4.849 0-3.204.013-3.583.07-4.849.149-3.227 1.664-4.771 4.919-4.919 1.266-.057 1.645-.069 4.849-.069zM12 0h-2.163c-3.259 0-3.667.014-4.947.072-4.358.2-6.078 1.915-6.278 6.278-.058 1.28-.072 1.688-.072 4.948 0 3.259.014 3.668.072 4.948.2 4.358 1.915 6.078 6.278 6.278 1.28.058 1.688.072 4.947.072 3.259 0 3.668-.014 4.948-.072 4.354-.2 6.073-1.915 6.278-6.278.058-1.28.072-1.689.072-4.948 0-3.259-.014-3.667-.072-4.947-.2-4.354-1.915-6.073-6.278-6.278-1.28-.058-1.689-.072-4.948-.072zM12 5.838a6.162 6.162 0 1 0 0 12.324 6.162 6.162 0 0 0 0-12.324zM12 16a4 4 0 1 1 0-8 4 4 0 0 1 0 8zm6.406-11.845a1.44 1.44 0 1 0 0 2.88 1.44 1.44 0 0 0 0-2.88z"/></svg>`,
	"twitter":   `<svg xmlns="http://www.w3.org/2000/svg" width="20" height="20" viewBox="0 0 24 24" fill="%s"><path d="M18.244 2.25h3.308l-7.227 8.26 8.502 11.24H16.17l-5.214-6.817L4.99 21.75H1.68l7.73-8.835L.25 2.25H6.96l4.714 6.231zm-1.161 17.52h1.833L5.86 3.926H3.858z"/></svg>`,
	"linkedin":  `<svg xmlns="http://www.w3.org/2000/svg" width="20" height="20" viewBox="0 0 24 24" fill="%s"><path d="M20.447 20.452h-3.554v-5.569c0-1.328-.027-3.037-1.852-3.037-1.853 0-2.136 1.445-2.136 2.939v5.667H9.351V9h3.414v1.561h.046c.477-.9 1.637-1.85 3.37-1.85 3.601 0 4.267 2.37 4.267 5.455v6.286zM5.337 7.433c-1.144 0-2.063-.926-2.063-2.065 0-1.138.92-2.063 2.063-2.063 1.14 0 2.064.925 2.064 2.063 0 1.139-.925 2.065-2.064 2.065zm1.782 13.019H3.555V9h3.564v11.452zM22.225 0H1.771C.792 0 0 .774 0 1.729v20.542C0 23.227.792 24 1.771 24h20.451C23.2 24 24 23.227 24 22.271V1.729C24 .774 23.2 0 22.222 0h.003z"/></svg>`,
	"youtube":   `<svg xmlns="http://www.w3.org/2000/svg" width="20" height="20" viewBox="0 0 24 24" fill="%s"><path d="M23.498 6.186a3.016 3.016 0 0 0-2.122-2.136C19.505 3.545 12 3.545 12 3.545s-7.505 0-9.377.505A3.017 3.017 0 0 0 .502 6.186C0 8.07 0 12 0 12s0 3.93.502 5.814a3.016 3.016 0 0 0 2.122 2.136c1.871.505 9.376.505 9.376.505s7.505 0 9.377-.505a3.015 3.015 0 0 0 2.122-2.136C24 15.93 24 12 24 12s0-3.93-.502-5.814zM9.545 15.568V8.432L15.818 12l-6.273 3.568z"/></svg>`,
}

// SocialIconDataURI returns the platform icon recolored to the given fill as a
// base64 SVG data URI, or "" for an unknown platform.
func SocialIconDataURI(platform, color string) string {
	svg, ok := socialIconSVGs[platform]
	if !ok {
		return ""
	}
	filled := fmt.Sprintf(svg, color)
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(filled))
}
