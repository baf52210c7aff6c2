package domain

import "strings"

// BrowserName identifies a browser family.
type BrowserName int

const (
	BrowserUnknown BrowserName = iota
	BrowserInternetExplorer
	BrowserFirefox
	BrowserChrome
	BrowserOpera
	BrowserSafari
	BrowserDolphin
	BrowserKonqueror
	BrowserLinx
)

var browserNames = map[BrowserName]string{
	BrowserUnknown:          "Unknown",
	BrowserInternetExplorer: "InternetExplorer",
	BrowserFirefox:          "Firefox",
	BrowserChrome:           "Chrome",
	BrowserOpera:            "Opera",
	BrowserSafari:           "Safari",
	BrowserDolphin:          "Dolphin",
	BrowserKonqueror:        "Konqueror",
	BrowserLinx:             "Linx",
}

func (n BrowserName) String() string {
	if s, ok := browserNames[n]; ok {
		return s
	}
	return browserNames[BrowserUnknown]
}

// Browser is the browser a speaker used to submit the registration.
// The zero value is an Unknown browser with major version 0.
type Browser struct {
	Name         BrowserName `json:"name"`
	MajorVersion int         `json:"major_version"`
}

// NewBrowser classifies label with ParseBrowserName and returns the resulting Browser.
func NewBrowser(label string, majorVersion int) Browser {
	return Browser{
		Name:         ParseBrowserName(label),
		MajorVersion: majorVersion,
	}
}

// ParseBrowserName only recognizes Internet Explorer: any label containing "IE" maps to it,
// every other label is Unknown. Eligibility relies on exactly this behavior.
func ParseBrowserName(label string) BrowserName {
	if strings.Contains(label, "IE") {
		return BrowserInternetExplorer
	}
	return BrowserUnknown
}

// IsLegacyInternetExplorer reports whether the browser is Internet Explorer older than version 9.
func (b Browser) IsLegacyInternetExplorer() bool {
	return b.Name == BrowserInternetExplorer && b.MajorVersion < 9
}
