package content

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// Page holds the header and footer text around the panels.
type Page struct {
	Brand             string
	Title             string
	Subtitle          string
	FlowHeading       string
	FlowIntro         string
	ComponentsHeading string
	DefaultPanel      PanelID
	Footer            string
	Version           string
	Author            string
}

// VersionLabel renders the header version badge, e.g. "Version 1.0".
func (p Page) VersionLabel() string {
	v := canonicalVersion(p.Version)
	if !semver.IsValid(v) {
		return ""
	}
	return "Version " + strings.TrimPrefix(semver.MajorMinor(v), "v")
}

// AuthorLabel renders the header author badge, e.g. "by AmenFlux".
func (p Page) AuthorLabel() string {
	if p.Author == "" {
		return ""
	}
	return "by " + p.Author
}

// validateVersion accepts "1.0.0" as well as "v1.0.0".
func validateVersion(version string) error {
	if version == "" {
		return nil
	}
	if !semver.IsValid(canonicalVersion(version)) {
		return fmt.Errorf("invalid page version %q", version)
	}
	return nil
}

func canonicalVersion(v string) string {
	if v == "" || strings.HasPrefix(v, "v") {
		return v
	}
	return "v" + v
}

// GuideStep is one entry of the getting-started guide.
type GuideStep struct {
	Title  string
	Detail string
}

// Guide is the numbered getting-started list below the panels.
type Guide struct {
	Heading string
	Steps   []GuideStep
}
