// Package specdoc manages workbench specification documents: markdown
// files under specs/ following the Purpose / Requirements / Constraints /
// Acceptance Criteria template. It validates their structure, scaffolds
// new documents, and lints whole spec directories.
package specdoc

import (
	"fmt"
	"regexp"
	"strings"
)

// Pre-compiled patterns for section scanning.
var (
	// nextSectionRe matches markdown section headers (# or ##)
	nextSectionRe = regexp.MustCompile(`(?m)^#{1,2}\s+`)
	// emptySectionRe matches a ## header followed immediately by another ##
	emptySectionRe = regexp.MustCompile(`(?m)^##\s+[^\n]+\n\s*\n##`)
)

// SectionRequirement defines one required section of a spec document.
type SectionRequirement struct {
	Name        string         // Human-readable name
	Pattern     *regexp.Regexp // Regex matching the section header
	MinContent  int            // Minimum content length after header (0 = header only)
	Description string         // Description used in feedback
}

// Result is the output of validating a single spec document.
type Result struct {
	Valid           bool              `json:"valid"`
	MissingSections []string          `json:"missing_sections,omitempty"`
	Warnings        []string          `json:"warnings,omitempty"`
	SectionDetails  map[string]string `json:"section_details,omitempty"`
}

// Validator validates spec documents against section requirements.
type Validator struct {
	RequiredSections []SectionRequirement
	// MinLength is the recommended minimum total document length; shorter
	// documents get a warning, not a failure.
	MinLength int
}

// NewValidator creates a validator for the default spec template.
func NewValidator() *Validator {
	return &Validator{
		MinLength: 400,
		RequiredSections: []SectionRequirement{
			{
				Name:        "Title",
				Pattern:     regexp.MustCompile(`(?m)^#\s+.+`),
				MinContent:  0,
				Description: "Document title (# heading)",
			},
			{
				Name:        "Purpose",
				Pattern:     regexp.MustCompile(`(?mi)^##\s+purpose\b`),
				MinContent:  40,
				Description: "Purpose section explaining what the component is for",
			},
			{
				Name:        "Requirements",
				Pattern:     regexp.MustCompile(`(?mi)^##\s+requirements?\b`),
				MinContent:  80,
				Description: "Requirements section listing observable behavior",
			},
			{
				Name:        "Constraints",
				Pattern:     regexp.MustCompile(`(?mi)^##\s+constraints?\b`),
				MinContent:  20,
				Description: "Constraints section",
			},
			{
				Name:        "Acceptance Criteria",
				Pattern:     regexp.MustCompile(`(?mi)^##\s+acceptance\s+criteria\b`),
				MinContent:  40,
				Description: "Acceptance Criteria section with checkable outcomes",
			},
		},
	}
}

// Validate checks a document against the section requirements.
func (v *Validator) Validate(content string) *Result {
	result := &Result{
		Valid:          true,
		SectionDetails: make(map[string]string),
	}

	for _, req := range v.RequiredSections {
		match := req.Pattern.FindStringIndex(content)
		if match == nil {
			result.Valid = false
			result.MissingSections = append(result.MissingSections,
				fmt.Sprintf("%s: %s", req.Name, req.Description))
			continue
		}

		if req.MinContent > 0 {
			sectionStart := match[1]
			next := findNextSection(content[sectionStart:])
			section := content[sectionStart:]
			if next != -1 {
				section = content[sectionStart : sectionStart+next]
			}
			trimmed := strings.TrimSpace(section)
			if len(trimmed) < req.MinContent {
				result.Valid = false
				result.MissingSections = append(result.MissingSections,
					fmt.Sprintf("%s: Section too short (min %d chars, got %d)",
						req.Name, req.MinContent, len(trimmed)))
			} else {
				result.SectionDetails[req.Name] = fmt.Sprintf("OK (%d chars)", len(trimmed))
			}
		} else {
			result.SectionDetails[req.Name] = "OK"
		}
	}

	result.Warnings = append(result.Warnings, v.checkCommonIssues(content)...)
	return result
}

func findNextSection(content string) int {
	match := nextSectionRe.FindStringIndex(content)
	if match == nil {
		return -1
	}
	return match[0]
}

func (v *Validator) checkCommonIssues(content string) []string {
	var warnings []string

	placeholders := []string{
		"FIXME", "XXX", "TBD",
		"[placeholder]", "[insert", "[add",
		"Lorem ipsum",
	}
	lower := strings.ToLower(content)
	for _, p := range placeholders {
		if strings.Contains(lower, strings.ToLower(p)) {
			warnings = append(warnings, fmt.Sprintf("Contains placeholder text: %s", p))
		}
	}

	if v.MinLength > 0 && len(content) < v.MinLength {
		warnings = append(warnings,
			fmt.Sprintf("Document may be too short (%d chars, recommend at least %d)",
				len(content), v.MinLength))
	}

	if emptySectionRe.MatchString(content) {
		warnings = append(warnings, "Contains empty sections")
	}

	return warnings
}

// FormatFeedback renders validation failures as actionable feedback.
// Returns an empty string for a valid result.
func (r *Result) FormatFeedback() string {
	if r.Valid {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("## Validation Failed\n\n")
	sb.WriteString("The spec document is missing required sections or content.\n\n")

	if len(r.MissingSections) > 0 {
		sb.WriteString("### Missing or Incomplete Sections\n\n")
		for _, section := range r.MissingSections {
			sb.WriteString(fmt.Sprintf("- %s\n", section))
		}
		sb.WriteString("\n")
	}
	if len(r.Warnings) > 0 {
		sb.WriteString("### Warnings\n\n")
		for _, warning := range r.Warnings {
			sb.WriteString(fmt.Sprintf("- %s\n", warning))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("Please revise the document addressing these issues.\n")
	return sb.String()
}
