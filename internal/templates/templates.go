// Package templates provides the registry of visual templates a CV can be
// rendered with. The registry is built at startup and read-only afterwards.
package templates

import (
	"fmt"
	"strings"
)

// RequiredRegions is the closed set of semantic region names every template
// must style. Renderers look styles up by these names only.
var RequiredRegions = []string{
	"name",
	"label",
	"summary",
	"sectionTitle",
	"workTitle",
	"workDates",
	"workSummary",
	"highlight",
}

// Style describes the visual attributes of one semantic region. Zero values
// mean "inherit"; the CSS method skips them.
type Style struct {
	FontSize      float64 `json:"fontSize,omitempty"`
	Color         string  `json:"color,omitempty"`
	FontWeight    string  `json:"fontWeight,omitempty"`
	LineHeight    float64 `json:"lineHeight,omitempty"`
	MarginBottom  float64 `json:"marginBottom,omitempty"`
	Padding       float64 `json:"padding,omitempty"`
	PaddingBottom float64 `json:"paddingBottom,omitempty"`
	BorderBottom  string  `json:"borderBottom,omitempty"`
}

// CSS renders the style as inline CSS declarations. Only set attributes are
// emitted, so an empty Style renders to an empty string.
func (s Style) CSS() string {
	var parts []string
	if s.FontSize > 0 {
		parts = append(parts, fmt.Sprintf("font-size:%gpt", s.FontSize))
	}
	if s.Color != "" {
		parts = append(parts, "color:"+s.Color)
	}
	if s.FontWeight != "" {
		parts = append(parts, "font-weight:"+s.FontWeight)
	}
	if s.LineHeight > 0 {
		parts = append(parts, fmt.Sprintf("line-height:%g", s.LineHeight))
	}
	if s.MarginBottom > 0 {
		parts = append(parts, fmt.Sprintf("margin-bottom:%gpt", s.MarginBottom))
	}
	if s.Padding > 0 {
		parts = append(parts, fmt.Sprintf("padding:%gpt", s.Padding))
	}
	if s.PaddingBottom > 0 {
		parts = append(parts, fmt.Sprintf("padding-bottom:%gpt", s.PaddingBottom))
	}
	if s.BorderBottom != "" {
		parts = append(parts, "border-bottom:"+s.BorderBottom)
	}
	return strings.Join(parts, ";")
}

// PageStyle holds template-level page attributes used by the print renderer.
type PageStyle struct {
	MarginPt     float64 `json:"marginPt"`
	BaseFontSize float64 `json:"baseFontSize"`
	Background   string  `json:"background"`
}

// Template is one registry entry: an identifier, display metadata, and a
// style map keyed by semantic region name. Entries are immutable once
// registered.
type Template struct {
	ID          string           `json:"id" validate:"required"`
	Name        string           `json:"name" validate:"required"`
	Preview     string           `json:"preview"`
	Description string           `json:"description"`
	Page        PageStyle        `json:"page"`
	Styles      map[string]Style `json:"styles" validate:"required"`
}

// StyleFor returns the style for a semantic region. Undefined region names
// fall back to the empty inherit style rather than erroring.
func (t Template) StyleFor(region string) Style {
	return t.Styles[region]
}
