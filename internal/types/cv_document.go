// Package types provides type definitions for structured data used throughout the cv-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CVDocument is the normalized representation of a CV. It is treated as an
// immutable value: edit operations return a fresh document and never modify
// one that has already been handed out.
type CVDocument struct {
	Basics         Basics          `json:"basics"`
	Work           []WorkEntry     `json:"work"`
	Education      []Education     `json:"education"`
	Certifications []Certification `json:"certifications"`
	Skills         []Skill         `json:"skills"`
	Languages      []Language      `json:"languages"`
	Projects       []Project       `json:"projects"`
	Publications   []Publication   `json:"publications"`
	Awards         []Award         `json:"awards"`
	Volunteer      []Volunteer     `json:"volunteer"`
}

// Basics holds personal and contact information.
type Basics struct {
	Name     string    `json:"name"`
	Label    string    `json:"label"`
	Image    string    `json:"image"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	Summary  string    `json:"summary"`
	Location Location  `json:"location"`
	Profiles []Profile `json:"profiles"`
}

// Location is a postal location under basics.
type Location struct {
	City        string `json:"city"`
	CountryCode string `json:"countryCode"`
	Address     string `json:"address"`
}

// Profile is a social or professional network link.
type Profile struct {
	Network string `json:"network"`
	URL     string `json:"url"`
}

// WorkEntry is a single position held at a company. EndDate may be the
// literal string "Present".
type WorkEntry struct {
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Summary      string   `json:"summary"`
	Highlights   []string `json:"highlights"`
	Achievements []string `json:"achievements"`
}

// Education is a single period of study.
type Education struct {
	Institution string   `json:"institution"`
	Area        string   `json:"area"`
	StudyType   string   `json:"studyType"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Grade       string   `json:"grade"`
	Courses     []string `json:"courses"`
}

// Certification is a professional certification.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
	URL    string `json:"url"`
}

// Skill groups related keywords under a named competency. Level is a
// free-text label, not a closed enum.
type Skill struct {
	Name     string   `json:"name"`
	Level    string   `json:"level"`
	Keywords []string `json:"keywords"`
}

// Language is a spoken language with a fluency label.
type Language struct {
	Language string `json:"language"`
	Fluency  string `json:"fluency"`
}

// Project is a personal or professional project.
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Technologies []string `json:"technologies"`
	URL          string   `json:"url"`
}

// Publication is a published article or paper.
type Publication struct {
	Name        string `json:"name"`
	Publisher   string `json:"publisher"`
	ReleaseDate string `json:"releaseDate"`
	URL         string `json:"url"`
	Summary     string `json:"summary"`
}

// Award is a recognition or prize.
type Award struct {
	Title   string `json:"title"`
	Date    string `json:"date"`
	Awarder string `json:"awarder"`
	Summary string `json:"summary"`
}

// Volunteer is an unpaid position at an organization.
type Volunteer struct {
	Organization string   `json:"organization"`
	Position     string   `json:"position"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Summary      string   `json:"summary"`
	Highlights   []string `json:"highlights"`
}

// SectionNames lists the list-valued top-level sections of a CVDocument in
// display order. The names double as JSON keys and as the section identifiers
// accepted by the editing operations.
var SectionNames = []string{
	"work",
	"education",
	"certifications",
	"skills",
	"languages",
	"projects",
	"publications",
	"awards",
	"volunteer",
}
