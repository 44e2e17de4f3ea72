// Package rendering provides the shared document traversal and the on-screen
// HTML projection of a CVDocument.
package rendering

import (
	"fmt"
	"strings"

	"github.com/jonathan/cv-builder/internal/types"
)

// Kind classifies a fragment emitted by the document walk.
type Kind string

const (
	// KindText is a plain text line styled by its region.
	KindText Kind = "text"
	// KindHighlight is a bulleted line.
	KindHighlight Kind = "highlight"
	// KindSectionStart opens a titled section; Text holds the title.
	KindSectionStart Kind = "section_start"
	// KindSectionEnd closes the current section.
	KindSectionEnd Kind = "section_end"
	// KindEntryStart opens one entry inside a section.
	KindEntryStart Kind = "entry_start"
	// KindEntryEnd closes the current entry.
	KindEntryEnd Kind = "entry_end"
)

// Fragment is one step of the document walk: a semantic region name, the text
// content for it, and how the adapters should treat it. Region may be empty
// for layout-mechanical lines that no template styles.
type Fragment struct {
	Kind   Kind
	Region string
	Text   string
}

// Section titles shared by both rendering targets.
const (
	titleWork           = "Work Experience"
	titleEducation      = "Education"
	titleSkills         = "Skills"
	titleCertifications = "Certifications"
	titleLanguages      = "Languages"
	titleProjects       = "Projects"
	titlePublications   = "Publications"
	titleAwards         = "Awards & Achievements"
	titleVolunteer      = "Volunteer Experience"
)

// Walk flattens a document into the fixed traversal order both renderers
// share: basics header, summary, work, education, skills, then the optional
// extension sections when present. Screen and print output are projections of
// this one stream, so they cannot drift apart on section order or field set.
func Walk(doc *types.CVDocument) []Fragment {
	var frags []Fragment
	emit := func(kind Kind, region, text string) {
		frags = append(frags, Fragment{Kind: kind, Region: region, Text: text})
	}

	// Basics header.
	emit(KindText, "name", doc.Basics.Name)
	emit(KindText, "label", doc.Basics.Label)
	if contact := contactLine(doc.Basics); contact != "" {
		emit(KindText, "", contact)
	}
	if loc := locationLine(doc.Basics.Location); loc != "" {
		emit(KindText, "", loc)
	}
	for _, p := range doc.Basics.Profiles {
		emit(KindText, "", fmt.Sprintf("%s: %s", p.Network, p.URL))
	}
	emit(KindText, "summary", doc.Basics.Summary)

	// Work.
	emit(KindSectionStart, "sectionTitle", titleWork)
	for _, w := range doc.Work {
		emit(KindEntryStart, "", "")
		emit(KindText, "workTitle", joinAt(w.Position, w.Company))
		emit(KindText, "workDates", dateRange(w.StartDate, w.EndDate))
		emit(KindText, "workSummary", w.Summary)
		for _, h := range w.Highlights {
			emit(KindHighlight, "highlight", h)
		}
		for _, a := range w.Achievements {
			emit(KindHighlight, "highlight", a)
		}
		emit(KindEntryEnd, "", "")
	}
	emit(KindSectionEnd, "", "")

	// Education.
	emit(KindSectionStart, "sectionTitle", titleEducation)
	for _, e := range doc.Education {
		emit(KindEntryStart, "", "")
		emit(KindText, "workTitle", joinIn(e.StudyType, e.Area))
		emit(KindText, "workDates", dateRange(e.StartDate, e.EndDate))
		emit(KindText, "workSummary", e.Institution)
		if e.Grade != "" {
			emit(KindText, "workSummary", "Grade: "+e.Grade)
		}
		if len(e.Courses) > 0 {
			emit(KindText, "workSummary", strings.Join(e.Courses, ", "))
		}
		emit(KindEntryEnd, "", "")
	}
	emit(KindSectionEnd, "", "")

	// Skills.
	emit(KindSectionStart, "sectionTitle", titleSkills)
	for _, s := range doc.Skills {
		emit(KindEntryStart, "", "")
		emit(KindText, "workTitle", joinDash(s.Name, s.Level))
		emit(KindText, "workSummary", strings.Join(s.Keywords, ", "))
		emit(KindEntryEnd, "", "")
	}
	emit(KindSectionEnd, "", "")

	// Extension sections, present only when non-empty.
	if len(doc.Certifications) > 0 {
		emit(KindSectionStart, "sectionTitle", titleCertifications)
		for _, c := range doc.Certifications {
			emit(KindEntryStart, "", "")
			emit(KindText, "workTitle", c.Name)
			emit(KindText, "workDates", joinPipe("Issuer: "+c.Issuer, "Date: "+c.Date))
			if c.URL != "" {
				emit(KindText, "workSummary", c.URL)
			}
			emit(KindEntryEnd, "", "")
		}
		emit(KindSectionEnd, "", "")
	}

	if len(doc.Languages) > 0 {
		emit(KindSectionStart, "sectionTitle", titleLanguages)
		for _, l := range doc.Languages {
			emit(KindEntryStart, "", "")
			emit(KindText, "workSummary", joinDash(l.Language, l.Fluency))
			emit(KindEntryEnd, "", "")
		}
		emit(KindSectionEnd, "", "")
	}

	if len(doc.Projects) > 0 {
		emit(KindSectionStart, "sectionTitle", titleProjects)
		for _, p := range doc.Projects {
			emit(KindEntryStart, "", "")
			emit(KindText, "workTitle", p.Name)
			emit(KindText, "workDates", dateRange(p.StartDate, p.EndDate))
			emit(KindText, "workSummary", p.Description)
			if len(p.Technologies) > 0 {
				emit(KindText, "workSummary", "Technologies: "+strings.Join(p.Technologies, ", "))
			}
			if p.URL != "" {
				emit(KindText, "workSummary", p.URL)
			}
			emit(KindEntryEnd, "", "")
		}
		emit(KindSectionEnd, "", "")
	}

	if len(doc.Publications) > 0 {
		emit(KindSectionStart, "sectionTitle", titlePublications)
		for _, p := range doc.Publications {
			emit(KindEntryStart, "", "")
			emit(KindText, "workTitle", p.Name)
			emit(KindText, "workDates", fmt.Sprintf("Published in %s (%s)", p.Publisher, p.ReleaseDate))
			emit(KindText, "workSummary", p.Summary)
			if p.URL != "" {
				emit(KindText, "workSummary", p.URL)
			}
			emit(KindEntryEnd, "", "")
		}
		emit(KindSectionEnd, "", "")
	}

	if len(doc.Awards) > 0 {
		emit(KindSectionStart, "sectionTitle", titleAwards)
		for _, a := range doc.Awards {
			emit(KindEntryStart, "", "")
			emit(KindText, "workTitle", a.Title)
			emit(KindText, "workDates", joinDash(a.Awarder, a.Date))
			emit(KindText, "workSummary", a.Summary)
			emit(KindEntryEnd, "", "")
		}
		emit(KindSectionEnd, "", "")
	}

	if len(doc.Volunteer) > 0 {
		emit(KindSectionStart, "sectionTitle", titleVolunteer)
		for _, v := range doc.Volunteer {
			emit(KindEntryStart, "", "")
			emit(KindText, "workTitle", joinAt(v.Position, v.Organization))
			emit(KindText, "workDates", dateRange(v.StartDate, v.EndDate))
			emit(KindText, "workSummary", v.Summary)
			for _, h := range v.Highlights {
				emit(KindHighlight, "highlight", h)
			}
			emit(KindEntryEnd, "", "")
		}
		emit(KindSectionEnd, "", "")
	}

	return frags
}

func contactLine(b types.Basics) string {
	return joinPipe(b.Email, b.Phone)
}

func locationLine(l types.Location) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{l.Address, l.City, l.CountryCode} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func dateRange(start, end string) string {
	if start == "" && end == "" {
		return ""
	}
	return start + " - " + end
}

func joinAt(a, b string) string {
	return joinWith(a, b, " at ")
}

func joinIn(a, b string) string {
	return joinWith(a, b, " in ")
}

func joinDash(a, b string) string {
	return joinWith(a, b, " - ")
}

func joinPipe(a, b string) string {
	return joinWith(a, b, " | ")
}

// joinWith drops the separator when either side is empty so blank fields do
// not leave dangling connectors in the output.
func joinWith(a, b, sep string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + sep + b
	}
}
