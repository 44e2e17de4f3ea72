package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-builder/internal/document"
	"github.com/jonathan/cv-builder/internal/types"
)

func sectionTitles(frags []Fragment) []string {
	var titles []string
	for _, f := range frags {
		if f.Kind == KindSectionStart {
			titles = append(titles, f.Text)
		}
	}
	return titles
}

func TestWalk_SectionOrder(t *testing.T) {
	frags := Walk(document.Sample())

	assert.Equal(t, []string{
		"Work Experience",
		"Education",
		"Skills",
		"Certifications",
		"Languages",
		"Projects",
		"Publications",
		"Awards & Achievements",
		"Volunteer Experience",
	}, sectionTitles(frags))
}

func TestWalk_EmptyExtensionSectionsOmitted(t *testing.T) {
	frags := Walk(document.New())

	// Work, education and skills always appear; empty extensions do not.
	assert.Equal(t, []string{
		"Work Experience",
		"Education",
		"Skills",
	}, sectionTitles(frags))
}

func TestWalk_HeaderComesFirst(t *testing.T) {
	frags := Walk(document.Sample())

	require.NotEmpty(t, frags)
	assert.Equal(t, KindText, frags[0].Kind)
	assert.Equal(t, "name", frags[0].Region)
	assert.Equal(t, "John Doe", frags[0].Text)
	assert.Equal(t, "label", frags[1].Region)
}

func TestWalk_WorkEntryFields(t *testing.T) {
	doc := document.New()
	doc.Work = []types.WorkEntry{
		{
			Company:      "Tech Corp",
			Position:     "Engineer",
			StartDate:    "2020-01",
			EndDate:      "Present",
			Summary:      "Built things",
			Highlights:   []string{"Did X"},
			Achievements: []string{"Won Y"},
		},
	}

	frags := Walk(doc)

	var texts []string
	var regions []string
	inWork := false
	for _, f := range frags {
		if f.Kind == KindSectionStart {
			inWork = f.Text == "Work Experience"
			continue
		}
		if !inWork {
			continue
		}
		if f.Kind == KindText || f.Kind == KindHighlight {
			texts = append(texts, f.Text)
			regions = append(regions, f.Region)
		}
	}

	assert.Equal(t, []string{
		"Engineer at Tech Corp",
		"2020-01 - Present",
		"Built things",
		"Did X",
		"Won Y",
	}, texts)
	assert.Equal(t, []string{"workTitle", "workDates", "workSummary", "highlight", "highlight"}, regions)
}

func TestWalk_EntriesKeepListOrder(t *testing.T) {
	doc := document.New()
	doc.Skills = []types.Skill{
		{Name: "First", Keywords: []string{}},
		{Name: "Second", Keywords: []string{}},
		{Name: "Third", Keywords: []string{}},
	}

	frags := Walk(doc)

	var titles []string
	for _, f := range frags {
		if f.Region == "workTitle" {
			titles = append(titles, f.Text)
		}
	}
	assert.Equal(t, []string{"First", "Second", "Third"}, titles)
}

func TestWalk_Deterministic(t *testing.T) {
	doc := document.Sample()
	assert.Equal(t, Walk(doc), Walk(doc))
}

func TestJoinWith_EmptySides(t *testing.T) {
	assert.Equal(t, "Engineer at Tech Corp", joinAt("Engineer", "Tech Corp"))
	assert.Equal(t, "Tech Corp", joinAt("", "Tech Corp"))
	assert.Equal(t, "Engineer", joinAt("Engineer", ""))
	assert.Equal(t, "", joinAt("", ""))
}

func TestDateRange_BothEmpty(t *testing.T) {
	assert.Equal(t, "", dateRange("", ""))
	assert.Equal(t, "2020 - ", dateRange("2020", ""))
}
