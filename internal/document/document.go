package document

import "github.com/jonathan/cv-builder/internal/types"

// New returns a structurally complete empty document: every list field is an
// empty slice, never nil, so serialization always emits empty arrays.
func New() *types.CVDocument {
	doc := &types.CVDocument{
		Basics: types.Basics{
			Profiles: []types.Profile{},
		},
	}
	Normalize(doc)
	return doc
}

// Normalize replaces every nil list field with an empty slice. Decoded
// payloads may omit sections entirely; after Normalize the document satisfies
// the lists-are-never-absent invariant.
func Normalize(doc *types.CVDocument) {
	if doc.Basics.Profiles == nil {
		doc.Basics.Profiles = []types.Profile{}
	}
	if doc.Work == nil {
		doc.Work = []types.WorkEntry{}
	}
	for i := range doc.Work {
		if doc.Work[i].Highlights == nil {
			doc.Work[i].Highlights = []string{}
		}
		if doc.Work[i].Achievements == nil {
			doc.Work[i].Achievements = []string{}
		}
	}
	if doc.Education == nil {
		doc.Education = []types.Education{}
	}
	for i := range doc.Education {
		if doc.Education[i].Courses == nil {
			doc.Education[i].Courses = []string{}
		}
	}
	if doc.Certifications == nil {
		doc.Certifications = []types.Certification{}
	}
	if doc.Skills == nil {
		doc.Skills = []types.Skill{}
	}
	for i := range doc.Skills {
		if doc.Skills[i].Keywords == nil {
			doc.Skills[i].Keywords = []string{}
		}
	}
	if doc.Languages == nil {
		doc.Languages = []types.Language{}
	}
	if doc.Projects == nil {
		doc.Projects = []types.Project{}
	}
	for i := range doc.Projects {
		if doc.Projects[i].Technologies == nil {
			doc.Projects[i].Technologies = []string{}
		}
	}
	if doc.Publications == nil {
		doc.Publications = []types.Publication{}
	}
	if doc.Awards == nil {
		doc.Awards = []types.Award{}
	}
	if doc.Volunteer == nil {
		doc.Volunteer = []types.Volunteer{}
	}
	for i := range doc.Volunteer {
		if doc.Volunteer[i].Highlights == nil {
			doc.Volunteer[i].Highlights = []string{}
		}
	}
}
