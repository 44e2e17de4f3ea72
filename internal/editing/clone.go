package editing

import "github.com/jonathan/cv-builder/internal/types"

// copySlice reallocates a slice, preserving non-nil empties so the
// lists-are-never-absent invariant survives every clone.
func copySlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// clone produces a deep copy of a document. Every slice is reallocated so
// that mutating the copy can never leak into a previously returned snapshot.
func clone(doc *types.CVDocument) *types.CVDocument {
	out := *doc

	out.Basics.Profiles = copySlice(doc.Basics.Profiles)

	out.Work = copySlice(doc.Work)
	for i := range out.Work {
		out.Work[i].Highlights = copySlice(out.Work[i].Highlights)
		out.Work[i].Achievements = copySlice(out.Work[i].Achievements)
	}

	out.Education = copySlice(doc.Education)
	for i := range out.Education {
		out.Education[i].Courses = copySlice(out.Education[i].Courses)
	}

	out.Certifications = copySlice(doc.Certifications)

	out.Skills = copySlice(doc.Skills)
	for i := range out.Skills {
		out.Skills[i].Keywords = copySlice(out.Skills[i].Keywords)
	}

	out.Languages = copySlice(doc.Languages)

	out.Projects = copySlice(doc.Projects)
	for i := range out.Projects {
		out.Projects[i].Technologies = copySlice(out.Projects[i].Technologies)
	}

	out.Publications = copySlice(doc.Publications)
	out.Awards = copySlice(doc.Awards)

	out.Volunteer = copySlice(doc.Volunteer)
	for i := range out.Volunteer {
		out.Volunteer[i].Highlights = copySlice(out.Volunteer[i].Highlights)
	}

	return &out
}
