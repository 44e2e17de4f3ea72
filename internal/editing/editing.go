package editing

import "github.com/jonathan/cv-builder/internal/types"

// Section and field names are the JSON keys of the document schema. Every
// operation takes the current document and returns a new one with exactly the
// targeted change applied; the input document is never mutated.

// SetBasicsField replaces one scalar field under basics. Location scalars are
// addressed by their own leaf names (city, countryCode, address).
func SetBasicsField(doc *types.CVDocument, field, value string) (*types.CVDocument, error) {
	out := clone(doc)
	switch field {
	case "name":
		out.Basics.Name = value
	case "label":
		out.Basics.Label = value
	case "image":
		out.Basics.Image = value
	case "email":
		out.Basics.Email = value
	case "phone":
		out.Basics.Phone = value
	case "summary":
		out.Basics.Summary = value
	case "city":
		out.Basics.Location.City = value
	case "countryCode":
		out.Basics.Location.CountryCode = value
	case "address":
		out.Basics.Location.Address = value
	default:
		return doc, &UnknownFieldError{Section: "basics", Field: field}
	}
	return out, nil
}

// BlankEntry returns the zero-value entry shape for a section, with every
// nested list present and empty.
func BlankEntry(section string) (any, error) {
	switch section {
	case "work":
		return types.WorkEntry{Highlights: []string{}, Achievements: []string{}}, nil
	case "education":
		return types.Education{Courses: []string{}}, nil
	case "certifications":
		return types.Certification{}, nil
	case "skills":
		return types.Skill{Keywords: []string{}}, nil
	case "languages":
		return types.Language{}, nil
	case "projects":
		return types.Project{Technologies: []string{}}, nil
	case "publications":
		return types.Publication{}, nil
	case "awards":
		return types.Award{}, nil
	case "volunteer":
		return types.Volunteer{Highlights: []string{}}, nil
	default:
		return nil, &UnknownSectionError{Section: section}
	}
}

// AppendEntry appends an entry to the end of the named section list. A nil
// entry appends the blank shape for that section. Existing order is
// preserved; the new entry is last.
func AppendEntry(doc *types.CVDocument, section string, entry any) (*types.CVDocument, error) {
	if entry == nil {
		blank, err := BlankEntry(section)
		if err != nil {
			return doc, err
		}
		entry = blank
	}

	out := clone(doc)
	switch section {
	case "work":
		e, ok := entry.(types.WorkEntry)
		if !ok {
			return doc, &EntryTypeError{Section: section, Entry: entry}
		}
		out.Work = append(out.Work, e)
	case "education":
		e, ok := entry.(types.Education)
		if !ok {
			return doc, &EntryTypeError{Section: section, Entry: entry}
		}
		out.Education = append(out.Education, e)
	case "certifications":
		e, ok := entry.(types.Certification)
		if !ok {
			return doc, &EntryTypeError{Section: section, Entry: entry}
		}
		out.Certifications = append(out.Certifications, e)
	case "skills":
		e, ok := entry.(types.Skill)
		if !ok {
			return doc, &EntryTypeError{Section: section, Entry: entry}
		}
		out.Skills = append(out.Skills, e)
	case "languages":
		e, ok := entry.(types.Language)
		if !ok {
			return doc, &EntryTypeError{Section: section, Entry: entry}
		}
		out.Languages = append(out.Languages, e)
	case "projects":
		e, ok := entry.(types.Project)
		if !ok {
			return doc, &EntryTypeError{Section: section, Entry: entry}
		}
		out.Projects = append(out.Projects, e)
	case "publications":
		e, ok := entry.(types.Publication)
		if !ok {
			return doc, &EntryTypeError{Section: section, Entry: entry}
		}
		out.Publications = append(out.Publications, e)
	case "awards":
		e, ok := entry.(types.Award)
		if !ok {
			return doc, &EntryTypeError{Section: section, Entry: entry}
		}
		out.Awards = append(out.Awards, e)
	case "volunteer":
		e, ok := entry.(types.Volunteer)
		if !ok {
			return doc, &EntryTypeError{Section: section, Entry: entry}
		}
		out.Volunteer = append(out.Volunteer, e)
	default:
		return doc, &UnknownSectionError{Section: section}
	}
	return out, nil
}

// UpdateEntryField replaces one scalar field of the entry at index in the
// named section. A stale index fails with IndexOutOfRangeError and the
// original document is returned untouched.
func UpdateEntryField(doc *types.CVDocument, section string, index int, field, value string) (*types.CVDocument, error) {
	length, err := sectionLength(doc, section)
	if err != nil {
		return doc, err
	}
	if index < 0 || index >= length {
		return doc, &IndexOutOfRangeError{Section: section, Index: index, Length: length}
	}

	out := clone(doc)
	if err := setEntryField(out, section, index, field, value); err != nil {
		return doc, err
	}
	return out, nil
}

// RemoveEntry removes the entry at index from the named section, shifting
// subsequent entries left by one. A stale index fails with
// IndexOutOfRangeError and the original document is returned untouched.
func RemoveEntry(doc *types.CVDocument, section string, index int) (*types.CVDocument, error) {
	length, err := sectionLength(doc, section)
	if err != nil {
		return doc, err
	}
	if index < 0 || index >= length {
		return doc, &IndexOutOfRangeError{Section: section, Index: index, Length: length}
	}

	out := clone(doc)
	switch section {
	case "work":
		out.Work = append(out.Work[:index], out.Work[index+1:]...)
	case "education":
		out.Education = append(out.Education[:index], out.Education[index+1:]...)
	case "certifications":
		out.Certifications = append(out.Certifications[:index], out.Certifications[index+1:]...)
	case "skills":
		out.Skills = append(out.Skills[:index], out.Skills[index+1:]...)
	case "languages":
		out.Languages = append(out.Languages[:index], out.Languages[index+1:]...)
	case "projects":
		out.Projects = append(out.Projects[:index], out.Projects[index+1:]...)
	case "publications":
		out.Publications = append(out.Publications[:index], out.Publications[index+1:]...)
	case "awards":
		out.Awards = append(out.Awards[:index], out.Awards[index+1:]...)
	case "volunteer":
		out.Volunteer = append(out.Volunteer[:index], out.Volunteer[index+1:]...)
	}
	return out, nil
}

// sectionLength returns the current length of the named section list.
func sectionLength(doc *types.CVDocument, section string) (int, error) {
	switch section {
	case "work":
		return len(doc.Work), nil
	case "education":
		return len(doc.Education), nil
	case "certifications":
		return len(doc.Certifications), nil
	case "skills":
		return len(doc.Skills), nil
	case "languages":
		return len(doc.Languages), nil
	case "projects":
		return len(doc.Projects), nil
	case "publications":
		return len(doc.Publications), nil
	case "awards":
		return len(doc.Awards), nil
	case "volunteer":
		return len(doc.Volunteer), nil
	default:
		return 0, &UnknownSectionError{Section: section}
	}
}

//nolint:gocyclo // one arm per section/field pair; splitting this up hides the schema
func setEntryField(doc *types.CVDocument, section string, index int, field, value string) error {
	switch section {
	case "work":
		w := &doc.Work[index]
		switch field {
		case "company":
			w.Company = value
		case "position":
			w.Position = value
		case "startDate":
			w.StartDate = value
		case "endDate":
			w.EndDate = value
		case "summary":
			w.Summary = value
		default:
			return &UnknownFieldError{Section: section, Field: field}
		}
	case "education":
		e := &doc.Education[index]
		switch field {
		case "institution":
			e.Institution = value
		case "area":
			e.Area = value
		case "studyType":
			e.StudyType = value
		case "startDate":
			e.StartDate = value
		case "endDate":
			e.EndDate = value
		case "grade":
			e.Grade = value
		default:
			return &UnknownFieldError{Section: section, Field: field}
		}
	case "certifications":
		c := &doc.Certifications[index]
		switch field {
		case "name":
			c.Name = value
		case "issuer":
			c.Issuer = value
		case "date":
			c.Date = value
		case "url":
			c.URL = value
		default:
			return &UnknownFieldError{Section: section, Field: field}
		}
	case "skills":
		s := &doc.Skills[index]
		switch field {
		case "name":
			s.Name = value
		case "level":
			s.Level = value
		default:
			return &UnknownFieldError{Section: section, Field: field}
		}
	case "languages":
		l := &doc.Languages[index]
		switch field {
		case "language":
			l.Language = value
		case "fluency":
			l.Fluency = value
		default:
			return &UnknownFieldError{Section: section, Field: field}
		}
	case "projects":
		p := &doc.Projects[index]
		switch field {
		case "name":
			p.Name = value
		case "description":
			p.Description = value
		case "startDate":
			p.StartDate = value
		case "endDate":
			p.EndDate = value
		case "url":
			p.URL = value
		default:
			return &UnknownFieldError{Section: section, Field: field}
		}
	case "publications":
		p := &doc.Publications[index]
		switch field {
		case "name":
			p.Name = value
		case "publisher":
			p.Publisher = value
		case "releaseDate":
			p.ReleaseDate = value
		case "url":
			p.URL = value
		case "summary":
			p.Summary = value
		default:
			return &UnknownFieldError{Section: section, Field: field}
		}
	case "awards":
		a := &doc.Awards[index]
		switch field {
		case "title":
			a.Title = value
		case "date":
			a.Date = value
		case "awarder":
			a.Awarder = value
		case "summary":
			a.Summary = value
		default:
			return &UnknownFieldError{Section: section, Field: field}
		}
	case "volunteer":
		v := &doc.Volunteer[index]
		switch field {
		case "organization":
			v.Organization = value
		case "position":
			v.Position = value
		case "startDate":
			v.StartDate = value
		case "endDate":
			v.EndDate = value
		case "summary":
			v.Summary = value
		default:
			return &UnknownFieldError{Section: section, Field: field}
		}
	default:
		return &UnknownSectionError{Section: section}
	}
	return nil
}
