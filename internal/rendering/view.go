package rendering

import (
	"github.com/jonathan/cv-builder/internal/templates"
	"github.com/jonathan/cv-builder/internal/types"
)

// View is the renderer-facing shape of one walked document: header lines
// followed by titled sections of entries, with every style already resolved
// to CSS through the template registry. Both output targets consume it.
type View struct {
	TemplateID string
	Title      string
	Page       templates.PageStyle
	Header     []LineView
	Sections   []SectionView
}

// LineView is a single styled line of text.
type LineView struct {
	CSS    string
	Text   string
	Bullet bool
}

// SectionView is a titled group of entries.
type SectionView struct {
	Title    string
	TitleCSS string
	Entries  []EntryView
}

// EntryView is one entry's lines.
type EntryView struct {
	Lines []LineView
}

// BuildView walks the document and resolves every fragment's region against
// the template. Empty text lines are dropped; region-less lines render with
// inherited styling.
func BuildView(doc *types.CVDocument, tpl templates.Template) View {
	view := View{
		TemplateID: tpl.ID,
		Title:      doc.Basics.Name,
		Page:       tpl.Page,
	}

	var section *SectionView
	var entry *EntryView

	for _, frag := range Walk(doc) {
		switch frag.Kind {
		case KindSectionStart:
			view.Sections = append(view.Sections, SectionView{
				Title:    frag.Text,
				TitleCSS: tpl.StyleFor(frag.Region).CSS(),
			})
			section = &view.Sections[len(view.Sections)-1]
		case KindSectionEnd:
			section = nil
		case KindEntryStart:
			section.Entries = append(section.Entries, EntryView{})
			entry = &section.Entries[len(section.Entries)-1]
		case KindEntryEnd:
			entry = nil
		case KindText, KindHighlight:
			if frag.Text == "" {
				continue
			}
			line := LineView{
				CSS:    tpl.StyleFor(frag.Region).CSS(),
				Text:   frag.Text,
				Bullet: frag.Kind == KindHighlight,
			}
			switch {
			case entry != nil:
				entry.Lines = append(entry.Lines, line)
			case section != nil:
				// Section-level line outside an entry; none are emitted
				// today but the shape allows it.
				section.Entries = append(section.Entries, EntryView{Lines: []LineView{line}})
			default:
				view.Header = append(view.Header, line)
			}
		}
	}

	return view
}
