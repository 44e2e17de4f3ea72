package editing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-builder/internal/document"
	"github.com/jonathan/cv-builder/internal/types"
)

func TestSetBasicsField(t *testing.T) {
	tests := []struct {
		field string
		value string
		read  func(d *types.CVDocument) string
	}{
		{"name", "Jane Doe", func(d *types.CVDocument) string { return d.Basics.Name }},
		{"label", "Staff Engineer", func(d *types.CVDocument) string { return d.Basics.Label }},
		{"email", "jane@example.com", func(d *types.CVDocument) string { return d.Basics.Email }},
		{"phone", "+44 20 7946 0000", func(d *types.CVDocument) string { return d.Basics.Phone }},
		{"summary", "Short summary", func(d *types.CVDocument) string { return d.Basics.Summary }},
		{"city", "London", func(d *types.CVDocument) string { return d.Basics.Location.City }},
		{"countryCode", "GB", func(d *types.CVDocument) string { return d.Basics.Location.CountryCode }},
		{"address", "1 Main Road", func(d *types.CVDocument) string { return d.Basics.Location.Address }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			doc := document.Sample()
			updated, err := SetBasicsField(doc, tt.field, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.value, tt.read(updated))
		})
	}
}

func TestSetBasicsField_UnknownField(t *testing.T) {
	doc := document.Sample()
	returned, err := SetBasicsField(doc, "nickname", "JD")
	require.Error(t, err)

	var unknownField *UnknownFieldError
	assert.True(t, errors.As(err, &unknownField))
	assert.Same(t, doc, returned)
}

func TestSetBasicsField_DoesNotMutateInput(t *testing.T) {
	doc := document.Sample()
	updated, err := SetBasicsField(doc, "name", "Jane Doe")
	require.NoError(t, err)

	assert.Equal(t, "John Doe", doc.Basics.Name)
	assert.Equal(t, "Jane Doe", updated.Basics.Name)
}

func TestAppendEntry_BlankIsLast(t *testing.T) {
	doc := document.Sample()
	updated, err := AppendEntry(doc, "education", nil)
	require.NoError(t, err)

	require.Len(t, updated.Education, len(doc.Education)+1)
	last := updated.Education[len(updated.Education)-1]
	assert.Equal(t, "", last.Institution)
	assert.NotNil(t, last.Courses)

	// Existing entries keep their order and values.
	assert.Equal(t, doc.Education, updated.Education[:len(doc.Education)])
}

func TestAppendThenUpdate(t *testing.T) {
	doc := document.Sample()

	withBlank, err := AppendEntry(doc, "education", nil)
	require.NoError(t, err)

	lastIndex := len(withBlank.Education) - 1
	updated, err := UpdateEntryField(withBlank, "education", lastIndex, "institution", "MIT")
	require.NoError(t, err)

	assert.Equal(t, "MIT", updated.Education[lastIndex].Institution)
	assert.Equal(t, doc.Education, updated.Education[:len(doc.Education)])
	assert.Equal(t, doc.Work, updated.Work)
	assert.Equal(t, doc.Basics, updated.Basics)
}

func TestAppendEntry_CallerSuppliedEntry(t *testing.T) {
	doc := document.New()
	entry := types.WorkEntry{
		Company:      "Tech Corp",
		Position:     "Engineer",
		Highlights:   []string{},
		Achievements: []string{},
	}

	updated, err := AppendEntry(doc, "work", entry)
	require.NoError(t, err)
	require.Len(t, updated.Work, 1)
	assert.Equal(t, "Tech Corp", updated.Work[0].Company)
}

func TestAppendEntry_UnknownSection(t *testing.T) {
	doc := document.New()
	returned, err := AppendEntry(doc, "hobbies", nil)
	require.Error(t, err)

	var unknownSection *UnknownSectionError
	assert.True(t, errors.As(err, &unknownSection))
	assert.Same(t, doc, returned)
}

func TestAppendEntry_MismatchedEntryType(t *testing.T) {
	doc := document.Sample()
	returned, err := AppendEntry(doc, "work", types.Skill{Name: "Go"})
	require.Error(t, err)

	var entryType *EntryTypeError
	require.True(t, errors.As(err, &entryType))
	assert.Equal(t, "work", entryType.Section)
	assert.Contains(t, err.Error(), "types.Skill")
	assert.Same(t, doc, returned)
}

func TestUpdateEntryField_IndexOutOfRange(t *testing.T) {
	doc := document.Sample()
	require.Len(t, doc.Work, 1)

	returned, err := UpdateEntryField(doc, "work", 2, "company", "Ghost Corp")
	require.Error(t, err)

	var outOfRange *IndexOutOfRangeError
	require.True(t, errors.As(err, &outOfRange))
	assert.Equal(t, "work", outOfRange.Section)
	assert.Equal(t, 2, outOfRange.Index)
	assert.Same(t, doc, returned)
}

func TestRemoveEntry_IndexOutOfRange(t *testing.T) {
	doc := document.New()
	for i := 0; i < 2; i++ {
		var err error
		doc, err = AppendEntry(doc, "work", nil)
		require.NoError(t, err)
	}

	returned, err := RemoveEntry(doc, "work", 2)
	require.Error(t, err)

	var outOfRange *IndexOutOfRangeError
	assert.True(t, errors.As(err, &outOfRange))
	assert.Same(t, doc, returned)
	assert.Len(t, returned.Work, 2)
}

func TestRemoveEntry_PreservesRelativeOrder(t *testing.T) {
	doc := document.New()
	for _, company := range []string{"A", "B", "C", "D"} {
		entry := types.WorkEntry{Company: company, Highlights: []string{}, Achievements: []string{}}
		var err error
		doc, err = AppendEntry(doc, "work", entry)
		require.NoError(t, err)
	}

	updated, err := RemoveEntry(doc, "work", 1)
	require.NoError(t, err)

	require.Len(t, updated.Work, 3)
	assert.Equal(t, "A", updated.Work[0].Company)
	assert.Equal(t, "C", updated.Work[1].Company)
	assert.Equal(t, "D", updated.Work[2].Company)

	// The input document still holds all four entries.
	require.Len(t, doc.Work, 4)
	assert.Equal(t, "B", doc.Work[1].Company)
}

func TestUpdateEntryField_SnapshotIndependence(t *testing.T) {
	v1 := document.Sample()
	v2, err := UpdateEntryField(v1, "work", 0, "company", "New Corp")
	require.NoError(t, err)
	v3, err := UpdateEntryField(v2, "work", 0, "company", "Newer Corp")
	require.NoError(t, err)

	assert.Equal(t, "Tech Corp", v1.Work[0].Company)
	assert.Equal(t, "New Corp", v2.Work[0].Company)
	assert.Equal(t, "Newer Corp", v3.Work[0].Company)
}

func TestUpdateEntryField_NestedSliceIsolation(t *testing.T) {
	v1 := document.Sample()
	v2, err := UpdateEntryField(v1, "work", 0, "summary", "changed")
	require.NoError(t, err)

	v2.Work[0].Highlights[0] = "tampered"
	assert.Equal(t,
		"Architected and implemented microservices architecture reducing system latency by 40%",
		v1.Work[0].Highlights[0])
}

func TestBlankEntry_AllSections(t *testing.T) {
	for _, section := range types.SectionNames {
		t.Run(section, func(t *testing.T) {
			blank, err := BlankEntry(section)
			require.NoError(t, err)
			assert.NotNil(t, blank)
		})
	}

	_, err := BlankEntry("nope")
	assert.Error(t, err)
}
