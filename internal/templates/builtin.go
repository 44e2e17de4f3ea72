package templates

// Builtin returns a registry populated with the built-in template set.
func Builtin() *Registry {
	r := NewRegistry()
	r.MustRegister(modern())
	r.MustRegister(classic())
	return r
}

func modern() Template {
	return Template{
		ID:          "modern",
		Name:        "Modern",
		Preview:     "/previews/modern.svg",
		Description: "A clean and contemporary design with emphasis on readability",
		Page: PageStyle{
			MarginPt:     30,
			BaseFontSize: 12,
			Background:   "#ffffff",
		},
		Styles: map[string]Style{
			"name": {
				FontSize:     24,
				Color:        "#2196F3",
				MarginBottom: 8,
			},
			"label": {
				FontSize:     16,
				Color:        "#666",
				MarginBottom: 8,
			},
			"summary": {
				FontSize:     12,
				LineHeight:   1.6,
				MarginBottom: 16,
			},
			"sectionTitle": {
				FontSize:     16,
				Padding:      8,
				Color:        "#2196F3",
				MarginBottom: 8,
			},
			"workTitle": {
				FontSize:     14,
				Color:        "#333",
				FontWeight:   "bold",
				MarginBottom: 4,
			},
			"workDates": {
				FontSize:     12,
				Color:        "#666",
				MarginBottom: 4,
			},
			"workSummary": {
				FontSize:     12,
				LineHeight:   1.5,
				MarginBottom: 8,
			},
			"highlight": {
				FontSize:     12,
				MarginBottom: 2,
			},
		},
	}
}

func classic() Template {
	return Template{
		ID:          "classic",
		Name:        "Classic",
		Preview:     "/previews/classic.svg",
		Description: "Traditional and professional layout suitable for all industries",
		Page: PageStyle{
			MarginPt:     30,
			BaseFontSize: 12,
			Background:   "#ffffff",
		},
		Styles: map[string]Style{
			"name": {
				FontSize:     24,
				Color:        "#000",
				MarginBottom: 8,
			},
			"label": {
				FontSize:     16,
				Color:        "#333",
				MarginBottom: 8,
			},
			"summary": {
				FontSize:     12,
				LineHeight:   1.6,
				MarginBottom: 16,
			},
			"sectionTitle": {
				FontSize:      16,
				BorderBottom:  "1pt solid #000",
				PaddingBottom: 8,
				MarginBottom:  8,
			},
			"workTitle": {
				FontSize:     14,
				FontWeight:   "bold",
				MarginBottom: 4,
			},
			"workDates": {
				FontSize:     12,
				Color:        "#333",
				MarginBottom: 4,
			},
			"workSummary": {
				FontSize:     12,
				LineHeight:   1.5,
				MarginBottom: 8,
			},
			"highlight": {
				FontSize:     12,
				MarginBottom: 2,
			},
		},
	}
}
