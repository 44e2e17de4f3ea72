package document

import "github.com/jonathan/cv-builder/internal/types"

// Sample returns the built-in sample document used to seed a new session.
func Sample() *types.CVDocument {
	doc := &types.CVDocument{
		Basics: types.Basics{
			Name:    "John Doe",
			Label:   "Senior Software Engineer",
			Image:   "https://via.placeholder.com/150",
			Email:   "john@example.com",
			Phone:   "+1 234 567 890",
			Summary: "Innovative Senior Software Engineer with 5+ years of experience in developing scalable web applications and leading development teams. Proven track record in delivering high-performance solutions and mentoring junior developers.",
			Location: types.Location{
				City:        "San Francisco",
				CountryCode: "US",
				Address:     "123 Tech Street",
			},
			Profiles: []types.Profile{
				{Network: "LinkedIn", URL: "https://linkedin.com/in/johndoe"},
				{Network: "GitHub", URL: "https://github.com/johndoe"},
			},
		},
		Work: []types.WorkEntry{
			{
				Company:   "Tech Corp",
				Position:  "Senior Software Engineer",
				StartDate: "2020-01",
				EndDate:   "Present",
				Summary:   "Led development of cloud-based solutions and mentored junior developers",
				Highlights: []string{
					"Architected and implemented microservices architecture reducing system latency by 40%",
					"Led a team of 5 developers in delivering critical features on time",
					"Implemented CI/CD pipeline reducing deployment time by 60%",
				},
				Achievements: []string{
					"Employee of the Year 2021",
					"Successfully delivered 3 major projects under budget",
				},
			},
		},
		Education: []types.Education{
			{
				Institution: "University of Technology",
				Area:        "Computer Science",
				StudyType:   "Bachelor",
				StartDate:   "2015",
				EndDate:     "2019",
				Grade:       "3.8 GPA",
				Courses: []string{
					"Advanced Algorithms",
					"Software Engineering",
					"Database Systems",
				},
			},
		},
		Certifications: []types.Certification{
			{
				Name:   "AWS Certified Solutions Architect",
				Issuer: "Amazon Web Services",
				Date:   "2021",
				URL:    "https://aws.amazon.com/certification",
			},
		},
		Skills: []types.Skill{
			{
				Name:     "Programming Languages",
				Level:    "Expert",
				Keywords: []string{"JavaScript", "TypeScript", "Python", "Java"},
			},
			{
				Name:     "Technologies",
				Level:    "Advanced",
				Keywords: []string{"React", "Node.js", "Docker", "Kubernetes"},
			},
		},
		Languages: []types.Language{
			{Language: "English", Fluency: "Native"},
			{Language: "Spanish", Fluency: "Professional"},
		},
		Projects: []types.Project{
			{
				Name:         "E-commerce Platform",
				Description:  "Built a scalable e-commerce platform handling 10k+ daily users",
				StartDate:    "2021-03",
				EndDate:      "2021-12",
				Technologies: []string{"React", "Node.js", "MongoDB", "AWS"},
				URL:          "https://project.example.com",
			},
		},
		Publications: []types.Publication{
			{
				Name:        "Modern Web Architecture",
				Publisher:   "Tech Journal",
				ReleaseDate: "2022",
				URL:         "https://journal.example.com/article",
				Summary:     "Published article on modern web architecture patterns",
			},
		},
		Awards: []types.Award{
			{
				Title:   "Best Innovation Award",
				Date:    "2021",
				Awarder: "Tech Industry Association",
				Summary: "Awarded for innovative solution in cloud computing",
			},
		},
		Volunteer: []types.Volunteer{
			{
				Organization: "Code for Good",
				Position:     "Technical Mentor",
				StartDate:    "2019",
				EndDate:      "Present",
				Summary:      "Mentoring underprivileged students in programming",
				Highlights: []string{
					"Mentored 20+ students",
					"Organized 5 coding workshops",
				},
			},
		},
	}
	Normalize(doc)
	return doc
}
