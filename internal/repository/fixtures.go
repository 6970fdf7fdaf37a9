package repository

// defaultFixtures is the built-in partner-integration dataset. Veritas College
// is deliberately not metadata-readable so integrators can exercise 403 paths.
var defaultFixtures = fixtureFile{
	Organizations: []fixtureOrganization{
		{Key: "brighthaven", Name: "BrightHaven University", MetadataReadable: true},
		{Key: "gatewood-tech", Name: "Gatewood Institute of Technology", MetadataReadable: true},
		{Key: "veritas-college", Name: "Veritas College", MetadataReadable: false},
	},
	Programs: []fixtureProgram{
		{
			Key:          "bh-masters-data-science",
			Title:        "Master of Science in Data Science",
			URL:          "https://brighthaven.example.com/programs/masters-data-science",
			Organization: "brighthaven",
		},
		{
			Key:          "bh-mba",
			Title:        "Master of Business Administration",
			URL:          "https://brighthaven.example.com/programs/mba",
			Organization: "brighthaven",
		},
		{
			Key:          "gt-cert-cloud-ops",
			Title:        "Professional Certificate in Cloud Operations",
			URL:          "https://gatewood.example.com/programs/cert-cloud-ops",
			Organization: "gatewood-tech",
		},
		{
			Key:          "vc-masters-english",
			Title:        "Master of Arts in English Literature",
			URL:          "https://veritas.example.com/programs/masters-english",
			Organization: "veritas-college",
		},
	},
	CourseRuns: []fixtureCourseRun{
		{
			Key:     "course-v1:BrightHaven+DS500+Fall2026",
			Title:   "Statistical Foundations",
			URL:     "https://courses.example.com/course-v1:BrightHaven+DS500+Fall2026",
			Program: "bh-masters-data-science",
		},
		{
			Key:     "course-v1:BrightHaven+DS510+Fall2026",
			Title:   "Machine Learning at Scale",
			URL:     "https://courses.example.com/course-v1:BrightHaven+DS510+Fall2026",
			Program: "bh-masters-data-science",
		},
		{
			Key:     "course-v1:BrightHaven+MBA600+Spring2027",
			Title:   "Corporate Finance",
			URL:     "https://courses.example.com/course-v1:BrightHaven+MBA600+Spring2027",
			Program: "bh-mba",
		},
		{
			Key:     "course-v1:Gatewood+CLD101+Fall2026",
			Title:   "Infrastructure as Code",
			URL:     "https://courses.example.com/course-v1:Gatewood+CLD101+Fall2026",
			Program: "gt-cert-cloud-ops",
		},
		{
			Key:     "course-v1:Veritas+ENG700+Fall2026",
			Title:   "Victorian Literature Seminar",
			URL:     "https://courses.example.com/course-v1:Veritas+ENG700+Fall2026",
			Program: "vc-masters-english",
		},
	},
}
