package models

// Organization is an institution that administers programs. The
// metadata_readable flag is the whole access policy of the mock API: callers
// may read an organization's programs only when it is set.
type Organization struct {
	Key              string `json:"key"`
	Name             string `json:"name"`
	MetadataReadable bool   `json:"metadata_readable"`
}

// Program is a marketable grouping of course runs administered by one
// organization.
type Program struct {
	Key                  string        `json:"program_key"`
	Title                string        `json:"program_title"`
	URL                  string        `json:"program_url"`
	ManagingOrganization *Organization `json:"-"`
}

// MetadataReadable reports whether the program's metadata may be read,
// delegating to the managing organization.
func (p *Program) MetadataReadable() bool {
	return p != nil && p.ManagingOrganization != nil && p.ManagingOrganization.MetadataReadable
}

// CourseRun is one offering instance of a course within a program. Its fields
// are opaque to the enrollment logic.
type CourseRun struct {
	Key        string `json:"course_key"`
	Title      string `json:"course_title"`
	URL        string `json:"course_url"`
	ProgramKey string `json:"-"`
}
