// Package types provides type definitions for structured data used throughout the resume-filler system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ResumeRecord represents a resolved resume data file with the five known sections.
// Missing sections decode to zero values; unknown top-level keys are ignored.
type ResumeRecord struct {
	PersonalInfo PersonalInfo      `yaml:"personal_info"`
	Education    []EducationEntry  `yaml:"education"`
	Experience   []ExperienceEntry `yaml:"experience"`
	Skills       Skills            `yaml:"skills"`
	Projects     []ProjectEntry    `yaml:"projects"`
}

// PersonalInfo holds the fixed header fields of a resume
type PersonalInfo struct {
	Name     string `yaml:"name"`
	Location string `yaml:"location"`
	Email    string `yaml:"email"`
	Phone    string `yaml:"phone"`
	GitHub   string `yaml:"github"`
	LinkedIn string `yaml:"linkedin"`
}

// EducationEntry represents a single education entry.
// School is an accepted alias for Institution; Date may be given directly
// or derived from StartDate and EndDate.
type EducationEntry struct {
	Institution string     `yaml:"institution"`
	School      string     `yaml:"school"`
	Location    string     `yaml:"location"`
	Degree      string     `yaml:"degree"`
	Date        string     `yaml:"date"`
	StartDate   string     `yaml:"start_date"`
	EndDate     string     `yaml:"end_date"`
	Courses     StringList `yaml:"courses"`
}

// ExperienceEntry represents a single work experience entry
type ExperienceEntry struct {
	Company      string     `yaml:"company"`
	Location     string     `yaml:"location"`
	Title        string     `yaml:"title"`
	Date         string     `yaml:"date"`
	StartDate    string     `yaml:"start_date"`
	EndDate      string     `yaml:"end_date"`
	Achievements StringList `yaml:"achievements"`
}

// ProjectEntry represents a single project entry.
// Description (singular, scalar or list) is an accepted alias for Descriptions.
type ProjectEntry struct {
	Name         string     `yaml:"name"`
	Date         string     `yaml:"date"`
	Descriptions StringList `yaml:"descriptions"`
	Description  StringList `yaml:"description"`
}

// Skills holds the skill groups of a resume.
// FrameworksTools is an accepted alias for FrameworksAndTools.
// LanguageProcessing and DataVisualization are scalar groups some records carry.
type Skills struct {
	Languages          StringList `yaml:"languages"`
	FrameworksAndTools StringList `yaml:"frameworks_and_tools"`
	FrameworksTools    StringList `yaml:"frameworks_tools"`
	LanguageProcessing string     `yaml:"language_processing"`
	DataVisualization  string     `yaml:"data_visualization"`
}
