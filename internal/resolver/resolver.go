// Package resolver flattens a resume record into a placeholder map.
package resolver

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-filler/internal/types"
)

// DefaultListJoin is the delimiter used to join list-valued skill and course
// fields when the caller does not configure one.
const DefaultListJoin = ", "

// Options configures how the resolver renders list-valued fields.
type Options struct {
	// ListJoin is the delimiter for joined lists (skills, courses).
	// Empty means DefaultListJoin. Achievements and project descriptions
	// always join with newlines, matching the per-line layout templates
	// use for them.
	ListJoin string
}

func (o Options) listJoin() string {
	if o.ListJoin == "" {
		return DefaultListJoin
	}
	return o.ListJoin
}

// Resolve converts a resume record into a flat placeholder map. Entries in
// list sections are numbered starting at 1, in record order, with no limit on
// entry count. Resolve never fails: shape problems are caught when the record
// is parsed, and absent optional fields either default to empty strings
// (personal info) or are omitted from the map so the template token survives
// untouched.
func Resolve(rec *types.ResumeRecord, opts Options) types.PlaceholderMap {
	m := make(types.PlaceholderMap)
	if rec == nil {
		return m
	}

	resolvePersonalInfo(m, rec.PersonalInfo)
	resolveEducation(m, rec.Education, opts)
	resolveExperience(m, rec.Experience)
	resolveSkills(m, rec.Skills, opts)
	resolveProjects(m, rec.Projects)

	return m
}

func resolvePersonalInfo(m types.PlaceholderMap, info types.PersonalInfo) {
	// Both {{NAME}} and {{Name}} appear in templates in the wild.
	m["NAME"] = info.Name
	m["Name"] = info.Name
	m["LOCATION"] = info.Location
	m["EMAIL"] = info.Email
	m["PHONE"] = info.Phone
	m["GITHUB"] = info.GitHub
	m["LINKEDIN"] = info.LinkedIn
}

func resolveEducation(m types.PlaceholderMap, entries []types.EducationEntry, opts Options) {
	for i, edu := range entries {
		k := i + 1

		if school := firstNonEmpty(edu.Institution, edu.School); school != "" {
			m[key("EDU", k, "SCHOOL")] = school
		}
		m[key("EDU", k, "LOCATION")] = edu.Location
		m[key("EDU", k, "DEGREE")] = edu.Degree
		m[key("EDU", k, "DATE")] = dateOrRange(edu.Date, edu.StartDate, edu.EndDate)
		m[key("EDU", k, "COURSES")] = strings.Join(edu.Courses, opts.listJoin())
		for j, course := range edu.Courses {
			m[indexedKey("EDU", k, "COURSE", j+1)] = course
		}
	}
}

func resolveExperience(m types.PlaceholderMap, entries []types.ExperienceEntry) {
	for i, exp := range entries {
		k := i + 1

		m[key("EXP", k, "COMPANY")] = exp.Company
		m[key("EXP", k, "LOCATION")] = exp.Location
		m[key("EXP", k, "TITLE")] = exp.Title
		m[key("EXP", k, "DATE")] = dateOrRange(exp.Date, exp.StartDate, exp.EndDate)

		for j, achievement := range exp.Achievements {
			m[indexedKey("EXP", k, "ACHIEVEMENT", j+1)] = achievement
		}
		m[key("EXP", k, "ACHIEVEMENTS")] = strings.Join(exp.Achievements, "\n")
	}
}

func resolveSkills(m types.PlaceholderMap, skills types.Skills, opts Options) {
	if len(skills.Languages) > 0 {
		joined := strings.Join(skills.Languages, opts.listJoin())
		m["SKILL_LANGUAGE"] = joined
		m["SKILLS_LANGUAGES"] = joined
	}

	frameworks := skills.FrameworksAndTools
	if len(frameworks) == 0 {
		frameworks = skills.FrameworksTools
	}
	if len(frameworks) > 0 {
		joined := strings.Join(frameworks, opts.listJoin())
		m["SKILL_FRAME_TOOL"] = joined
		m["SKILLS_FRAMEWORKS_TOOLS"] = joined
	}

	if skills.LanguageProcessing != "" {
		m["SKILLS_LANGUAGE_PROCESSING"] = skills.LanguageProcessing
	}
	if skills.DataVisualization != "" {
		m["SKILLS_DATA_VIZ"] = skills.DataVisualization
	}
}

func resolveProjects(m types.PlaceholderMap, entries []types.ProjectEntry) {
	for i, proj := range entries {
		k := i + 1

		m[key("PROJ", k, "NAME")] = proj.Name
		m[key("PROJ", k, "DATE")] = proj.Date

		descriptions := proj.Descriptions
		if len(descriptions) == 0 {
			descriptions = proj.Description
		}
		for j, desc := range descriptions {
			m[indexedKey("PROJ", k, "DESC", j+1)] = desc
		}
		if len(descriptions) == 1 {
			m[key("PROJ", k, "DESC")] = descriptions[0]
		} else if len(descriptions) > 1 {
			m[key("PROJ", k, "DESC")] = strings.Join(descriptions, "\n")
		}
	}
}

// dateOrRange prefers an explicit date, falling back to "start – end" when
// both bounds are present.
func dateOrRange(date, start, end string) string {
	if date != "" {
		return date
	}
	if start != "" && end != "" {
		return start + " – " + end
	}
	return ""
}

func key(section string, n int, field string) string {
	return fmt.Sprintf("%s_%d_%s", section, n, field)
}

func indexedKey(section string, n int, field string, m int) string {
	return fmt.Sprintf("%s_%d_%s_%d", section, n, field, m)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
