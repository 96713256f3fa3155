package progress

import (
	"fmt"
	"math"
	"strings"

	"dimensions/models"
)

// startDateFormat renders dates as dd/mm/yyyy
const startDateFormat = "02/01/2006"

// Calculator computes per-section completion progress for courses
type Calculator struct {
	catalog     Catalog
	completions Completions
	enrollments Enrollments
	urls        URLBuilder
}

// NewCalculator wires a calculator from its collaborators
func NewCalculator(catalog Catalog, completions Completions, enrollments Enrollments, urls URLBuilder) *Calculator {
	return &Calculator{
		catalog:     catalog,
		completions: completions,
		enrollments: enrollments,
		urls:        urls,
	}
}

// ComputeCourse calculates the progress of every root section of a course for
// one user, folding delegated subsections into their parents. When completion
// tracking is disabled for the course it returns {Enabled: false} and nothing
// else.
func (c *Calculator) ComputeCourse(courseID, userID uint) (CourseResult, error) {
	course, err := c.catalog.CourseByID(courseID)
	if err != nil {
		return CourseResult{}, err
	}

	if !course.EnableCompletion {
		return CourseResult{Enabled: false}, nil
	}

	sections, err := c.catalog.Sections(courseID, userID)
	if err != nil {
		return CourseResult{}, err
	}
	activities, err := c.catalog.Activities(courseID, userID)
	if err != nil {
		return CourseResult{}, err
	}

	sectionByID := make(map[uint]Section, len(sections))
	for _, s := range sections {
		sectionByID[s.ID] = s
	}

	actsBySection := make(map[uint][]Activity)
	// Parent section ID maps to delegated child section IDs (subsections).
	childrenMap := make(map[uint][]uint)
	for _, a := range activities {
		actsBySection[a.SectionID] = append(actsBySection[a.SectionID], a)
		if a.ModName == models.ModSubsection && a.DelegatedSectionID != 0 {
			childrenMap[a.SectionID] = append(childrenMap[a.SectionID], a.DelegatedSectionID)
		}
	}

	locked, err := c.IsLocked(courseID, userID)
	if err != nil {
		return CourseResult{}, err
	}

	isEnrolled, err := c.enrollments.IsEnrolled(courseID, userID, true)
	if err != nil {
		return CourseResult{}, err
	}

	// Use the enrollment start date when the user has a future enrollment,
	// else fall back to the course start date.
	nextStart, err := c.enrollments.NextEnrolmentStart(courseID, userID)
	if err != nil {
		return CourseResult{}, err
	}
	availabilityDate := course.StartDate
	if nextStart != nil {
		availabilityDate = *nextStart
	}

	// Distinguishes "not yet active" messaging from "course hasn't started".
	isEnrolmentStart := locked && nextStart != nil

	results := make([]SectionResult, 0, len(sections))

	for _, section := range sections {
		// Delegated sections are folded into their parents, never listed.
		if section.Component != "" {
			continue
		}

		if !section.Visible {
			continue
		}

		sectionLocked := false
		if !section.UserVisible {
			// Hide entirely when there is no restriction explanation.
			if section.AvailableInfo == "" {
				continue
			}
			sectionLocked = true
		}

		name := section.Name
		if strings.TrimSpace(name) == "" {
			name = fmt.Sprintf("Section %d", section.Number)
		}

		var percentage *int
		hasActivities := false

		if !locked && isEnrolled && !sectionLocked {
			visited := make(map[uint]bool)
			allActs := collectActivities(section.ID, childrenMap, sectionByID, actsBySection, visited)

			total := 0
			completed := 0
			for _, act := range allActs {
				if act.ModName == models.ModSubsection {
					// Only the delegated content counts, not the pseudo-activity.
					continue
				}
				if act.CompletionTracking == models.TrackingNone || !act.UserVisible {
					continue
				}
				total++
				state, err := c.completions.State(act.ID, userID)
				if err != nil {
					return CourseResult{}, err
				}
				if state == StateComplete || state == StateCompletePass {
					completed++
				}
			}

			if total > 0 {
				p := int(math.Round(float64(completed) / float64(total) * 100))
				percentage = &p
				hasActivities = true
			}
		}

		// Locked sections link to the course page so the user can see the
		// restriction details; everything else links to the section itself.
		url := c.urls.SectionURL(section.ID)
		if sectionLocked {
			url = c.urls.CourseURL(course.ID)
		}

		// The course-level lock overlay supersedes per-section links and icons.
		if locked {
			url = ""
			sectionLocked = false
		}

		results = append(results, SectionResult{
			Name:          name,
			Percentage:    percentage,
			HasActivities: hasActivities,
			URL:           url,
			Locked:        sectionLocked,
		})
	}

	return CourseResult{
		Enabled:            true,
		Locked:             locked,
		FormattedStartDate: availabilityDate.Format(startDateFormat),
		IsEnrolmentStart:   isEnrolmentStart,
		CourseURL:          c.urls.CourseURL(course.ID),
		Sections:           results,
	}, nil
}

// ComputeCourses runs ComputeCourse once per ID, converting any per-course
// failure into an error-tagged item so one bad course does not abort the batch.
func (c *Calculator) ComputeCourses(courseIDs []uint, userID uint) []CourseItem {
	items := make([]CourseItem, 0, len(courseIDs))

	for _, courseID := range courseIDs {
		result, err := c.ComputeCourse(courseID, userID)
		if err != nil {
			items = append(items, CourseItem{
				CourseID: courseID,
				Enabled:  false,
				Locked:   false,
				Error:    err.Error(),
			})
			continue
		}

		sections := make([]SectionItem, 0, len(result.Sections))
		if result.Enabled {
			for _, s := range result.Sections {
				percentage := 0
				if s.Percentage != nil {
					percentage = *s.Percentage
				}
				sections = append(sections, SectionItem{
					Name:          s.Name,
					Percentage:    percentage,
					HasActivities: s.HasActivities,
					URL:           s.URL,
					Locked:        s.Locked,
					IsCompleted:   s.HasActivities && percentage >= 100,
					IsStarted:     s.HasActivities && percentage > 0 && percentage < 100,
				})
			}
		}

		items = append(items, CourseItem{
			CourseID:           courseID,
			Enabled:            result.Enabled,
			Locked:             result.Locked,
			FormattedStartDate: result.FormattedStartDate,
			IsEnrolmentStart:   result.IsEnrolmentStart,
			CourseURL:          result.CourseURL,
			Sections:           sections,
		})
	}

	return items
}

// IsLocked reports whether course content is locked for the user.
// The user must hold an active enrollment and a "student" role; any other
// role (a teacher viewing their own course included) still reads as locked,
// since this feeds a student-facing widget only.
func (c *Calculator) IsLocked(courseID, userID uint) (bool, error) {
	enrolled, err := c.enrollments.IsEnrolled(courseID, userID, true)
	if err != nil {
		return true, err
	}
	if !enrolled {
		return true, nil
	}

	roles, err := c.enrollments.Roles(courseID, userID)
	if err != nil {
		return true, err
	}
	for _, role := range roles {
		if role == "student" {
			return false, nil
		}
	}
	return true, nil
}

// CoursePercentage computes the user's overall completion percentage across
// every trackable activity of the course. It returns nil when completion
// tracking is disabled, the course is locked for the user, or nothing is
// trackable.
func (c *Calculator) CoursePercentage(courseID, userID uint) (*int, error) {
	course, err := c.catalog.CourseByID(courseID)
	if err != nil {
		return nil, err
	}
	if !course.EnableCompletion {
		return nil, nil
	}

	locked, err := c.IsLocked(courseID, userID)
	if err != nil {
		return nil, err
	}
	if locked {
		return nil, nil
	}

	activities, err := c.catalog.Activities(courseID, userID)
	if err != nil {
		return nil, err
	}

	total := 0
	completed := 0
	for _, act := range activities {
		if act.ModName == models.ModSubsection {
			continue
		}
		if act.CompletionTracking == models.TrackingNone || !act.UserVisible {
			continue
		}
		total++
		state, err := c.completions.State(act.ID, userID)
		if err != nil {
			return nil, err
		}
		if state == StateComplete || state == StateCompletePass {
			completed++
		}
	}

	if total == 0 {
		return nil, nil
	}
	p := int(math.Round(float64(completed) / float64(total) * 100))
	return &p, nil
}

// FilterCoursesByEnrollment narrows courses to those the user is enrolled in.
// Mode "all" (and an empty input) returns the input unchanged; "enrolled"
// keeps any enrollment record, "active" only enrollments currently in effect.
func (c *Calculator) FilterCoursesByEnrollment(courses []models.Course, userID uint, mode string) []models.Course {
	if mode == FilterAll || len(courses) == 0 {
		return courses
	}

	onlyActive := mode == FilterActive

	filtered := make([]models.Course, 0, len(courses))
	for _, course := range courses {
		enrolled, err := c.enrollments.IsEnrolled(course.ID, userID, onlyActive)
		if err != nil || !enrolled {
			continue
		}
		filtered = append(filtered, course)
	}
	return filtered
}

// collectActivities gathers the activities of a section and all its delegated
// descendants, skipping invisible child sections. The visited set guards
// against malformed cyclic delegation input.
func collectActivities(sectionID uint, childrenMap map[uint][]uint, sectionByID map[uint]Section, actsBySection map[uint][]Activity, visited map[uint]bool) []Activity {
	if visited[sectionID] {
		return nil
	}
	visited[sectionID] = true

	acts := append([]Activity{}, actsBySection[sectionID]...)

	for _, childID := range childrenMap[sectionID] {
		child, ok := sectionByID[childID]
		if !ok || !child.Visible {
			continue
		}
		acts = append(acts, collectActivities(childID, childrenMap, sectionByID, actsBySection, visited)...)
	}

	return acts
}
