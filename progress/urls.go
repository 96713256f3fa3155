package progress

import (
	"fmt"
	"strings"
)

// PageURLs builds course and section page URLs from the host platform base URL
type PageURLs struct {
	baseURL string
}

// NewPageURLs creates a URL builder rooted at baseURL
func NewPageURLs(baseURL string) PageURLs {
	return PageURLs{baseURL: strings.TrimRight(baseURL, "/")}
}

func (u PageURLs) CourseURL(courseID uint) string {
	return fmt.Sprintf("%s/course/view?id=%d", u.baseURL, courseID)
}

func (u PageURLs) SectionURL(sectionID uint) string {
	return fmt.Sprintf("%s/course/section?id=%d", u.baseURL, sectionID)
}
