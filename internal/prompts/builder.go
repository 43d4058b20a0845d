package prompts

import "github.com/jonathan/resume-builder/internal/types"

// BuildResumePrompt renders the resume generation prompt for req.
// Field values are interpolated verbatim; missing optional fields become
// empty hints. The output is a pure function of the request.
func BuildResumePrompt(req types.ResumeRequest) string {
	template := MustGet("resume")
	return Format(template, map[string]string{
		"Name":       req.Name,
		"Phone":      req.Phone,
		"Email":      req.Email,
		"Summary":    req.Summary,
		"Experience": req.Experience,
		"Education":  req.Education,
		"Skills":     req.Skills,
	})
}
