package analyses

import "strings"

// AnalyzeRequest is the JSON body of an analysis request.
type AnalyzeRequest struct {
	ResumeText         string `json:"resumeText" validate:"required,max=200000"`
	JobDescriptionText string `json:"jobDescriptionText,omitempty" validate:"max=50000"`
}

// normalized treats whitespace-only text as missing.
func (r AnalyzeRequest) normalized() AnalyzeRequest {
	if strings.TrimSpace(r.ResumeText) == "" {
		r.ResumeText = ""
	}
	if strings.TrimSpace(r.JobDescriptionText) == "" {
		r.JobDescriptionText = ""
	}
	return r
}
