package analyses

import "errors"

var (
	ErrResumeRequired = errors.New("resumeText is required")
	ErrInputTooLarge  = errors.New("input too large")
	ErrAnalysisFailed = errors.New("analysis failed")
)

const (
	ErrorTextResumeRequired = "resumeText is required"
	ErrorTextInvalidBody    = "invalid request body"
	ErrorTextTooLarge       = "Request body too large"
	ErrorTextFailed         = "Failed to analyze resume"
)
