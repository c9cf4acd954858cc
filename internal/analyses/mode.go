package analyses

// AnalysisMode records whether a job description took part in an analysis.
type AnalysisMode string

const (
	ModeATS      AnalysisMode = "ATS"
	ModeJobMatch AnalysisMode = "JOB_MATCH"
)

func modeFor(req AnalyzeRequest) AnalysisMode {
	if req.JobDescriptionText != "" {
		return ModeJobMatch
	}
	return ModeATS
}
