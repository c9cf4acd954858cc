package health

import "time"

// Status is the health payload.
type Status struct {
	OK            bool   `json:"ok"`
	ModelVersion  string `json:"modelVersion"`
	UptimeSeconds int64  `json:"uptimeSeconds"`
}

// Service encapsulates health-related checks.
type Service struct {
	modelVersion string
	started      time.Time
	now          func() time.Time
}

// NewService constructs a new health service for the loaded scoring model.
func NewService(modelVersion string) *Service {
	return &Service{modelVersion: modelVersion, started: time.Now(), now: time.Now}
}

// Status returns the current health payload.
func (s *Service) Status() Status {
	return Status{
		OK:            true,
		ModelVersion:  s.modelVersion,
		UptimeSeconds: int64(s.now().Sub(s.started) / time.Second),
	}
}
