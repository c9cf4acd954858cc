package health

import (
	"testing"
	"time"
)

func TestStatusReportsModelAndUptime(t *testing.T) {
	svc := NewService("2024.1")
	svc.started = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return svc.started.Add(90 * time.Second) }

	got := svc.Status()
	if !got.OK {
		t.Fatalf("expected ok status")
	}
	if got.ModelVersion != "2024.1" {
		t.Fatalf("expected model version 2024.1, got %q", got.ModelVersion)
	}
	if got.UptimeSeconds != 90 {
		t.Fatalf("expected 90s uptime, got %d", got.UptimeSeconds)
	}
}
