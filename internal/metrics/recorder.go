package metrics

import "time"

// ResultLabel enumerates operation outcomes for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultFailed  ResultLabel = "failed"
	ResultSkipped ResultLabel = "skipped"
)

// ReloadTrigger names what started a re-index.
type ReloadTrigger string

const (
	TriggerManual   ReloadTrigger = "manual"
	TriggerWatch    ReloadTrigger = "watch"
	TriggerSchedule ReloadTrigger = "schedule"
)

// Recorder defines observability hooks for navigation and indexing.
type Recorder interface {
	ObserveMenuBuild(d time.Duration, nodes int)
	ObserveOutlineParse(anchors int)
	IncOutlineToggle(applied bool)
	ObserveIndex(d time.Duration, pages int, result ResultLabel)
	IncReload(trigger ReloadTrigger, result ResultLabel)
	SetActiveSessions(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveMenuBuild(time.Duration, int) {}
func (NoopRecorder) ObserveOutlineParse(int) {}
func (NoopRecorder) IncOutlineToggle(bool) {}
func (NoopRecorder) ObserveIndex(time.Duration, int, ResultLabel) {}
func (NoopRecorder) IncReload(ReloadTrigger, ResultLabel) {}
func (NoopRecorder) SetActiveSessions(int) {}
