package recorder

import "context"

// NoopRecorder is used when no database is configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordDay(_ context.Context, _ *DayRecord) error { return nil }
func (n *NoopRecorder) History(_ context.Context, _ string) ([]OutcomeRow, error) {
	return nil, nil
}
func (n *NoopRecorder) Close() error { return nil }
