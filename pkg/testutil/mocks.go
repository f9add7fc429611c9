package testutil

import (
	"github.com/stretchr/testify/mock"
)

// MockReporter is a testify mock implementing types.Reporter.
type MockReporter struct {
	mock.Mock
}

// FileWritten records the reported label and error.
func (m *MockReporter) FileWritten(label string, err error) {
	m.Called(label, err)
}

// RecordingReporter keeps every reported line in order.
type RecordingReporter struct {
	Lines []ReportedLine
}

// ReportedLine is one call to FileWritten.
type ReportedLine struct {
	Label string
	Err   error
}

// FileWritten appends the line.
func (r *RecordingReporter) FileWritten(label string, err error) {
	r.Lines = append(r.Lines, ReportedLine{Label: label, Err: err})
}
