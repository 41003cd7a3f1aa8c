package report

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownReportType   = errors.New("unknown report type")
	ErrUnsupportedExport   = errors.New("export format not supported by this report")
	ErrInvalidSchedule     = errors.New("invalid alphalist schedule")
	ErrTemplateNotFound    = errors.New("official template file not found")
	ErrNoDataFound         = errors.New("no data found for the specified criteria")
	ErrSnapshotNotFound    = errors.New("certificate snapshot not found")
	ErrEmployeeNotEligible = errors.New("employee has no statutory ID required by this report")
)

// UnsupportedExportError reports which form rejected which format. It matches
// ErrUnsupportedExport under errors.Is.
type UnsupportedExportError struct {
	Code   string
	Format Format
}

func (e *UnsupportedExportError) Error() string {
	return fmt.Sprintf("report %s does not support %s export", e.Code, e.Format)
}

func (e *UnsupportedExportError) Is(target error) bool {
	return target == ErrUnsupportedExport
}
