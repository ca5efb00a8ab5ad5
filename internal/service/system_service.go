package service

import (
	"github.com/ndewijer/Trading212-Portfolio-Viewer-Backend/internal/version"
)

// SystemService handles system-related operations
type SystemService struct {
	snapshots *SnapshotService
}

// NewSystemService creates a new SystemService
func NewSystemService(snapshots *SnapshotService) *SystemService {
	return &SystemService{
		snapshots: snapshots,
	}
}

// CheckHealth reports whether a portfolio snapshot is available to serve.
// It returns apperrors.ErrSnapshotNotReady before the first successful
// ingestion pass.
func (s *SystemService) CheckHealth() error {
	_, err := s.snapshots.Current()
	return err
}

// CheckVersion returns the application version.
func (s *SystemService) CheckVersion() string {
	return version.Version
}
