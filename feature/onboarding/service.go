package onboarding

import (
	"context"

	"school-onboarding/core/workbook"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service runs load passes against one database handle.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new onboarding service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Load runs one full load pass over the workbook at path and returns its
// report. On a fatal failure (missing required sheet, store scan failure)
// the partial report is returned alongside the error; writes of completed
// sheets stay committed.
func (s *Service) Load(ctx context.Context, path string) (*Report, error) {
	source, err := workbook.Open(path)
	if err != nil {
		return nil, err
	}
	defer source.Close()

	return NewOrchestrator(s.db, source, s.logger).Run(ctx)
}
