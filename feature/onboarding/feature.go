package onboarding

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature wires the onboarding loader into the HTTP surface.
type Feature struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewFeature creates the onboarding feature.
func NewFeature(db *gorm.DB, logger *zap.Logger) *Feature {
	return &Feature{db: db, logger: logger}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "onboarding"
}

// IsEnabled reports whether the feature can run; without a database there is
// nothing to load into.
func (f *Feature) IsEnabled() bool {
	return f.db != nil
}

// Load registers the onboarding routes.
func (f *Feature) Load(app fiber.Router) error {
	service := NewService(f.db, f.logger)
	handler := NewHandler(service)
	handler.RegisterRoutes(app)
	return nil
}
