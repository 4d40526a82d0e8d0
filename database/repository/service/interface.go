package serviceRepo

import (
	"context"

	"wellnest/models"
)

// ServiceRepository exposes the studio's service catalogue and operator-
// editable email templates.
type ServiceRepository interface {
	GetByID(ctx context.Context, serviceID string) (*models.Service, error)
	ListByLanguage(ctx context.Context, language string) ([]models.Service, error)
	GetEmailTemplate(ctx context.Context, name string) (*models.EmailTemplate, error)
	EnsureIndexes() error
}
