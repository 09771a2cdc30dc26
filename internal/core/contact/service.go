// Copyright (c) 2026 Volare Charters. All rights reserved.

package contact

import (
	"context"
	"log/slog"

	"github.com/volarecharters/volare/internal/platform/i18n"
	"github.com/volarecharters/volare/internal/platform/validate"
	"github.com/volarecharters/volare/pkg/uuid"
)

// Service orchestrates contact record reads and back-office writes.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new contact [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Resolve returns the localized contact details, degrading to the shipped
// record when the store has no row or is unreachable.
func (service *Service) Resolve(context context.Context, locale i18n.Locale) View {
	contact, err := service.repo.Get(context)
	if err != nil {
		service.logger.WarnContext(context, "contactinfo_fallback",
			slog.String("error", err.Error()),
		)
		return Fallback(locale)
	}
	return contact.Localize(locale)
}

// Get retrieves the raw record for the back office editor.
func (service *Service) Get(context context.Context) (*Contact, error) {
	return service.repo.Get(context)
}

// Upsert validates and writes the contact record.
func (service *Service) Upsert(context context.Context, contact *Contact) error {
	validator := &validate.Validator{}
	validator.Required("email", contact.Email).Email("email", contact.Email)
	validator.Required("phone", contact.Phone).MaxLen("phone", contact.Phone, 30)

	if err := validator.Err(); err != nil {
		return err
	}

	if contact.ID == "" {
		contact.ID = uuid.New()
	}

	if err := service.repo.Upsert(context, contact); err != nil {
		return err
	}

	service.logger.Info("contactinfo_updated", slog.String("contact_id", contact.ID))

	return nil
}
