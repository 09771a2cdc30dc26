// Copyright (c) 2026 Volare Charters. All rights reserved.

package sitecontent

import (
	"context"
	"log/slog"

	"github.com/volarecharters/volare/internal/platform/i18n"
	"github.com/volarecharters/volare/internal/platform/validate"
	"github.com/volarecharters/volare/pkg/uuid"
)

// Service orchestrates copy block reads for the public site and writes for
// the back office.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new sitecontent [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

/*
Resolve returns the localized copy block for a key.

This is the degrade path for public pages: a missing row or an unreachable
store yields the shipped fallback copy instead of an error, so the page
still renders. Store failures are logged, not surfaced.

Parameters:
  - context: context.Context
  - key: string (Stable block key)
  - locale: i18n.Locale

Returns:
  - View: Localized block, never empty
*/
func (service *Service) Resolve(context context.Context, key string, locale i18n.Locale) View {
	content, err := service.repo.FindByKey(context, key)
	if err != nil {
		service.logger.WarnContext(context, "sitecontent_fallback",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return Fallback(key, locale)
	}
	return content.Localize(locale)
}

// List returns every stored block for the back office editor.
func (service *Service) List(context context.Context) ([]*Content, error) {
	return service.repo.List(context)
}

/*
Upsert validates and writes a copy block. New blocks get a fresh UUID;
existing keys are rewritten in place.

Parameters:
  - context: context.Context
  - content: *Content (Key required)

Returns:
  - error: Validation or persistence failures
*/
func (service *Service) Upsert(context context.Context, content *Content) error {
	validator := &validate.Validator{}
	validator.Required("key", content.Key).MaxLen("key", content.Key, 100)

	if err := validator.Err(); err != nil {
		return err
	}

	if content.ID == "" {
		content.ID = uuid.New()
	}

	if err := service.repo.Upsert(context, content); err != nil {
		return err
	}

	service.logger.Info("sitecontent_upserted", slog.String("key", content.Key))

	return nil
}
