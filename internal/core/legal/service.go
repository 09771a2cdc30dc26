// Copyright (c) 2026 Volare Charters. All rights reserved.

package legal

import (
	"context"
	"log/slog"

	"github.com/volarecharters/volare/internal/platform/apperr"
	"github.com/volarecharters/volare/internal/platform/i18n"
	"github.com/volarecharters/volare/internal/platform/validate"
	"github.com/volarecharters/volare/pkg/uuid"
)

// Service orchestrates legal page reads and back-office writes.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new legal [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

/*
Resolve returns the localized view for a known slug, degrading to shipped
titles and placeholder copy when the page is unauthored or the store is
down. Unknown slugs are a 404.

Parameters:
  - context: context.Context
  - slug: string (Must be in the closed set)
  - locale: i18n.Locale

Returns:
  - View: Localized page, never empty
  - error: ErrNotFound for slugs outside the closed set
*/
func (service *Service) Resolve(context context.Context, slug string, locale i18n.Locale) (View, error) {
	if !KnownSlug(slug) {
		return View{}, apperr.NotFound("Legal page")
	}

	page, err := service.repo.FindBySlug(context, slug)
	if err != nil {
		if !apperr.IsNotFound(err) {
			service.logger.WarnContext(context, "legalpage_fallback",
				slog.String("slug", slug),
				slog.String("error", err.Error()),
			)
		}
		return Fallback(slug, locale), nil
	}

	return page.Localize(locale), nil
}

// List returns every stored legal page for the back office editor.
func (service *Service) List(context context.Context) ([]*Page, error) {
	return service.repo.List(context)
}

// Upsert validates and writes a legal page. The slug must be one of the
// closed set; the set itself is not editable.
func (service *Service) Upsert(context context.Context, page *Page) error {
	validator := &validate.Validator{}
	validator.Required("slug", page.Slug)
	validator.OneOf("slug", page.Slug, Slugs...)

	if err := validator.Err(); err != nil {
		return err
	}

	if page.ID == "" {
		page.ID = uuid.New()
	}

	if err := service.repo.Upsert(context, page); err != nil {
		return err
	}

	service.logger.Info("legalpage_upserted", slog.String("slug", page.Slug))

	return nil
}
