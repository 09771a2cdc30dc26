// Copyright (c) 2026 Volare Charters. All rights reserved.

package admin

import (
	"net/http"

	"github.com/volarecharters/volare/internal/core/contact"
	"github.com/volarecharters/volare/internal/core/image"
	"github.com/volarecharters/volare/internal/core/legal"
	"github.com/volarecharters/volare/internal/core/sitecontent"
	requestutil "github.com/volarecharters/volare/internal/platform/request"
	"github.com/volarecharters/volare/internal/platform/respond"
)

// # Copy Blocks

// GET /admin/content.
func (handler *Handler) listContent(writer http.ResponseWriter, request *http.Request) {
	blocks, err := handler.content.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, blocks)
}

/*
PUT /admin/content.

Description: Inserts or rewrites one copy block, addressed by its key.

Response:
  - 200: Content: Stored block
  - 400: 400: ErrInvalidJSON/Validation: Invalid input data
*/
func (handler *Handler) upsertContent(writer http.ResponseWriter, request *http.Request) {
	var input sitecontent.Content
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.content.Upsert(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, input)
}

// # Legal Pages

// GET /admin/legal.
func (handler *Handler) listLegalPages(writer http.ResponseWriter, request *http.Request) {
	pages, err := handler.legal.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, pages)
}

// PUT /admin/legal. The slug set is closed; only copy is editable.
func (handler *Handler) upsertLegalPage(writer http.ResponseWriter, request *http.Request) {
	var input legal.Page
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.legal.Upsert(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, input)
}

// # Contact Details

// GET /admin/contact.
func (handler *Handler) getContact(writer http.ResponseWriter, request *http.Request) {
	record, err := handler.contact.Get(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, record)
}

// PUT /admin/contact.
func (handler *Handler) updateContact(writer http.ResponseWriter, request *http.Request) {
	var input contact.Contact
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.contact.Upsert(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, input)
}

// # Photos

// GET /admin/images?category=hero.
func (handler *Handler) listImages(writer http.ResponseWriter, request *http.Request) {
	category := request.URL.Query().Get("category")

	records, err := handler.images.ListByCategory(request.Context(), category)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, records)
}

/*
POST /admin/images.

Description: Registers an uploaded photo under a category. The file itself
lives on the CDN; only the URL is stored here.

Response:
  - 201: Image: Created record
  - 400: 400: ErrInvalidJSON/Validation: Invalid input data
*/
func (handler *Handler) createImage(writer http.ResponseWriter, request *http.Request) {
	var input image.Image
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.images.Create(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, input)
}

// DELETE /admin/images/{id}. Admin role only.
func (handler *Handler) deleteImage(writer http.ResponseWriter, request *http.Request) {
	if err := handler.images.Delete(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
