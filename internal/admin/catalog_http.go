// Copyright (c) 2026 Volare Charters. All rights reserved.

package admin

import (
	"net/http"

	"github.com/volarecharters/volare/internal/core/destination"
	"github.com/volarecharters/volare/internal/core/tour"
	requestutil "github.com/volarecharters/volare/internal/platform/request"
	"github.com/volarecharters/volare/internal/platform/respond"
	"github.com/volarecharters/volare/pkg/pagination"
)

// # Destination Management

/*
GET /admin/destinations.

Description: Lists all destinations including unpublished rows.

Request:
  - featured: bool
  - limit, page: int

Response:
  - 200: []Destination: Paginated raw records
*/
func (handler *Handler) listDestinations(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := destination.Filter{
		FeaturedOnly: request.URL.Query().Get("featured") == "true",
	}

	records, total, err := handler.destinations.List(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, records, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
POST /admin/destinations.

Description: Creates a destination. The slug is derived from the Spanish name.

Response:
  - 201: Destination: Created record
  - 400: 400: ErrInvalidJSON/Validation: Invalid input data
  - 409: 409: ErrConflict: Slug already taken
*/
func (handler *Handler) createDestination(writer http.ResponseWriter, request *http.Request) {
	var input destination.Destination
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.destinations.Create(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, input)
}

// GET /admin/destinations/{id}.
func (handler *Handler) getDestination(writer http.ResponseWriter, request *http.Request) {
	record, err := handler.destinations.Get(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, record)
}

/*
PUT /admin/destinations/{id}.

Description: Rewrites a destination record.

Response:
  - 200: Destination: Updated record
  - 404: 404: ErrNotFound: Unknown id
*/
func (handler *Handler) updateDestination(writer http.ResponseWriter, request *http.Request) {
	var input destination.Destination
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	input.ID = requestutil.Param(request, "id")

	if err := handler.destinations.Update(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, input)
}

// DELETE /admin/destinations/{id}. Admin role only.
func (handler *Handler) deleteDestination(writer http.ResponseWriter, request *http.Request) {
	if err := handler.destinations.Delete(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// # Tour Management

// GET /admin/tours.
func (handler *Handler) listTours(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	queryParams := request.URL.Query()

	filter := tour.Filter{
		DestinationID: queryParams.Get("destination"),
		FeaturedOnly:  queryParams.Get("featured") == "true",
	}

	records, total, err := handler.tours.List(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, records, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
POST /admin/tours.

Description: Creates a tour package. The slug is derived from the Spanish title.

Response:
  - 201: Tour: Created record
  - 400: 400: ErrInvalidJSON/Validation: Invalid input data
  - 409: 409: ErrConflict: Slug already taken
*/
func (handler *Handler) createTour(writer http.ResponseWriter, request *http.Request) {
	var input tour.Tour
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.tours.Create(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, input)
}

// GET /admin/tours/{id}.
func (handler *Handler) getTour(writer http.ResponseWriter, request *http.Request) {
	record, err := handler.tours.Get(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, record)
}

// PUT /admin/tours/{id}.
func (handler *Handler) updateTour(writer http.ResponseWriter, request *http.Request) {
	var input tour.Tour
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	input.ID = requestutil.Param(request, "id")

	if err := handler.tours.Update(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, input)
}

// DELETE /admin/tours/{id}. Admin role only.
func (handler *Handler) deleteTour(writer http.ResponseWriter, request *http.Request) {
	if err := handler.tours.Delete(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
