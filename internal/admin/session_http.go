// Copyright (c) 2026 Volare Charters. All rights reserved.

package admin

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/volarecharters/volare/internal/platform/constants"
	"github.com/volarecharters/volare/internal/platform/i18n"
	requestutil "github.com/volarecharters/volare/internal/platform/request"
	"github.com/volarecharters/volare/internal/platform/respond"
	"github.com/volarecharters/volare/internal/platform/validate"
	"github.com/volarecharters/volare/internal/users/auth"
)

// loginInput is the sign-in form payload.
type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Locale   string `json:"locale"`
}

/*
GET /admin/login.

Description: Serves the login page payload. Signed-in visitors never reach
this handler; the session guard already bounced them to the dashboard.

Response:
  - 200: Login page descriptor
*/
func (handler *Handler) getLoginPage(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, map[string]string{
		auth.FieldMessage: "Sign in with your staff account",
	})
}

/*
POST /admin/login.

Description: Checks credentials and opens a session. Failures come back as
a single translated credential message; which half was wrong is never
revealed.

Request (Body):
  - email, password: string
  - locale: string (For the error message; defaults to Spanish)

Response:
  - 200: User: Authenticated account, session cookies set
  - 400: 400: ErrInvalidJSON/Validation: Invalid input data
  - 401: 401: ErrUnauthorized: Translated credential error
*/
func (handler *Handler) postLogin(writer http.ResponseWriter, request *http.Request) {
	var input loginInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	v := &validate.Validator{}
	v.Required(auth.FieldEmail, input.Email).Email(auth.FieldEmail, input.Email)
	v.Required(auth.FieldPassword, input.Password)

	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	locale, ok := i18n.Parse(input.Locale)
	if !ok {
		locale = i18n.Default
	}

	user, accessToken, refreshToken, err := handler.auth.SignIn(request.Context(), input.Email, input.Password, locale)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	auth.SetCookies(writer, auth.SessionCookies(accessToken, refreshToken))
	respond.OK(writer, map[string]any{auth.FieldUser: user})
}

/*
POST /admin/logout.

Description: Closes the session and clears both cookies, then sends the
browser back to the login page.

Response:
  - 303: Redirect to /admin/login
*/
func (handler *Handler) postLogout(writer http.ResponseWriter, request *http.Request) {
	refreshToken := requestutil.Cookie(request, constants.RefreshTokenCookieName)

	if err := handler.auth.SignOut(request.Context(), refreshToken); err != nil {
		respond.Error(writer, request, err)
		return
	}

	auth.SetCookies(writer, auth.ClearedSessionCookies())
	respond.Redirect(writer, request, constants.AdminLoginPath)
}

// dashboard is the landing payload after sign-in.
type dashboard struct {
	User              any `json:"user"`
	DestinationCount  int `json:"destination_count"`
	TourCount         int `json:"tour_count"`
}

/*
GET /admin/dashboard.

Description: Retrieves the signed-in account plus live catalog counts.
The two counts are fetched concurrently.

Response:
  - 200: dashboard: Counts and identity
  - 401: 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) getDashboard(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload dashboard
	payload.User = map[string]string{"id": claims.UserID, "email": claims.Email, "role": claims.Role}

	group, groupCtx := errgroup.WithContext(request.Context())
	group.Go(func() error {
		count, err := handler.destinations.Count(groupCtx)
		payload.DestinationCount = count
		return err
	})
	group.Go(func() error {
		count, err := handler.tours.Count(groupCtx)
		payload.TourCount = count
		return err
	})

	if err := group.Wait(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, payload)
}
