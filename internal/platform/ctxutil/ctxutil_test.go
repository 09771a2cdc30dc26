// Copyright (c) 2026 Volare Charters. All rights reserved.

package ctxutil_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/volarecharters/volare/internal/platform/ctxutil"
	"github.com/volarecharters/volare/internal/platform/i18n"
	"github.com/volarecharters/volare/internal/platform/sec"
)

func TestRequestID_RoundTrip(t *testing.T) {
	ctx := ctxutil.WithRequestID(context.Background(), "req-123")
	assert.Equal(t, "req-123", ctxutil.GetRequestID(ctx))
}

func TestRequestID_Missing(t *testing.T) {
	assert.Equal(t, "", ctxutil.GetRequestID(context.Background()))
}

func TestLogger_RoundTrip(t *testing.T) {
	logger := slog.Default().With(slog.String("test", "value"))
	ctx := ctxutil.WithLogger(context.Background(), logger)
	assert.Same(t, logger, ctxutil.GetLogger(ctx))
}

func TestLogger_FallsBackToDefault(t *testing.T) {
	require.NotNil(t, ctxutil.GetLogger(context.Background()))
}

func TestAuthUser_RoundTrip(t *testing.T) {
	claims := &sec.AuthClaims{UserID: "u1", Email: "ops@volarecharters.com", Role: "admin"}
	ctx := ctxutil.WithAuthUser(context.Background(), claims)
	assert.Same(t, claims, ctxutil.GetAuthUser(ctx))
}

func TestAuthUser_Anonymous(t *testing.T) {
	assert.Nil(t, ctxutil.GetAuthUser(context.Background()))
}

func TestLocale_RoundTrip(t *testing.T) {
	ctx := ctxutil.WithLocale(context.Background(), i18n.LocaleEN)
	assert.Equal(t, i18n.LocaleEN, ctxutil.GetLocale(ctx))
}

func TestLocale_DefaultsToSpanish(t *testing.T) {
	assert.Equal(t, i18n.LocaleES, ctxutil.GetLocale(context.Background()))
}
