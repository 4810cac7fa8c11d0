package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-purchase-tracker/internal/config"
	"github.com/MKhiriev/go-purchase-tracker/internal/logger"
	"github.com/MKhiriev/go-purchase-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_Success(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, models.AppBuildInfo{}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(config.App{}, models.NewAppBuildInfo("N/A", "N/A", "N/A"), logger.Nop())

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}

func TestNewAppInfoService_FallsBackToBuildVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{}, models.NewAppBuildInfo("v0.9.0", "2026-01-02", "abc123"), logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "v0.9.0", svc.GetAppVersion(context.Background()))
}

// ─────────────────────────────────────────────
// GetAppVersion / GetAppInfo
// ─────────────────────────────────────────────

func TestGetAppVersion_ConfiguredVersionWins(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "3.1.4"}, models.NewAppBuildInfo("v0.9.0", "", ""), logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "3.1.4", svc.GetAppVersion(context.Background()))
}

func TestGetAppInfo_IncludesBuildMetadata(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.2.3"}, models.NewAppBuildInfo("v1.2.3", "2026-01-02", "abc123"), logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, models.VersionResponse{
		Version:     "1.2.3",
		BuildDate:   "2026-01-02",
		BuildCommit: "abc123",
	}, svc.GetAppInfo(context.Background()))
}

func TestGetAppInfo_UnknownBuildMetadataOmitted(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.2.3"}, models.NewAppBuildInfo("N/A", "N/A", "N/A"), logger.Nop())
	require.NoError(t, err)

	info := svc.GetAppInfo(context.Background())
	assert.Empty(t, info.BuildDate)
	assert.Empty(t, info.BuildCommit)
}

func TestGetAppVersion_CancelledContext_StillReturnsVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx))
}
