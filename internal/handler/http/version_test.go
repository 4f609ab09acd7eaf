package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/mock"
	"github.com/MKhiriev/go-sync-keeper/internal/service"
	"github.com/MKhiriev/go-sync-keeper/models"
)

func newVersionRouter(t *testing.T) (http.Handler, *mock.MockAppInfoService) {
	t.Helper()
	appInfo := mock.NewMockAppInfoService(gomock.NewController(t))
	h := NewHandler(&service.Services{AppInfoService: appInfo}, config.App{}, logger.Nop())
	return h.Init(), appInfo
}

func TestGetServerVersion(t *testing.T) {
	for _, version := range []string{"1.2.3", "v2.0.0-beta+build.42", ""} {
		t.Run(version, func(t *testing.T) {
			router, appInfo := newVersionRouter(t)
			appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(version)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version/", nil))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, version, rec.Body.String())
			assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
		})
	}
}

func TestGetServerInfo(t *testing.T) {
	router, appInfo := newVersionRouter(t)
	gomock.InOrder(
		appInfo.EXPECT().GetServerInfo(gomock.Any()).Return(models.ServerInfo{
			Version:         "2.0.0",
			ServerUUID:      "0b6b6f2e-3c51-4f0e-9d7e-5a1f3c2d9e10",
			ServerName:      "district-hospital",
			DatabaseVersion: "1.9.4",
			SyncStatus:      models.SyncStatusStrict,
		}),
		appInfo.EXPECT().GetServerInfo(gomock.Any()).Return(models.ServerInfo{
			Version:    "2.0.0",
			SyncStatus: models.SyncStatusDisabled,
		}),
	)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version/info", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.JSONEq(t, `{
		"version": "2.0.0",
		"server_uuid": "0b6b6f2e-3c51-4f0e-9d7e-5a1f3c2d9e10",
		"server_name": "district-hospital",
		"database_version": "1.9.4",
		"sync_status": "ENABLED_STRICT"
	}`, rec.Body.String())

	// sync was switched off in between
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version/info", nil))
	assert.Contains(t, rec.Body.String(), `"sync_status":"DISABLED_SYNC_AND_HISTORY"`)
}
