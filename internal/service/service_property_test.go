package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/mock"
	"github.com/MKhiriev/go-sync-keeper/internal/service"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
	"github.com/MKhiriev/go-sync-keeper/models"
)

func TestPropertyService_Getters(t *testing.T) {
	tests := []struct {
		name     string
		property string
		stored   string
		err      error
		read     func(service.PropertyService, context.Context) any
		want     any
	}{
		{
			name:     "sync status",
			property: models.PropertySyncStatus,
			stored:   string(models.SyncStatusStrict),
			read:     func(p service.PropertyService, ctx context.Context) any { return p.SyncStatus(ctx) },
			want:     models.SyncStatusStrict,
		},
		{
			name:     "unknown sync status is lenient",
			property: models.PropertySyncStatus,
			stored:   "MAYBE",
			read:     func(p service.PropertyService, ctx context.Context) any { return p.SyncStatus(ctx) },
			want:     models.SyncStatusLenient,
		},
		{
			name:     "max records",
			property: models.PropertyMaxRecords,
			stored:   "200",
			read:     func(p service.PropertyService, ctx context.Context) any { return p.MaxRecords(ctx) },
			want:     200,
		},
		{
			name:     "max records missing",
			property: models.PropertyMaxRecords,
			err:      store.ErrPropertyNotFound,
			read:     func(p service.PropertyService, ctx context.Context) any { return p.MaxRecords(ctx) },
			want:     models.DefaultMaxRecords,
		},
		{
			name:     "max retry count not a number",
			property: models.PropertyMaxRetryCount,
			stored:   "lots",
			read:     func(p service.PropertyService, ctx context.Context) any { return p.MaxRetryCount(ctx) },
			want:     models.DefaultMaxRetryCount,
		},
		{
			name:     "max retry count read failure",
			property: models.PropertyMaxRetryCount,
			err:      errors.New("database is locked"),
			read:     func(p service.PropertyService, ctx context.Context) any { return p.MaxRetryCount(ctx) },
			want:     models.DefaultMaxRetryCount,
		},
		{
			name:     "compression",
			property: models.PropertyEnableCompression,
			stored:   "true",
			read:     func(p service.PropertyService, ctx context.Context) any { return p.CompressionEnabled(ctx) },
			want:     true,
		},
		{
			name:     "compression unset",
			property: models.PropertyEnableCompression,
			err:      store.ErrPropertyNotFound,
			read:     func(p service.PropertyService, ctx context.Context) any { return p.CompressionEnabled(ctx) },
			want:     false,
		},
		{
			name:     "database version default",
			property: models.PropertyDatabaseVersion,
			err:      store.ErrPropertyNotFound,
			read:     func(p service.PropertyService, ctx context.Context) any { return p.DatabaseVersion(ctx) },
			want:     models.DefaultDatabaseVersion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockGlobalPropertyRepository(ctrl)
			svc := service.NewPropertyService(repo, logger.Nop())
			ctx := context.Background()

			repo.EXPECT().GetGlobalProperty(ctx, tt.property).Return(tt.stored, tt.err)
			assert.Equal(t, tt.want, tt.read(svc, ctx))
		})
	}
}

func TestPropertyService_SetProperty(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr error
	}{
		{name: "status", key: models.PropertySyncStatus, value: string(models.SyncStatusDisabled)},
		{name: "bad status", key: models.PropertySyncStatus, value: "OFF", wantErr: service.ErrInvalidPropertyValue},
		{name: "max records", key: models.PropertyMaxRecords, value: "10"},
		{name: "zero max records", key: models.PropertyMaxRecords, value: "0", wantErr: service.ErrInvalidPropertyValue},
		{name: "negative retry count", key: models.PropertyMaxRetryCount, value: "-1", wantErr: service.ErrInvalidPropertyValue},
		{name: "compression", key: models.PropertyEnableCompression, value: "false"},
		{name: "bad compression", key: models.PropertyEnableCompression, value: "sometimes", wantErr: service.ErrInvalidPropertyValue},
		{name: "free form", key: "synchronization.custom", value: "anything"},
		{name: "no name", key: "", value: "x", wantErr: service.ErrInvalidDataProvided},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockGlobalPropertyRepository(ctrl)
			svc := service.NewPropertyService(repo, logger.Nop())
			ctx := context.Background()

			if tt.wantErr == nil {
				repo.EXPECT().SetGlobalProperty(ctx, tt.key, tt.value).Return(nil)
			}

			err := svc.SetProperty(ctx, tt.key, tt.value)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPropertyService_SetSyncStatus_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := service.NewPropertyService(mock.NewMockGlobalPropertyRepository(ctrl), logger.Nop())

	err := svc.SetSyncStatus(context.Background(), models.SyncStatus("ENABLED_SOMETIMES"))
	assert.ErrorIs(t, err, service.ErrInvalidPropertyValue)
}

func TestPropertyService_Init(t *testing.T) {
	t.Run("first start", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockGlobalPropertyRepository(ctrl)
		svc := service.NewPropertyService(repo, logger.Nop())
		ctx := context.Background()

		repo.EXPECT().GetGlobalProperty(ctx, gomock.Any()).Return("", store.ErrPropertyNotFound).AnyTimes()

		stored := make(map[string]string)
		repo.EXPECT().
			SetGlobalProperty(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, name, value string) error {
				stored[name] = value
				return nil
			}).
			Times(5)

		require.NoError(t, svc.Init(ctx, "district-hospital"))
		assert.Len(t, stored[models.PropertyServerUUID], 36)
		assert.Equal(t, "district-hospital", stored[models.PropertyServerName])
		assert.Equal(t, models.DefaultDatabaseVersion, stored[models.PropertyDatabaseVersion])
		assert.Equal(t, "50", stored[models.PropertyMaxRecords])
		assert.Equal(t, "5", stored[models.PropertyMaxRetryCount])
	})

	t.Run("restart keeps existing values", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockGlobalPropertyRepository(ctrl)
		svc := service.NewPropertyService(repo, logger.Nop())
		ctx := context.Background()

		repo.EXPECT().GetGlobalProperty(ctx, gomock.Any()).Return("already-set", nil).AnyTimes()

		require.NoError(t, svc.Init(ctx, "district-hospital"))
	})

	t.Run("write failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockGlobalPropertyRepository(ctrl)
		svc := service.NewPropertyService(repo, logger.Nop())
		ctx := context.Background()

		repo.EXPECT().GetGlobalProperty(ctx, models.PropertyServerUUID).Return("", store.ErrPropertyNotFound)
		repo.EXPECT().SetGlobalProperty(ctx, models.PropertyServerUUID, gomock.Any()).Return(errors.New("read-only database"))

		assert.Error(t, svc.Init(ctx, "district-hospital"))
	})
}
