package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"event-voting-backend/internal/database/models"
	"event-voting-backend/internal/mocks"
	"event-voting-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestActivityService_RecordDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockActivityLogRepositoryInterface(ctrl)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, l *models.ActivityLog) error {
		assert.Equal(t, "system", l.Actor)
		assert.Equal(t, "unknown", l.IPAddress)
		assert.JSONEq(t, `{"projectId":"T1"}`, string(l.Details))
		return nil
	})

	svc := service.NewActivityService(repo)
	svc.Record(context.Background(), service.ActivityEntry{
		Type:    models.ActivityTypeProject,
		Action:  "create",
		Details: map[string]interface{}{"projectId": "T1"},
	})
}

func TestActivityService_RecordSurvivesCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockActivityLogRepositoryInterface(ctrl)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, _ *models.ActivityLog) error {
		assert.NoError(t, ctx.Err())
		return errors.New("insert failed")
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// storage errors are swallowed
	service.NewActivityService(repo).Record(ctx, service.ActivityEntry{Type: models.ActivityTypeVote, Action: "submit"})
}

func TestActivityService_RecentClampsLimit(t *testing.T) {
	cases := []struct {
		requested, expected int
	}{
		{0, service.DefaultActivityLimit},
		{-5, service.DefaultActivityLimit},
		{50, 50},
		{5000, service.MaxActivityLimit},
	}

	for _, tc := range cases {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockActivityLogRepositoryInterface(ctrl)
		repo.EXPECT().GetRecent(gomock.Any(), tc.expected).Return(nil, nil)

		logs, err := service.NewActivityService(repo).Recent(context.Background(), tc.requested)
		require.NoError(t, err)
		assert.Empty(t, logs)
	}
}

func TestActivityService_RecentMapsRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockActivityLogRepositoryInterface(ctrl)
	id := uuid.New()
	repo.EXPECT().GetRecent(gomock.Any(), 10).Return([]models.ActivityLog{{
		BaseModel: models.BaseModel{ID: id, CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 6000000, time.UTC)},
		Type:      models.ActivityTypeAuth,
		Action:    "login",
		Actor:     "admin@example.com",
		Details:   json.RawMessage(`{"method":"password"}`),
		IPAddress: "10.1.1.1",
	}}, nil)

	logs, err := service.NewActivityService(repo).Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, id.String(), logs[0].ID)
	assert.Equal(t, "2026-01-02T03:04:05.006Z", logs[0].Timestamp)
	assert.Equal(t, "10.1.1.1", logs[0].IPAddress)
}
