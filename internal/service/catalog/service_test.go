package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	"github.com/m04kA/SMC-GarageService/internal/service/catalog/models"
)

type fakeServiceRepo struct {
	created []*domain.Service
}

func (f *fakeServiceRepo) Create(_ context.Context, service *domain.Service) (*domain.Service, error) {
	service.ID = int64(len(f.created) + 1)
	f.created = append(f.created, service)
	return service, nil
}

func (f *fakeServiceRepo) ListByMechanic(_ context.Context, _ int64) ([]*domain.Service, error) {
	return f.created, nil
}

type fakeMechanicRepo struct {
	exists bool
}

func (f *fakeMechanicRepo) Exists(_ context.Context, _ int64) (bool, error) {
	return f.exists, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestCreateService_Success(t *testing.T) {
	repo := &fakeServiceRepo{}
	svc := NewService(repo, &fakeMechanicRepo{exists: true}, nopLogger{})

	resp, err := svc.CreateService(context.Background(), &models.CreateServiceRequest{
		MechanicID: 1,
		Name:       "Замена масла",
		Price:      3000,
		Duration:   "00:45",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "00:45", resp.Duration)
	require.Len(t, repo.created, 1)
}

func TestCreateService_InvalidDuration(t *testing.T) {
	svc := NewService(&fakeServiceRepo{}, &fakeMechanicRepo{exists: true}, nopLogger{})

	tests := []struct {
		name     string
		duration string
	}{
		{name: "zero", duration: "00:00"},
		{name: "garbage", duration: "ninety minutes"},
		{name: "empty", duration: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateService(context.Background(), &models.CreateServiceRequest{
				MechanicID: 1,
				Name:       "Диагностика",
				Price:      1000,
				Duration:   tt.duration,
			})
			assert.ErrorIs(t, err, ErrInvalidDuration)
		})
	}
}

func TestCreateService_MechanicNotFound(t *testing.T) {
	svc := NewService(&fakeServiceRepo{}, &fakeMechanicRepo{exists: false}, nopLogger{})

	_, err := svc.CreateService(context.Background(), &models.CreateServiceRequest{
		MechanicID: 42,
		Name:       "Диагностика",
		Price:      1000,
		Duration:   "01:00",
	})

	assert.ErrorIs(t, err, ErrMechanicNotFound)
}

func TestListServices_MechanicNotFound(t *testing.T) {
	svc := NewService(&fakeServiceRepo{}, &fakeMechanicRepo{exists: false}, nopLogger{})

	_, err := svc.ListServices(context.Background(), 42)

	assert.ErrorIs(t, err, ErrMechanicNotFound)
}

func TestListServices_Success(t *testing.T) {
	repo := &fakeServiceRepo{}
	svc := NewService(repo, &fakeMechanicRepo{exists: true}, nopLogger{})

	_, err := svc.CreateService(context.Background(), &models.CreateServiceRequest{
		MechanicID: 1,
		Name:       "Шиномонтаж",
		Price:      2000,
		Duration:   "00:30",
	})
	require.NoError(t, err)

	resp, err := svc.ListServices(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, int64(1), resp.MechanicID)
}
