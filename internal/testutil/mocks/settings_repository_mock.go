package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/jmercado/uicguessr/internal/models"
)

// MockSettingsRepository is a mock implementation of repository.SettingsRepository
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Get(ctx context.Context) (models.Settings, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.Settings), args.Error(1)
}

func (m *MockSettingsRepository) Save(ctx context.Context, s models.Settings) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
