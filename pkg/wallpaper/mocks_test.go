package wallpaper

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/paperdesk/paperdesk/pkg/provider"
)

// MockOS is a mock implementation of the OS interface.
type MockOS struct {
	mock.Mock
}

func (m *MockOS) GetMonitors() ([]Target, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Target), args.Error(1)
}

func (m *MockOS) SetWallpaper(path string, monitorID int) error {
	args := m.Called(path, monitorID)
	return args.Error(0)
}

// MockMaterializer is a mock implementation of the Materializer interface.
type MockMaterializer struct {
	mock.Mock
}

func (m *MockMaterializer) Materialize(ctx context.Context, c provider.Candidate, destDir string) (string, error) {
	args := m.Called(ctx, c, destDir)
	return args.String(0), args.Error(1)
}

// MockFeedSource is a mock implementation of the provider.FeedSource interface.
type MockFeedSource struct {
	mock.Mock
}

func (m *MockFeedSource) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockFeedSource) FetchCandidates(ctx context.Context, query string, page int) ([]provider.Candidate, error) {
	args := m.Called(ctx, query, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]provider.Candidate), args.Error(1)
}
