package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"mdlib/internal/service"
	"mdlib/internal/storage"
)

type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) ExportHTML(ctx context.Context, html, title string) (*service.ExportResult, error) {
	args := m.Called(ctx, html, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExportResult), args.Error(1)
}

func (m *MockExportService) Open(ctx context.Context, key string) (io.ReadCloser, storage.ObjectInfo, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Get(1).(storage.ObjectInfo), args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(storage.ObjectInfo), args.Error(2)
}

func (m *MockExportService) Remove(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
