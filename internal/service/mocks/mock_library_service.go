package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"mdlib/internal/model"
)

type MockLibraryService struct {
	mock.Mock
}

func (m *MockLibraryService) Create(ctx context.Context, title, content string, folderID *string) (*model.Document, error) {
	args := m.Called(ctx, title, content, folderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockLibraryService) GetAll(ctx context.Context) ([]model.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}

func (m *MockLibraryService) Get(ctx context.Context, id string) (*model.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockLibraryService) Update(ctx context.Context, id string, patch model.DocumentPatch) (*model.Document, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockLibraryService) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockLibraryService) Search(ctx context.Context, query string) ([]model.Document, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}

func (m *MockLibraryService) GetByFolder(ctx context.Context, folderID *string) ([]model.Document, error) {
	args := m.Called(ctx, folderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}

func (m *MockLibraryService) Reindex(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLibraryService) Import(ctx context.Context, path string, folderID *string) (*model.Document, error) {
	args := m.Called(ctx, path, folderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}
