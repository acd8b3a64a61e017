package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"mdlib/internal/model"
)

type MockFolderRepository struct {
	mock.Mock
}

func (m *MockFolderRepository) Create(ctx context.Context, name string, parentID *string) (*model.Folder, error) {
	args := m.Called(ctx, name, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Folder), args.Error(1)
}

func (m *MockFolderRepository) FindByID(ctx context.Context, id string) (*model.Folder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Folder), args.Error(1)
}

func (m *MockFolderRepository) List(ctx context.Context) ([]model.Folder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Folder), args.Error(1)
}

func (m *MockFolderRepository) ListChildren(ctx context.Context, parentID *string) ([]model.Folder, error) {
	args := m.Called(ctx, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Folder), args.Error(1)
}

func (m *MockFolderRepository) Update(ctx context.Context, id string, patch model.FolderPatch) (*model.Folder, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Folder), args.Error(1)
}

func (m *MockFolderRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
