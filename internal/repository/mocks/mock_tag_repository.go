package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"mdlib/internal/model"
)

type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) Create(ctx context.Context, name string, color *string) (*model.Tag, error) {
	args := m.Called(ctx, name, color)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tag), args.Error(1)
}

func (m *MockTagRepository) FindByID(ctx context.Context, id string) (*model.Tag, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tag), args.Error(1)
}

func (m *MockTagRepository) List(ctx context.Context) ([]model.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tag), args.Error(1)
}

func (m *MockTagRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockTagRepository) Attach(ctx context.Context, documentID, tagID string) error {
	args := m.Called(ctx, documentID, tagID)
	return args.Error(0)
}

func (m *MockTagRepository) Detach(ctx context.Context, documentID, tagID string) (bool, error) {
	args := m.Called(ctx, documentID, tagID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTagRepository) ListForDocument(ctx context.Context, documentID string) ([]model.Tag, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tag), args.Error(1)
}

func (m *MockTagRepository) ListDocuments(ctx context.Context, tagID string) ([]model.Document, error) {
	args := m.Called(ctx, tagID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}
