package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/phrazzld/study-coordinator/internal/domain"
	"github.com/phrazzld/study-coordinator/internal/store"
)

// TestifyMockUserStore is a mock of store.UserStore interface for use with testify/mock
type TestifyMockUserStore struct {
	mock.Mock
}

var _ store.UserStore = (*TestifyMockUserStore)(nil)

// Add is a mock implementation of store.UserStore.Add
func (m *TestifyMockUserStore) Add(user *domain.User) {
	m.Called(user)
}

// All is a mock implementation of store.UserStore.All
func (m *TestifyMockUserStore) All() []*domain.User {
	args := m.Called()
	if users, ok := args.Get(0).([]*domain.User); ok {
		return users
	}
	return []*domain.User{}
}

// FindByID is a mock implementation of store.UserStore.FindByID
func (m *TestifyMockUserStore) FindByID(id int) (*domain.User, error) {
	args := m.Called(id)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

// FindByUsername is a mock implementation of store.UserStore.FindByUsername
func (m *TestifyMockUserStore) FindByUsername(username string) (*domain.User, error) {
	args := m.Called(username)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

// Load is a mock implementation of store.UserStore.Load
func (m *TestifyMockUserStore) Load(ctx context.Context) store.LoadResult {
	args := m.Called(ctx)
	return args.Get(0).(store.LoadResult)
}

// Save is a mock implementation of store.UserStore.Save
func (m *TestifyMockUserStore) Save(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
