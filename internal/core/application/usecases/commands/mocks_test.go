package commands_test

import (
	"context"

	"shift/internal/core/application/usecases/commands"
	"shift/internal/core/domain/model/driver"
	"shift/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Add(ctx context.Context, session *driver.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) Update(ctx context.Context, session *driver.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) GetByName(ctx context.Context, name string) (*driver.Session, error) {
	args := m.Called(ctx, name)
	session, _ := args.Get(0).(*driver.Session)
	return session, args.Error(1)
}

func (m *MockSessionRepository) GetAll(ctx context.Context) ([]*driver.Session, error) {
	args := m.Called(ctx)
	sessions, _ := args.Get(0).([]*driver.Session)
	return sessions, args.Error(1)
}

type MockSessionUoW struct {
	mock.Mock
}

func (m *MockSessionUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSessionUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSessionUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSessionUoW) SessionRepository() ports.SessionRepository {
	args := m.Called()
	return args.Get(0).(ports.SessionRepository)
}

type MockSessionUoWFactory struct {
	mock.Mock
}

func (m *MockSessionUoWFactory) Create() commands.SessionUoW {
	args := m.Called()
	return args.Get(0).(commands.SessionUoW)
}
