package commands_test

import (
	"testing"
	"time"

	"shift/internal/core/domain/model/driver"
	"shift/internal/core/domain/model/kernel"
	"shift/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var t0 = kernel.MustNewInstant(time.Date(2024, time.March, 8, 19, 0, 0, 0, time.UTC))

func at(minutes int) kernel.Instant {
	return t0.Add(time.Duration(minutes) * time.Minute)
}

func loggedOutSession(t *testing.T, name string) *driver.Session {
	t.Helper()
	s, err := driver.NewSession(kernel.NewUUID(), name)
	require.NoError(t, err)
	return s
}

func idleSession(t *testing.T, name string) *driver.Session {
	t.Helper()
	s := loggedOutSession(t, name)
	require.NoError(t, s.Login())
	return s
}

func deliveringSession(t *testing.T, name string) *driver.Session {
	t.Helper()
	s := idleSession(t, name)
	o, err := order.NewOrder(kernel.NewUUID(), "2 pepperoni", at(-5))
	require.NoError(t, err)
	require.NoError(t, s.Depart(at(0), o))
	return s
}

// expectChange sets up the mocks for a handler that loads session under its
// name, changes it and commits.
func expectChange(
	ctx any,
	session *driver.Session,
) (*MockSessionUoWFactory, *MockSessionUoW, *MockSessionRepository) {
	repo := new(MockSessionRepository)
	uow := new(MockSessionUoW)
	factory := new(MockSessionUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("SessionRepository").Return(repo).Once()
	repo.On("GetByName", ctx, session.Name()).Return(session, nil).Once()
	repo.On("Update", ctx, session).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	return factory, uow, repo
}

// expectRejected sets up the mocks for a handler whose domain operation fails:
// nothing is updated and the transaction is rolled back.
func expectRejected(
	ctx any,
	session *driver.Session,
) (*MockSessionUoWFactory, *MockSessionUoW, *MockSessionRepository) {
	repo := new(MockSessionRepository)
	uow := new(MockSessionUoW)
	factory := new(MockSessionUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("SessionRepository").Return(repo).Once()
	repo.On("GetByName", ctx, session.Name()).Return(session, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	return factory, uow, repo
}
