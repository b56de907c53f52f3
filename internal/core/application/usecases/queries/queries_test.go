package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"shift/internal/core/application/usecases/queries"
	"shift/internal/core/domain/model/driver"
	"shift/internal/core/domain/model/kernel"
	"shift/internal/core/domain/model/order"
	"shift/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSessionReader struct {
	mock.Mock
}

func (m *MockSessionReader) GetByName(ctx context.Context, name string) (*driver.Session, error) {
	args := m.Called(ctx, name)
	session, _ := args.Get(0).(*driver.Session)
	return session, args.Error(1)
}

func (m *MockSessionReader) GetAll(ctx context.Context) ([]*driver.Session, error) {
	args := m.Called(ctx)
	sessions, _ := args.Get(0).([]*driver.Session)
	return sessions, args.Error(1)
}

var t0 = time.Date(2024, time.March, 8, 19, 0, 0, 0, time.UTC)

func at(minutes int) kernel.Instant {
	return kernel.MustNewInstant(t0.Add(time.Duration(minutes) * time.Minute))
}

func session(t *testing.T, name string) *driver.Session {
	t.Helper()
	s, err := driver.NewSession(kernel.NewUUID(), name)
	require.NoError(t, err)
	return s
}

// delivered returns a session back at the store after one delivery: order
// placed at -placedBefore, departed at 0, delivered at deliveredAt, arrived at
// arrivedAt.
func delivered(t *testing.T, name string, placedBefore, deliveredAt, arrivedAt int, tip float64) *driver.Session {
	t.Helper()
	s := session(t, name)
	require.NoError(t, s.Login())

	o, err := order.NewOrder(kernel.NewUUID(), "1 margherita", at(-placedBefore))
	require.NoError(t, err)
	require.NoError(t, s.Depart(at(0), o))
	require.NoError(t, s.Deliver(at(deliveredAt), tip))
	require.NoError(t, s.Arrive(at(arrivedAt)))
	return s
}

func TestNewGetDriverStatusQuery(t *testing.T) {
	q, err := queries.NewGetDriverStatusQuery("  Alice ")
	require.NoError(t, err)
	assert.Equal(t, "Alice", q.Name())
	require.NoError(t, q.Validate())

	_, err = queries.NewGetDriverStatusQuery(" ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	var zero queries.GetDriverStatusQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrGetDriverStatusQueryIsNotConstructed)
}

func TestGetDriverStatusQueryHandler_Handle(t *testing.T) {
	t.Run("delivering_driver", func(t *testing.T) {
		// Given
		s := session(t, "Alice")
		require.NoError(t, s.Login())
		o, err := order.NewOrder(kernel.NewUUID(), "2 pepperoni", at(-5))
		require.NoError(t, err)
		require.NoError(t, s.Depart(at(0), o))

		reader := &MockSessionReader{}
		reader.On("GetByName", mock.Anything, "Alice").Return(s, nil).Once()

		query, err := queries.NewGetDriverStatusQuery("Alice")
		require.NoError(t, err)

		// When
		res, err := queries.NewGetDriverStatusQueryHandler(reader).Handle(t.Context(), query)

		// Then
		require.NoError(t, err)
		assert.Equal(t, s.ID(), res.ID)
		assert.Equal(t, "Alice", res.Name)
		assert.Equal(t, driver.Delivering, res.State)
		assert.Equal(t, "Logged in, currently delivering 2 pepperoni", res.Status)
		assert.True(t, res.OnDelivery)
		assert.Equal(t, driver.Summary{}, res.Summary)
		reader.AssertExpectations(t)
	})

	t.Run("driver_with_deliveries", func(t *testing.T) {
		s := delivered(t, "Bob", 5, 20, 28, 5)
		reader := &MockSessionReader{}
		reader.On("GetByName", mock.Anything, "Bob").Return(s, nil).Once()

		query, err := queries.NewGetDriverStatusQuery("Bob")
		require.NoError(t, err)

		res, err := queries.NewGetDriverStatusQueryHandler(reader).Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Equal(t, "Logged in", res.Status)
		assert.False(t, res.OnDelivery)
		assert.Equal(t, 1, res.Summary.Deliveries)
		assert.Equal(t, 25, res.Summary.AvgDeliveringMinutes)
		assert.Equal(t, 28, res.Summary.AvgDrivingMinutes)
		assert.InDelta(t, 5.0, res.Summary.Tips, 1e-9)
	})

	t.Run("unknown_driver", func(t *testing.T) {
		notFound := errs.NewObjectNotFoundError("session", "Zed")
		reader := &MockSessionReader{}
		reader.On("GetByName", mock.Anything, "Zed").Return(nil, notFound).Once()

		query, err := queries.NewGetDriverStatusQuery("Zed")
		require.NoError(t, err)

		_, err = queries.NewGetDriverStatusQueryHandler(reader).Handle(t.Context(), query)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("unconstructed_query", func(t *testing.T) {
		reader := &MockSessionReader{}

		_, err := queries.NewGetDriverStatusQueryHandler(reader).Handle(t.Context(), queries.GetDriverStatusQuery{})

		require.ErrorIs(t, err, queries.ErrGetDriverStatusQueryIsNotConstructed)
		reader.AssertNotCalled(t, "GetByName", mock.Anything, mock.Anything)
	})
}

func TestGetShiftSummaryQueryHandler_Handle(t *testing.T) {
	t.Run("rolls_up_drivers", func(t *testing.T) {
		// Given
		alice := delivered(t, "Alice", 5, 20, 28, 5)
		bob := delivered(t, "Bob", 15, 10, 12, 2.5)
		carol := session(t, "Carol")

		reader := &MockSessionReader{}
		reader.On("GetAll", mock.Anything).Return([]*driver.Session{carol, bob, alice}, nil).Once()

		// When
		report, err := queries.NewGetShiftSummaryQueryHandler(reader).
			Handle(t.Context(), queries.NewGetShiftSummaryQuery())

		// Then
		require.NoError(t, err)
		require.Len(t, report.Drivers, 3)
		assert.Equal(t, "Alice", report.Drivers[0].Name)
		assert.Equal(t, "Bob", report.Drivers[1].Name)
		assert.Equal(t, "Carol", report.Drivers[2].Name)
		assert.Equal(t, 2, report.Deliveries)
		assert.Equal(t, 25+25, report.DeliveringMinutes)
		assert.Equal(t, 28+12, report.DrivingMinutes)
		assert.InDelta(t, 7.5, report.Tips, 1e-9)
		assert.Equal(t, 25, report.AvgDeliveringMinutes)
	})

	t.Run("no_drivers", func(t *testing.T) {
		reader := &MockSessionReader{}
		reader.On("GetAll", mock.Anything).Return([]*driver.Session{}, nil).Once()

		report, err := queries.NewGetShiftSummaryQueryHandler(reader).
			Handle(t.Context(), queries.NewGetShiftSummaryQuery())

		require.NoError(t, err)
		assert.Empty(t, report.Drivers)
		assert.Zero(t, report.Deliveries)
		assert.Zero(t, report.AvgDeliveringMinutes)
	})

	t.Run("reader_error", func(t *testing.T) {
		boom := errors.New("store unavailable")
		reader := &MockSessionReader{}
		reader.On("GetAll", mock.Anything).Return(nil, boom).Once()

		_, err := queries.NewGetShiftSummaryQueryHandler(reader).
			Handle(t.Context(), queries.NewGetShiftSummaryQuery())

		require.ErrorIs(t, err, boom)
	})

	t.Run("unconstructed_query", func(t *testing.T) {
		reader := &MockSessionReader{}

		_, err := queries.NewGetShiftSummaryQueryHandler(reader).
			Handle(t.Context(), queries.GetShiftSummaryQuery{})

		require.ErrorIs(t, err, queries.ErrGetShiftSummaryQueryIsNotConstructed)
	})
}
