package operator

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/events"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

type fakeTx struct {
	mu        sync.Mutex
	commits   int
	rollbacks int
	commitErr error
}

func (f *fakeTx) Commit(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commits++
	return f.commitErr
}

func (f *fakeTx) Rollback(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rollbacks++
	return nil
}

type fakeSource struct {
	tx           *fakeTx
	transactions *sqlconfig.MockITransactionTable
	accounts     *sqlconfig.MockIAccountTable
	err          error
}

func newFakeSource(t *testing.T) *fakeSource {
	return &fakeSource{
		tx:           &fakeTx{},
		transactions: sqlconfig.NewMockITransactionTable(t),
		accounts:     sqlconfig.NewMockIAccountTable(t),
	}
}

func (f *fakeSource) Write(context.Context) (*storage.Writer, error) {
	if f.err != nil {
		return nil, f.err
	}
	return storage.NewWriterWithTables(f.tx, f.transactions, f.accounts), nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (r *recordingPublisher) Publish(_ context.Context, event events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return r.err
}

func (r *recordingPublisher) published() []events.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]events.Event(nil), r.events...)
}

func startDelegator(t *testing.T, source *fakeSource, publisher events.Publisher) *OperatorDelegator {
	t.Helper()
	delegator := NewOperatorDelegator(source, publisher, logrus.New(), 2)
	delegator.Start()
	t.Cleanup(delegator.Stop)
	return delegator
}

func TestProcess_CommitsAndPublishes(t *testing.T) {
	source := newFakeSource(t)
	publisher := &recordingPublisher{}
	delegator := startDelegator(t, source, publisher)

	createdID := uuid.Must(uuid.NewV4())
	source.transactions.EXPECT().Insert(mock.Anything, mock.Anything).Return(createdID, nil)

	action := &actions.CreateTransaction{
		Amount:     decimal.RequireFromString("12.00"),
		Type:       "expense",
		Recurrence: "one_off",
	}
	err := delegator.Process(context.Background(), action)

	require.NoError(t, err)
	assert.Equal(t, createdID, action.CreatedID)
	assert.Eventually(t, func() bool { return len(publisher.published()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, "transaction.created", publisher.published()[0].RoutingKey())
	assert.Equal(t, 1, source.tx.commits)
	assert.Equal(t, 0, source.tx.rollbacks)
}

func TestProcess_RollsBackOnActionError(t *testing.T) {
	source := newFakeSource(t)
	publisher := &recordingPublisher{}
	delegator := startDelegator(t, source, publisher)

	id := uuid.Must(uuid.NewV4())
	source.transactions.EXPECT().Delete(mock.Anything, id).Return(storage.ErrNotFound)

	err := delegator.Process(context.Background(), &actions.DeleteTransaction{ID: id})

	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.Equal(t, 0, source.tx.commits)
	assert.Equal(t, 1, source.tx.rollbacks)
	assert.Empty(t, publisher.published())
}

func TestProcess_CommitError(t *testing.T) {
	source := newFakeSource(t)
	source.tx.commitErr = errors.New("serialization failure")
	publisher := &recordingPublisher{}
	delegator := startDelegator(t, source, publisher)

	id := uuid.Must(uuid.NewV4())
	source.transactions.EXPECT().Delete(mock.Anything, id).Return(nil)

	err := delegator.Process(context.Background(), &actions.DeleteTransaction{ID: id})

	assert.EqualError(t, err, "serialization failure")
	assert.Empty(t, publisher.published())
}

func TestProcess_WriteError(t *testing.T) {
	source := newFakeSource(t)
	source.err = errors.New("connection refused")
	delegator := startDelegator(t, source, nil)

	err := delegator.Process(context.Background(), &actions.DeleteTransaction{ID: uuid.Must(uuid.NewV4())})

	assert.EqualError(t, err, "connection refused")
}

func TestProcess_PublishErrorDoesNotFailWrite(t *testing.T) {
	source := newFakeSource(t)
	publisher := &recordingPublisher{err: errors.New("broker down")}
	delegator := startDelegator(t, source, publisher)

	id := uuid.Must(uuid.NewV4())
	source.transactions.EXPECT().Delete(mock.Anything, id).Return(nil)

	err := delegator.Process(context.Background(), &actions.DeleteTransaction{ID: id})

	assert.NoError(t, err)
}

func TestProcess_CancelledContext(t *testing.T) {
	source := newFakeSource(t)
	delegator := startDelegator(t, source, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := delegator.Process(ctx, &actions.DeleteTransaction{ID: uuid.Must(uuid.NewV4())})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestProcess_AfterStop(t *testing.T) {
	source := newFakeSource(t)
	delegator := NewOperatorDelegator(source, nil, logrus.New(), 1)
	delegator.Start()
	delegator.Stop()
	delegator.Stop()

	err := delegator.Process(context.Background(), &actions.DeleteTransaction{ID: uuid.Must(uuid.NewV4())})

	assert.ErrorIs(t, err, ErrStopped)
}
