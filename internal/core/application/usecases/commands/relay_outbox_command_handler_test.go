package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/ports"
	"parcelhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) FetchPending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	args := m.Called(ctx, limit)
	messages, _ := args.Get(0).([]ports.OutboxMessage)
	return messages, args.Error(1)
}

func (m *MockOutboxRepository) MarkSent(ctx context.Context, id kernel.UUID, sentAt time.Time) error {
	return m.Called(ctx, id, sentAt).Error(0)
}

type MockOutboxUoW struct{ mock.Mock }

func (m *MockOutboxUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockOutboxUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockOutboxUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockOutboxUoW) OutboxRepository() ports.OutboxRepository {
	return m.Called().Get(0).(ports.OutboxRepository)
}

type MockOutboxUoWFactory struct{ mock.Mock }

func (m *MockOutboxUoWFactory) Create() commands.OutboxUoW {
	return m.Called().Get(0).(commands.OutboxUoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, msg ports.OutboxMessage) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *MockEventPublisher) Close() error { return m.Called().Error(0) }

func outboxMessages(n int) []ports.OutboxMessage {
	messages := make([]ports.OutboxMessage, 0, n)
	for range n {
		messages = append(messages, ports.OutboxMessage{
			ID:          kernel.NewUUID(),
			EventName:   "parcel.created",
			AggregateID: kernel.NewUUID(),
			Payload:     []byte(`{}`),
			OccurredAt:  time.Now(),
		})
	}
	return messages
}

type relayFixture struct {
	factory   *MockOutboxUoWFactory
	uow       *MockOutboxUoW
	repo      *MockOutboxRepository
	publisher *MockEventPublisher
	handler   commands.RelayOutboxCommandHandler
}

func newRelayFixture() relayFixture {
	f := relayFixture{
		factory:   &MockOutboxUoWFactory{},
		uow:       &MockOutboxUoW{},
		repo:      &MockOutboxRepository{},
		publisher: &MockEventPublisher{},
	}
	f.factory.On("Create").Return(f.uow)
	f.uow.On("OutboxRepository").Return(f.repo)
	f.handler = commands.NewRelayOutboxCommandHandler(f.factory, f.publisher)
	return f
}

func (f relayFixture) assertExpectations(t *testing.T) {
	f.uow.AssertExpectations(t)
	f.repo.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
}

// expectMarkSent queues the short unit of work that acknowledges one message.
func (f relayFixture) expectMarkSent(ctx context.Context, msg ports.OutboxMessage) []*mock.Call {
	return []*mock.Call{
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.repo.On("MarkSent", ctx, msg.ID, mock.AnythingOfType("time.Time")).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	}
}

func (f relayFixture) expectFetch(ctx context.Context, limit int, messages []ports.OutboxMessage) []*mock.Call {
	return []*mock.Call{
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.repo.On("FetchPending", ctx, limit).Return(messages, nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	}
}

func TestRelayOutbox_PublishesInOrderAndMarksSent(t *testing.T) {
	ctx := t.Context()
	f := newRelayFixture()
	messages := outboxMessages(2)

	calls := f.expectFetch(ctx, 50, messages)
	calls = append(calls, f.publisher.On("Publish", ctx, messages[0]).Return(nil).Once())
	calls = append(calls, f.expectMarkSent(ctx, messages[0])...)
	calls = append(calls, f.publisher.On("Publish", ctx, messages[1]).Return(nil).Once())
	calls = append(calls, f.expectMarkSent(ctx, messages[1])...)
	mock.InOrder(calls...)

	cmd, err := commands.NewRelayOutboxCommand(50)
	require.NoError(t, err)

	result, err := f.handler.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, commands.RelayOutboxResult{Published: 2}, result)
	f.assertExpectations(t)
}

func TestRelayOutbox_StopsAtFirstFailure(t *testing.T) {
	ctx := t.Context()
	f := newRelayFixture()
	messages := outboxMessages(3)
	brokerDown := errors.New("broker down")

	calls := f.expectFetch(ctx, commands.DefaultRelayBatchSize, messages)
	calls = append(calls, f.publisher.On("Publish", ctx, messages[0]).Return(nil).Once())
	calls = append(calls, f.expectMarkSent(ctx, messages[0])...)
	calls = append(calls, f.publisher.On("Publish", ctx, messages[1]).Return(brokerDown).Once())
	mock.InOrder(calls...)

	cmd, err := commands.NewRelayOutboxCommand(0)
	require.NoError(t, err)

	result, err := f.handler.Handle(ctx, cmd)
	require.ErrorIs(t, err, brokerDown)
	assert.Equal(t, commands.RelayOutboxResult{Published: 1, Pending: 2}, result)
	f.publisher.AssertNotCalled(t, "Publish", ctx, messages[2])
	f.assertExpectations(t)
}

func TestRelayOutbox_NothingPending(t *testing.T) {
	ctx := t.Context()
	f := newRelayFixture()

	mock.InOrder(f.expectFetch(ctx, commands.DefaultRelayBatchSize, []ports.OutboxMessage{})...)

	cmd, err := commands.NewRelayOutboxCommand(0)
	require.NoError(t, err)

	result, err := f.handler.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Zero(t, result)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	f.assertExpectations(t)
}

func TestRelayOutbox_FirstPublishFailsCommitsNothing(t *testing.T) {
	ctx := t.Context()
	f := newRelayFixture()
	messages := outboxMessages(1)

	calls := f.expectFetch(ctx, commands.DefaultRelayBatchSize, messages)
	calls = append(calls, f.publisher.On("Publish", ctx, messages[0]).Return(errors.New("timeout")).Once())
	mock.InOrder(calls...)

	cmd, err := commands.NewRelayOutboxCommand(0)
	require.NoError(t, err)

	result, err := f.handler.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Equal(t, commands.RelayOutboxResult{Pending: 1}, result)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	f.assertExpectations(t)
}

func TestRelayOutbox_PublishesWithNoUnitOfWorkOpen(t *testing.T) {
	ctx := t.Context()
	f := newRelayFixture()
	messages := outboxMessages(1)

	open := 0
	f.uow.On("Begin", ctx).Run(func(mock.Arguments) { open++ }).Return(nil)
	f.uow.On("Rollback", ctx).Run(func(mock.Arguments) { open-- }).Return(nil)
	f.uow.On("Commit", ctx).Return(nil)
	f.repo.On("FetchPending", ctx, commands.DefaultRelayBatchSize).Return(messages, nil).Once()
	f.repo.On("MarkSent", ctx, messages[0].ID, mock.Anything).Return(nil).Once()
	f.publisher.On("Publish", ctx, messages[0]).Run(func(mock.Arguments) {
		assert.Zero(t, open, "publish must run outside any unit of work")
	}).Return(nil).Once()

	cmd, err := commands.NewRelayOutboxCommand(0)
	require.NoError(t, err)

	result, err := f.handler.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, commands.RelayOutboxResult{Published: 1}, result)
	assert.Zero(t, open)
	f.assertExpectations(t)
}

func TestRelayOutbox_MarkFailureStopsRun(t *testing.T) {
	ctx := t.Context()
	f := newRelayFixture()
	messages := outboxMessages(2)
	lost := errors.New("connection lost")

	calls := f.expectFetch(ctx, commands.DefaultRelayBatchSize, messages)
	calls = append(calls,
		f.publisher.On("Publish", ctx, messages[0]).Return(nil).Once(),
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.repo.On("MarkSent", ctx, messages[0].ID, mock.Anything).Return(lost).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)
	mock.InOrder(calls...)

	cmd, err := commands.NewRelayOutboxCommand(0)
	require.NoError(t, err)

	result, err := f.handler.Handle(ctx, cmd)
	require.ErrorIs(t, err, lost)
	assert.Equal(t, commands.RelayOutboxResult{Pending: 2}, result)
	f.publisher.AssertNotCalled(t, "Publish", ctx, messages[1])
	f.assertExpectations(t)
}

func TestNewRelayOutboxCommand_RejectsBadBatchSize(t *testing.T) {
	for _, size := range []int{-1, 10_001} {
		_, err := commands.NewRelayOutboxCommand(size)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	}

	_, err := commands.RelayOutboxCommandHandler{}.Handle(t.Context(), commands.RelayOutboxCommand{})
	assert.ErrorIs(t, err, commands.ErrRelayOutboxCommandIsNotConstructed)
}
