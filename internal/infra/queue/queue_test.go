package queue

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/wa-gateway/internal/entity"
	"github.com/xavierca1/wa-gateway/internal/usecase"
)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	args := m.Called(ctx, exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

func TestPublishDelivery(t *testing.T) {
	pub := new(MockPublisher)
	event := entity.DeliveryEvent{
		ID:         "c0ffee",
		Operation:  "text",
		To:         "57300@c.us",
		Status:     entity.DeliveryStatusSent,
		Origin:     usecase.OriginHTTP,
		OccurredAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	pub.On("PublishWithContext", mock.Anything, ExchangeName, DeliveryRoutingKey, false, false,
		mock.MatchedBy(func(msg amqp.Publishing) bool {
			var got entity.DeliveryEvent
			if err := json.Unmarshal(msg.Body, &got); err != nil {
				return false
			}
			return msg.MessageId == "c0ffee" &&
				msg.DeliveryMode == amqp.Persistent &&
				msg.ContentType == "application/json" &&
				got.To == "57300@c.us"
		})).Return(nil)

	err := NewProducer(pub).PublishDelivery(context.Background(), event)

	require.NoError(t, err)
	pub.AssertExpectations(t)
}

func TestPublishDeliveryWrapsBrokerError(t *testing.T) {
	pub := new(MockPublisher)
	pub.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(amqp.ErrClosed)

	err := NewProducer(pub).PublishDelivery(context.Background(), entity.DeliveryEvent{ID: "x"})

	assert.ErrorIs(t, err, amqp.ErrClosed)
}

type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) SendText(ctx context.Context, input usecase.SendTextInput) (*usecase.DispatchOutput, error) {
	args := m.Called(ctx, input)
	return nil, args.Error(0)
}

func (m *MockDispatcher) SendImage(ctx context.Context, input usecase.SendImageInput) (*usecase.DispatchOutput, error) {
	args := m.Called(ctx, input)
	return nil, args.Error(0)
}

func (m *MockDispatcher) SendFile(ctx context.Context, input usecase.SendFileInput) (*usecase.DispatchOutput, error) {
	args := m.Called(ctx, input)
	return nil, args.Error(0)
}

type fakeAcknowledger struct {
	acked  []uint64
	nacked []uint64
}

func (f *fakeAcknowledger) Ack(tag uint64, _ bool) error {
	f.acked = append(f.acked, tag)
	return nil
}

func (f *fakeAcknowledger) Nack(tag uint64, _ bool, requeue bool) error {
	if requeue {
		return errors.New("unexpected requeue")
	}
	f.nacked = append(f.nacked, tag)
	return nil
}

func (f *fakeAcknowledger) Reject(tag uint64, requeue bool) error {
	return f.Nack(tag, false, requeue)
}

type fakeConsumer struct {
	deliveries chan amqp.Delivery
	err        error
}

func (f *fakeConsumer) Consume(string, string, bool, bool, bool, bool, amqp.Table) (<-chan amqp.Delivery, error) {
	return f.deliveries, f.err
}

func fromQueue(ctx context.Context) bool {
	return usecase.Origin(ctx) == usecase.OriginQueue
}

func TestWorkerAcksAndNacks(t *testing.T) {
	dispatcher := new(MockDispatcher)
	dispatcher.On("SendText", mock.MatchedBy(fromQueue), usecase.SendTextInput{Number: "57300", Message: "hi"}).Return(nil)
	dispatcher.On("SendImage", mock.Anything, usecase.SendImageInput{Number: "57300", ImageURL: "https://x/a.png", Caption: "c"}).Return(nil)
	dispatcher.On("SendFile", mock.Anything, mock.Anything).Return(&usecase.DomainError{Code: usecase.CodeMissingParameter})

	ack := &fakeAcknowledger{}
	deliveries := make(chan amqp.Delivery, 5)
	deliveries <- amqp.Delivery{Acknowledger: ack, DeliveryTag: 1, Body: []byte(`{"type":"text","number":"57300","message":"hi"}`)}
	deliveries <- amqp.Delivery{Acknowledger: ack, DeliveryTag: 2, Body: []byte(`{"type":"image","number":"57300","imageUrl":"https://x/a.png","caption":"c"}`)}
	deliveries <- amqp.Delivery{Acknowledger: ack, DeliveryTag: 3, Body: []byte(`{"type":"file","number":"57300"}`)}
	deliveries <- amqp.Delivery{Acknowledger: ack, DeliveryTag: 4, Body: []byte(`{"type":"video"}`)}
	deliveries <- amqp.Delivery{Acknowledger: ack, DeliveryTag: 5, Body: []byte(`not json`)}
	close(deliveries)

	w := NewWorker(&fakeConsumer{deliveries: deliveries}, dispatcher, zerolog.Nop())
	err := w.Start(context.Background(), OutboundQueue)

	assert.ErrorIs(t, err, ErrConsumerClosed)
	assert.Equal(t, []uint64{1, 2}, ack.acked)
	assert.Equal(t, []uint64{3, 4, 5}, ack.nacked)
	dispatcher.AssertExpectations(t)
}

func TestWorkerStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := NewWorker(&fakeConsumer{deliveries: make(chan amqp.Delivery)}, new(MockDispatcher), zerolog.Nop())

	assert.NoError(t, w.Start(ctx, OutboundQueue))
}

func TestWorkerConsumeError(t *testing.T) {
	w := NewWorker(&fakeConsumer{err: amqp.ErrClosed}, new(MockDispatcher), zerolog.Nop())

	assert.ErrorIs(t, w.Start(context.Background(), OutboundQueue), amqp.ErrClosed)
}

type recordingChannel struct {
	exchanges []string
	queues    map[string]amqp.Table
	bindings  []string
}

func (r *recordingChannel) ExchangeDeclare(name, _ string, _, _, _, _ bool, _ amqp.Table) error {
	r.exchanges = append(r.exchanges, name)
	return nil
}

func (r *recordingChannel) QueueDeclare(name string, _, _, _, _ bool, args amqp.Table) (amqp.Queue, error) {
	r.queues[name] = args
	return amqp.Queue{Name: name}, nil
}

func (r *recordingChannel) QueueBind(name, key, exchange string, _ bool, _ amqp.Table) error {
	r.bindings = append(r.bindings, exchange+"/"+key+"->"+name)
	return nil
}

func TestSetupTopology(t *testing.T) {
	ch := &recordingChannel{queues: map[string]amqp.Table{}}

	require.NoError(t, setupTopology(ch))

	assert.ElementsMatch(t, []string{DLXName, ExchangeName}, ch.exchanges)
	assert.Equal(t, DLXName, ch.queues[OutboundQueue]["x-dead-letter-exchange"])
	assert.Contains(t, ch.bindings, ExchangeName+"/"+OutboundRoutingKey+"->"+OutboundQueue)
	assert.Contains(t, ch.bindings, DLXName+"/"+OutboundRoutingKey+"->"+OutboundDLQ)
	assert.Contains(t, ch.bindings, ExchangeName+"/"+DeliveryRoutingKey+"->"+DeliveryQueue)
}

type stubMessenger struct{}

func (stubMessenger) SendMessage(context.Context, entity.Address, entity.Payload) error { return nil }

func (stubMessenger) MediaFromURL(context.Context, string) (*entity.Media, error) {
	return nil, errors.New("not used")
}

type countingRecorder struct {
	counts map[string]int
}

func (c *countingRecorder) RecordDelivery(operation, status string) {
	c.counts[operation+"/"+status]++
}

func TestWorkerDeliveriesAreRecorded(t *testing.T) {
	recorder := &countingRecorder{counts: map[string]int{}}
	uc := usecase.NewDispatchUseCase(stubMessenger{}, nil, recorder, zerolog.Nop())

	ack := &fakeAcknowledger{}
	deliveries := make(chan amqp.Delivery, 2)
	deliveries <- amqp.Delivery{Acknowledger: ack, DeliveryTag: 1, Body: []byte(`{"type":"text","number":"57300","message":"hi"}`)}
	deliveries <- amqp.Delivery{Acknowledger: ack, DeliveryTag: 2, Body: []byte(`{"type":"image","number":"57300","imageUrl":"https://x/a.png"}`)}
	close(deliveries)

	err := NewWorker(&fakeConsumer{deliveries: deliveries}, uc, zerolog.Nop()).Start(context.Background(), OutboundQueue)

	assert.ErrorIs(t, err, ErrConsumerClosed)
	assert.Equal(t, []uint64{1}, ack.acked)
	assert.Equal(t, []uint64{2}, ack.nacked)
	assert.Equal(t, map[string]int{"text/SENT": 1, "image/FAILED": 1}, recorder.counts)
}
