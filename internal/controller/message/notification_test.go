package message

import (
	"context"
	"encoding/json"
	"testing"

	"paymee-bridge/internal/domain/payment"
	"paymee-bridge/internal/messaging"
	"paymee-bridge/internal/notifier"
	"paymee-bridge/internal/webhook"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// hostStub satisfies the host client without touching the network.
type hostStub struct {
	calls int
}

func (h *hostStub) SendPaymentUpdate(context.Context, notifier.PaymentUpdateRequest) error {
	h.calls++
	return nil
}

func (h *hostStub) Close() error { return nil }

func controllerFixture(t *testing.T) (*NotificationMessageController, *payment.MockRepo, *payment.MockTxRepo, *hostStub) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := payment.NewMockRepo(ctrl)
	mockTx := payment.NewMockTxRepo(ctrl)
	host := &hostStub{}
	processor := webhook.NewSyncProcessor(payment.NewService(mockRepo, "WC-"), host)

	return NewNotificationMessageController(processor), mockRepo, mockTx, host
}

func envelopeBytes(t *testing.T, n payment.Notification) []byte {
	t.Helper()

	env, err := messaging.NewEnvelope(n.ReferenceCode, webhook.NotificationMessageType, n)
	require.NoError(t, err)

	data, err := json.Marshal(env)
	require.NoError(t, err)
	return data
}

func TestNotificationMessageController_HandleMessage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	notification := payment.Notification{ReferenceCode: "WC-1542", Status: "paid"}

	t.Run("should apply notification from envelope", func(t *testing.T) {
		// given
		controller, mockRepo, mockTx, host := controllerFixture(t)

		mockRepo.EXPECT().
			InTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fn func(payment.TxRepo) error) error {
				return fn(mockTx)
			})
		mockTx.EXPECT().
			GetPayments(ctx, gomock.Any()).
			Return([]payment.Payment{{Reference: "WC-1542", OrderID: "1542", Status: payment.StatusPending}}, nil)
		mockTx.EXPECT().
			UpdateStatus(ctx, "WC-1542", payment.StatusPaid, gomock.Any(), gomock.Any()).
			Return(nil)
		mockRepo.EXPECT().
			GetPayments(ctx, gomock.Any()).
			Return([]payment.Payment{{Reference: "WC-1542", OrderID: "1542", Status: payment.StatusPaid}}, nil)

		// when
		err := controller.HandleMessage(ctx, []byte("WC-1542"), envelopeBytes(t, notification))

		// then
		assert.NoError(t, err)
		assert.Equal(t, 1, host.calls)
	})

	t.Run("should swallow duplicate redelivery", func(t *testing.T) {
		// given
		controller, mockRepo, mockTx, host := controllerFixture(t)

		mockRepo.EXPECT().
			InTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fn func(payment.TxRepo) error) error {
				return fn(mockTx)
			})
		mockTx.EXPECT().
			GetPayments(ctx, gomock.Any()).
			Return([]payment.Payment{{Reference: "WC-1542", Status: payment.StatusPaid}}, nil)

		// when
		err := controller.HandleMessage(ctx, []byte("WC-1542"), envelopeBytes(t, notification))

		// then
		assert.NoError(t, err)
		assert.Zero(t, host.calls)
	})

	t.Run("should swallow replay after final status", func(t *testing.T) {
		// given
		controller, mockRepo, mockTx, _ := controllerFixture(t)

		mockRepo.EXPECT().
			InTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fn func(payment.TxRepo) error) error {
				return fn(mockTx)
			})
		mockTx.EXPECT().
			GetPayments(ctx, gomock.Any()).
			Return([]payment.Payment{{Reference: "WC-1542", Status: payment.StatusCancelled}}, nil)

		// when
		err := controller.HandleMessage(ctx, []byte("WC-1542"), envelopeBytes(t, notification))

		// then
		assert.NoError(t, err)
	})

	t.Run("should fail on malformed envelope", func(t *testing.T) {
		// given
		controller, _, _, _ := controllerFixture(t)

		// when
		err := controller.HandleMessage(ctx, []byte("k"), []byte("not json"))

		// then
		assert.Error(t, err)
	})

	t.Run("should fail on malformed payload", func(t *testing.T) {
		// given
		controller, _, _, _ := controllerFixture(t)

		env := messaging.Envelope{EventID: "evt-1", Key: "k", Type: webhook.NotificationMessageType, Payload: []byte(`"nope"`)}
		data, err := json.Marshal(env)
		require.NoError(t, err)

		// when
		err = controller.HandleMessage(ctx, []byte("k"), data)

		// then
		assert.Error(t, err)
	})
}
