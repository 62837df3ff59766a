package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func checkoutService(t *testing.T) (*Service, *MockGateway, *MockRecorder) {
	t.Helper()

	ctrl := gomock.NewController(t)
	gateway := NewMockGateway(ctrl)
	recorder := NewMockRecorder(ctrl)
	service := NewService(gateway, recorder, BuilderConfig{
		InvoicePrefix: "WC-",
		CallbackURL:   "https://shop.example.com/ipn/paymee",
	})

	return service, gateway, recorder
}

func TestService_Checkout(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("should record pending payment on success", func(t *testing.T) {
		// given
		service, gateway, recorder := checkoutService(t)
		order := sampleOrder()

		gateway.EXPECT().
			CreateCheckout(ctx, gomock.Any()).
			Return(Success("https://www2.paymee.com.br/redir/tok-1", "tok-1"))
		recorder.EXPECT().
			RecordPending(ctx, "WC-1542", "1542", "tok-1", "https://www2.paymee.com.br/redir/tok-1").
			Return(nil)

		// when
		result, err := service.Checkout(ctx, order)

		// then
		assert.NoError(t, err)
		assert.Equal(t, KindSuccess, result.Kind)
		assert.Equal(t, "tok-1", result.Token)
	})

	t.Run("should return result even when recording fails", func(t *testing.T) {
		// given
		service, gateway, recorder := checkoutService(t)
		order := sampleOrder()

		gateway.EXPECT().
			CreateCheckout(ctx, gomock.Any()).
			Return(Success("https://www2.paymee.com.br/redir/tok-2", "tok-2"))
		recorder.EXPECT().
			RecordPending(ctx, "WC-1542", "1542", "tok-2", "https://www2.paymee.com.br/redir/tok-2").
			Return(errors.New("db down"))

		// when
		result, err := service.Checkout(ctx, order)

		// then
		assert.NoError(t, err)
		assert.True(t, result.OK())
	})

	t.Run("should not record anything on provider rejection", func(t *testing.T) {
		// given
		service, gateway, _ := checkoutService(t)
		order := sampleOrder()

		gateway.EXPECT().
			CreateCheckout(ctx, gomock.Any()).
			Return(APIFailure("PayMee: Os dados de acesso estão incorretos, tente novamente!"))

		// when
		result, err := service.Checkout(ctx, order)

		// then
		assert.NoError(t, err)
		assert.Equal(t, KindAPIError, result.Kind)
		assert.Len(t, result.Messages, 1)
	})

	t.Run("should reject invalid order before calling provider", func(t *testing.T) {
		// given
		service, _, _ := checkoutService(t)
		order := sampleOrder()
		order.ID = ""

		// when
		_, err := service.Checkout(ctx, order)

		// then
		assert.ErrorIs(t, err, errMissingOrderID)
	})

	t.Run("should pass built payload to the gateway", func(t *testing.T) {
		// given
		service, gateway, recorder := checkoutService(t)
		order := sampleOrder()

		var captured Payload
		gateway.EXPECT().
			CreateCheckout(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, p Payload) Result {
				captured = p
				return Success("https://www2.paymee.com.br/redir/tok-3", "tok-3")
			})
		recorder.EXPECT().
			RecordPending(ctx, "WC-1542", "1542", "tok-3", gomock.Any()).
			Return(nil)

		// when
		_, err := service.Checkout(ctx, order)

		// then
		assert.NoError(t, err)
		assert.Equal(t, "WC-1542", captured.ReferenceCode)
		assert.Equal(t, "BRL", captured.Currency)
		assert.Equal(t, "199.90", captured.Amount)
	})
}
