package impl

import (
	"context"
	"sync/atomic"
	"testing"

	"pernoite/internal/domain/service"
	mockRepo "pernoite/internal/mocks/repository"
	mockSvc "pernoite/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type executorFixtures struct {
	executor  *deliveryExecutor
	tokenRepo *mockRepo.MockTokenRepository
	gateway   *mockSvc.MockPushGateway
}

func createTestDeliveryExecutor(t *testing.T, batchSize int) executorFixtures {
	tokenRepo := mockRepo.NewMockTokenRepository(t)
	gateway := mockSvc.NewMockPushGateway(t)

	return executorFixtures{
		executor:  newDeliveryExecutor(gateway, tokenRepo, newTestLogger(), batchSize),
		tokenRepo: tokenRepo,
		gateway:   gateway,
	}
}

func TestDeliveryExecutor_Deliver_EmptyTokenListIsNoop(t *testing.T) {
	fx := createTestDeliveryExecutor(t, 100)

	sent, failed, errMsg := fx.executor.deliver(context.Background(), nil, &pushContent{Title: "t"})
	assert.Equal(t, 0, sent)
	assert.Equal(t, 0, failed)
	assert.Empty(t, errMsg)
}

func TestDeliveryExecutor_Deliver_MalformedTokenFailsWithoutNetworkCall(t *testing.T) {
	fx := createTestDeliveryExecutor(t, 100)

	fx.gateway.EXPECT().IsValidToken("not-a-push-token").Return(false)
	fx.gateway.EXPECT().IsValidToken("ExponentPushToken[ok]").Return(true)
	fx.gateway.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("*service.PushMessage")).
		RunAndReturn(func(_ context.Context, msg *service.PushMessage) ([]service.PushOutcome, error) {
			assert.Equal(t, []string{"ExponentPushToken[ok]"}, msg.To)

			return okOutcomes(msg.To), nil
		})

	sent, failed, errMsg := fx.executor.deliver(
		context.Background(),
		[]string{"not-a-push-token", "ExponentPushToken[ok]"},
		&pushContent{Title: "t", Body: "b"},
	)
	assert.Equal(t, 1, sent)
	assert.Equal(t, 1, failed)
	assert.Empty(t, errMsg)
}

func TestDeliveryExecutor_Deliver_ChunksByBatchSize(t *testing.T) {
	fx := createTestDeliveryExecutor(t, 2)

	tokens := []string{
		"ExponentPushToken[1]",
		"ExponentPushToken[2]",
		"ExponentPushToken[3]",
		"ExponentPushToken[4]",
		"ExponentPushToken[5]",
	}

	var calls atomic.Int32
	fx.gateway.EXPECT().IsValidToken(mock.AnythingOfType("string")).Return(true)
	fx.gateway.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("*service.PushMessage")).
		RunAndReturn(func(_ context.Context, msg *service.PushMessage) ([]service.PushOutcome, error) {
			calls.Add(1)
			assert.LessOrEqual(t, len(msg.To), 2)

			return okOutcomes(msg.To), nil
		})

	sent, failed, errMsg := fx.executor.deliver(context.Background(), tokens, &pushContent{Title: "t"})
	assert.Equal(t, 5, sent)
	assert.Equal(t, 0, failed)
	assert.Empty(t, errMsg)
	assert.Equal(t, int32(3), calls.Load())
}

func TestDeliveryExecutor_Deliver_TransportErrorFailsChunkAndContinues(t *testing.T) {
	fx := createTestDeliveryExecutor(t, 2)

	tokens := []string{
		"ExponentPushToken[1]",
		"ExponentPushToken[2]",
		"ExponentPushToken[3]",
	}

	fx.gateway.EXPECT().IsValidToken(mock.AnythingOfType("string")).Return(true)
	fx.gateway.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("*service.PushMessage")).
		RunAndReturn(func(_ context.Context, msg *service.PushMessage) ([]service.PushOutcome, error) {
			if len(msg.To) == 2 {
				return nil, errors.New("gateway timeout")
			}

			return okOutcomes(msg.To), nil
		})

	sent, failed, errMsg := fx.executor.deliver(context.Background(), tokens, &pushContent{Title: "t"})
	assert.Equal(t, 1, sent)
	assert.Equal(t, 2, failed)
	assert.Equal(t, "gateway timeout", errMsg)
}

func TestDeliveryExecutor_Deliver_DeadTokenIsDeactivated(t *testing.T) {
	fx := createTestDeliveryExecutor(t, 100)

	fx.gateway.EXPECT().IsValidToken(mock.AnythingOfType("string")).Return(true)
	fx.gateway.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("*service.PushMessage")).
		Return([]service.PushOutcome{
			{Token: "ExponentPushToken[live]", OK: true},
			{Token: "ExponentPushToken[dead]", OK: false, ErrorCode: service.ErrorCodeDeviceNotRegistered},
			{Token: "ExponentPushToken[flaky]", OK: false, Message: "message rate exceeded"},
		}, nil)
	fx.tokenRepo.EXPECT().
		DeactivateToken(mock.Anything, "ExponentPushToken[dead]").
		Return(nil)

	sent, failed, errMsg := fx.executor.deliver(
		context.Background(),
		[]string{"ExponentPushToken[live]", "ExponentPushToken[dead]", "ExponentPushToken[flaky]"},
		&pushContent{Title: "t"},
	)
	assert.Equal(t, 1, sent)
	assert.Equal(t, 2, failed)
	assert.Empty(t, errMsg)
}

func TestDeliveryExecutor_Deliver_DeactivationFailureStillCountsFailed(t *testing.T) {
	fx := createTestDeliveryExecutor(t, 100)

	fx.gateway.EXPECT().IsValidToken(mock.AnythingOfType("string")).Return(true)
	fx.gateway.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("*service.PushMessage")).
		Return([]service.PushOutcome{
			{Token: "ExponentPushToken[dead]", OK: false, ErrorCode: service.ErrorCodeDeviceNotRegistered},
		}, nil)
	fx.tokenRepo.EXPECT().
		DeactivateToken(mock.Anything, "ExponentPushToken[dead]").
		Return(errors.New("connection refused"))

	sent, failed, _ := fx.executor.deliver(
		context.Background(),
		[]string{"ExponentPushToken[dead]"},
		&pushContent{Title: "t"},
	)
	assert.Equal(t, 0, sent)
	assert.Equal(t, 1, failed)
}

func TestDeliveryExecutor_BuildMessage_AppliesDefaults(t *testing.T) {
	fx := createTestDeliveryExecutor(t, 100)

	msg := fx.executor.buildMessage([]string{"ExponentPushToken[a]"}, &pushContent{
		Title: "Title",
		Body:  "Body",
	})
	assert.Equal(t, "default", msg.Sound)
	assert.Equal(t, "default", msg.ChannelID)
	assert.Equal(t, "high", msg.Priority)
	assert.NotNil(t, msg.Data)
	assert.Empty(t, msg.Data)
	assert.Nil(t, msg.Badge)
}

func TestDeliveryExecutor_BuildMessage_KeepsExplicitValues(t *testing.T) {
	fx := createTestDeliveryExecutor(t, 100)

	badge := 3
	msg := fx.executor.buildMessage([]string{"ExponentPushToken[a]"}, &pushContent{
		Title:     "Title",
		Body:      "Body",
		Data:      map[string]any{"screen": "promo"},
		Badge:     &badge,
		Sound:     "chime",
		ChannelID: "promos",
		Priority:  "normal",
	})
	assert.Equal(t, "chime", msg.Sound)
	assert.Equal(t, "promos", msg.ChannelID)
	assert.Equal(t, "normal", msg.Priority)
	assert.Equal(t, map[string]any{"screen": "promo"}, msg.Data)
	assert.Equal(t, 3, *msg.Badge)
}
