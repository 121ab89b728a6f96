package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/sgurin/order-service/internal/entities"
	"github.com/sgurin/order-service/internal/service"
	mocks "github.com/sgurin/order-service/internal/service/mocks"
	txMocks "github.com/sgurin/order-service/pkg/trm/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testDeps struct {
	orderRepo *mocks.MockOrderRepo
	cache     *mocks.MockCache
	tx        *txMocks.MockManager
}

func newDeps(t *testing.T) testDeps {
	t.Helper()
	return testDeps{
		orderRepo: mocks.NewMockOrderRepo(t),
		cache:     mocks.NewMockCache(t),
		tx:        txMocks.NewMockManager(t),
	}
}

func (d testDeps) service() *service.OrderService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.NewOrderService(logger, d.tx, d.orderRepo, d.cache)
}

func (d testDeps) passthroughTx() {
	d.tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		})
}

func TestOrderService_SaveOrder(t *testing.T) {
	type MockBehavior func(orderRepo *mocks.MockOrderRepo)

	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		order        entities.Order
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:  "OK",
			order: entities.Order{OrderUID: "123"},
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil)
				orderRepo.EXPECT().SaveDelivery(mock.Anything, mock.Anything, mock.Anything).Return(nil)
				orderRepo.EXPECT().SavePayment(mock.Anything, mock.Anything, mock.Anything).Return(nil)
				orderRepo.EXPECT().SaveItems(mock.Anything, mock.Anything, mock.Anything).Return(nil)
			},
			wantErr: nil,
		},
		{
			name:  "SaveDelivery fails",
			order: entities.Order{OrderUID: "123"},
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil)
				orderRepo.EXPECT().SaveDelivery(mock.Anything, mock.Anything, mock.Anything).
					Return(dbError)
			},
			wantErr: dbError,
		},
		{
			name:  "duplicate order_uid is not retried",
			order: entities.Order{OrderUID: "123"},
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				// ровно один вызов: детерминированный отказ повторять бессмысленно
				orderRepo.EXPECT().SaveOrder(mock.Anything, mock.Anything).
					Once().Return(entities.ErrDuplicateKey)
			},
			wantErr: entities.ErrDuplicateKey,
		},
		{
			name:  "retry works (first attempt fails, second succeeds)",
			order: entities.Order{OrderUID: "123"},
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().SaveOrder(mock.Anything, mock.Anything).
					Once().Return(errors.New("temporary error"))
				orderRepo.EXPECT().SaveOrder(mock.Anything, mock.Anything).
					Once().Return(nil)
				orderRepo.EXPECT().SaveDelivery(mock.Anything, mock.Anything, mock.Anything).Return(nil)
				orderRepo.EXPECT().SavePayment(mock.Anything, mock.Anything, mock.Anything).Return(nil)
				orderRepo.EXPECT().SaveItems(mock.Anything, mock.Anything, mock.Anything).Return(nil)
			},
			wantErr: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			deps := newDeps(t)
			deps.passthroughTx()
			tc.mockBehavior(deps.orderRepo)

			err := deps.service().SaveOrder(context.Background(), tc.order)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOrderService_GetOrderByID(t *testing.T) {
	validOrder := entities.Order{OrderUID: "123"}
	validData, err := validOrder.Marshal()
	require.NoError(t, err)

	t.Run("cache hit, store untouched", func(t *testing.T) {
		deps := newDeps(t)
		deps.cache.EXPECT().Get("123").Return(validData, true).Once()

		got, err := deps.service().GetOrderByID(context.Background(), "123")
		require.NoError(t, err)
		assert.Equal(t, validOrder, got)
	})

	t.Run("cache miss does not populate cache", func(t *testing.T) {
		deps := newDeps(t)
		deps.cache.EXPECT().Get("123").Return(nil, false).Once()
		deps.orderRepo.EXPECT().GetOrderByID(mock.Anything, "123").Return(validOrder, nil).Once()
		// никакого Set: обычный get без побочных эффектов

		got, err := deps.service().GetOrderByID(context.Background(), "123")
		require.NoError(t, err)
		assert.Equal(t, validOrder, got)
	})

	t.Run("corrupted cache entry falls through to store", func(t *testing.T) {
		deps := newDeps(t)
		deps.cache.EXPECT().Get("123").Return([]byte("broken"), true).Once()
		deps.cache.EXPECT().Remove("123").Return([]byte("broken"), true).Once()
		deps.orderRepo.EXPECT().GetOrderByID(mock.Anything, "123").Return(validOrder, nil).Once()

		got, err := deps.service().GetOrderByID(context.Background(), "123")
		require.NoError(t, err)
		assert.Equal(t, validOrder, got)
	})

	t.Run("unknown id returns not found", func(t *testing.T) {
		deps := newDeps(t)
		deps.cache.EXPECT().Get("does-not-exist").Return(nil, false).Once()
		deps.orderRepo.EXPECT().GetOrderByID(mock.Anything, "does-not-exist").
			Return(entities.Order{}, entities.ErrOrderNotFound).Once()

		_, err := deps.service().GetOrderByID(context.Background(), "does-not-exist")
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})
}

func TestOrderService_GetAndCacheOrderByID(t *testing.T) {
	validOrder := entities.Order{OrderUID: "123"}
	validData, err := validOrder.Marshal()
	require.NoError(t, err)

	t.Run("cache hit returned without touching cache or store", func(t *testing.T) {
		deps := newDeps(t)
		deps.cache.EXPECT().Get("123").Return(validData, true).Once()

		got, err := deps.service().GetAndCacheOrderByID(context.Background(), "123")
		require.NoError(t, err)
		assert.Equal(t, validOrder, got)
	})

	t.Run("store hit populates cache", func(t *testing.T) {
		deps := newDeps(t)
		deps.cache.EXPECT().Get("123").Return(nil, false).Once()
		deps.orderRepo.EXPECT().GetOrderByID(mock.Anything, "123").Return(validOrder, nil).Once()
		deps.cache.EXPECT().Set("123", validData).Return().Once()

		got, err := deps.service().GetAndCacheOrderByID(context.Background(), "123")
		require.NoError(t, err)
		assert.Equal(t, validOrder, got)
	})

	t.Run("second call is served from cache without store round trip", func(t *testing.T) {
		deps := newDeps(t)
		svc := deps.service()
		deps.cache.EXPECT().Get("123").Return(nil, false).Once()
		// хранилище опрашивается ровно один раз
		deps.orderRepo.EXPECT().GetOrderByID(mock.Anything, "123").Return(validOrder, nil).Once()
		deps.cache.EXPECT().Set("123", validData).Return().Once()
		deps.cache.EXPECT().Get("123").Return(validData, true).Once()

		_, err := svc.GetAndCacheOrderByID(context.Background(), "123")
		require.NoError(t, err)
		got, err := svc.GetAndCacheOrderByID(context.Background(), "123")
		require.NoError(t, err)
		assert.Equal(t, validOrder, got)
	})

	t.Run("store miss has no side effects", func(t *testing.T) {
		deps := newDeps(t)
		deps.cache.EXPECT().Get("missing").Return(nil, false).Once()
		deps.orderRepo.EXPECT().GetOrderByID(mock.Anything, "missing").
			Return(entities.Order{}, entities.ErrOrderNotFound).Once()

		_, err := deps.service().GetAndCacheOrderByID(context.Background(), "missing")
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})

	t.Run("corrupted order is surfaced, not cached", func(t *testing.T) {
		deps := newDeps(t)
		deps.cache.EXPECT().Get("123").Return(nil, false).Once()
		deps.orderRepo.EXPECT().GetOrderByID(mock.Anything, "123").
			Return(entities.Order{}, entities.ErrOrderCorrupted).Once()

		_, err := deps.service().GetAndCacheOrderByID(context.Background(), "123")
		assert.ErrorIs(t, err, entities.ErrOrderCorrupted)
	})

	t.Run("transient store error is retried", func(t *testing.T) {
		deps := newDeps(t)
		deps.cache.EXPECT().Get("123").Return(nil, false).Once()
		deps.orderRepo.EXPECT().GetOrderByID(mock.Anything, "123").
			Return(entities.Order{}, errors.New("some error")).Once()
		deps.orderRepo.EXPECT().GetOrderByID(mock.Anything, "123").
			Return(validOrder, nil).Once()
		deps.cache.EXPECT().Set("123", validData).Return().Once()

		got, err := deps.service().GetAndCacheOrderByID(context.Background(), "123")
		require.NoError(t, err)
		assert.Equal(t, validOrder, got)
	})
}

func TestOrderService_DeleteOrder(t *testing.T) {
	t.Run("removes from cache and store", func(t *testing.T) {
		deps := newDeps(t)
		deps.passthroughTx()
		deps.cache.EXPECT().Remove("order5").Return([]byte("data"), true).Once()
		deps.orderRepo.EXPECT().DeleteOrder(mock.Anything, "order5").Return(nil).Once()

		err := deps.service().DeleteOrder(context.Background(), "order5")
		assert.NoError(t, err)
	})

	t.Run("cache miss on removal is not an error", func(t *testing.T) {
		deps := newDeps(t)
		deps.passthroughTx()
		deps.cache.EXPECT().Remove("order5").Return(nil, false).Once()
		deps.orderRepo.EXPECT().DeleteOrder(mock.Anything, "order5").Return(nil).Once()

		err := deps.service().DeleteOrder(context.Background(), "order5")
		assert.NoError(t, err)
	})

	t.Run("store failure is surfaced", func(t *testing.T) {
		deps := newDeps(t)
		deps.passthroughTx()
		dbError := errors.New("db error")
		deps.cache.EXPECT().Remove("order5").Return(nil, false).Once()
		deps.orderRepo.EXPECT().DeleteOrder(mock.Anything, "order5").Return(dbError).Once()

		err := deps.service().DeleteOrder(context.Background(), "order5")
		assert.ErrorIs(t, err, dbError)
	})
}

func TestOrderService_WarmUpCache(t *testing.T) {
	orders := []entities.Order{{OrderUID: "1"}, {OrderUID: "2"}}

	deps := newDeps(t)
	deps.orderRepo.EXPECT().LatestOrders(mock.Anything, 2).Return(orders, nil).Once()
	deps.cache.EXPECT().Set("1", mock.Anything).Return().Once()
	deps.cache.EXPECT().Set("2", mock.Anything).Return().Once()

	err := deps.service().WarmUpCache(context.Background(), 2)
	assert.NoError(t, err)
}
