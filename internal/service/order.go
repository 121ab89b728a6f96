package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sgurin/order-service/internal/entities"
	"github.com/sgurin/order-service/pkg/trm"
	"github.com/sgurin/order-service/pkg/utils"
)

type OrderRepo interface {
	GetOrderByID(ctx context.Context, orderUID string) (entities.Order, error)
	LatestOrders(ctx context.Context, count int) ([]entities.Order, error)

	// Четыре шага записи, порядок фиксирован зависимостями по внешним ключам.
	SaveOrder(ctx context.Context, o entities.Order) error
	SaveDelivery(ctx context.Context, orderUID string, d entities.Delivery) error
	SavePayment(ctx context.Context, orderUID string, p entities.Payment) error
	SaveItems(ctx context.Context, orderUID string, items []entities.Item) error

	DeleteOrder(ctx context.Context, orderUID string) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Remove(key string) ([]byte, bool)
}

type OrderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	cache     Cache
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo, cache Cache) *OrderService {
	return &OrderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		cache:     cache,
	}
}

var retryConfig = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  5,
	Multiplier:   2,
}

// SaveOrder пишет заказ только в хранилище: кеш при вставке не трогаем,
// свежий заказ не прогревается этим путём. Дубликаты отсекает ограничение
// уникальности в хранилище, детерминированные отказы не ретраятся.
func (s *OrderService) SaveOrder(ctx context.Context, order entities.Order) error {
	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			if err := s.repo.SaveOrder(ctx, order); err != nil {
				return fmt.Errorf("failed to save order: %w", err)
			}
			if err := s.repo.SaveDelivery(ctx, order.OrderUID, order.Delivery); err != nil {
				return fmt.Errorf("failed to save delivery: %w", err)
			}
			if err := s.repo.SavePayment(ctx, order.OrderUID, order.Payment); err != nil {
				return fmt.Errorf("failed to save payment: %w", err)
			}
			if err := s.repo.SaveItems(ctx, order.OrderUID, order.Items); err != nil {
				return fmt.Errorf("failed to save items: %w", err)
			}

			s.logger.Debug("order saved", "order_uid", order.OrderUID)
			return nil
		})
	}

	return utils.Retry(retryConfig, fn,
		entities.ErrDuplicateKey, entities.ErrForeignKeyViolation)
}

// GetOrderByID — чтение без побочных эффектов: сначала кеш, на промахе
// хранилище; кеш при этом не пополняется.
func (s *OrderService) GetOrderByID(ctx context.Context, orderUID string) (entities.Order, error) {
	if order, ok := s.fromCache(orderUID); ok {
		return order, nil
	}
	return s.fromStore(ctx, orderUID)
}

// GetAndCacheOrderByID — как GetOrderByID, но найденный в хранилище заказ
// кладётся в кеш перед возвратом. Два конкурентных промаха могут записать
// кеш дважды — оба кладут идентичное содержимое, побеждает последний.
func (s *OrderService) GetAndCacheOrderByID(ctx context.Context, orderUID string) (entities.Order, error) {
	if order, ok := s.fromCache(orderUID); ok {
		return order, nil
	}

	order, err := s.fromStore(ctx, orderUID)
	if err != nil {
		return entities.Order{}, err
	}

	s.toCache(order)
	return order, nil
}

// DeleteOrder убирает заказ из обоих слоёв. Промах кеша при удалении —
// не ошибка.
func (s *OrderService) DeleteOrder(ctx context.Context, orderUID string) error {
	s.cache.Remove(orderUID)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.repo.DeleteOrder(ctx, orderUID)
	})
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	s.logger.Debug("order removed", "order_uid", orderUID)
	return nil
}

// WarmUpCache прогревает кеш последними заказами на старте сервиса.
func (s *OrderService) WarmUpCache(ctx context.Context, count int) error {
	orders, err := s.repo.LatestOrders(ctx, count)
	if err != nil {
		return fmt.Errorf("failed to load latest orders: %w", err)
	}

	for _, order := range orders {
		s.toCache(order)
	}

	s.logger.Info("cache warmed up", slog.Int("orders", len(orders)))
	return nil
}

func (s *OrderService) fromCache(orderUID string) (entities.Order, bool) {
	data, ok := s.cache.Get(orderUID)
	if !ok {
		return entities.Order{}, false
	}

	var order entities.Order
	if err := order.Unmarshal(data); err != nil {
		// повреждённая запись бесполезна, выкидываем и идём в хранилище
		s.logger.Error("failed to unmarshal cached order",
			slog.String("order_uid", orderUID), slog.Any("error", err))
		s.cache.Remove(orderUID)
		return entities.Order{}, false
	}
	return order, true
}

func (s *OrderService) fromStore(ctx context.Context, orderUID string) (entities.Order, error) {
	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, orderUID)
		return err
	}

	err := utils.Retry(retryConfig, fn,
		entities.ErrOrderNotFound, entities.ErrOrderCorrupted)
	if err != nil {
		return entities.Order{}, err
	}
	return order, nil
}

func (s *OrderService) toCache(order entities.Order) {
	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order",
			slog.String("order_uid", order.OrderUID), slog.Any("error", err))
		return
	}
	s.cache.Set(order.OrderUID, data)
}
