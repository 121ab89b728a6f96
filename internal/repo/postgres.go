package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sgurin/order-service/internal/entities"
	"github.com/sgurin/order-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"golang.org/x/sync/errgroup"
)

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// SaveOrder вставляет заголовок заказа. Повторный order_uid — это
// нарушение уникальности, оно классифицируется как ErrDuplicateKey.
func (r *postgresRepo) SaveOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(
			"order_uid", "track_number", "entry", "locale",
			"internal_signature", "customer_id", "delivery_service",
			"shardkey", "sm_id", "date_created", "oof_shard",
		).
		Values(
			o.OrderUID, o.TrackNumber, nullString(o.Entry), nullString(o.Locale),
			nullString(o.InternalSig), o.CustomerID, o.DeliveryService,
			nullString(o.ShardKey), o.SmID, o.DateCreated, nullString(o.OofShard),
		).
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save order: %w", classifyError(err))
	}
	return nil
}

// SaveDelivery вставляет строку доставки, читает назначенный хранилищем
// суррогатный id и связывает его с заказом через order_deliveries.
func (r *postgresRepo) SaveDelivery(ctx context.Context, orderUID string, d entities.Delivery) error {
	query, args := r.qb.Insert("deliveries").
		Columns("name", "phone", "zip", "address", "region", "email").
		Values(
			nullString(d.Name),
			nullString(d.Phone),
			nullString(d.ZIP),
			nullString(d.Address),
			nullString(d.Region),
			nullString(d.Email),
		).
		Suffix("RETURNING id").
		MustSql()

	var deliveryID int64
	if err := r.getContext(ctx, &deliveryID, query, args...); err != nil {
		return fmt.Errorf("failed to save delivery: %w", classifyError(err))
	}

	query, args = r.qb.Insert("order_deliveries").
		Columns("order_uid", "delivery_id").
		Values(orderUID, deliveryID).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to link delivery: %w", classifyError(err))
	}
	return nil
}

// SavePayment вставляет платёж и связь order_payments. Платежи не
// дедуплицируются: повторная transaction — ошибка уникальности.
func (r *postgresRepo) SavePayment(ctx context.Context, orderUID string, p entities.Payment) error {
	query, args := r.qb.Insert("payments").
		Columns("transaction", "request_id", "currency", "provider", "amount",
			"payment_dt", "bank", "delivery_cost", "goods_total", "custom_fee").
		Values(
			p.Transaction, nullString(p.RequestID), p.Currency, p.Provider, p.Amount,
			p.PaymentDT, nullString(p.Bank), p.DeliveryCost, p.GoodsTotal, nullInt32(p.CustomFee),
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save payment: %w", classifyError(err))
	}

	query, args = r.qb.Insert("order_payments").
		Columns("order_uid", "transaction").
		Values(orderUID, p.Transaction).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to link payment: %w", classifyError(err))
	}
	return nil
}

// SaveItems вставляет товары идемпотентно (ON CONFLICT DO NOTHING по chrt_id:
// товар может принадлежать многим заказам) и всегда создаёт связи order_items
// для текущего заказа.
func (r *postgresRepo) SaveItems(ctx context.Context, orderUID string, items []entities.Item) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("items").
		Columns("chrt_id", "track_number", "price", "rid", "name",
			"sale", "size", "total_price", "nm_id", "brand", "status").
		Suffix("ON CONFLICT (chrt_id) DO NOTHING")

	for _, it := range items {
		q = q.Values(
			it.ChrtID,
			it.TrackNumber,
			it.Price,
			it.RID,
			it.Name,
			nullInt32(it.Sale),
			nullString(it.Size),
			it.TotalPrice,
			it.NmID,
			nullString(it.Brand),
			it.Status,
		)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save items: %w", classifyError(err))
	}

	links := r.qb.Insert("order_items").Columns("order_uid", "chrt_id")
	for _, it := range items {
		links = links.Values(orderUID, it.ChrtID)
	}

	query, args = links.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to link items: %w", classifyError(err))
	}
	return nil
}

// DeleteOrder удаляет заголовок заказа и строки доставки, которыми заказ
// владеет единолично. Связи в order_* каскадируются по внешним ключам,
// сами payments и items остаются — они могут принадлежать другим заказам.
func (r *postgresRepo) DeleteOrder(ctx context.Context, orderUID string) error {
	query, args := r.qb.Delete("deliveries").
		Where("id IN (SELECT delivery_id FROM order_deliveries WHERE order_uid = ?)", orderUID).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete delivery: %w", classifyError(err))
	}

	query, args = r.qb.Delete("orders").
		Where(sq.Eq{"order_uid": orderUID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete order: %w", classifyError(err))
	}
	return nil
}

// GetOrderByID восстанавливает агрегат из четырёх таблиц. Подзапросы
// независимы и выполняются конкурентно: записи атомарны, поэтому
// согласованность по снимку здесь не нужна. Заголовок без связанных строк —
// признак повреждения данных, а не отсутствия заказа.
func (r *postgresRepo) GetOrderByID(ctx context.Context, orderUID string) (entities.Order, error) {
	query, args := r.qb.Select(
		"order_uid", "track_number", "entry", "locale",
		"internal_signature", "customer_id", "delivery_service",
		"shardkey", "sm_id", "date_created", "oof_shard").
		From("orders").
		Where(sq.Eq{"order_uid": orderUID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	var (
		delivery Delivery
		payment  Payment
		items    []Item
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		query, args := r.qb.Select("d.id", "d.name", "d.phone", "d.zip", "d.address", "d.region", "d.email").
			From("deliveries d").
			Join("order_deliveries od ON od.delivery_id = d.id").
			Where(sq.Eq{"od.order_uid": orderUID}).
			MustSql()

		err := r.getContext(gctx, &delivery, query, args...)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: delivery missing for %s", entities.ErrOrderCorrupted, orderUID)
		}
		if err != nil {
			return fmt.Errorf("failed to get delivery: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		query, args := r.qb.Select("p.transaction", "p.request_id", "p.currency", "p.provider", "p.amount",
			"p.payment_dt", "p.bank", "p.delivery_cost", "p.goods_total", "p.custom_fee").
			From("payments p").
			Join("order_payments op ON op.transaction = p.transaction").
			Where(sq.Eq{"op.order_uid": orderUID}).
			MustSql()

		err := r.getContext(gctx, &payment, query, args...)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: payment missing for %s", entities.ErrOrderCorrupted, orderUID)
		}
		if err != nil {
			return fmt.Errorf("failed to get payment: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		query, args := r.qb.Select("i.chrt_id", "i.track_number", "i.price", "i.rid", "i.name", "i.sale",
			"i.size", "i.total_price", "i.nm_id", "i.brand", "i.status").
			From("items i").
			Join("order_items oi ON oi.chrt_id = i.chrt_id").
			Where(sq.Eq{"oi.order_uid": orderUID}).
			MustSql()

		if err := r.selectContext(gctx, &items, query, args...); err != nil {
			return fmt.Errorf("failed to get items: %w", err)
		}
		if len(items) == 0 {
			return fmt.Errorf("%w: items missing for %s", entities.ErrOrderCorrupted, orderUID)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return entities.Order{}, err
	}

	return OrderToEntity(order, delivery, payment, items), nil
}

// LatestOrders возвращает count последних заказов, используется для
// прогрева кеша на старте.
func (r *postgresRepo) LatestOrders(ctx context.Context, count int) ([]entities.Order, error) {
	query, args := r.qb.Select(
		"order_uid", "track_number", "entry", "locale",
		"internal_signature", "customer_id", "delivery_service",
		"shardkey", "sm_id", "date_created", "oof_shard").
		From("orders").
		OrderBy("date_created DESC").
		Limit(uint64(count)).
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	uids := make([]string, len(orders))
	for i, order := range orders {
		uids[i] = order.OrderUID
	}

	query, args = r.qb.Select("od.order_uid", "d.id", "d.name", "d.phone", "d.zip",
		"d.address", "d.region", "d.email").
		From("deliveries d").
		Join("order_deliveries od ON od.delivery_id = d.id").
		Where(sq.Eq{"od.order_uid": uids}).
		MustSql()

	var deliveries []Delivery
	if err := r.selectContext(ctx, &deliveries, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select deliveries: %w", err)
	}
	deliveryMap := make(map[string]Delivery, len(deliveries))
	for _, delivery := range deliveries {
		deliveryMap[delivery.OrderUID] = delivery
	}

	query, args = r.qb.Select("op.order_uid", "p.transaction", "p.request_id", "p.currency",
		"p.provider", "p.amount", "p.payment_dt", "p.bank",
		"p.delivery_cost", "p.goods_total", "p.custom_fee").
		From("payments p").
		Join("order_payments op ON op.transaction = p.transaction").
		Where(sq.Eq{"op.order_uid": uids}).
		MustSql()

	var payments []Payment
	if err := r.selectContext(ctx, &payments, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select payments: %w", err)
	}
	paymentMap := make(map[string]Payment, len(payments))
	for _, payment := range payments {
		paymentMap[payment.OrderUID] = payment
	}

	query, args = r.qb.Select("oi.order_uid", "i.chrt_id", "i.track_number", "i.price", "i.rid",
		"i.name", "i.sale", "i.size", "i.total_price", "i.nm_id", "i.brand", "i.status").
		From("items i").
		Join("order_items oi ON oi.chrt_id = i.chrt_id").
		Where(sq.Eq{"oi.order_uid": uids}).
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}
	itemsMap := make(map[string][]Item, len(uids))
	for _, item := range items {
		itemsMap[item.OrderUID] = append(itemsMap[item.OrderUID], item)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, OrderToEntity(
			order,
			deliveryMap[order.OrderUID],
			paymentMap[order.OrderUID],
			itemsMap[order.OrderUID],
		))
	}

	return result, nil
}

// classifyError переводит коды Postgres в закрытый набор доменных ошибок,
// чтобы вызывающие матчили sentinel-ошибки, а не разбирали *pq.Error.
func classifyError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505":
			return fmt.Errorf("%w: %s", entities.ErrDuplicateKey, pqErr.Constraint)
		case "23503":
			return fmt.Errorf("%w: %s", entities.ErrForeignKeyViolation, pqErr.Constraint)
		}
	}
	return err
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
