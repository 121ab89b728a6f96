package repo_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/sgurin/order-service/internal/entities"
	"github.com/sgurin/order-service/internal/repo"
	"github.com/sgurin/order-service/pkg/errs"
	"github.com/sgurin/order-service/pkg/trm"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func testOrder() entities.Order {
	return entities.Order{
		OrderUID:        "b563feb7b2b84b6test",
		TrackNumber:     "WBILMTESTTRACK",
		Entry:           "WBIL",
		Locale:          "en",
		CustomerID:      "test",
		DeliveryService: "meest",
		ShardKey:        "9",
		SmID:            99,
		DateCreated:     time.Date(2021, 11, 26, 6, 22, 19, 0, time.UTC),
		OofShard:        "1",
		Delivery: entities.Delivery{
			Name:    "Test Testov",
			Phone:   "+9720000000",
			ZIP:     "2639809",
			Address: "Ploshad Mira 15",
			Region:  "Kraiot",
			Email:   "test@gmail.com",
		},
		Payment: entities.Payment{
			Transaction:  "b563feb7b2b84b6test",
			Currency:     "USD",
			Provider:     "wbpay",
			Amount:       1817,
			PaymentDT:    time.Unix(1637907727, 0),
			Bank:         "alpha",
			DeliveryCost: 1500,
			GoodsTotal:   317,
		},
		Items: []entities.Item{
			{
				ChrtID:      9934930,
				TrackNumber: "WBILMTESTTRACK",
				Price:       453,
				RID:         "ab4219087a764ae0btest",
				Name:        "Mascaras",
				Sale:        30,
				Size:        "0",
				TotalPrice:  317,
				NmID:        2389212,
				Brand:       "Vivienne Sabo",
				Status:      202,
			},
		},
	}
}

func TestPostgresRepo_SaveOrder(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock := newRepo(t)
		r := repo.NewPostgresRepo(db)

		mock.ExpectExec("INSERT INTO orders").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := r.SaveOrder(context.Background(), testOrder())
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate order_uid", func(t *testing.T) {
		db, mock := newRepo(t)
		r := repo.NewPostgresRepo(db)

		mock.ExpectExec("INSERT INTO orders").
			WillReturnError(&pq.Error{Code: "23505", Constraint: "orders_pkey"})

		err := r.SaveOrder(context.Background(), testOrder())
		assert.ErrorIs(t, err, entities.ErrDuplicateKey)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("foreign key violation", func(t *testing.T) {
		db, mock := newRepo(t)
		r := repo.NewPostgresRepo(db)

		mock.ExpectExec("INSERT INTO orders").
			WillReturnError(&pq.Error{Code: "23503", Constraint: "orders_fk"})

		err := r.SaveOrder(context.Background(), testOrder())
		assert.ErrorIs(t, err, entities.ErrForeignKeyViolation)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresRepo_SaveDelivery(t *testing.T) {
	db, mock := newRepo(t)
	r := repo.NewPostgresRepo(db)
	order := testOrder()

	mock.ExpectQuery("INSERT INTO deliveries").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
	mock.ExpectExec("INSERT INTO order_deliveries").
		WithArgs(order.OrderUID, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := r.SaveDelivery(context.Background(), order.OrderUID, order.Delivery)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepo_SavePayment(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock := newRepo(t)
		r := repo.NewPostgresRepo(db)
		order := testOrder()

		mock.ExpectExec("INSERT INTO payments").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO order_payments").
			WithArgs(order.OrderUID, order.Payment.Transaction).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := r.SavePayment(context.Background(), order.OrderUID, order.Payment)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate transaction", func(t *testing.T) {
		db, mock := newRepo(t)
		r := repo.NewPostgresRepo(db)
		order := testOrder()

		mock.ExpectExec("INSERT INTO payments").
			WillReturnError(&pq.Error{Code: "23505", Constraint: "payments_pkey"})

		err := r.SavePayment(context.Background(), order.OrderUID, order.Payment)
		assert.ErrorIs(t, err, entities.ErrDuplicateKey)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresRepo_SaveItems(t *testing.T) {
	db, mock := newRepo(t)
	r := repo.NewPostgresRepo(db)
	order := testOrder()

	// товары вставляются идемпотентно, связи — всегда
	mock.ExpectExec(`INSERT INTO items .* ON CONFLICT \(chrt_id\) DO NOTHING`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(order.OrderUID, order.Items[0].ChrtID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := r.SaveItems(context.Background(), order.OrderUID, order.Items)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepo_DeleteOrder(t *testing.T) {
	db, mock := newRepo(t)
	r := repo.NewPostgresRepo(db)

	mock.ExpectExec("DELETE FROM deliveries").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM orders").
		WithArgs("b563feb7b2b84b6test").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := r.DeleteOrder(context.Background(), "b563feb7b2b84b6test")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepo_GetOrderByID(t *testing.T) {
	order := testOrder()

	orderRows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{
			"order_uid", "track_number", "entry", "locale", "internal_signature",
			"customer_id", "delivery_service", "shardkey", "sm_id", "date_created", "oof_shard",
		}).AddRow(
			order.OrderUID, order.TrackNumber, order.Entry, order.Locale, nil,
			order.CustomerID, order.DeliveryService, order.ShardKey, order.SmID,
			order.DateCreated, order.OofShard,
		)
	}
	deliveryRows := func() *sqlmock.Rows {
		d := order.Delivery
		return sqlmock.NewRows([]string{"id", "name", "phone", "zip", "address", "region", "email"}).
			AddRow(int64(7), d.Name, d.Phone, d.ZIP, d.Address, d.Region, d.Email)
	}
	paymentRows := func() *sqlmock.Rows {
		p := order.Payment
		return sqlmock.NewRows([]string{
			"transaction", "request_id", "currency", "provider", "amount",
			"payment_dt", "bank", "delivery_cost", "goods_total", "custom_fee",
		}).AddRow(p.Transaction, nil, p.Currency, p.Provider, p.Amount,
			p.PaymentDT, p.Bank, p.DeliveryCost, p.GoodsTotal, nil)
	}
	itemRows := func() *sqlmock.Rows {
		it := order.Items[0]
		return sqlmock.NewRows([]string{
			"chrt_id", "track_number", "price", "rid", "name", "sale",
			"size", "total_price", "nm_id", "brand", "status",
		}).AddRow(int64(it.ChrtID), it.TrackNumber, it.Price, it.RID, it.Name, it.Sale,
			it.Size, it.TotalPrice, it.NmID, it.Brand, it.Status)
	}

	t.Run("success", func(t *testing.T) {
		db, mock := newRepo(t)
		r := repo.NewPostgresRepo(db)

		// подзапросы к связанным таблицам выполняются конкурентно
		mock.MatchExpectationsInOrder(false)
		mock.ExpectQuery("SELECT .* FROM orders").WillReturnRows(orderRows())
		mock.ExpectQuery("SELECT .* FROM deliveries d JOIN order_deliveries").WillReturnRows(deliveryRows())
		mock.ExpectQuery("SELECT .* FROM payments p JOIN order_payments").WillReturnRows(paymentRows())
		mock.ExpectQuery("SELECT .* FROM items i JOIN order_items").WillReturnRows(itemRows())

		got, err := r.GetOrderByID(context.Background(), order.OrderUID)
		require.NoError(t, err)
		assert.Equal(t, order.OrderUID, got.OrderUID)
		assert.Equal(t, order.Delivery, got.Delivery)
		assert.Equal(t, order.Payment.Transaction, got.Payment.Transaction)
		require.Len(t, got.Items, 1)
		assert.Equal(t, order.Items[0].ChrtID, got.Items[0].ChrtID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newRepo(t)
		r := repo.NewPostgresRepo(db)

		mock.ExpectQuery("SELECT .* FROM orders").WillReturnError(sql.ErrNoRows)

		_, err := r.GetOrderByID(context.Background(), "does-not-exist")
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("header without delivery is corruption", func(t *testing.T) {
		db, mock := newRepo(t)
		r := repo.NewPostgresRepo(db)

		mock.MatchExpectationsInOrder(false)
		mock.ExpectQuery("SELECT .* FROM orders").WillReturnRows(orderRows())
		mock.ExpectQuery("SELECT .* FROM deliveries d JOIN order_deliveries").WillReturnError(sql.ErrNoRows)
		mock.ExpectQuery("SELECT .* FROM payments p JOIN order_payments").WillReturnRows(paymentRows())
		mock.ExpectQuery("SELECT .* FROM items i JOIN order_items").WillReturnRows(itemRows())

		_, err := r.GetOrderByID(context.Background(), order.OrderUID)
		assert.ErrorIs(t, err, entities.ErrOrderCorrupted)
	})
}

// Воспроизводит композицию записи целиком: четыре шага в одной транзакции,
// сбой на шаге товаров, откат тоже падает — наружу должны выйти обе причины.
func TestWriter_RollbackFailureAggregated(t *testing.T) {
	db, mock := newRepo(t)
	r := repo.NewPostgresRepo(db)
	manager := trm.NewManager(db)
	order := testOrder()

	itemsErr := errors.New("disk full")
	rollbackErr := errors.New("connection lost")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO deliveries").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectExec("INSERT INTO order_deliveries").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO payments").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO order_payments").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO items").WillReturnError(itemsErr)
	mock.ExpectRollback().WillReturnError(rollbackErr)

	err := manager.Do(context.Background(), func(ctx context.Context) error {
		if err := r.SaveOrder(ctx, order); err != nil {
			return err
		}
		if err := r.SaveDelivery(ctx, order.OrderUID, order.Delivery); err != nil {
			return err
		}
		if err := r.SavePayment(ctx, order.OrderUID, order.Payment); err != nil {
			return err
		}
		return r.SaveItems(ctx, order.OrderUID, order.Items)
	})

	var multi *errs.MultiError
	require.ErrorAs(t, err, &multi)
	assert.ErrorIs(t, err, itemsErr)
	assert.ErrorIs(t, err, rollbackErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}
