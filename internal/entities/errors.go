package entities

import "errors"

var (
	// ErrOrderNotFound — отсутствие заказа, это не сбой хранилища.
	ErrOrderNotFound = errors.New("order not found")

	// ErrOrderCorrupted возвращается, когда заголовок заказа найден,
	// а связанные строки (доставка, платёж, товары) отсутствуют.
	// При атомарной записи такое состояние недостижимо.
	ErrOrderCorrupted = errors.New("order data is incomplete")

	// ErrDuplicateKey — нарушение уникальности (order_uid или transaction).
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrForeignKeyViolation — ссылка на несуществующую строку.
	ErrForeignKeyViolation = errors.New("foreign key violation")

	ErrInvalidOrder = errors.New("invalid order data")
)
