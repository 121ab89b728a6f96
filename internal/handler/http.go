package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/sgurin/order-service/internal/entities"
	"github.com/sgurin/order-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	GetAndCacheOrderByID(ctx context.Context, orderUID string) (entities.Order, error)
	SaveOrder(ctx context.Context, order entities.Order) error
	DeleteOrder(ctx context.Context, orderUID string) error
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
}

func NewHTTPHandler(logger *slog.Logger, svc OrderService) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Get("/order/{order_uid}", h.GetOrderByID)
	r.Post("/order", h.SaveOrder)
	r.Delete("/order/{order_uid}", h.DeleteOrder)
}

// GetOrderByID возвращает заказ по ID.
// @Summary      Получить заказ по UID
// @Description  Возвращает информацию о заказе по его уникальному идентификатору
// @Tags         orders
// @Param        order_uid   path      string  true  "Уникальный идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /order/{order_uid} [get]
func (h *HTTPHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderUID := chi.URLParam(r, "order_uid")

	orderRequestsInProgress.Inc()
	defer orderRequestsInProgress.Dec()
	start := time.Now()
	defer func() {
		orderRequestDuration.Observe(time.Since(start).Seconds())
	}()

	if err := h.validate.Var(orderUID, "required"); err != nil {
		orderRequestTotal.WithLabelValues("invalid").Inc()
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.GetAndCacheOrderByID(ctx, orderUID)

	if errors.Is(err, entities.ErrOrderNotFound) {
		orderRequestTotal.WithLabelValues("not_found").Inc()
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}

	if err != nil {
		orderRequestTotal.WithLabelValues("error").Inc()
		h.logger.ErrorContext(ctx, "failed to get order", slog.Any("error", err), slog.String("orderUID", orderUID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	orderRequestTotal.WithLabelValues("ok").Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// SaveOrder сохраняет новый заказ.
// @Summary      Создать заказ
// @Description  Сохраняет заказ со всеми вложенными сущностями в одной транзакции
// @Tags         orders
// @Accept       json
// @Param        order  body  Order  true  "Заказ"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      409  {object}  utils.ErrorResponse "Заказ уже существует"
// @Failure      422  {object}  utils.ErrorResponse "Нарушение ссылочной целостности"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /order [post]
func (h *HTTPHandler) SaveOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var order Order
	if err := utils.DecodeBody(r, &order); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(order); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	err := h.svc.SaveOrder(ctx, OrderJSONToEntity(order))

	switch {
	case errors.Is(err, entities.ErrDuplicateKey):
		utils.WriteError(w, "order already exists", http.StatusConflict)
	case errors.Is(err, entities.ErrForeignKeyViolation):
		utils.WriteError(w, "order references unknown entities", http.StatusUnprocessableEntity)
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to save order", slog.Any("error", err), slog.String("orderUID", order.OrderUID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	default:
		utils.WriteJSON(w, order, http.StatusCreated)
	}
}

// DeleteOrder удаляет заказ.
// @Summary      Удалить заказ
// @Description  Удаляет заказ из кеша и хранилища, вместе с доставкой и связями
// @Tags         orders
// @Param        order_uid   path      string  true  "Уникальный идентификатор заказа"
// @Success      204
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /order/{order_uid} [delete]
func (h *HTTPHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderUID := chi.URLParam(r, "order_uid")

	if err := h.validate.Var(orderUID, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	if err := h.svc.DeleteOrder(ctx, orderUID); err != nil {
		h.logger.ErrorContext(ctx, "failed to delete order", slog.Any("error", err), slog.String("orderUID", orderUID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
