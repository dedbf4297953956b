package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/quickserve/pos-api/internal/application/service"
	"github.com/quickserve/pos-api/internal/domain/enum"
	"github.com/quickserve/pos-api/internal/domain/repository"
	"github.com/quickserve/pos-api/internal/presentation/http/dto/request"
	"github.com/quickserve/pos-api/internal/presentation/http/dto/response"
	"github.com/quickserve/pos-api/pkg/pagination"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Create handles submitting an order
func (h *OrderHandler) Create(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.CreateOrderInput{
		StoreID:        req.StoreID,
		Items:          make([]service.OrderItemInput, len(req.Items)),
		Charges:        make([]service.AppliedChargeInput, len(req.AppliedCharges)),
		DiscountAmount: req.DiscountAmount,
		PaymentMethod:  req.PaymentMethod,
		AmountReceived: req.AmountReceived,
		CustomerName:   req.CustomerName,
		CustomerPhone:  req.CustomerPhone,
		AggregatorID:   req.AggregatorID,
		Notes:          req.Notes,
	}
	for i, item := range req.Items {
		input.Items[i] = service.OrderItemInput{
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}
	for i, ac := range req.AppliedCharges {
		input.Charges[i] = service.AppliedChargeInput{
			ChargeID:      ac.ChargeID,
			AmountCharged: ac.AmountCharged,
		}
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created successfully", order)
}

// Get handles retrieving a single order with its items and charges
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// List handles listing orders (supports both page-based and cursor-based pagination)
func (h *OrderHandler) List(c *gin.Context) {
	storeID, paymentStatus, startDate, endDate, ok := h.parseFilters(c)
	if !ok {
		return
	}

	// Check if cursor-based pagination is requested
	if cursor := c.Query("cursor"); cursor != "" || c.Query("limit") != "" {
		h.listWithCursor(c, storeID, paymentStatus, startDate, endDate)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.OrderFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		StoreID:       storeID,
		PaymentStatus: paymentStatus,
		StartDate:     startDate,
		EndDate:       endDate,
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// listWithCursor handles listing orders with cursor-based pagination
func (h *OrderHandler) listWithCursor(c *gin.Context, storeID *uuid.UUID, paymentStatus *enum.PaymentStatus, startDate, endDate *time.Time) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "15"))
	cursor := c.Query("cursor")
	direction := c.DefaultQuery("direction", "next")

	params := &repository.OrderCursorFilterParams{
		Cursor: &pagination.CursorParams{
			Cursor:    cursor,
			Direction: pagination.CursorDirection(direction),
			Limit:     limit,
		},
		StoreID:       storeID,
		PaymentStatus: paymentStatus,
		StartDate:     startDate,
		EndDate:       endDate,
	}

	result, err := h.orderService.ListOrdersWithCursor(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 200, "Orders retrieved successfully", result)
}

// parseFilters reads the shared filter query parameters. It writes the error
// response itself and returns ok=false on invalid input.
func (h *OrderHandler) parseFilters(c *gin.Context) (*uuid.UUID, *enum.PaymentStatus, *time.Time, *time.Time, bool) {
	var storeID *uuid.UUID
	if s := c.Query("store_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			response.BadRequest(c, "Invalid store_id")
			return nil, nil, nil, nil, false
		}
		storeID = &id
	}

	var paymentStatus *enum.PaymentStatus
	if s := c.Query("payment_status"); s != "" {
		status := enum.PaymentStatus(s)
		if !status.IsValid() {
			response.BadRequest(c, "Invalid payment_status")
			return nil, nil, nil, nil, false
		}
		paymentStatus = &status
	}

	var startDate, endDate *time.Time
	if s := c.Query("start_date"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			response.BadRequest(c, "Invalid start_date, expected RFC3339")
			return nil, nil, nil, nil, false
		}
		startDate = &t
	}
	if s := c.Query("end_date"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			response.BadRequest(c, "Invalid end_date, expected RFC3339")
			return nil, nil, nil, nil, false
		}
		endDate = &t
	}

	return storeID, paymentStatus, startDate, endDate, true
}
