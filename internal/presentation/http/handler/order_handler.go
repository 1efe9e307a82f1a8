package handler

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/vijaya/autospares-api/internal/application/service"
	"github.com/vijaya/autospares-api/internal/domain/entity"
	domainRepo "github.com/vijaya/autospares-api/internal/domain/repository"
	"github.com/vijaya/autospares-api/internal/presentation/http/dto/request"
	"github.com/vijaya/autospares-api/internal/presentation/http/dto/response"
	"github.com/vijaya/autospares-api/pkg/pagination"
)

// OrderHandler handles order and invoice HTTP requests
type OrderHandler struct {
	orderService    *service.OrderService
	invoiceService  *service.InvoiceService
	settingsService *service.SettingsService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(
	orderService *service.OrderService,
	invoiceService *service.InvoiceService,
	settingsService *service.SettingsService,
) *OrderHandler {
	return &OrderHandler{
		orderService:    orderService,
		invoiceService:  invoiceService,
		settingsService: settingsService,
	}
}

// Create handles committing a new order
func (h *OrderHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	items := make([]service.OrderLineInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = service.OrderLineInput{
			PartID:   item.PartID,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), &service.CreateOrderInput{
		UserID:     *userID,
		CustomerID: req.CustomerID,
		IncludeTax: req.IncludeTax,
		Items:      items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created successfully", order)
}

// Get handles getting a single order with its items
func (h *OrderHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// List handles listing orders (supports both page-based and cursor-based pagination)
func (h *OrderHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	search := c.Query("search")
	customerID := parseUUIDQuery(c, "customer_id")
	startDate := parseDateQuery(c, "start_date")
	endDate := parseDateQuery(c, "end_date")

	if cursor := c.Query("cursor"); cursor != "" || c.Query("limit") != "" {
		h.listWithCursor(c, *userID, search, customerID, startDate, endDate)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	pageParams := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}
	pageParams.Validate()

	params := &domainRepo.OrderFilterParams{
		Pagination: pageParams,
		Search:     search,
		CustomerID: customerID,
		StartDate:  startDate,
		EndDate:    endDate,
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
	}

	orders, total, err := h.orderService.ListOrders(c.Request.Context(), *userID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(orders, pagination.NewPagination(pageParams.Page, pageParams.PerPage, total))
	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// listWithCursor handles listing orders with cursor-based pagination
func (h *OrderHandler) listWithCursor(c *gin.Context, userID uuid.UUID, search string, customerID *uuid.UUID, startDate, endDate *time.Time) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "15"))

	cursorParams := &pagination.CursorParams{
		Cursor:    c.Query("cursor"),
		Direction: pagination.CursorDirection(c.DefaultQuery("direction", "next")),
		Limit:     limit,
	}
	cursorParams.Validate()

	params := &domainRepo.OrderCursorFilterParams{
		Cursor:     cursorParams,
		Search:     search,
		CustomerID: customerID,
		StartDate:  startDate,
		EndDate:    endDate,
	}

	orders, err := h.orderService.ListOrdersWithCursor(c.Request.Context(), userID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	meta, items := pagination.NewCursorPagination(orders, cursorParams.Limit,
		func(o entity.Order) string { return o.ID.String() },
		func(o entity.Order) time.Time { return o.CreatedAt })
	response.Success(c, 200, "Orders retrieved successfully", pagination.NewCursorPaginatedResult(items, meta))
}

// Invoice handles downloading the invoice PDF for an order
func (h *OrderHandler) Invoice(c *gin.Context) {
	order, customer, settings, ok := h.invoiceContext(c)
	if !ok {
		return
	}

	pdf, err := h.invoiceService.RenderInvoice(order, customer, settings)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="Invoice-%s.pdf"`, order.OrderNumber))
	c.Data(200, "application/pdf", pdf)
}

// WhatsAppShare returns a ready-to-send WhatsApp message and link
func (h *OrderHandler) WhatsAppShare(c *gin.Context) {
	order, customer, settings, ok := h.invoiceContext(c)
	if !ok {
		return
	}

	payload := h.invoiceService.WhatsAppShare(order, customer, settings)
	response.OK(c, "Share payload generated successfully", payload)
}

// EmailShare returns a composed invoice email and mailto link
func (h *OrderHandler) EmailShare(c *gin.Context) {
	order, customer, settings, ok := h.invoiceContext(c)
	if !ok {
		return
	}

	payload := h.invoiceService.EmailShare(order, customer, settings)
	response.OK(c, "Share payload generated successfully", payload)
}

// SendInvoiceEmail delivers the invoice summary to the customer over SMTP
func (h *OrderHandler) SendInvoiceEmail(c *gin.Context) {
	order, customer, settings, ok := h.invoiceContext(c)
	if !ok {
		return
	}

	if err := h.invoiceService.SendInvoiceEmail(order, customer, settings); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice email sent successfully", nil)
}

// invoiceContext loads the order, its customer and the business settings
// for invoice endpoints. It writes the error response itself on failure.
func (h *OrderHandler) invoiceContext(c *gin.Context) (*entity.Order, *entity.Customer, *entity.BusinessSettings, bool) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return nil, nil, nil, false
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return nil, nil, nil, false
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return nil, nil, nil, false
	}
	if order.Customer == nil {
		response.NotFound(c, "Customer not found")
		return nil, nil, nil, false
	}

	settings, err := h.settingsService.GetSettings(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return nil, nil, nil, false
	}

	return order, order.Customer, settings, true
}

func parseUUIDQuery(c *gin.Context, key string) *uuid.UUID {
	if value := c.Query(key); value != "" {
		if id, err := uuid.Parse(value); err == nil {
			return &id
		}
	}
	return nil
}

func parseDateQuery(c *gin.Context, key string) *time.Time {
	if value := c.Query(key); value != "" {
		if t, err := time.Parse("2006-01-02", value); err == nil {
			return &t
		}
	}
	return nil
}
