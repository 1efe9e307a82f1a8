package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vijaya/autospares-api/internal/application/service"
	"github.com/vijaya/autospares-api/internal/presentation/http/dto/response"
	"github.com/vijaya/autospares-api/pkg/pagination"
)

// UdhaariHandler handles customer credit HTTP requests
type UdhaariHandler struct {
	udhaariService *service.UdhaariService
}

// NewUdhaariHandler creates a new udhaari handler
func NewUdhaariHandler(udhaariService *service.UdhaariService) *UdhaariHandler {
	return &UdhaariHandler{udhaariService: udhaariService}
}

// List handles listing udhaari entries
func (h *UdhaariHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}
	params.Validate()

	udhaaris, total, err := h.udhaariService.ListUdhaaris(c.Request.Context(), *userID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(udhaaris, pagination.NewPagination(params.Page, params.PerPage, total))
	response.SuccessWithPagination(c, 200, "Udhaaris retrieved successfully", result)
}

// Create handles recording new credit
func (h *UdhaariHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		CustomerID  uuid.UUID       `json:"customer_id" binding:"required"`
		Amount      decimal.Decimal `json:"amount" binding:"required"`
		Description *string         `json:"description"`
		DueDate     *time.Time      `json:"due_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	udhaari, err := h.udhaariService.CreateUdhaari(c.Request.Context(), &service.CreateUdhaariInput{
		UserID:      *userID,
		CustomerID:  req.CustomerID,
		Amount:      req.Amount,
		Description: req.Description,
		DueDate:     req.DueDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Udhaari recorded successfully", udhaari)
}

// Get handles getting a single udhaari entry
func (h *UdhaariHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid udhaari ID")
		return
	}

	udhaari, err := h.udhaariService.GetUdhaari(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Udhaari retrieved successfully", udhaari)
}

// RecordPayment handles applying a repayment to an udhaari entry
func (h *UdhaariHandler) RecordPayment(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid udhaari ID")
		return
	}

	var req struct {
		Amount decimal.Decimal `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	udhaari, err := h.udhaariService.RecordPayment(c.Request.Context(), *userID, id, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment recorded successfully", udhaari)
}

// Summary handles getting the aggregate credit position
func (h *UdhaariHandler) Summary(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	summary, err := h.udhaariService.GetSummary(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Udhaari summary retrieved successfully", summary)
}
