package handler

import (
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
	"github.com/vijaya/autospares-api/pkg/storage"
)

// PartHandler handles part catalog HTTP requests
type PartHandler struct {
	partService *service.PartService
	store       *storage.Store
}

// NewPartHandler creates a new part handler
func NewPartHandler(partService *service.PartService, store *storage.Store) *PartHandler {
	return &PartHandler{partService: partService, store: store}
}

// List handles listing parts (supports both page-based and cursor-based pagination)
func (h *PartHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	search := c.Query("search")
	category := c.Query("category")
	lowStock := c.Query("low_stock") == "true"
	inStock := c.Query("in_stock") == "true"

	if cursor := c.Query("cursor"); cursor != "" || c.Query("limit") != "" {
		h.listWithCursor(c, *userID, search, category, lowStock, inStock)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	pageParams := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}
	pageParams.Validate()

	params := &domainRepo.PartFilterParams{
		Pagination: pageParams,
		Search:     search,
		Category:   category,
		LowStock:   lowStock,
		InStock:    inStock,
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
	}

	parts, total, err := h.partService.ListParts(c.Request.Context(), *userID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(parts, pagination.NewPagination(pageParams.Page, pageParams.PerPage, total))
	response.SuccessWithPagination(c, 200, "Parts retrieved successfully", result)
}

// listWithCursor handles listing parts with cursor-based pagination
func (h *PartHandler) listWithCursor(c *gin.Context, userID uuid.UUID, search, category string, lowStock, inStock bool) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "15"))

	cursorParams := &pagination.CursorParams{
		Cursor:    c.Query("cursor"),
		Direction: pagination.CursorDirection(c.DefaultQuery("direction", "next")),
		Limit:     limit,
	}
	cursorParams.Validate()

	params := &domainRepo.PartCursorFilterParams{
		Cursor:   cursorParams,
		Search:   search,
		Category: category,
		LowStock: lowStock,
		InStock:  inStock,
	}

	parts, err := h.partService.ListPartsWithCursor(c.Request.Context(), userID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	meta, items := pagination.NewCursorPagination(parts, cursorParams.Limit,
		func(p entity.Part) string { return p.ID.String() },
		func(p entity.Part) time.Time { return p.CreatedAt })
	response.Success(c, 200, "Parts retrieved successfully", pagination.NewCursorPaginatedResult(items, meta))
}

// Create handles creating a part
func (h *PartHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	part, err := h.partService.CreatePart(c.Request.Context(), &service.CreatePartInput{
		UserID:            *userID,
		HSNCode:           req.HSNCode,
		PartName:          req.PartName,
		Brand:             req.Brand,
		Category:          req.Category,
		BuyingPrice:       req.BuyingPrice,
		SellingPrice:      req.SellingPrice,
		SGSTPercentage:    req.SGSTPercentage,
		CGSTPercentage:    req.CGSTPercentage,
		Quantity:          req.Quantity,
		LowStockThreshold: req.LowStockThreshold,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Part created successfully", part)
}

// Get handles getting a single part
func (h *PartHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid part ID")
		return
	}

	part, err := h.partService.GetPart(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Part retrieved successfully", part)
}

// Update handles updating a part
func (h *PartHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid part ID")
		return
	}

	var req request.UpdatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	part, err := h.partService.UpdatePart(c.Request.Context(), &service.UpdatePartInput{
		UserID:            *userID,
		PartID:            id,
		PartName:          req.PartName,
		Brand:             req.Brand,
		Category:          req.Category,
		BuyingPrice:       req.BuyingPrice,
		SellingPrice:      req.SellingPrice,
		SGSTPercentage:    req.SGSTPercentage,
		CGSTPercentage:    req.CGSTPercentage,
		LowStockThreshold: req.LowStockThreshold,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Part updated successfully", part)
}

// SetStock handles restocking a part to an explicit quantity
func (h *PartHandler) SetStock(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid part ID")
		return
	}

	var req request.SetStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	part, err := h.partService.SetStock(c.Request.Context(), *userID, id, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock updated successfully", part)
}

// UploadImage handles attaching an image to a part
func (h *PartHandler) UploadImage(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid part ID")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "An image file is required")
		return
	}

	src, err := file.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer src.Close()

	url, err := h.store.Save("parts", file.Filename, file.Size, src)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	part, err := h.partService.SetImage(c.Request.Context(), *userID, id, url)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Image uploaded successfully", part)
}

// Delete handles deleting a part
func (h *PartHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid part ID")
		return
	}

	if err := h.partService.DeletePart(c.Request.Context(), *userID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// LowStock handles listing parts at or below their low-stock threshold
func (h *PartHandler) LowStock(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	parts, err := h.partService.GetLowStock(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Low stock parts retrieved successfully", parts)
}
