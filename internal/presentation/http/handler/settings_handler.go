package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/vijaya/autospares-api/internal/application/service"
	"github.com/vijaya/autospares-api/internal/presentation/http/dto/response"
	"github.com/vijaya/autospares-api/pkg/storage"
)

// SettingsHandler handles business settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
	store           *storage.Store
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService, store *storage.Store) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService, store: store}
}

// Get handles getting the business settings
func (h *SettingsHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	settings, err := h.settingsService.GetSettings(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved successfully", settings)
}

// Update handles updating the business settings
func (h *SettingsHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		BusinessName *string `json:"business_name"`
		Address      *string `json:"address"`
		GSTIN        *string `json:"gstin"`
		ContactPhone *string `json:"contact_phone"`
		ContactEmail *string `json:"contact_email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), &service.UpdateSettingsInput{
		UserID:       *userID,
		BusinessName: req.BusinessName,
		Address:      req.Address,
		GSTIN:        req.GSTIN,
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings updated successfully", settings)
}

// UploadLogo handles attaching a business logo
func (h *SettingsHandler) UploadLogo(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	file, err := c.FormFile("logo")
	if err != nil {
		response.BadRequest(c, "A logo file is required")
		return
	}

	src, err := file.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer src.Close()

	url, err := h.store.Save("logos", file.Filename, file.Size, src)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	settings, err := h.settingsService.UpdateLogo(c.Request.Context(), *userID, url)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Logo uploaded successfully", settings)
}
