package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/motorline/dealerdesk-api/internal/application/service"
	"github.com/motorline/dealerdesk-api/internal/domain/enum"
	"github.com/motorline/dealerdesk-api/internal/presentation/http/dto/response"
)

// ReferenceHandler handles the four reference registry HTTP surfaces
type ReferenceHandler struct {
	referenceService *service.ReferenceService
}

// NewReferenceHandler creates a new reference handler
func NewReferenceHandler(referenceService *service.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{referenceService: referenceService}
}

type registryCreateRequest struct {
	Name string `json:"name" binding:"required"`
}

type registryUpdateRequest struct {
	Name   *string            `json:"name"`
	Status *enum.RecordStatus `json:"status"`
}

func enabledOnly(c *gin.Context) bool {
	v, _ := strconv.ParseBool(c.DefaultQuery("enabled_only", "false"))
	return v
}

// --- Payment modes ---

// CreatePaymentMode handles POST /references/payment-modes
func (h *ReferenceHandler) CreatePaymentMode(c *gin.Context) {
	var req registryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	mode, err := h.referenceService.CreatePaymentMode(c.Request.Context(), req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Payment mode created successfully", mode)
}

// ListPaymentModes handles GET /references/payment-modes
func (h *ReferenceHandler) ListPaymentModes(c *gin.Context) {
	modes, err := h.referenceService.ListPaymentModes(c.Request.Context(), enabledOnly(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Payment modes retrieved successfully", modes)
}

// UpdatePaymentMode handles PUT /references/payment-modes/:id
func (h *ReferenceHandler) UpdatePaymentMode(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid payment mode ID")
		return
	}

	var req registryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	mode, err := h.referenceService.UpdatePaymentMode(c.Request.Context(), id, req.Name, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Payment mode updated successfully", mode)
}

// DeletePaymentMode handles DELETE /references/payment-modes/:id
func (h *ReferenceHandler) DeletePaymentMode(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid payment mode ID")
		return
	}

	if err := h.referenceService.DeletePaymentMode(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Payment mode deleted successfully", nil)
}

// --- Types of payment ---

// CreateTypeOfPayment handles POST /references/types-of-payment
func (h *ReferenceHandler) CreateTypeOfPayment(c *gin.Context) {
	var req struct {
		Name          string `json:"name" binding:"required"`
		PaymentModeID uint   `json:"payment_mode_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	t, err := h.referenceService.CreateTypeOfPayment(c.Request.Context(), req.Name, req.PaymentModeID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Type of payment created successfully", t)
}

// ListTypesOfPayment handles GET /references/types-of-payment
func (h *ReferenceHandler) ListTypesOfPayment(c *gin.Context) {
	var modeID *uint
	if v := c.Query("payment_mode_id"); v != "" {
		parsed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			response.BadRequest(c, "Invalid payment mode ID")
			return
		}
		id := uint(parsed)
		modeID = &id
	}

	types, err := h.referenceService.ListTypesOfPayment(c.Request.Context(), modeID, enabledOnly(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Types of payment retrieved successfully", types)
}

// UpdateTypeOfPayment handles PUT /references/types-of-payment/:id
func (h *ReferenceHandler) UpdateTypeOfPayment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid type of payment ID")
		return
	}

	var req registryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	t, err := h.referenceService.UpdateTypeOfPayment(c.Request.Context(), id, req.Name, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Type of payment updated successfully", t)
}

// DeleteTypeOfPayment handles DELETE /references/types-of-payment/:id
func (h *ReferenceHandler) DeleteTypeOfPayment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid type of payment ID")
		return
	}

	if err := h.referenceService.DeleteTypeOfPayment(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Type of payment deleted successfully", nil)
}

// --- Collection types ---

// CreateCollectionType handles POST /references/collection-types
func (h *ReferenceHandler) CreateCollectionType(c *gin.Context) {
	var req registryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	t, err := h.referenceService.CreateCollectionType(c.Request.Context(), req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Collection type created successfully", t)
}

// ListCollectionTypes handles GET /references/collection-types
func (h *ReferenceHandler) ListCollectionTypes(c *gin.Context) {
	types, err := h.referenceService.ListCollectionTypes(c.Request.Context(), enabledOnly(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Collection types retrieved successfully", types)
}

// UpdateCollectionType handles PUT /references/collection-types/:id
func (h *ReferenceHandler) UpdateCollectionType(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid collection type ID")
		return
	}

	var req registryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	t, err := h.referenceService.UpdateCollectionType(c.Request.Context(), id, req.Name, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Collection type updated successfully", t)
}

// DeleteCollectionType handles DELETE /references/collection-types/:id
func (h *ReferenceHandler) DeleteCollectionType(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid collection type ID")
		return
	}

	if err := h.referenceService.DeleteCollectionType(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Collection type deleted successfully", nil)
}

// --- Vehicle models ---

// CreateVehicleModel handles POST /references/vehicle-models
func (h *ReferenceHandler) CreateVehicleModel(c *gin.Context) {
	var req registryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	m, err := h.referenceService.CreateVehicleModel(c.Request.Context(), req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Vehicle model created successfully", m)
}

// ListVehicleModels handles GET /references/vehicle-models
func (h *ReferenceHandler) ListVehicleModels(c *gin.Context) {
	models, err := h.referenceService.ListVehicleModels(c.Request.Context(), enabledOnly(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Vehicle models retrieved successfully", models)
}

// UpdateVehicleModel handles PUT /references/vehicle-models/:id
func (h *ReferenceHandler) UpdateVehicleModel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid vehicle model ID")
		return
	}

	var req registryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	m, err := h.referenceService.UpdateVehicleModel(c.Request.Context(), id, req.Name, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Vehicle model updated successfully", m)
}

// DeleteVehicleModel handles DELETE /references/vehicle-models/:id
func (h *ReferenceHandler) DeleteVehicleModel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid vehicle model ID")
		return
	}

	if err := h.referenceService.DeleteVehicleModel(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Vehicle model deleted successfully", nil)
}
