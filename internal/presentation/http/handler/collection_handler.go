package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/motorline/dealerdesk-api/internal/application/service"
	"github.com/motorline/dealerdesk-api/internal/presentation/http/dto/response"
)

// CollectionHandler handles sales ledger HTTP requests
type CollectionHandler struct {
	collectionService *service.CollectionService
}

// NewCollectionHandler creates a new sales ledger handler
func NewCollectionHandler(collectionService *service.CollectionService) *CollectionHandler {
	return &CollectionHandler{collectionService: collectionService}
}

// Create handles POST /collections
func (h *CollectionHandler) Create(c *gin.Context) {
	var req struct {
		Date             *time.Time `json:"date"`
		Amount           float64    `json:"amount" binding:"required"`
		CustomerID       uint       `json:"customer_id" binding:"required"`
		PaymentModeID    uint       `json:"payment_mode_id" binding:"required"`
		TypeOfPaymentID  *uint      `json:"type_of_payment_id"`
		CollectionTypeID *uint      `json:"collection_type_id"`
		VehicleModelID   *uint      `json:"vehicle_model_id"`
		Remarks          *string    `json:"remarks"`
		Reference        *string    `json:"reference"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreateCollectionInput{
		Amount:           req.Amount,
		CustomerID:       req.CustomerID,
		PaymentModeID:    req.PaymentModeID,
		TypeOfPaymentID:  req.TypeOfPaymentID,
		CollectionTypeID: req.CollectionTypeID,
		VehicleModelID:   req.VehicleModelID,
		EnteredByID:      GetUserID(c),
		Remarks:          req.Remarks,
		Reference:        req.Reference,
	}
	if req.Date != nil {
		input.Date = *req.Date
	}

	collection, err := h.collectionService.CreateCollection(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Collection created successfully", collection)
}

// Get handles GET /collections/:id
func (h *CollectionHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid collection ID")
		return
	}

	collection, err := h.collectionService.GetCollection(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Collection retrieved successfully", collection)
}

// List handles GET /collections
func (h *CollectionHandler) List(c *gin.Context) {
	params := paginationParams(c)
	search := c.Query("search")

	result, err := h.collectionService.ListCollections(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Collections retrieved successfully", result)
}

// ListDeleted handles GET /collections/deleted
func (h *CollectionHandler) ListDeleted(c *gin.Context) {
	collections, err := h.collectionService.ListDeletedCollections(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Deleted collections retrieved successfully", collections)
}

// Update handles PUT /collections/:id
func (h *CollectionHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid collection ID")
		return
	}

	var req struct {
		Date             *time.Time `json:"date"`
		Amount           *float64   `json:"amount"`
		PaymentModeID    *uint      `json:"payment_mode_id"`
		TypeOfPaymentID  *uint      `json:"type_of_payment_id"`
		CollectionTypeID *uint      `json:"collection_type_id"`
		VehicleModelID   *uint      `json:"vehicle_model_id"`
		Remarks          *string    `json:"remarks"`
		Reference        *string    `json:"reference"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	collection, err := h.collectionService.UpdateCollection(c.Request.Context(), &service.UpdateCollectionInput{
		ID:               id,
		Date:             req.Date,
		Amount:           req.Amount,
		PaymentModeID:    req.PaymentModeID,
		TypeOfPaymentID:  req.TypeOfPaymentID,
		CollectionTypeID: req.CollectionTypeID,
		VehicleModelID:   req.VehicleModelID,
		Remarks:          req.Remarks,
		Reference:        req.Reference,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Collection updated successfully", collection)
}

// Delete handles DELETE /collections/:id (soft delete)
func (h *CollectionHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid collection ID")
		return
	}

	if err := h.collectionService.DeleteCollection(c.Request.Context(), id, GetUserID(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Collection deleted successfully", nil)
}

// Restore handles POST /collections/:id/restore
func (h *CollectionHandler) Restore(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid collection ID")
		return
	}

	collection, err := h.collectionService.RestoreCollection(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Collection restored successfully", collection)
}
