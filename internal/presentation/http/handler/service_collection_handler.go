package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/motorline/dealerdesk-api/internal/application/service"
	"github.com/motorline/dealerdesk-api/internal/domain/enum"
	"github.com/motorline/dealerdesk-api/internal/presentation/http/dto/response"
)

// ServiceCollectionHandler handles service ledger HTTP requests
type ServiceCollectionHandler struct {
	serviceCollectionService *service.ServiceCollectionService
}

// NewServiceCollectionHandler creates a new service ledger handler
func NewServiceCollectionHandler(s *service.ServiceCollectionService) *ServiceCollectionHandler {
	return &ServiceCollectionHandler{serviceCollectionService: s}
}

// Create handles POST /service-collections
func (h *ServiceCollectionHandler) Create(c *gin.Context) {
	var req struct {
		Date             *time.Time         `json:"date"`
		TotalAmount      *float64           `json:"total_amount"`
		ReceivedAmount   float64            `json:"received_amount" binding:"required"`
		PaymentType      string             `json:"payment_type"`
		PaymentStatus    enum.PaymentStatus `json:"payment_status"`
		VehicleNo        *string            `json:"vehicle_no"`
		JobCardNo        *string            `json:"job_card_no"`
		CustomerID       uint               `json:"customer_id" binding:"required"`
		PaymentModeID    uint               `json:"payment_mode_id" binding:"required"`
		TypeOfPaymentID  *uint              `json:"type_of_payment_id"`
		CollectionTypeID *uint              `json:"collection_type_id"`
		VehicleModelID   *uint              `json:"vehicle_model_id"`
		Remarks          *string            `json:"remarks"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreateServiceCollectionInput{
		TotalAmount:      req.TotalAmount,
		ReceivedAmount:   req.ReceivedAmount,
		PaymentType:      req.PaymentType,
		PaymentStatus:    req.PaymentStatus,
		VehicleNo:        req.VehicleNo,
		JobCardNo:        req.JobCardNo,
		CustomerID:       req.CustomerID,
		PaymentModeID:    req.PaymentModeID,
		TypeOfPaymentID:  req.TypeOfPaymentID,
		CollectionTypeID: req.CollectionTypeID,
		VehicleModelID:   req.VehicleModelID,
		EnteredByID:      GetUserID(c),
		Remarks:          req.Remarks,
	}
	if req.Date != nil {
		input.Date = *req.Date
	}

	collection, err := h.serviceCollectionService.CreateServiceCollection(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Service collection created successfully", collection)
}

// Get handles GET /service-collections/:id
func (h *ServiceCollectionHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid service collection ID")
		return
	}

	collection, err := h.serviceCollectionService.GetServiceCollection(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Service collection retrieved successfully", collection)
}

// List handles GET /service-collections
func (h *ServiceCollectionHandler) List(c *gin.Context) {
	params := paginationParams(c)
	search := c.Query("search")

	result, err := h.serviceCollectionService.ListServiceCollections(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Service collections retrieved successfully", result)
}

// ListPending handles GET /service-collections/pending/:customer_id
func (h *ServiceCollectionHandler) ListPending(c *gin.Context) {
	customerID, err := parseCustomerIDParam(c)
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	collections, svcErr := h.serviceCollectionService.ListPendingByCustomer(c.Request.Context(), customerID)
	if svcErr != nil {
		response.Error(c, svcErr)
		return
	}

	response.OK(c, "Pending collections retrieved successfully", collections)
}

// ListDeleted handles GET /service-collections/deleted
func (h *ServiceCollectionHandler) ListDeleted(c *gin.Context) {
	collections, err := h.serviceCollectionService.ListDeletedServiceCollections(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Deleted service collections retrieved successfully", collections)
}

// Update handles PUT /service-collections/:id
func (h *ServiceCollectionHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid service collection ID")
		return
	}

	var req struct {
		Date             *time.Time `json:"date"`
		TotalAmount      *float64   `json:"total_amount"`
		ReceivedAmount   *float64   `json:"received_amount"`
		PaymentType      *string    `json:"payment_type"`
		VehicleNo        *string    `json:"vehicle_no"`
		JobCardNo        *string    `json:"job_card_no"`
		PaymentModeID    *uint      `json:"payment_mode_id"`
		TypeOfPaymentID  *uint      `json:"type_of_payment_id"`
		CollectionTypeID *uint      `json:"collection_type_id"`
		VehicleModelID   *uint      `json:"vehicle_model_id"`
		Remarks          *string    `json:"remarks"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	collection, err := h.serviceCollectionService.UpdateServiceCollection(c.Request.Context(), &service.UpdateServiceCollectionInput{
		ID:               id,
		Date:             req.Date,
		TotalAmount:      req.TotalAmount,
		ReceivedAmount:   req.ReceivedAmount,
		PaymentType:      req.PaymentType,
		VehicleNo:        req.VehicleNo,
		JobCardNo:        req.JobCardNo,
		PaymentModeID:    req.PaymentModeID,
		TypeOfPaymentID:  req.TypeOfPaymentID,
		CollectionTypeID: req.CollectionTypeID,
		VehicleModelID:   req.VehicleModelID,
		Remarks:          req.Remarks,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Service collection updated successfully", collection)
}

// Delete handles DELETE /service-collections/:id (soft delete)
func (h *ServiceCollectionHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid service collection ID")
		return
	}

	if err := h.serviceCollectionService.DeleteServiceCollection(c.Request.Context(), id, GetUserID(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Service collection deleted successfully", nil)
}

// Restore handles POST /service-collections/:id/restore
func (h *ServiceCollectionHandler) Restore(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid service collection ID")
		return
	}

	collection, err := h.serviceCollectionService.RestoreServiceCollection(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Service collection restored successfully", collection)
}
