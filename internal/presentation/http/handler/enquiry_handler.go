package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/motorline/dealerdesk-api/internal/application/service"
	"github.com/motorline/dealerdesk-api/internal/domain/enum"
	"github.com/motorline/dealerdesk-api/internal/presentation/http/dto/response"
)

// EnquiryHandler handles sales lead HTTP requests
type EnquiryHandler struct {
	enquiryService *service.EnquiryService
}

// NewEnquiryHandler creates a new enquiry handler
func NewEnquiryHandler(enquiryService *service.EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{enquiryService: enquiryService}
}

// Create handles POST /enquiries
func (h *EnquiryHandler) Create(c *gin.Context) {
	var req struct {
		Name           string  `json:"name" binding:"required"`
		Phone          string  `json:"phone" binding:"required"`
		VehicleModelID *uint   `json:"vehicle_model_id"`
		Remarks        *string `json:"remarks"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	enquiry, err := h.enquiryService.CreateEnquiry(c.Request.Context(), &service.CreateEnquiryInput{
		Name:           req.Name,
		Phone:          req.Phone,
		VehicleModelID: req.VehicleModelID,
		Remarks:        req.Remarks,
		EnteredByID:    GetUserID(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Enquiry created successfully", enquiry)
}

// Get handles GET /enquiries/:id
func (h *EnquiryHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid enquiry ID")
		return
	}

	enquiry, err := h.enquiryService.GetEnquiry(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Enquiry retrieved successfully", enquiry)
}

// List handles GET /enquiries
func (h *EnquiryHandler) List(c *gin.Context) {
	params := paginationParams(c)

	var status *enum.EnquiryStatus
	if v := c.Query("status"); v != "" {
		s := enum.EnquiryStatus(v)
		status = &s
	}

	result, err := h.enquiryService.ListEnquiries(c.Request.Context(), params, status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Enquiries retrieved successfully", result)
}

// UpdateStatus handles PATCH /enquiries/:id/status
func (h *EnquiryHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid enquiry ID")
		return
	}

	var req struct {
		Status enum.EnquiryStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	enquiry, err := h.enquiryService.UpdateEnquiryStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Enquiry updated successfully", enquiry)
}
