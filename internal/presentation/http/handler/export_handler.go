package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/motorline/dealerdesk-api/internal/application/service"
	"github.com/motorline/dealerdesk-api/internal/presentation/http/dto/response"
)

// ExportHandler handles ledger report downloads
type ExportHandler struct {
	exportService *service.ExportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// Sales handles GET /exports/collections?from&to&format=csv|xml|xlsx
func (h *ExportHandler) Sales(c *gin.Context) {
	from, to, ok := parseDateRange(c)
	if !ok {
		response.BadRequest(c, "from and to must be YYYY-MM-DD dates")
		return
	}

	ctx := c.Request.Context()
	switch c.DefaultQuery("format", "csv") {
	case "csv":
		data, err := h.exportService.ExportSalesCSV(ctx, from, to)
		if err != nil {
			response.Error(c, err)
			return
		}
		sendDownload(c, "text/csv", service.ExportFilename("collections", from, to, "csv"), data)
	case "xml":
		data, err := h.exportService.ExportSalesXML(ctx, from, to)
		if err != nil {
			response.Error(c, err)
			return
		}
		sendDownload(c, "application/xml", service.ExportFilename("collections", from, to, "xml"), data)
	case "xlsx":
		data, err := h.exportService.ExportSalesXLSX(ctx, from, to)
		if err != nil {
			response.Error(c, err)
			return
		}
		sendDownload(c, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			service.ExportFilename("collections", from, to, "xlsx"), data)
	default:
		response.BadRequest(c, "format must be csv, xml or xlsx")
	}
}

// Service handles GET /exports/service-collections?from&to&format=csv|xml|xlsx
func (h *ExportHandler) Service(c *gin.Context) {
	from, to, ok := parseDateRange(c)
	if !ok {
		response.BadRequest(c, "from and to must be YYYY-MM-DD dates")
		return
	}

	ctx := c.Request.Context()
	switch c.DefaultQuery("format", "csv") {
	case "csv":
		data, err := h.exportService.ExportServiceCSV(ctx, from, to)
		if err != nil {
			response.Error(c, err)
			return
		}
		sendDownload(c, "text/csv", service.ExportFilename("service_collections", from, to, "csv"), data)
	case "xml":
		data, err := h.exportService.ExportServiceXML(ctx, from, to)
		if err != nil {
			response.Error(c, err)
			return
		}
		sendDownload(c, "application/xml", service.ExportFilename("service_collections", from, to, "xml"), data)
	case "xlsx":
		data, err := h.exportService.ExportServiceXLSX(ctx, from, to)
		if err != nil {
			response.Error(c, err)
			return
		}
		sendDownload(c, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			service.ExportFilename("service_collections", from, to, "xlsx"), data)
	default:
		response.BadRequest(c, "format must be csv, xml or xlsx")
	}
}

func sendDownload(c *gin.Context, contentType, filename string, data []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, data)
}
