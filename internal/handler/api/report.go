package api

import (
	"errors"
	"net/http"

	reqdto "toolshed/internal/handler/dto/request"
	resdto "toolshed/internal/handler/dto/response"
	"toolshed/internal/handler/middleware"
	"toolshed/internal/pkg/config"
	"toolshed/internal/pkg/errs"
	"toolshed/internal/usecase/commands"
	"toolshed/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	commands  commands.ReportCommands
	queries   queries.ReportQueries
	uploadCfg config.UploadConfig
}

func NewReportHandler(cmds commands.ReportCommands, qs queries.ReportQueries, uploadCfg config.UploadConfig) *ReportHandler {
	return &ReportHandler{
		commands:  cmds,
		queries:   qs,
		uploadCfg: uploadCfg,
	}
}

// @Summary Report damage
// @Description File a damage report for a tool, optionally with a photo
// @Tags reports
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param tool_id formData int true "Tool ID"
// @Param description formData string true "What happened"
// @Param image formData file false "Photo of the damage"
// @Success 201 {object} map[string]int64
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reports [post]
func (h *ReportHandler) CreateReport(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateReportRequest
	if bindErr := c.ShouldBind(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Tool and description are required",
		})
		return
	}

	var imageURL *string
	if file, fileErr := c.FormFile("image"); fileErr == nil {
		url, saveErr := saveUpload(c, file, h.uploadCfg.Dir)
		if saveErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to store image",
			})
			return
		}
		imageURL = &url
	}

	id, err := h.commands.Create(c.Request.Context(), userID, commands.CreateReportInput{
		ToolID:      req.ToolID,
		Description: req.Description,
		ImageURL:    imageURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Tool and description are required",
			})
		case errors.Is(err, errs.ErrToolNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Tool not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// @Summary List damage reports
// @Description List damage reports for the admin's tools
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReportResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/reports [get]
func (h *ReportHandler) ListAdminReports(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.queries.ListForAdmin(c.Request.Context(), adminID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReportList(views))
}

// @Summary List all damage reports
// @Description List every damage report across the catalog
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReportResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/reports/all [get]
func (h *ReportHandler) ListAllReports(c *gin.Context) {
	views, err := h.queries.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReportList(views))
}

// @Summary Resolve damage report
// @Description Mark a damage report as handled
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Report ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/reports/{id}/resolve [patch]
func (h *ReportHandler) ResolveReport(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid report ID format",
		})
		return
	}

	if err := h.commands.Resolve(c.Request.Context(), id, adminID); err != nil {
		switch {
		case errors.Is(err, errs.ErrReportNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Report not found",
			})
		case errors.Is(err, errs.ErrNotToolOwner):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "No permission to manage this report",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
