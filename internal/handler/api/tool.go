package api

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	reqdto "toolshed/internal/handler/dto/request"
	resdto "toolshed/internal/handler/dto/response"
	"toolshed/internal/handler/middleware"
	"toolshed/internal/pkg/config"
	"toolshed/internal/pkg/errs"
	"toolshed/internal/usecase/commands"
	"toolshed/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ToolHandler struct {
	commands  commands.ToolCommands
	queries   queries.ToolQueries
	uploadCfg config.UploadConfig
}

func NewToolHandler(cmds commands.ToolCommands, qs queries.ToolQueries, uploadCfg config.UploadConfig) *ToolHandler {
	return &ToolHandler{
		commands:  cmds,
		queries:   qs,
		uploadCfg: uploadCfg,
	}
}

// @Summary List tools
// @Description List the tool catalog with availability as of today
// @Tags tools
// @Produce json
// @Success 200 {array} resdto.ToolResponse
// @Router /tools [get]
func (h *ToolHandler) ListTools(c *gin.Context) {
	views, err := h.queries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromToolList(views))
}

// @Summary Tool availability
// @Description Report whether a tool is available on a given date (today by default)
// @Tags tools
// @Produce json
// @Param id path int true "Tool ID"
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Router /tools/{id}/availability [get]
func (h *ToolHandler) GetAvailability(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid tool ID format",
		})
		return
	}

	asOf := time.Now().UTC()
	if dateStr := c.Query("date"); dateStr != "" {
		asOf, err = time.Parse("2006-01-02", dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date format",
			})
			return
		}
	}

	status, err := h.queries.AvailabilityOf(c.Request.Context(), id, asOf)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.AvailabilityResponse{
		ToolID: id,
		Date:   asOf.Format("2006-01-02"),
		Status: status,
	})
}

// @Summary Create tool
// @Description Add a tool to the catalog, optionally with an image
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Tool name"
// @Param description formData string true "Description"
// @Param category formData string true "Category"
// @Param image formData file false "Tool image"
// @Success 201 {object} resdto.ToolResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/tools [post]
func (h *ToolHandler) CreateTool(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateToolRequest
	if bindErr := c.ShouldBind(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Name, description and category are required",
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

	view, err := h.commands.Create(c.Request.Context(), adminID, commands.CreateToolInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		ImageURL:    imageURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Name, description and category are required",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromToolView(view))
}

// @Summary Delete tool
// @Description Remove a tool from the catalog
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tool ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/tools/{id} [delete]
func (h *ToolHandler) DeleteTool(c *gin.Context) {
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
			"error": "Invalid tool ID format",
		})
		return
	}

	view, viewErr := h.queries.GetByID(c.Request.Context(), id)

	if err := h.commands.Delete(c.Request.Context(), id, adminID); err != nil {
		switch {
		case errors.Is(err, errs.ErrToolNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Tool not found",
			})
		case errors.Is(err, errs.ErrNotToolOwner):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "No permission to manage this tool",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	// Best effort: the row is already gone, a stale file is acceptable.
	if viewErr == nil && view.ImageURL != nil {
		if name, found := strings.CutPrefix(*view.ImageURL, "/uploads/"); found {
			_ = os.Remove(filepath.Join(h.uploadCfg.Dir, filepath.Base(name)))
		}
	}

	c.Status(http.StatusNoContent)
}
