package api

import (
	"errors"
	"net/http"

	reqdto "toolshed/internal/handler/dto/request"
	resdto "toolshed/internal/handler/dto/response"
	"toolshed/internal/handler/middleware"
	"toolshed/internal/pkg/errs"
	"toolshed/internal/usecase/commands"
	"toolshed/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	commands commands.ReviewCommands
	queries  queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, qs queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{commands: cmds, queries: qs}
}

// @Summary List tool reviews
// @Description List reviews for a tool, newest first
// @Tags reviews
// @Produce json
// @Param id path int true "Tool ID"
// @Success 200 {array} resdto.ReviewResponse
// @Failure 400 {object} map[string]string
// @Router /tools/{id}/reviews [get]
func (h *ReviewHandler) ListToolReviews(c *gin.Context) {
	toolID, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid tool ID format",
		})
		return
	}

	views, err := h.queries.ListByTool(c.Request.Context(), toolID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReviewList(views))
}

// @Summary Review a tool
// @Description Leave a 1-5 star rating with an optional comment
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tool ID"
// @Param request body reqdto.CreateReviewRequest true "Review"
// @Success 201 {object} map[string]int64
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tools/{id}/reviews [post]
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	toolID, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid tool ID format",
		})
		return
	}

	var req reqdto.CreateReviewRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.commands.Create(c.Request.Context(), userID, commands.CreateReviewInput{
		ToolID:  toolID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidRating):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Rating must be between 1 and 5",
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
