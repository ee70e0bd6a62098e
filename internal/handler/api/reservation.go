package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "toolshed/internal/handler/dto/request"
	resdto "toolshed/internal/handler/dto/response"
	"toolshed/internal/handler/middleware"
	"toolshed/internal/pkg/errs"
	"toolshed/internal/usecase/commands"
	"toolshed/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	commands commands.ReservationCommands
	queries  queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, qs queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary Request a reservation
// @Description Submit a reservation request for a tool over a date range
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.commands.Submit(c.Request.Context(), userID, commands.SubmitReservationInput{
		ToolID:    req.ToolID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Tool, start date and end date are required",
			})
		case errors.Is(err, errs.ErrInvalidDates):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date range",
			})
		case errors.Is(err, errs.ErrToolNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Tool not found",
			})
		case errors.Is(err, errs.ErrOwnTool):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "You cannot reserve your own tool",
			})
		case errors.Is(err, errs.ErrDateConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Tool already reserved for the selected dates",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// @Summary Get my reservations
// @Description List the current user's reservations, newest start date first
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationListResponse
// @Failure 401 {object} map[string]string
// @Router /reservations [get]
func (h *ReservationHandler) GetUserReservations(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.queries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationList(items))
}

// @Summary Close a reservation
// @Description Return or cancel an approved or active reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id}/close [patch]
func (h *ReservationHandler) CloseReservation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	view, err := h.commands.Close(c.Request.Context(), id, userID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, errs.ErrNotCloseable):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Only approved or active reservations can be closed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Pending approval queue
// @Description List pending reservation requests for tools owned by the admin, oldest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PendingReservationResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/reservations/pending [get]
func (h *ReservationHandler) GetPendingReservations(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.queries.ListPendingForAdmin(c.Request.Context(), adminID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPendingReservationList(items))
}

// @Summary All reservations for owned tools
// @Description List every reservation on the admin's tools
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/reservations [get]
func (h *ReservationHandler) GetAdminReservations(c *gin.Context) {
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

	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary Decide a reservation
// @Description Approve or reject a pending request; approving rejects all overlapping pending requests atomically
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Param request body reqdto.DecideReservationRequest true "Decision"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/reservations/{id} [patch]
func (h *ReservationHandler) DecideReservation(c *gin.Context) {
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
			"error": "Invalid reservation ID format",
		})
		return
	}

	var req reqdto.DecideReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.commands.Decide(c.Request.Context(), id, adminID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidDecision):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid status",
			})
		case errors.Is(err, errs.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, errs.ErrNotToolOwner):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "No permission to manage reservations for this tool",
			})
		case errors.Is(err, errs.ErrNotPending):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Only pending reservations can be decided",
			})
		case errors.Is(err, errs.ErrInvalidTransition), errors.Is(err, errs.ErrNotCloseable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Invalid status transition",
			})
		case errors.Is(err, errs.ErrDateConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Tool already reserved for the selected dates",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

func parseID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
