package api

import (
	"net/http"

	reqdto "movie-reservation/internal/handler/dto/request"
	resdto "movie-reservation/internal/handler/dto/response"
	"movie-reservation/internal/handler/httperr"
	"movie-reservation/internal/handler/middleware"
	"movie-reservation/internal/usecase/commands"
	"movie-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Reserve a screening
// @Description Reserve seats for the authenticated customer and return the priced reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Screening ID"
// @Param request body reqdto.ReserveRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/screenings/{id}/reservations [post]
func (h *ReservationHandler) Reserve(c *gin.Context) {
	customer, ok := middleware.GetCustomer(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, httperr.ErrUnauthorized, "Unauthorized", nil)
		return
	}
	screeningID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid screening id", nil)
		return
	}
	var req reqdto.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Reserve(c.Request.Context(), req.ToCommand(screeningID, customer.ID, customer.Name))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	res, err := resdto.FromReservationView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.Header("Location", "/api/reservations/"+view.ID.String())
	c.JSON(http.StatusCreated, res)
}

// @Summary Get reservation
// @Description Get one of the authenticated customer's reservations
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	customer, ok := middleware.GetCustomer(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, httperr.ErrUnauthorized, "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), customer.ID, id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	res, err := resdto.FromReservationView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List reservations
// @Description List the authenticated customer's reservations, newest first
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default from config, max 200)"
// @Param offset query int false "Items to skip"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/reservations [get]
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	customer, ok := middleware.GetCustomer(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, httperr.ErrUnauthorized, "Unauthorized", nil)
		return
	}
	var query reqdto.ListReservationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	views, err := h.q.ListByCustomer(c.Request.Context(), customer.ID, query.Limit, query.Offset)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	res, err := resdto.FromReservationViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
