package api

import (
	"net/http"

	reqdto "movie-reservation/internal/handler/dto/request"
	resdto "movie-reservation/internal/handler/dto/response"
	"movie-reservation/internal/handler/httperr"
	"movie-reservation/internal/usecase/commands"
	"movie-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ScreeningHandler struct {
	cmds commands.ReservationCommands
	q    queries.ScreeningQueries
}

func NewScreeningHandler(cmds commands.ReservationCommands, q queries.ScreeningQueries) *ScreeningHandler {
	return &ScreeningHandler{cmds: cmds, q: q}
}

// @Summary Quote a fee
// @Description Price a screening for an audience without reserving it
// @Tags screenings
// @Produce json
// @Param id path string true "Screening ID"
// @Param audienceCount query int true "Number of people"
// @Success 200 {object} resdto.FeeQuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/screenings/{id}/fee [get]
func (h *ScreeningHandler) QuoteFee(c *gin.Context) {
	screeningID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid screening id", nil)
		return
	}
	var query reqdto.FeeQuoteQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	quote, err := h.cmds.QuoteFee(c.Request.Context(), screeningID, *query.AudienceCount)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	res, err := resdto.FromFeeQuote(quote)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List screenings
// @Description List the screenings of one calendar day with their per-person fee
// @Tags screenings
// @Produce json
// @Param date query string false "Day as YYYY-MM-DD, defaults to today"
// @Success 200 {array} resdto.ScreeningResponse
// @Failure 400 {object} httperr.Response
// @Router /api/screenings [get]
func (h *ScreeningHandler) ListScreenings(c *gin.Context) {
	var query reqdto.ListScreeningsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	date, err := query.ParseDate()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}

	views, err := h.q.ListByDate(c.Request.Context(), date)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	res, err := resdto.FromScreeningViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
