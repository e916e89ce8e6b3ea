package api

import (
	"net/http"
	"strconv"

	resdto "internship-checkout/internal/handler/dto/response"
	"internship-checkout/internal/handler/httperr"
	"internship-checkout/internal/pkg/errs"
	"internship-checkout/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SupportHandler struct {
	q queries.CheckoutQueries
}

func NewSupportHandler(q queries.CheckoutQueries) *SupportHandler {
	return &SupportHandler{q: q}
}

// @Summary Verification failures
// @Description Attempts whose payment may have been captured but was never verified
// @Tags support
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum rows (default 100)"
// @Success 200 {array} resdto.AttemptResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} map[string]string
// @Router /support/verification-failures [get]
func (h *SupportHandler) VerificationFailures(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err == nil && n < 0 {
			err = errs.Newf("negative limit %d", n)
		}
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "limit must be a non-negative integer", nil)
			return
		}
		limit = n
	}

	views, err := h.q.VerificationFailures(c.Request.Context(), limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	res, err := resdto.FromAttemptViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
