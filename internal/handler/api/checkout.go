package api

import (
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"internship-checkout/internal/domain/internship"
	"internship-checkout/internal/domain/payment"
	"internship-checkout/internal/domain/session"
	reqdto "internship-checkout/internal/handler/dto/request"
	resdto "internship-checkout/internal/handler/dto/response"
	"internship-checkout/internal/handler/httperr"
	"internship-checkout/internal/handler/middleware"
	"internship-checkout/internal/infra"
	"internship-checkout/internal/pkg/errs"
	"internship-checkout/internal/usecase/commands"
	"internship-checkout/internal/usecase/queries"
	"internship-checkout/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

const maxUploadBytes = 10 << 20

type CheckoutHandler struct {
	cmds   commands.CheckoutCommands
	q      queries.CheckoutQueries
	widget shared.CheckoutWidget
}

func NewCheckoutHandler(cmds commands.CheckoutCommands, q queries.CheckoutQueries, widget shared.CheckoutWidget) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds, q: q, widget: widget}
}

// @Summary Checkout configuration
// @Description Script URL and public key for the payment widget
// @Tags checkout
// @Produce json
// @Success 200 {object} resdto.CheckoutConfigResponse
// @Router /checkout/config [get]
func (h *CheckoutHandler) Config(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.CheckoutConfigResponse{
		ScriptURL: h.widget.ScriptURL(),
		KeyID:     h.widget.KeyID(),
	})
}

// @Summary Apply coupon
// @Description Check a coupon code against an internship fee
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param variant path string true "standard or ap_exclusive"
// @Param request body reqdto.ApplyCouponRequest true "Coupon"
// @Success 200 {object} resdto.CouponQuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]string
// @Failure 422 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /checkout/{variant}/coupons/apply [post]
func (h *CheckoutHandler) ApplyCoupon(c *gin.Context) {
	sess, variant, ok := requestScope(c)
	if !ok {
		return
	}
	var req reqdto.ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	quote, err := h.cmds.ApplyCoupon(c.Request.Context(), sess, variant, req.InternshipID, req.Code)
	if err != nil {
		abortWithCheckoutError(c, err)
		return
	}
	res, err := resdto.FromCouponQuote(quote)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Submit application
// @Description Submit an application; paid internships return the checkout widget options
// @Tags checkout
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param variant path string true "standard or ap_exclusive"
// @Param internshipId formData string true "Internship ID"
// @Param name formData string true "Applicant name"
// @Param email formData string true "Applicant email"
// @Param phone formData string true "Applicant phone"
// @Param resume formData file true "Resume"
// @Param coverLetter formData file false "Cover letter"
// @Param couponCode formData string false "Coupon code"
// @Success 201 {object} resdto.SubmitApplicationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]string
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /checkout/{variant}/applications [post]
func (h *CheckoutHandler) SubmitApplication(c *gin.Context) {
	sess, variant, ok := requestScope(c)
	if !ok {
		return
	}
	var form reqdto.SubmitApplicationForm
	if err := c.ShouldBind(&form); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	resume, err := readFormFile(c, "resume")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid resume upload", nil)
		return
	}
	if resume == nil {
		httperr.AbortWithError(c, http.StatusBadRequest, commands.ErrResumeRequired, "Please upload your resume", nil)
		return
	}
	coverLetter, err := readFormFile(c, "coverLetter")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cover letter upload", nil)
		return
	}

	result, err := h.cmds.SubmitApplication(c.Request.Context(), sess, variant, commands.SubmitApplicationInput{
		InternshipID:    strings.TrimSpace(form.InternshipID),
		Applicant:       form.Applicant(),
		PortfolioLink:   form.PortfolioLink,
		Resume:          resume,
		CoverLetter:     coverLetter,
		CoverLetterText: form.CoverLetterText,
		CouponCode:      form.CouponCode,
	})
	if err != nil {
		abortWithCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSubmitResult(result))
}

// @Summary Get application
// @Description Current checkout state of the caller's application
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Param variant path string true "standard or ap_exclusive"
// @Param internshipId path string true "Internship ID"
// @Success 200 {object} resdto.AttemptResponse
// @Failure 404 {object} httperr.Response
// @Router /checkout/{variant}/applications/{internshipId} [get]
func (h *CheckoutHandler) GetApplication(c *gin.Context) {
	sess, variant, ok := requestScope(c)
	if !ok {
		return
	}
	view, err := h.q.Attempt(c.Request.Context(), sess, variant, c.Param("internshipId"))
	if err != nil {
		abortWithCheckoutError(c, err)
		return
	}
	res, err := resdto.FromAttemptView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Resume checkout
// @Description Reopen the payment widget for a pending or failed payment
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param variant path string true "standard or ap_exclusive"
// @Param internshipId path string true "Internship ID"
// @Param request body reqdto.ResumeCheckoutRequest false "Prefill"
// @Success 200 {object} resdto.CheckoutSessionResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /checkout/{variant}/applications/{internshipId}/resume [post]
func (h *CheckoutHandler) ResumeCheckout(c *gin.Context) {
	sess, variant, ok := requestScope(c)
	if !ok {
		return
	}
	var req reqdto.ResumeCheckoutRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
	}
	checkout, err := h.cmds.ResumeCheckout(c.Request.Context(), sess, variant, c.Param("internshipId"), req.Prefill())
	if err != nil {
		abortWithCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckoutSession(checkout))
}

// @Summary Report payment outcome
// @Description Forward the checkout widget's success, failure or dismissal
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param variant path string true "standard or ap_exclusive"
// @Param internshipId path string true "Internship ID"
// @Param request body reqdto.PaymentOutcomeRequest true "Widget outcome"
// @Success 200 {object} resdto.PaymentResultResponse
// @Failure 400 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /checkout/{variant}/applications/{internshipId}/payment [post]
func (h *CheckoutHandler) CompletePayment(c *gin.Context) {
	sess, variant, ok := requestScope(c)
	if !ok {
		return
	}
	var req reqdto.PaymentOutcomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	outcome, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Incomplete payment details", nil)
		return
	}
	result, err := h.cmds.CompletePayment(c.Request.Context(), sess, variant, c.Param("internshipId"), outcome)
	if err != nil {
		abortWithCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentResult(result))
}

// @Summary Dashboard
// @Description Applications, enrollments and local checkout attempts
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Param variant path string true "standard or ap_exclusive"
// @Success 200 {object} resdto.DashboardResponse
// @Router /checkout/{variant}/dashboard [get]
func (h *CheckoutHandler) Dashboard(c *gin.Context) {
	sess, variant, ok := requestScope(c)
	if !ok {
		return
	}
	view, err := h.q.Dashboard(c.Request.Context(), sess, variant)
	if err != nil {
		abortWithCheckoutError(c, err)
		return
	}
	res, err := resdto.FromDashboardView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Refresh dashboard
// @Description Re-read applications and enrollments from the marketplace
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Param variant path string true "standard or ap_exclusive"
// @Success 200 {object} resdto.DashboardResponse
// @Failure 503 {object} httperr.Response
// @Router /checkout/{variant}/dashboard/refresh [post]
func (h *CheckoutHandler) RefreshDashboard(c *gin.Context) {
	sess, variant, ok := requestScope(c)
	if !ok {
		return
	}
	snap, err := h.q.Refresh(c.Request.Context(), sess, variant)
	if err != nil {
		abortWithCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSnapshot(snap))
}

func requestScope(c *gin.Context) (session.Session, internship.Variant, bool) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthenticated, "Unauthorized", nil)
		return session.Session{}, "", false
	}
	variant, err := internship.NewVariant(c.Param("variant"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown internship variant", nil)
		return session.Session{}, "", false
	}
	return sess, variant, true
}

// readFormFile returns nil when the part is absent or empty.
func readFormFile(c *gin.Context, field string) (*shared.FilePart, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errs.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	if fh.Size == 0 {
		return nil, nil
	}
	if fh.Size > maxUploadBytes {
		return nil, errs.WithUserMessage(errs.Newf("%s exceeds %d bytes", field, maxUploadBytes), "Files must be 10MB or smaller")
	}
	content, err := readAll(fh)
	if err != nil {
		return nil, err
	}
	return &shared.FilePart{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Content:     content,
	}, nil
}

func readAll(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
}

// abortWithCheckoutError maps use case errors to statuses. Order matters:
// a verification failure also carries the marketplace rejection.
func abortWithCheckoutError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrResumeRequired):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Please upload your resume", nil)
	case errs.Is(err, commands.ErrInvalidApplicant):
		httperr.AbortWithError(c, http.StatusBadRequest, err, errs.UserMessage(err, "Invalid applicant details"), nil)
	case errs.Is(err, commands.ErrInvalidCouponCode):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid coupon code", nil)
	case errs.Is(err, payment.ErrInvalidOutcome):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid payment outcome", nil)
	case errs.Is(err, internship.ErrInvalidVariant):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown internship variant", nil)

	case errs.Is(err, commands.ErrPaymentVerificationFailed):
		httperr.AbortWithError(c, http.StatusBadGateway, err, errs.UserMessage(err, "Payment could not be verified. Please contact support."), nil)

	case errs.Is(err, errs.ErrUnauthenticated):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Your session has expired. Please sign in again.", nil)

	case errs.Is(err, commands.ErrAttemptNotFound), errs.Is(err, queries.ErrAttemptNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "No application found for this internship", nil)

	case errs.Is(err, commands.ErrAlreadyEnrolled):
		httperr.AbortWithError(c, http.StatusConflict, err, "You are already enrolled in this internship", nil)
	case errs.Is(err, commands.ErrSubmissionInProgress):
		httperr.AbortWithError(c, http.StatusConflict, err, "Your application is already being submitted", nil)
	case errs.Is(err, commands.ErrPaymentPending):
		httperr.AbortWithError(c, http.StatusConflict, err, "Payment is pending for this application. Resume payment to continue.", nil)
	case errs.Is(err, commands.ErrAwaitingConfirmation):
		httperr.AbortWithError(c, http.StatusConflict, err, "Your payment was received and is awaiting confirmation. Contact support if this does not clear shortly.", nil)
	case errs.Is(err, commands.ErrNoPendingPayment):
		httperr.AbortWithError(c, http.StatusConflict, err, "No payment is pending for this application", nil)
	case errs.Is(err, commands.ErrOrderMismatch):
		httperr.AbortWithError(c, http.StatusConflict, err, "This payment does not belong to your application", nil)

	case errs.Is(err, commands.ErrGatewayFailed):
		var detail gin.H
		msg := "Payment failed"
		if gwErr, ok := asGatewayError(err); ok {
			msg = gwErr.Description
			detail = gin.H{"code": gwErr.Code, "reason": gwErr.Reason}
		}
		httperr.AbortWithError(c, http.StatusPaymentRequired, err, msg, detail)

	case errs.Is(err, errs.ErrCheckoutUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, errs.UserMessage(err, "The payment window could not be loaded"), nil)
	case errs.Is(err, errs.ErrUpstreamRejected):
		msg := "The request was rejected"
		if upErr, ok := infra.AsUpstream(err); ok {
			msg = upErr.Message
		}
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, msg, nil)
	case errs.Is(err, errs.ErrUpstreamUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "The internship service is unavailable. Please try again.", nil)

	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func asGatewayError(err error) (*commands.GatewayError, bool) {
	var gwErr *commands.GatewayError
	if errs.As(err, &gwErr) {
		return gwErr, true
	}
	return nil, false
}
