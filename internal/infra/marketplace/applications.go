package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"internship-checkout/internal/domain/application"
	"internship-checkout/internal/domain/enrollment"
	"internship-checkout/internal/domain/internship"
	"internship-checkout/internal/domain/money"
	"internship-checkout/internal/domain/session"
	"internship-checkout/internal/pkg/errs"
	"internship-checkout/internal/pkg/patch"
	"internship-checkout/internal/usecase/shared"
)

const enrollmentTypeCode = "code"

func (c *Client) SubmitApplication(ctx context.Context, sess session.Session, variant internship.Variant, form shared.ApplicationForm) (*shared.SubmitOutcome, error) {
	fam, err := familyFor(variant)
	if err != nil {
		return nil, err
	}

	body, contentType, err := encodeForm(form)
	if err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, sess, http.MethodPost, fam.apply, body, contentType)
	if err != nil {
		return nil, err
	}

	var resp applyResponse
	if err := c.do(req, "submit_application", &resp); err != nil {
		return nil, err
	}
	return classify(resp)
}

func encodeForm(form shared.ApplicationForm) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	details, err := json.Marshal(form.Applicant)
	if err != nil {
		return nil, "", errs.Wrap(err, "failed to encode applicant details")
	}

	fields := [][2]string{
		{"internshipId", form.InternshipID},
		{"applicantDetails", string(details)},
		{"portfolioLink", form.PortfolioLink},
	}
	if form.CoverLetterText != "" {
		fields = append(fields, [2]string{"coverLetterText", form.CoverLetterText})
	}
	if form.CouponCode != nil && *form.CouponCode != "" {
		fields = append(fields, [2]string{"couponCode", *form.CouponCode})
	}
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return nil, "", errs.Wrap(err, "failed to write form field")
		}
	}

	if err := writeFile(w, "resume", form.Resume); err != nil {
		return nil, "", err
	}
	if err := writeFile(w, "coverLetter", form.CoverLetter); err != nil {
		return nil, "", err
	}

	if err := w.Close(); err != nil {
		return nil, "", errs.Wrap(err, "failed to close multipart body")
	}
	return buf, w.FormDataContentType(), nil
}

func writeFile(w *multipart.Writer, field string, part *shared.FilePart) error {
	if part == nil {
		return nil
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, part.Filename))
	ct := part.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}
	h.Set("Content-Type", ct)

	dst, err := w.CreatePart(h)
	if err != nil {
		return errs.Wrapf(err, "failed to create %s part", field)
	}
	if _, err := dst.Write(part.Content); err != nil {
		return errs.Wrapf(err, "failed to write %s part", field)
	}
	return nil
}

func classify(resp applyResponse) (*shared.SubmitOutcome, error) {
	out := &shared.SubmitOutcome{Message: resp.Message, ApplicationID: resp.ApplicationID}
	if resp.Application != nil {
		out.ApplicationID = firstNonEmpty(resp.Application.MongoID, resp.Application.ID, resp.ApplicationID)
	}
	if resp.DiscountAmount != nil {
		if d, err := money.NewAmount(*resp.DiscountAmount); err == nil {
			out.DiscountAmount = &d
		}
	}

	switch {
	case strings.EqualFold(resp.EnrollmentType, enrollmentTypeCode):
		out.Kind = shared.SubmitEnrolledByCode
	case resp.RequiresPayment:
		pd := resp.PaymentDetails
		if pd == nil || pd.OrderID == "" || pd.Amount == nil {
			return nil, errs.Mark(errs.New("payment required but no order descriptor returned"), errs.ErrUpstreamUnavailable)
		}
		amount, err := money.NewAmount(*pd.Amount)
		if err != nil {
			return nil, errs.Mark(errs.Wrap(err, "marketplace returned an invalid order amount"), errs.ErrUpstreamUnavailable)
		}
		currency := strings.ToUpper(pd.Currency)
		if currency == "" {
			currency = internship.DefaultCurrency
		}
		out.Kind = shared.SubmitPaymentRequired
		out.Order = &application.Order{ID: pd.OrderID, Amount: amount, Currency: currency}
	default:
		out.Kind = shared.SubmitEnrolledFree
	}
	return out, nil
}

// VerifyPayment forwards the widget's success payload. It is called once per
// payment event and never retried.
func (c *Client) VerifyPayment(ctx context.Context, sess session.Session, variant internship.Variant, v shared.Verification) error {
	fam, err := familyFor(variant)
	if err != nil {
		return err
	}
	body := verifyRequest{
		OrderID:    v.Confirmation.OrderID,
		PaymentID:  v.Confirmation.PaymentID,
		Signature:  v.Confirmation.Signature,
		CouponCode: patch.Coalesce(v.CouponCode, ""),
	}
	return c.postJSON(ctx, sess, "verify_payment", fam.verifyPayment, body, nil)
}

func (c *Client) ListApplications(ctx context.Context, sess session.Session, variant internship.Variant) ([]enrollment.ApplicationView, error) {
	fam, err := familyFor(variant)
	if err != nil {
		return nil, err
	}
	var resp applicationsResponse
	if err := c.getJSON(ctx, sess, "list_applications", fam.myApplications, &resp); err != nil {
		return nil, err
	}
	docs := resp.Applications
	if len(docs) == 0 {
		docs = resp.Data
	}

	out := make([]enrollment.ApplicationView, 0, len(docs))
	for _, d := range docs {
		view := enrollment.ApplicationView{
			ID:             firstNonEmpty(d.MongoID, d.ID),
			InternshipID:   string(d.Internship),
			Status:         d.Status,
			CouponCode:     d.CouponCode,
			PaymentOrderID: firstNonEmpty(d.PaymentOrderID, d.OrderID),
		}
		if d.DiscountAmount != nil {
			f := d.DiscountAmount.InexactFloat64()
			view.DiscountAmount = &f
		}
		out = append(out, view)
	}
	return out, nil
}

func (c *Client) ListEnrollments(ctx context.Context, sess session.Session, variant internship.Variant) ([]enrollment.Enrollment, error) {
	fam, err := familyFor(variant)
	if err != nil {
		return nil, err
	}
	var resp enrollmentsResponse
	if err := c.getJSON(ctx, sess, "list_enrollments", fam.myEnrollments, &resp); err != nil {
		return nil, err
	}
	docs := resp.Enrollments
	if len(docs) == 0 {
		docs = resp.Data
	}

	out := make([]enrollment.Enrollment, 0, len(docs))
	for _, d := range docs {
		status, err := enrollment.NewStatus(strings.ToLower(d.Status))
		if err != nil {
			status = enrollment.StatusActive
		}
		enrolledAt := d.EnrolledAt
		if enrolledAt.IsZero() {
			enrolledAt = d.CreatedAt
		}
		out = append(out, enrollment.Enrollment{
			ID:           firstNonEmpty(d.MongoID, d.ID),
			InternshipID: string(d.Internship),
			Status:       status,
			EnrolledAt:   enrolledAt,
		})
	}
	return out, nil
}
