//go:build unit

package marketplace

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"internship-checkout/internal/domain/internship"
	"internship-checkout/internal/domain/money"
	"internship-checkout/internal/domain/payment"
	"internship-checkout/internal/domain/session"
	"internship-checkout/internal/infra"
	"internship-checkout/internal/pkg/config"
	"internship-checkout/internal/pkg/errs"
	"internship-checkout/internal/usecase/shared"
	"internship-checkout/tests/common/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.MarketplaceConfig{BaseURL: srv.URL, Timeout: 2 * time.Second}, nil, nil)
}

func testSession(t *testing.T) session.Session {
	t.Helper()
	sess, err := session.New("user-1", session.RoleStudent, "tok-123")
	require.NoError(t, err)
	return sess
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestValidateCoupon(t *testing.T) {
	tests := []struct {
		name         string
		variant      internship.Variant
		wantPath     string
		wantCodeKey  string
		status       int
		response     any
		wantValid    bool
		wantDiscount string
		wantMessage  string
	}{
		{
			name:         "standard family accepts",
			variant:      internship.VariantStandard,
			wantPath:     "/api/internships/validate-coupon",
			wantCodeKey:  "couponCode",
			status:       http.StatusOK,
			response:     map[string]any{"valid": true, "discountAmount": 250},
			wantValid:    true,
			wantDiscount: "250.00",
		},
		{
			name:         "ap family nested discount",
			variant:      internship.VariantAPExclusive,
			wantPath:     "/api/internships/coupons/validate",
			wantCodeKey:  "code",
			status:       http.StatusOK,
			response:     map[string]any{"success": true, "coupon": map[string]any{"discountAmount": "99.5"}},
			wantValid:    true,
			wantDiscount: "99.50",
		},
		{
			name:         "invalid verdict keeps message",
			variant:      internship.VariantStandard,
			wantPath:     "/api/internships/validate-coupon",
			wantCodeKey:  "couponCode",
			status:       http.StatusOK,
			response:     map[string]any{"valid": false, "message": "Coupon expired"},
			wantDiscount: "0.00",
			wantMessage:  "Coupon expired",
		},
		{
			name:         "4xx is a rejection, not an error",
			variant:      internship.VariantAPExclusive,
			wantPath:     "/api/internships/coupons/validate",
			wantCodeKey:  "code",
			status:       http.StatusBadRequest,
			response:     map[string]any{"success": false, "message": "Coupon usage limit reached"},
			wantDiscount: "0.00",
			wantMessage:  "Coupon usage limit reached",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, tt.wantPath, r.URL.Path)
				assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

				var body map[string]any
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, "SAVE10", body[tt.wantCodeKey])
				assert.Equal(t, "intern-1", body["internshipId"])
				assert.EqualValues(t, 1000, body["amount"])

				writeJSON(w, tt.status, tt.response)
			})

			verdict, err := client.ValidateCoupon(t.Context(), testSession(t), tt.variant, shared.CouponCheck{
				Code:         "SAVE10",
				InternshipID: "intern-1",
				Amount:       money.FromInt(1000),
			})

			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, verdict.Valid)
			assert.Equal(t, tt.wantDiscount, verdict.DiscountAmount.String())
			assert.Equal(t, tt.wantMessage, verdict.Message)
		})
	}
}

func TestSubmitApplication(t *testing.T) {
	code := "FULLFREE"
	form := shared.ApplicationForm{
		InternshipID:  "intern-1",
		Applicant:     shared.ApplicantDetails{Name: "Asha", Email: "asha@example.com", Phone: "9876543210"},
		PortfolioLink: "https://asha.dev",
		Resume:        &shared.FilePart{Filename: "cv.pdf", ContentType: "application/pdf", Content: []byte("%PDF")},
		CouponCode:    &code,
	}

	tests := []struct {
		name      string
		response  map[string]any
		wantKind  shared.SubmitKind
		wantOrder bool
	}{
		{
			name:     "coupon covered the fee",
			response: map[string]any{"success": true, "enrollmentType": "code", "application": map[string]any{"_id": "app-1"}},
			wantKind: shared.SubmitEnrolledByCode,
		},
		{
			name: "payment required",
			response: map[string]any{
				"success": true, "requiresPayment": true, "applicationId": "app-1",
				"paymentDetails": map[string]any{"orderId": "order_1", "amount": 499, "currency": "inr"},
			},
			wantKind:  shared.SubmitPaymentRequired,
			wantOrder: true,
		},
		{
			name:     "neither flag means free enrollment",
			response: map[string]any{"success": true, "applicationId": "app-1"},
			wantKind: shared.SubmitEnrolledFree,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/internships/apinternshipapply", r.URL.Path)
				require.NoError(t, r.ParseMultipartForm(1<<20))
				assert.Equal(t, "intern-1", r.FormValue("internshipId"))
				assert.Equal(t, "FULLFREE", r.FormValue("couponCode"))
				assert.JSONEq(t, `{"name":"Asha","email":"asha@example.com","phone":"9876543210"}`, r.FormValue("applicantDetails"))

				f, hdr, err := r.FormFile("resume")
				require.NoError(t, err)
				content, _ := io.ReadAll(f)
				assert.Equal(t, "cv.pdf", hdr.Filename)
				assert.Equal(t, "%PDF", string(content))

				_, _, err = r.FormFile("coverLetter")
				assert.ErrorIs(t, err, http.ErrMissingFile)

				writeJSON(w, http.StatusCreated, tt.response)
			})

			out, err := client.SubmitApplication(t.Context(), testSession(t), internship.VariantAPExclusive, form)

			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, out.Kind)
			assert.Equal(t, "app-1", out.ApplicationID)
			if tt.wantOrder {
				require.NotNil(t, out.Order)
				assert.Equal(t, "order_1", out.Order.ID)
				assert.Equal(t, "INR", out.Order.Currency)
				assert.Equal(t, int64(49900), out.Order.Amount.Paise())
			} else {
				assert.Nil(t, out.Order)
			}
		})
	}
}

func TestSubmitApplication_PaymentWithoutOrder(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "requiresPayment": true})
	})

	_, err := client.SubmitApplication(t.Context(), testSession(t), internship.VariantStandard, shared.ApplicationForm{InternshipID: "intern-1"})

	testutil.AssertIs(t, err, errs.ErrUpstreamUnavailable)
}

func TestVerifyPayment(t *testing.T) {
	confirmation := payment.Confirmation{OrderID: "order_1", PaymentID: "pay_1", Signature: "sig"}

	t.Run("forwards the payload verbatim", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/internships/verify-payment", r.URL.Path)
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, map[string]string{"orderId": "order_1", "paymentId": "pay_1", "signature": "sig"}, body)
			writeJSON(w, http.StatusOK, map[string]any{"success": true})
		})

		err := client.VerifyPayment(t.Context(), testSession(t), internship.VariantStandard, shared.Verification{Confirmation: confirmation})
		assert.NoError(t, err)
	})

	t.Run("rejection carries server message", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "Invalid payment signature"})
		})

		err := client.VerifyPayment(t.Context(), testSession(t), internship.VariantStandard, shared.Verification{Confirmation: confirmation})

		upErr, ok := infra.AsUpstream(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, upErr.Status)
		assert.Equal(t, "Invalid payment signature", upErr.Message)
		assert.ErrorIs(t, err, errs.ErrUpstreamRejected)
	})

	t.Run("success false on 200 is still a rejection", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"success": false, "message": "Order already processed"})
		})

		err := client.VerifyPayment(t.Context(), testSession(t), internship.VariantStandard, shared.Verification{Confirmation: confirmation})

		upErr, ok := infra.AsUpstream(err)
		require.True(t, ok)
		assert.Equal(t, "Order already processed", upErr.Message)
	})
}

func TestErrorTaxonomy(t *testing.T) {
	t.Run("transport failure", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()
		client := NewClient(config.MarketplaceConfig{BaseURL: srv.URL, Timeout: time.Second}, nil, nil)

		_, err := client.ListEnrollments(t.Context(), testSession(t), internship.VariantStandard)

		testutil.AssertIs(t, err, errs.ErrUpstreamUnavailable)
		_, isUpstream := infra.AsUpstream(err)
		assert.False(t, isUpstream)
	})

	t.Run("401 is unauthenticated", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "Token expired"})
		})

		_, err := client.ListApplications(t.Context(), testSession(t), internship.VariantStandard)

		testutil.AssertIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("5xx is an outage, not a rejection", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusInternalServerError, map[string]any{"message": "Internal Server Error"})
		})

		_, err := client.ValidateCoupon(t.Context(), testSession(t), internship.VariantStandard, shared.CouponCheck{
			Code: "SAVE10", InternshipID: "intern-1", Amount: money.FromInt(1000),
		})

		testutil.AssertIs(t, err, errs.ErrUpstreamUnavailable)
		assert.False(t, errors.Is(err, errs.ErrUpstreamRejected))
		upErr, ok := infra.AsUpstream(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusInternalServerError, upErr.Status)
	})

	t.Run("4xx stays a rejection", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusNotFound, map[string]any{"message": "Internship not found"})
		})

		_, err := client.GetTarget(t.Context(), testSession(t), "intern-404")

		testutil.AssertIs(t, err, errs.ErrUpstreamRejected)
		assert.False(t, errors.Is(err, errs.ErrUpstreamUnavailable))
	})

	t.Run("unknown variant", func(t *testing.T) {
		client := NewClient(config.MarketplaceConfig{BaseURL: "http://unused"}, nil, nil)

		_, err := client.ListApplications(t.Context(), testSession(t), internship.Variant("other"))

		assert.True(t, errors.Is(err, internship.ErrInvalidVariant))
	})
}

func TestLists(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/internships/apinternshipmy-applications":
			writeJSON(w, http.StatusOK, map[string]any{"applications": []any{
				map[string]any{"_id": "app-1", "internshipId": map[string]any{"_id": "intern-1", "title": "Go"}, "status": "payment_pending", "orderId": "order_1"},
			}})
		case "/api/internships/apinternshipmy-enrollments":
			writeJSON(w, http.StatusOK, map[string]any{"enrollments": []any{
				map[string]any{"_id": "enr-1", "internshipId": "intern-2", "status": "canceled"},
			}})
		default:
			http.NotFound(w, r)
		}
	})

	apps, err := client.ListApplications(t.Context(), testSession(t), internship.VariantAPExclusive)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "intern-1", apps[0].InternshipID)
	assert.Equal(t, "order_1", apps[0].PaymentOrderID)

	enrs, err := client.ListEnrollments(t.Context(), testSession(t), internship.VariantAPExclusive)
	require.NoError(t, err)
	require.Len(t, enrs, 1)
	assert.Equal(t, "intern-2", enrs[0].InternshipID)
	assert.Equal(t, "cancelled", string(enrs[0].Status))
}

func TestGetTargetAndCoupons(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/internships/intern-1":
			writeJSON(w, http.StatusOK, map[string]any{"success": true, "internship": map[string]any{
				"_id": "intern-1", "title": "Backend", "price": 1500, "type": "fee-based",
			}})
		case "/api/internships/coupons":
			writeJSON(w, http.StatusOK, map[string]any{"coupons": []any{
				map[string]any{"code": "save10", "discountType": "percentage", "discountValue": 10, "usageLimit": 5, "usedCount": 1, "isActive": true},
				map[string]any{"code": "save1000", "discountType": "fixed_amount", "discountValue": 1000, "isActive": true},
				map[string]any{"code": "bogo", "discountType": "buy_one_get_one", "discountValue": 1},
				map[string]any{"code": "!", "discountType": "fixed", "discountValue": 10},
			}})
		default:
			http.NotFound(w, r)
		}
	})

	target, err := client.GetTarget(t.Context(), testSession(t), "intern-1")
	require.NoError(t, err)
	assert.Equal(t, internship.ModeFeeBased, target.Mode())
	assert.Equal(t, "1500.00", target.BaseAmount().String())
	assert.Equal(t, "INR", target.Currency())

	listing, err := client.ListCoupons(t.Context(), testSession(t))
	require.NoError(t, err)
	require.Len(t, listing.Coupons, 2)
	assert.Equal(t, "SAVE10", listing.Coupons[0].Code().String())
	assert.True(t, listing.Coupons[0].Discount().IsPercentage())
	assert.Equal(t, "SAVE1000", listing.Coupons[1].Code().String())
	assert.False(t, listing.Coupons[1].Discount().IsPercentage())
	assert.Equal(t, []string{"bogo", "!"}, listing.Unparsed)
}
