//go:build e2e

package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"
)

// Fixture ids the stub knows about.
const (
	PaidInternshipID = "intern-paid"
	FreeInternshipID = "intern-free"
	StubOrderID      = "order_E2E01"
	ValidSignature   = "valid-signature"
	StubCouponCode   = "SAVE20"

	// PremiumInternshipID costs 5000 and takes the fixed SAVE1000 coupon.
	PremiumInternshipID = "intern-premium"
	PremiumOrderID      = "order_E2E02"
	FixedCouponCode     = "SAVE1000"
)

// paidOrders maps each order the stub issues to the internship it enrolls.
var paidOrders = map[string]string{
	StubOrderID:    PaidInternshipID,
	PremiumOrderID: PremiumInternshipID,
}

// MarketplaceStub stands in for the marketplace API and the checkout script host.
type MarketplaceStub struct {
	*httptest.Server

	mu          sync.Mutex
	enrolled    map[string]bool
	submissions int
	verifies    int
}

func NewMarketplaceStub() *MarketplaceStub {
	s := &MarketplaceStub{enrolled: map[string]bool{}}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/checkout.js", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/javascript")
		_, _ = w.Write([]byte("window.Razorpay = function () {};"))
	})
	mux.HandleFunc("GET /api/internships/coupons", s.listCoupons)
	mux.HandleFunc("GET /api/internships/{id}", s.getInternship)
	mux.HandleFunc("POST /api/internships/validate-coupon", s.validateCoupon)
	mux.HandleFunc("POST /api/internships/apply", s.apply)
	mux.HandleFunc("POST /api/internships/verify-payment", s.verifyPayment)
	mux.HandleFunc("GET /api/internships/my-applications", s.myApplications)
	mux.HandleFunc("GET /api/internships/my-enrollments", s.myEnrollments)

	s.Server = httptest.NewServer(requireBearer(mux))
	return s
}

func (s *MarketplaceStub) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enrolled = map[string]bool{}
	s.submissions = 0
	s.verifies = 0
}

// Enroll simulates the backend reconciling a payment on its own.
func (s *MarketplaceStub) Enroll(internshipID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enrolled[internshipID] = true
}

func (s *MarketplaceStub) Submissions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submissions
}

func (s *MarketplaceStub) Verifies() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.verifies
}

func requireBearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") && !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "Not authorized"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *MarketplaceStub) getInternship(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	switch id {
	case PaidInternshipID:
		writeJSON(w, http.StatusOK, map[string]any{"internship": map[string]any{
			"_id": id, "title": "Backend Engineering", "price": 499, "currency": "INR", "mode": "fee-based",
		}})
	case PremiumInternshipID:
		writeJSON(w, http.StatusOK, map[string]any{"internship": map[string]any{
			"_id": id, "title": "Platform Engineering", "price": 5000, "currency": "INR", "mode": "fee-based",
		}})
	case FreeInternshipID:
		writeJSON(w, http.StatusOK, map[string]any{"internship": map[string]any{
			"_id": id, "title": "Open Source Sprint", "price": 0, "mode": "free",
		}})
	default:
		writeJSON(w, http.StatusNotFound, map[string]any{"message": "Internship not found"})
	}
}

func (s *MarketplaceStub) listCoupons(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"coupons": []map[string]any{{
		"code":          StubCouponCode,
		"discountType":  "percentage",
		"discountValue": 20,
		"usageLimit":    100,
		"usedCount":     3,
		"expiresAt":     time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		"isActive":      true,
	}, {
		"code":          FixedCouponCode,
		"discountType":  "fixed_amount",
		"discountValue": 1000,
		"isActive":      true,
	}}})
}

func (s *MarketplaceStub) validateCoupon(w http.ResponseWriter, r *http.Request) {
	var body struct {
		CouponCode string  `json:"couponCode"`
		Amount     float64 `json:"amount"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)
	switch body.CouponCode {
	case StubCouponCode:
		writeJSON(w, http.StatusOK, map[string]any{"valid": true, "discountAmount": 99.8})
	case FixedCouponCode:
		writeJSON(w, http.StatusOK, map[string]any{"valid": true, "discountAmount": 1000})
	default:
		writeJSON(w, http.StatusBadRequest, map[string]any{"valid": false, "message": "Invalid coupon code"})
	}
}

func (s *MarketplaceStub) apply(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "Malformed form"})
		return
	}
	if _, _, err := r.FormFile("resume"); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "Resume is required"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.submissions++

	id := r.FormValue("internshipId")
	switch id {
	case PaidInternshipID:
		writeJSON(w, http.StatusCreated, map[string]any{
			"success":         true,
			"message":         "Application submitted. Complete payment to enroll.",
			"requiresPayment": true,
			"paymentDetails":  map[string]any{"orderId": StubOrderID, "amount": 499, "currency": "INR"},
			"application":     map[string]any{"_id": "app-e2e-paid"},
		})
	case PremiumInternshipID:
		amount, discount := 5000, 0
		if r.FormValue("couponCode") == FixedCouponCode {
			amount, discount = 4000, 1000
		}
		writeJSON(w, http.StatusCreated, map[string]any{
			"success":         true,
			"message":         "Application submitted. Complete payment to enroll.",
			"requiresPayment": true,
			"discountAmount":  discount,
			"paymentDetails":  map[string]any{"orderId": PremiumOrderID, "amount": amount, "currency": "INR"},
			"application":     map[string]any{"_id": "app-e2e-premium"},
		})
	case FreeInternshipID:
		s.enrolled[id] = true
		writeJSON(w, http.StatusCreated, map[string]any{
			"success":     true,
			"message":     "Application submitted",
			"application": map[string]any{"_id": "app-e2e-free"},
		})
	default:
		writeJSON(w, http.StatusNotFound, map[string]any{"message": "Internship not found"})
	}
}

func (s *MarketplaceStub) verifyPayment(w http.ResponseWriter, r *http.Request) {
	var body struct {
		OrderID   string `json:"orderId"`
		PaymentID string `json:"paymentId"`
		Signature string `json:"signature"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.verifies++

	internshipID, known := paidOrders[body.OrderID]
	if !known || body.Signature != ValidSignature {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "Payment signature mismatch"})
		return
	}
	s.enrolled[internshipID] = true
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Payment verified"})
}

func (s *MarketplaceStub) myApplications(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	apps := []map[string]any{}
	for id := range s.enrolled {
		apps = append(apps, map[string]any{"_id": "app-" + id, "internshipId": id, "status": "approved"})
	}
	writeJSON(w, http.StatusOK, map[string]any{"applications": apps})
}

func (s *MarketplaceStub) myEnrollments(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	enrs := []map[string]any{}
	for id := range s.enrolled {
		enrs = append(enrs, map[string]any{
			"_id":          "enr-" + id,
			"internshipId": map[string]any{"_id": id, "title": "populated"},
			"status":       "active",
			"enrolledAt":   time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"enrollments": enrs})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
