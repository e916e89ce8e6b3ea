package marketplace

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ref is an id that may arrive as a plain string or as a populated document
// carrying "_id" or "id".
type ref string

func (r *ref) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*r = ref(s)
		return nil
	}
	var doc struct {
		MongoID string `json:"_id"`
		ID      string `json:"id"`
	}
	if err := json.Unmarshal(b, &doc); err != nil {
		return err
	}
	*r = ref(firstNonEmpty(doc.MongoID, doc.ID))
	return nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

func firstDecimal(vals ...*decimal.Decimal) *decimal.Decimal {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
}

type internshipDoc struct {
	MongoID        string           `json:"_id"`
	ID             string           `json:"id"`
	Title          string           `json:"title"`
	Price          *decimal.Decimal `json:"price"`
	Fee            *decimal.Decimal `json:"fee"`
	Amount         *decimal.Decimal `json:"amount"`
	Currency       string           `json:"currency"`
	Mode           string           `json:"mode"`
	Type           string           `json:"type"`
	InternshipType string           `json:"internshipType"`
}

type targetResponse struct {
	Internship *internshipDoc `json:"internship"`
	Data       *internshipDoc `json:"data"`
	internshipDoc
}

func (r *targetResponse) doc() *internshipDoc {
	switch {
	case r.Internship != nil:
		return r.Internship
	case r.Data != nil:
		return r.Data
	default:
		return &r.internshipDoc
	}
}

type couponDoc struct {
	Code               string           `json:"code"`
	DiscountType       string           `json:"discountType"`
	DiscountValue      *decimal.Decimal `json:"discountValue"`
	DiscountAmount     *decimal.Decimal `json:"discountAmount"`
	DiscountPercentage *decimal.Decimal `json:"discountPercentage"`
	Internship         ref              `json:"internshipId"`
	UsageLimit         int              `json:"usageLimit"`
	UsedCount          int              `json:"usedCount"`
	ExpiresAt          *time.Time       `json:"expiresAt"`
	ValidUntil         *time.Time       `json:"validUntil"`
	IsActive           *bool            `json:"isActive"`
	Active             *bool            `json:"active"`
}

type couponListResponse struct {
	Coupons []couponDoc `json:"coupons"`
	Data    []couponDoc `json:"data"`
}

// verdictResponse covers both validation shapes:
// {valid, discountAmount, message} and {success, coupon:{discountAmount}}.
type verdictResponse struct {
	Valid          *bool            `json:"valid"`
	Success        *bool            `json:"success"`
	Message        string           `json:"message"`
	DiscountAmount *decimal.Decimal `json:"discountAmount"`
	Coupon         *struct {
		DiscountAmount *decimal.Decimal `json:"discountAmount"`
	} `json:"coupon"`
}

func (v verdictResponse) valid() bool {
	switch {
	case v.Valid != nil:
		return *v.Valid
	case v.Success != nil:
		return *v.Success
	default:
		return false
	}
}

func (v verdictResponse) discount() *decimal.Decimal {
	if v.DiscountAmount != nil {
		return v.DiscountAmount
	}
	if v.Coupon != nil {
		return v.Coupon.DiscountAmount
	}
	return nil
}

type applyResponse struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	EnrollmentType  string `json:"enrollmentType"`
	RequiresPayment bool   `json:"requiresPayment"`
	PaymentDetails  *struct {
		OrderID  string           `json:"orderId"`
		Amount   *decimal.Decimal `json:"amount"`
		Currency string           `json:"currency"`
	} `json:"paymentDetails"`
	Application *struct {
		MongoID string `json:"_id"`
		ID      string `json:"id"`
	} `json:"application"`
	ApplicationID  string           `json:"applicationId"`
	DiscountAmount *decimal.Decimal `json:"discountAmount"`
}

type verifyRequest struct {
	OrderID    string `json:"orderId"`
	PaymentID  string `json:"paymentId"`
	Signature  string `json:"signature"`
	CouponCode string `json:"couponCode,omitempty"`
}

type applicationDoc struct {
	MongoID        string           `json:"_id"`
	ID             string           `json:"id"`
	Internship     ref              `json:"internshipId"`
	Status         string           `json:"status"`
	CouponCode     string           `json:"couponCode"`
	DiscountAmount *decimal.Decimal `json:"discountAmount"`
	PaymentOrderID string           `json:"paymentOrderId"`
	OrderID        string           `json:"orderId"`
}

type enrollmentDoc struct {
	MongoID    string    `json:"_id"`
	ID         string    `json:"id"`
	Internship ref       `json:"internshipId"`
	Status     string    `json:"status"`
	EnrolledAt time.Time `json:"enrolledAt"`
	CreatedAt  time.Time `json:"createdAt"`
}

type applicationsResponse struct {
	Applications []applicationDoc `json:"applications"`
	Data         []applicationDoc `json:"data"`
}

type enrollmentsResponse struct {
	Enrollments []enrollmentDoc `json:"enrollments"`
	Data        []enrollmentDoc `json:"data"`
}
