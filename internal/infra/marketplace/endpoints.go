package marketplace

import (
	"net/url"

	"internship-checkout/internal/domain/internship"
)

// family is one variant's set of endpoints. The two families expose the same
// operations under different paths and, for coupons, different bodies.
type family struct {
	validateCoupon string
	apply          string
	verifyPayment  string
	myApplications string
	myEnrollments  string
	// couponCodeField is the JSON key the coupon validation body uses for the code.
	couponCodeField string
}

var families = map[internship.Variant]family{
	internship.VariantStandard: {
		validateCoupon:  "/api/internships/validate-coupon",
		apply:           "/api/internships/apply",
		verifyPayment:   "/api/internships/verify-payment",
		myApplications:  "/api/internships/my-applications",
		myEnrollments:   "/api/internships/my-enrollments",
		couponCodeField: "couponCode",
	},
	internship.VariantAPExclusive: {
		validateCoupon:  "/api/internships/coupons/validate",
		apply:           "/api/internships/apinternshipapply",
		verifyPayment:   "/api/internships/apinternshipverify-payment",
		myApplications:  "/api/internships/apinternshipmy-applications",
		myEnrollments:   "/api/internships/apinternshipmy-enrollments",
		couponCodeField: "code",
	},
}

const (
	couponsPath    = "/api/internships/coupons"
	internshipPath = "/api/internships/"
)

func familyFor(v internship.Variant) (family, error) {
	f, ok := families[v]
	if !ok {
		return family{}, internship.ErrInvalidVariant
	}
	return f, nil
}

func targetPath(id string) string {
	return internshipPath + url.PathEscape(id)
}
