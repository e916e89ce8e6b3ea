//go:build unit || e2e

package builder

import (
	"internship-checkout/internal/usecase/commands"
	"internship-checkout/internal/usecase/shared"
)

// ApplicationBuilder builds a submission as the application form would send it.
type ApplicationBuilder struct {
	InternshipID    string
	Applicant       shared.ApplicantDetails
	PortfolioLink   string
	Resume          *shared.FilePart
	CoverLetter     *shared.FilePart
	CoverLetterText string
	CouponCode      string
}

func NewApplicationBuilder() *ApplicationBuilder {
	return &ApplicationBuilder{
		InternshipID: "intern-101",
		Applicant: shared.ApplicantDetails{
			Name:    "Asha Verma",
			Email:   "asha@example.com",
			Phone:   "9876543210",
			College: "IIT Madras",
			Degree:  "B.Tech",
			Year:    "3",
		},
		PortfolioLink: "https://asha.dev",
		Resume: &shared.FilePart{
			Filename:    "resume.pdf",
			ContentType: "application/pdf",
			Content:     []byte("%PDF-1.4 resume"),
		},
	}
}

func (b *ApplicationBuilder) With(mutate func(*ApplicationBuilder)) *ApplicationBuilder {
	mutate(b)
	return b
}

func (b *ApplicationBuilder) BuildInput() commands.SubmitApplicationInput {
	return commands.SubmitApplicationInput{
		InternshipID:    b.InternshipID,
		Applicant:       b.Applicant,
		PortfolioLink:   b.PortfolioLink,
		Resume:          b.Resume,
		CoverLetter:     b.CoverLetter,
		CoverLetterText: b.CoverLetterText,
		CouponCode:      b.CouponCode,
	}
}

// BuildFormFields returns the non-file multipart fields.
func (b *ApplicationBuilder) BuildFormFields() map[string]string {
	fields := map[string]string{
		"internshipId":  b.InternshipID,
		"name":          b.Applicant.Name,
		"email":         b.Applicant.Email,
		"phone":         b.Applicant.Phone,
		"college":       b.Applicant.College,
		"degree":        b.Applicant.Degree,
		"year":          b.Applicant.Year,
		"portfolioLink": b.PortfolioLink,
	}
	if b.CouponCode != "" {
		fields["couponCode"] = b.CouponCode
	}
	if b.CoverLetterText != "" {
		fields["coverLetterText"] = b.CoverLetterText
	}
	return fields
}

func (b *ApplicationBuilder) WithoutResume() *ApplicationBuilder {
	b.Resume = nil
	return b
}

func (b *ApplicationBuilder) WithCouponCode(code string) *ApplicationBuilder {
	b.CouponCode = code
	return b
}

func (b *ApplicationBuilder) WithEmail(email string) *ApplicationBuilder {
	b.Applicant.Email = email
	return b
}

func (b *ApplicationBuilder) WithInternshipID(id string) *ApplicationBuilder {
	b.InternshipID = id
	return b
}
