package usecase

import (
	"time"

	"realestate-form-intake/internal/domain"
	"realestate-form-intake/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// contactFormSchema is evaluated field by field so one bad value never masks another.
var contactFormSchema = validation.Schema{
	{Field: "formId", Kind: validation.KindString, Tag: "required"},
	{Field: "name", Kind: validation.KindString, Tag: "min=1"},
	{Field: "email", Kind: validation.KindString, Tag: "email"},
	{Field: "phone", Kind: validation.KindNumber},
	{Field: "message", Kind: validation.KindString, Tag: "min=1"},
	{Field: "submissionDate", Kind: validation.KindDate},
	{Field: "listingUrl", Kind: validation.KindString, Tag: "url"},
}

// ValidateContactForm turns an untrusted submission into a ContactForm or a
// *domain.ValidationFailure listing every violated field. It performs no I/O.
// v must have the custom tags from validation.RegisterValidators.
func ValidateContactForm(v *validator.Validate, input domain.SubmissionInput) (*domain.ContactForm, error) {
	values, errs := contactFormSchema.Validate(v, input)
	if len(errs) > 0 {
		failure := &domain.ValidationFailure{Errors: make([]domain.FieldError, 0, len(errs))}
		for _, fe := range errs {
			failure.Errors = append(failure.Errors, domain.FieldError{Field: fe.Field, Message: fe.Message})
		}
		return nil, failure
	}

	return &domain.ContactForm{
		FormID:         values["formId"].(string),
		Name:           values["name"].(string),
		Email:          values["email"].(string),
		Phone:          values["phone"].(float64),
		Message:        values["message"].(string),
		SubmissionDate: values["submissionDate"].(time.Time).In(time.UTC),
		ListingURL:     values["listingUrl"].(string),
	}, nil
}
