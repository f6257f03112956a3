package usecase_test

import (
	"testing"
	"time"

	"realestate-form-intake/internal/domain"
	"realestate-form-intake/internal/usecase"
	"realestate-form-intake/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldsOf(t *testing.T, err error) []string {
	t.Helper()
	var failure *domain.ValidationFailure
	require.ErrorAs(t, err, &failure)
	fields := make([]string, 0, len(failure.Errors))
	for _, fe := range failure.Errors {
		fields = append(fields, fe.Field)
	}
	return fields
}

func TestValidateContactForm(t *testing.T) {
	v := validation.NewValidator()

	t.Run("Should return a record equal to a fully valid input", func(t *testing.T) {
		form, err := usecase.ValidateContactForm(v, validInput())
		require.NoError(t, err)

		assert.Equal(t, domain.ContactForm{
			FormID:         "f1",
			Name:           "Jane",
			Email:          "jane@x.com",
			Phone:          5551234,
			Message:        "Interested",
			SubmissionDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			ListingURL:     "https://example.com/listing/1",
		}, *form)
	})

	for _, field := range []string{"formId", "name", "email", "message", "phone", "submissionDate", "listingUrl"} {
		t.Run("Should report missing "+field, func(t *testing.T) {
			input := validInput()
			delete(input, field)

			_, err := usecase.ValidateContactForm(v, input)
			assert.Equal(t, []string{field}, fieldsOf(t, err))
		})
	}

	t.Run("Should attribute a bad email to the email field", func(t *testing.T) {
		input := validInput()
		input["email"] = "not-an-email"

		_, err := usecase.ValidateContactForm(v, input)
		var failure *domain.ValidationFailure
		require.ErrorAs(t, err, &failure)
		assert.Equal(t, []domain.FieldError{{Field: "email", Message: "Invalid email"}}, failure.Errors)
	})

	t.Run("Should attribute a bad url to the listingUrl field", func(t *testing.T) {
		for _, bad := range []string{"listing/1", "example.com/listing", "not a url"} {
			input := validInput()
			input["listingUrl"] = bad

			_, err := usecase.ValidateContactForm(v, input)
			assert.Equal(t, []string{"listingUrl"}, fieldsOf(t, err), bad)
		}
	})

	t.Run("Should reject a numeric string phone", func(t *testing.T) {
		input := validInput()
		input["phone"] = "5551234"

		_, err := usecase.ValidateContactForm(v, input)
		var failure *domain.ValidationFailure
		require.ErrorAs(t, err, &failure)
		assert.Equal(t, []domain.FieldError{{Field: "phone", Message: "expected number, received string"}}, failure.Errors)
	})

	t.Run("Should reject an unparseable submission date", func(t *testing.T) {
		input := validInput()
		input["submissionDate"] = "next tuesday"

		_, err := usecase.ValidateContactForm(v, input)
		assert.Equal(t, []string{"submissionDate"}, fieldsOf(t, err))
	})

	t.Run("Should reject empty name and message", func(t *testing.T) {
		input := validInput()
		input["name"] = ""
		input["message"] = ""

		_, err := usecase.ValidateContactForm(v, input)
		assert.Equal(t, []string{"name", "message"}, fieldsOf(t, err))
	})

	t.Run("Should collect every violation at once", func(t *testing.T) {
		_, err := usecase.ValidateContactForm(v, domain.SubmissionInput{
			"email":      "nope",
			"listingUrl": "nope",
		})
		assert.Equal(t, []string{"formId", "name", "email", "phone", "message", "submissionDate", "listingUrl"}, fieldsOf(t, err))
	})

	t.Run("Should be deterministic for the same input", func(t *testing.T) {
		good := validInput()
		first, err1 := usecase.ValidateContactForm(v, good)
		second, err2 := usecase.ValidateContactForm(v, good)
		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.Equal(t, first, second)

		bad := domain.SubmissionInput{"email": "x"}
		_, err1 = usecase.ValidateContactForm(v, bad)
		_, err2 = usecase.ValidateContactForm(v, bad)
		assert.Equal(t, err1, err2)
	})

	t.Run("Should normalize offsets to UTC", func(t *testing.T) {
		input := validInput()
		input["submissionDate"] = "2024-01-01T02:00:00+02:00"

		form, err := usecase.ValidateContactForm(v, input)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), form.SubmissionDate)
	})
}
