package v1

import (
	"context"
	"errors"
	"net/http"
	"time"

	"realestate-form-intake/internal/delivery/http/response"
	"realestate-form-intake/internal/domain"
	"realestate-form-intake/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// maxBodyBytes bounds a single form submission.
const maxBodyBytes = 64 << 10

type ContactHandler struct {
	contactUC domain.ContactUsecase
	timeout   time.Duration
}

// NewContactHandler registers the public form route
func NewContactHandler(r gin.IRoutes, contactUC domain.ContactUsecase, timeout time.Duration) {
	handler := &ContactHandler{
		contactUC: contactUC,
		timeout:   timeout,
	}

	r.POST("/form", handler.SubmitForm)
}

// SubmitForm godoc
// @Summary      Submit a listing inquiry
// @Description  Validates the inquiry, stores it and emails the listing agent. A 500 can follow a successful write when only the email failed.
// @Tags         form
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        form  body      domain.ContactForm  true  "Inquiry"
// @Success      200   {object}  response.Response{data=domain.ContactForm}
// @Failure      400   {object}  response.Response{errors=[]apperror.FieldError}
// @Failure      500   {object}  response.Response{error=string}
// @Router       /form [post]
func (h *ContactHandler) SubmitForm(c *gin.Context) {
	input, err := bindSubmission(c)
	if err != nil {
		_ = c.Error(apperror.Validation([]apperror.FieldError{{Field: "body", Message: "could not be parsed"}}))
		return
	}

	ctx := c.Request.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	form, err := h.contactUC.SubmitContactForm(ctx, input)
	if err != nil {
		var failure *domain.ValidationFailure
		if errors.As(err, &failure) {
			fields := make([]apperror.FieldError, 0, len(failure.Errors))
			for _, fe := range failure.Errors {
				fields = append(fields, apperror.FieldError{Field: fe.Field, Message: fe.Message})
			}
			_ = c.Error(apperror.Validation(fields))
			return
		}
		// store and notify failures both surface as a plain 500
		_ = c.Error(apperror.Internal(err))
		return
	}

	response.Success(c, http.StatusOK, "Form submitted successfully", form)
}

// bindSubmission decodes a JSON or URL-encoded body into an untyped map.
func bindSubmission(c *gin.Context) (domain.SubmissionInput, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

	if c.ContentType() == binding.MIMEPOSTForm {
		if err := c.Request.ParseForm(); err != nil {
			return nil, err
		}
		input := make(domain.SubmissionInput, len(c.Request.PostForm))
		for key, values := range c.Request.PostForm {
			if len(values) > 0 {
				input[key] = values[0]
			}
		}
		return input, nil
	}

	var input domain.SubmissionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		return nil, err
	}
	if input == nil {
		input = domain.SubmissionInput{}
	}
	return input, nil
}
