package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"consultsite/internal/domain"
)

// InquiryPayload is the inbound inquiry body. Unknown JSON fields are ignored.
type InquiryPayload struct {
	Name    string  `json:"name" validate:"required,max=200"`
	Email   string  `json:"email" validate:"required,max=254,email"`
	Company *string `json:"company,omitempty" validate:"omitempty,max=200"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,max=32"`
	Message string  `json:"message" validate:"required,max=5000"`
	Service *string `json:"service,omitempty" validate:"omitempty,max=64"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON names so errors match the request body
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateInquiry trims and validates p and returns the normalized inquiry.
// Every failing field is reported, not only the first.
func ValidateInquiry(p *InquiryPayload) (*domain.Inquiry, error) {
	if p == nil {
		p = &InquiryPayload{}
	}

	normalized := InquiryPayload{
		Name:    strings.TrimSpace(p.Name),
		Email:   strings.ToLower(strings.TrimSpace(p.Email)),
		Company: trimOptional(p.Company),
		Phone:   trimOptional(p.Phone),
		Message: strings.TrimSpace(p.Message),
		Service: trimOptional(p.Service),
	}

	if err := validate.Struct(normalized); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return nil, fmt.Errorf("failed to validate inquiry: %w", err)
		}
		verr := &ValidationError{Fields: make([]FieldError, 0, len(fieldErrs))}
		for _, fe := range fieldErrs {
			verr.Fields = append(verr.Fields, FieldError{
				Field:  fe.Field(),
				Rule:   fe.Tag(),
				Reason: reason(fe),
			})
		}
		return nil, verr
	}

	return &domain.Inquiry{
		Name:      normalized.Name,
		Email:     normalized.Email,
		Company:   normalized.Company,
		Phone:     normalized.Phone,
		Message:   normalized.Message,
		Service:   normalized.Service,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// trimOptional trims s and maps blank values to nil
func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "email":
		return "value is not a valid email address"
	case "max":
		return fmt.Sprintf("ensure this value has at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
