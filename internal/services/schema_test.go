package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "consultsite/pkg/errors"
)

func strPtr(s string) *string { return &s }

func TestValidateInquiryNormalizes(t *testing.T) {
	inquiry, err := ValidateInquiry(&InquiryPayload{
		Name:    "  Jane Doe ",
		Email:   " Jane@Example.COM ",
		Company: strPtr(" Acme "),
		Phone:   strPtr("   "),
		Message: " Need architecture help\n",
		Service: strPtr("architecture"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", inquiry.Name)
	assert.Equal(t, "jane@example.com", inquiry.Email)
	require.NotNil(t, inquiry.Company)
	assert.Equal(t, "Acme", *inquiry.Company)
	assert.Nil(t, inquiry.Phone)
	assert.Equal(t, "Need architecture help", inquiry.Message)
	assert.Equal(t, "architecture", *inquiry.Service)
	assert.False(t, inquiry.CreatedAt.IsZero())
}

func TestValidateInquiryReportsEveryField(t *testing.T) {
	_, err := ValidateInquiry(&InquiryPayload{Email: "nope"})

	verr, ok := AsValidationError(err)
	require.True(t, ok)
	assert.True(t, verr.HasField("name"))
	assert.True(t, verr.HasField("email"))
	assert.True(t, verr.HasField("message"))
	assert.Len(t, verr.Fields, 3)

	for _, f := range verr.Fields {
		switch f.Field {
		case "email":
			assert.Equal(t, "email", f.Rule)
			assert.Equal(t, "value is not a valid email address", f.Reason)
		default:
			assert.Equal(t, "required", f.Rule)
			assert.Equal(t, "field required", f.Reason)
		}
	}
}

func TestValidateInquiryMaxLength(t *testing.T) {
	_, err := ValidateInquiry(&InquiryPayload{
		Name:    "Jane",
		Email:   "jane@example.com",
		Message: strings.Repeat("a", 5001),
		Phone:   strPtr(strings.Repeat("1", 40)),
	})

	verr, ok := AsValidationError(err)
	require.True(t, ok)
	assert.True(t, verr.HasField("message"))
	assert.True(t, verr.HasField("phone"))
	assert.False(t, verr.HasField("name"))
}

func TestValidationErrorMatchesCode(t *testing.T) {
	_, err := ValidateInquiry(&InquiryPayload{})

	assert.True(t, errors.Is(err, apperrors.New(apperrors.ErrCodeValidation, "")))
	assert.False(t, apperrors.IsSubmissionFailed(err))
}

func TestValidateInquiryEmailSyntax(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"jane@example.com", true},
		{"jane.doe+leads@sub.example.co", true},
		{"not-an-email", false},
		{"jane@", false},
		{"@example.com", false},
		{"jane doe@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			_, err := ValidateInquiry(&InquiryPayload{Name: "Jane", Email: tt.email, Message: "x"})
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			verr, ok := AsValidationError(err)
			require.True(t, ok)
			assert.True(t, verr.HasField("email"))
		})
	}
}
