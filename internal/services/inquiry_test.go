package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consultsite/internal/domain"
	apperrors "consultsite/pkg/errors"
)

// fakeStore records inserts; err, when set, is returned instead of writing
type fakeStore struct {
	mu   sync.Mutex
	docs map[string]any
	cols []string
	err  error
	next int
}

func newFakeStore() *fakeStore {
	return &fakeStore{docs: make(map[string]any)}
}

func (f *fakeStore) Insert(ctx context.Context, collection string, doc any) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	f.next++
	id := fmt.Sprintf("doc-%d", f.next)
	f.docs[id] = doc
	f.cols = append(f.cols, collection)
	return id, nil
}

type fakeCatalogue map[string]bool

func (c fakeCatalogue) HasService(id string) bool { return c[id] }

var (
	errUnavailable = apperrors.New(apperrors.ErrCodeStorageUnavailable, "document store not connected")
	errWrite       = apperrors.Wrap(apperrors.ErrCodeStorageWriteFailed, "connection reset by peer", errors.New("connection reset by peer"))
)

func TestSubmitScenarioA(t *testing.T) {
	store := newFakeStore()
	svc := NewInquiryService(store, nil)

	id, err := svc.Submit(context.Background(), &InquiryPayload{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Message: "Need architecture help",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, id)
	require.Len(t, store.docs, 1)
	assert.Equal(t, []string{domain.InquiryCollection}, store.cols)

	inquiry, ok := store.docs[id].(*domain.Inquiry)
	require.True(t, ok)
	assert.Equal(t, "Jane Doe", inquiry.Name)
	assert.Equal(t, "jane@example.com", inquiry.Email)
	assert.Equal(t, "Need architecture help", inquiry.Message)
	assert.Nil(t, inquiry.Company)
}

func TestSubmitScenarioBEmptyName(t *testing.T) {
	store := newFakeStore()
	svc := NewInquiryService(store, nil)

	_, err := svc.Submit(context.Background(), &InquiryPayload{Name: "", Email: "jane@example.com", Message: "x"})

	verr, ok := AsValidationError(err)
	require.True(t, ok)
	assert.True(t, verr.HasField("name"))
	assert.Contains(t, err.Error(), "name")
	assert.Empty(t, store.docs)
}

func TestSubmitScenarioCInvalidEmail(t *testing.T) {
	store := newFakeStore()
	svc := NewInquiryService(store, nil)

	_, err := svc.Submit(context.Background(), &InquiryPayload{Name: "Jane", Email: "not-an-email", Message: "x"})

	verr, ok := AsValidationError(err)
	require.True(t, ok)
	assert.True(t, verr.HasField("email"))
	assert.Empty(t, store.docs)
}

func TestSubmitScenarioDStoreUnavailable(t *testing.T) {
	store := newFakeStore()
	store.err = errUnavailable
	svc := NewInquiryService(store, nil)

	id, err := svc.Submit(context.Background(), &InquiryPayload{Name: "Jane", Email: "jane@example.com", Message: "x"})

	assert.Empty(t, id)
	require.Error(t, err)
	assert.True(t, apperrors.IsSubmissionFailed(err))
	assert.True(t, apperrors.IsStorageUnavailable(err))
	assert.ErrorIs(t, err, errUnavailable)
	assert.Empty(t, store.docs)

	_, isValidation := AsValidationError(err)
	assert.False(t, isValidation)
}

func TestSubmitWriteFailureKeepsShortMessage(t *testing.T) {
	store := newFakeStore()
	store.err = errWrite
	svc := NewInquiryService(store, nil)

	_, err := svc.Submit(context.Background(), &InquiryPayload{Name: "Jane", Email: "jane@example.com", Message: "x"})

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeSubmissionFailed, appErr.Code)
	assert.Equal(t, "failed to save inquiry: connection reset by peer", appErr.Message)
	assert.True(t, apperrors.IsStorageWriteFailed(err))
}

func TestSubmitRejectsWhitespaceOnlyRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		payload InquiryPayload
		field   string
	}{
		{"name", InquiryPayload{Name: "   ", Email: "jane@example.com", Message: "x"}, "name"},
		{"email", InquiryPayload{Name: "Jane", Email: "\t", Message: "x"}, "email"},
		{"message", InquiryPayload{Name: "Jane", Email: "jane@example.com", Message: "\n  "}, "message"},
		{"missing name", InquiryPayload{Email: "jane@example.com", Message: "x"}, "name"},
		{"missing message", InquiryPayload{Name: "Jane", Email: "jane@example.com"}, "message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			svc := NewInquiryService(store, nil)

			_, err := svc.Submit(context.Background(), &tt.payload)

			verr, ok := AsValidationError(err)
			require.True(t, ok)
			assert.True(t, verr.HasField(tt.field))
			assert.Empty(t, store.docs)
		})
	}
}

func TestSubmitDoesNotDeduplicate(t *testing.T) {
	store := newFakeStore()
	svc := NewInquiryService(store, nil)
	payload := &InquiryPayload{Name: "Jane", Email: "jane@example.com", Message: "same"}

	first, err := svc.Submit(context.Background(), payload)
	require.NoError(t, err)
	second, err := svc.Submit(context.Background(), payload)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Len(t, store.docs, 2)
}

func TestSubmitAcceptsUnknownServiceInterest(t *testing.T) {
	store := newFakeStore()
	svc := NewInquiryService(store, fakeCatalogue{"ai": true})
	service := "catering"

	id, err := svc.Submit(context.Background(), &InquiryPayload{
		Name: "Jane", Email: "jane@example.com", Message: "x", Service: &service,
	})

	require.NoError(t, err)
	inquiry := store.docs[id].(*domain.Inquiry)
	require.NotNil(t, inquiry.Service)
	assert.Equal(t, "catering", *inquiry.Service)
}

func TestSubmitNilPayload(t *testing.T) {
	store := newFakeStore()
	svc := NewInquiryService(store, nil)

	_, err := svc.Submit(context.Background(), nil)

	verr, ok := AsValidationError(err)
	require.True(t, ok)
	assert.True(t, verr.HasField("name"))
	assert.True(t, verr.HasField("email"))
	assert.True(t, verr.HasField("message"))
}
