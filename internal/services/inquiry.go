package services

import (
	"context"
	"log"

	"consultsite/internal/domain"
	"consultsite/internal/metrics"
)

// DocumentInserter persists a document and returns the identifier the store assigned
type DocumentInserter interface {
	Insert(ctx context.Context, collection string, doc any) (string, error)
}

// ServiceCatalogue answers whether a service id is offered
type ServiceCatalogue interface {
	HasService(id string) bool
}

// InquiryService implements the inquiry submission write path
type InquiryService struct {
	store     DocumentInserter
	catalogue ServiceCatalogue
}

// NewInquiryService creates a new inquiry service. catalogue may be nil.
func NewInquiryService(store DocumentInserter, catalogue ServiceCatalogue) *InquiryService {
	return &InquiryService{
		store:     store,
		catalogue: catalogue,
	}
}

// Submit validates p and stores it in the inquiry collection.
// A *ValidationError is returned unchanged and nothing is written; storage
// failures come back as SUBMISSION_FAILED wrapping the store error.
func (s *InquiryService) Submit(ctx context.Context, p *InquiryPayload) (string, error) {
	inquiry, err := ValidateInquiry(p)
	if err != nil {
		log.Printf("[INQUIRY] Submit failed: validation error: %v", err)
		metrics.RecordInquirySubmission(metrics.OutcomeInvalid)
		return "", err
	}

	if inquiry.Service != nil && s.catalogue != nil && !s.catalogue.HasService(*inquiry.Service) {
		log.Printf("[INQUIRY] Unknown service interest %q accepted as-is", *inquiry.Service)
	}

	id, err := s.store.Insert(ctx, domain.InquiryCollection, inquiry)
	if err != nil {
		log.Printf("[INQUIRY] Submit failed: storage error: %v", err)
		metrics.RecordInquirySubmission(metrics.OutcomeFailed)
		return "", NewSubmissionFailed(err)
	}

	log.Printf("[INQUIRY] Submit successful: id=%s", id)
	metrics.RecordInquirySubmission(metrics.OutcomeOK)
	return id, nil
}
