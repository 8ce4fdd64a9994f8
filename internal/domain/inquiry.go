package domain

import "time"

// InquiryCollection is the document store collection holding inquiries
const InquiryCollection = "inquiry"

// Inquiry represents a validated contact/lead submission.
// Optional fields are nil when absent and omitted from the stored document.
type Inquiry struct {
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Company   *string   `json:"company,omitempty" bson:"company,omitempty"`
	Phone     *string   `json:"phone,omitempty" bson:"phone,omitempty"`
	Message   string    `json:"message" bson:"message"`
	Service   *string   `json:"service,omitempty" bson:"service,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
