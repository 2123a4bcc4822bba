package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// ApplicationStatus is derived: an application is pending iff no mark
// references it, otherwise it carries the mark's status.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// Application is a join-form submission in the nodex_apps collection.
type Application struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	StudentID  string    `json:"studentId"`
	Phone      string    `json:"phone"`
	Department string    `json:"department"`
	Year       string    `json:"year"`
	Skills     []string  `json:"skills"`
	Motivation string    `json:"motivation"`
	ModRemarks string    `json:"modRemarks"`
	Created    time.Time `json:"created"`

	// Status and Mark are filled in by the application usecase when listing;
	// the record store itself only knows nodex_apps and marked_apps rows.
	Status ApplicationStatus  `json:"status,omitempty"`
	Mark   *MarkedApplication `json:"mark,omitempty"`
}

// MarkedApplication is the accept/reject audit row in marked_apps. Its
// existence is what makes an application non-pending.
type MarkedApplication struct {
	ID            string            `json:"id"`
	ApplicationID string            `json:"applicationId"`
	Status        ApplicationStatus `json:"status"`
	Remarks       string            `json:"remarks"`
	Reviewer      string            `json:"reviewer"`
	ReviewedAt    null.Time         `json:"reviewedAt,omitempty"`
	Created       time.Time         `json:"created"`
}

// JoinInput represents a public join-form submission
type JoinInput struct {
	Name       string   `json:"name" binding:"required,min=2,max=100"`
	Email      string   `json:"email" binding:"required,email"`
	StudentID  string   `json:"studentId" binding:"required"`
	Phone      string   `json:"phone"`
	Department string   `json:"department" binding:"required"`
	Year       string   `json:"year" binding:"required"`
	Skills     []string `json:"skills"`
	Motivation string   `json:"motivation" binding:"required,min=10"`
}

// MarkInput represents a recruiter's accept/reject decision
type MarkInput struct {
	Status  string `json:"status" binding:"required,oneof=approved rejected"`
	Remarks string `json:"remarks" binding:"required"`
}

// RollbackInput represents reverting a previous decision
type RollbackInput struct {
	Reason string `json:"reason" binding:"required"`
}
