package model

import (
	"crypto/rand"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID
func NewULID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}

// UnassignedCustomer is the sentinel customer name used for entries
// that have no customer link.
const UnassignedCustomer = "Unassigned"

// DefaultDescription is substituted when an entry is saved with an
// empty description.
const DefaultDescription = "No description"

type EntryType string

const (
	// TypeManual marks entries entered by hand as hours and minutes.
	TypeManual EntryType = "manual"
	// TypeAutomatic marks entries recorded by the running stopwatch.
	TypeAutomatic EntryType = "automatic"
)

// Label returns the display label for an entry type.
func (t EntryType) Label() string {
	if t == TypeManual {
		return "Manual Entry"
	}
	return "Timer"
}

// TimeEntry is one recorded span of work, manual or timer-derived.
// DurationMS is elapsed time in milliseconds and is never negative.
type TimeEntry struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Customer    string    `json:"customer"`
	DurationMS  int64     `json:"duration_ms"`
	Timestamp   time.Time `json:"timestamp"`
	Type        EntryType `json:"type"`
}

// Normalize applies the entry defaults: empty descriptions become
// [DefaultDescription] and a missing customer becomes [UnassignedCustomer].
func (e *TimeEntry) Normalize() {
	if strings.TrimSpace(e.Description) == "" {
		e.Description = DefaultDescription
	}
	if strings.TrimSpace(e.Customer) == "" {
		e.Customer = UnassignedCustomer
	}
}

// Validate checks the entry invariants before it is persisted.
func (e *TimeEntry) Validate() error {
	if e.DurationMS < 0 {
		return &ValidationError{Field: "duration", Message: "duration must not be negative"}
	}
	if e.Type != TypeManual && e.Type != TypeAutomatic {
		return &ValidationError{Field: "type", Message: fmt.Sprintf("unknown entry type %q", e.Type)}
	}
	return nil
}

// Customer is a directory record. Name is the primary grouping key for
// reports; the contact fields are optional.
type Customer struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	BillingContact string `json:"billing_contact,omitempty"`
	BillingEmail   string `json:"billing_email,omitempty"`
	BillingPhone   string `json:"billing_phone,omitempty"`
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Validate checks that the customer can be persisted: the name must be
// non-empty and any populated email field must look like local@domain.tld.
// Phone fields are free-form.
func (c *Customer) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return &ValidationError{Field: "name", Message: "customer name is required"}
	}
	if c.Email != "" && !emailPattern.MatchString(c.Email) {
		return &ValidationError{Field: "email", Message: fmt.Sprintf("invalid email address %q", c.Email)}
	}
	if c.BillingEmail != "" && !emailPattern.MatchString(c.BillingEmail) {
		return &ValidationError{Field: "billing_email", Message: fmt.Sprintf("invalid email address %q", c.BillingEmail)}
	}
	return nil
}

// ValidationError reports a field that blocks saving a record. It is
// surfaced to the user and never fatal.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
