// =============================================================================
// Domains Template Generator - Sample Data Validation
// =============================================================================
//
// This module checks the template's sample listings against the conventions
// the template documents by example:
//   - Type/price consistency: a guest_post row carries guest post price and
//     TAT but no niche edit fields, a niche_edit row the reverse, and a both
//     row all four
//   - Domain rating within 0-100
//   - Non-negative traffic, positive prices and TATs
//   - Non-empty website URL and guidelines
//
// The generator itself never runs these checks: rows are emitted as-is, and
// the conventions remain documentation in the generated template. The
// 'validate' command exposes them for anyone editing the sample data.
//
// ERROR HANDLING:
//   Errors are collected, not thrown at the first failure. Each error carries
//   the row number, field, and value so a broken sample is easy to locate.
//
// =============================================================================

package validation

import (
	"fmt"
	"strings"

	"github.com/vibhu0810/db/internal/types"
)

// =============================================================================
// VALIDATION ERROR TYPES
// =============================================================================

// ValidationError represents a single validation error.
type ValidationError struct {
	// Severity indicates the severity of the error.
	// "error" = the sample breaks a documented convention
	// "warning" = the sample is unusual but not inconsistent
	Severity string

	// Row is the 1-indexed data row containing the error.
	Row int

	// Field is the name of the field that failed validation.
	Field string

	// Value is the offending value, stringified.
	Value string

	// Message is a human-readable error message.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] Row %d, Field '%s': %s (value: '%s')",
		strings.ToUpper(e.Severity),
		e.Row,
		e.Field,
		e.Message,
		e.Value,
	)
}

// =============================================================================
// LISTING VALIDATION
// =============================================================================

// ValidateListings checks every listing and returns all errors found.
// An empty result means the sample data is consistent.
func ValidateListings(listings []types.Listing) []*ValidationError {
	var errors []*ValidationError
	for i, listing := range listings {
		errors = append(errors, validateListing(listing, i+1)...)
	}
	return errors
}

// validateListing checks a single listing. row is 1-indexed.
func validateListing(l types.Listing, row int) []*ValidationError {
	var errors []*ValidationError

	addError := func(field, value, message string) {
		errors = append(errors, &ValidationError{
			Severity: "error",
			Row:      row,
			Field:    field,
			Value:    value,
			Message:  message,
		})
	}

	// Required text fields.
	if strings.TrimSpace(l.WebsiteURL) == "" {
		addError("Website URL", l.WebsiteURL, "website URL must not be empty")
	}
	if strings.TrimSpace(l.Guidelines) == "" {
		addError("Guidelines", l.Guidelines, "guidelines must not be empty")
	}

	// Score and traffic ranges.
	if l.DomainRating < 0 || l.DomainRating > 100 {
		addError("Domain Rating", fmt.Sprint(l.DomainRating), "domain rating must be between 0 and 100")
	}
	if l.WebsiteTraffic < 0 {
		addError("Website Traffic", fmt.Sprint(l.WebsiteTraffic), "website traffic must not be negative")
	}

	// Listing type.
	switch l.Type {
	case types.TypeGuestPost, types.TypeNicheEdit, types.TypeBoth:
	default:
		addError("Type", string(l.Type), "type must be guest_post, niche_edit, or both")
		return errors // Consistency checks below depend on a valid type.
	}

	// Guest post fields must match the type.
	if l.OffersGuestPost() {
		if l.GuestPostPrice == nil {
			addError("Guest Post Price", "", fmt.Sprintf("required for type %q", l.Type))
		} else if *l.GuestPostPrice <= 0 {
			addError("Guest Post Price", fmt.Sprint(*l.GuestPostPrice), "price must be positive")
		}
		if l.GPTATDays == nil {
			addError("GP TAT (in days)", "", "required when a guest post price is present")
		} else if *l.GPTATDays <= 0 {
			addError("GP TAT (in days)", fmt.Sprint(*l.GPTATDays), "turnaround time must be positive")
		}
	} else {
		if l.GuestPostPrice != nil {
			addError("Guest Post Price", fmt.Sprint(*l.GuestPostPrice), fmt.Sprintf("must be absent for type %q", l.Type))
		}
		if l.GPTATDays != nil {
			addError("GP TAT (in days)", fmt.Sprint(*l.GPTATDays), fmt.Sprintf("must be absent for type %q", l.Type))
		}
	}

	// Niche edit fields must match the type.
	if l.OffersNicheEdit() {
		if l.NicheEditPrice == nil {
			addError("Niche Edit Price", "", fmt.Sprintf("required for type %q", l.Type))
		} else if *l.NicheEditPrice <= 0 {
			addError("Niche Edit Price", fmt.Sprint(*l.NicheEditPrice), "price must be positive")
		}
		if l.NETATDays == nil {
			addError("NE TAT (in days)", "", "required when a niche edit price is present")
		} else if *l.NETATDays <= 0 {
			addError("NE TAT (in days)", fmt.Sprint(*l.NETATDays), "turnaround time must be positive")
		}
	} else {
		if l.NicheEditPrice != nil {
			addError("Niche Edit Price", fmt.Sprint(*l.NicheEditPrice), fmt.Sprintf("must be absent for type %q", l.Type))
		}
		if l.NETATDays != nil {
			addError("NE TAT (in days)", fmt.Sprint(*l.NETATDays), fmt.Sprintf("must be absent for type %q", l.Type))
		}
	}

	return errors
}

// =============================================================================
// ERROR FORMATTING
// =============================================================================

// FormatErrors formats a list of validation errors as a readable report.
func FormatErrors(errors []*ValidationError) string {
	if len(errors) == 0 {
		return "No validation errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d validation error(s):\n", len(errors)))
	for i, err := range errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}
