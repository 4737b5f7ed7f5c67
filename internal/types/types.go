// =============================================================================
// Domains Template Generator - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - template
//   - validation
//   - cmd
//
// =============================================================================

package types

// =============================================================================
// LISTING TYPES
// =============================================================================

// ListingType represents the kind of placement a domain listing offers.
type ListingType string

const (
	// TypeGuestPost is a listing that offers guest posts only.
	TypeGuestPost ListingType = "guest_post"

	// TypeNicheEdit is a listing that offers niche edits only.
	TypeNicheEdit ListingType = "niche_edit"

	// TypeBoth is a listing that offers both guest posts and niche edits.
	TypeBoth ListingType = "both"
)

// Listing represents one example domain listing in the template.
// It is a flat row: optional fields use pointers, and a nil pointer is the
// absence marker that becomes an empty cell in the generated files.
//
// By convention the optional price/TAT fields are populated consistently with
// Type: a guest_post row carries GuestPostPrice and GPTATDays but not the
// niche-edit fields, a niche_edit row the reverse, and a both row all four.
// The generator emits rows as-is and does not enforce this; the 'validate'
// command checks it on demand.
type Listing struct {
	// WebsiteURL is the domain being listed, e.g. "example.com".
	WebsiteURL string

	// DomainRating is the authority score of the domain (0-100).
	DomainRating int

	// WebsiteTraffic is the estimated monthly visits (non-negative).
	WebsiteTraffic int

	// Type indicates which placements the listing offers.
	Type ListingType

	// GuestPostPrice is the guest post price in dollars.
	// Present only when Type is guest_post or both.
	GuestPostPrice *int

	// NicheEditPrice is the niche edit price in dollars.
	// Present only when Type is niche_edit or both.
	NicheEditPrice *int

	// GPTATDays is the guest post turnaround time in days.
	// Present only when GuestPostPrice is present.
	GPTATDays *int

	// NETATDays is the niche edit turnaround time in days.
	// Present only when NicheEditPrice is present.
	NETATDays *int

	// Guidelines is free-text instructions for the listing.
	Guidelines string
}

// OffersGuestPost reports whether the listing's type includes guest posts.
func (l Listing) OffersGuestPost() bool {
	return l.Type == TypeGuestPost || l.Type == TypeBoth
}

// OffersNicheEdit reports whether the listing's type includes niche edits.
func (l Listing) OffersNicheEdit() bool {
	return l.Type == TypeNicheEdit || l.Type == TypeBoth
}

// =============================================================================
// SAMPLE DATA
// =============================================================================

// SampleListings returns the fixed example rows embedded in the template.
// The slice order is the row order in the generated files.
func SampleListings() []Listing {
	return []Listing{
		{
			WebsiteURL:     "example.com",
			DomainRating:   75,
			WebsiteTraffic: 25000,
			Type:           TypeGuestPost,
			GuestPostPrice: intPtr(350),
			GPTATDays:      intPtr(10),
			Guidelines:     "Please provide well-researched content",
		},
		{
			WebsiteURL:     "blog-example.com",
			DomainRating:   68,
			WebsiteTraffic: 18000,
			Type:           TypeNicheEdit,
			NicheEditPrice: intPtr(280),
			NETATDays:      intPtr(7),
			Guidelines:     "No branded anchor text",
		},
		{
			WebsiteURL:     "multi-example.com",
			DomainRating:   72,
			WebsiteTraffic: 32000,
			Type:           TypeBoth,
			GuestPostPrice: intPtr(400),
			NicheEditPrice: intPtr(320),
			GPTATDays:      intPtr(14),
			NETATDays:      intPtr(7),
			Guidelines:     "Must be related to tech industry",
		},
	}
}

// intPtr returns a pointer to v.
func intPtr(v int) *int {
	return &v
}
