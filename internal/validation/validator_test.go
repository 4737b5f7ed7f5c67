package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibhu0810/db/internal/types"
	"github.com/vibhu0810/db/internal/validation"
)

func intPtr(v int) *int { return &v }

func TestSampleListingsAreConsistent(t *testing.T) {
	errors := validation.ValidateListings(types.SampleListings())
	assert.Empty(t, errors, validation.FormatErrors(errors))
}

func TestGuestPostListingMissingFields(t *testing.T) {
	listing := types.Listing{
		WebsiteURL:     "example.com",
		DomainRating:   50,
		WebsiteTraffic: 1000,
		Type:           types.TypeGuestPost,
		Guidelines:     "anything",
	}

	errors := validation.ValidateListings([]types.Listing{listing})
	require.Len(t, errors, 2)

	fields := []string{errors[0].Field, errors[1].Field}
	assert.Contains(t, fields, "Guest Post Price")
	assert.Contains(t, fields, "GP TAT (in days)")
	assert.Equal(t, 1, errors[0].Row)
}

func TestNicheEditListingWithGuestPostFields(t *testing.T) {
	listing := types.Listing{
		WebsiteURL:     "example.com",
		DomainRating:   50,
		WebsiteTraffic: 1000,
		Type:           types.TypeNicheEdit,
		GuestPostPrice: intPtr(100),
		GPTATDays:      intPtr(5),
		NicheEditPrice: intPtr(200),
		NETATDays:      intPtr(7),
		Guidelines:     "anything",
	}

	errors := validation.ValidateListings([]types.Listing{listing})
	require.Len(t, errors, 2)
	for _, err := range errors {
		assert.Contains(t, err.Message, `must be absent for type "niche_edit"`)
	}
}

func TestOutOfRangeValues(t *testing.T) {
	listing := types.Listing{
		WebsiteURL:     "example.com",
		DomainRating:   150,
		WebsiteTraffic: -5,
		Type:           types.TypeBoth,
		GuestPostPrice: intPtr(-10),
		GPTATDays:      intPtr(0),
		NicheEditPrice: intPtr(200),
		NETATDays:      intPtr(7),
		Guidelines:     "anything",
	}

	errors := validation.ValidateListings([]types.Listing{listing})
	require.Len(t, errors, 4)

	var fields []string
	for _, err := range errors {
		fields = append(fields, err.Field)
	}
	assert.Contains(t, fields, "Domain Rating")
	assert.Contains(t, fields, "Website Traffic")
	assert.Contains(t, fields, "Guest Post Price")
	assert.Contains(t, fields, "GP TAT (in days)")
}

func TestUnknownTypeStopsConsistencyChecks(t *testing.T) {
	listing := types.Listing{
		WebsiteURL:     "example.com",
		DomainRating:   50,
		WebsiteTraffic: 1000,
		Type:           types.ListingType("sponsored"),
		Guidelines:     "anything",
	}

	errors := validation.ValidateListings([]types.Listing{listing})
	require.Len(t, errors, 1)
	assert.Equal(t, "Type", errors[0].Field)
}

func TestEmptyRequiredText(t *testing.T) {
	listing := types.Listing{
		WebsiteURL:     "  ",
		DomainRating:   50,
		WebsiteTraffic: 1000,
		Type:           types.TypeNicheEdit,
		NicheEditPrice: intPtr(200),
		NETATDays:      intPtr(7),
	}

	errors := validation.ValidateListings([]types.Listing{listing})
	require.Len(t, errors, 2)
	assert.Equal(t, "Website URL", errors[0].Field)
	assert.Equal(t, "Guidelines", errors[1].Field)
}

func TestValidationErrorString(t *testing.T) {
	err := &validation.ValidationError{
		Severity: "error",
		Row:      2,
		Field:    "Domain Rating",
		Value:    "150",
		Message:  "domain rating must be between 0 and 100",
	}
	assert.Equal(t,
		"[ERROR] Row 2, Field 'Domain Rating': domain rating must be between 0 and 100 (value: '150')",
		err.Error())
}

func TestFormatErrors(t *testing.T) {
	assert.Equal(t, "No validation errors", validation.FormatErrors(nil))

	report := validation.FormatErrors([]*validation.ValidationError{
		{Severity: "error", Row: 1, Field: "Type", Value: "x", Message: "bad"},
	})
	assert.Contains(t, report, "Found 1 validation error(s)")
	assert.Contains(t, report, "Field 'Type'")
}
