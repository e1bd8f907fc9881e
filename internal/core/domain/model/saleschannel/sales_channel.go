package saleschannel

import (
	"errors"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

// Domain errors for sales channel operations.
var (
	// ErrNameIsRequired is returned when attempting to create a sales channel
	// without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrSalesChannelIsNotConstructed is returned when using an improperly
	// initialized SalesChannel.
	ErrSalesChannelIsNotConstructed = errors.New("SalesChannel must be created via NewSalesChannel or RestoreSalesChannel constructor")
)

// SalesChannel is a marketplace or storefront that orders originate from
// (Etsy, eBay, the shop's own site, in-person sales). Orders reference a
// channel optionally; direct orders carry none.
//
// Business rules:
//   - The name is non-empty
//   - The commission rate is a percentage in [0, 100]
type SalesChannel struct {
	id             kernel.UUID
	name           string
	websiteURL     string
	commissionRate float64
	notes          string

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewSalesChannel creates a new SalesChannel.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - name: channel name (must be non-empty)
//   - websiteURL: optional storefront URL
//   - commissionRate: percentage the channel keeps, in [0, 100]
//   - now: creation instant used for the created/updated timestamps
func NewSalesChannel(id kernel.UUID, name, websiteURL string, commissionRate float64, now time.Time) (*SalesChannel, error) {
	channel := &SalesChannel{
		websiteURL: websiteURL,
		createdAt:  now,
		updatedAt:  now,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		channel.setID(id),
		channel.setName(name),
		channel.setCommissionRate(commissionRate),
	); err != nil {
		return nil, err
	}

	return channel, nil
}

// RestoreSalesChannelParams carries the persisted state of a sales channel
// back into the domain. Used only by the persistence layer.
type RestoreSalesChannelParams struct {
	ID             kernel.UUID
	Name           string
	WebsiteURL     string
	CommissionRate float64
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// RestoreSalesChannel reconstructs a SalesChannel from persistence.
func RestoreSalesChannel(p RestoreSalesChannelParams) (*SalesChannel, error) {
	channel := &SalesChannel{
		websiteURL: p.WebsiteURL,
		notes:      p.Notes,
		createdAt:  p.CreatedAt,
		updatedAt:  p.UpdatedAt,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		channel.setID(p.ID),
		channel.setName(p.Name),
		channel.setCommissionRate(p.CommissionRate),
	); err != nil {
		return nil, err
	}

	return channel, nil
}

// Validate ensures the SalesChannel instance was properly constructed.
func (s *SalesChannel) Validate() error {
	if s == nil {
		return ErrSalesChannelIsNotConstructed
	}
	return s.guard.Validate(ErrSalesChannelIsNotConstructed)
}

// IsEqual compares two sales channels by their unique identifiers.
func (s *SalesChannel) IsEqual(other *SalesChannel) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the channel's unique identifier.
func (s *SalesChannel) ID() kernel.UUID {
	return s.id
}

// Name returns the channel name.
func (s *SalesChannel) Name() string {
	return s.name
}

// WebsiteURL returns the storefront URL, empty for offline channels.
func (s *SalesChannel) WebsiteURL() string {
	return s.websiteURL
}

// CommissionRate returns the percentage the channel keeps per sale.
func (s *SalesChannel) CommissionRate() float64 {
	return s.commissionRate
}

// Notes returns the free-text note on the channel.
func (s *SalesChannel) Notes() string {
	return s.notes
}

// CreatedAt returns the creation instant.
func (s *SalesChannel) CreatedAt() time.Time {
	return s.createdAt
}

// UpdatedAt returns the last mutation instant.
func (s *SalesChannel) UpdatedAt() time.Time {
	return s.updatedAt
}

// SetNotes replaces the free-text note.
func (s *SalesChannel) SetNotes(notes string, now time.Time) {
	s.notes = notes
	s.updatedAt = now
}

// setID sets the channel's unique identifier with validation.
func (s *SalesChannel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	s.id = id
	return nil
}

// setName sets the channel name with validation.
func (s *SalesChannel) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	s.name = name
	return nil
}

// setCommissionRate sets the commission percentage with range validation.
func (s *SalesChannel) setCommissionRate(rate float64) error {
	if rate < 0 || rate > 100 {
		return errs.NewValueIsOutOfRangeError("commission rate", rate, 0, 100)
	}

	s.commissionRate = rate
	return nil
}
