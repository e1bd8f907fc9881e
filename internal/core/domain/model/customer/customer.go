package customer

import (
	"errors"
	"net/mail"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

// Domain errors for customer operations.
var (
	// ErrFirstNameIsRequired is returned when attempting to create a customer
	// without a first name.
	ErrFirstNameIsRequired = errs.NewValueIsRequiredError("first name")
	// ErrLastNameIsRequired is returned when attempting to create a customer
	// without a last name.
	ErrLastNameIsRequired = errs.NewValueIsRequiredError("last name")
	// ErrCustomerIsNotConstructed is returned when using an improperly
	// initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer constructor")
)

// Customer is the aggregate root for a buyer in the order ledger.
// A customer owns orders; the only hard requirements are a first and last
// name, everything else is contact detail filled in as it becomes known.
//
// Business rules:
//   - First and last name are non-empty
//   - The email, when present, must be a parseable address; uniqueness is
//     enforced by the persistence layer
type Customer struct {
	id        kernel.UUID
	firstName string
	lastName  string
	email     string
	phone     string

	addressLine1  string
	addressLine2  string
	city          string
	stateProvince string
	postalCode    string
	country       string

	notes string

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewCustomer creates a new Customer with the required name fields.
// Contact details and the address block are attached through setters.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - firstName, lastName: must be non-empty
//   - email: optional; must parse as an address when given
//   - now: creation instant used for the created/updated timestamps
func NewCustomer(id kernel.UUID, firstName, lastName, email string, now time.Time) (*Customer, error) {
	customer := &Customer{
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setID(id),
		customer.setFirstName(firstName),
		customer.setLastName(lastName),
		customer.setEmail(email),
	); err != nil {
		return nil, err
	}

	return customer, nil
}

// RestoreCustomerParams carries the full persisted state of a customer back
// into the domain. Used only by the persistence layer.
type RestoreCustomerParams struct {
	ID        kernel.UUID
	FirstName string
	LastName  string
	Email     string
	Phone     string

	AddressLine1  string
	AddressLine2  string
	City          string
	StateProvince string
	PostalCode    string
	Country       string

	Notes string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RestoreCustomer reconstructs a Customer from persistence.
func RestoreCustomer(p RestoreCustomerParams) (*Customer, error) {
	customer := &Customer{
		phone:         p.Phone,
		addressLine1:  p.AddressLine1,
		addressLine2:  p.AddressLine2,
		city:          p.City,
		stateProvince: p.StateProvince,
		postalCode:    p.PostalCode,
		country:       p.Country,
		notes:         p.Notes,
		createdAt:     p.CreatedAt,
		updatedAt:     p.UpdatedAt,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setID(p.ID),
		customer.setFirstName(p.FirstName),
		customer.setLastName(p.LastName),
		customer.setEmail(p.Email),
	); err != nil {
		return nil, err
	}

	return customer, nil
}

// Validate ensures the Customer instance was properly constructed.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// IsEqual compares two customers by their unique identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// FirstName returns the customer's first name.
func (c *Customer) FirstName() string {
	return c.firstName
}

// LastName returns the customer's last name.
func (c *Customer) LastName() string {
	return c.lastName
}

// FullName returns the display name "First Last".
func (c *Customer) FullName() string {
	return c.firstName + " " + c.lastName
}

// Email returns the customer's email address, empty when unknown.
func (c *Customer) Email() string {
	return c.email
}

// Phone returns the customer's phone number, empty when unknown.
func (c *Customer) Phone() string {
	return c.phone
}

// AddressLine1 returns the first street address line.
func (c *Customer) AddressLine1() string {
	return c.addressLine1
}

// AddressLine2 returns the second street address line.
func (c *Customer) AddressLine2() string {
	return c.addressLine2
}

// City returns the customer's city.
func (c *Customer) City() string {
	return c.city
}

// StateProvince returns the customer's state or province.
func (c *Customer) StateProvince() string {
	return c.stateProvince
}

// PostalCode returns the customer's postal code.
func (c *Customer) PostalCode() string {
	return c.postalCode
}

// Country returns the customer's country.
func (c *Customer) Country() string {
	return c.country
}

// Notes returns the free-text note on the customer.
func (c *Customer) Notes() string {
	return c.notes
}

// CreatedAt returns the creation instant.
func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}

// UpdatedAt returns the last mutation instant.
func (c *Customer) UpdatedAt() time.Time {
	return c.updatedAt
}

// SetPhone replaces the phone number.
func (c *Customer) SetPhone(phone string, now time.Time) {
	c.phone = phone
	c.updatedAt = now
}

// SetAddress replaces the full address block.
func (c *Customer) SetAddress(line1, line2, city, stateProvince, postalCode, country string, now time.Time) {
	c.addressLine1 = line1
	c.addressLine2 = line2
	c.city = city
	c.stateProvince = stateProvince
	c.postalCode = postalCode
	c.country = country
	c.updatedAt = now
}

// SetNotes replaces the free-text note.
func (c *Customer) SetNotes(notes string, now time.Time) {
	c.notes = notes
	c.updatedAt = now
}

// setID sets the customer's unique identifier with validation.
func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

// setFirstName sets the customer's first name with validation.
func (c *Customer) setFirstName(firstName string) error {
	if firstName == "" {
		return ErrFirstNameIsRequired
	}

	c.firstName = firstName
	return nil
}

// setLastName sets the customer's last name with validation.
func (c *Customer) setLastName(lastName string) error {
	if lastName == "" {
		return ErrLastNameIsRequired
	}

	c.lastName = lastName
	return nil
}

// setEmail sets the customer's email with format validation.
// An empty email is allowed: walk-in customers may not leave one.
func (c *Customer) setEmail(email string) error {
	if email == "" {
		c.email = ""
		return nil
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}

	c.email = email
	return nil
}
