package commands

import (
	"errors"
	"net/mail"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

var (
	ErrCreateCustomerCommandIsNotConstructed = errors.New(
		"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
	)
	ErrFirstNameIsRequired = errors.New("first name is required")
	ErrLastNameIsRequired  = errors.New("last name is required")
)

// CreateCustomerCommand represents a request to register a new customer.
//
// Example:
//
//	cmd, err := NewCreateCustomerCommand("Ada", "Lovelace", "ada@example.com", "+1 555 0100")
//	if err != nil {
//	    return fmt.Errorf("invalid customer data: %w", err)
//	}
//
//	handler := NewCreateCustomerCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create customer: %w", err)
//	}
//	fmt.Printf("Created customer with ID: %s", cmd.CustomerID())
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	firstName  string
	lastName   string
	email      string
	phone      string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a new customer.
// Automatically generates a unique ID. Validates that both names are
// non-empty and that the email, when given, parses as an address.
func NewCreateCustomerCommand(firstName, lastName, email, phone string) (CreateCustomerCommand, error) {
	command := CreateCustomerCommand{
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(kernel.NewUUID()),
		command.setFirstName(firstName),
		command.setLastName(lastName),
		command.setEmail(email),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// CustomerID returns the generated customer ID.
func (c CreateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// FirstName returns the customer's first name.
func (c CreateCustomerCommand) FirstName() string {
	return c.firstName
}

// LastName returns the customer's last name.
func (c CreateCustomerCommand) LastName() string {
	return c.lastName
}

// Email returns the customer's email, possibly empty.
func (c CreateCustomerCommand) Email() string {
	return c.email
}

// Phone returns the customer's phone number, possibly empty.
func (c CreateCustomerCommand) Phone() string {
	return c.phone
}

func (c *CreateCustomerCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.customerID = id
	return nil
}

func (c *CreateCustomerCommand) setFirstName(firstName string) error {
	if firstName == "" {
		return ErrFirstNameIsRequired
	}

	c.firstName = firstName
	return nil
}

func (c *CreateCustomerCommand) setLastName(lastName string) error {
	if lastName == "" {
		return ErrLastNameIsRequired
	}

	c.lastName = lastName
	return nil
}

func (c *CreateCustomerCommand) setEmail(email string) error {
	if email == "" {
		return nil
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}

	c.email = email
	return nil
}
