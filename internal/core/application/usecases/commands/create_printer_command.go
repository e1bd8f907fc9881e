package commands

import (
	"errors"
	"fmt"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var (
	ErrCreatePrinterCommandIsNotConstructed = errors.New(
		"CreatePrinterCommand must be created via NewCreatePrinterCommand constructor",
	)
	ErrPrinterNameIsRequired         = errors.New("printer name is required")
	ErrPrinterModelIsRequired        = errors.New("printer model is required")
	ErrPrinterManufacturerIsRequired = errors.New("printer manufacturer is required")
)

// CreatePrinterCommand represents a request to register a new printer in
// the fleet.
type CreatePrinterCommand struct { //nolint:recvcheck //using for validation
	printerID    kernel.UUID
	name         string
	model        string
	manufacturer string

	buildVolumeX int
	buildVolumeY int
	buildVolumeZ int

	ipAddress string
	apiKey    string

	guard guard.ConstructorGuard
}

// NewCreatePrinterCommand creates a command to register a new printer.
// Automatically generates a unique ID. The identity fields must be
// non-empty and the build volume dimensions positive; the network endpoint
// is optional.
func NewCreatePrinterCommand(name, model, manufacturer string, buildX, buildY, buildZ int, ipAddress, apiKey string) (CreatePrinterCommand, error) {
	command := CreatePrinterCommand{
		ipAddress: ipAddress,
		apiKey:    apiKey,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPrinterID(kernel.NewUUID()),
		command.setName(name),
		command.setModel(model),
		command.setManufacturer(manufacturer),
		command.setBuildVolume(buildX, buildY, buildZ),
	); err != nil {
		return CreatePrinterCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePrinterCommand) Validate() error {
	return c.guard.Validate(ErrCreatePrinterCommandIsNotConstructed)
}

// PrinterID returns the generated printer ID.
func (c CreatePrinterCommand) PrinterID() kernel.UUID {
	return c.printerID
}

// Name returns the shop-floor name.
func (c CreatePrinterCommand) Name() string {
	return c.name
}

// Model returns the hardware model.
func (c CreatePrinterCommand) Model() string {
	return c.model
}

// Manufacturer returns the hardware manufacturer.
func (c CreatePrinterCommand) Manufacturer() string {
	return c.manufacturer
}

// BuildVolumeX returns the X build dimension in millimetres.
func (c CreatePrinterCommand) BuildVolumeX() int {
	return c.buildVolumeX
}

// BuildVolumeY returns the Y build dimension in millimetres.
func (c CreatePrinterCommand) BuildVolumeY() int {
	return c.buildVolumeY
}

// BuildVolumeZ returns the Z build dimension in millimetres.
func (c CreatePrinterCommand) BuildVolumeZ() int {
	return c.buildVolumeZ
}

// IPAddress returns the firmware API address, possibly empty.
func (c CreatePrinterCommand) IPAddress() string {
	return c.ipAddress
}

// APIKey returns the firmware API credential, possibly empty.
func (c CreatePrinterCommand) APIKey() string {
	return c.apiKey
}

func (c *CreatePrinterCommand) setPrinterID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.printerID = id
	return nil
}

func (c *CreatePrinterCommand) setName(name string) error {
	if name == "" {
		return ErrPrinterNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreatePrinterCommand) setModel(model string) error {
	if model == "" {
		return ErrPrinterModelIsRequired
	}

	c.model = model
	return nil
}

func (c *CreatePrinterCommand) setManufacturer(manufacturer string) error {
	if manufacturer == "" {
		return ErrPrinterManufacturerIsRequired
	}

	c.manufacturer = manufacturer
	return nil
}

func (c *CreatePrinterCommand) setBuildVolume(x, y, z int) error {
	if x <= 0 || y <= 0 || z <= 0 {
		return fmt.Errorf("build volume %d x %d x %d mm has a non-positive dimension", x, y, z)
	}

	c.buildVolumeX, c.buildVolumeY, c.buildVolumeZ = x, y, z
	return nil
}
