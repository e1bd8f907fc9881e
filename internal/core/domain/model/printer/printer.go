package printer

import (
	"errors"
	"fmt"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

// Domain errors for printer operations.
var (
	// ErrNameIsRequired is returned when attempting to create a printer
	// without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrModelIsRequired is returned when attempting to create a printer
	// without a model.
	ErrModelIsRequired = errs.NewValueIsRequiredError("model")
	// ErrManufacturerIsRequired is returned when attempting to create a
	// printer without a manufacturer.
	ErrManufacturerIsRequired = errs.NewValueIsRequiredError("manufacturer")
	// ErrPrinterIsNotConstructed is returned when using an improperly
	// initialized Printer.
	ErrPrinterIsNotConstructed = errors.New("Printer must be created via NewPrinter or RestorePrinter constructor")
)

// Printer is the aggregate root for a machine on the shop floor. It holds
// the hardware identity (name, model, manufacturer, build volume), the
// current operational status, and the optional network endpoint used by the
// firmware poller.
//
// Business rules:
//   - Name, model, and manufacturer are non-empty
//   - Build volume dimensions are positive millimetres
//   - Status changes stay within the closed status set
type Printer struct {
	id           kernel.UUID
	name         string
	model        string
	manufacturer string

	buildVolumeX int
	buildVolumeY int
	buildVolumeZ int

	status    Status
	ipAddress string
	apiKey    string
	notes     string

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewPrinter creates a new Printer in Idle status.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - name: shop-floor name (must be non-empty)
//   - model, manufacturer: hardware identity (must be non-empty)
//   - buildX, buildY, buildZ: build volume in millimetres (must be positive)
//   - now: creation instant used for the created/updated timestamps
func NewPrinter(id kernel.UUID, name, model, manufacturer string, buildX, buildY, buildZ int, now time.Time) (*Printer, error) {
	printer := &Printer{
		status:    Idle,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		printer.setID(id),
		printer.setName(name),
		printer.setModel(model),
		printer.setManufacturer(manufacturer),
		printer.setBuildVolume(buildX, buildY, buildZ),
	); err != nil {
		return nil, err
	}

	return printer, nil
}

// RestorePrinterParams carries the persisted state of a printer back into
// the domain. Used only by the persistence layer.
type RestorePrinterParams struct {
	ID           kernel.UUID
	Name         string
	Model        string
	Manufacturer string

	BuildVolumeX int
	BuildVolumeY int
	BuildVolumeZ int

	Status    Status
	IPAddress string
	APIKey    string
	Notes     string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RestorePrinter reconstructs a Printer from persistence. It rejects
// unknown status values so corrupt rows cannot become live aggregates.
func RestorePrinter(p RestorePrinterParams) (*Printer, error) {
	printer := &Printer{
		ipAddress: p.IPAddress,
		apiKey:    p.APIKey,
		notes:     p.Notes,
		createdAt: p.CreatedAt,
		updatedAt: p.UpdatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		printer.setID(p.ID),
		printer.setName(p.Name),
		printer.setModel(p.Model),
		printer.setManufacturer(p.Manufacturer),
		printer.setBuildVolume(p.BuildVolumeX, p.BuildVolumeY, p.BuildVolumeZ),
		printer.setStatus(p.Status),
	); err != nil {
		return nil, err
	}

	return printer, nil
}

// Validate ensures the Printer instance was properly constructed.
func (p *Printer) Validate() error {
	if p == nil {
		return ErrPrinterIsNotConstructed
	}
	return p.guard.Validate(ErrPrinterIsNotConstructed)
}

// IsEqual compares two printers by their unique identifiers.
func (p *Printer) IsEqual(other *Printer) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the printer's unique identifier.
func (p *Printer) ID() kernel.UUID {
	return p.id
}

// Name returns the shop-floor name of the printer.
func (p *Printer) Name() string {
	return p.name
}

// Model returns the hardware model.
func (p *Printer) Model() string {
	return p.model
}

// Manufacturer returns the hardware manufacturer.
func (p *Printer) Manufacturer() string {
	return p.manufacturer
}

// BuildVolumeX returns the X dimension of the build volume in millimetres.
func (p *Printer) BuildVolumeX() int {
	return p.buildVolumeX
}

// BuildVolumeY returns the Y dimension of the build volume in millimetres.
func (p *Printer) BuildVolumeY() int {
	return p.buildVolumeY
}

// BuildVolumeZ returns the Z dimension of the build volume in millimetres.
func (p *Printer) BuildVolumeZ() int {
	return p.buildVolumeZ
}

// BuildVolume returns the display string "X x Y x Z mm".
func (p *Printer) BuildVolume() string {
	return fmt.Sprintf("%d x %d x %d mm", p.buildVolumeX, p.buildVolumeY, p.buildVolumeZ)
}

// Status returns the current operational status.
func (p *Printer) Status() Status {
	return p.status
}

// IPAddress returns the network address of the printer's firmware API,
// empty for printers without network control.
func (p *Printer) IPAddress() string {
	return p.ipAddress
}

// APIKey returns the credential for the firmware API, empty when not set.
func (p *Printer) APIKey() string {
	return p.apiKey
}

// Notes returns the free-text note on the printer.
func (p *Printer) Notes() string {
	return p.notes
}

// CreatedAt returns the creation instant.
func (p *Printer) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns the last mutation instant.
func (p *Printer) UpdatedAt() time.Time {
	return p.updatedAt
}

// ChangeStatus moves the printer to a new operational status. Any member of
// the known set is reachable from any other: the printer mirrors the state
// reported by the machine, it does not gate it.
func (p *Printer) ChangeStatus(target Status, now time.Time) error {
	if err := target.Validate(); err != nil {
		return err
	}

	p.status = target
	p.updatedAt = now
	return nil
}

// SetNetworkEndpoint records the firmware API address and credential.
func (p *Printer) SetNetworkEndpoint(ipAddress, apiKey string, now time.Time) {
	p.ipAddress = ipAddress
	p.apiKey = apiKey
	p.updatedAt = now
}

// SetNotes replaces the free-text note.
func (p *Printer) SetNotes(notes string, now time.Time) {
	p.notes = notes
	p.updatedAt = now
}

// setID sets the printer's unique identifier with validation.
func (p *Printer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	p.id = id
	return nil
}

// setName sets the printer's name with validation.
func (p *Printer) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	p.name = name
	return nil
}

// setModel sets the hardware model with validation.
func (p *Printer) setModel(model string) error {
	if model == "" {
		return ErrModelIsRequired
	}

	p.model = model
	return nil
}

// setManufacturer sets the hardware manufacturer with validation.
func (p *Printer) setManufacturer(manufacturer string) error {
	if manufacturer == "" {
		return ErrManufacturerIsRequired
	}

	p.manufacturer = manufacturer
	return nil
}

// setBuildVolume sets the build volume with per-axis validation.
func (p *Printer) setBuildVolume(x, y, z int) error {
	ve := errs.NewValidationErrors()
	if x <= 0 {
		ve.Add("buildVolumeX", fmt.Sprintf("%d mm is not a positive dimension", x))
	}
	if y <= 0 {
		ve.Add("buildVolumeY", fmt.Sprintf("%d mm is not a positive dimension", y))
	}
	if z <= 0 {
		ve.Add("buildVolumeZ", fmt.Sprintf("%d mm is not a positive dimension", z))
	}
	if err := ve.AsError(); err != nil {
		return err
	}

	p.buildVolumeX, p.buildVolumeY, p.buildVolumeZ = x, y, z
	return nil
}

// setStatus sets the operational status with validation.
func (p *Printer) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	p.status = status
	return nil
}
