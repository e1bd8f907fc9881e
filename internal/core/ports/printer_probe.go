package ports

import (
	"context"

	"printshop/internal/core/domain/model/printer"
)

// ProbeResult is the firmware-reported state of a printer.
type ProbeResult struct {
	// Status is the printer state mapped onto the domain status set.
	Status printer.Status
	// Progress is the firmware-reported completion percentage of the
	// running job, negative when the firmware reports none.
	Progress float64
}

// PrinterProbe queries a printer's firmware API for its current state.
// Implementations must honor the context deadline: an unreachable printer
// is reported through a TimeoutError, and a cancelled probe applies no
// state.
type PrinterProbe interface {
	Probe(ctx context.Context, p *printer.Printer) (ProbeResult, error)
}
