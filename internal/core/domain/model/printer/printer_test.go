package printer_test

import (
	"testing"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/printer"
	"printshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrinter(t *testing.T) *printer.Printer {
	t.Helper()
	p, err := printer.NewPrinter(
		kernel.NewUUID(), "Floor-1", "X1 Carbon", "Bambu Lab", 256, 256, 256, time.Now().UTC())
	require.NoError(t, err)
	return p
}

func TestNewPrinter(t *testing.T) {
	now := time.Now().UTC()

	t.Run("creates_idle_printer", func(t *testing.T) {
		p := newTestPrinter(t)

		assert.Equal(t, printer.Idle, p.Status())
		assert.Equal(t, "256 x 256 x 256 mm", p.BuildVolume())
		require.NoError(t, p.Validate())
	})

	t.Run("rejects_missing_identity_fields", func(t *testing.T) {
		_, err := printer.NewPrinter(kernel.NewUUID(), "", "X1", "Bambu Lab", 1, 1, 1, now)
		require.ErrorIs(t, err, printer.ErrNameIsRequired)

		_, err = printer.NewPrinter(kernel.NewUUID(), "Floor-1", "", "Bambu Lab", 1, 1, 1, now)
		require.ErrorIs(t, err, printer.ErrModelIsRequired)

		_, err = printer.NewPrinter(kernel.NewUUID(), "Floor-1", "X1", "", 1, 1, 1, now)
		require.ErrorIs(t, err, printer.ErrManufacturerIsRequired)
	})

	t.Run("rejects_non_positive_build_volume_per_axis", func(t *testing.T) {
		_, err := printer.NewPrinter(kernel.NewUUID(), "Floor-1", "X1", "Bambu Lab", 0, 256, -5, now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		var ve *errs.ValidationErrors
		require.ErrorAs(t, err, &ve)
		assert.Len(t, ve.Fields, 2)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var p printer.Printer

		require.ErrorIs(t, p.Validate(), printer.ErrPrinterIsNotConstructed)
	})
}

func TestPrinter_ChangeStatus(t *testing.T) {
	p := newTestPrinter(t)
	now := time.Now().UTC()

	t.Run("any_known_status_is_reachable", func(t *testing.T) {
		for _, target := range []printer.Status{
			printer.Printing, printer.Paused, printer.Maintenance, printer.Offline, printer.Idle,
		} {
			require.NoError(t, p.ChangeStatus(target, now), target.String())
			assert.Equal(t, target, p.Status())
		}
	})

	t.Run("unknown_status_is_rejected_without_mutation", func(t *testing.T) {
		require.NoError(t, p.ChangeStatus(printer.Maintenance, now))

		err := p.ChangeStatus(printer.Status(42), now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, printer.Maintenance, p.Status())
	})
}

func TestParseStatus(t *testing.T) {
	t.Run("parses_known_statuses", func(t *testing.T) {
		for _, name := range []string{"idle", "printing", "paused", "maintenance", "offline"} {
			status, err := printer.ParseStatus(name)

			require.NoError(t, err, name)
			assert.Equal(t, name, status.String())
		}
	})

	t.Run("rejects_unrecognized_values", func(t *testing.T) {
		_, err := printer.ParseStatus("ready")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestorePrinter(t *testing.T) {
	now := time.Now().UTC()

	t.Run("restores_full_state", func(t *testing.T) {
		p, err := printer.RestorePrinter(printer.RestorePrinterParams{
			ID:           kernel.NewUUID(),
			Name:         "Floor-2",
			Model:        "MK4",
			Manufacturer: "Prusa",
			BuildVolumeX: 250,
			BuildVolumeY: 210,
			BuildVolumeZ: 220,
			Status:       printer.Printing,
			IPAddress:    "10.0.0.12",
			APIKey:       "secret",
			CreatedAt:    now,
			UpdatedAt:    now,
		})

		require.NoError(t, err)
		assert.Equal(t, printer.Printing, p.Status())
		assert.Equal(t, "10.0.0.12", p.IPAddress())
		assert.Equal(t, "250 x 210 x 220 mm", p.BuildVolume())
	})

	t.Run("rejects_unknown_status_values", func(t *testing.T) {
		_, err := printer.RestorePrinter(printer.RestorePrinterParams{
			ID:           kernel.NewUUID(),
			Name:         "Floor-2",
			Model:        "MK4",
			Manufacturer: "Prusa",
			BuildVolumeX: 1, BuildVolumeY: 1, BuildVolumeZ: 1,
			Status: printer.Status(99),
		})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
