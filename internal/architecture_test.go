package internal

import (
	"testing"

	"github.com/kcmvp/archunit"
)

func TestArchitecture(t *testing.T) {
	driver := archunit.Packages("driver", []string{".../internal/driver"})
	lifx := archunit.Packages("lifx", []string{".../internal/lifx"})
	outer := archunit.Packages("outer", []string{".../internal/server", ".../internal/daemon", ".../internal/tui", ".../internal/repos"})

	// the driver only sees its collaborators through its own interfaces
	if err := driver.ShouldNotReferLayers(outer); err != nil {
		t.Errorf("Architecture violation: driver depends on an outer layer: %v", err)
	}

	if err := lifx.ShouldNotReferLayers(driver); err != nil {
		t.Errorf("Architecture violation: lifx client depends on the driver: %v", err)
	}
	if err := lifx.ShouldNotReferLayers(outer); err != nil {
		t.Errorf("Architecture violation: lifx client depends on an outer layer: %v", err)
	}
}
