package loader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/braunma/rackmap/pkg/models"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the required fields of every catalog entry.
// All field failures are reported together in one error.
func Validate(catalog *models.Catalog) error {
	if catalog == nil {
		return errors.New("catalog is nil")
	}

	err := validate.Struct(catalog)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate catalog: %w", err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s failed on '%s'", strings.TrimPrefix(fe.Namespace(), "Catalog."), fe.Tag()))
	}
	return fmt.Errorf("invalid catalog: %s", strings.Join(msgs, "; "))
}

// CheckReferences lists references the layout will silently drop:
// devices in unknown racks, cables with unknown kinds or endpoints, and repeated ids.
func CheckReferences(catalog *models.Catalog) []string {
	var issues []string

	racks := make(map[int]bool, len(catalog.Racks))
	for _, r := range catalog.Racks {
		if racks[r.ID] {
			issues = append(issues, fmt.Sprintf("rack %d is defined more than once", r.ID))
		}
		racks[r.ID] = true
	}

	devices := make(map[models.Ref]bool)
	for _, d := range catalog.Devices() {
		ref := d.Ref()
		if devices[ref] {
			issues = append(issues, fmt.Sprintf("device %s is defined more than once", ref))
		}
		devices[ref] = true

		switch {
		case d.RackID == nil:
			issues = append(issues, fmt.Sprintf("device %s (%s) has no rack", ref, d.Name))
		case !racks[*d.RackID]:
			issues = append(issues, fmt.Sprintf("device %s (%s) references unknown rack %d", ref, d.Name, *d.RackID))
		}
	}

	cables := make(map[int]bool, len(catalog.Cables))
	for _, c := range catalog.Cables {
		if cables[c.ID] {
			issues = append(issues, fmt.Sprintf("cable %d is defined more than once", c.ID))
		}
		cables[c.ID] = true

		if c.IsStructural() {
			continue
		}
		for _, end := range []struct {
			name string
			raw  string
			ref  func() (models.Ref, bool)
		}{
			{name: "origin", raw: c.OriginKind, ref: c.Origin},
			{name: "destination", raw: c.DestinationKind, ref: c.Destination},
		} {
			ref, ok := end.ref()
			switch {
			case !ok:
				issues = append(issues, fmt.Sprintf("cable %d (%s) has unknown %s kind %q", c.ID, c.Label, end.name, end.raw))
			case !devices[ref]:
				issues = append(issues, fmt.Sprintf("cable %d (%s) references unknown %s %s", c.ID, c.Label, end.name, ref))
			}
		}
	}

	return issues
}
