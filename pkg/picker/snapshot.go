package picker

import (
	"encoding/json"

	"github.com/go-drift/picker/pkg/errors"
)

// NoStatus is the status reported when the caller has none.
const NoStatus = -1

// Snapshot is the serialized selection. Month is zero-based.
type Snapshot struct {
	Year   uint32 `json:"year"`
	Month  uint32 `json:"month"`
	Day    uint32 `json:"day"`
	Hour   uint32 `json:"hour"`
	Minute uint32 `json:"minute"`
	Status int    `json:"status"`
}

// Snapshot returns the selected solar date and time with status.
func (p *DatePicker) Snapshot(status int) Snapshot {
	d := p.Selected()
	return Snapshot{
		Year:   d.Year,
		Month:  d.Month - 1,
		Day:    d.Day,
		Hour:   p.hour,
		Minute: p.minute,
		Status: status,
	}
}

// SnapshotJSON encodes Snapshot(status) as
// {"year":..,"month":..,"day":..,"hour":..,"minute":..,"status":..}.
func (p *DatePicker) SnapshotJSON(status int) (string, error) {
	b, err := json.Marshal(p.Snapshot(status))
	if err != nil {
		return "", errors.Wrap("picker.SnapshotJSON", errors.KindUnknown, err)
	}
	return string(b), nil
}
