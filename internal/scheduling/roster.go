package scheduling

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/group8-health/health/internal"
)

// Roster holds the doctor reference data loaded at startup. It is immutable
// for the process lifetime; lookups are safe for concurrent use.
type Roster struct {
	doctors map[string]internal.Doctor
	order   []string
}

func NewRoster(doctors []internal.Doctor) *Roster {
	r := &Roster{doctors: make(map[string]internal.Doctor, len(doctors))}
	for _, d := range doctors {
		if _, ok := r.doctors[d.Name]; !ok {
			r.order = append(r.order, d.Name)
		}
		r.doctors[d.Name] = d
	}
	return r
}

// LoadRoster reads the doctor roster from a JSON file.
func LoadRoster(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scheduling: failed to read roster %s: %w", path, err)
	}
	var doctors []internal.Doctor
	if err := json.Unmarshal(data, &doctors); err != nil {
		return nil, fmt.Errorf("scheduling: failed to parse roster %s: %w", path, err)
	}
	return NewRoster(doctors), nil
}

// Get returns the doctor by name, or ErrUnknownDoctor.
func (r *Roster) Get(name string) (internal.Doctor, error) {
	d, ok := r.doctors[name]
	if !ok {
		return internal.Doctor{}, internal.ErrUnknownDoctor
	}
	return d, nil
}

// IsAvailable reports whether the doctor is bookable on the given date. The
// check matches the date's Gregorian weekday name against the doctor's
// availability set; dates are local wall-clock dates, no timezone handling.
func (r *Roster) IsAvailable(doctor string, date time.Time) (bool, error) {
	d, ok := r.doctors[doctor]
	if !ok {
		return false, internal.ErrUnknownDoctor
	}
	weekday := date.Weekday().String()
	for _, day := range d.Availability {
		if day == weekday {
			return true, nil
		}
	}
	return false, nil
}

// Doctors returns the roster in load order.
func (r *Roster) Doctors() []internal.Doctor {
	out := make([]internal.Doctor, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.doctors[name])
	}
	return out
}

// BySpecialty filters the roster for the presentation layer's specialty picker.
func (r *Roster) BySpecialty(specialty string) []internal.Doctor {
	var out []internal.Doctor
	for _, name := range r.order {
		if d := r.doctors[name]; d.Specialty == specialty {
			out = append(out, d)
		}
	}
	return out
}
