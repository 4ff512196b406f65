package scheduling

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/group8-health/health/internal"
)

func testDoctors() []internal.Doctor {
	return []internal.Doctor{
		{Name: "Dr. John Doe", Specialty: "Cardiologist", Availability: []string{"Monday", "Wednesday", "Friday"}},
		{Name: "Dr. Jane Smith", Specialty: "Dermatologist", Availability: []string{"Tuesday", "Thursday"}},
	}
}

func TestIsAvailable_MatchesWeekdays(t *testing.T) {
	roster := NewRoster(testDoctors())

	// Week of 2025-01-06: Monday through Sunday.
	expected := map[string]bool{
		"2025-01-06": true,  // Monday
		"2025-01-07": false, // Tuesday
		"2025-01-08": true,  // Wednesday
		"2025-01-09": false, // Thursday
		"2025-01-10": true,  // Friday
		"2025-01-11": false, // Saturday
		"2025-01-12": false, // Sunday
	}
	for dateStr, want := range expected {
		date, err := time.Parse("2006-01-02", dateStr)
		assert.NoError(t, err)
		got, err := roster.IsAvailable("Dr. John Doe", date)
		assert.NoError(t, err)
		assert.Equal(t, want, got, "date %s (%s)", dateStr, date.Weekday())
	}
}

func TestIsAvailable_UnknownDoctor(t *testing.T) {
	roster := NewRoster(testDoctors())
	date, _ := time.Parse("2006-01-02", "2025-01-06")
	_, err := roster.IsAvailable("Dr. Nobody", date)
	assert.ErrorIs(t, err, internal.ErrUnknownDoctor)
}

func TestRosterQueries(t *testing.T) {
	roster := NewRoster(testDoctors())

	doctors := roster.Doctors()
	assert.Len(t, doctors, 2)
	assert.Equal(t, "Dr. John Doe", doctors[0].Name)

	cardio := roster.BySpecialty("Cardiologist")
	assert.Len(t, cardio, 1)
	assert.Equal(t, "Dr. John Doe", cardio[0].Name)

	assert.Empty(t, roster.BySpecialty("Neurologist"))
}

func TestLoadRoster(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doctors.json")
	data := `[{"name": "Dr. John Doe", "specialty": "Cardiologist", "availability": ["Monday"]}]`
	assert.NoError(t, os.WriteFile(path, []byte(data), 0644))

	roster, err := LoadRoster(path)
	assert.NoError(t, err)
	d, err := roster.Get("Dr. John Doe")
	assert.NoError(t, err)
	assert.Equal(t, "Cardiologist", d.Specialty)

	_, err = LoadRoster(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLedger_AppendOnlyAndOrdered(t *testing.T) {
	ledger := NewLedger(nil)
	assert.Equal(t, 0, ledger.Len())

	ledger.Append(internal.Appointment{ID: "a1"})
	ledger.Append(internal.Appointment{ID: "a2"})
	ledger.Append(internal.Appointment{ID: "a3"})

	list := ledger.List()
	assert.Len(t, list, 3)
	assert.Equal(t, "a1", list[0].ID)
	assert.Equal(t, "a3", list[2].ID)

	// Mutating the returned slice must not affect the ledger.
	list[0].ID = "mutated"
	assert.Equal(t, "a1", ledger.List()[0].ID)
}

func TestLedger_WarmStart(t *testing.T) {
	initial := []internal.Appointment{{ID: "a1"}, {ID: "a2"}}
	ledger := NewLedger(initial)
	assert.Equal(t, 2, ledger.Len())
	ledger.Append(internal.Appointment{ID: "a3"})
	assert.Equal(t, "a3", ledger.List()[2].ID)
}

func TestLedgers_IsolatedPerUser(t *testing.T) {
	ledgers := NewLedgers()

	ledgers.ForUser("u1", nil).Append(internal.Appointment{ID: "a1"})
	assert.Equal(t, 1, ledgers.ForUser("u1", nil).Len())
	assert.Equal(t, 0, ledgers.ForUser("u2", nil).Len())

	ledgers.ForUser("u2", nil).Append(internal.Appointment{ID: "b1"})
	assert.Equal(t, "a1", ledgers.ForUser("u1", nil).List()[0].ID)
	assert.Equal(t, "b1", ledgers.ForUser("u2", nil).List()[0].ID)
}

func TestLedgers_SeedRunsOncePerUser(t *testing.T) {
	ledgers := NewLedgers()
	calls := 0
	seed := func() []internal.Appointment {
		calls++
		return []internal.Appointment{{ID: "a1"}}
	}

	first := ledgers.ForUser("u1", seed)
	assert.Equal(t, 1, first.Len())
	again := ledgers.ForUser("u1", seed)
	assert.Same(t, first, again)
	assert.Equal(t, 1, calls)
}
