package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCandidateSlots(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		duration int
		want     []string
	}{
		{
			name:     "two slots exactly",
			start:    "09:00",
			end:      "09:30",
			duration: 15,
			want:     []string{"09:00", "09:15"},
		},
		{
			name:     "trailing partial slot is dropped",
			start:    "09:00",
			end:      "09:50",
			duration: 20,
			want:     []string{"09:00", "09:20"},
		},
		{
			name:     "full working day",
			start:    "09:00",
			end:      "12:00",
			duration: 30,
			want:     []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"},
		},
		{
			name:     "window shorter than one slot",
			start:    "09:00",
			end:      "09:10",
			duration: 15,
			want:     []string{},
		},
		{
			name:     "zero width window",
			start:    "09:00",
			end:      "09:00",
			duration: 15,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &DoctorProfile{
				WorkStart:       tt.start,
				WorkEnd:         tt.end,
				SlotDurationMin: tt.duration,
			}
			got := d.CandidateSlots()
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCandidateSlotsInvalidInput(t *testing.T) {
	d := &DoctorProfile{WorkStart: "9am", WorkEnd: "17:00", SlotDurationMin: 15}
	assert.Nil(t, d.CandidateSlots())

	d = &DoctorProfile{WorkStart: "09:00", WorkEnd: "17:00", SlotDurationMin: 0}
	assert.Nil(t, d.CandidateSlots())

	// End before start
	d = &DoctorProfile{WorkStart: "17:00", WorkEnd: "09:00", SlotDurationMin: 15}
	assert.Nil(t, d.CandidateSlots())
}

func TestWorksOn(t *testing.T) {
	weekdaysOnly := &DoctorProfile{WorkingDays: "1,2,3,4,5"}
	assert.True(t, weekdaysOnly.WorksOn(time.Monday))
	assert.True(t, weekdaysOnly.WorksOn(time.Friday))
	assert.False(t, weekdaysOnly.WorksOn(time.Saturday))
	assert.False(t, weekdaysOnly.WorksOn(time.Sunday))

	// Sunday maps to ISO day 7
	weekendDoctor := &DoctorProfile{WorkingDays: "6,7"}
	assert.True(t, weekendDoctor.WorksOn(time.Saturday))
	assert.True(t, weekendDoctor.WorksOn(time.Sunday))
	assert.False(t, weekendDoctor.WorksOn(time.Wednesday))

	withSpaces := &DoctorProfile{WorkingDays: "1, 3, 5"}
	assert.True(t, withSpaces.WorksOn(time.Wednesday))
	assert.False(t, withSpaces.WorksOn(time.Tuesday))
}

func TestAcceptsAppointments(t *testing.T) {
	active := &DoctorProfile{User: User{IsActive: true}}
	assert.True(t, active.AcceptsAppointments())

	deactivated := &DoctorProfile{User: User{IsActive: false}}
	assert.False(t, deactivated.AcceptsAppointments())
}
