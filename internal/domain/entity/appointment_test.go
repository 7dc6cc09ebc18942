package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{"scheduled to checked in", AppointmentStatusScheduled, AppointmentStatusCheckedIn, true},
		{"scheduled to cancelled", AppointmentStatusScheduled, AppointmentStatusCancelled, true},
		{"scheduled to no show", AppointmentStatusScheduled, AppointmentStatusNoShow, true},
		{"scheduled to in progress skips check in", AppointmentStatusScheduled, AppointmentStatusInProgress, false},
		{"scheduled to completed skips everything", AppointmentStatusScheduled, AppointmentStatusCompleted, false},
		{"checked in to in progress", AppointmentStatusCheckedIn, AppointmentStatusInProgress, true},
		{"checked in to cancelled", AppointmentStatusCheckedIn, AppointmentStatusCancelled, true},
		{"checked in to no show", AppointmentStatusCheckedIn, AppointmentStatusNoShow, false},
		{"checked in to completed", AppointmentStatusCheckedIn, AppointmentStatusCompleted, false},
		{"in progress to completed", AppointmentStatusInProgress, AppointmentStatusCompleted, true},
		{"in progress to cancelled", AppointmentStatusInProgress, AppointmentStatusCancelled, false},
		{"completed is terminal", AppointmentStatusCompleted, AppointmentStatusScheduled, false},
		{"cancelled is terminal", AppointmentStatusCancelled, AppointmentStatusScheduled, false},
		{"no show is terminal", AppointmentStatusNoShow, AppointmentStatusCheckedIn, false},
		{"no self transition", AppointmentStatusScheduled, AppointmentStatusScheduled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestAppointmentStatusIsTerminal(t *testing.T) {
	assert.True(t, AppointmentStatusCompleted.IsTerminal())
	assert.True(t, AppointmentStatusCancelled.IsTerminal())
	assert.True(t, AppointmentStatusNoShow.IsTerminal())
	assert.False(t, AppointmentStatusScheduled.IsTerminal())
	assert.False(t, AppointmentStatusCheckedIn.IsTerminal())
	assert.False(t, AppointmentStatusInProgress.IsTerminal())
	assert.False(t, AppointmentStatus("BOGUS").IsTerminal())
}

func TestAppointmentStatusBlocksSlot(t *testing.T) {
	assert.True(t, AppointmentStatusScheduled.BlocksSlot())
	assert.True(t, AppointmentStatusCheckedIn.BlocksSlot())
	assert.True(t, AppointmentStatusInProgress.BlocksSlot())
	assert.True(t, AppointmentStatusCompleted.BlocksSlot())
	assert.False(t, AppointmentStatusCancelled.BlocksSlot())
	assert.False(t, AppointmentStatusNoShow.BlocksSlot())
}

func TestAppointmentStatusIsValid(t *testing.T) {
	assert.True(t, AppointmentStatusScheduled.IsValid())
	assert.True(t, AppointmentStatusNoShow.IsValid())
	assert.False(t, AppointmentStatus("").IsValid())
	assert.False(t, AppointmentStatus("scheduled").IsValid())
}

func TestAppointmentTypeSet(t *testing.T) {
	visit := AppointmentTypeSet("visit")
	assert.Contains(t, visit, AppointmentTypeNew)
	assert.Contains(t, visit, AppointmentTypeFollowup)
	assert.Contains(t, visit, AppointmentTypeEmergency)
	assert.Len(t, visit, 3)

	clinical := AppointmentTypeSet("clinical")
	assert.Contains(t, clinical, AppointmentTypeConsultation)
	assert.Contains(t, clinical, AppointmentTypeLab)
	assert.Len(t, clinical, 5)

	// Unknown names fall back to the visit set
	assert.Equal(t, visit, AppointmentTypeSet("something-else"))
}

func TestAppointmentCanCancel(t *testing.T) {
	a := &Appointment{Status: AppointmentStatusScheduled}
	assert.True(t, a.CanCancel())

	a.Status = AppointmentStatusCheckedIn
	assert.True(t, a.CanCancel())

	a.Status = AppointmentStatusInProgress
	assert.False(t, a.CanCancel())

	a.Status = AppointmentStatusCompleted
	assert.False(t, a.CanCancel())
}
