package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateWorkingHours(t *testing.T) {
	assert.NoError(t, validateWorkingHours("09:00", "17:00"))
	assert.NoError(t, validateWorkingHours("00:00", "23:59"))

	assert.ErrorIs(t, validateWorkingHours("17:00", "09:00"), ErrInvalidWorkingHours)
	assert.ErrorIs(t, validateWorkingHours("09:00", "09:00"), ErrInvalidWorkingHours)
	assert.ErrorIs(t, validateWorkingHours("9am", "17:00"), ErrInvalidWorkingHours)
	assert.ErrorIs(t, validateWorkingHours("09:00", ""), ErrInvalidWorkingHours)
}

func TestValidateWorkingDays(t *testing.T) {
	assert.NoError(t, validateWorkingDays("1,2,3,4,5"))
	assert.NoError(t, validateWorkingDays("6,7"))
	assert.NoError(t, validateWorkingDays("1, 3, 5"))
	assert.NoError(t, validateWorkingDays("7"))

	assert.ErrorIs(t, validateWorkingDays("0,1"), ErrInvalidWorkingDays)
	assert.ErrorIs(t, validateWorkingDays("1,8"), ErrInvalidWorkingDays)
	assert.ErrorIs(t, validateWorkingDays("mon,tue"), ErrInvalidWorkingDays)
	assert.ErrorIs(t, validateWorkingDays(""), ErrInvalidWorkingDays)
}
