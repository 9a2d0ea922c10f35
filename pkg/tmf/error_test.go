package tmf

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorUnwrap(t *testing.T) {
	testCases := []struct {
		err  error
		kind error
	}{
		{NewNotFound("station", "station-a"), ErrNotFound},
		{NewInvalidArgument("route status", "must be active"), ErrInvalidArgument},
		{NewInvalidState("route", "no active station"), ErrInvalidState},
		{NewConflict("route", "Airport Express"), ErrConflict},
	}

	for _, testCase := range testCases {
		assert.ErrorIs(t, testCase.err, testCase.kind)
	}
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "station station-a: does not resolve to an active record",
		NewNotFound("station", "station-a").Error())
	assert.Equal(t, "route: no active station",
		NewInvalidState("route", "no active station").Error())

	var typed *Error
	assert.True(t, errors.As(NewConflict("route", "X"), &typed))
}
