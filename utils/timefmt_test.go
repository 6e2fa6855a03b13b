package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTo24Hour(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"5:30 PM", "17:30"},
		{"12:00 PM", "12:00"},
		{"12:00 AM", "00:00"},
		{"1:05 am", "01:05"},
		{"11:59 pm", "23:59"},
		{"9:15AM", "09:15"},
	}
	for _, tc := range cases {
		got, err := To24Hour(tc.in)
		assert.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestTo24HourRejectsInvalid(t *testing.T) {
	invalid := []string{
		"",
		"17:30",
		"0:30 PM",
		"13:00 PM",
		"5:60 PM",
		"5:30",
		"half past five",
		"5:30 XM",
	}
	for _, in := range invalid {
		_, err := To24Hour(in)
		assert.Error(t, err, in)
	}
}

func TestTo12Hour(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"17:30", "5:30 PM"},
		{"00:00", "12:00 AM"},
		{"12:00", "12:00 PM"},
		{"09:05", "9:05 AM"},
		{"23:59", "11:59 PM"},
	}
	for _, tc := range cases {
		got, err := To12Hour(tc.in)
		assert.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestTo12HourRejectsInvalid(t *testing.T) {
	for _, in := range []string{"", "24:00", "12:60", "noon", "5:30 PM"} {
		_, err := To12Hour(in)
		assert.Error(t, err, in)
	}
}

func TestClockRoundTrip(t *testing.T) {
	display, err := To12Hour("19:45")
	assert.NoError(t, err)
	stored, err := To24Hour(display)
	assert.NoError(t, err)
	assert.Equal(t, "19:45", stored)
}
