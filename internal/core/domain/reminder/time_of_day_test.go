package reminder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTime(t *testing.T) {
	cases := []struct {
		value    string
		expected TimeOfDay
	}{
		{"12:00 AM", TimeOfDay{Hour: 0, Minute: 0}},
		{"12:30 AM", TimeOfDay{Hour: 0, Minute: 30}},
		{"12:00 PM", TimeOfDay{Hour: 12, Minute: 0}},
		{"1:05 PM", TimeOfDay{Hour: 13, Minute: 5}},
		{"11:59 PM", TimeOfDay{Hour: 23, Minute: 59}},
		{"8:00 AM", TimeOfDay{Hour: 8, Minute: 0}},
		{"08:15 AM", TimeOfDay{Hour: 8, Minute: 15}},
		{"0:45 AM", TimeOfDay{Hour: 0, Minute: 45}},
	}

	for _, testcase := range cases {
		t.Run(testcase.value, func(t *testing.T) {
			parsed, err := ParseTime(testcase.value)
			assert.Nil(t, err)
			assert.Equal(t, testcase.expected, parsed)
		})
	}
}

func TestParseTimeError(t *testing.T) {
	cases := []string{
		"",
		" ",
		"8:00",
		"8:00AM",
		"8:00 am",
		"8:00 AM extra",
		"8 AM",
		"8:60 AM",
		"24:00 AM",
		"x:00 PM",
		"8:xx PM",
		"-1:00 AM",
		"8:00:00 AM",
		"23:30 AM",
		"13:00 PM",
		"+8:00 AM",
		"8:5 AM",
		"8:005 AM",
		"008:00 AM",
	}

	for _, value := range cases {
		t.Run(value, func(t *testing.T) {
			_, err := ParseTime(value)
			assert.ErrorIs(t, err, ErrInvalidTime)
		})
	}
}

func TestNormalizeTime(t *testing.T) {
	cases := []struct {
		value    string
		expected TimeOfDay
	}{
		{"12:00 AM", TimeOfDay{Hour: 0, Minute: 0}},
		{"12:00 PM", TimeOfDay{Hour: 12, Minute: 0}},
		{"1:05 PM", TimeOfDay{Hour: 13, Minute: 5}},
		{"11:59 PM", TimeOfDay{Hour: 23, Minute: 59}},
		{"7:30 am", TimeOfDay{Hour: 7, Minute: 30}},
		{"7:30 PM trailing", TimeOfDay{Hour: 19, Minute: 30}},
		{"", TimeOfDay{}},
		{"7:30", TimeOfDay{}},
		{"garbage PM", TimeOfDay{}},
		{"7:xx PM", TimeOfDay{}},
		{"31:00 AM", TimeOfDay{}},
	}

	for _, testcase := range cases {
		t.Run(testcase.value, func(t *testing.T) {
			assert.Equal(t, testcase.expected, NormalizeTime(testcase.value))
		})
	}
}

func TestTimeOfDayString(t *testing.T) {
	assert.Equal(t, "08:05", TimeOfDay{Hour: 8, Minute: 5}.String())
	assert.Equal(t, "23:59", TimeOfDay{Hour: 23, Minute: 59}.String())
}
