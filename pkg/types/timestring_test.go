package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "short form", input: "09:30"},
		{name: "full form", input: "01:30:00"},
		{name: "midnight", input: "00:00"},
		{name: "garbage", input: "not-a-time", wantErr: true},
		{name: "out of range", input: "25:00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestTimeString_Duration(t *testing.T) {
	ts := TimeString("01:30:00")
	d, err := ts.Duration()
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, d)

	short := TimeString("00:45")
	d, err = short.Duration()
	require.NoError(t, err)
	assert.Equal(t, 45*time.Minute, d)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("09:45")
	shifted, err := ts.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), shifted)
}

func TestTimeString_Comparison(t *testing.T) {
	a := TimeString("09:00")
	b := TimeString("10:30")

	assert.True(t, a.IsBefore(b))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsAfter(b))
	assert.False(t, a.IsBefore(a))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("01:30:00"))
	assert.Equal(t, TimeString("01:30:00"), ts)

	require.NoError(t, ts.Scan([]byte("02:00:00")))
	assert.Equal(t, TimeString("02:00:00"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 1, 1, 1, 15, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("01:15:00"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("01:30").Value()
	require.NoError(t, err)
	assert.Equal(t, "01:30", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("bad").Value()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
