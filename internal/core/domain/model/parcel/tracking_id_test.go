package parcel_test

import (
	"bytes"
	"errors"
	"regexp"
	"testing"
	"time"

	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var trackingFormat = regexp.MustCompile(`^ZMD[0-9]{6}[A-Z0-9]{4}$`)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestTrackingIDGenerator_Format(t *testing.T) {
	gen := parcel.NewTrackingIDGenerator()

	for range 500 {
		id, err := gen.Generate()

		require.NoError(t, err)
		assert.Regexp(t, trackingFormat, id.String())
		assert.NoError(t, id.Validate())
	}
}

func TestTrackingIDGenerator_Distinct(t *testing.T) {
	gen := parcel.NewTrackingIDGenerator()
	seen := make(map[string]struct{})

	for range 1000 {
		id, err := gen.Generate()
		require.NoError(t, err)

		_, dup := seen[id.String()]
		require.False(t, dup, "duplicate tracking id %s", id)
		seen[id.String()] = struct{}{}
	}
}

func TestTrackingIDGenerator_UsesLastSixDigitsOfMonotonicStamp(t *testing.T) {
	frozen := time.UnixMilli(1_718_000_123_456)
	zeros := bytes.NewReader(make([]byte, 64))
	gen := parcel.NewTrackingIDGeneratorWithSource(func() time.Time { return frozen }, zeros)

	first, err := gen.Generate()
	require.NoError(t, err)
	second, err := gen.Generate()
	require.NoError(t, err)

	assert.Equal(t, "ZMD1234560000", first.String())
	// clock did not move, so the stamp is bumped by one millisecond
	assert.Equal(t, "ZMD1234570000", second.String())
}

func TestTrackingIDGenerator_RandomSourceFailure(t *testing.T) {
	gen := parcel.NewTrackingIDGeneratorWithSource(time.Now, failingReader{})

	_, err := gen.Generate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "entropy exhausted")
}

func TestParseTrackingID(t *testing.T) {
	id, err := parcel.ParseTrackingID("ZMD123456ABCD")
	require.NoError(t, err)
	assert.Equal(t, "ZMD123456ABCD", id.String())

	_, err = parcel.ParseTrackingID("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	for _, bad := range []string{"ZMD12345ABCD", "zmd123456abcd", "XYZ123456ABCD", "ZMD123456ABCDE"} {
		_, err = parcel.ParseTrackingID(bad)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid, bad)
	}
}
