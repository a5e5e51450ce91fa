package parcel

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"regexp"
	"sync"
	"time"

	"parcelhub/internal/pkg/errs"
)

const (
	// TrackingIDPrefix starts every tracking code.
	TrackingIDPrefix = "ZMD"

	trackingAlphabet     = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	trackingRandomLength = 4
	trackingStampModulo  = 1_000_000
)

var trackingIDPattern = regexp.MustCompile(`^ZMD[0-9]{6}[A-Z0-9]{4}$`)

// TrackingID is the externally shared parcel code, e.g. "ZMD123456ABCD".
type TrackingID struct {
	value string
}

// ParseTrackingID accepts only codes matching ^ZMD[0-9]{6}[A-Z0-9]{4}$.
func ParseTrackingID(s string) (TrackingID, error) {
	if s == "" {
		return TrackingID{}, errs.NewValueIsRequiredError("trackingId")
	}
	if !trackingIDPattern.MatchString(s) {
		return TrackingID{}, errs.NewValueIsInvalidErrorWithCause("trackingId", fmt.Errorf("%q has an invalid format", s))
	}
	return TrackingID{value: s}, nil
}

func (t TrackingID) String() string {
	return t.value
}

func (t TrackingID) IsEqual(other TrackingID) bool {
	return t.value == other.value
}

func (t TrackingID) Validate() error {
	_, err := ParseTrackingID(t.value)
	return err
}

// TrackingIDGenerator builds tracking codes from the last six digits of a strictly
// increasing millisecond stamp followed by four random base-36 characters.
//
// Uniqueness is probabilistic; the store rejects clashes and the caller asks for
// another code.
type TrackingIDGenerator struct {
	mu         sync.Mutex
	now        func() time.Time
	random     io.Reader
	lastMillis int64
}

// NewTrackingIDGenerator uses the wall clock and crypto/rand.
func NewTrackingIDGenerator() *TrackingIDGenerator {
	return NewTrackingIDGeneratorWithSource(time.Now, rand.Reader)
}

// NewTrackingIDGeneratorWithSource lets tests fix the clock and the random stream.
func NewTrackingIDGeneratorWithSource(now func() time.Time, random io.Reader) *TrackingIDGenerator {
	return &TrackingIDGenerator{now: now, random: random}
}

// Generate returns a new tracking code. It fails only if the random source fails.
func (g *TrackingIDGenerator) Generate() (TrackingID, error) {
	stamp := g.nextMillis() % trackingStampModulo

	suffix := make([]byte, trackingRandomLength)
	limit := big.NewInt(int64(len(trackingAlphabet)))
	for i := range suffix {
		n, err := rand.Int(g.random, limit)
		if err != nil {
			return TrackingID{}, fmt.Errorf("generate tracking id: %w", err)
		}
		suffix[i] = trackingAlphabet[n.Int64()]
	}

	return TrackingID{value: fmt.Sprintf("%s%06d%s", TrackingIDPrefix, stamp, suffix)}, nil
}

func (g *TrackingIDGenerator) nextMillis() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	millis := g.now().UnixMilli()
	if millis <= g.lastMillis {
		millis = g.lastMillis + 1
	}
	g.lastMillis = millis
	return millis
}
