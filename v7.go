package octuuid

import (
	"crypto/rand"
	"io"
	"sync"
	"time"

	"github.com/lab2439/octuuid/bitops"
)

// UUIDv7 field layout within the high 64-bit word:
// | 48-bit unix_ts_ms | 4-bit version | 12-bit clock sequence |
var (
	timestampMask = bitops.Mask(48, 16)
	clockSeqMask  = bitops.Mask(12, 0)
)

// Generator is a thread-safe UUIDv7 generator that ensures monotonicity
// within the same millisecond by using a counter with random data.
type Generator struct {
	mu            sync.Mutex
	lastTimestamp uint64
	clockSeq      uint16 // 12-bit counter for sub-millisecond ordering
	randReader    io.Reader
}

// NewGenerator creates a new UUIDv7 generator with crypto/rand as the random source
func NewGenerator() *Generator {
	return &Generator{
		randReader: rand.Reader,
	}
}

// NewGeneratorWithReader creates a new UUIDv7 generator with a custom random source.
// This is primarily useful for testing with deterministic random sources.
func NewGeneratorWithReader(r io.Reader) *Generator {
	return &Generator{
		randReader: r,
	}
}

// New generates a new UUIDv7 with the current timestamp.
// This method is thread-safe and ensures monotonic ordering of UUIDs
// generated within the same millisecond.
func (g *Generator) New() (UUID, error) {
	return g.NewWithTime(time.Now())
}

// NewWithTime generates a new UUIDv7 with the specified timestamp.
// This method is thread-safe and ensures monotonic ordering.
func (g *Generator) NewWithTime(t time.Time) (UUID, error) {
	var uuid UUID

	// Unix timestamp in milliseconds, narrowed to its 48-bit field
	timestamp := bitops.Uint48(uint64(t.UnixMilli()))

	g.mu.Lock()
	defer g.mu.Unlock()

	// Handle monotonicity: if timestamp is same or earlier, increment counter
	if timestamp <= g.lastTimestamp {
		g.clockSeq++
		// If counter overflows (> 12 bits), we need to wait or use last timestamp + 1
		if g.clockSeq > 0xfff {
			g.clockSeq = 0
			timestamp = g.lastTimestamp + 1
			g.lastTimestamp = timestamp
		}
	} else {
		// New millisecond: seed the clock sequence with 12 random bits, per
		// RFC 9562 SHOULD for the rand_a field.
		var seed [2]byte
		if _, err := io.ReadFull(g.randReader, seed[:]); err != nil {
			return uuid, err
		}
		word, err := bitops.FromOctets(seed[:])
		if err != nil {
			return uuid, err
		}
		g.clockSeq = uint16(bitops.Extract(clockSeqMask, word))
		g.lastTimestamp = timestamp
	}

	// Deposit timestamp and clock sequence into the high word and emit it
	// big-endian into bytes 0-7. The version nibble sits between the two
	// fields and is stamped below.
	hi := bitops.Deposit(timestampMask, 0, timestamp)
	hi = bitops.Deposit(clockSeqMask, hi, uint64(g.clockSeq))
	word, err := bitops.Octets(hi, bitops.PadDefault)
	if err != nil {
		return uuid, err
	}
	copy(uuid[0:8], word)

	// Generate random data for bytes 8-15 (64 bits)
	if _, err := io.ReadFull(g.randReader, uuid[8:]); err != nil {
		return uuid, err
	}

	uuid.setVersionVariant(VersionTimeSorted)

	return uuid, nil
}

// Must is a helper that wraps a call to a function returning (UUID, error)
// and panics if the error is non-nil. It is intended for use in variable
// initializations such as:
//
//	var id = octuuid.Must(generator.New())
func Must(uuid UUID, err error) UUID {
	if err != nil {
		panic(err)
	}
	return uuid
}

// defaultGenerator is the package-level generator used by the New* functions
var defaultGenerator = NewGenerator()

// New generates a new UUIDv7 using the default generator.
// This is a convenience function that uses the package-level generator.
func New() (UUID, error) {
	return defaultGenerator.New()
}

// NewV7 is an alias for New() for explicit version specification
func NewV7() (UUID, error) {
	return defaultGenerator.New()
}

// Timestamp extracts the Unix timestamp (in milliseconds) from a UUIDv7
func (u UUID) Timestamp() int64 {
	if u.Version() != VersionTimeSorted {
		return 0
	}
	// Bytes 0-5 hold the 48-bit big-endian timestamp
	ts, err := bitops.FromOctets(u[0:6])
	if err != nil {
		return 0
	}
	return bitops.Int64(ts)
}

// Time returns the timestamp as a time.Time for UUIDv7
func (u UUID) Time() time.Time {
	if u.Version() != VersionTimeSorted {
		return time.Time{}
	}
	ms := u.Timestamp()
	return time.Unix(ms/1000, (ms%1000)*1000000)
}
