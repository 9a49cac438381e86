// Package octuuid implements Universally Unique Identifiers (UUIDs) on top
// of an explicit binary-encoding core, with support for versions 3, 4, 5,
// 7 and 8.
//
// The bit-level arithmetic (mask construction, bitfield load/deposit,
// fixed-width narrowing, big-endian octet vectors and the hex codec)
// lives in the bitops subpackage. The UUID layer is a thin consumer: it
// packs 128-bit identifiers as two 64-bit words, stamps version and
// variant fields through bitops masks, and renders canonical text through
// the bitops hex codec.
//
// Basic Usage:
//
//	// Generate a new UUIDv7
//	id, err := octuuid.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(id.String())
//
//	// Parse a UUID from string
//	id, err := octuuid.Parse("f47ac10b-58cc-4372-a567-0e02b2c3d479")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Name-based UUID in the DNS namespace
//	id = octuuid.NewV5(octuuid.NamespaceDNS, "www.example.com")
//
//	// Get timestamp from UUIDv7
//	timestamp := id.Timestamp()
//	time := id.Time()
//
// Custom Generator:
//
//	// Create a custom generator for better performance in tight loops
//	gen := octuuid.NewGenerator()
//	for i := 0; i < 1000; i++ {
//	    id, err := gen.New()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    // Use id...
//	}
//
// Thread Safety:
//
// All operations are thread-safe. The default generator can be used
// concurrently from multiple goroutines without additional synchronization;
// everything in bitops is a pure function.
//
// Standards Compliance:
//
// This implementation follows RFC 4122 and RFC 9562. The UUIDv7 format
// includes:
//   - 48-bit timestamp (millisecond precision)
//   - 12-bit random data for sub-millisecond ordering
//   - 62-bit random data for uniqueness
//   - Version and variant bits as per RFC specification
package octuuid
