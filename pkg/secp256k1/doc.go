// Package secp256k1 holds the secp256k1 domain parameters defined in SEC 2
// (https://www.secg.org/sec2-v2.pdf) and the helpers that tie them to the
// generic curve package:
//
//   - S256 returns the process-wide parameter set (p, n, a = 0, b = 7, G)
//   - ComputePublicKey derives e*G for a private scalar e
//   - PointFromBytes validates raw big-endian coordinates against the curve
//   - SerializeCompressed, SerializeUncompressed and ParsePubKey implement the
//     SEC 1 public key encodings, including point decompression
//
// The parameters are decoded from their hex literals once, on first use, and
// are read-only afterwards. Any number of goroutines may share them.
package secp256k1
