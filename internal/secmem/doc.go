// Package secmem holds best-effort helpers for clearing secret material
// (private scalars, HMAC-DRBG state) once it is no longer needed.
//
// Go's garbage collector may copy memory before it is cleared, and math/big
// reallocates its word slices freely, so nothing here is a guarantee. The
// helpers only shorten the lifetime of the copies this module controls.
package secmem
