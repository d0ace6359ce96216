package models

// LookupStatus tags the outcome of reading one envelope entry. Callers of the
// plain read API only ever see "found" or "absent"; the finer status is kept
// for logging and diagnostics.
type LookupStatus int

const (
	// StatusNotFound means no record is stored under the name.
	StatusNotFound LookupStatus = iota
	// StatusFound means the record was decrypted and authenticated.
	StatusFound
	// StatusCorrupted means a record exists but cannot be turned back into
	// plaintext: malformed framing, missing key, wrong key or tag mismatch.
	StatusCorrupted
	// StatusUnavailable means the vault or the backing store could not be
	// reached, so nothing can be said about the record.
	StatusUnavailable
)

func (s LookupStatus) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusNotFound:
		return "not_found"
	case StatusCorrupted:
		return "corrupted"
	case StatusUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}
