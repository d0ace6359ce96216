package envelope

import "github.com/MKhiriev/go-sealed-prefs/models"

// Result is the outcome of [Store.Lookup]. Data is set only when Status is
// [models.StatusFound]; Err explains the other non-trivial statuses.
type Result struct {
	Status models.LookupStatus
	Data   []byte
	Err    error
}

// Found reports whether the entry was decrypted.
func (r Result) Found() bool {
	return r.Status == models.StatusFound
}
