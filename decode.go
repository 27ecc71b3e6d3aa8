package sap

import (
	"errors"
	"reflect"

	"github.com/go-json-experiment/json"
)

// Static errors, mirroring the teacher's unmarshal.go sentinel style.
var (
	ErrNilDestination = errors.New("destination cannot be nil")
	ErrNotPointer      = errors.New("destination must be a pointer")
	ErrNilPointer      = errors.New("destination pointer cannot be nil")
)

// Decode populates dst from the Result's coerced Value by round-tripping
// through the canonical JSON codec, mirroring the teacher's
// Schema.Unmarshal convenience but without its defaults/validation
// machinery — Parse already applied schema defaults and diagnostics.
func (r *Result) Decode(dst any) error {
	if dst == nil {
		return ErrNilDestination
	}
	dstVal := reflect.ValueOf(dst)
	if dstVal.Kind() != reflect.Ptr {
		return ErrNotPointer
	}
	if dstVal.IsNil() {
		return ErrNilPointer
	}

	data, err := json.Marshal(r.Value.Native())
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}
