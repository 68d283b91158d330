package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViolations_OK(t *testing.T) {
	var nilVs *Violations
	assert.True(t, nilVs.OK())
	assert.True(t, (&Violations{}).OK())

	vs := &Violations{}
	vs.Add(&Violation{Path: "basics.name", Kind: KindMissingRequiredField})
	assert.False(t, vs.OK())
}

func TestViolations_AddIgnoresNil(t *testing.T) {
	vs := &Violations{}
	vs.Add(nil)
	assert.True(t, vs.OK())
}

func TestViolations_Merge(t *testing.T) {
	vs := &Violations{}
	vs.Add(&Violation{Path: "a"})
	vs.Merge([]Violation{{Path: "b"}, {Path: "c"}})

	assert.Len(t, vs.Violations, 3)
	assert.Equal(t, "a", vs.Violations[0].Path)
	assert.Equal(t, "c", vs.Violations[2].Path)
}

func TestViolations_Error(t *testing.T) {
	vs := &Violations{}
	vs.Add(&Violation{
		Path:    "location.city",
		Kind:    KindLengthViolation,
		Message: "must be 2-64 characters",
	})

	assert.Contains(t, vs.Error(), "1. location.city: must be 2-64 characters (length_violation)")
}

func TestViolation_String(t *testing.T) {
	v := Violation{Path: "basics.email", Kind: KindInvalidFormat, Message: "not an email address"}
	assert.Equal(t, "basics.email: not an email address (invalid_format)", v.String())
}
