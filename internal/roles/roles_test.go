package roles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	role, ok := Parse("doctor")
	assert.True(t, ok)
	assert.Equal(t, Doctor, role)

	_, ok = Parse("superuser")
	assert.False(t, ok)

	_, ok = Parse("")
	assert.False(t, ok)
}

func TestIsValid(t *testing.T) {
	for _, r := range All() {
		assert.True(t, r.IsValid(), "expected %s to be valid", r)
	}
	assert.False(t, Role("patient").IsValid())
}

func TestAllowedMembership(t *testing.T) {
	assert.True(t, Allowed(Deliverer, Deliverer))
	assert.True(t, Allowed(Accountant, Admin, Accountant))
	assert.False(t, Allowed(Doctor, Admin, Accountant))
	assert.False(t, Allowed(Hospital, Deliverer))
}

func TestAllowedOwnerOverride(t *testing.T) {
	// Owners pass every gate, including one that names no roles at all.
	assert.True(t, Allowed(Owner, Deliverer))
	assert.True(t, Allowed(Owner, Admin, Accountant))
	assert.True(t, Allowed(Owner))

	// Nobody else gets through an empty allow-list.
	assert.False(t, Allowed(Admin))
}
