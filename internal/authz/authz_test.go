// AngelaMos | 2026
// authz_test.go

package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelfOnly(t *testing.T) {
	alice := Actor{UserID: "alice"}

	assert.True(t, SelfOnly(alice, "alice").Allowed)
	assert.False(t, SelfOnly(alice, "bob").Allowed)

	anonymous := Actor{}
	dec := SelfOnly(anonymous, "")
	assert.False(t, dec.Allowed, "empty actor must never match empty subject")
	assert.NotEmpty(t, dec.Reason)
}

func TestOwnerOnly(t *testing.T) {
	alice := Actor{UserID: "alice"}

	assert.True(t, OwnerOnly(alice, "alice").Allowed)
	assert.False(t, OwnerOnly(alice, "bob").Allowed)
	assert.False(t, OwnerOnly(Actor{}, "").Allowed)
}

// The predicates are pure ownership checks: the admin role carries no
// bypass here. Administrative power is confined to the /admin routes.
func TestRoleGrantsNoOwnershipBypass(t *testing.T) {
	admin := Actor{UserID: "root", Role: RoleAdmin}

	assert.False(t, SelfOnly(admin, "alice").Allowed)
	assert.False(t, OwnerOnly(admin, "alice").Allowed)
	assert.False(t, ContractParty(admin, "manager", "performer").Allowed)
	assert.False(t, ContractOwner(admin, "manager").Allowed)

	// An admin still passes when they actually are the owner.
	assert.True(t, SelfOnly(admin, "root").Allowed)
	assert.True(t, OwnerOnly(admin, "root").Allowed)
}

func TestContractParty(t *testing.T) {
	offeror := Actor{UserID: "manager"}
	offereeOwner := Actor{UserID: "performer"}
	stranger := Actor{UserID: "stranger"}

	assert.True(t, ContractParty(offeror, "manager", "performer").Allowed)
	assert.True(t, ContractParty(offereeOwner, "manager", "performer").Allowed)
	assert.False(t, ContractParty(stranger, "manager", "performer").Allowed)

	dec := ContractParty(Actor{}, "manager", "performer")
	assert.False(t, dec.Allowed)
	assert.Equal(t, "authentication required", dec.Reason)
}

func TestContractOwner(t *testing.T) {
	offeror := Actor{UserID: "manager"}
	offereeOwner := Actor{UserID: "performer"}

	assert.True(t, ContractOwner(offeror, "manager").Allowed)
	assert.False(
		t,
		ContractOwner(offereeOwner, "manager").Allowed,
		"the receiving side must not be able to modify",
	)
	assert.False(t, ContractOwner(Actor{}, "").Allowed)
}
