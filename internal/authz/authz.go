// AngelaMos | 2026
// authz.go

// Package authz holds the access rules for booking resources as pure
// predicates. Services build an Actor from the authenticated request and ask
// for a Decision; no I/O happens here, which keeps every rule testable in
// isolation.
//
// The predicates know nothing about roles. Administrative power is a routing
// concern: the /admin surface is gated by its own middleware and its
// operations skip these checks entirely, so an admin acting through the
// regular surface is bound by the same ownership rules as everyone else.
package authz

const RoleAdmin = "admin"

// Actor is the authenticated principal a request acts as.
type Actor struct {
	UserID string
	Role   string
}

// Decision is the outcome of a rule. Reason is set only on denial and is
// safe to surface to the caller.
type Decision struct {
	Allowed bool
	Reason  string
}

func Allow() Decision {
	return Decision{Allowed: true}
}

func Deny(reason string) Decision {
	return Decision{Reason: reason}
}

// SelfOnly permits an actor to touch their own user record.
func SelfOnly(actor Actor, subjectUserID string) Decision {
	if actor.UserID != "" && actor.UserID == subjectUserID {
		return Allow()
	}
	return Deny("you may only access your own account")
}

// OwnerOnly permits only the owner of a resource.
func OwnerOnly(actor Actor, ownerID string) Decision {
	if actor.UserID != "" && actor.UserID == ownerID {
		return Allow()
	}
	return Deny("only the owner may perform this action")
}

// ContractParty permits either side of a contract: the user who issued it or
// the user who owns the profile it was issued to.
func ContractParty(actor Actor, offerorID, offereeOwnerID string) Decision {
	if actor.UserID == "" {
		return Deny("authentication required")
	}
	if actor.UserID == offerorID || actor.UserID == offereeOwnerID {
		return Allow()
	}
	return Deny("you are not a party to this contract")
}

// ContractOwner permits only the issuing side of a contract. Mutations run
// through this rule; the offeree can read but never modify.
func ContractOwner(actor Actor, offerorID string) Decision {
	if actor.UserID != "" && actor.UserID == offerorID {
		return Allow()
	}
	return Deny("only the contract issuer may perform this action")
}
