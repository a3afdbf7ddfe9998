// Package identity derives the acting identity used to de-duplicate
// engagement actions. A verified user acts as "user:<id>"; everyone
// else acts as "ip:<address>". Two anonymous visitors behind the same
// NAT therefore share an identity — a documented limitation, kept to
// deter anonymous ballot stuffing.
package identity

import "fmt"

type Identity string

// Resolve returns the acting identity for a request. userID is nil for
// unauthenticated requests.
func Resolve(userID *uint, clientIP string) Identity {
	if userID != nil {
		return Identity(fmt.Sprintf("user:%d", *userID))
	}
	return Identity("ip:" + clientIP)
}

func (i Identity) String() string { return string(i) }
