package entity

import "strings"

// AddressSuffix is the user-server suffix the messaging client expects on a recipient.
const AddressSuffix = "@c.us"

type Address string

// NormalizeAddress appends AddressSuffix unless the number already carries it.
// Any non-empty string is accepted; there is no phone format checking.
func NormalizeAddress(number string) Address {
	if strings.HasSuffix(number, AddressSuffix) {
		return Address(number)
	}
	return Address(number + AddressSuffix)
}

// User returns the part before the suffix (the bare phone number).
func (a Address) User() string {
	return strings.TrimSuffix(string(a), AddressSuffix)
}

func (a Address) String() string {
	return string(a)
}
