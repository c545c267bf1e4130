package messaging

import (
	"errors"
	"fmt"
	"net"
)

// ErrInvalidMAC is returned by ParseMAC.
var ErrInvalidMAC = errors.New("invalid MAC address")

// MACAddress is a 6 byte hardware address.
type MACAddress [6]byte

// ParseMAC parses colon or dash separated hex, e.g. "01:23:45:67:89:ab".
func ParseMAC(s string) (MACAddress, error) {
	hw, err := net.ParseMAC(s)
	if err != nil || len(hw) != 6 {
		return MACAddress{}, fmt.Errorf("%w: %q", ErrInvalidMAC, s)
	}
	var m MACAddress
	copy(m[:], hw)
	return m, nil
}

// String returns the lower-case colon separated form.
func (m MACAddress) String() string {
	return net.HardwareAddr(m[:]).String()
}
