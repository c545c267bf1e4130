package uid

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Size is the wire length of a UID in bytes.
const Size = 6

const (
	// AllManufacturers is the manufacturer code addressing every manufacturer.
	AllManufacturers uint16 = 0xffff
	// AllDevices is the device id addressing every device of a manufacturer.
	AllDevices uint32 = 0xffffffff
	// OpenLightingESTACode is the ESTA code assigned to the Open Lighting Project.
	OpenLightingESTACode uint16 = 0x7a70
)

var (
	ErrShortBuffer = errors.New("buffer too short for UID")
	ErrInvalidUID  = errors.New("invalid UID")
)

// UID is an RDM unique identifier.
type UID struct {
	ManufacturerID uint16
	DeviceID       uint32
}

// New returns the UID for the given manufacturer and device id.
func New(manufacturer uint16, device uint32) UID {
	return UID{ManufacturerID: manufacturer, DeviceID: device}
}

// Broadcast returns the UID addressing all devices.
func Broadcast() UID {
	return UID{ManufacturerID: AllManufacturers, DeviceID: AllDevices}
}

// VendorcastAddress returns the UID addressing all devices of one manufacturer.
func VendorcastAddress(manufacturer uint16) UID {
	return UID{ManufacturerID: manufacturer, DeviceID: AllDevices}
}

// FromBytes reads a UID from the first 6 bytes of b.
func FromBytes(b []byte) (UID, error) {
	if len(b) < Size {
		return UID{}, fmt.Errorf("%w: got %d bytes", ErrShortBuffer, len(b))
	}
	return UID{
		ManufacturerID: binary.BigEndian.Uint16(b[0:2]),
		DeviceID:       binary.BigEndian.Uint32(b[2:6]),
	}, nil
}

// Parse parses the "MMMM:DDDDDDDD" text form.
func Parse(s string) (UID, error) {
	manufacturer, device, ok := strings.Cut(s, ":")
	if !ok || len(manufacturer) == 0 || len(manufacturer) > 4 || len(device) == 0 || len(device) > 8 {
		return UID{}, fmt.Errorf("%w: %q", ErrInvalidUID, s)
	}
	m, err := strconv.ParseUint(manufacturer, 16, 16)
	if err != nil {
		return UID{}, fmt.Errorf("%w: %q", ErrInvalidUID, s)
	}
	d, err := strconv.ParseUint(device, 16, 32)
	if err != nil {
		return UID{}, fmt.Errorf("%w: %q", ErrInvalidUID, s)
	}
	return New(uint16(m), uint32(d)), nil
}

// Bytes returns the wire form.
func (u UID) Bytes() [Size]byte {
	var b [Size]byte
	binary.BigEndian.PutUint16(b[0:2], u.ManufacturerID)
	binary.BigEndian.PutUint32(b[2:6], u.DeviceID)
	return b
}

// AppendBytes appends the wire form to dst.
func (u UID) AppendBytes(dst []byte) []byte {
	dst = binary.BigEndian.AppendUint16(dst, u.ManufacturerID)
	return binary.BigEndian.AppendUint32(dst, u.DeviceID)
}

// String returns the "mmmm:dddddddd" text form.
func (u UID) String() string {
	return fmt.Sprintf("%04x:%08x", u.ManufacturerID, u.DeviceID)
}

// IsBroadcast reports whether u addresses all devices, either of every
// manufacturer or of one (vendorcast).
func (u UID) IsBroadcast() bool {
	return u.DeviceID == AllDevices
}

// DirectedToUID reports whether a message sent to u should be handled by
// device other.
func (u UID) DirectedToUID(other UID) bool {
	if u == other {
		return true
	}
	if !u.IsBroadcast() {
		return false
	}
	return u.ManufacturerID == AllManufacturers || u.ManufacturerID == other.ManufacturerID
}

// Compare orders UIDs by manufacturer then device id.
func (u UID) Compare(other UID) int {
	switch {
	case u.ManufacturerID < other.ManufacturerID:
		return -1
	case u.ManufacturerID > other.ManufacturerID:
		return 1
	case u.DeviceID < other.DeviceID:
		return -1
	case u.DeviceID > other.DeviceID:
		return 1
	}
	return 0
}

// Less reports whether u sorts before other.
func (u UID) Less(other UID) bool {
	return u.Compare(other) < 0
}
