package pidstore

import (
	"fmt"
	"strings"
)

// Sub-device addresses.
const (
	RootSubDevice = 0
	MaxSubDevice  = 512
	AllSubDevices = 0xffff
)

// SubDeviceValidator is the set of sub-devices a command may address.
type SubDeviceValidator uint8

const (
	// AnySubDevice allows the root, any sub-device, or all sub-devices.
	AnySubDevice SubDeviceValidator = iota
	// RootDevice allows only the root device.
	RootDevice
	// NonBroadcastSubDevice allows the root or one sub-device.
	NonBroadcastSubDevice
	// SpecificSubDevice allows exactly one sub-device, never the root.
	SpecificSubDevice
)

// Valid reports whether subDevice is allowed.
func (v SubDeviceValidator) Valid(subDevice uint16) bool {
	switch v {
	case RootDevice:
		return subDevice == RootSubDevice
	case NonBroadcastSubDevice:
		return subDevice <= MaxSubDevice
	case SpecificSubDevice:
		return subDevice >= 1 && subDevice <= MaxSubDevice
	default:
		return subDevice <= MaxSubDevice || subDevice == AllSubDevices
	}
}

var subDeviceNames = map[SubDeviceValidator]string{
	AnySubDevice:          "root_or_all_subdevice",
	RootDevice:            "root_device",
	NonBroadcastSubDevice: "root_or_subdevice",
	SpecificSubDevice:     "only_subdevices",
}

// String returns the name used in pid store files.
func (v SubDeviceValidator) String() string {
	if s, ok := subDeviceNames[v]; ok {
		return s
	}
	return fmt.Sprintf("SubDeviceValidator(%d)", uint8(v))
}

// ParseSubDeviceValidator parses a pid store range name. An empty name
// means AnySubDevice.
func ParseSubDeviceValidator(s string) (SubDeviceValidator, error) {
	if s == "" {
		return AnySubDevice, nil
	}
	for v, name := range subDeviceNames {
		if strings.EqualFold(name, s) {
			return v, nil
		}
	}
	return AnySubDevice, fmt.Errorf("%w: %q", ErrUnknownSubDeviceRange, s)
}
