// Package uid implements the 48-bit RDM unique identifier.
//
// A UID is a 16-bit ESTA manufacturer code followed by a 32-bit device id.
// On the wire it is 6 bytes, both parts big-endian. The text form is
// "MMMM:DDDDDDDD" in hex.
package uid
