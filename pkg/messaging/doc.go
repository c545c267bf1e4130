// Package messaging defines self-describing RDM message schemas and values.
//
// A Descriptor is an ordered list of FieldDescriptors that describes the
// binary layout of one parameter payload. Field descriptors form a closed set:
// booleans, 8 to 64 bit integers, IPv4 and IPv6 addresses, MAC addresses,
// UIDs, strings and repeating groups of fields.
//
// A Message is the value tree parallel to a Descriptor. Each MessageField
// keeps a pointer to the descriptor it was built from. A repeating group
// contributes one GroupMessageField per repetition.
//
// Both trees are walked with visitors. FieldDescriptorVisitor.Descend controls
// whether group children are visited; PostVisitGroup always follows VisitGroup.
//
// The binary codec lives in package rdm.
package messaging
