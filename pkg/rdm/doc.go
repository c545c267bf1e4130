// Package rdm packs and unpacks RDM parameter data against descriptors from
// package messaging.
//
// The wire format is a flat concatenation of field encodings in descriptor
// order. There are no length prefixes: the length of at most one variable
// sized field (a string or the repetition count of a group) is inferred from
// the total payload length. DescriptorConsistencyChecker verifies that a
// descriptor satisfies this constraint before it is used.
//
//	checker := rdm.NewDescriptorConsistencyChecker()
//	if !checker.CheckConsistency(desc) {
//	    return errors.New("ambiguous layout")
//	}
//	msg, err := deserializer.InflateMessage(desc, payload)
//
// StringMessageBuilder turns user supplied tokens into a Message; Serializer
// packs it back into bytes.
package rdm
