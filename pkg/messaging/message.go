package messaging

import (
	"fmt"
	"net/netip"

	"github.com/rdm-protocol/rdm-go/pkg/uid"
)

// Message is a value tree built against a Descriptor.
type Message struct {
	fields []MessageField
}

// NewMessage creates a Message from top-level fields. The slice is copied.
func NewMessage(fields []MessageField) *Message {
	return &Message{fields: append([]MessageField(nil), fields...)}
}

// FieldCount returns the number of top-level fields. Each repetition of a
// group counts as one field.
func (m *Message) FieldCount() int { return len(m.fields) }

// Field returns the i'th top-level field, or nil if out of range.
func (m *Message) Field(i int) MessageField {
	if i < 0 || i >= len(m.fields) {
		return nil
	}
	return m.fields[i]
}

// Fields returns a copy of the top-level fields.
func (m *Message) Fields() []MessageField {
	return append([]MessageField(nil), m.fields...)
}

// Accept visits every field in order, descending into groups.
func (m *Message) Accept(v MessageVisitor) {
	for _, f := range m.fields {
		f.Accept(v)
	}
}

// MessageField is one value in a Message.
type MessageField interface {
	// FieldDescriptor returns the descriptor the value was built against.
	FieldDescriptor() FieldDescriptor

	Accept(v MessageVisitor)

	messageField()
}

// BoolMessageField holds a bool.
type BoolMessageField struct {
	descriptor *BoolFieldDescriptor
	value      bool
}

func NewBoolMessageField(d *BoolFieldDescriptor, value bool) *BoolMessageField {
	return &BoolMessageField{descriptor: d, value: value}
}

func (f *BoolMessageField) Descriptor() *BoolFieldDescriptor { return f.descriptor }
func (f *BoolMessageField) FieldDescriptor() FieldDescriptor { return f.descriptor }
func (f *BoolMessageField) Value() bool                      { return f.value }
func (f *BoolMessageField) Accept(v MessageVisitor)          { v.VisitBool(f) }
func (*BoolMessageField) messageField()                      {}

// IntegerField is the width-independent view of an integer value.
type IntegerField interface {
	MessageField

	IntegerDescriptor() IntegerDescriptor

	// Raw returns the value sign-extended to 64 bits.
	Raw() uint64

	// Label returns the descriptor's label for the value, or "".
	Label() string

	// FormatValue returns the value in decimal.
	FormatValue() string
}

// IntegerMessageField holds an integer of type T.
type IntegerMessageField[T Integer] struct {
	descriptor *IntegerFieldDescriptor[T]
	value      T
}

func NewIntegerMessageField[T Integer](d *IntegerFieldDescriptor[T], value T) *IntegerMessageField[T] {
	return &IntegerMessageField[T]{descriptor: d, value: value}
}

func (f *IntegerMessageField[T]) Descriptor() *IntegerFieldDescriptor[T] { return f.descriptor }
func (f *IntegerMessageField[T]) FieldDescriptor() FieldDescriptor       { return f.descriptor }
func (f *IntegerMessageField[T]) IntegerDescriptor() IntegerDescriptor   { return f.descriptor }
func (f *IntegerMessageField[T]) Value() T                               { return f.value }
func (f *IntegerMessageField[T]) Raw() uint64                            { return uint64(f.value) }
func (f *IntegerMessageField[T]) Label() string                          { return f.descriptor.LookupValue(f.value) }
func (f *IntegerMessageField[T]) FormatValue() string                    { return fmt.Sprintf("%d", f.value) }
func (f *IntegerMessageField[T]) Accept(v MessageVisitor)                { v.VisitInteger(f) }
func (*IntegerMessageField[T]) messageField()                            {}

type (
	UInt8MessageField  = IntegerMessageField[uint8]
	UInt16MessageField = IntegerMessageField[uint16]
	UInt32MessageField = IntegerMessageField[uint32]
	UInt64MessageField = IntegerMessageField[uint64]
	Int8MessageField   = IntegerMessageField[int8]
	Int16MessageField  = IntegerMessageField[int16]
	Int32MessageField  = IntegerMessageField[int32]
	Int64MessageField  = IntegerMessageField[int64]
)

// IPV4MessageField holds an IPv4 address.
type IPV4MessageField struct {
	descriptor *IPV4FieldDescriptor
	addr       [4]byte
}

// NewIPV4MessageField creates an IPv4 value. IPv4-mapped IPv6 addresses are
// unmapped; any other non-IPv4 address is stored as 0.0.0.0.
func NewIPV4MessageField(d *IPV4FieldDescriptor, addr netip.Addr) *IPV4MessageField {
	f := &IPV4MessageField{descriptor: d}
	if a := addr.Unmap(); a.Is4() {
		f.addr = a.As4()
	}
	return f
}

func (f *IPV4MessageField) Descriptor() *IPV4FieldDescriptor { return f.descriptor }
func (f *IPV4MessageField) FieldDescriptor() FieldDescriptor { return f.descriptor }
func (f *IPV4MessageField) Value() netip.Addr                { return netip.AddrFrom4(f.addr) }
func (f *IPV4MessageField) Bytes() [4]byte                   { return f.addr }
func (f *IPV4MessageField) Accept(v MessageVisitor)          { v.VisitIPV4(f) }
func (*IPV4MessageField) messageField()                      {}

// IPV6MessageField holds an IPv6 address.
type IPV6MessageField struct {
	descriptor *IPV6FieldDescriptor
	addr       [16]byte
}

// NewIPV6MessageField creates an IPv6 value. IPv4 addresses are stored in
// their IPv4-mapped form.
func NewIPV6MessageField(d *IPV6FieldDescriptor, addr netip.Addr) *IPV6MessageField {
	return &IPV6MessageField{descriptor: d, addr: addr.As16()}
}

func (f *IPV6MessageField) Descriptor() *IPV6FieldDescriptor { return f.descriptor }
func (f *IPV6MessageField) FieldDescriptor() FieldDescriptor { return f.descriptor }
func (f *IPV6MessageField) Value() netip.Addr                { return netip.AddrFrom16(f.addr) }
func (f *IPV6MessageField) Bytes() [16]byte                  { return f.addr }
func (f *IPV6MessageField) Accept(v MessageVisitor)          { v.VisitIPV6(f) }
func (*IPV6MessageField) messageField()                      {}

// MACMessageField holds a MAC address.
type MACMessageField struct {
	descriptor *MACFieldDescriptor
	value      MACAddress
}

func NewMACMessageField(d *MACFieldDescriptor, value MACAddress) *MACMessageField {
	return &MACMessageField{descriptor: d, value: value}
}

func (f *MACMessageField) Descriptor() *MACFieldDescriptor  { return f.descriptor }
func (f *MACMessageField) FieldDescriptor() FieldDescriptor { return f.descriptor }
func (f *MACMessageField) Value() MACAddress                { return f.value }
func (f *MACMessageField) Accept(v MessageVisitor)          { v.VisitMAC(f) }
func (*MACMessageField) messageField()                      {}

// UIDMessageField holds an RDM UID.
type UIDMessageField struct {
	descriptor *UIDFieldDescriptor
	value      uid.UID
}

func NewUIDMessageField(d *UIDFieldDescriptor, value uid.UID) *UIDMessageField {
	return &UIDMessageField{descriptor: d, value: value}
}

func (f *UIDMessageField) Descriptor() *UIDFieldDescriptor  { return f.descriptor }
func (f *UIDMessageField) FieldDescriptor() FieldDescriptor { return f.descriptor }
func (f *UIDMessageField) Value() uid.UID                   { return f.value }
func (f *UIDMessageField) Accept(v MessageVisitor)          { v.VisitUID(f) }
func (*UIDMessageField) messageField()                      {}

// StringMessageField holds a string.
type StringMessageField struct {
	descriptor *StringFieldDescriptor
	value      string
}

func NewStringMessageField(d *StringFieldDescriptor, value string) *StringMessageField {
	return &StringMessageField{descriptor: d, value: value}
}

func (f *StringMessageField) Descriptor() *StringFieldDescriptor { return f.descriptor }
func (f *StringMessageField) FieldDescriptor() FieldDescriptor   { return f.descriptor }
func (f *StringMessageField) Value() string                      { return f.value }
func (f *StringMessageField) Accept(v MessageVisitor)            { v.VisitString(f) }
func (*StringMessageField) messageField()                        {}

// GroupMessageField holds one repetition of a group's block.
type GroupMessageField struct {
	descriptor *GroupFieldDescriptor
	fields     []MessageField
}

// NewGroupMessageField creates one block of a group. The slice is copied.
func NewGroupMessageField(d *GroupFieldDescriptor, fields []MessageField) *GroupMessageField {
	return &GroupMessageField{descriptor: d, fields: append([]MessageField(nil), fields...)}
}

func (f *GroupMessageField) Descriptor() *GroupFieldDescriptor { return f.descriptor }
func (f *GroupMessageField) FieldDescriptor() FieldDescriptor  { return f.descriptor }
func (*GroupMessageField) messageField()                       {}

// FieldCount returns the number of fields in this block.
func (f *GroupMessageField) FieldCount() int { return len(f.fields) }

// Field returns the i'th field of the block, or nil if out of range.
func (f *GroupMessageField) Field(i int) MessageField {
	if i < 0 || i >= len(f.fields) {
		return nil
	}
	return f.fields[i]
}

// Fields returns a copy of the block's fields.
func (f *GroupMessageField) Fields() []MessageField {
	return append([]MessageField(nil), f.fields...)
}

// Accept visits the group, its children, then calls PostVisitGroup.
func (f *GroupMessageField) Accept(v MessageVisitor) {
	v.VisitGroup(f)
	for _, c := range f.fields {
		c.Accept(v)
	}
	v.PostVisitGroup(f)
}

var (
	_ MessageField = (*BoolMessageField)(nil)
	_ IntegerField = (*UInt16MessageField)(nil)
	_ MessageField = (*IPV4MessageField)(nil)
	_ MessageField = (*IPV6MessageField)(nil)
	_ MessageField = (*MACMessageField)(nil)
	_ MessageField = (*UIDMessageField)(nil)
	_ MessageField = (*StringMessageField)(nil)
	_ MessageField = (*GroupMessageField)(nil)
)
