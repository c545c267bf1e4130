package messaging

// FieldDescriptor describes the type and binary size of one field.
// The set of implementations is closed.
type FieldDescriptor interface {
	// Name returns the field name. It may be empty.
	Name() string

	// Kind returns the field variant.
	Kind() FieldKind

	// FixedSize returns true if the field always occupies MaxSize bytes.
	FixedSize() bool

	// LimitedSize returns true if the field has an upper bound on its size.
	LimitedSize() bool

	// MaxSize returns the maximum size in bytes, or 0 if LimitedSize is false.
	MaxSize() int

	// Accept dispatches to the matching visitor method.
	Accept(v FieldDescriptorVisitor)

	sealed()
}

type fieldBase struct {
	name string
}

func (b fieldBase) Name() string { return b.name }

func (fieldBase) sealed() {}

// fixedField is embedded by scalars whose size never varies.
type fixedField struct {
	fieldBase
	size int
}

func (f fixedField) FixedSize() bool   { return true }
func (f fixedField) LimitedSize() bool { return true }
func (f fixedField) MaxSize() int      { return f.size }

// BoolFieldDescriptor is a single byte, 0 or 1.
type BoolFieldDescriptor struct{ fixedField }

// NewBoolField creates a bool field.
func NewBoolField(name string) *BoolFieldDescriptor {
	return &BoolFieldDescriptor{fixedField{fieldBase{name}, 1}}
}

func (d *BoolFieldDescriptor) Kind() FieldKind                 { return KindBool }
func (d *BoolFieldDescriptor) Accept(v FieldDescriptorVisitor) { v.VisitBool(d) }

// IPV4FieldDescriptor is a 4 byte address in network order.
type IPV4FieldDescriptor struct{ fixedField }

// NewIPV4Field creates an IPv4 address field.
func NewIPV4Field(name string) *IPV4FieldDescriptor {
	return &IPV4FieldDescriptor{fixedField{fieldBase{name}, 4}}
}

func (d *IPV4FieldDescriptor) Kind() FieldKind                 { return KindIPV4 }
func (d *IPV4FieldDescriptor) Accept(v FieldDescriptorVisitor) { v.VisitIPV4(d) }

// IPV6FieldDescriptor is a 16 byte address in network order.
type IPV6FieldDescriptor struct{ fixedField }

// NewIPV6Field creates an IPv6 address field.
func NewIPV6Field(name string) *IPV6FieldDescriptor {
	return &IPV6FieldDescriptor{fixedField{fieldBase{name}, 16}}
}

func (d *IPV6FieldDescriptor) Kind() FieldKind                 { return KindIPV6 }
func (d *IPV6FieldDescriptor) Accept(v FieldDescriptorVisitor) { v.VisitIPV6(d) }

// MACFieldDescriptor is a 6 byte hardware address.
type MACFieldDescriptor struct{ fixedField }

// NewMACField creates a MAC address field.
func NewMACField(name string) *MACFieldDescriptor {
	return &MACFieldDescriptor{fixedField{fieldBase{name}, 6}}
}

func (d *MACFieldDescriptor) Kind() FieldKind                 { return KindMAC }
func (d *MACFieldDescriptor) Accept(v FieldDescriptorVisitor) { v.VisitMAC(d) }

// UIDFieldDescriptor is a 6 byte RDM UID.
type UIDFieldDescriptor struct{ fixedField }

// NewUIDField creates a UID field.
func NewUIDField(name string) *UIDFieldDescriptor {
	return &UIDFieldDescriptor{fixedField{fieldBase{name}, 6}}
}

func (d *UIDFieldDescriptor) Kind() FieldKind                 { return KindUID }
func (d *UIDFieldDescriptor) Accept(v FieldDescriptorVisitor) { v.VisitUID(d) }

// StringFieldDescriptor is a run of bytes between MinSize and MaxSize long.
type StringFieldDescriptor struct {
	fieldBase
	minSize uint8
	maxSize uint8
}

// NewStringField creates a string field. A field with minSize == maxSize is
// fixed size; shorter values are NUL padded on the wire.
func NewStringField(name string, minSize, maxSize uint8) *StringFieldDescriptor {
	return &StringFieldDescriptor{fieldBase: fieldBase{name}, minSize: minSize, maxSize: maxSize}
}

func (d *StringFieldDescriptor) Kind() FieldKind   { return KindString }
func (d *StringFieldDescriptor) FixedSize() bool   { return d.minSize == d.maxSize }
func (d *StringFieldDescriptor) LimitedSize() bool { return true }
func (d *StringFieldDescriptor) MaxSize() int      { return int(d.maxSize) }
func (d *StringFieldDescriptor) MinSize() int      { return int(d.minSize) }

func (d *StringFieldDescriptor) Accept(v FieldDescriptorVisitor) { v.VisitString(d) }

// Compile-time interface satisfaction checks.
var (
	_ FieldDescriptor = (*BoolFieldDescriptor)(nil)
	_ FieldDescriptor = (*IPV4FieldDescriptor)(nil)
	_ FieldDescriptor = (*IPV6FieldDescriptor)(nil)
	_ FieldDescriptor = (*MACFieldDescriptor)(nil)
	_ FieldDescriptor = (*UIDFieldDescriptor)(nil)
	_ FieldDescriptor = (*StringFieldDescriptor)(nil)
	_ FieldDescriptor = (*GroupFieldDescriptor)(nil)
	_ FieldDescriptor = (*UInt8FieldDescriptor)(nil)
	_ FieldDescriptor = (*Int64FieldDescriptor)(nil)
)
