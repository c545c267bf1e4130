package messaging

// Descriptor is the schema for one message: a name and an ordered list of
// fields. It is immutable once built and safe to share between goroutines.
type Descriptor struct {
	name   string
	fields []FieldDescriptor
}

// NewDescriptor creates a Descriptor. The field slice is copied.
func NewDescriptor(name string, fields []FieldDescriptor) *Descriptor {
	return &Descriptor{
		name:   name,
		fields: append([]FieldDescriptor(nil), fields...),
	}
}

// Name returns the descriptor name.
func (d *Descriptor) Name() string { return d.name }

// FieldCount returns the number of top-level fields.
func (d *Descriptor) FieldCount() int { return len(d.fields) }

// Field returns the i'th top-level field, or nil if out of range.
func (d *Descriptor) Field(i int) FieldDescriptor {
	if i < 0 || i >= len(d.fields) {
		return nil
	}
	return d.fields[i]
}

// Fields returns a copy of the top-level fields.
func (d *Descriptor) Fields() []FieldDescriptor {
	return append([]FieldDescriptor(nil), d.fields...)
}

// Accept visits every top-level field in order.
func (d *Descriptor) Accept(v FieldDescriptorVisitor) {
	for _, f := range d.fields {
		f.Accept(v)
	}
}
