package messaging

import (
	"fmt"
	"sort"
)

// Integer is the set of integer types a field can carry.
type Integer interface {
	uint8 | uint16 | uint32 | uint64 | int8 | int16 | int32 | int64
}

// Interval is an inclusive range of legal values.
type Interval[T Integer] struct {
	Min T
	Max T
}

// Contains returns true if Min <= v <= Max.
func (i Interval[T]) Contains(v T) bool {
	return v >= i.Min && v <= i.Max
}

// IntegerDescriptor is the width-independent view of an integer field,
// used by code that handles all integer kinds the same way.
type IntegerDescriptor interface {
	FieldDescriptor

	Signed() bool
	IsLittleEndian() bool
	Multiplier() int8
	HasLabels() bool

	// LookupLabelRaw returns the value for label, sign-extended to 64 bits.
	LookupLabelRaw(label string) (uint64, bool)

	// IsValidRaw truncates raw to the field width and checks the intervals.
	IsValidRaw(raw uint64) bool

	// FormatIntervals returns each interval as "min - max".
	FormatIntervals() []string

	// FormatLabels returns each label as "name: value", sorted by name.
	FormatLabels() []string

	// NewFieldFromRaw builds a message field from raw, truncated to the
	// field width.
	NewFieldFromRaw(raw uint64) IntegerField
}

// IntegerFieldDescriptor describes an integer field of type T.
type IntegerFieldDescriptor[T Integer] struct {
	fieldBase
	kind         FieldKind
	littleEndian bool
	multiplier   int8
	intervals    []Interval[T]
	labels       map[string]T
	labelNames   []string
}

type (
	UInt8FieldDescriptor  = IntegerFieldDescriptor[uint8]
	UInt16FieldDescriptor = IntegerFieldDescriptor[uint16]
	UInt32FieldDescriptor = IntegerFieldDescriptor[uint32]
	UInt64FieldDescriptor = IntegerFieldDescriptor[uint64]
	Int8FieldDescriptor   = IntegerFieldDescriptor[int8]
	Int16FieldDescriptor  = IntegerFieldDescriptor[int16]
	Int32FieldDescriptor  = IntegerFieldDescriptor[int32]
	Int64FieldDescriptor  = IntegerFieldDescriptor[int64]
)

// NewIntegerField creates an unconstrained integer field. Multi-byte values
// are big-endian unless littleEndian is set. Values are displayed as
// raw x 10 ^ multiplier.
func NewIntegerField[T Integer](name string, littleEndian bool, multiplier int8) *IntegerFieldDescriptor[T] {
	return NewConstrainedIntegerField[T](name, nil, nil, littleEndian, multiplier)
}

// NewConstrainedIntegerField creates an integer field restricted to the
// given intervals, with optional labels. An empty interval list allows every
// value. The slices and map are copied.
func NewConstrainedIntegerField[T Integer](name string, intervals []Interval[T], labels map[string]T, littleEndian bool, multiplier int8) *IntegerFieldDescriptor[T] {
	d := &IntegerFieldDescriptor[T]{
		fieldBase:    fieldBase{name},
		kind:         integerKind[T](),
		littleEndian: littleEndian,
		multiplier:   multiplier,
	}
	if len(intervals) > 0 {
		d.intervals = append([]Interval[T](nil), intervals...)
	}
	if len(labels) > 0 {
		d.labels = make(map[string]T, len(labels))
		for k, v := range labels {
			d.labels[k] = v
			d.labelNames = append(d.labelNames, k)
		}
		sort.Strings(d.labelNames)
	}
	return d
}

func integerKind[T Integer]() FieldKind {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return KindUInt8
	case uint16:
		return KindUInt16
	case uint32:
		return KindUInt32
	case uint64:
		return KindUInt64
	case int8:
		return KindInt8
	case int16:
		return KindInt16
	case int32:
		return KindInt32
	default:
		return KindInt64
	}
}

var integerSizes = map[FieldKind]int{
	KindUInt8: 1, KindInt8: 1,
	KindUInt16: 2, KindInt16: 2,
	KindUInt32: 4, KindInt32: 4,
	KindUInt64: 8, KindInt64: 8,
}

func (d *IntegerFieldDescriptor[T]) Kind() FieldKind   { return d.kind }
func (d *IntegerFieldDescriptor[T]) FixedSize() bool   { return true }
func (d *IntegerFieldDescriptor[T]) LimitedSize() bool { return true }
func (d *IntegerFieldDescriptor[T]) MaxSize() int      { return integerSizes[d.kind] }

func (d *IntegerFieldDescriptor[T]) Accept(v FieldDescriptorVisitor) { v.VisitInteger(d) }

// Signed returns true for the intN kinds.
func (d *IntegerFieldDescriptor[T]) Signed() bool { return d.kind >= KindInt8 }

// IsLittleEndian returns the byte order of multi-byte values.
func (d *IntegerFieldDescriptor[T]) IsLittleEndian() bool { return d.littleEndian }

// Multiplier returns the base 10 display exponent.
func (d *IntegerFieldDescriptor[T]) Multiplier() int8 { return d.multiplier }

// Intervals returns a copy of the legal ranges.
func (d *IntegerFieldDescriptor[T]) Intervals() []Interval[T] {
	return append([]Interval[T](nil), d.intervals...)
}

// Labels returns a copy of the label map.
func (d *IntegerFieldDescriptor[T]) Labels() map[string]T {
	out := make(map[string]T, len(d.labels))
	for k, v := range d.labels {
		out[k] = v
	}
	return out
}

func (d *IntegerFieldDescriptor[T]) HasLabels() bool { return len(d.labels) > 0 }

// IsValid reports whether v lies in one of the intervals.
func (d *IntegerFieldDescriptor[T]) IsValid(v T) bool {
	if len(d.intervals) == 0 {
		return true
	}
	for _, i := range d.intervals {
		if i.Contains(v) {
			return true
		}
	}
	return false
}

// LookupLabel returns the value assigned to label.
func (d *IntegerFieldDescriptor[T]) LookupLabel(label string) (T, bool) {
	v, ok := d.labels[label]
	return v, ok
}

// LookupValue returns the first label, in name order, assigned to v, or "".
func (d *IntegerFieldDescriptor[T]) LookupValue(v T) string {
	for _, name := range d.labelNames {
		if d.labels[name] == v {
			return name
		}
	}
	return ""
}

func (d *IntegerFieldDescriptor[T]) LookupLabelRaw(label string) (uint64, bool) {
	v, ok := d.labels[label]
	if !ok {
		return 0, false
	}
	return uint64(v), true
}

func (d *IntegerFieldDescriptor[T]) IsValidRaw(raw uint64) bool {
	return d.IsValid(T(raw))
}

func (d *IntegerFieldDescriptor[T]) FormatIntervals() []string {
	out := make([]string, 0, len(d.intervals))
	for _, i := range d.intervals {
		out = append(out, fmt.Sprintf("%d - %d", i.Min, i.Max))
	}
	return out
}

func (d *IntegerFieldDescriptor[T]) FormatLabels() []string {
	out := make([]string, 0, len(d.labelNames))
	for _, name := range d.labelNames {
		out = append(out, fmt.Sprintf("%s: %d", name, d.labels[name]))
	}
	return out
}

func (d *IntegerFieldDescriptor[T]) NewFieldFromRaw(raw uint64) IntegerField {
	return NewIntegerMessageField(d, T(raw))
}

var _ IntegerDescriptor = (*UInt32FieldDescriptor)(nil)
