package messaging

import (
	"fmt"
	"strings"
)

// indenter accumulates indented lines.
type indenter struct {
	width int
	depth int
	b     strings.Builder
}

func (in *indenter) line(format string, args ...any) {
	in.b.WriteString(strings.Repeat(" ", in.depth*in.width))
	fmt.Fprintf(&in.b, format, args...)
	in.b.WriteByte('\n')
}

func (in *indenter) reset() {
	in.b.Reset()
	in.depth = 0
}

// MessagePrinter renders a Message as "name: value" lines, with groups as
// indented "name {" ... "}" blocks.
type MessagePrinter struct {
	// IndentWidth is the number of spaces per group level. Zero prints
	// groups flat.
	IndentWidth int

	out indenter
}

// NewMessagePrinter creates a MessagePrinter with two space indentation.
func NewMessagePrinter() *MessagePrinter {
	return &MessagePrinter{IndentWidth: 2}
}

// AsString renders m. A nil message renders as "".
func (p *MessagePrinter) AsString(m *Message) string {
	if m == nil {
		return ""
	}
	p.out.reset()
	p.out.width = p.IndentWidth
	m.Accept(p)
	return p.out.b.String()
}

// FormatInteger renders an integer the way MessagePrinter does: the label if
// one matches, otherwise "raw x 10 ^ multiplier" when a multiplier is set,
// otherwise the decimal value.
func FormatInteger(f IntegerField) string {
	if label := f.Label(); label != "" {
		return label
	}
	if m := f.IntegerDescriptor().Multiplier(); m != 0 {
		return fmt.Sprintf("%s x 10 ^ %d", f.FormatValue(), m)
	}
	return f.FormatValue()
}

func (p *MessagePrinter) VisitBool(f *BoolMessageField) {
	p.out.line("%s: %t", f.descriptor.Name(), f.value)
}

func (p *MessagePrinter) VisitInteger(f IntegerField) {
	p.out.line("%s: %s", f.FieldDescriptor().Name(), FormatInteger(f))
}

func (p *MessagePrinter) VisitIPV4(f *IPV4MessageField) {
	p.out.line("%s: %s", f.descriptor.Name(), f.Value())
}

func (p *MessagePrinter) VisitIPV6(f *IPV6MessageField) {
	p.out.line("%s: %s", f.descriptor.Name(), f.Value())
}

func (p *MessagePrinter) VisitMAC(f *MACMessageField) {
	p.out.line("%s: %s", f.descriptor.Name(), f.value)
}

func (p *MessagePrinter) VisitUID(f *UIDMessageField) {
	p.out.line("%s: %s", f.descriptor.Name(), f.value)
}

func (p *MessagePrinter) VisitString(f *StringMessageField) {
	p.out.line("%s: %s", f.descriptor.Name(), f.value)
}

func (p *MessagePrinter) VisitGroup(f *GroupMessageField) {
	p.out.line("%s {", f.descriptor.Name())
	p.out.depth++
}

func (p *MessagePrinter) PostVisitGroup(*GroupMessageField) {
	p.out.depth--
	p.out.line("}")
}

// SchemaPrinter renders a Descriptor as "name: type" lines.
type SchemaPrinter struct {
	// IncludeIntervals appends integer ranges, e.g. "level: uint8, 0 - 100".
	IncludeIntervals bool

	// IncludeLabels lists integer labels on indented lines below the field.
	IncludeLabels bool

	// IndentWidth is the number of spaces per group level.
	IndentWidth int

	out indenter
}

// NewSchemaPrinter creates a SchemaPrinter that prints types only.
func NewSchemaPrinter() *SchemaPrinter {
	return &SchemaPrinter{IndentWidth: 2}
}

// AsString renders d. A nil descriptor renders as "".
func (p *SchemaPrinter) AsString(d *Descriptor) string {
	if d == nil {
		return ""
	}
	p.out.reset()
	p.out.width = p.IndentWidth
	d.Accept(p)
	return p.out.b.String()
}

func (p *SchemaPrinter) Descend() bool { return true }

func (p *SchemaPrinter) scalar(d FieldDescriptor) {
	p.out.line("%s: %s", d.Name(), d.Kind())
}

func (p *SchemaPrinter) VisitBool(d *BoolFieldDescriptor) { p.scalar(d) }
func (p *SchemaPrinter) VisitIPV4(d *IPV4FieldDescriptor) { p.scalar(d) }
func (p *SchemaPrinter) VisitIPV6(d *IPV6FieldDescriptor) { p.scalar(d) }
func (p *SchemaPrinter) VisitMAC(d *MACFieldDescriptor)   { p.scalar(d) }
func (p *SchemaPrinter) VisitUID(d *UIDFieldDescriptor)   { p.scalar(d) }

func (p *SchemaPrinter) VisitString(d *StringFieldDescriptor) {
	p.out.line("%s: string [%d, %d]", d.Name(), d.MinSize(), d.MaxSize())
}

func (p *SchemaPrinter) VisitInteger(d IntegerDescriptor) {
	heading := fmt.Sprintf("%s: %s", d.Name(), d.Kind())
	if p.IncludeIntervals {
		if intervals := d.FormatIntervals(); len(intervals) > 0 {
			heading += ", " + strings.Join(intervals, ", ")
		}
	}
	p.out.line("%s", heading)

	if p.IncludeLabels {
		p.out.depth++
		for _, l := range d.FormatLabels() {
			p.out.line("%s", l)
		}
		p.out.depth--
	}
}

func (p *SchemaPrinter) VisitGroup(d *GroupFieldDescriptor) {
	p.out.line("%s {", d.Name())
	p.out.depth++
}

func (p *SchemaPrinter) PostVisitGroup(*GroupFieldDescriptor) {
	p.out.depth--
	p.out.line("}")
}

var (
	_ MessageVisitor         = (*MessagePrinter)(nil)
	_ FieldDescriptorVisitor = (*SchemaPrinter)(nil)
)
