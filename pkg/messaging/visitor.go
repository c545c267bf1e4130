package messaging

// FieldDescriptorVisitor walks a descriptor tree.
type FieldDescriptorVisitor interface {
	// Descend reports whether group children should be visited.
	Descend() bool

	VisitBool(d *BoolFieldDescriptor)
	VisitInteger(d IntegerDescriptor)
	VisitIPV4(d *IPV4FieldDescriptor)
	VisitIPV6(d *IPV6FieldDescriptor)
	VisitMAC(d *MACFieldDescriptor)
	VisitUID(d *UIDFieldDescriptor)
	VisitString(d *StringFieldDescriptor)
	VisitGroup(d *GroupFieldDescriptor)

	// PostVisitGroup is called after a group, whether or not its children
	// were visited.
	PostVisitGroup(d *GroupFieldDescriptor)
}

// NoopFieldDescriptorVisitor implements every visit method as a no-op and
// descends into groups. Embed it to handle only some kinds.
type NoopFieldDescriptorVisitor struct{}

func (NoopFieldDescriptorVisitor) Descend() bool                        { return true }
func (NoopFieldDescriptorVisitor) VisitBool(*BoolFieldDescriptor)       {}
func (NoopFieldDescriptorVisitor) VisitInteger(IntegerDescriptor)       {}
func (NoopFieldDescriptorVisitor) VisitIPV4(*IPV4FieldDescriptor)       {}
func (NoopFieldDescriptorVisitor) VisitIPV6(*IPV6FieldDescriptor)       {}
func (NoopFieldDescriptorVisitor) VisitMAC(*MACFieldDescriptor)         {}
func (NoopFieldDescriptorVisitor) VisitUID(*UIDFieldDescriptor)         {}
func (NoopFieldDescriptorVisitor) VisitString(*StringFieldDescriptor)   {}
func (NoopFieldDescriptorVisitor) VisitGroup(*GroupFieldDescriptor)     {}
func (NoopFieldDescriptorVisitor) PostVisitGroup(*GroupFieldDescriptor) {}

// MessageVisitor walks a message value tree. Group children are always
// visited.
type MessageVisitor interface {
	VisitBool(f *BoolMessageField)
	VisitInteger(f IntegerField)
	VisitIPV4(f *IPV4MessageField)
	VisitIPV6(f *IPV6MessageField)
	VisitMAC(f *MACMessageField)
	VisitUID(f *UIDMessageField)
	VisitString(f *StringMessageField)
	VisitGroup(f *GroupMessageField)
	PostVisitGroup(f *GroupMessageField)
}

// NoopMessageVisitor implements every MessageVisitor method as a no-op.
type NoopMessageVisitor struct{}

func (NoopMessageVisitor) VisitBool(*BoolMessageField)       {}
func (NoopMessageVisitor) VisitInteger(IntegerField)         {}
func (NoopMessageVisitor) VisitIPV4(*IPV4MessageField)       {}
func (NoopMessageVisitor) VisitIPV6(*IPV6MessageField)       {}
func (NoopMessageVisitor) VisitMAC(*MACMessageField)         {}
func (NoopMessageVisitor) VisitUID(*UIDMessageField)         {}
func (NoopMessageVisitor) VisitString(*StringMessageField)   {}
func (NoopMessageVisitor) VisitGroup(*GroupMessageField)     {}
func (NoopMessageVisitor) PostVisitGroup(*GroupMessageField) {}

var (
	_ FieldDescriptorVisitor = NoopFieldDescriptorVisitor{}
	_ MessageVisitor         = NoopMessageVisitor{}
)
