package messaging

// GroupFieldDescriptor is a block of fields repeated between MinBlocks and
// MaxBlocks times. An unlimited group repeats as often as the data allows.
type GroupFieldDescriptor struct {
	fieldBase
	fields    []FieldDescriptor
	minBlocks uint16
	maxBlocks uint16
	unlimited bool

	fixedBlockSize bool
	limitedSize    bool
	blockSize      int
	maxBlockSize   int
}

// NewGroupField creates a group repeated between minBlocks and maxBlocks times.
func NewGroupField(name string, fields []FieldDescriptor, minBlocks, maxBlocks uint16) *GroupFieldDescriptor {
	return newGroup(name, fields, minBlocks, maxBlocks, false)
}

// NewUnlimitedGroupField creates a group with no upper bound on repetitions.
func NewUnlimitedGroupField(name string, fields []FieldDescriptor, minBlocks uint16) *GroupFieldDescriptor {
	return newGroup(name, fields, minBlocks, 0, true)
}

func newGroup(name string, fields []FieldDescriptor, minBlocks, maxBlocks uint16, unlimited bool) *GroupFieldDescriptor {
	g := &GroupFieldDescriptor{
		fieldBase:      fieldBase{name},
		fields:         append([]FieldDescriptor(nil), fields...),
		minBlocks:      minBlocks,
		maxBlocks:      maxBlocks,
		unlimited:      unlimited,
		fixedBlockSize: true,
		limitedSize:    !unlimited,
	}
	for _, f := range g.fields {
		if f.FixedSize() {
			g.blockSize += f.MaxSize()
		} else {
			g.fixedBlockSize = false
		}
		if !f.LimitedSize() {
			g.limitedSize = false
		}
		g.maxBlockSize += f.MaxSize()
	}
	if !g.fixedBlockSize {
		g.blockSize = 0
	}
	return g
}

func (g *GroupFieldDescriptor) Kind() FieldKind { return KindGroup }

// FixedSize returns true if both the block size and the block count are fixed.
func (g *GroupFieldDescriptor) FixedSize() bool {
	return g.fixedBlockSize && g.FixedBlockCount()
}

// LimitedSize returns true if the block count is bounded and every child
// field is bounded.
func (g *GroupFieldDescriptor) LimitedSize() bool { return g.limitedSize }

// MaxSize returns MaxBlockSize x MaxBlocks, or 0 for unbounded groups.
func (g *GroupFieldDescriptor) MaxSize() int {
	if !g.limitedSize {
		return 0
	}
	return g.maxBlockSize * int(g.maxBlocks)
}

// MinBlocks returns the minimum repetition count.
func (g *GroupFieldDescriptor) MinBlocks() uint16 { return g.minBlocks }

// MaxBlocks returns the maximum repetition count. limited is false for
// unlimited groups, in which case n is 0.
func (g *GroupFieldDescriptor) MaxBlocks() (n uint16, limited bool) {
	if g.unlimited {
		return 0, false
	}
	return g.maxBlocks, true
}

// FixedBlockSize returns true if every child field is fixed size.
func (g *GroupFieldDescriptor) FixedBlockSize() bool { return g.fixedBlockSize }

// BlockSize returns the size of one block. Only meaningful when
// FixedBlockSize is true; 0 otherwise.
func (g *GroupFieldDescriptor) BlockSize() int { return g.blockSize }

// MaxBlockSize returns the sum of the children's maximum sizes.
func (g *GroupFieldDescriptor) MaxBlockSize() int { return g.maxBlockSize }

// FixedBlockCount returns true if MinBlocks == MaxBlocks.
func (g *GroupFieldDescriptor) FixedBlockCount() bool {
	return !g.unlimited && g.minBlocks == g.maxBlocks
}

// FieldCount returns the number of fields in one block.
func (g *GroupFieldDescriptor) FieldCount() int { return len(g.fields) }

// Field returns the i'th field of the block, or nil if out of range.
func (g *GroupFieldDescriptor) Field(i int) FieldDescriptor {
	if i < 0 || i >= len(g.fields) {
		return nil
	}
	return g.fields[i]
}

// Fields returns a copy of the block's fields.
func (g *GroupFieldDescriptor) Fields() []FieldDescriptor {
	return append([]FieldDescriptor(nil), g.fields...)
}

// Accept visits the group, then its children if v.Descend() is true, then
// calls PostVisitGroup.
func (g *GroupFieldDescriptor) Accept(v FieldDescriptorVisitor) {
	v.VisitGroup(g)
	if v.Descend() {
		for _, f := range g.fields {
			f.Accept(v)
		}
	}
	v.PostVisitGroup(g)
}
