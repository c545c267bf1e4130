package rdm

import (
	"github.com/rdm-protocol/rdm-go/pkg/messaging"
)

// FieldSizeResult is the outcome of VariableFieldSizeCalculator.
type FieldSizeResult uint8

const (
	// TooSmall means the payload is shorter than the minimum layout.
	TooSmall FieldSizeResult = iota
	// TooLarge means the payload is longer than the maximum layout.
	TooLarge
	// FixedSize means there is no variable field and the length fits exactly.
	FixedSize
	// VariableString means the returned size is the variable string length.
	VariableString
	// VariableGroup means the returned size is the group repetition count.
	VariableGroup
	// MultipleVariableFields means more than one field has variable size.
	MultipleVariableFields
	// NestedVariableGroups means the variable group has a variable block.
	NestedVariableGroups
	// MismatchedSize means the remaining bytes are not whole group blocks.
	MismatchedSize
)

var fieldSizeResultNames = []string{
	"TOO_SMALL",
	"TOO_LARGE",
	"FIXED_SIZE",
	"VARIABLE_STRING",
	"VARIABLE_GROUP",
	"MULTIPLE_VARIABLE_FIELDS",
	"NESTED_VARIABLE_GROUPS",
	"MISMATCHED_SIZE",
}

func (r FieldSizeResult) String() string {
	if int(r) < len(fieldSizeResultNames) {
		return fieldSizeResultNames[r]
	}
	return "UNKNOWN"
}

// VariableFieldSizeCalculator works out how many bytes a descriptor's single
// variable sized top-level field occupies in a payload of a given length.
//
// A calculator is not safe for concurrent use.
type VariableFieldSizeCalculator struct {
	messaging.NoopFieldDescriptorVisitor
	fixedSizeSum   int
	variableString []*messaging.StringFieldDescriptor
	variableGroup  []*messaging.GroupFieldDescriptor
}

// NewVariableFieldSizeCalculator creates a calculator.
func NewVariableFieldSizeCalculator() *VariableFieldSizeCalculator {
	return &VariableFieldSizeCalculator{}
}

// CalculateFieldSize classifies a payload of length bytes against d. For
// VariableString the int is the string length, for VariableGroup the
// repetition count; otherwise it is 0.
func (c *VariableFieldSizeCalculator) CalculateFieldSize(length int, d *messaging.Descriptor) (FieldSizeResult, int) {
	c.fixedSizeSum = 0
	c.variableString = c.variableString[:0]
	c.variableGroup = c.variableGroup[:0]

	d.Accept(c)

	if c.fixedSizeSum > length {
		return TooSmall, 0
	}

	variableCount := len(c.variableString) + len(c.variableGroup)
	if variableCount > 1 {
		return MultipleVariableFields, 0
	}

	remaining := length - c.fixedSizeSum
	if variableCount == 0 {
		if remaining == 0 {
			return FixedSize, 0
		}
		return TooLarge, 0
	}

	if len(c.variableString) == 1 {
		s := c.variableString[0]
		if remaining < s.MinSize() {
			return TooSmall, 0
		}
		if remaining > s.MaxSize() {
			return TooLarge, 0
		}
		return VariableString, remaining
	}

	g := c.variableGroup[0]
	if !g.FixedBlockSize() {
		return NestedVariableGroups, 0
	}
	blockSize := g.BlockSize()
	maxBlocks, limited := g.MaxBlocks()

	if blockSize == 0 {
		// Empty blocks carry no data; only the minimum count is implied.
		if remaining != 0 {
			return TooLarge, 0
		}
		return VariableGroup, int(g.MinBlocks())
	}
	if limited && remaining > blockSize*int(maxBlocks) {
		return TooLarge, 0
	}
	if remaining%blockSize != 0 {
		return MismatchedSize, 0
	}
	blocks := remaining / blockSize
	if blocks < int(g.MinBlocks()) {
		return TooSmall, 0
	}
	return VariableGroup, blocks
}

// Descend is false: only top-level fields are classified.
func (c *VariableFieldSizeCalculator) Descend() bool { return false }

func (c *VariableFieldSizeCalculator) addFixed(d messaging.FieldDescriptor) {
	c.fixedSizeSum += d.MaxSize()
}

func (c *VariableFieldSizeCalculator) VisitBool(d *messaging.BoolFieldDescriptor) { c.addFixed(d) }
func (c *VariableFieldSizeCalculator) VisitInteger(d messaging.IntegerDescriptor) { c.addFixed(d) }
func (c *VariableFieldSizeCalculator) VisitIPV4(d *messaging.IPV4FieldDescriptor) { c.addFixed(d) }
func (c *VariableFieldSizeCalculator) VisitIPV6(d *messaging.IPV6FieldDescriptor) { c.addFixed(d) }
func (c *VariableFieldSizeCalculator) VisitMAC(d *messaging.MACFieldDescriptor)   { c.addFixed(d) }
func (c *VariableFieldSizeCalculator) VisitUID(d *messaging.UIDFieldDescriptor)   { c.addFixed(d) }

func (c *VariableFieldSizeCalculator) VisitString(d *messaging.StringFieldDescriptor) {
	if d.FixedSize() {
		c.addFixed(d)
		return
	}
	c.variableString = append(c.variableString, d)
}

func (c *VariableFieldSizeCalculator) VisitGroup(d *messaging.GroupFieldDescriptor) {
	if d.FixedSize() {
		c.addFixed(d)
		return
	}
	c.variableGroup = append(c.variableGroup, d)
}
