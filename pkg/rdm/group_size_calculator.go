package rdm

import (
	"github.com/rdm-protocol/rdm-go/pkg/messaging"
)

// GroupSizeResult is the outcome of GroupSizeCalculator.
type GroupSizeResult uint8

const (
	// InsufficientTokens means there are fewer tokens than the minimum.
	InsufficientTokens GroupSizeResult = iota
	// ExtraTokens means there are more tokens than the maximum.
	ExtraTokens
	// NoVariableGroups means the token count matches a static layout.
	NoVariableGroups
	// SingleVariableGroup means the returned int is the repetition count.
	SingleVariableGroup
	// MultipleVariableGroups means more than one group has a variable count.
	MultipleVariableGroups
	// NestedVariableGroupTokens means a group contains a variable count group.
	NestedVariableGroupTokens
	// MismatchedTokens means the remaining tokens are not whole blocks.
	MismatchedTokens
)

var groupSizeResultNames = []string{
	"INSUFFICIENT_TOKENS",
	"EXTRA_TOKENS",
	"NO_VARIABLE_GROUPS",
	"SINGLE_VARIABLE_GROUP",
	"MULTIPLE_VARIABLE_GROUPS",
	"NESTED_VARIABLE_GROUPS",
	"MISMATCHED_TOKENS",
}

func (r GroupSizeResult) String() string {
	if int(r) < len(groupSizeResultNames) {
		return groupSizeResultNames[r]
	}
	return "UNKNOWN"
}

// GroupSizeCalculator works out how many times a descriptor's variable
// count group repeats when a message is given as a flat list of tokens,
// one token per non-group field.
//
// A calculator is not safe for concurrent use.
type GroupSizeCalculator struct {
	messaging.NoopFieldDescriptorVisitor
	nonGroups int
	groups    []*messaging.GroupFieldDescriptor
	static    StaticGroupTokenCalculator
}

// NewGroupSizeCalculator creates a calculator.
func NewGroupSizeCalculator() *GroupSizeCalculator {
	return &GroupSizeCalculator{}
}

// CalculateGroupSize classifies tokenCount against d. For
// SingleVariableGroup the int is the repetition count of the variable group.
func (c *GroupSizeCalculator) CalculateGroupSize(tokenCount int, d *messaging.Descriptor) (GroupSizeResult, int) {
	c.nonGroups = 0
	c.groups = c.groups[:0]
	d.Accept(c)

	required := c.nonGroups
	if required > tokenCount {
		return InsufficientTokens, 0
	}
	if len(c.groups) == 0 {
		if required == tokenCount {
			return NoVariableGroups, 0
		}
		return ExtraTokens, 0
	}

	var variable *messaging.GroupFieldDescriptor
	variableTokens := 0
	for _, g := range c.groups {
		tokens, ok := c.static.GroupTokens(g)
		if !ok {
			return NestedVariableGroupTokens, 0
		}
		if g.FixedBlockCount() {
			required += tokens * int(g.MinBlocks())
			continue
		}
		if variable != nil {
			return MultipleVariableGroups, 0
		}
		variable = g
		variableTokens = tokens
	}

	if required > tokenCount {
		return InsufficientTokens, 0
	}
	if variable == nil {
		if required == tokenCount {
			return NoVariableGroups, 0
		}
		return ExtraTokens, 0
	}

	remaining := tokenCount - required
	if variableTokens == 0 {
		if remaining != 0 {
			return ExtraTokens, 0
		}
		return SingleVariableGroup, int(variable.MinBlocks())
	}
	if maxBlocks, limited := variable.MaxBlocks(); limited && remaining > variableTokens*int(maxBlocks) {
		return ExtraTokens, 0
	}
	if remaining%variableTokens != 0 {
		return MismatchedTokens, 0
	}
	blocks := remaining / variableTokens
	if blocks < int(variable.MinBlocks()) {
		return InsufficientTokens, 0
	}
	return SingleVariableGroup, blocks
}

// Descend is false: groups are sized by StaticGroupTokenCalculator.
func (c *GroupSizeCalculator) Descend() bool { return false }

func (c *GroupSizeCalculator) VisitBool(*messaging.BoolFieldDescriptor)     { c.nonGroups++ }
func (c *GroupSizeCalculator) VisitInteger(messaging.IntegerDescriptor)     { c.nonGroups++ }
func (c *GroupSizeCalculator) VisitIPV4(*messaging.IPV4FieldDescriptor)     { c.nonGroups++ }
func (c *GroupSizeCalculator) VisitIPV6(*messaging.IPV6FieldDescriptor)     { c.nonGroups++ }
func (c *GroupSizeCalculator) VisitMAC(*messaging.MACFieldDescriptor)       { c.nonGroups++ }
func (c *GroupSizeCalculator) VisitUID(*messaging.UIDFieldDescriptor)       { c.nonGroups++ }
func (c *GroupSizeCalculator) VisitString(*messaging.StringFieldDescriptor) { c.nonGroups++ }

func (c *GroupSizeCalculator) VisitGroup(d *messaging.GroupFieldDescriptor) {
	c.groups = append(c.groups, d)
}

// StaticGroupTokenCalculator counts the tokens in one block of a group.
// Nested groups must have a fixed block count and contribute their token
// count times that count.
type StaticGroupTokenCalculator struct {
	messaging.NoopFieldDescriptorVisitor
	counts   []int
	variable bool
}

// GroupTokens returns the tokens in one block of g. ok is false if g
// contains a group with a variable block count.
func (c *StaticGroupTokenCalculator) GroupTokens(g *messaging.GroupFieldDescriptor) (tokens int, ok bool) {
	return c.count(g.Fields())
}

// DescriptorTokens returns the tokens needed for d, treating every group as
// repeating MinBlocks times. ok is false if d contains a variable count group.
func (c *StaticGroupTokenCalculator) DescriptorTokens(d *messaging.Descriptor) (tokens int, ok bool) {
	return c.count(d.Fields())
}

func (c *StaticGroupTokenCalculator) count(fields []messaging.FieldDescriptor) (int, bool) {
	c.counts = append(c.counts[:0], 0)
	c.variable = false
	for _, f := range fields {
		f.Accept(c)
	}
	if c.variable {
		return 0, false
	}
	return c.counts[0], true
}

func (c *StaticGroupTokenCalculator) token() { c.counts[len(c.counts)-1]++ }

func (c *StaticGroupTokenCalculator) VisitBool(*messaging.BoolFieldDescriptor)     { c.token() }
func (c *StaticGroupTokenCalculator) VisitInteger(messaging.IntegerDescriptor)     { c.token() }
func (c *StaticGroupTokenCalculator) VisitIPV4(*messaging.IPV4FieldDescriptor)     { c.token() }
func (c *StaticGroupTokenCalculator) VisitIPV6(*messaging.IPV6FieldDescriptor)     { c.token() }
func (c *StaticGroupTokenCalculator) VisitMAC(*messaging.MACFieldDescriptor)       { c.token() }
func (c *StaticGroupTokenCalculator) VisitUID(*messaging.UIDFieldDescriptor)       { c.token() }
func (c *StaticGroupTokenCalculator) VisitString(*messaging.StringFieldDescriptor) { c.token() }

func (c *StaticGroupTokenCalculator) VisitGroup(d *messaging.GroupFieldDescriptor) {
	c.counts = append(c.counts, 0)
	if !d.FixedBlockCount() {
		c.variable = true
	}
}

func (c *StaticGroupTokenCalculator) PostVisitGroup(d *messaging.GroupFieldDescriptor) {
	n := c.counts[len(c.counts)-1]
	c.counts = c.counts[:len(c.counts)-1]
	c.counts[len(c.counts)-1] += n * int(d.MinBlocks())
}
