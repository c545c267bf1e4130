package rdm

import (
	"fmt"

	"github.com/rdm-protocol/rdm-go/pkg/messaging"
)

// DescriptorConsistencyChecker decides whether a descriptor's binary layout
// can be recovered from the payload length alone. That holds when the tree
// contains at most one variable sized field and no group has a variable
// sized block.
//
// A checker is not safe for concurrent use.
type DescriptorConsistencyChecker struct {
	messaging.NoopFieldDescriptorVisitor
	variableSizedFieldCount int
}

// NewDescriptorConsistencyChecker creates a checker.
func NewDescriptorConsistencyChecker() *DescriptorConsistencyChecker {
	return &DescriptorConsistencyChecker{}
}

// CheckConsistency returns true if d can be unpacked unambiguously.
func (c *DescriptorConsistencyChecker) CheckConsistency(d *messaging.Descriptor) bool {
	return c.count(d) <= 1
}

func (c *DescriptorConsistencyChecker) count(d *messaging.Descriptor) int {
	c.variableSizedFieldCount = 0
	d.Accept(c)
	return c.variableSizedFieldCount
}

// Descend is false: a group is judged by its own size properties.
func (c *DescriptorConsistencyChecker) Descend() bool { return false }

func (c *DescriptorConsistencyChecker) VisitString(d *messaging.StringFieldDescriptor) {
	if !d.FixedSize() {
		c.variableSizedFieldCount++
	}
}

// VisitGroup counts an unknown repetition count and an unknown block size
// separately, so a group with both is always rejected.
func (c *DescriptorConsistencyChecker) VisitGroup(d *messaging.GroupFieldDescriptor) {
	if !d.FixedSize() {
		c.variableSizedFieldCount++
	}
	if !d.FixedBlockSize() {
		c.variableSizedFieldCount++
	}
}

// Check returns nil if d is consistent, or ErrInconsistentDescriptor
// naming the descriptor and its variable field count.
func Check(d *messaging.Descriptor) error {
	c := NewDescriptorConsistencyChecker()
	if n := c.count(d); n > 1 {
		return fmt.Errorf("%w: %q has %d variable sized fields", ErrInconsistentDescriptor, d.Name(), n)
	}
	return nil
}
