package rdm

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"

	"github.com/rdm-protocol/rdm-go/pkg/messaging"
	"github.com/rdm-protocol/rdm-go/pkg/uid"
)

// StringMessageBuilder builds a Message from a flat list of text tokens,
// one token per non-group field in visit order. Groups take as many blocks
// as the token count implies.
//
// A builder is not safe for concurrent use.
type StringMessageBuilder struct {
	calculator       *GroupSizeCalculator
	enforceIntervals bool
}

// NewStringMessageBuilder creates a builder.
func NewStringMessageBuilder(cfg BuilderConfig) *StringMessageBuilder {
	return &StringMessageBuilder{
		calculator:       NewGroupSizeCalculator(),
		enforceIntervals: cfg.EnforceIntervals,
	}
}

// GetMessage parses tokens against d. Errors carry the path of the field
// that failed as a *FieldError.
func (b *StringMessageBuilder) GetMessage(tokens []string, d *messaging.Descriptor) (*messaging.Message, error) {
	result, repeatCount := b.calculator.CalculateGroupSize(len(tokens), d)
	switch result {
	case InsufficientTokens, ExtraTokens, MismatchedTokens:
		return nil, fmt.Errorf("%w: %d tokens for %q (%s)", ErrTokenCount, len(tokens), d.Name(), result)
	case MultipleVariableGroups:
		return nil, fmt.Errorf("%w in %q", ErrMultipleVariableFields, d.Name())
	case NestedVariableGroupTokens:
		return nil, fmt.Errorf("%w in %q", ErrNestedVariableGroups, d.Name())
	}

	tb := &tokenBuilder{
		tokens:           tokens,
		repeatCount:      repeatCount,
		enforceIntervals: b.enforceIntervals,
	}
	tb.push()
	d.Accept(tb)
	if tb.err != nil {
		return nil, tb.err
	}
	if tb.next != len(tokens) {
		return nil, fmt.Errorf("%w: %d of %d tokens used", ErrTokenCount, tb.next, len(tokens))
	}
	return messaging.NewMessage(tb.pop()), nil
}

type tokenBuilder struct {
	messaging.NoopFieldDescriptorVisitor

	tokens           []string
	next             int
	repeatCount      int
	enforceIntervals bool
	frames           [][]messaging.MessageField
	path             []string
	err              error
}

// Descend is false: VisitGroup drives the children once per block.
func (tb *tokenBuilder) Descend() bool { return false }

func (tb *tokenBuilder) push() { tb.frames = append(tb.frames, nil) }

func (tb *tokenBuilder) pop() []messaging.MessageField {
	top := tb.frames[len(tb.frames)-1]
	tb.frames = tb.frames[:len(tb.frames)-1]
	return top
}

func (tb *tokenBuilder) add(f messaging.MessageField) {
	tb.frames[len(tb.frames)-1] = append(tb.frames[len(tb.frames)-1], f)
}

// token returns the next token; ok is false once an error is recorded.
func (tb *tokenBuilder) token(name string) (string, bool) {
	if tb.err != nil {
		return "", false
	}
	if tb.next >= len(tb.tokens) {
		tb.fail(name, fmt.Errorf("%w: ran out of tokens", ErrTokenCount))
		return "", false
	}
	t := tb.tokens[tb.next]
	tb.next++
	return t, true
}

func (tb *tokenBuilder) fail(name string, err error) {
	path := append(append([]string(nil), tb.path...), name)
	tb.err = &FieldError{FieldPath: path, Err: err}
}

func (tb *tokenBuilder) invalid(name, token, what string) {
	tb.fail(name, fmt.Errorf("%w: %q is not a valid %s", ErrInvalidToken, token, what))
}

func (tb *tokenBuilder) VisitBool(d *messaging.BoolFieldDescriptor) {
	t, ok := tb.token(d.Name())
	if !ok {
		return
	}
	switch strings.ToLower(t) {
	case "true", "1":
		tb.add(messaging.NewBoolMessageField(d, true))
	case "false", "0":
		tb.add(messaging.NewBoolMessageField(d, false))
	default:
		tb.invalid(d.Name(), t, "bool")
	}
}

func (tb *tokenBuilder) VisitInteger(d messaging.IntegerDescriptor) {
	t, ok := tb.token(d.Name())
	if !ok {
		return
	}
	if raw, found := d.LookupLabelRaw(t); found {
		tb.add(d.NewFieldFromRaw(raw))
		return
	}
	raw, err := parseInteger(t, d.Signed(), d.MaxSize()*8)
	if err != nil {
		tb.invalid(d.Name(), t, d.Kind().String())
		return
	}
	if tb.enforceIntervals && !d.IsValidRaw(raw) {
		tb.fail(d.Name(), fmt.Errorf("%w: %s is outside %s", ErrInvalidToken, t,
			strings.Join(d.FormatIntervals(), ", ")))
		return
	}
	tb.add(d.NewFieldFromRaw(raw))
}

// parseInteger accepts decimal, or hex with a 0x prefix.
func parseInteger(s string, signed bool, bits int) (uint64, error) {
	base := 10
	digits := s
	if rest, ok := strings.CutPrefix(strings.ToLower(s), "0x"); ok {
		base = 16
		digits = rest
	}
	if signed {
		v, err := strconv.ParseInt(digits, base, bits)
		return uint64(v), err
	}
	return strconv.ParseUint(digits, base, bits)
}

func (tb *tokenBuilder) VisitIPV4(d *messaging.IPV4FieldDescriptor) {
	t, ok := tb.token(d.Name())
	if !ok {
		return
	}
	addr, err := netip.ParseAddr(t)
	if err != nil || !addr.Is4() {
		tb.invalid(d.Name(), t, "IPv4 address")
		return
	}
	tb.add(messaging.NewIPV4MessageField(d, addr))
}

func (tb *tokenBuilder) VisitIPV6(d *messaging.IPV6FieldDescriptor) {
	t, ok := tb.token(d.Name())
	if !ok {
		return
	}
	addr, err := netip.ParseAddr(t)
	if err != nil || !addr.Is6() {
		tb.invalid(d.Name(), t, "IPv6 address")
		return
	}
	tb.add(messaging.NewIPV6MessageField(d, addr))
}

func (tb *tokenBuilder) VisitMAC(d *messaging.MACFieldDescriptor) {
	t, ok := tb.token(d.Name())
	if !ok {
		return
	}
	mac, err := messaging.ParseMAC(t)
	if err != nil {
		tb.invalid(d.Name(), t, "MAC address")
		return
	}
	tb.add(messaging.NewMACMessageField(d, mac))
}

func (tb *tokenBuilder) VisitUID(d *messaging.UIDFieldDescriptor) {
	t, ok := tb.token(d.Name())
	if !ok {
		return
	}
	u, err := uid.Parse(t)
	if err != nil {
		tb.invalid(d.Name(), t, "UID")
		return
	}
	tb.add(messaging.NewUIDMessageField(d, u))
}

func (tb *tokenBuilder) VisitString(d *messaging.StringFieldDescriptor) {
	t, ok := tb.token(d.Name())
	if !ok {
		return
	}
	if len(t) > d.MaxSize() {
		tb.fail(d.Name(), fmt.Errorf("%w: %d bytes exceeds maximum of %d", ErrInvalidToken, len(t), d.MaxSize()))
		return
	}
	tb.add(messaging.NewStringMessageField(d, t))
}

func (tb *tokenBuilder) VisitGroup(d *messaging.GroupFieldDescriptor) {
	if tb.err != nil {
		return
	}
	blocks := int(d.MinBlocks())
	if !d.FixedBlockCount() {
		blocks = tb.repeatCount
	}

	tb.path = append(tb.path, d.Name())
	defer func() { tb.path = tb.path[:len(tb.path)-1] }()

	for i := 0; i < blocks && tb.err == nil; i++ {
		tb.push()
		for _, f := range d.Fields() {
			f.Accept(tb)
		}
		tb.add(messaging.NewGroupMessageField(d, tb.pop()))
	}
}
