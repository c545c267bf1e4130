package rdm

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"net/netip"
	"time"

	"github.com/rdm-protocol/rdm-go/pkg/log"
	"github.com/rdm-protocol/rdm-go/pkg/messaging"
	"github.com/rdm-protocol/rdm-go/pkg/uid"
)

// Deserializer inflates wire data into a Message using a Descriptor.
//
// A Deserializer is not safe for concurrent use.
type Deserializer struct {
	calculator *VariableFieldSizeCalculator
	logger     log.Logger
	codecID    string
}

// NewDeserializer creates a Deserializer.
func NewDeserializer(cfg DeserializerConfig) (*Deserializer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Deserializer{
		calculator: NewVariableFieldSizeCalculator(),
		logger:     cfg.Logger,
		codecID:    codecIDOrNew(cfg.CodecID),
	}, nil
}

// CodecID returns the identifier used in log events.
func (d *Deserializer) CodecID() string { return d.codecID }

// InflateMessage unpacks data against desc. The data must match the layout
// exactly: no bytes may be missing or left over.
func (d *Deserializer) InflateMessage(desc *messaging.Descriptor, data []byte) (*messaging.Message, error) {
	m, err := d.inflate(desc, data)
	if d.logger != nil {
		d.logResult(desc, data, m, err)
	}
	return m, err
}

func (d *Deserializer) inflate(desc *messaging.Descriptor, data []byte) (*messaging.Message, error) {
	if desc.FieldCount() == 0 {
		if len(data) != 0 {
			return nil, fmt.Errorf("%w: %d bytes for empty descriptor %q", ErrExtraData, len(data), desc.Name())
		}
		return messaging.NewMessage(nil), nil
	}

	result, variableSize := d.calculator.CalculateFieldSize(len(data), desc)
	switch result {
	case TooSmall:
		return nil, fmt.Errorf("%w: %d bytes for %q", ErrInsufficientData, len(data), desc.Name())
	case TooLarge:
		return nil, fmt.Errorf("%w: %d bytes for %q", ErrExtraData, len(data), desc.Name())
	case MismatchedSize:
		return nil, fmt.Errorf("%w: %d bytes for %q", ErrMismatchedGroupSize, len(data), desc.Name())
	case MultipleVariableFields:
		return nil, fmt.Errorf("%w in %q", ErrMultipleVariableFields, desc.Name())
	case NestedVariableGroups:
		return nil, fmt.Errorf("%w in %q", ErrNestedVariableGroups, desc.Name())
	}

	in := &inflater{data: data, variableSize: variableSize}
	in.push()
	desc.Accept(in)
	if in.err != nil {
		return nil, in.err
	}
	if in.offset != len(data) {
		return nil, fmt.Errorf("%w: %d of %d bytes used", ErrExtraData, in.offset, len(data))
	}
	return messaging.NewMessage(in.pop()), nil
}

func (d *Deserializer) logResult(desc *messaging.Descriptor, data []byte, m *messaging.Message, err error) {
	ev := log.Event{
		Timestamp:  time.Now(),
		CodecID:    d.codecID,
		Direction:  log.DirectionUnpack,
		Descriptor: desc.Name(),
	}
	if err != nil {
		ev.Category = log.CategoryError
		ev.Error = &log.ErrorEventData{
			Message: err.Error(),
			Field:   fieldPath(err),
			Length:  len(data),
		}
	} else {
		ev.Category = log.CategoryMessage
		ev.Message = log.NewMessageEvent(data, m.FieldCount())
	}
	d.logger.Log(ev)
}

// inflater consumes data in visit order. Each open group block has a frame
// collecting its fields; the bottom frame holds the top-level fields.
type inflater struct {
	messaging.NoopFieldDescriptorVisitor

	data         []byte
	offset       int
	variableSize int
	frames       [][]messaging.MessageField
	path         []string
	err          error
}

// Descend is false: VisitGroup drives the children once per block.
func (in *inflater) Descend() bool { return false }

func (in *inflater) push() {
	in.frames = append(in.frames, nil)
}

func (in *inflater) pop() []messaging.MessageField {
	top := in.frames[len(in.frames)-1]
	in.frames = in.frames[:len(in.frames)-1]
	return top
}

func (in *inflater) add(f messaging.MessageField) {
	in.frames[len(in.frames)-1] = append(in.frames[len(in.frames)-1], f)
}

// take returns the next n bytes. ok is false once an error is recorded; a
// zero length take on nil data succeeds with a nil slice.
func (in *inflater) take(name string, n int) (b []byte, ok bool) {
	if in.err != nil {
		return nil, false
	}
	if in.offset+n > len(in.data) {
		in.err = in.fieldError(name, fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			ErrInsufficientData, n, in.offset, len(in.data)-in.offset))
		return nil, false
	}
	b = in.data[in.offset : in.offset+n]
	in.offset += n
	return b, true
}

func (in *inflater) fieldError(name string, err error) error {
	path := append(append([]string(nil), in.path...), name)
	return &FieldError{FieldPath: path, Err: err}
}

func (in *inflater) VisitBool(d *messaging.BoolFieldDescriptor) {
	if b, ok := in.take(d.Name(), 1); ok {
		in.add(messaging.NewBoolMessageField(d, b[0] != 0))
	}
}

func (in *inflater) VisitInteger(d messaging.IntegerDescriptor) {
	b, ok := in.take(d.Name(), d.MaxSize())
	if !ok {
		return
	}
	in.add(d.NewFieldFromRaw(readInteger(b, d.IsLittleEndian())))
}

func (in *inflater) VisitIPV4(d *messaging.IPV4FieldDescriptor) {
	if b, ok := in.take(d.Name(), 4); ok {
		in.add(messaging.NewIPV4MessageField(d, netip.AddrFrom4([4]byte(b))))
	}
}

func (in *inflater) VisitIPV6(d *messaging.IPV6FieldDescriptor) {
	if b, ok := in.take(d.Name(), 16); ok {
		in.add(messaging.NewIPV6MessageField(d, netip.AddrFrom16([16]byte(b))))
	}
}

func (in *inflater) VisitMAC(d *messaging.MACFieldDescriptor) {
	if b, ok := in.take(d.Name(), 6); ok {
		in.add(messaging.NewMACMessageField(d, messaging.MACAddress(b)))
	}
}

func (in *inflater) VisitUID(d *messaging.UIDFieldDescriptor) {
	b, ok := in.take(d.Name(), uid.Size)
	if !ok {
		return
	}
	u, err := uid.FromBytes(b)
	if err != nil {
		in.err = in.fieldError(d.Name(), err)
		return
	}
	in.add(messaging.NewUIDMessageField(d, u))
}

// VisitString reads the fixed width, or the computed variable width, and
// stops at the first NUL.
func (in *inflater) VisitString(d *messaging.StringFieldDescriptor) {
	size := d.MaxSize()
	if !d.FixedSize() {
		size = in.variableSize
	}
	b, ok := in.take(d.Name(), size)
	if !ok {
		return
	}
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	in.add(messaging.NewStringMessageField(d, string(b)))
}

// VisitGroup produces one GroupMessageField per block.
func (in *inflater) VisitGroup(d *messaging.GroupFieldDescriptor) {
	if in.err != nil {
		return
	}
	blocks := int(d.MinBlocks())
	if !d.FixedSize() {
		blocks = in.variableSize
	}

	in.path = append(in.path, d.Name())
	defer func() { in.path = in.path[:len(in.path)-1] }()

	for i := 0; i < blocks && in.err == nil; i++ {
		in.push()
		for _, f := range d.Fields() {
			f.Accept(in)
		}
		in.add(messaging.NewGroupMessageField(d, in.pop()))
	}
}

func readInteger(b []byte, littleEndian bool) uint64 {
	var order binary.ByteOrder = binary.BigEndian
	if littleEndian {
		order = binary.LittleEndian
	}
	switch len(b) {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(order.Uint16(b))
	case 4:
		return uint64(order.Uint32(b))
	default:
		return order.Uint64(b)
	}
}
