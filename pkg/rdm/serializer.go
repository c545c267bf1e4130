package rdm

import (
	"time"

	"github.com/rdm-protocol/rdm-go/pkg/log"
	"github.com/rdm-protocol/rdm-go/pkg/messaging"
)

// Serializer packs a Message into its wire form.
//
// The returned slice aliases an internal buffer and is only valid until the
// next call to SerializeMessage. A Serializer is not safe for concurrent use.
type Serializer struct {
	buf     []byte
	logger  log.Logger
	codecID string
}

// NewSerializer creates a Serializer.
func NewSerializer(cfg SerializerConfig) (*Serializer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Serializer{
		buf:     make([]byte, 0, cfg.InitialSize),
		logger:  cfg.Logger,
		codecID: codecIDOrNew(cfg.CodecID),
	}, nil
}

// CodecID returns the identifier used in log events.
func (s *Serializer) CodecID() string { return s.codecID }

// SerializeMessage packs m. A nil message packs to an empty slice.
func (s *Serializer) SerializeMessage(m *messaging.Message) []byte {
	p := packer{buf: s.buf[:0]}
	if m != nil {
		m.Accept(&p)
	}
	// Keep the grown buffer for the next call.
	s.buf = p.buf

	if s.logger != nil {
		fieldCount := 0
		if m != nil {
			fieldCount = m.FieldCount()
		}
		s.logger.Log(log.Event{
			Timestamp: time.Now(),
			CodecID:   s.codecID,
			Direction: log.DirectionPack,
			Category:  log.CategoryMessage,
			Message:   log.NewMessageEvent(p.buf, fieldCount),
		})
	}
	return p.buf
}

// packer appends each field's wire bytes in visit order. append doubles
// capacity when the buffer fills.
type packer struct {
	messaging.NoopMessageVisitor
	buf []byte
}

func (p *packer) VisitBool(f *messaging.BoolMessageField) {
	if f.Value() {
		p.buf = append(p.buf, 1)
	} else {
		p.buf = append(p.buf, 0)
	}
}

func (p *packer) VisitInteger(f messaging.IntegerField) {
	d := f.IntegerDescriptor()
	p.buf = appendInteger(p.buf, f.Raw(), d.MaxSize(), d.IsLittleEndian())
}

func (p *packer) VisitIPV4(f *messaging.IPV4MessageField) {
	b := f.Bytes()
	p.buf = append(p.buf, b[:]...)
}

func (p *packer) VisitIPV6(f *messaging.IPV6MessageField) {
	b := f.Bytes()
	p.buf = append(p.buf, b[:]...)
}

func (p *packer) VisitMAC(f *messaging.MACMessageField) {
	mac := f.Value()
	p.buf = append(p.buf, mac[:]...)
}

func (p *packer) VisitUID(f *messaging.UIDMessageField) {
	p.buf = f.Value().AppendBytes(p.buf)
}

// VisitString writes the value as is, then pads with NULs up to MinSize.
// Values longer than MaxSize are not truncated.
func (p *packer) VisitString(f *messaging.StringMessageField) {
	p.buf = append(p.buf, f.Value()...)
	for pad := f.Descriptor().MinSize() - len(f.Value()); pad > 0; pad-- {
		p.buf = append(p.buf, 0)
	}
}

// appendInteger writes the low size bytes of raw.
func appendInteger(buf []byte, raw uint64, size int, littleEndian bool) []byte {
	if littleEndian {
		for i := 0; i < size; i++ {
			buf = append(buf, byte(raw>>(8*i)))
		}
		return buf
	}
	for i := size - 1; i >= 0; i-- {
		buf = append(buf, byte(raw>>(8*i)))
	}
	return buf
}
