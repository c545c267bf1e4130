package log

import "time"

// MaxCapturedBytes bounds the payload copied into a MessageEvent.
const MaxCapturedBytes = 256

// Event is a codec log event.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// CodecID identifies the serializer or deserializer instance (UUID).
	CodecID string `cbor:"2,keyasint"`

	// Direction tells whether the event came from packing or unpacking.
	Direction Direction `cbor:"3,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"4,keyasint"`

	// Descriptor is the name of the descriptor the message was built against.
	Descriptor string `cbor:"5,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Message *MessageEvent   `cbor:"10,keyasint,omitempty"`
	Error   *ErrorEventData `cbor:"11,keyasint,omitempty"`
}

// Direction is the codec operation that produced an event.
type Direction uint8

const (
	// DirectionPack is a Message serialized to bytes.
	DirectionPack Direction = 0
	// DirectionUnpack is bytes inflated into a Message.
	DirectionUnpack Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionPack:
		return "PACK"
	case DirectionUnpack:
		return "UNPACK"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryMessage is a completed pack or unpack.
	CategoryMessage Category = 0
	// CategoryError is a rejected pack or unpack.
	CategoryError Category = 1
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryMessage:
		return "MESSAGE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// MessageEvent captures the wire bytes of one message.
type MessageEvent struct {
	// Length is the full payload length in bytes.
	Length int `cbor:"1,keyasint"`

	// Data is the payload (truncated to MaxCapturedBytes).
	Data []byte `cbor:"2,keyasint,omitempty"`

	// Truncated indicates if Data was truncated.
	Truncated bool `cbor:"3,keyasint,omitempty"`

	// FieldCount is the number of top-level fields in the message.
	FieldCount int `cbor:"4,keyasint"`
}

// NewMessageEvent copies up to MaxCapturedBytes of data into a MessageEvent.
func NewMessageEvent(data []byte, fieldCount int) *MessageEvent {
	ev := &MessageEvent{Length: len(data), FieldCount: fieldCount}
	n := len(data)
	if n > MaxCapturedBytes {
		n = MaxCapturedBytes
		ev.Truncated = true
	}
	if n > 0 {
		ev.Data = append([]byte(nil), data[:n]...)
	}
	return ev
}

// ErrorEventData captures a codec failure.
type ErrorEventData struct {
	// Message is the error message.
	Message string `cbor:"1,keyasint"`

	// Field is the dotted path of the field being processed, if known.
	Field string `cbor:"2,keyasint,omitempty"`

	// Length is the input length for unpack failures.
	Length int `cbor:"3,keyasint,omitempty"`
}
