package log

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// Encoding is canonical so identical events always produce identical bytes.
// Decoding tolerates duplicate keys and indefinite lengths so streams from
// other writers stay readable.
var eventEncMode, eventDecMode = mustEventModes()

// maxEventNesting covers Event -> payload struct with room to grow.
const maxEventNesting = 8

func mustEventModes() (cbor.EncMode, cbor.DecMode) {
	enc, err := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
	}.EncMode()
	if err != nil {
		panic(fmt.Sprintf("codec event encoder mode: %v", err))
	}

	dec, err := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet,
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
		MaxNestedLevels:   maxEventNesting,
	}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("codec event decoder mode: %v", err))
	}
	return enc, dec
}

// EncodeEvent returns the CBOR form of event.
func EncodeEvent(event Event) ([]byte, error) {
	data, err := eventEncMode.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("encoding codec event: %w", err)
	}
	return data, nil
}

// DecodeEvent parses one CBOR encoded Event.
func DecodeEvent(data []byte) (Event, error) {
	var event Event
	if err := eventDecMode.Unmarshal(data, &event); err != nil {
		return Event{}, fmt.Errorf("decoding codec event: %w", err)
	}
	return event, nil
}

func newEventEncoder(w io.Writer) *cbor.Encoder { return eventEncMode.NewEncoder(w) }
func newEventDecoder(r io.Reader) *cbor.Decoder { return eventDecMode.NewDecoder(r) }
