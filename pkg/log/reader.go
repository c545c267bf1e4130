package log

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"
)

// Filter specifies criteria for filtering log events.
// Empty/nil fields match all events for that criterion.
type Filter struct {
	// CodecID filters by exact codec ID match.
	CodecID string

	// Direction filters by codec operation.
	Direction *Direction

	// Category filters by event category.
	Category *Category

	// Descriptor filters by descriptor name.
	Descriptor string

	// TimeStart filters events at or after this time.
	TimeStart *time.Time

	// TimeEnd filters events before this time.
	TimeEnd *time.Time
}

func (f *Filter) matches(event Event) bool {
	if f.CodecID != "" && event.CodecID != f.CodecID {
		return false
	}
	if f.Direction != nil && event.Direction != *f.Direction {
		return false
	}
	if f.Category != nil && event.Category != *f.Category {
		return false
	}
	if f.Descriptor != "" && event.Descriptor != f.Descriptor {
		return false
	}
	if f.TimeStart != nil && event.Timestamp.Before(*f.TimeStart) {
		return false
	}
	if f.TimeEnd != nil && !event.Timestamp.Before(*f.TimeEnd) {
		return false
	}
	return true
}

// Reader reads codec events from a CBOR event stream.
type Reader struct {
	decoder *cbor.Decoder
	filter  Filter
	release func()
}

// NewReader creates a Reader that returns every event in r.
func NewReader(r io.Reader) *Reader {
	return NewFilteredReader(r, Filter{})
}

// NewFilteredReader creates a Reader that returns events matching the filter.
func NewFilteredReader(r io.Reader, filter Filter) *Reader {
	return &Reader{
		decoder: newEventDecoder(r),
		filter:  filter,
	}
}

// NewCompressedReader reads a stream written by NewCompressedStreamLogger.
func NewCompressedReader(r io.Reader, filter Filter) (*Reader, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("creating zstd reader: %w", err)
	}
	return &Reader{
		decoder: newEventDecoder(zr),
		filter:  filter,
		release: zr.Close,
	}, nil
}

// Next returns the next event that matches the filter.
// Returns io.EOF when no more events are available.
func (r *Reader) Next() (Event, error) {
	for {
		var event Event
		if err := r.decoder.Decode(&event); err != nil {
			if errors.Is(err, io.EOF) {
				return Event{}, io.EOF
			}
			return Event{}, err
		}

		if r.filter.matches(event) {
			return event, nil
		}
	}
}

// ReadAll drains the stream and returns every matching event.
func (r *Reader) ReadAll() ([]Event, error) {
	var events []Event
	for {
		event, err := r.Next()
		if err == io.EOF {
			return events, nil
		}
		if err != nil {
			return events, err
		}
		events = append(events, event)
	}
}

// Close releases decompression resources. The underlying reader is not closed.
func (r *Reader) Close() error {
	if r.release != nil {
		r.release()
		r.release = nil
	}
	return nil
}
