package pidstore

import (
	"fmt"
	"math"
	"strings"

	"github.com/rdm-protocol/rdm-go/pkg/messaging"
)

func buildMessage(name string, raw *RawMessage) (*messaging.Descriptor, error) {
	if raw == nil {
		return nil, nil
	}
	fields, err := buildFields(raw.Fields)
	if err != nil {
		return nil, err
	}
	return messaging.NewDescriptor(name, fields), nil
}

func buildFields(raw []RawField) ([]messaging.FieldDescriptor, error) {
	fields := make([]messaging.FieldDescriptor, 0, len(raw))
	for i := range raw {
		f, err := buildField(&raw[i])
		if err != nil {
			if raw[i].Name != "" {
				return nil, fmt.Errorf("field %q: %w", raw[i].Name, err)
			}
			return nil, fmt.Errorf("field %d: %w", i, err)
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func buildField(f *RawField) (messaging.FieldDescriptor, error) {
	switch strings.ToLower(f.Type) {
	case "bool":
		return messaging.NewBoolField(f.Name), nil
	case "uint8":
		return buildInteger[uint8](f)
	case "uint16":
		return buildInteger[uint16](f)
	case "uint32":
		return buildInteger[uint32](f)
	case "uint64":
		return buildInteger[uint64](f)
	case "int8":
		return buildInteger[int8](f)
	case "int16":
		return buildInteger[int16](f)
	case "int32":
		return buildInteger[int32](f)
	case "int64":
		return buildInteger[int64](f)
	case "ipv4":
		return messaging.NewIPV4Field(f.Name), nil
	case "ipv6":
		return messaging.NewIPV6Field(f.Name), nil
	case "mac":
		return messaging.NewMACField(f.Name), nil
	case "uid":
		return messaging.NewUIDField(f.Name), nil
	case "string":
		return buildString(f)
	case "group":
		return buildGroup(f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFieldType, f.Type)
	}
}

// buildInteger converts ranges and labels to T. Labels double as the
// allowed values when no ranges are given.
func buildInteger[T messaging.Integer](f *RawField) (messaging.FieldDescriptor, error) {
	var intervals []messaging.Interval[T]
	for _, r := range f.Ranges {
		lo, okLo := rawIntAs[T](r.Min)
		hi, okHi := rawIntAs[T](r.Max)
		if !okLo || !okHi || lo > hi {
			return nil, fmt.Errorf("%w: range %s - %s", ErrInvalidField, r.Min, r.Max)
		}
		intervals = append(intervals, messaging.Interval[T]{Min: lo, Max: hi})
	}

	addLabelIntervals := len(intervals) == 0
	labels := make(map[string]T, len(f.Labels))
	for _, l := range f.Labels {
		v, ok := rawIntAs[T](l.Value)
		if !ok {
			return nil, fmt.Errorf("%w: label %q value %s", ErrInvalidField, l.Label, l.Value)
		}
		labels[l.Label] = v
		if addLabelIntervals {
			intervals = append(intervals, messaging.Interval[T]{Min: v, Max: v})
		}
	}

	return messaging.NewConstrainedIntegerField(f.Name, intervals, labels, f.LittleEndian, f.Multiplier), nil
}

// rawIntAs converts r to T, reporting whether it is in range.
func rawIntAs[T messaging.Integer](r RawInt) (T, bool) {
	var zero T
	signed := ^zero < 0
	if !r.Negative {
		v := T(r.Magnitude)
		return v, uint64(v) == r.Magnitude && v >= 0
	}
	if !signed || r.Magnitude > 1<<63 {
		return zero, false
	}
	i := int64(^r.Magnitude + 1)
	v := T(i)
	return v, int64(v) == i
}

func buildString(f *RawField) (messaging.FieldDescriptor, error) {
	if f.MaxSize == nil {
		return nil, fmt.Errorf("%w: string without max_size", ErrInvalidField)
	}
	minSize := 0
	if f.MinSize != nil {
		minSize = *f.MinSize
	}
	maxSize := *f.MaxSize
	if minSize < 0 || maxSize > math.MaxUint8 || minSize > maxSize {
		return nil, fmt.Errorf("%w: string size %d - %d", ErrInvalidField, minSize, maxSize)
	}
	return messaging.NewStringField(f.Name, uint8(minSize), uint8(maxSize)), nil
}

func buildGroup(f *RawField) (messaging.FieldDescriptor, error) {
	children, err := buildFields(f.Fields)
	if err != nil {
		return nil, err
	}
	minBlocks := 0
	if f.MinSize != nil {
		minBlocks = *f.MinSize
	}
	if minBlocks < 0 || minBlocks > math.MaxUint16 {
		return nil, fmt.Errorf("%w: group min_size %d", ErrInvalidField, minBlocks)
	}
	if f.MaxSize == nil {
		return messaging.NewUnlimitedGroupField(f.Name, children, uint16(minBlocks)), nil
	}
	maxBlocks := *f.MaxSize
	if maxBlocks < minBlocks || maxBlocks > math.MaxUint16 {
		return nil, fmt.Errorf("%w: group size %d - %d", ErrInvalidField, minBlocks, maxBlocks)
	}
	return messaging.NewGroupField(f.Name, children, uint16(minBlocks), uint16(maxBlocks)), nil
}
