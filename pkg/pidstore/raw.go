package pidstore

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// RawPidStore is the YAML form of a pid store file.
type RawPidStore struct {
	Version       uint64            `yaml:"version"`
	PIDs          []RawPid          `yaml:"pids"`
	Manufacturers []RawManufacturer `yaml:"manufacturers"`
}

// RawManufacturer groups the PIDs of one manufacturer.
type RawManufacturer struct {
	ID   uint16   `yaml:"id"`
	Name string   `yaml:"name"`
	PIDs []RawPid `yaml:"pids"`
}

// RawPid is one parameter definition. Absent messages mean the command is
// not supported; an empty mapping is a message with no fields.
type RawPid struct {
	Name              string      `yaml:"name"`
	Value             uint16      `yaml:"value"`
	GetRequest        *RawMessage `yaml:"get_request"`
	GetResponse       *RawMessage `yaml:"get_response"`
	SetRequest        *RawMessage `yaml:"set_request"`
	SetResponse       *RawMessage `yaml:"set_response"`
	GetSubDeviceRange string      `yaml:"get_sub_device_range"` // "root_device", "root_or_subdevice", ...
	SetSubDeviceRange string      `yaml:"set_sub_device_range"`
}

// RawMessage is an ordered list of fields.
type RawMessage struct {
	Fields []RawField `yaml:"field"`
}

// RawField is one field definition.
type RawField struct {
	Type         string     `yaml:"type"` // "bool", "uint8", ..., "string", "group"
	Name         string     `yaml:"name"`
	MinSize      *int       `yaml:"min_size"` // string length or group repetitions
	MaxSize      *int       `yaml:"max_size"` // required for strings; absent means unlimited groups
	Multiplier   int8       `yaml:"multiplier"`
	LittleEndian bool       `yaml:"little_endian"`
	Ranges       []RawRange `yaml:"range"`
	Labels       []RawLabel `yaml:"label"`
	Fields       []RawField `yaml:"field"` // group children
}

// RawRange is an inclusive integer interval.
type RawRange struct {
	Min RawInt `yaml:"min"`
	Max RawInt `yaml:"max"`
}

// RawLabel names an integer value.
type RawLabel struct {
	Label string `yaml:"label"`
	Value RawInt `yaml:"value"`
}

// RawInt is a YAML integer in sign and magnitude form, so that every value
// from math.MinInt64 to math.MaxUint64 can be written.
type RawInt struct {
	Negative  bool
	Magnitude uint64
}

// Int returns the RawInt for v.
func Int(v int64) RawInt {
	if v < 0 {
		return RawInt{Negative: true, Magnitude: ^uint64(v) + 1}
	}
	return RawInt{Magnitude: uint64(v)}
}

func (r RawInt) String() string {
	if r.Negative {
		return fmt.Sprintf("-%d", r.Magnitude)
	}
	return fmt.Sprintf("%d", r.Magnitude)
}

// UnmarshalYAML accepts any YAML integer that fits in int64 or uint64.
func (r *RawInt) UnmarshalYAML(node *yaml.Node) error {
	var i int64
	if err := node.Decode(&i); err == nil {
		*r = Int(i)
		return nil
	}
	var u uint64
	if err := node.Decode(&u); err != nil {
		return fmt.Errorf("%w: line %d: %q is not an integer", ErrInvalidField, node.Line, node.Value)
	}
	*r = RawInt{Magnitude: u}
	return nil
}
