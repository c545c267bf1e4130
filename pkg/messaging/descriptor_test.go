package messaging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldKindString(t *testing.T) {
	assert.Equal(t, "bool", KindBool.String())
	assert.Equal(t, "uint16", KindUInt16.String())
	assert.Equal(t, "int64", KindInt64.String())
	assert.Equal(t, "group", KindGroup.String())
	assert.Equal(t, "unknown", FieldKind(200).String())

	assert.True(t, KindUInt8.IsInteger())
	assert.True(t, KindInt64.IsInteger())
	assert.False(t, KindBool.IsInteger())
	assert.False(t, KindIPV4.IsInteger())
}

func TestScalarDescriptors(t *testing.T) {
	tests := []struct {
		field FieldDescriptor
		kind  FieldKind
		size  int
	}{
		{NewBoolField("bool"), KindBool, 1},
		{NewIPV4Field("ip"), KindIPV4, 4},
		{NewIPV6Field("ip6"), KindIPV6, 16},
		{NewMACField("mac"), KindMAC, 6},
		{NewUIDField("uid"), KindUID, 6},
		{NewIntegerField[uint8]("u8", false, 0), KindUInt8, 1},
		{NewIntegerField[uint16]("u16", false, 0), KindUInt16, 2},
		{NewIntegerField[uint32]("u32", false, 0), KindUInt32, 4},
		{NewIntegerField[uint64]("u64", false, 0), KindUInt64, 8},
		{NewIntegerField[int8]("i8", false, 0), KindInt8, 1},
		{NewIntegerField[int16]("i16", false, 0), KindInt16, 2},
		{NewIntegerField[int32]("i32", false, 0), KindInt32, 4},
		{NewIntegerField[int64]("i64", false, 0), KindInt64, 8},
	}

	for _, tt := range tests {
		t.Run(tt.field.Name(), func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.field.Kind())
			assert.True(t, tt.field.FixedSize())
			assert.True(t, tt.field.LimitedSize())
			assert.Equal(t, tt.size, tt.field.MaxSize())
		})
	}
}

func TestIntegerDescriptorFlags(t *testing.T) {
	d := NewIntegerField[int16]("temp", true, -1)
	assert.True(t, d.Signed())
	assert.True(t, d.IsLittleEndian())
	assert.Equal(t, int8(-1), d.Multiplier())
	assert.False(t, d.HasLabels())

	u := NewIntegerField[uint16]("count", false, 0)
	assert.False(t, u.Signed())
	assert.False(t, u.IsLittleEndian())
}

func TestStringDescriptor(t *testing.T) {
	fixed := NewStringField("fixed", 10, 10)
	assert.True(t, fixed.FixedSize())
	assert.Equal(t, 10, fixed.MaxSize())
	assert.Equal(t, 10, fixed.MinSize())

	variable := NewStringField("variable", 0, 32)
	assert.False(t, variable.FixedSize())
	assert.True(t, variable.LimitedSize())
	assert.Equal(t, 32, variable.MaxSize())
	assert.Equal(t, 0, variable.MinSize())
}

func TestGroupDescriptor(t *testing.T) {
	t.Run("variable count fixed block", func(t *testing.T) {
		g := NewGroupField("group", []FieldDescriptor{
			NewBoolField("bool"),
			NewIntegerField[uint8]("uint8", false, 0),
		}, 0, 3)

		assert.False(t, g.FixedSize())
		assert.True(t, g.LimitedSize())
		assert.Equal(t, 6, g.MaxSize())
		assert.Equal(t, 2, g.FieldCount())
		assert.True(t, g.FixedBlockSize())
		assert.Equal(t, 2, g.BlockSize())
		assert.Equal(t, 2, g.MaxBlockSize())
		assert.Equal(t, uint16(0), g.MinBlocks())
		maxBlocks, limited := g.MaxBlocks()
		assert.Equal(t, uint16(3), maxBlocks)
		assert.True(t, limited)
		assert.False(t, g.FixedBlockCount())
	})

	t.Run("fixed", func(t *testing.T) {
		g := NewGroupField("group", []FieldDescriptor{
			NewBoolField("bool"),
			NewIntegerField[uint8]("uint8", false, 0),
			NewIntegerField[uint16]("uint16", false, 0),
		}, 2, 2)

		assert.True(t, g.FixedSize())
		assert.True(t, g.LimitedSize())
		assert.Equal(t, 8, g.MaxSize())
		assert.Equal(t, 3, g.FieldCount())
		assert.Equal(t, 4, g.BlockSize())
		assert.Equal(t, 4, g.MaxBlockSize())
		assert.True(t, g.FixedBlockCount())
	})

	t.Run("variable block", func(t *testing.T) {
		b := NewBoolField("bool")
		s := NewStringField("string", 0, 32)
		g := NewGroupField("group", []FieldDescriptor{b, s}, 0, 2)

		assert.False(t, g.FixedSize())
		assert.True(t, g.LimitedSize())
		assert.Equal(t, 66, g.MaxSize())
		assert.False(t, g.FixedBlockSize())
		assert.Equal(t, 0, g.BlockSize())
		assert.Equal(t, 33, g.MaxBlockSize())
		assert.False(t, g.FixedBlockCount())
		assert.Same(t, b, g.Field(0))
		assert.Same(t, s, g.Field(1))
		assert.Nil(t, g.Field(2))
	})

	t.Run("variable block fixed count", func(t *testing.T) {
		g := NewGroupField("group", []FieldDescriptor{
			NewBoolField("bool"),
			NewStringField("string", 0, 32),
		}, 2, 2)

		assert.False(t, g.FixedSize())
		assert.True(t, g.FixedBlockCount())
		assert.Equal(t, 66, g.MaxSize())
	})

	t.Run("unlimited", func(t *testing.T) {
		g := NewUnlimitedGroupField("group", []FieldDescriptor{NewBoolField("bool")}, 0)

		assert.False(t, g.FixedSize())
		assert.False(t, g.LimitedSize())
		assert.Equal(t, 0, g.MaxSize())
		assert.Equal(t, 1, g.FieldCount())
		assert.True(t, g.FixedBlockSize())
		assert.Equal(t, 1, g.BlockSize())
		assert.Equal(t, 1, g.MaxBlockSize())
		maxBlocks, limited := g.MaxBlocks()
		assert.Equal(t, uint16(0), maxBlocks)
		assert.False(t, limited)
		assert.False(t, g.FixedBlockCount())
	})
}

func TestIntervalsAndLabels(t *testing.T) {
	d := NewConstrainedIntegerField[uint16]("count",
		[]Interval[uint16]{{2, 8}, {12, 14}},
		map[string]uint16{"dozen": 12, "bakers_dozen": 13},
		false, 0)

	valid := map[uint16]bool{
		0: false, 1: false, 2: true, 3: true, 8: true, 9: false,
		11: false, 12: true, 13: true, 14: true, 15: false, 0xffff: false,
	}
	for v, want := range valid {
		assert.Equal(t, want, d.IsValid(v), "IsValid(%d)", v)
	}

	v, ok := d.LookupLabel("dozen")
	require.True(t, ok)
	assert.Equal(t, uint16(12), v)
	v, ok = d.LookupLabel("bakers_dozen")
	require.True(t, ok)
	assert.Equal(t, uint16(13), v)
	_, ok = d.LookupLabel("baker's dozen")
	assert.False(t, ok)

	assert.Equal(t, "", d.LookupValue(0))
	assert.Equal(t, "dozen", d.LookupValue(12))
	assert.Equal(t, "bakers_dozen", d.LookupValue(13))

	assert.Equal(t, []string{"2 - 8", "12 - 14"}, d.FormatIntervals())
	assert.Equal(t, []string{"bakers_dozen: 13", "dozen: 12"}, d.FormatLabels())
}

func TestLookupValuePicksFirstLabelByName(t *testing.T) {
	d := NewConstrainedIntegerField[uint8]("mode", nil,
		map[string]uint8{"on": 1, "enabled": 1, "off": 0}, false, 0)

	assert.Equal(t, "enabled", d.LookupValue(1))
}

func TestEmptyIntervalsAllowEverything(t *testing.T) {
	d := NewIntegerField[int8]("any", false, 0)
	for _, v := range []int8{-128, -1, 0, 1, 127} {
		assert.True(t, d.IsValid(v))
	}
}

func TestRawHelpers(t *testing.T) {
	d := NewConstrainedIntegerField[int8]("delta",
		[]Interval[int8]{{-10, 10}}, map[string]int8{"min": -10}, false, 0)

	raw, ok := d.LookupLabelRaw("min")
	require.True(t, ok)
	assert.Equal(t, uint64(0xfffffffffffffff6), raw)

	assert.True(t, d.IsValidRaw(raw))
	assert.False(t, d.IsValidRaw(11))

	f := d.NewFieldFromRaw(0xf6)
	assert.Equal(t, int8(-10), f.(*Int8MessageField).Value())
	assert.Equal(t, "min", f.Label())
}

func TestConstructorsCopyInputs(t *testing.T) {
	intervals := []Interval[uint8]{{1, 2}}
	labels := map[string]uint8{"one": 1}
	d := NewConstrainedIntegerField[uint8]("x", intervals, labels, false, 0)

	intervals[0].Max = 100
	labels["two"] = 2

	assert.False(t, d.IsValid(50))
	_, ok := d.LookupLabel("two")
	assert.False(t, ok)

	fields := []FieldDescriptor{NewBoolField("a")}
	desc := NewDescriptor("desc", fields)
	fields[0] = NewBoolField("b")
	assert.Equal(t, "a", desc.Field(0).Name())
}

func TestDescriptor(t *testing.T) {
	b := NewBoolField("bool")
	u := NewIntegerField[uint8]("uint8", false, 0)
	d := NewDescriptor("test", []FieldDescriptor{b, u})

	assert.Equal(t, "test", d.Name())
	assert.Equal(t, 2, d.FieldCount())
	assert.Same(t, b, d.Field(0))
	assert.Nil(t, d.Field(2))
	assert.Nil(t, d.Field(-1))
	assert.Len(t, d.Fields(), 2)
}

// recordingVisitor logs every callback.
type recordingVisitor struct {
	descend bool
	calls   []string
}

func (r *recordingVisitor) Descend() bool { return r.descend }
func (r *recordingVisitor) VisitBool(d *BoolFieldDescriptor) {
	r.calls = append(r.calls, "bool:"+d.Name())
}
func (r *recordingVisitor) VisitInteger(d IntegerDescriptor) {
	r.calls = append(r.calls, "int:"+d.Name())
}
func (r *recordingVisitor) VisitIPV4(d *IPV4FieldDescriptor) {
	r.calls = append(r.calls, "ipv4:"+d.Name())
}
func (r *recordingVisitor) VisitIPV6(d *IPV6FieldDescriptor) {
	r.calls = append(r.calls, "ipv6:"+d.Name())
}
func (r *recordingVisitor) VisitMAC(d *MACFieldDescriptor) {
	r.calls = append(r.calls, "mac:"+d.Name())
}
func (r *recordingVisitor) VisitUID(d *UIDFieldDescriptor) {
	r.calls = append(r.calls, "uid:"+d.Name())
}
func (r *recordingVisitor) VisitString(d *StringFieldDescriptor) {
	r.calls = append(r.calls, "string:"+d.Name())
}
func (r *recordingVisitor) VisitGroup(d *GroupFieldDescriptor) {
	r.calls = append(r.calls, "group:"+d.Name())
}
func (r *recordingVisitor) PostVisitGroup(d *GroupFieldDescriptor) {
	r.calls = append(r.calls, "post:"+d.Name())
}

func TestDescriptorAccept(t *testing.T) {
	inner := NewGroupField("inner", []FieldDescriptor{NewMACField("mac")}, 1, 1)
	outer := NewGroupField("outer", []FieldDescriptor{NewUIDField("uid"), inner}, 0, 4)
	d := NewDescriptor("test", []FieldDescriptor{
		NewBoolField("b"),
		NewIntegerField[uint32]("u", false, 0),
		outer,
		NewStringField("s", 0, 8),
	})

	t.Run("descend", func(t *testing.T) {
		v := &recordingVisitor{descend: true}
		d.Accept(v)
		assert.Equal(t, []string{
			"bool:b", "int:u",
			"group:outer", "uid:uid", "group:inner", "mac:mac", "post:inner", "post:outer",
			"string:s",
		}, v.calls)
	})

	t.Run("no descend", func(t *testing.T) {
		v := &recordingVisitor{descend: false}
		d.Accept(v)
		assert.Equal(t, []string{
			"bool:b", "int:u", "group:outer", "post:outer", "string:s",
		}, v.calls)
	})
}
