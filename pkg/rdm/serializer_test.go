package rdm

import (
	"net/netip"
	"testing"

	"github.com/rdm-protocol/rdm-go/pkg/log"
	"github.com/rdm-protocol/rdm-go/pkg/log/mocks"
	"github.com/rdm-protocol/rdm-go/pkg/messaging"
	"github.com/rdm-protocol/rdm-go/pkg/uid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestSerializer(t *testing.T) *Serializer {
	t.Helper()
	s, err := NewSerializer(DefaultSerializerConfig())
	require.NoError(t, err)
	return s
}

func TestSerializeEmpty(t *testing.T) {
	s := newTestSerializer(t)

	assert.Empty(t, s.SerializeMessage(messaging.NewMessage(nil)))
	assert.Empty(t, s.SerializeMessage(nil))
}

func TestSerializeSimple(t *testing.T) {
	m := messaging.NewMessage([]messaging.MessageField{
		messaging.NewBoolMessageField(boolField("bool"), true),
		messaging.NewIntegerMessageField(uint8Field("uint8"), 1),
		messaging.NewIntegerMessageField(int8Field("int8"), -3),
		messaging.NewIntegerMessageField(uint16Field("uint16"), 300),
		messaging.NewIntegerMessageField(int16Field("int16"), -400),
		messaging.NewIntegerMessageField(uint32Field("uint32"), 66000),
		messaging.NewIntegerMessageField(int32Field("int32"), -66000),
		messaging.NewStringMessageField(messaging.NewStringField("string", 0, 32), "foo"),
	})

	expected := []byte{1, 1, 253, 1, 44, 254, 112, 0, 1, 1, 208, 255, 254, 254, 48, 'f', 'o', 'o'}
	assert.Equal(t, expected, newTestSerializer(t).SerializeMessage(m))
}

func TestSerializeString(t *testing.T) {
	m := messaging.NewMessage([]messaging.MessageField{
		messaging.NewStringMessageField(messaging.NewStringField("string", 10, 10), "foo bar"),
		messaging.NewStringMessageField(messaging.NewStringField("string", 0, 32), "long long foo bar baz"),
	})

	expected := []byte("foo bar\x00\x00\x00long long foo bar baz")
	assert.Equal(t, expected, newTestSerializer(t).SerializeMessage(m))
}

func TestSerializeStringIsNotTruncated(t *testing.T) {
	m := messaging.NewMessage([]messaging.MessageField{
		messaging.NewStringMessageField(messaging.NewStringField("string", 0, 4), "too long"),
	})

	assert.Equal(t, []byte("too long"), newTestSerializer(t).SerializeMessage(m))
}

func TestSerializeUID(t *testing.T) {
	m := messaging.NewMessage([]messaging.MessageField{
		messaging.NewUIDMessageField(messaging.NewUIDField("uid"), uid.New(uid.OpenLightingESTACode, 1)),
	})

	assert.Equal(t, []byte{0x7a, 0x70, 0, 0, 0, 1}, newTestSerializer(t).SerializeMessage(m))
}

func TestSerializeAddresses(t *testing.T) {
	mac, err := messaging.ParseMAC("01:23:45:67:89:ab")
	require.NoError(t, err)

	m := messaging.NewMessage([]messaging.MessageField{
		messaging.NewIPV4MessageField(messaging.NewIPV4Field("ip"), netip.MustParseAddr("10.0.0.1")),
		messaging.NewIPV6MessageField(messaging.NewIPV6Field("ip6"), netip.MustParseAddr("fe80::1")),
		messaging.NewMACMessageField(messaging.NewMACField("mac"), mac),
	})

	expected := []byte{
		10, 0, 0, 1,
		0xfe, 0x80, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1,
		0x01, 0x23, 0x45, 0x67, 0x89, 0xab,
	}
	assert.Equal(t, expected, newTestSerializer(t).SerializeMessage(m))
}

func TestSerializeLittleEndian(t *testing.T) {
	m := messaging.NewMessage([]messaging.MessageField{
		messaging.NewIntegerMessageField(messaging.NewIntegerField[uint8]("uint8", true, 0), 1),
		messaging.NewIntegerMessageField(messaging.NewIntegerField[int8]("int8", true, 0), -3),
		messaging.NewIntegerMessageField(messaging.NewIntegerField[uint16]("uint16", true, 0), 300),
		messaging.NewIntegerMessageField(messaging.NewIntegerField[int16]("int16", true, 0), -400),
		messaging.NewIntegerMessageField(messaging.NewIntegerField[uint32]("uint32", true, 0), 66000),
		messaging.NewIntegerMessageField(messaging.NewIntegerField[int32]("int32", true, 0), -66000),
	})

	expected := []byte{1, 253, 44, 1, 112, 254, 208, 1, 1, 0, 48, 254, 254, 255}
	assert.Equal(t, expected, newTestSerializer(t).SerializeMessage(m))
}

func TestSerialize64Bit(t *testing.T) {
	m := messaging.NewMessage([]messaging.MessageField{
		messaging.NewIntegerMessageField(messaging.NewIntegerField[uint64]("uint64", false, 0), 0x0102030405060708),
		messaging.NewIntegerMessageField(messaging.NewIntegerField[int64]("int64", true, 0), -2),
	})

	expected := []byte{1, 2, 3, 4, 5, 6, 7, 8, 0xfe, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
	assert.Equal(t, expected, newTestSerializer(t).SerializeMessage(m))
}

func TestSerializeWithGroups(t *testing.T) {
	b := boolField("bool")
	u := uint8Field("uint8")
	group := messaging.NewGroupField("group", fields(b, u), 0, 3)

	block := func(v bool, n uint8) messaging.MessageField {
		return messaging.NewGroupMessageField(group, []messaging.MessageField{
			messaging.NewBoolMessageField(b, v),
			messaging.NewIntegerMessageField(u, n),
		})
	}

	s := newTestSerializer(t)

	one := messaging.NewMessage([]messaging.MessageField{block(true, 10)})
	assert.Equal(t, []byte{1, 10}, s.SerializeMessage(one))

	three := messaging.NewMessage([]messaging.MessageField{block(true, 10), block(true, 42), block(false, 240)})
	assert.Equal(t, []byte{1, 10, 1, 42, 0, 240}, s.SerializeMessage(three))
}

func TestSerializeWithNestedGroups(t *testing.T) {
	b := boolField("bool")
	i := int16Field("int16")
	bar := messaging.NewGroupField("bar", fields(b), 2, 2)
	outer := messaging.NewGroupField("", fields(i, bar), 0, 4)

	block := func(n int16, first, second bool) messaging.MessageField {
		return messaging.NewGroupMessageField(outer, []messaging.MessageField{
			messaging.NewIntegerMessageField(i, n),
			messaging.NewGroupMessageField(bar, []messaging.MessageField{messaging.NewBoolMessageField(b, first)}),
			messaging.NewGroupMessageField(bar, []messaging.MessageField{messaging.NewBoolMessageField(b, second)}),
		})
	}

	m := messaging.NewMessage([]messaging.MessageField{block(1, true, true), block(2, true, false)})
	assert.Equal(t, []byte{0, 1, 1, 1, 0, 2, 1, 0}, newTestSerializer(t).SerializeMessage(m))
}

func TestSerializerBufferGrows(t *testing.T) {
	cfg := DefaultSerializerConfig()
	cfg.InitialSize = 2
	s, err := NewSerializer(cfg)
	require.NoError(t, err)

	str := messaging.NewStringField("s", 0, 255)
	long := make([]byte, 200)
	for i := range long {
		long[i] = 'a' + byte(i%26)
	}
	m := messaging.NewMessage([]messaging.MessageField{messaging.NewStringMessageField(str, string(long))})

	assert.Equal(t, long, s.SerializeMessage(m))
}

func TestSerializerLogsEvents(t *testing.T) {
	logger := mocks.NewMockLogger(t)

	var got log.Event
	logger.EXPECT().Log(mock.Anything).Run(func(event log.Event) {
		got = event
	}).Once()

	cfg := DefaultSerializerConfig()
	cfg.Logger = logger
	s, err := NewSerializer(cfg)
	require.NoError(t, err)

	m := messaging.NewMessage([]messaging.MessageField{
		messaging.NewIntegerMessageField(uint16Field("uint16"), 300),
	})
	s.SerializeMessage(m)

	assert.Equal(t, s.CodecID(), got.CodecID)
	assert.Equal(t, log.DirectionPack, got.Direction)
	assert.Equal(t, log.CategoryMessage, got.Category)
	require.NotNil(t, got.Message)
	assert.Equal(t, 2, got.Message.Length)
	assert.Equal(t, []byte{1, 44}, got.Message.Data)
	assert.Equal(t, 1, got.Message.FieldCount)
}

func TestNewSerializerValidatesConfig(t *testing.T) {
	cfg := DefaultSerializerConfig()
	cfg.InitialSize = 0
	_, err := NewSerializer(cfg)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	cfg = DefaultSerializerConfig()
	cfg.CodecID = "not-a-uuid"
	_, err = NewSerializer(cfg)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	cfg = DefaultSerializerConfig()
	cfg.CodecID = "1b4e28ba-2fa1-11d2-883f-0016d3cca427"
	s, err := NewSerializer(cfg)
	require.NoError(t, err)
	assert.Equal(t, cfg.CodecID, s.CodecID())
}
