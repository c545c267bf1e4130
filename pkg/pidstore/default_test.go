package pidstore

import (
	"testing"

	"github.com/rdm-protocol/rdm-go/pkg/messaging"
	"github.com/rdm-protocol/rdm-go/pkg/rdm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultStore(t *testing.T) {
	store, err := DefaultStore()
	require.NoError(t, err)

	again, err := DefaultStore()
	require.NoError(t, err)
	assert.Same(t, store, again)

	assert.Equal(t, 46, store.ESTAStore().PIDCount())
	assert.Empty(t, store.ManufacturerIDs())
	assert.Len(t, store.Digest(), 64)
}

func TestDefaultStoreDeviceInfo(t *testing.T) {
	store, err := DefaultStore()
	require.NoError(t, err)

	pid := store.GetDescriptor("device_info", 0)
	require.NotNil(t, pid)
	assert.Equal(t, uint16(96), pid.Value())
	assert.Nil(t, pid.SetRequest())
	assert.True(t, pid.IsGetValid(512))
	assert.False(t, pid.IsGetValid(AllSubDevices))

	resp := pid.GetResponse()
	require.NotNil(t, resp)
	assert.Equal(t, "protocol_major: uint8\n"+
		"protocol_minor: uint8\n"+
		"device_model: uint16\n"+
		"product_category: uint16\n"+
		"software_version: uint32\n"+
		"dmx_footprint: uint16\n"+
		"current_personality: uint8\n"+
		"personality_count: uint8\n"+
		"dmx_start_address: uint16\n"+
		"sub_device_count: uint16\n"+
		"sensor_count: uint8\n",
		messaging.NewSchemaPrinter().AsString(resp))
}

func TestDefaultStoreDescriptorsAreConsistent(t *testing.T) {
	store, err := DefaultStore()
	require.NoError(t, err)

	checker := rdm.NewDescriptorConsistencyChecker()
	for _, pid := range store.ESTAStore().AllPIDs() {
		for _, d := range pid.Descriptors() {
			assert.True(t, checker.CheckConsistency(d), d.Name())
		}
	}
}

func TestDefaultStoreRoundTrip(t *testing.T) {
	store, err := DefaultStore()
	require.NoError(t, err)
	resp := store.ESTAStore().LookupPIDByName("DEVICE_INFO").GetResponse()

	data := []byte{
		0x01, 0x00, // protocol version
		0x12, 0x34, // device model
		0x71, 0x01, // product category
		0x00, 0x00, 0x00, 0x2a, // software version
		0x00, 0x08, // footprint
		0x01, 0x03, // personality
		0x00, 0x01, // start address
		0x00, 0x00, // sub-devices
		0x02, // sensors
	}

	deserializer, err := rdm.NewDeserializer(rdm.DefaultDeserializerConfig())
	require.NoError(t, err)
	msg, err := deserializer.InflateMessage(resp, data)
	require.NoError(t, err)
	require.Equal(t, 11, msg.FieldCount())

	model, ok := msg.Field(2).(*messaging.IntegerMessageField[uint16])
	require.True(t, ok)
	assert.Equal(t, uint16(0x1234), model.Value())

	serializer, err := rdm.NewSerializer(rdm.DefaultSerializerConfig())
	require.NoError(t, err)
	assert.Equal(t, data, serializer.SerializeMessage(msg))
}

func TestDefaultStoreBuildSetRequest(t *testing.T) {
	store, err := DefaultStore()
	require.NoError(t, err)
	req := store.ESTAStore().LookupPIDByName("DMX_START_ADDRESS").SetRequest()
	require.NotNil(t, req)

	builder := rdm.NewStringMessageBuilder(rdm.DefaultBuilderConfig())

	msg, err := builder.GetMessage([]string{"512"}, req)
	require.NoError(t, err)

	serializer, err := rdm.NewSerializer(rdm.DefaultSerializerConfig())
	require.NoError(t, err)
	assert.Equal(t, []byte{0x02, 0x00}, serializer.SerializeMessage(msg))

	_, err = builder.GetMessage([]string{"513"}, req)
	assert.ErrorIs(t, err, rdm.ErrInvalidToken)

	_, err = builder.GetMessage([]string{"0"}, req)
	assert.ErrorIs(t, err, rdm.ErrInvalidToken)
}

func TestDefaultStoreIdentifyDevice(t *testing.T) {
	store, err := DefaultStore()
	require.NoError(t, err)
	pid := store.GetDescriptorByValue(0x1000, 0)
	require.NotNil(t, pid)

	msg, err := rdm.NewStringMessageBuilder(rdm.DefaultBuilderConfig()).GetMessage([]string{"true"}, pid.SetRequest())
	require.NoError(t, err)
	assert.Equal(t, "identify_state: true\n", messaging.NewMessagePrinter().AsString(msg))
}
