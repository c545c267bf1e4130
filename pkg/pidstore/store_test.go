package pidstore

import (
	"testing"

	"github.com/rdm-protocol/rdm-go/pkg/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPidDescriptor(t *testing.T) {
	getRequest := messaging.NewDescriptor("get request", nil)
	getResponse := messaging.NewDescriptor("get response", []messaging.FieldDescriptor{messaging.NewBoolField("bool")})
	setRequest := messaging.NewDescriptor("set request", nil)
	setResponse := messaging.NewDescriptor("set response", nil)

	pid := NewPidDescriptor("foo", 10, Frames{
		GetRequest:  getRequest,
		GetResponse: getResponse,
		SetRequest:  setRequest,
		SetResponse: setResponse,
	}, NonBroadcastSubDevice, SpecificSubDevice)

	assert.Equal(t, "foo", pid.Name())
	assert.Equal(t, uint16(10), pid.Value())
	assert.Same(t, getRequest, pid.GetRequest())
	assert.Same(t, getResponse, pid.GetResponse())
	assert.Same(t, setRequest, pid.SetRequest())
	assert.Same(t, setResponse, pid.SetResponse())
	assert.Len(t, pid.Descriptors(), 4)

	assert.True(t, pid.IsGetValid(0))
	assert.True(t, pid.IsGetValid(1))
	assert.True(t, pid.IsGetValid(512))
	assert.False(t, pid.IsGetValid(AllSubDevices))

	assert.False(t, pid.IsSetValid(0))
	assert.True(t, pid.IsSetValid(1))
	assert.True(t, pid.IsSetValid(512))
	assert.False(t, pid.IsSetValid(AllSubDevices))
}

func TestPidDescriptorWithoutRequests(t *testing.T) {
	pid := NewPidDescriptor("bar", 11, Frames{}, AnySubDevice, AnySubDevice)

	assert.False(t, pid.IsGetValid(0))
	assert.False(t, pid.IsSetValid(0))
	assert.Empty(t, pid.Descriptors())
}

func TestPidStore(t *testing.T) {
	foo := NewPidDescriptor("foo", 0, Frames{}, RootDevice, RootDevice)
	bar := NewPidDescriptor("bar", 1, Frames{}, RootDevice, RootDevice)
	store := NewPidStore([]*PidDescriptor{bar, foo})

	assert.Equal(t, 2, store.PIDCount())
	assert.Same(t, foo, store.LookupPID(0))
	assert.Same(t, bar, store.LookupPID(1))
	assert.Nil(t, store.LookupPID(2))

	assert.Same(t, foo, store.LookupPIDByName("foo"))
	assert.Same(t, bar, store.LookupPIDByName("BAR"))
	assert.Nil(t, store.LookupPIDByName("baz"))

	all := store.AllPIDs()
	require.Len(t, all, 2)
	assert.Same(t, foo, all[0])
	assert.Same(t, bar, all[1])

	all[0] = nil
	assert.Same(t, foo, store.AllPIDs()[0])
}

func TestRootPidStore(t *testing.T) {
	esta := NewPidDescriptor("DEVICE_INFO", 0x0060, Frames{}, AnySubDevice, AnySubDevice)
	vendor := NewPidDescriptor("SERIAL_NUMBER", 0x8001, Frames{}, AnySubDevice, AnySubDevice)
	other := NewPidDescriptor("SERIAL_NUMBER", 0x8001, Frames{}, AnySubDevice, AnySubDevice)

	root := NewRootPidStore(NewPidStore([]*PidDescriptor{esta}), map[uint16]*PidStore{
		0x7a70: NewPidStore([]*PidDescriptor{vendor}),
		0x0001: NewPidStore([]*PidDescriptor{other}),
	}, 3)

	assert.Equal(t, uint64(3), root.Version())
	assert.Equal(t, []uint16{0x0001, 0x7a70}, root.ManufacturerIDs())
	assert.Nil(t, root.ManufacturerStore(0x1234))
	assert.Empty(t, root.Digest())

	assert.Same(t, esta, root.GetDescriptor("device_info", 0x7a70))
	assert.Same(t, vendor, root.GetDescriptor("SERIAL_NUMBER", 0x7a70))
	assert.Same(t, other, root.GetDescriptor("SERIAL_NUMBER", 0x0001))
	assert.Nil(t, root.GetDescriptor("SERIAL_NUMBER", 0x1234))

	assert.Same(t, esta, root.GetDescriptorByValue(0x0060, 0))
	assert.Same(t, vendor, root.GetDescriptorByValue(0x8001, 0x7a70))
	assert.Nil(t, root.GetDescriptorByValue(0x8001, 0x1234))
}

func TestRootPidStoreNilESTA(t *testing.T) {
	root := NewRootPidStore(nil, nil, 0)
	require.NotNil(t, root.ESTAStore())
	assert.Equal(t, 0, root.ESTAStore().PIDCount())
	assert.Empty(t, root.ManufacturerIDs())
}
