package pidstore

import (
	"github.com/rdm-protocol/rdm-go/pkg/messaging"
)

// Frames holds the message descriptors of a PID. A nil descriptor means the
// command is not supported.
type Frames struct {
	GetRequest  *messaging.Descriptor
	GetResponse *messaging.Descriptor
	SetRequest  *messaging.Descriptor
	SetResponse *messaging.Descriptor
}

// PidDescriptor describes one RDM parameter.
type PidDescriptor struct {
	name     string
	value    uint16
	frames   Frames
	getRange SubDeviceValidator
	setRange SubDeviceValidator
}

// NewPidDescriptor creates a PidDescriptor.
func NewPidDescriptor(name string, value uint16, frames Frames, getRange, setRange SubDeviceValidator) *PidDescriptor {
	return &PidDescriptor{
		name:     name,
		value:    value,
		frames:   frames,
		getRange: getRange,
		setRange: setRange,
	}
}

func (p *PidDescriptor) Name() string                          { return p.name }
func (p *PidDescriptor) Value() uint16                         { return p.value }
func (p *PidDescriptor) GetRequest() *messaging.Descriptor     { return p.frames.GetRequest }
func (p *PidDescriptor) GetResponse() *messaging.Descriptor    { return p.frames.GetResponse }
func (p *PidDescriptor) SetRequest() *messaging.Descriptor     { return p.frames.SetRequest }
func (p *PidDescriptor) SetResponse() *messaging.Descriptor    { return p.frames.SetResponse }
func (p *PidDescriptor) GetSubDeviceRange() SubDeviceValidator { return p.getRange }
func (p *PidDescriptor) SetSubDeviceRange() SubDeviceValidator { return p.setRange }

// IsGetValid reports whether a GET may be sent to subDevice.
func (p *PidDescriptor) IsGetValid(subDevice uint16) bool {
	return p.frames.GetRequest != nil && p.getRange.Valid(subDevice)
}

// IsSetValid reports whether a SET may be sent to subDevice.
func (p *PidDescriptor) IsSetValid(subDevice uint16) bool {
	return p.frames.SetRequest != nil && p.setRange.Valid(subDevice)
}

// Descriptors returns every non-nil message descriptor of p, in the order
// get request, get response, set request, set response.
func (p *PidDescriptor) Descriptors() []*messaging.Descriptor {
	var out []*messaging.Descriptor
	for _, d := range []*messaging.Descriptor{p.frames.GetRequest, p.frames.GetResponse, p.frames.SetRequest, p.frames.SetResponse} {
		if d != nil {
			out = append(out, d)
		}
	}
	return out
}
