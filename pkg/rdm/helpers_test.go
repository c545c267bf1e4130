package rdm

import (
	"github.com/rdm-protocol/rdm-go/pkg/messaging"
)

func fields(f ...messaging.FieldDescriptor) []messaging.FieldDescriptor { return f }

func descriptor(f ...messaging.FieldDescriptor) *messaging.Descriptor {
	return messaging.NewDescriptor("Test Descriptor", f)
}

func printMessage(m *messaging.Message) string {
	return messaging.NewMessagePrinter().AsString(m)
}

func boolField(name string) *messaging.BoolFieldDescriptor { return messaging.NewBoolField(name) }

func uint8Field(name string) *messaging.UInt8FieldDescriptor {
	return messaging.NewIntegerField[uint8](name, false, 0)
}

func uint16Field(name string) *messaging.UInt16FieldDescriptor {
	return messaging.NewIntegerField[uint16](name, false, 0)
}

func uint32Field(name string) *messaging.UInt32FieldDescriptor {
	return messaging.NewIntegerField[uint32](name, false, 0)
}

func int8Field(name string) *messaging.Int8FieldDescriptor {
	return messaging.NewIntegerField[int8](name, false, 0)
}

func int16Field(name string) *messaging.Int16FieldDescriptor {
	return messaging.NewIntegerField[int16](name, false, 0)
}

func int32Field(name string) *messaging.Int32FieldDescriptor {
	return messaging.NewIntegerField[int32](name, false, 0)
}
