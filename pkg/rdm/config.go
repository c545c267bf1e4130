package rdm

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rdm-protocol/rdm-go/pkg/log"
)

// DefaultInitialSize is the starting capacity of a Serializer buffer.
const DefaultInitialSize = 256

// SerializerConfig configures a Serializer.
type SerializerConfig struct {
	// InitialSize is the starting buffer size in bytes. The buffer doubles
	// when it fills.
	InitialSize int

	// Logger receives one event per SerializeMessage call. Nil disables
	// codec events.
	Logger log.Logger

	// CodecID identifies this instance in events. Empty assigns a random UUID.
	CodecID string
}

// DefaultSerializerConfig returns a SerializerConfig with default values.
func DefaultSerializerConfig() SerializerConfig {
	return SerializerConfig{InitialSize: DefaultInitialSize}
}

// Validate checks the configuration.
func (c *SerializerConfig) Validate() error {
	if c.InitialSize <= 0 {
		return fmt.Errorf("%w: initial size must be positive, got %d", ErrInvalidConfig, c.InitialSize)
	}
	return validateCodecID(c.CodecID)
}

// DeserializerConfig configures a Deserializer.
type DeserializerConfig struct {
	// Logger receives one event per InflateMessage call. Nil disables codec
	// events.
	Logger log.Logger

	// CodecID identifies this instance in events. Empty assigns a random UUID.
	CodecID string
}

// DefaultDeserializerConfig returns a DeserializerConfig with default values.
func DefaultDeserializerConfig() DeserializerConfig {
	return DeserializerConfig{}
}

// Validate checks the configuration.
func (c *DeserializerConfig) Validate() error {
	return validateCodecID(c.CodecID)
}

// BuilderConfig configures a StringMessageBuilder.
type BuilderConfig struct {
	// EnforceIntervals rejects integer values outside the descriptor's
	// intervals.
	EnforceIntervals bool
}

// DefaultBuilderConfig returns a BuilderConfig with default values.
func DefaultBuilderConfig() BuilderConfig {
	return BuilderConfig{EnforceIntervals: true}
}

func validateCodecID(id string) error {
	if id == "" {
		return nil
	}
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: codec id: %v", ErrInvalidConfig, err)
	}
	return nil
}

func codecIDOrNew(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}
