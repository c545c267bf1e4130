package log

// Logger is the sink for codec events. Serializers and deserializers call
// Log synchronously once per message, so implementations should be cheap and
// must tolerate concurrent calls from independent codecs.
type Logger interface {
	Log(event Event)
}

// NoopLogger drops every event.
type NoopLogger struct{}

func (NoopLogger) Log(Event) {}

var _ Logger = NoopLogger{}
