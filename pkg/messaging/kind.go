package messaging

// FieldKind identifies a field descriptor variant.
type FieldKind uint8

const (
	KindBool FieldKind = iota
	KindUInt8
	KindUInt16
	KindUInt32
	KindUInt64
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindIPV4
	KindIPV6
	KindMAC
	KindUID
	KindString
	KindGroup
)

var kindNames = []string{
	"bool",
	"uint8",
	"uint16",
	"uint32",
	"uint64",
	"int8",
	"int16",
	"int32",
	"int64",
	"IPv4",
	"IPv6",
	"MAC",
	"UID",
	"string",
	"group",
}

// String returns the schema type name.
func (k FieldKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsInteger returns true for the eight integer kinds.
func (k FieldKind) IsInteger() bool {
	return k >= KindUInt8 && k <= KindInt64
}
