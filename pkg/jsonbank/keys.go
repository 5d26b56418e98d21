package jsonbank

// KeyKind selects one of the two API credentials.
type KeyKind int

const (
	// PublicKey grants read access to the holder's own documents.
	PublicKey KeyKind = iota
	// PrivateKey additionally grants write and delete access.
	PrivateKey
)

func (k KeyKind) String() string {
	switch k {
	case PublicKey:
		return "public"
	case PrivateKey:
		return "private"
	default:
		return "unknown"
	}
}

// header returns the request header carrying the key.
func (k KeyKind) header() string {
	if k == PrivateKey {
		return "jsb-prv-key"
	}
	return "jsb-pub-key"
}

// Keys holds the API credentials. An empty string means the key is not set.
type Keys struct {
	Public  string
	Private string
}

// Has reports whether the key of the given kind is set.
func (k Keys) Has(kind KeyKind) bool {
	return k.Get(kind) != ""
}

// Get returns the key of the given kind, or "" when it is not set.
func (k Keys) Get(kind KeyKind) string {
	switch kind {
	case PublicKey:
		return k.Public
	case PrivateKey:
		return k.Private
	default:
		return ""
	}
}
