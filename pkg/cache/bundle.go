package cache

import (
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Bundle is the cached output of one render: artifact bytes by format plus
// the counters reported alongside them.
type Bundle struct {
	Artifacts map[string][]byte `msgpack:"artifacts"`
	Stats     map[string]int    `msgpack:"stats,omitempty"`
	CreatedAt time.Time         `msgpack:"created_at"`
}

// Encode serializes b with msgpack.
func (b *Bundle) Encode() ([]byte, error) {
	return msgpack.Marshal(b)
}

// DecodeBundle parses a bundle written by [Bundle.Encode].
func DecodeBundle(data []byte) (*Bundle, error) {
	var b Bundle
	if err := msgpack.Unmarshal(data, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// Has reports whether every format is present.
func (b *Bundle) Has(formats ...string) bool {
	for _, f := range formats {
		if _, ok := b.Artifacts[f]; !ok {
			return false
		}
	}
	return true
}
