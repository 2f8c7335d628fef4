// Package bridge talks to the FSW bridge over its local request/response
// socket. Every request and response is a single CBOR value and each
// connection carries exactly one exchange.
package bridge

import (
	"io"
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error

	// Core Deterministic Encoding: the same request always produces the
	// same bytes, which keeps captured traffic diffable.
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("bridge: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("bridge: CBOR decoder initialization failed: " + err.Error())
	}
}

// RawMessage is an undecoded CBOR value.
type RawMessage = cbor.RawMessage

func marshal(v any) ([]byte, error) { return encMode.Marshal(v) }
func unmarshal(data []byte, v any) error { return decMode.Unmarshal(data, v) }
func newEncoder(w io.Writer) *cbor.Encoder { return encMode.NewEncoder(w) }
func newDecoder(r io.Reader) *cbor.Decoder { return decMode.NewDecoder(r) }
