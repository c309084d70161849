// Package serializer renders models into download formats. Encoders are
// registered per model type and format, so a handler only names what it
// wants to write.
package serializer

import (
	"fmt"
	"io"
	"reflect"
	"sync"
)

// Format is an output format such as "csv".
type Format string

const FormatCSV Format = "csv"

// Encoder writes a model in one format.
type Encoder interface {
	// Encode writes input to w.
	Encode(input any, w io.Writer) error

	// ContentType is the MIME type of the output.
	ContentType() string
}

type key struct {
	t      reflect.Type
	format Format
}

var (
	mu       sync.RWMutex
	encoders = make(map[key]Encoder)
)

// Register registers the encoder for a model type and format.
func Register(model any, format Format, enc Encoder) {
	mu.Lock()
	defer mu.Unlock()
	encoders[key{reflect.TypeOf(model), format}] = enc
}

func lookup(model any, format Format) (Encoder, error) {
	mu.RLock()
	defer mu.RUnlock()
	if enc, ok := encoders[key{reflect.TypeOf(model), format}]; ok {
		return enc, nil
	}
	return nil, fmt.Errorf("no %s serializer found for model %T", format, model)
}

// Encode writes model in format.
func Encode(model any, format Format, w io.Writer) error {
	enc, err := lookup(model, format)
	if err != nil {
		return err
	}
	return enc.Encode(model, w)
}

// ContentType reports the MIME type Encode will produce.
func ContentType(model any, format Format) (string, error) {
	enc, err := lookup(model, format)
	if err != nil {
		return "", err
	}
	return enc.ContentType(), nil
}
