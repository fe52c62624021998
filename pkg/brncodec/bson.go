package brncodec

import (
	"bytes"
	"reflect"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/kbrn/pkg/brn"
)

const pipelineBSON = "bson"

var (
	brnType     = reflect.TypeOf(brn.BRN{})
	nullBRNType = reflect.TypeOf(brn.NullBRN{})

	defaultBSONRegistry = NewBSONRegistry()
)

// RegisterBSON installs encoders and decoders for brn.BRN and brn.NullBRN.
// BRN is stored as a BSON string holding the canonical digits; an absent
// NullBRN is stored as BSON null.
func RegisterBSON(rb *bson.Registry) {
	rb.RegisterTypeEncoder(brnType, bson.ValueEncoderFunc(encodeBSON))
	rb.RegisterTypeDecoder(brnType, bson.ValueDecoderFunc(decodeBSON))
	rb.RegisterTypeEncoder(nullBRNType, bson.ValueEncoderFunc(encodeNullBSON))
	rb.RegisterTypeDecoder(nullBRNType, bson.ValueDecoderFunc(decodeNullBSON))
}

// NewBSONRegistry returns the driver's default registry with BRN codecs added.
func NewBSONRegistry() *bson.Registry {
	rb := bson.NewRegistry()
	RegisterBSON(rb)
	return rb
}

// MarshalBSON encodes doc using a registry that knows about BRN values.
func MarshalBSON(doc any) ([]byte, error) {
	buf := new(bytes.Buffer)
	enc := bson.NewEncoder(bson.NewDocumentWriter(buf))
	enc.SetRegistry(defaultBSONRegistry)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBSON decodes data into v using a registry that knows about BRN values.
func UnmarshalBSON(data []byte, v any) error {
	dec := bson.NewDecoder(bson.NewDocumentReader(bytes.NewReader(data)))
	dec.SetRegistry(defaultBSONRegistry)
	return dec.Decode(v)
}

func encodeBSON(_ bson.EncodeContext, vw bson.ValueWriter, val reflect.Value) error {
	if !val.IsValid() || val.Type() != brnType {
		return bson.ValueEncoderError{Name: "BRNEncodeValue", Types: []reflect.Type{brnType}, Received: val}
	}
	text, err := encode(pipelineBSON, val.Interface().(brn.BRN))
	if err != nil {
		return err
	}
	return vw.WriteString(text)
}

func decodeBSON(_ bson.DecodeContext, vr bson.ValueReader, val reflect.Value) error {
	if !val.CanSet() || val.Type() != brnType {
		return bson.ValueDecoderError{Name: "BRNDecodeValue", Types: []reflect.Type{brnType}, Received: val}
	}

	switch vr.Type() {
	case bson.TypeString:
		text, err := vr.ReadString()
		if err != nil {
			return err
		}
		v, err := decode(pipelineBSON, text)
		if err != nil {
			return err
		}
		val.Set(reflect.ValueOf(v))
		return nil
	case bson.TypeNull:
		if err := vr.ReadNull(); err != nil {
			return err
		}
		_, err := decode(pipelineBSON, "")
		return err
	default:
		return &DecodeError{Pipeline: pipelineBSON, Input: vr.Type().String(), Err: ErrUnexpectedType}
	}
}

func encodeNullBSON(ec bson.EncodeContext, vw bson.ValueWriter, val reflect.Value) error {
	if !val.IsValid() || val.Type() != nullBRNType {
		return bson.ValueEncoderError{Name: "NullBRNEncodeValue", Types: []reflect.Type{nullBRNType}, Received: val}
	}
	n := val.Interface().(brn.NullBRN)
	if !n.Valid {
		return vw.WriteNull()
	}
	return encodeBSON(ec, vw, reflect.ValueOf(n.BRN))
}

func decodeNullBSON(dc bson.DecodeContext, vr bson.ValueReader, val reflect.Value) error {
	if !val.CanSet() || val.Type() != nullBRNType {
		return bson.ValueDecoderError{Name: "NullBRNDecodeValue", Types: []reflect.Type{nullBRNType}, Received: val}
	}
	if vr.Type() == bson.TypeNull {
		if err := vr.ReadNull(); err != nil {
			return err
		}
		val.Set(reflect.ValueOf(brn.NullBRN{}))
		return nil
	}

	var v brn.BRN
	if err := decodeBSON(dc, vr, reflect.ValueOf(&v).Elem()); err != nil {
		return err
	}
	val.Set(reflect.ValueOf(brn.NullBRN{BRN: v, Valid: true}))
	return nil
}
