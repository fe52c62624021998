package brncodec_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/kbrn/pkg/brn"
	"github.com/dmitrymomot/kbrn/pkg/brncodec"
)

type merchant struct {
	Name     string      `bson:"name"`
	BRN      brn.BRN     `bson:"brn"`
	Parent   *brn.BRN    `bson:"parent"`
	Previous brn.NullBRN `bson:"previous"`
}

func TestBSON(t *testing.T) {
	t.Parallel()

	t.Run("stores canonical string", func(t *testing.T) {
		t.Parallel()
		parent := brn.MustParse("220-81-62517")
		in := merchant{Name: "acme", BRN: brn.MustParse("120-81-47521"), Parent: &parent}

		data, err := brncodec.MarshalBSON(in)
		require.NoError(t, err)

		raw := bson.Raw(data)
		assert.Equal(t, "1208147521", raw.Lookup("brn").StringValue())
		assert.Equal(t, "2208162517", raw.Lookup("parent").StringValue())
		assert.Equal(t, bson.TypeNull, raw.Lookup("previous").Type)

		var out merchant
		require.NoError(t, brncodec.UnmarshalBSON(data, &out))
		assert.Equal(t, in.BRN, out.BRN)
		require.NotNil(t, out.Parent)
		assert.Equal(t, parent, *out.Parent)
		assert.False(t, out.Previous.Valid)
	})

	t.Run("round trips valid NullBRN", func(t *testing.T) {
		t.Parallel()
		in := merchant{BRN: brn.MustParse("1234567891"), Previous: brn.NullFrom(brn.MustParse("1208147521"))}

		data, err := brncodec.MarshalBSON(in)
		require.NoError(t, err)

		var out merchant
		require.NoError(t, brncodec.UnmarshalBSON(data, &out))
		assert.Equal(t, in, out)
	})

	t.Run("decoding keeps error kinds", func(t *testing.T) {
		t.Parallel()
		data, err := bson.Marshal(bson.D{{Key: "brn", Value: "1208147520"}})
		require.NoError(t, err)

		var out merchant
		err = brncodec.UnmarshalBSON(data, &out)
		assert.ErrorIs(t, err, brn.ErrChecksumMismatch)
		assert.NotErrorIs(t, err, brn.ErrMalformed)

		data, err = bson.Marshal(bson.D{{Key: "brn", Value: "120-81"}})
		require.NoError(t, err)
		err = brncodec.UnmarshalBSON(data, &out)
		assert.ErrorIs(t, err, brn.ErrMalformed)

		data, err = bson.Marshal(bson.D{{Key: "previous", Value: "1208147529"}})
		require.NoError(t, err)
		err = brncodec.UnmarshalBSON(data, &out)
		assert.ErrorIs(t, err, brn.ErrChecksumMismatch)
	})

	t.Run("rejects non string and null for required value", func(t *testing.T) {
		t.Parallel()
		data, err := bson.Marshal(bson.D{{Key: "brn", Value: int64(1208147521)}})
		require.NoError(t, err)

		var out merchant
		err = brncodec.UnmarshalBSON(data, &out)
		assert.ErrorIs(t, err, brncodec.ErrUnexpectedType)

		data, err = bson.Marshal(bson.D{{Key: "brn", Value: nil}})
		require.NoError(t, err)
		err = brncodec.UnmarshalBSON(data, &out)
		assert.ErrorIs(t, err, brn.ErrMalformed)
	})

	t.Run("zero value cannot be stored", func(t *testing.T) {
		t.Parallel()
		_, err := brncodec.MarshalBSON(merchant{})
		assert.ErrorIs(t, err, brn.ErrMalformed)
	})

	t.Run("custom registry", func(t *testing.T) {
		t.Parallel()
		reg := bson.NewRegistry()
		brncodec.RegisterBSON(reg)

		enc, err := reg.LookupEncoder(reflect.TypeOf(brn.BRN{}))
		require.NoError(t, err)
		assert.NotNil(t, enc)
	})
}
