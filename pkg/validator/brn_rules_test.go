package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/kbrn/pkg/brn"
	"github.com/dmitrymomot/kbrn/pkg/validator"
)

func TestValidBRN(t *testing.T) {
	t.Parallel()

	t.Run("valid numbers", func(t *testing.T) {
		valid := []string{
			"1208147521",
			"120-81-47521",
			"120 81 47521",
			" 220-81-62517 ",
		}

		for _, v := range valid {
			err := validator.Apply(validator.ValidBRN("brn", v))
			assert.NoError(t, err, "BRN should be valid: %s", v)
		}
	})

	t.Run("malformed numbers", func(t *testing.T) {
		invalid := []string{
			"",
			"   ",
			"12345",
			"abcdefghij",
			"123-45-6789",
			"120-814-7521",
		}

		for _, v := range invalid {
			err := validator.Apply(validator.ValidBRN("brn", v))
			assert.Error(t, err, "BRN should be invalid: %s", v)

			verrs := validator.ExtractValidationErrors(err)
			require.NotNil(t, verrs)
			assert.Equal(t, "validation.brn", verrs[0].TranslationKey)
			assert.Equal(t, "brn", verrs[0].Field)
		}
	})

	t.Run("checksum mismatch has its own key", func(t *testing.T) {
		err := validator.Apply(validator.ValidBRN("brn", "120-81-47520"))
		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "validation.brn_checksum", verrs[0].TranslationKey)
	})
}

func TestOptionalBRN(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Apply(validator.OptionalBRN("brn", "")))
	assert.NoError(t, validator.Apply(validator.OptionalBRN("brn", "  ")))
	assert.NoError(t, validator.Apply(validator.OptionalBRN("brn", "1208147521")))

	err := validator.Apply(validator.OptionalBRN("brn", "1208147522"))
	verrs := validator.ExtractValidationErrors(err)
	require.Len(t, verrs, 1)
	assert.Equal(t, "validation.brn_checksum", verrs[0].TranslationKey)
}

func TestBRNEntityType(t *testing.T) {
	t.Parallel()

	corporate := []brn.EntityType{brn.ForProfitCorporateHQ, brn.ForProfitCorporateBranch}

	assert.NoError(t, validator.Apply(validator.BRNEntityType("brn", "120-81-47521", corporate...)))
	assert.NoError(t, validator.Apply(validator.BRNEntityType("brn", "105-85-12341", corporate...)))

	err := validator.Apply(validator.BRNEntityType("brn", "123-45-67891", corporate...))
	verrs := validator.ExtractValidationErrors(err)
	require.Len(t, verrs, 1)
	assert.Equal(t, "validation.brn_entity_type", verrs[0].TranslationKey)
	assert.Equal(t, []string{"for_profit_corporate_hq", "for_profit_corporate_branch"}, verrs[0].TranslationValues["allowed"])

	assert.Error(t, validator.Apply(validator.BRNEntityType("brn", "garbage", corporate...)))
}

func TestBRNRules_Combined(t *testing.T) {
	t.Parallel()

	err := validator.Apply(
		validator.ValidBRN("seller_brn", "120-81-47521"),
		validator.ValidBRN("buyer_brn", "220-81-62510"),
		validator.OptionalBRN("agent_brn", "12"),
	)
	require.Error(t, err)
	assert.True(t, validator.IsValidationError(err))

	verrs := validator.ExtractValidationErrors(err)
	assert.Equal(t, []string{"buyer_brn", "agent_brn"}, verrs.Fields())
	assert.False(t, verrs.Has("seller_brn"))
}
