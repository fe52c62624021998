package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/kbrn/pkg/brn"
	"github.com/dmitrymomot/kbrn/pkg/config"
)

type TestConfigDefault struct {
	TestString string `env:"TEST_STRING_DEFAULT" envDefault:"default_value"`
	TestInt    int    `env:"TEST_INT_DEFAULT" envDefault:"42"`
	TestBool   bool   `env:"TEST_BOOL_DEFAULT" envDefault:"true"`
}

type TestConfigSuccess struct {
	TestString string `env:"TEST_STRING_SUCCESS" envDefault:"default_value"`
	TestInt    int    `env:"TEST_INT_SUCCESS" envDefault:"42"`
	TestBool   bool   `env:"TEST_BOOL_SUCCESS" envDefault:"true"`
}

type TestConfigSingleton struct {
	TestString string `env:"TEST_STRING_SINGLETON" envDefault:"default_value"`
}

type TestConfigDifferent1 struct {
	Value string `env:"VALUE_TYPE1" envDefault:"default1"`
}

type TestConfigDifferent2 struct {
	Value string `env:"VALUE_TYPE2" envDefault:"default2"`
}

type RequiredConfig struct {
	Required string `env:"REQUIRED_VALUE,required"`
}

type IssuerConfig struct {
	BRN    brn.BRN     `env:"TEST_ISSUER_BRN,required"`
	Parent brn.NullBRN `env:"TEST_ISSUER_PARENT"`
	Name   string      `env:"TEST_ISSUER_NAME"`
}

func TestLoad_Success(t *testing.T) {
	t.Setenv("TEST_STRING_SUCCESS", "test_value")
	t.Setenv("TEST_INT_SUCCESS", "100")
	t.Setenv("TEST_BOOL_SUCCESS", "false")

	var cfg TestConfigSuccess
	err := config.Load(&cfg)

	require.NoError(t, err)
	assert.Equal(t, "test_value", cfg.TestString)
	assert.Equal(t, 100, cfg.TestInt)
	assert.False(t, cfg.TestBool)
}

func TestLoad_DefaultValues(t *testing.T) {
	os.Unsetenv("TEST_STRING_DEFAULT")
	os.Unsetenv("TEST_INT_DEFAULT")
	os.Unsetenv("TEST_BOOL_DEFAULT")

	var cfg TestConfigDefault
	err := config.Load(&cfg)

	require.NoError(t, err)
	assert.Equal(t, "default_value", cfg.TestString)
	assert.Equal(t, 42, cfg.TestInt)
	assert.True(t, cfg.TestBool)
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("REQUIRED_VALUE")

	var cfg RequiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	// a failed load is not cached
	t.Setenv("REQUIRED_VALUE", "present")
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "present", cfg.Required)
}

func TestLoad_Singleton(t *testing.T) {
	t.Setenv("TEST_STRING_SINGLETON", "first_value")

	var firstConfig TestConfigSingleton
	require.NoError(t, config.Load(&firstConfig))

	t.Setenv("TEST_STRING_SINGLETON", "second_value")

	var secondConfig TestConfigSingleton
	require.NoError(t, config.Load(&secondConfig))

	assert.Equal(t, "first_value", secondConfig.TestString, "second load should be served from cache")

	config.ResetCache()

	var thirdConfig TestConfigSingleton
	require.NoError(t, config.Load(&thirdConfig))
	assert.Equal(t, "second_value", thirdConfig.TestString)
}

func TestLoad_DifferentTypes(t *testing.T) {
	t.Setenv("VALUE_TYPE1", "test_type1")
	t.Setenv("VALUE_TYPE2", "test_type2")

	var config1 TestConfigDifferent1
	require.NoError(t, config.Load(&config1))

	var config2 TestConfigDifferent2
	require.NoError(t, config.Load(&config2))

	assert.Equal(t, "test_type1", config1.Value)
	assert.Equal(t, "test_type2", config2.Value)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *TestConfigSuccess
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	assert.ErrorIs(t, config.Parse(cfg, nil), config.ErrNilPointer)
}

func TestMustLoad(t *testing.T) {
	os.Unsetenv("REQUIRED_VALUE")
	config.ResetCache()

	var cfg RequiredConfig
	assert.Panics(t, func() { config.MustLoad(&cfg) })
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("registration numbers", func(t *testing.T) {
		t.Parallel()
		var cfg IssuerConfig
		err := config.Parse(&cfg, map[string]string{
			"TEST_ISSUER_BRN":    "120-81-47521",
			"TEST_ISSUER_PARENT": "2208162517",
		})
		require.NoError(t, err)
		assert.Equal(t, "1208147521", cfg.BRN.Digits())
		assert.True(t, cfg.Parent.Valid)
		assert.Equal(t, "2208162517", cfg.Parent.BRN.Digits())
	})

	t.Run("optional number left unset", func(t *testing.T) {
		t.Parallel()
		var cfg IssuerConfig
		require.NoError(t, config.Parse(&cfg, map[string]string{"TEST_ISSUER_BRN": "1208147521"}))
		assert.False(t, cfg.Parent.Valid)
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		t.Parallel()
		var cfg IssuerConfig
		err := config.Parse(&cfg, map[string]string{"TEST_ISSUER_BRN": "1208147520"})
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
		assert.ErrorIs(t, err, brn.ErrChecksumMismatch)
	})

	t.Run("required", func(t *testing.T) {
		t.Parallel()
		var cfg IssuerConfig
		assert.ErrorIs(t, config.Parse(&cfg, map[string]string{}), config.ErrParsingConfig)
	})
}

func TestLoadEnv(t *testing.T) {
	os.Unsetenv("TEST_ISSUER_BRN")
	os.Unsetenv("TEST_ISSUER_NAME")
	t.Cleanup(func() {
		os.Unsetenv("TEST_ISSUER_BRN")
		os.Unsetenv("TEST_ISSUER_NAME")
	})

	require.NoError(t, config.LoadEnv("testdata/.env.issuer"))

	var cfg IssuerConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "2208162517", cfg.BRN.Digits())
	assert.Equal(t, "Hanbit Trading", cfg.Name)

	assert.ErrorIs(t, config.LoadEnv("testdata/missing.env"), config.ErrLoadingEnvFile)
}
