package signature_test

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/0xalexb/hjarta-morph/signature"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dbConfig struct {
	Host     string `morph:"host"`
	Port     int    `morph:"port"`
	User     string `morph:"user,optional"`
	Password string `morph:"-"`
	internal string
}

type clientConfig struct {
	BaseURL     string `yaml:"base_url"`
	APIKey      string
	MaxTokens   int `json:"max_tokens,omitempty"`
	Temperature float64
	Timeout     time.Duration `morph:",optional"`
	Labels      []string      `toml:"labels"`
	Ignored     bool          `yaml:"-"`
}

type defaultedConfig struct {
	Host    string `morph:"host"`
	Port    int    `morph:"port"`
	Retries int    `morph:"retries,required"`
}

func (c *defaultedConfig) SetDefaults() bool {
	c.Port = 5432
	c.Retries = 3

	return true
}

func paramNames(sig signature.Signature) []string {
	return sig.Names()
}

func TestIntrospect_Struct_FieldNamesAndOrder(t *testing.T) {
	t.Parallel()

	sig, err := signature.Introspect(clientConfig{})
	require.NoError(t, err)

	assert.Equal(t, "clientConfig", sig.Name)
	assert.Equal(t,
		[]string{"base_url", "api_key", "max_tokens", "temperature", "timeout", "labels"},
		paramNames(sig),
	)
}

func TestIntrospect_Struct_RequiredAndOptional(t *testing.T) {
	t.Parallel()

	sig, err := signature.Introspect(&dbConfig{})
	require.NoError(t, err)

	require.Equal(t, []string{"host", "port", "user"}, paramNames(sig))

	host, ok := sig.Lookup("host")
	require.True(t, ok)
	assert.True(t, host.Required)
	assert.Equal(t, reflect.TypeFor[string](), host.Type)

	user, ok := sig.Lookup("user")
	require.True(t, ok)
	assert.False(t, user.Required)
	assert.Equal(t, "", user.Default)

	_, ok = sig.Lookup("password")
	assert.False(t, ok)
	_, ok = sig.Lookup("internal")
	assert.False(t, ok)
}

func TestIntrospect_Struct_PrototypeValuesAreDefaults(t *testing.T) {
	t.Parallel()

	sig, err := signature.Introspect(dbConfig{Port: 3306})
	require.NoError(t, err)

	port, ok := sig.Lookup("port")
	require.True(t, ok)
	assert.False(t, port.Required)
	assert.Equal(t, 3306, port.Default)

	host, ok := sig.Lookup("host")
	require.True(t, ok)
	assert.True(t, host.Required)
}

func TestIntrospect_Struct_Defaulter(t *testing.T) {
	t.Parallel()

	sig, err := signature.Introspect(&defaultedConfig{})
	require.NoError(t, err)

	port, ok := sig.Lookup("port")
	require.True(t, ok)
	assert.False(t, port.Required)
	assert.Equal(t, 5432, port.Default)

	retries, ok := sig.Lookup("retries")
	require.True(t, ok)
	assert.True(t, retries.Required, "required tag wins over a default")
}

func TestIntrospect_Struct_Types(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		target any
	}{
		{name: "value", target: dbConfig{}},
		{name: "pointer", target: &dbConfig{}},
		{name: "nil pointer", target: (*dbConfig)(nil)},
		{name: "reflect type", target: reflect.TypeFor[dbConfig]()},
		{name: "reflect pointer type", target: reflect.TypeFor[*dbConfig]()},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			sig, err := signature.Introspect(testCase.target)
			require.NoError(t, err)
			assert.Equal(t, []string{"host", "port", "user"}, paramNames(sig))
		})
	}
}

func TestOf(t *testing.T) {
	t.Parallel()

	sig, err := signature.Of[dbConfig]()
	require.NoError(t, err)
	assert.Equal(t, []string{"host", "port", "user"}, paramNames(sig))

	_, err = signature.Of[int]()
	require.ErrorIs(t, err, signature.ErrUnintrospectable)
}

func TestIntrospect_Struct_Build(t *testing.T) {
	t.Parallel()

	sig, err := signature.Introspect(&dbConfig{})
	require.NoError(t, err)

	instance, err := sig.Build(map[string]any{"host": "x", "port": uint64(1), "user": "admin"})
	require.NoError(t, err)

	cfg, ok := instance.(*dbConfig)
	require.True(t, ok, "pointer targets build pointers")
	assert.Equal(t, &dbConfig{Host: "x", Port: 1, User: "admin"}, cfg)

	sig, err = signature.Introspect(dbConfig{})
	require.NoError(t, err)

	instance, err = sig.Build(map[string]any{"host": "x", "port": 1})
	require.NoError(t, err)
	assert.Equal(t, dbConfig{Host: "x", Port: 1}, instance)
}

func TestIntrospect_Struct_BuildKeepsPrototype(t *testing.T) {
	t.Parallel()

	sig, err := signature.Introspect(&dbConfig{Password: "secret"})
	require.NoError(t, err)

	instance, err := sig.Build(map[string]any{"host": "x", "port": 1})
	require.NoError(t, err)
	assert.Equal(t, "secret", instance.(*dbConfig).Password) //nolint:forcetypeassert // asserted by Build
}

func TestIntrospect_Struct_BuildErrors(t *testing.T) {
	t.Parallel()

	sig, err := signature.Introspect(clientConfig{})
	require.NoError(t, err)

	testCases := []struct {
		name    string
		values  map[string]any
		wantErr error
	}{
		{
			name:    "missing required",
			values:  map[string]any{"base_url": "u"},
			wantErr: signature.ErrMissingValue,
		},
		{
			name: "string into int",
			values: map[string]any{
				"base_url": "u", "api_key": "k", "max_tokens": "4096", "temperature": 0.0, "labels": []any{},
			},
			wantErr: signature.ErrNotAssignable,
		},
		{
			name: "lossy float into int",
			values: map[string]any{
				"base_url": "u", "api_key": "k", "max_tokens": 1.5, "temperature": 0.0, "labels": []any{},
			},
			wantErr: signature.ErrNotAssignable,
		},
		{
			name: "wrong slice element",
			values: map[string]any{
				"base_url": "u", "api_key": "k", "max_tokens": 1, "temperature": 0.0, "labels": []any{"a", 2},
			},
			wantErr: signature.ErrNotAssignable,
		},
		{
			name: "unsigned above signed range",
			values: map[string]any{
				"base_url": "u", "api_key": "k", "max_tokens": uint64(math.MaxUint64), "temperature": 0.0, "labels": []any{},
			},
			wantErr: signature.ErrNotAssignable,
		},
		{
			name: "float above signed range",
			values: map[string]any{
				"base_url": "u", "api_key": "k", "max_tokens": 1e300, "temperature": 0.0, "labels": []any{},
			},
			wantErr: signature.ErrNotAssignable,
		},
		{
			name: "integer losing float precision",
			values: map[string]any{
				"base_url": "u", "api_key": "k", "max_tokens": 1, "temperature": int64(1<<53 + 1), "labels": []any{},
			},
			wantErr: signature.ErrNotAssignable,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			instance, err := sig.Build(testCase.values)
			require.ErrorIs(t, err, testCase.wantErr)
			assert.Nil(t, instance)
		})
	}
}

func TestIntrospect_Struct_BuildNumericAndSlices(t *testing.T) {
	t.Parallel()

	sig, err := signature.Introspect(clientConfig{})
	require.NoError(t, err)

	instance, err := sig.Build(map[string]any{
		"base_url":    "http://localhost/v1",
		"api_key":     "empty",
		"max_tokens":  float64(4096),
		"temperature": int64(0),
		"timeout":     int64(5),
		"labels":      []any{"a", "b"},
	})
	require.NoError(t, err)

	assert.Equal(t, clientConfig{
		BaseURL:     "http://localhost/v1",
		APIKey:      "empty",
		MaxTokens:   4096,
		Temperature: 0,
		Timeout:     5,
		Labels:      []string{"a", "b"},
	}, instance)
}

type sizedConfig struct {
	MaxBytes int64   `morph:"max_bytes"`
	Workers  uint8   `morph:"workers"`
	Ratio    float32 `morph:"ratio,optional"`
}

func TestIntrospect_Struct_NumericRanges(t *testing.T) {
	t.Parallel()

	sig, err := signature.Of[sizedConfig]()
	require.NoError(t, err)

	testCases := []struct {
		name    string
		values  map[string]any
		want    sizedConfig
		wantErr bool
	}{
		{
			name:   "largest values that fit",
			values: map[string]any{"max_bytes": uint64(math.MaxInt64), "workers": int64(255), "ratio": 0.5},
			want:   sizedConfig{MaxBytes: math.MaxInt64, Workers: 255, Ratio: 0.5},
		},
		{
			name:   "whole float into integers",
			values: map[string]any{"max_bytes": float64(-4096), "workers": float64(8)},
			want:   sizedConfig{MaxBytes: -4096, Workers: 8},
		},
		{
			name:    "unsigned wraps signed",
			values:  map[string]any{"max_bytes": uint64(math.MaxUint64), "workers": 1},
			wantErr: true,
		},
		{
			name:    "unsigned just above signed range",
			values:  map[string]any{"max_bytes": uint64(math.MaxInt64) + 1, "workers": 1},
			wantErr: true,
		},
		{
			name:    "negative into unsigned",
			values:  map[string]any{"max_bytes": 1, "workers": -1},
			wantErr: true,
		},
		{
			name:    "overflowing unsigned",
			values:  map[string]any{"max_bytes": 1, "workers": uint64(256)},
			wantErr: true,
		},
		{
			name:    "float at two to the 63",
			values:  map[string]any{"max_bytes": float64(1 << 63), "workers": 1},
			wantErr: true,
		},
		{
			name:    "not a number into integer",
			values:  map[string]any{"max_bytes": math.NaN(), "workers": 1},
			wantErr: true,
		},
		{
			name:    "float64 precision lost in float32",
			values:  map[string]any{"max_bytes": 1, "workers": 1, "ratio": 0.1},
			wantErr: true,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			instance, err := sig.Build(testCase.values)
			if testCase.wantErr {
				require.ErrorIs(t, err, signature.ErrNotAssignable)
				assert.Nil(t, instance)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.want, instance)
		})
	}
}

type cachedConfig struct {
	Name   string         `morph:"name"`
	Cache  map[string]int `morph:"-"`
	Seeds  []int          `morph:"-"`
	Labels []string       `morph:"labels,optional"`
}

func TestIntrospect_Struct_BuildDoesNotSharePrototypeContainers(t *testing.T) {
	t.Parallel()

	prototype := cachedConfig{
		Cache:  map[string]int{"hits": 1},
		Seeds:  []int{1, 2},
		Labels: []string{"default"},
	}

	sig, err := signature.Introspect(prototype)
	require.NoError(t, err)

	instance, err := sig.Build(map[string]any{"name": "svc"})
	require.NoError(t, err)

	built, ok := instance.(cachedConfig)
	require.True(t, ok)
	assert.Equal(t, map[string]int{"hits": 1}, built.Cache)

	built.Cache["hits"] = 99
	built.Seeds[0] = 99
	built.Labels[0] = "changed"

	assert.Equal(t, map[string]int{"hits": 1}, prototype.Cache)
	assert.Equal(t, []int{1, 2}, prototype.Seeds)
	assert.Equal(t, []string{"default"}, prototype.Labels)

	again, err := sig.Build(map[string]any{"name": "svc"})
	require.NoError(t, err)
	assert.Equal(t, cachedConfig{
		Name:   "svc",
		Cache:  map[string]int{"hits": 1},
		Seeds:  []int{1, 2},
		Labels: []string{"default"},
	}, again)
}

type duplicated struct {
	A string `morph:"name"`
	B string `yaml:"name"`
}

func TestIntrospect_Unintrospectable(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		target any
	}{
		{name: "nil", target: nil},
		{name: "bare function", target: func(host string, port int) {}},
		{name: "scalar", target: 42},
		{name: "map", target: map[string]any{}},
		{name: "pointer to int", target: new(int)},
		{name: "non-struct type", target: reflect.TypeFor[string]()},
		{name: "duplicate names", target: duplicated{}},
		{name: "nil signature pointer", target: (*signature.Signature)(nil)},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			_, err := signature.Introspect(testCase.target)
			require.Error(t, err)
			require.ErrorIs(t, err, signature.ErrUnintrospectable)

			var unErr *signature.UnintrospectableError

			assert.True(t, errors.As(err, &unErr))
		})
	}
}

type describedTarget struct {
	err error
}

func (d describedTarget) Describe() (signature.Signature, error) {
	if d.err != nil {
		return signature.Signature{}, d.err
	}

	return signature.New("described", []signature.Parameter{
		{Name: "a", Required: true},
		{Name: "b", Required: false, Default: "b-default"},
	}, nil), nil
}

func TestIntrospect_Describer(t *testing.T) {
	t.Parallel()

	sig, err := signature.Introspect(describedTarget{})
	require.NoError(t, err)
	assert.Equal(t, "described", sig.Name)
	assert.Equal(t, []string{"a", "b"}, paramNames(sig))

	_, err = sig.Build(map[string]any{"a": 1})
	require.ErrorIs(t, err, signature.ErrNotConstructible)

	describeErr := errors.New("boom")
	_, err = signature.Introspect(describedTarget{err: describeErr})
	require.ErrorIs(t, err, signature.ErrUnintrospectable)
	require.ErrorIs(t, err, describeErr)
}

func TestIntrospect_SignatureValue(t *testing.T) {
	t.Parallel()

	original := signature.New("raw", []signature.Parameter{{Name: "x", Required: true}}, nil)

	sig, err := signature.Introspect(original)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, paramNames(sig))

	sig, err = signature.Introspect(&original)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, paramNames(sig))
}

func TestSignature_BuildRecoversPanic(t *testing.T) {
	t.Parallel()

	sig := signature.New("panicky", nil, func(map[string]any) (any, error) {
		panic("kaboom")
	})

	instance, err := sig.Build(nil)
	require.Error(t, err)
	assert.Nil(t, instance)
	assert.Contains(t, err.Error(), "kaboom")
}
