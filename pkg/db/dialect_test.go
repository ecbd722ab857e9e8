package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialect(t *testing.T) {
	pg, err := Dialect(Config{Type: "postgres", Host: "localhost", Port: "5432", Name: "netpass", User: "postgres"})
	require.NoError(t, err)
	assert.Equal(t, "postgres", pg.Name())

	lite, err := Dialect(Config{Type: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	assert.Equal(t, "sqlite", lite.Name())
}

func TestDialectRejectsUnsupportedTypes(t *testing.T) {
	// The upsert SQL the repositories use does not parse on MySQL, so the
	// dialect must refuse it instead of failing at the first reconciliation.
	for _, typ := range []string{"mysql", "oracle", ""} {
		_, err := Dialect(Config{Type: typ})
		assert.Error(t, err, typ)
	}
}
