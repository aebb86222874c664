package keyring

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func TestZalandoKeyring_SetGetHasAndDeleteKey(t *testing.T) {
	keyring.MockInit()
	sut := ProvideZalandoKeyring()
	keyName := uuid.NewString() + "-encryption-key"

	exists, err := sut.HasKey(keyName)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, sut.SetKey(keyName, "secret"))

	exists, err = sut.HasKey(keyName)
	require.NoError(t, err)
	assert.True(t, exists)

	value, err := sut.GetKey(keyName)
	require.NoError(t, err)
	assert.Equal(t, "secret", value)

	require.NoError(t, sut.DeleteKey(keyName))
	exists, err = sut.HasKey(keyName)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestZalandoKeyring_DeleteMissingKeyIsNotAnError(t *testing.T) {
	keyring.MockInit()

	err := ProvideZalandoKeyring().DeleteKey(uuid.NewString())

	assert.NoError(t, err)
}
