package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginCmdTakesEmailFlag(t *testing.T) {
	cmd := NewLoginCmd(nil, nil)
	flag := cmd.Flags().Lookup("email")
	require.NotNil(t, flag)
	assert.Equal(t, "e", flag.Shorthand)
	assert.Nil(t, cmd.Flags().Lookup("username"))
}
