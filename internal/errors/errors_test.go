package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsFollowsWrapChain(t *testing.T) {
	cause := stderrors.New("dial tcp: connection refused")
	err := fmt.Errorf("login: %w", Wrap(ProfileUnavailable, "could not load profile", cause))

	require.True(t, Is(err, ProfileUnavailable))
	require.False(t, Is(err, LoginRejected))
	require.ErrorIs(t, err, cause)
	require.False(t, Is(cause, ProfileUnavailable))
}

func TestErrorString(t *testing.T) {
	require.Equal(t, "captcha_rejected: wrong captcha", New(CaptchaRejected, "wrong captcha").Error())
	require.Equal(t, "storage_failed: write: boom", Wrap(StorageFailed, "write", stderrors.New("boom")).Error())
}
