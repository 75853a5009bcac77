package minting

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Session_AccumulatesAcrossAttempts(t *testing.T) {
	session := NewSession("session-1")

	require.NoError(t, session.Begin("attempt-1"))
	require.True(t, session.Merge("attempt-1", []string{"1407", "1408"}))
	session.End("attempt-1")

	require.NoError(t, session.Begin("attempt-2"))
	require.True(t, session.Merge("attempt-2", []string{"1408", "1409"}))
	session.End("attempt-2")

	require.Equal(t, []string{"1407", "1408", "1409"}, session.MintedIDs())
}

func Test_Session_RejectsConcurrentAttempt(t *testing.T) {
	session := NewSession("session-1")

	require.NoError(t, session.Begin("attempt-1"))
	require.Error(t, session.Begin("attempt-2"))

	session.End("attempt-1")
	require.NoError(t, session.Begin("attempt-2"))
}

func Test_Session_DiscardsSupersededResult(t *testing.T) {
	session := NewSession("session-1")

	require.NoError(t, session.Begin("attempt-1"))
	session.Discard("attempt-1")

	// The stale attempt finishes later; its ids must not leak in.
	require.False(t, session.Merge("attempt-1", []string{"99"}))
	require.Empty(t, session.MintedIDs())

	// The session is free again immediately after the discard.
	require.NoError(t, session.Begin("attempt-2"))
}

func Test_Session_SeedKeepsExistingOrder(t *testing.T) {
	session := NewSession("session-1")
	session.Seed([]string{"1", "2"})
	session.Seed([]string{"2", "3"})

	require.Equal(t, []string{"1", "2", "3"}, session.MintedIDs())
}
