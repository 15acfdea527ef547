package services

import (
	"testing"

	"backend/data"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListForUserCoversWholeCatalog(t *testing.T) {
	svc := NewChallengeService(newTestDB(t), nil)

	list, err := svc.ListForUser(1)
	require.NoError(t, err)
	require.Len(t, list, len(data.Challenges))
	for _, entry := range list {
		assert.False(t, entry.Completed)
	}
}

func TestCompleteChallengeWithoutProof(t *testing.T) {
	svc := NewChallengeService(newTestDB(t), nil)

	// challenge 1 needs no proof
	row, err := svc.CompleteChallenge(1, 1, "", "")
	require.NoError(t, err)
	assert.True(t, row.Completed)
	require.NotNil(t, row.CompletedAt)

	list, err := svc.ListForUser(1)
	require.NoError(t, err)
	var done int
	for _, entry := range list {
		if entry.Completed {
			done++
			assert.Equal(t, 1, entry.ID)
		}
	}
	assert.Equal(t, 1, done)
}

func TestCompleteChallengeValidation(t *testing.T) {
	svc := NewChallengeService(newTestDB(t), nil)

	var vErr *ValidationError

	_, err := svc.CompleteChallenge(1, 99, "", "")
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "challenge_id", vErr.Field)

	// challenge 3 requires a proof text
	_, err = svc.CompleteChallenge(1, 3, "", "")
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "proof_text", vErr.Field)

	// challenge 2 requires a proof photo
	_, err = svc.CompleteChallenge(1, 2, "", "")
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "proof_image", vErr.Field)
}

func TestCompleteChallengeUpsertsSingleRow(t *testing.T) {
	svc := NewChallengeService(newTestDB(t), nil)

	first, err := svc.CompleteChallenge(1, 3, "Gemüsesuppe aus Rüstabfällen", "")
	require.NoError(t, err)

	second, err := svc.CompleteChallenge(1, 3, "Brotauflauf vom Vortag", "")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Brotauflauf vom Vortag", second.ProofText)

	summary, err := svc.Summary(1)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Completed)
}

func TestChallengeSummaryPercent(t *testing.T) {
	svc := NewChallengeService(newTestDB(t), nil)

	summary, err := svc.Summary(1)
	require.NoError(t, err)
	assert.Equal(t, len(data.Challenges), summary.Total)
	assert.Equal(t, 0, summary.Completed)
	assert.Equal(t, 0, summary.Percent)

	_, err = svc.CompleteChallenge(1, 1, "", "")
	require.NoError(t, err)
	_, err = svc.CompleteChallenge(1, 4, "", "")
	require.NoError(t, err)

	summary, err = svc.Summary(1)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Completed)
	// 2 of 8 rounds to 25
	assert.Equal(t, 25, summary.Percent)
}
