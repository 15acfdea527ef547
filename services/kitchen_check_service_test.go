package services

import (
	"fmt"
	"testing"

	"backend/config"
	"backend/data"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addTestItems(t *testing.T, svc *KitchenCheckService, userID, sessionID uint, n, categories int) {
	t.Helper()
	require.LessOrEqual(t, categories, len(data.Categories))
	for i := 0; i < n; i++ {
		_, err := svc.AddItem(userID, sessionID, ItemInput{
			Name:     fmt.Sprintf("Lebensmittel %d", i),
			Category: data.Categories[i%categories],
			Origin:   data.OriginNational,
		})
		require.NoError(t, err)
	}
}

func TestEnsureOpenSessionIsIdempotent(t *testing.T) {
	svc := NewKitchenCheckService(newTestDB(t), testStudyCfg)

	first, err := svc.EnsureOpenSession(1, MilestoneFirst)
	require.NoError(t, err)
	require.NotZero(t, first.ID)
	assert.Nil(t, first.CompletedAt)

	second, err := svc.EnsureOpenSession(1, MilestoneFirst)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestEnsureOpenSessionSeparatesMilestonesAndUsers(t *testing.T) {
	svc := NewKitchenCheckService(newTestDB(t), testStudyCfg)

	s1, err := svc.EnsureOpenSession(1, MilestoneFirst)
	require.NoError(t, err)
	s2, err := svc.EnsureOpenSession(1, MilestoneSecond)
	require.NoError(t, err)
	s3, err := svc.EnsureOpenSession(2, MilestoneFirst)
	require.NoError(t, err)

	assert.NotEqual(t, s1.ID, s2.ID)
	assert.NotEqual(t, s1.ID, s3.ID)
}

func TestEnsureOpenSessionRejectsUnknownMilestone(t *testing.T) {
	svc := NewKitchenCheckService(newTestDB(t), testStudyCfg)

	_, err := svc.EnsureOpenSession(1, 3)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "milestone", vErr.Field)
}

func TestAddItemValidation(t *testing.T) {
	svc := NewKitchenCheckService(newTestDB(t), testStudyCfg)
	sess, err := svc.EnsureOpenSession(1, MilestoneFirst)
	require.NoError(t, err)

	cases := []struct {
		name  string
		input ItemInput
		field string
	}{
		{"missing name", ItemInput{Category: "Gemüse", Origin: data.OriginNational}, "name"},
		{"missing category", ItemInput{Name: "Tomaten", Origin: data.OriginNational}, "category"},
		{"unknown category", ItemInput{Name: "Tomaten", Category: "Snacks", Origin: data.OriginNational}, "category"},
		{"missing origin", ItemInput{Name: "Tomaten", Category: "Gemüse"}, "origin"},
		{"unknown origin", ItemInput{Name: "Tomaten", Category: "Gemüse", Origin: "Mars"}, "origin"},
		{"foreign without detail", ItemInput{Name: "Mangos", Category: "Früchte", Origin: data.OriginForeign}, "origin_detail"},
		{"unknown label", ItemInput{Name: "Tomaten", Category: "Gemüse", Origin: data.OriginNational, Label: "Premium"}, "label"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.AddItem(1, sess.ID, tc.input)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.field, vErr.Field)
		})
	}

	// valid foreign item passes
	item, err := svc.AddItem(1, sess.ID, ItemInput{
		Name:         "Mangos",
		Category:     "Früchte",
		Origin:       data.OriginForeign,
		OriginDetail: "Brasilien",
	})
	require.NoError(t, err)
	assert.False(t, item.AddedAt.IsZero())
}

func TestAddItemRejectsForeignSession(t *testing.T) {
	svc := NewKitchenCheckService(newTestDB(t), testStudyCfg)
	sess, err := svc.EnsureOpenSession(1, MilestoneFirst)
	require.NoError(t, err)

	_, err = svc.AddItem(2, sess.ID, ItemInput{
		Name: "Tomaten", Category: "Gemüse", Origin: data.OriginNational,
	})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.AddItem(1, sess.ID+99, ItemInput{
		Name: "Tomaten", Category: "Gemüse", Origin: data.OriginNational,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestComputeProgressThresholdBoundary(t *testing.T) {
	cases := []struct {
		name       string
		items      int
		categories int
		met        bool
	}{
		{"empty session", 0, 0, false},
		{"exactly at threshold", 15, 5, true},
		{"one item short", 14, 5, false},
		{"categories short", 15, 3, false},
		{"over threshold", 20, 7, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewKitchenCheckService(newTestDB(t), testStudyCfg)
			sess, err := svc.EnsureOpenSession(1, MilestoneFirst)
			require.NoError(t, err)
			if tc.items > 0 {
				addTestItems(t, svc, 1, sess.ID, tc.items, tc.categories)
			}

			progress, err := svc.ComputeProgress(sess.ID)
			require.NoError(t, err)
			assert.Equal(t, tc.items, progress.ItemCount)
			if tc.items > 0 {
				assert.Equal(t, tc.categories, progress.DistinctCategoryCount)
			}
			assert.Equal(t, tc.met, progress.ThresholdMet)
		})
	}
}

func TestCompleteSessionRequiresThreshold(t *testing.T) {
	svc := NewKitchenCheckService(newTestDB(t), testStudyCfg)
	sess, err := svc.EnsureOpenSession(1, MilestoneFirst)
	require.NoError(t, err)
	addTestItems(t, svc, 1, sess.ID, 14, 5)

	_, err = svc.CompleteSession(1, sess.ID)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)

	status, err := svc.MilestoneState(1, MilestoneFirst)
	require.NoError(t, err)
	assert.Equal(t, StateInProgress, status.State)
}

func TestCompleteSessionIsOneWayAndIdempotent(t *testing.T) {
	svc := NewKitchenCheckService(newTestDB(t), testStudyCfg)
	sess, err := svc.EnsureOpenSession(1, MilestoneFirst)
	require.NoError(t, err)
	addTestItems(t, svc, 1, sess.ID, 15, 5)

	done, err := svc.CompleteSession(1, sess.ID)
	require.NoError(t, err)
	require.NotNil(t, done.CompletedAt)
	completedAt := *done.CompletedAt

	// double submission keeps the original timestamp
	again, err := svc.CompleteSession(1, sess.ID)
	require.NoError(t, err)
	require.NotNil(t, again.CompletedAt)
	assert.True(t, completedAt.Equal(*again.CompletedAt))

	status, err := svc.MilestoneState(1, MilestoneFirst)
	require.NoError(t, err)
	assert.Equal(t, StateCompleted, status.State)
	assert.Equal(t, sess.ID, status.Session.ID)
}

func TestMilestoneStateTransitions(t *testing.T) {
	svc := NewKitchenCheckService(newTestDB(t), testStudyCfg)

	status, err := svc.MilestoneState(1, MilestoneFirst)
	require.NoError(t, err)
	assert.Equal(t, StateNotStarted, status.State)

	// An open session without items still reads as not started.
	sess, err := svc.EnsureOpenSession(1, MilestoneFirst)
	require.NoError(t, err)
	status, err = svc.MilestoneState(1, MilestoneFirst)
	require.NoError(t, err)
	assert.Equal(t, StateNotStarted, status.State)

	addTestItems(t, svc, 1, sess.ID, 1, 1)
	status, err = svc.MilestoneState(1, MilestoneFirst)
	require.NoError(t, err)
	assert.Equal(t, StateInProgress, status.State)

	addTestItems(t, svc, 1, sess.ID, 14, 5)
	_, err = svc.CompleteSession(1, sess.ID)
	require.NoError(t, err)

	status, err = svc.MilestoneState(1, MilestoneFirst)
	require.NoError(t, err)
	assert.Equal(t, StateCompleted, status.State)

	// A fresh round starts with a new session, never by reopening.
	fresh, err := svc.EnsureOpenSession(1, MilestoneFirst)
	require.NoError(t, err)
	assert.NotEqual(t, sess.ID, fresh.ID)
	assert.Nil(t, fresh.CompletedAt)
}

func TestUpdateAndDeleteItemAreOwnerScoped(t *testing.T) {
	svc := NewKitchenCheckService(newTestDB(t), testStudyCfg)
	sess, err := svc.EnsureOpenSession(1, MilestoneFirst)
	require.NoError(t, err)

	item, err := svc.AddItem(1, sess.ID, ItemInput{
		Name: "Brot", Category: "Getreideprodukte", Origin: data.OriginLocal,
	})
	require.NoError(t, err)

	_, err = svc.UpdateItem(2, item.ID, ItemInput{
		Name: "Brot", Category: "Getreideprodukte", Origin: data.OriginRegional,
	})
	assert.ErrorIs(t, err, ErrNotFound)

	updated, err := svc.UpdateItem(1, item.ID, ItemInput{
		Name: "Vollkornbrot", Category: "Getreideprodukte", Origin: data.OriginRegional,
	})
	require.NoError(t, err)
	assert.Equal(t, "Vollkornbrot", updated.Name)
	assert.Equal(t, data.OriginRegional, updated.Origin)

	assert.ErrorIs(t, svc.DeleteItem(2, item.ID), ErrNotFound)
	require.NoError(t, svc.DeleteItem(1, item.ID))

	items, err := svc.ListItems(1, sess.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestListItemsOrdersByAddedAt(t *testing.T) {
	svc := NewKitchenCheckService(newTestDB(t), testStudyCfg)
	sess, err := svc.EnsureOpenSession(1, MilestoneFirst)
	require.NoError(t, err)
	addTestItems(t, svc, 1, sess.ID, 3, 3)

	items, err := svc.ListItems(1, sess.ID)
	require.NoError(t, err)
	require.Len(t, items, 3)
	for i := 1; i < len(items); i++ {
		assert.False(t, items[i].AddedAt.Before(items[i-1].AddedAt))
	}
}

func TestDeleteSessionCascadesItems(t *testing.T) {
	db := newTestDB(t)
	svc := NewKitchenCheckService(db, testStudyCfg)
	sess, err := svc.EnsureOpenSession(1, MilestoneFirst)
	require.NoError(t, err)
	addTestItems(t, svc, 1, sess.ID, 3, 3)

	require.NoError(t, svc.DeleteSession(1, sess.ID))

	_, err = svc.GetSession(1, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.ListItems(1, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestConfiguredThresholds(t *testing.T) {
	cfg := config.StudyConfig{RequiredItems: 3, RequiredCategories: 2}
	svc := NewKitchenCheckService(newTestDB(t), cfg)
	sess, err := svc.EnsureOpenSession(1, MilestoneFirst)
	require.NoError(t, err)
	addTestItems(t, svc, 1, sess.ID, 3, 2)

	progress, err := svc.ComputeProgress(sess.ID)
	require.NoError(t, err)
	assert.True(t, progress.ThresholdMet)
	assert.Equal(t, 3, progress.RequiredItems)
	assert.Equal(t, 2, progress.RequiredCategories)
}
