package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitAnswersStoresSurvey(t *testing.T) {
	svc := NewObservationService(newTestDB(t))

	err := svc.SubmitAnswers(1, []AnswerInput{
		{QuestionID: 1, Value: "Wöchentlich"},
		{QuestionID: 4, Value: "Wie viel importierte Ware im Vorratsschrank steht."},
	})
	require.NoError(t, err)

	rows, err := svc.ListAnswers(1)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].QuestionID)
	assert.Equal(t, "Einkaufsverhalten", rows[0].Category)
	assert.Equal(t, "Reflexion", rows[1].Category)

	done, err := svc.HasCompleted(1)
	require.NoError(t, err)
	assert.True(t, done)
}

func TestSubmitAnswersReplacesPreviousSubmission(t *testing.T) {
	svc := NewObservationService(newTestDB(t))

	require.NoError(t, svc.SubmitAnswers(1, []AnswerInput{
		{QuestionID: 1, Value: "Nie"},
		{QuestionID: 2, Value: "Selten"},
		{QuestionID: 3, Value: "Gar nicht"},
	}))
	require.NoError(t, svc.SubmitAnswers(1, []AnswerInput{
		{QuestionID: 1, Value: "Wöchentlich"},
	}))

	rows, err := svc.ListAnswers(1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Wöchentlich", rows[0].Value)
}

func TestSubmitAnswersValidation(t *testing.T) {
	svc := NewObservationService(newTestDB(t))

	var vErr *ValidationError

	err := svc.SubmitAnswers(1, nil)
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "answers", vErr.Field)

	err = svc.SubmitAnswers(1, []AnswerInput{{QuestionID: 99, Value: "x"}})
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "question_id", vErr.Field)

	err = svc.SubmitAnswers(1, []AnswerInput{{QuestionID: 1, Value: ""}})
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "value", vErr.Field)

	// a rejected batch leaves nothing behind
	done, err := svc.HasCompleted(1)
	require.NoError(t, err)
	assert.False(t, done)
}

func TestSubmitAnswersIsScopedPerUser(t *testing.T) {
	svc := NewObservationService(newTestDB(t))

	require.NoError(t, svc.SubmitAnswers(1, []AnswerInput{{QuestionID: 1, Value: "Nie"}}))
	require.NoError(t, svc.SubmitAnswers(2, []AnswerInput{{QuestionID: 1, Value: "Immer"}}))

	// resubmission by one user must not touch the other
	require.NoError(t, svc.SubmitAnswers(1, []AnswerInput{{QuestionID: 2, Value: "Meistens"}}))

	rows, err := svc.ListAnswers(2)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Immer", rows[0].Value)
}
