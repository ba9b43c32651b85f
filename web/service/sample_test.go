package service

import (
	"testing"

	"bioanalytica/database"
	"bioanalytica/database/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerTestUser(t *testing.T, username, email string) *model.User {
	t.Helper()
	userService := UserService{}
	user, err := userService.Register(username, email, "secret1", "")
	require.NoError(t, err)
	return user
}

func TestCreateSample(t *testing.T) {
	setup()
	defer teardown()

	ana := registerTestUser(t, "ana", "ana@x.com")
	sampleService := SampleService{}

	quantity := 12.5
	sample, err := sampleService.Create(ana.Id, "Biomasa lemn", "wood", &quantity, "stejar")
	require.NoError(t, err)
	assert.NotZero(t, sample.Id)
	assert.NotEmpty(t, sample.Code)
	assert.Equal(t, ana.Id, sample.UserId)
	assert.Equal(t, 12.5, *sample.Quantity)
	assert.False(t, sample.CreatedAt.IsZero())

	_, err = sampleService.Create(ana.Id, "   ", "", nil, "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestListSamplesOrderedAndScoped(t *testing.T) {
	setup()
	defer teardown()

	ana := registerTestUser(t, "ana", "ana@x.com")
	bob := registerTestUser(t, "bob", "bob@x.com")
	sampleService := SampleService{}

	first, err := sampleService.Create(ana.Id, "first", "", nil, "")
	require.NoError(t, err)
	second, err := sampleService.Create(ana.Id, "second", "", nil, "")
	require.NoError(t, err)
	_, err = sampleService.Create(bob.Id, "bobs", "", nil, "")
	require.NoError(t, err)

	samples, err := sampleService.List(ana.Id)
	require.NoError(t, err)
	require.Len(t, samples, 2)
	assert.Equal(t, second.Id, samples[0].Id)
	assert.Equal(t, first.Id, samples[1].Id)
	for _, s := range samples {
		assert.Equal(t, ana.Id, s.UserId)
	}
}

func TestDeleteSampleOwnerScoped(t *testing.T) {
	setup()
	defer teardown()

	ana := registerTestUser(t, "ana", "ana@x.com")
	bob := registerTestUser(t, "bob", "bob@x.com")
	sampleService := SampleService{}

	sample, err := sampleService.Create(ana.Id, "Biomasa lemn", "wood", nil, "")
	require.NoError(t, err)

	// someone else's token must not delete, and must not leak existence
	err = sampleService.Delete(bob.Id, sample.Id)
	assert.ErrorIs(t, err, ErrNotFound)

	var count int64
	database.GetDB().Model(model.Sample{}).Where("id = ?", sample.Id).Count(&count)
	assert.EqualValues(t, 1, count)

	err = sampleService.Delete(ana.Id, sample.Id)
	require.NoError(t, err)

	err = sampleService.Delete(ana.Id, sample.Id)
	assert.ErrorIs(t, err, ErrNotFound)
}
