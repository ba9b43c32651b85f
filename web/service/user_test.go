package service

import (
	"testing"

	"bioanalytica/database"
	"bioanalytica/database/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	setup()
	defer teardown()

	userService := UserService{}

	user, err := userService.Register("ana", "ana@x.com", "secret1", "")
	require.NoError(t, err)
	assert.NotZero(t, user.Id)
	assert.Equal(t, "researcher", user.Role)
	assert.NotEqual(t, "secret1", user.PasswordHash)

	loggedIn, err := userService.Login("ana@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, user.Id, loggedIn.Id)
}

func TestRegisterValidation(t *testing.T) {
	setup()
	defer teardown()

	userService := UserService{}

	_, err := userService.Register("", "a@x.com", "pw", "")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = userService.Register("a", "", "pw", "")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = userService.Register("a", "a@x.com", "", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRegisterDuplicate(t *testing.T) {
	setup()
	defer teardown()

	userService := UserService{}

	_, err := userService.Register("ana", "ana@x.com", "secret1", "")
	require.NoError(t, err)

	_, err = userService.Register("ana", "other@x.com", "secret2", "")
	assert.ErrorIs(t, err, ErrDuplicate)

	_, err = userService.Register("other", "ana@x.com", "secret2", "")
	assert.ErrorIs(t, err, ErrDuplicate)

	var count int64
	database.GetDB().Model(model.User{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestLoginFailures(t *testing.T) {
	setup()
	defer teardown()

	userService := UserService{}

	_, err := userService.Register("ana", "ana@x.com", "secret1", "")
	require.NoError(t, err)

	_, err = userService.Login("ana@x.com", "wrong")
	assert.ErrorIs(t, err, ErrAuth)

	_, err = userService.Login("nobody@x.com", "secret1")
	assert.ErrorIs(t, err, ErrAuth)
}

func TestListResearchers(t *testing.T) {
	setup()
	defer teardown()

	userService := UserService{}
	sampleService := SampleService{}

	ana, err := userService.Register("ana", "ana@x.com", "secret1", "")
	require.NoError(t, err)
	bob, err := userService.Register("bob", "bob@x.com", "secret2", "admin")
	require.NoError(t, err)

	_, err = sampleService.Create(ana.Id, "Biomasa lemn", "wood", nil, "")
	require.NoError(t, err)
	_, err = sampleService.Create(ana.Id, "Paie", "agricultural", nil, "")
	require.NoError(t, err)

	researchers, err := userService.ListResearchers()
	require.NoError(t, err)
	require.Len(t, researchers, 2)

	// newest registration first
	assert.Equal(t, bob.Id, researchers[0].Id)
	assert.Equal(t, "admin", researchers[0].Role)
	assert.Equal(t, 0, researchers[0].SampleCount)

	assert.Equal(t, ana.Id, researchers[1].Id)
	assert.Equal(t, "ana@x.com", researchers[1].Email)
	assert.Equal(t, 2, researchers[1].SampleCount)
}

func TestGetTokenSecretPersists(t *testing.T) {
	setup()
	defer teardown()

	t.Setenv("BIO_JWT_SECRET", "")

	settingService := SettingService{}
	first, err := settingService.GetTokenSecret()
	require.NoError(t, err)
	assert.Len(t, first, 32)

	second, err := settingService.GetTokenSecret()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	t.Setenv("BIO_JWT_SECRET", "from-env")
	env, err := settingService.GetTokenSecret()
	require.NoError(t, err)
	assert.Equal(t, []byte("from-env"), env)
}
