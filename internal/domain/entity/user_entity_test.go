package entity

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/go-user-api/pkg/helpers"
)

func TestMain(m *testing.M) {
	helpers.PasswordCost = bcrypt.MinCost
	os.Exit(m.Run())
}

func TestNewUser_WithEmailSuccessful(t *testing.T) {
	u, err := NewUser("test@gmail.com", "testpwd")
	require.NoError(t, err)

	assert.Equal(t, "test@gmail.com", u.Email)
	assert.True(t, u.CheckPassword("testpwd"))
	assert.NotEqual(t, "testpwd", u.Password)
	assert.True(t, u.IsActive)
	assert.False(t, u.IsStaff)
	assert.False(t, u.IsSuperuser)
}

func TestNewUser_EmailNormalized(t *testing.T) {
	u, err := NewUser("test@GMAIL.COM", "test123")
	require.NoError(t, err)
	assert.Equal(t, "test@gmail.com", u.Email)
}

func TestNewUser_EmailRequired(t *testing.T) {
	for _, email := range []string{"", "   "} {
		u, err := NewUser(email, "Test123")
		assert.ErrorIs(t, err, ErrEmailRequired)
		assert.Nil(t, u)
	}
}

func TestNewUser_PasswordRequired(t *testing.T) {
	_, err := NewUser("test@gmail.com", "")
	assert.ErrorIs(t, err, ErrPasswordRequired)
}

func TestNewUser_Options(t *testing.T) {
	u, err := NewUser("test@gmail.com", "testpwd", WithName("test name"), WithActive(false))
	require.NoError(t, err)
	assert.Equal(t, "test name", u.Name)
	assert.False(t, u.IsActive)
}

func TestNewSuperuser(t *testing.T) {
	u, err := NewSuperuser("admin@gmail.com", "test123")
	require.NoError(t, err)
	assert.True(t, u.IsSuperuser)
	assert.True(t, u.IsStaff)
	assert.True(t, u.IsActive)
}

func TestNewSuperuser_EmailRequired(t *testing.T) {
	_, err := NewSuperuser("", "test123")
	assert.ErrorIs(t, err, ErrEmailRequired)
}

func TestNormalizeEmail(t *testing.T) {
	cases := map[string]string{
		"test@GMAIL.COM":        "test@gmail.com",
		"Test.User@Example.Org": "Test.User@example.org",
		"  padded@HOST.io ":     "padded@host.io",
		"odd\"@\"@DOMAIN.COM":   "odd\"@\"@domain.com",
		"no-at-sign":            "no-at-sign",
		"":                      "",
	}
	for in, want := range cases {
		got := NormalizeEmail(in)
		assert.Equal(t, want, got, "NormalizeEmail(%q)", in)
		assert.Equal(t, got, NormalizeEmail(got), "NormalizeEmail must be idempotent for %q", in)
	}
}

func TestCheckPassword(t *testing.T) {
	u, err := NewUser("test@gmail.com", "testpwd")
	require.NoError(t, err)

	assert.True(t, u.CheckPassword("testpwd"))
	assert.False(t, u.CheckPassword("testpwd "))
	assert.False(t, u.CheckPassword("TESTPWD"))
	assert.False(t, u.CheckPassword(""))

	require.NoError(t, u.SetPassword("newpassword123"))
	assert.True(t, u.CheckPassword("newpassword123"))
	assert.False(t, u.CheckPassword("testpwd"))

	assert.False(t, (&User{}).CheckPassword(""))
}

func TestSetPassword_TooLongInBytes(t *testing.T) {
	multibyte := strings.Repeat("€", 40)
	u, err := NewUser("test@gmail.com", multibyte)
	assert.ErrorIs(t, err, ErrPasswordTooLong)
	assert.Nil(t, u)

	u, err = NewUser("test@gmail.com", strings.Repeat("a", MaxPasswordBytes))
	require.NoError(t, err)
	assert.ErrorIs(t, u.SetPassword(strings.Repeat("a", MaxPasswordBytes+1)), ErrPasswordTooLong)
	assert.True(t, u.CheckPassword(strings.Repeat("a", MaxPasswordBytes)), "failed set keeps the old hash")
}
