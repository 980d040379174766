package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailHash(t *testing.T) {
	// Reference digest from the gravatar documentation.
	assert.Equal(t, "0bc83cb571cd1c50ba6f3e8a78ef1346", EmailHash("MyEmailAddress@example.com"))
	assert.Equal(t, EmailHash("User@Example.com"), EmailHash("user@example.com"))
}

func TestGravatarURL(t *testing.T) {
	u := User{Email: "user@example.com"}
	url := u.Gravatar(128)
	assert.Contains(t, url, "https://secure.gravatar.com/avatar/")
	assert.Contains(t, url, EmailHash("user@example.com"))
	assert.Contains(t, url, "s=128")
	assert.Contains(t, url, "d=identicon")
}

func TestGravatarPrefersStoredHash(t *testing.T) {
	u := User{Email: "user@example.com", AvatarHash: "deadbeef"}
	assert.Contains(t, u.Gravatar(48), "/avatar/deadbeef?")
}

func TestUserBeforeCreateDefaults(t *testing.T) {
	u := User{Email: "User@Example.com"}
	require.NoError(t, u.BeforeCreate(nil))

	assert.False(t, u.MemberSince.IsZero())
	assert.False(t, u.LastSeen.IsZero())
	assert.Equal(t, EmailHash("user@example.com"), u.AvatarHash)
}

func TestUserBeforeCreateKeepsExisting(t *testing.T) {
	u := User{Email: "user@example.com", AvatarHash: "deadbeef"}
	require.NoError(t, u.BeforeCreate(nil))
	assert.Equal(t, "deadbeef", u.AvatarHash)
}
