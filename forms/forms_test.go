package forms

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLookup satisfies UserLookup with fixed taken sets.
type fakeLookup struct {
	emails    map[string]bool
	usernames map[string]bool
}

func (f fakeLookup) EmailTaken(email string) (bool, error) {
	return f.emails[email], nil
}

func (f fakeLookup) UsernameTaken(username string) (bool, error) {
	return f.usernames[username], nil
}

func validAddUserForm() AddUserForm {
	return AddUserForm{
		Name:               "Leanne Graham",
		Username:           "Bret",
		Email:              "sincere@april.biz",
		Street:             "Kulas Light",
		Suite:              "Apt. 556",
		City:               "Gwenborough",
		Zipcode:            "92998-3874",
		Lat:                "-37.3159",
		Lng:                "81.1496",
		Phone:              "1-770-736-8031",
		Website:            "hildegard.org",
		CompanyName:        "Romaguera-Crona",
		CompanyCatchPhrase: "Multi-layered client-server neural-net",
		CompanyBS:          "harness real-time e-markets",
		Password:           "secret",
		Password2:          "secret",
	}
}

func emptyLookup() fakeLookup {
	return fakeLookup{emails: map[string]bool{}, usernames: map[string]bool{}}
}

func TestAddUserFormValid(t *testing.T) {
	form := validAddUserForm()
	errs, err := form.Validate(emptyLookup())
	require.NoError(t, err)
	assert.False(t, errs.Any())
}

func TestAddUserFormMissingFields(t *testing.T) {
	form := AddUserForm{}
	errs, err := form.Validate(emptyLookup())
	require.NoError(t, err)
	assert.Equal(t, "This field is required.", errs["Name"])
	assert.Equal(t, "This field is required.", errs["Email"])
	assert.Equal(t, "This field is required.", errs["Password"])
}

func TestAddUserFormPasswordMismatch(t *testing.T) {
	form := validAddUserForm()
	form.Password2 = "different"
	errs, err := form.Validate(emptyLookup())
	require.NoError(t, err)
	assert.Equal(t, "Passwords must match.", errs["Password"])
}

func TestAddUserFormDuplicateEmail(t *testing.T) {
	form := validAddUserForm()
	form.Email = "Taken@Example.com"
	lookup := emptyLookup()
	lookup.emails["taken@example.com"] = true

	errs, err := form.Validate(lookup)
	require.NoError(t, err)
	assert.Equal(t, "Email already registered.", errs["Email"])
}

func TestAddUserFormDuplicateUsername(t *testing.T) {
	form := validAddUserForm()
	lookup := emptyLookup()
	lookup.usernames["Bret"] = true

	errs, err := form.Validate(lookup)
	require.NoError(t, err)
	assert.Equal(t, "Username already in use.", errs["Username"])
}

func TestAddUserFormUsernameCharset(t *testing.T) {
	bad := []string{"1starts-with-digit", "has space", "has-dash", "_leading"}
	for _, username := range bad {
		form := validAddUserForm()
		form.Username = username
		errs, err := form.Validate(emptyLookup())
		require.NoError(t, err)
		assert.Equal(t,
			"Usernames must have only letters, numbers, dots or underscores.",
			errs["Username"], "username %q", username)
	}

	good := []string{"Bret", "user.name", "user_name", "a1"}
	for _, username := range good {
		form := validAddUserForm()
		form.Username = username
		errs, err := form.Validate(emptyLookup())
		require.NoError(t, err)
		assert.Empty(t, errs["Username"], "username %q", username)
	}
}

func TestAddUserFormFieldTooLong(t *testing.T) {
	form := validAddUserForm()
	form.Name = strings.Repeat("x", 129)
	errs, err := form.Validate(emptyLookup())
	require.NoError(t, err)
	assert.Equal(t, "Field must be between 1 and 128 characters long.", errs["Name"])
}

func TestLoginForm(t *testing.T) {
	form := LoginForm{Email: "user@example.com", Password: "secret"}
	assert.False(t, form.Validate().Any())

	form = LoginForm{Email: "not-an-email", Password: "secret"}
	errs := form.Validate()
	assert.Equal(t, "Invalid email address.", errs["Email"])

	form = LoginForm{}
	errs = form.Validate()
	assert.Equal(t, "This field is required.", errs["Email"])
	assert.Equal(t, "This field is required.", errs["Password"])
}

func TestPhotoFormURL(t *testing.T) {
	form := PhotoForm{Title: "pic", URL: "https://example.com/a.png", ThumbnailURL: "https://example.com/t.png"}
	assert.False(t, form.Validate().Any())

	form.URL = "not a url"
	errs := form.Validate()
	assert.Equal(t, "Invalid URL.", errs["URL"])
}

func TestSeedFormBounds(t *testing.T) {
	assert.False(t, (&SeedForm{Count: 1}).Validate().Any())
	assert.False(t, (&SeedForm{Count: 500}).Validate().Any())
	assert.True(t, (&SeedForm{Count: 0}).Validate().Any())
	assert.True(t, (&SeedForm{Count: 501}).Validate().Any())
}
