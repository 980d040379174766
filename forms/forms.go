// Package forms binds and validates the HTML forms of the application.
// Validation yields a field-keyed error map rendered inline next to each
// input, never an HTTP error.
package forms

import "strings"

// UserLookup is the read access validation needs for uniqueness checks.
// The check is a plain read, not atomic with the later insert; the unique
// indexes on users.email and users.username are the backstop.
type UserLookup interface {
	EmailTaken(email string) (bool, error)
	UsernameTaken(username string) (bool, error)
}

// AddUserForm carries every column of a new user account.
type AddUserForm struct {
	Name               string `form:"name" validate:"required,max=128"`
	Username           string `form:"username" validate:"required,max=128,username_charset"`
	Email              string `form:"email" validate:"required,max=128,email"`
	Street             string `form:"street" validate:"required,max=128"`
	Suite              string `form:"suite" validate:"required,max=128"`
	City               string `form:"city" validate:"required,max=128"`
	Zipcode            string `form:"zipcode" validate:"required,max=128"`
	Lat                string `form:"lat" validate:"required,max=128"`
	Lng                string `form:"lng" validate:"required,max=128"`
	Phone              string `form:"phone" validate:"required,max=128"`
	Website            string `form:"website" validate:"required,max=128"`
	CompanyName        string `form:"company_name" validate:"required,max=128"`
	CompanyCatchPhrase string `form:"company_catchPhrase" validate:"required,max=128"`
	CompanyBS          string `form:"company_bs" validate:"required,max=128"`
	Password           string `form:"password" validate:"required"`
	Password2          string `form:"password2" validate:"required"`
}

// Validate applies the shape rules, the password confirmation, and the
// store-backed uniqueness checks. The returned error is reserved for storage
// failures during the lookups.
func (f *AddUserForm) Validate(users UserLookup) (Errors, error) {
	errs := checkStruct(f)

	if f.Password != "" && f.Password != f.Password2 {
		errs["Password"] = "Passwords must match."
	}

	if _, bad := errs["Email"]; !bad {
		taken, err := users.EmailTaken(strings.ToLower(f.Email))
		if err != nil {
			return errs, err
		}
		if taken {
			errs["Email"] = "Email already registered."
		}
	}
	if _, bad := errs["Username"]; !bad {
		taken, err := users.UsernameTaken(f.Username)
		if err != nil {
			return errs, err
		}
		if taken {
			errs["Username"] = "Username already in use."
		}
	}
	return errs, nil
}

// EditProfileForm updates the subset of profile columns a user may change.
type EditProfileForm struct {
	Name        string `form:"name" validate:"required,max=128"`
	Username    string `form:"username" validate:"required,max=128,username_charset"`
	City        string `form:"city" validate:"required,max=128"`
	Phone       string `form:"phone" validate:"required,max=128"`
	CompanyName string `form:"company_name" validate:"required,max=128"`
	CompanyBS   string `form:"company_bs"`
}

func (f *EditProfileForm) Validate() Errors { return checkStruct(f) }

// LoginForm is the credential pair plus the remember-me switch.
type LoginForm struct {
	Email    string `form:"email" validate:"required,max=128,email"`
	Password string `form:"password" validate:"required"`
	Remember bool   `form:"remember_me"`
}

func (f *LoginForm) Validate() Errors { return checkStruct(f) }

// PostForm creates or edits a post.
type PostForm struct {
	Title string `form:"title" validate:"required,max=128"`
	Body  string `form:"body" validate:"required"`
}

func (f *PostForm) Validate() Errors { return checkStruct(f) }

// CommentForm attaches a named, addressed comment to a post.
type CommentForm struct {
	Name  string `form:"name" validate:"required,max=128"`
	Email string `form:"email" validate:"required,max=128,email"`
	Body  string `form:"body" validate:"required"`
}

func (f *CommentForm) Validate() Errors { return checkStruct(f) }

// AlbumForm creates an album.
type AlbumForm struct {
	Title string `form:"title" validate:"required,max=128"`
}

func (f *AlbumForm) Validate() Errors { return checkStruct(f) }

// PhotoForm adds a photo to an album by URL.
type PhotoForm struct {
	Title        string `form:"title" validate:"required,max=128"`
	URL          string `form:"url" validate:"required,max=128,url"`
	ThumbnailURL string `form:"thumbnail_url" validate:"required,url"`
}

func (f *PhotoForm) Validate() Errors { return checkStruct(f) }

// TodoForm creates a todo.
type TodoForm struct {
	Title string `form:"title" validate:"required,max=128"`
}

func (f *TodoForm) Validate() Errors { return checkStruct(f) }

// SeedForm is the target row count for the import routine.
type SeedForm struct {
	Count int `form:"count" validate:"required,min=1,max=500"`
}

func (f *SeedForm) Validate() Errors { return checkStruct(f) }
