package seeder

import "github.com/placehub/placehub/models"

// Payload shapes mirror the JSONPlaceholder wire format. User records carry
// nested address/geo/company objects that are denormalized into the flat
// columns of the local schema.

type userPayload struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Address  struct {
		Street  string `json:"street"`
		Suite   string `json:"suite"`
		City    string `json:"city"`
		Zipcode string `json:"zipcode"`
		Geo     struct {
			Lat string `json:"lat"`
			Lng string `json:"lng"`
		} `json:"geo"`
	} `json:"address"`
	Phone   string `json:"phone"`
	Website string `json:"website"`
	Company struct {
		Name        string `json:"name"`
		CatchPhrase string `json:"catchPhrase"`
		BS          string `json:"bs"`
	} `json:"company"`
}

func (p userPayload) model() models.User {
	return models.User{
		Name:               p.Name,
		Username:           p.Username,
		Email:              p.Email,
		Street:             p.Address.Street,
		Suite:              p.Address.Suite,
		City:               p.Address.City,
		Zipcode:            p.Address.Zipcode,
		Lat:                p.Address.Geo.Lat,
		Lng:                p.Address.Geo.Lng,
		Phone:              p.Phone,
		Website:            p.Website,
		CompanyName:        p.Company.Name,
		CompanyCatchPhrase: p.Company.CatchPhrase,
		CompanyBS:          p.Company.BS,
	}
}

type postPayload struct {
	UserID int    `json:"userId"`
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

func (p postPayload) model() models.Post {
	return models.Post{UserID: uint(p.UserID), Title: p.Title, Body: p.Body}
}

type commentPayload struct {
	PostID int    `json:"postId"`
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Body   string `json:"body"`
}

func (p commentPayload) model() models.Comment {
	return models.Comment{PostID: uint(p.PostID), Name: p.Name, Email: p.Email, Body: p.Body}
}

type albumPayload struct {
	UserID int    `json:"userId"`
	ID     int    `json:"id"`
	Title  string `json:"title"`
}

func (p albumPayload) model() models.Album {
	return models.Album{UserID: uint(p.UserID), Title: p.Title}
}

type photoPayload struct {
	AlbumID      int    `json:"albumId"`
	ID           int    `json:"id"`
	Title        string `json:"title"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

func (p photoPayload) model() models.Photo {
	return models.Photo{AlbumID: uint(p.AlbumID), Title: p.Title, URL: p.URL, ThumbnailURL: p.ThumbnailURL}
}

type todoPayload struct {
	UserID    int    `json:"userId"`
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

func (p todoPayload) model() models.Todo {
	return models.Todo{UserID: uint(p.UserID), Title: p.Title}
}
