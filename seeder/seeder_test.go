package seeder

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlan(t *testing.T) {
	tests := []struct {
		name      string
		current   int
		target    int
		available int
		lo, hi    int
	}{
		{"empty table full import", 0, 10, 100, 0, 10},
		{"top up three to five", 3, 5, 100, 3, 5},
		{"already satisfied", 10, 10, 100, 0, 0},
		{"target below current", 10, 5, 100, 0, 0},
		{"upstream too small", 0, 500, 100, 0, 100},
		{"partial top up capped by upstream", 90, 500, 100, 90, 100},
		{"current beyond upstream", 200, 300, 100, 100, 100},
		{"zero target", 5, 0, 100, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := plan(tt.current, tt.target, tt.available)
			assert.Equal(t, tt.lo, lo)
			assert.Equal(t, tt.hi, hi)
		})
	}
}

func TestClientFetchDecodesUsers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{
			"id": 1,
			"name": "Leanne Graham",
			"username": "Bret",
			"email": "Sincere@april.biz",
			"address": {
				"street": "Kulas Light",
				"suite": "Apt. 556",
				"city": "Gwenborough",
				"zipcode": "92998-3874",
				"geo": {"lat": "-37.3159", "lng": "81.1496"}
			},
			"phone": "1-770-736-8031 x56442",
			"website": "hildegard.org",
			"company": {
				"name": "Romaguera-Crona",
				"catchPhrase": "Multi-layered client-server neural-net",
				"bs": "harness real-time e-markets"
			}
		}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	var payload []userPayload
	require.NoError(t, client.fetch(context.Background(), "users", &payload))
	require.Len(t, payload, 1)

	user := payload[0].model()
	assert.Equal(t, "Leanne Graham", user.Name)
	assert.Equal(t, "Bret", user.Username)
	assert.Equal(t, "Sincere@april.biz", user.Email)
	assert.Equal(t, "Kulas Light", user.Street)
	assert.Equal(t, "Apt. 556", user.Suite)
	assert.Equal(t, "Gwenborough", user.City)
	assert.Equal(t, "92998-3874", user.Zipcode)
	assert.Equal(t, "-37.3159", user.Lat)
	assert.Equal(t, "81.1496", user.Lng)
	assert.Equal(t, "Romaguera-Crona", user.CompanyName)
	assert.Equal(t, "Multi-layered client-server neural-net", user.CompanyCatchPhrase)
	assert.Equal(t, "harness real-time e-markets", user.CompanyBS)
}

func TestClientFetchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	var payload []postPayload
	err := client.fetch(context.Background(), "posts", &payload)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
}

func TestClientFetchMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not": "an array"`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	var payload []todoPayload
	err := client.fetch(context.Background(), "todos", &payload)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestClientFetchCanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(srv.URL, 5*time.Second)
	var payload []albumPayload
	err := client.fetch(ctx, "albums", &payload)
	require.Error(t, err)
}

func TestPayloadModels(t *testing.T) {
	post := postPayload{UserID: 2, ID: 11, Title: "t", Body: "b"}.model()
	assert.Equal(t, uint(2), post.UserID)
	assert.Equal(t, "t", post.Title)
	assert.Equal(t, "b", post.Body)

	comment := commentPayload{PostID: 3, Name: "n", Email: "e@example.com", Body: "b"}.model()
	assert.Equal(t, uint(3), comment.PostID)
	assert.Equal(t, "n", comment.Name)

	photo := photoPayload{AlbumID: 4, Title: "p", URL: "u", ThumbnailURL: "tn"}.model()
	assert.Equal(t, uint(4), photo.AlbumID)
	assert.Equal(t, "tn", photo.ThumbnailURL)

	todo := todoPayload{UserID: 5, Title: "x", Completed: true}.model()
	assert.Equal(t, uint(5), todo.UserID)
	assert.Equal(t, "x", todo.Title)
}
