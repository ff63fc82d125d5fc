//go:build e2e && unix

package main

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

const usersJSON = `[
  {"id": 1, "name": "Leanne Graham", "username": "Bret", "email": "Sincere@april.biz",
   "phone": "1-770-736-8031 x56442", "website": "hildegard.org",
   "company": {"name": "Romaguera-Crona", "catchPhrase": "Multi-layered client-server neural-net", "bs": "harness real-time e-markets"}},
  {"id": 2, "name": "Ervin Howell", "username": "Antonette", "email": "Shanna@melissa.tv",
   "phone": "010-692-6593 x09125", "website": "anastasia.net",
   "company": {"name": "Deckow-Crist"}},
  {"id": 3, "name": "Clementine Bauch", "username": "Samantha", "email": "Nathan@yesenia.net",
   "phone": "1-463-123-4447", "website": "ramiro.info",
   "company": {"name": "Romaguera-Jacobson"}}
]`

// directoryAPI serves the users fixture and counts requests
type directoryAPI struct {
	*httptest.Server
	hits atomic.Int32
}

// newDirectoryAPI starts a fake directory. status other than 200 makes
// every request fail; delay holds each response.
func newDirectoryAPI(t *testing.T, status int, delay time.Duration) *directoryAPI {
	t.Helper()
	api := &directoryAPI{}
	api.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users" {
			http.NotFound(w, r)
			return
		}
		api.hits.Add(1)
		if delay > 0 {
			time.Sleep(delay)
		}
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(usersJSON))
	}))
	t.Cleanup(api.Close)
	return api
}
