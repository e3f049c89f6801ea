package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type fakeStrip struct {
	sets [][3]int
	err  error
}

func (f *fakeStrip) SetRGB(r, g, b int) error {
	f.sets = append(f.sets, [3]int{r, g, b})
	return f.err
}

func mustRouter(t *testing.T, strip Strip) http.Handler {
	t.Helper()
	router, err := New(strip).Router()
	if err != nil {
		t.Fatalf("unexpected error building router: %v", err)
	}
	return router
}

func postColor(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url+"/colors", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("unexpected error posting color: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestCreateColorRecolorsStrip(t *testing.T) {
	strip := &fakeStrip{}
	server := httptest.NewServer(mustRouter(t, strip))
	defer server.Close()

	resp := postColor(t, server.URL, `{"red":10,"green":20,"blue":30}`)
	if resp.StatusCode >= 300 {
		t.Errorf("unexpected status: %d", resp.StatusCode)
	}
	if len(strip.sets) != 1 || strip.sets[0] != [3]int{10, 20, 30} {
		t.Errorf("expected strip set to 10,20,30, got %v", strip.sets)
	}
}

func TestCreateColorStripError(t *testing.T) {
	strip := &fakeStrip{err: errors.New("strip unplugged")}
	server := httptest.NewServer(mustRouter(t, strip))
	defer server.Close()

	resp := postColor(t, server.URL, `{"red":1,"green":2,"blue":3}`)
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", resp.StatusCode)
	}
}
