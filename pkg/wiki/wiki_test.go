package wiki

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	pkgHttp "citron-srv/pkg/http"
)

func testHTTPConfig() pkgHttp.ClientConfig {
	return pkgHttp.ClientConfig{Timeout: 5 * time.Second}
}

func TestRESTClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/w/rest.php/v1/revision/10/compare/11":
			_, _ = io.WriteString(w, `{"from":{"id":10},"to":{"id":11},"diff":[`+
				`{"type":1,"lineNumber":3,"text":"https://a.example.com"},`+
				`{"type":3,"text":"x y","highlightRanges":[{"start":2,"length":1,"type":0}]}]}`)
		case "/w/rest.php/v1/revision/11":
			_, _ = io.WriteString(w, `{"id":11,"content_model":"wikitext","source":"hello"}`)
		case "/w/rest.php/v1/page/Project:Citron/Spam/2024-01-01.json":
			_, _ = io.WriteString(w, `{"id":5,"title":"Project:Citron/Spam/2024-01-01.json","content_model":"json","source":"{}"}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewRESTClient(srv.URL, pkgHttp.NewClient(testHTTPConfig()))
	ctx := context.Background()

	t.Run("compare", func(t *testing.T) {
		cmp, err := c.CompareRevisions(ctx, 10, 11)
		if err != nil {
			t.Fatalf("CompareRevisions returned error: %v", err)
		}
		segments := cmp.Segments()
		if len(segments) != 2 {
			t.Fatalf("segment count mismatch: got %d, want 2", len(segments))
		}
		if segments[1].Type != 3 || len(segments[1].HighlightRanges) != 1 || segments[1].HighlightRanges[0].Start != 2 {
			t.Errorf("segment mismatch: got %+v", segments[1])
		}
	})

	t.Run("revision", func(t *testing.T) {
		rev, err := c.GetRevision(ctx, 11)
		if err != nil {
			t.Fatalf("GetRevision returned error: %v", err)
		}
		if rev.Source != "hello" {
			t.Errorf("Source mismatch: got %q, want %q", rev.Source, "hello")
		}
	})

	t.Run("page with slashes", func(t *testing.T) {
		page, err := c.GetPage(ctx, "Project:Citron/Spam/2024-01-01.json")
		if err != nil {
			t.Fatalf("GetPage returned error: %v", err)
		}
		if page.ContentModel != "json" {
			t.Errorf("ContentModel mismatch: got %q, want json", page.ContentModel)
		}
	})

	t.Run("not found", func(t *testing.T) {
		if _, err := c.GetPage(ctx, "Missing"); !errors.Is(err, ErrNotFound) {
			t.Errorf("error mismatch: got %v, want %v", err, ErrNotFound)
		}
	})
}

type fakeActionServer struct {
	logins atomic.Int32
	edits  atomic.Int32
}

func (f *fakeActionServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	session, _ := r.Cookie("session")

	switch {
	case r.Form.Get("meta") == "tokens" && r.Form.Get("type") == "login":
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "abc", Path: "/"})
		_, _ = io.WriteString(w, `{"query":{"tokens":{"logintoken":"LT+\\"}}}`)
	case r.Form.Get("action") == "login":
		f.logins.Add(1)
		if session == nil || r.Form.Get("lgtoken") != `LT+\` || r.Form.Get("lgpassword") != "secret" {
			_, _ = io.WriteString(w, `{"login":{"result":"Failed","reason":"bad"}}`)
			return
		}
		_, _ = io.WriteString(w, `{"login":{"result":"Success"}}`)
	case r.Form.Get("meta") == "tokens":
		_, _ = io.WriteString(w, `{"query":{"tokens":{"csrftoken":"CT+\\"}}}`)
	case r.Form.Get("action") == "edit":
		f.edits.Add(1)
		if session == nil || r.Form.Get("token") != `CT+\` || r.Form.Get("contentmodel") != "json" {
			_, _ = io.WriteString(w, `{"error":{"code":"badtoken","info":"Invalid CSRF token."}}`)
			return
		}
		_, _ = io.WriteString(w, `{"edit":{"result":"Success"}}`)
	case r.Form.Get("list") == "users":
		_, _ = io.WriteString(w, `{"query":{"users":[{"name":"Alice","groups":["*","user","sysop"]}]}}`)
	case r.Form.Get("action") == "purge":
		_, _ = io.WriteString(w, `{"error":{"code":"nopurge","info":"nope"}}`)
	default:
		w.WriteHeader(http.StatusBadRequest)
	}
}

func TestActionClient(t *testing.T) {
	fake := &fakeActionServer{}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	cfg := testHTTPConfig()
	cfg.CookieJar = true
	c := NewActionClient(srv.URL, pkgHttp.NewClient(cfg))
	ctx := context.Background()

	if err := c.Login(ctx, "Bot", "secret"); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	groups, err := c.GetUserGroups(ctx, "Alice")
	if err != nil {
		t.Fatalf("GetUserGroups returned error: %v", err)
	}
	if len(groups) != 3 || groups[2] != "sysop" {
		t.Errorf("groups mismatch: got %v", groups)
	}

	if err := c.Edit(ctx, map[string]string{"title": "Project:X", "text": "{}", "contentmodel": "json"}); err != nil {
		t.Errorf("Edit returned error: %v", err)
	}

	if err := c.Purge(ctx, "Project:X"); !errors.Is(err, ErrAPI) {
		t.Errorf("Purge error mismatch: got %v, want %v", err, ErrAPI)
	}

	if err := c.Login(ctx, "Bot", "wrong"); !errors.Is(err, ErrLoginFailed) {
		t.Errorf("Login error mismatch: got %v, want %v", err, ErrLoginFailed)
	}
}

func TestRegistry(t *testing.T) {
	fake := &fakeActionServer{}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	r := NewRegistry(RegistryConfig{
		HTTP:     testHTTPConfig(),
		Username: "Bot",
		Password: "secret",
		BaseURL:  func(string) string { return srv.URL },
	})

	var wg sync.WaitGroup
	clients := make([]ActionClient, 8)
	for i := range clients {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, err := r.Action(context.Background(), "en.wikipedia.org")
			if err != nil {
				t.Errorf("Action returned error: %v", err)
				return
			}
			clients[i] = c
		}(i)
	}
	wg.Wait()

	if got := fake.logins.Load(); got != 1 {
		t.Errorf("login count mismatch: got %d, want 1", got)
	}
	for i := range clients {
		if clients[i] != clients[0] {
			t.Errorf("client %d differs from client 0", i)
		}
	}

	if r.REST("en.wikipedia.org") != r.REST("en.wikipedia.org") {
		t.Error("expected the same REST client for one server")
	}
	if r.REST("en.wikipedia.org") == r.REST("vi.wikipedia.org") {
		t.Error("expected distinct REST clients per server")
	}
}

func TestRegistryLoginFailureNotCached(t *testing.T) {
	fake := &fakeActionServer{}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	r := NewRegistry(RegistryConfig{
		HTTP:     testHTTPConfig(),
		Username: "Bot",
		Password: "wrong",
		BaseURL:  func(string) string { return srv.URL },
	})
	for i := 0; i < 2; i++ {
		if _, err := r.Action(context.Background(), "en.wikipedia.org"); !errors.Is(err, ErrLoginFailed) {
			t.Errorf("error mismatch: got %v, want %v", err, ErrLoginFailed)
		}
	}
	if got := fake.logins.Load(); got != 2 {
		t.Errorf("login count mismatch: got %d, want 2", got)
	}
}
