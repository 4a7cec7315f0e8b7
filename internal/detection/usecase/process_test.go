package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"citron-srv/internal/classifier"
	"citron-srv/internal/detection"
	"citron-srv/internal/model"
	"citron-srv/pkg/hostname"
	"citron-srv/pkg/log"
	"citron-srv/pkg/wiki"
)

type testEnv struct {
	repo       *fakeRepo
	cache      *fakeCache
	clients    *fakeClients
	features   *fakeFeatures
	classifier *fakeClassifier
	publisher  *fakePublisher
	uc         detection.UseCase
}

func newTestEnv(w model.Wiki) *testEnv {
	env := &testEnv{
		repo:       &fakeRepo{ignored: map[string]bool{}},
		cache:      &fakeCache{},
		clients:    &fakeClients{rest: &fakeREST{}, action: &fakeAction{groups: map[string][]string{}}},
		features:   &fakeFeatures{},
		classifier: &fakeClassifier{probability: 0.9123456},
		publisher:  &fakePublisher{},
	}
	uc := New(
		log.NewNop(),
		env.repo,
		env.cache,
		env.clients,
		hostname.NewSuffixSet(".co.uk"),
		env.features,
		env.classifier,
		env.publisher,
		nil,
		Config{Wikis: map[string]model.Wiki{w.ID: w}},
	)
	impl := uc.(*implUseCase)
	impl.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	env.uc = uc
	return env
}

func newPageChange(user string) model.Change {
	return model.Change{
		Type:       model.ChangeTypeNew,
		Title:      "Trang mới",
		Timestamp:  1714564800,
		User:       user,
		Revision:   model.ChangeRevision{New: 100},
		ServerName: "vi.wikipedia.org",
		Wiki:       "viwiki",
	}
}

func TestProcessNewPage(t *testing.T) {
	env := newTestEnv(model.Wiki{ID: "viwiki", ServerName: "vi.wikipedia.org"})
	env.clients.rest.revision = &wiki.Revision{ID: 100, Source: "See http://spam-example.ninja/offer"}

	out, err := env.uc.Process(context.Background(), detection.ProcessInput{Change: newPageChange("1.2.3.4")})
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}

	if !reflect.DeepEqual(out.Extracted, []string{"spam-example.ninja"}) {
		t.Errorf("Extracted mismatch: got %v, want %v", out.Extracted, []string{"spam-example.ninja"})
	}
	if len(env.repo.created) != 1 {
		t.Fatalf("created count mismatch: got %d, want 1", len(env.repo.created))
	}

	d := env.repo.created[0]
	if d.Hostname != "spam-example.ninja" {
		t.Errorf("Hostname mismatch: got %q, want %q", d.Hostname, "spam-example.ninja")
	}
	if d.Score != 0.912346 {
		t.Errorf("Score mismatch: got %v, want %v", d.Score, 0.912346)
	}
	if d.ModelNumber != 1 {
		t.Errorf("ModelNumber mismatch: got %d, want 1", d.ModelNumber)
	}
	if d.WikiID != "viwiki" || d.User != "1.2.3.4" || d.Page != "Trang mới" || d.RevisionID != 100 || d.RevisionTimestamp != 1714564800 {
		t.Errorf("identity mismatch: got %+v", d)
	}
	if d.ID.Version() != 7 {
		t.Errorf("id version mismatch: got %d, want 7", d.ID.Version())
	}
	if len(env.publisher.published) != 1 {
		t.Errorf("published count mismatch: got %d, want 1", len(env.publisher.published))
	}
	if env.clients.action.groupsCalls != 0 {
		t.Errorf("IP editor triggered a user group lookup")
	}
}

func TestProcessEdit(t *testing.T) {
	env := newTestEnv(model.Wiki{ID: "viwiki", ServerName: "vi.wikipedia.org"})
	env.clients.rest.comparison = &wiki.Comparison{
		Diff: []wiki.Diff{
			{Type: hostname.SegmentContext, Text: "unchanged http://context.example.com"},
			{
				Type: hostname.SegmentChanged,
				Text: "visit http://ok.example.org site",
				HighlightRanges: []wiki.HighlightRange{
					{Start: 6, Length: 22, Type: hostname.RangeAddition},
				},
			},
		},
	}
	old := int64(99)
	c := newPageChange("Alice")
	c.Type = model.ChangeTypeEdit
	c.Revision.Old = &old

	out, err := env.uc.Process(context.Background(), detection.ProcessInput{Change: c})
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if !reflect.DeepEqual(out.Extracted, []string{"ok.example.org"}) {
		t.Errorf("Extracted mismatch: got %v, want %v", out.Extracted, []string{"ok.example.org"})
	}
	if len(env.repo.created) != 1 {
		t.Errorf("created count mismatch: got %d, want 1", len(env.repo.created))
	}
}

func TestProcessFiltersCandidates(t *testing.T) {
	env := newTestEnv(model.Wiki{ID: "viwiki"})
	env.repo.ignored["known.example.com"] = true
	env.clients.rest.revision = &wiki.Revision{
		Source: "http://shop.co.uk http://known.example.com http://fresh.example.net",
	}

	out, err := env.uc.Process(context.Background(), detection.ProcessInput{Change: newPageChange("1.2.3.4")})
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}

	wantChecked := []string{"fresh.example.net", "known.example.com"}
	if len(env.repo.checked) != 1 || !reflect.DeepEqual(env.repo.checked[0], wantChecked) {
		t.Errorf("checked mismatch: got %v, want [%v]", env.repo.checked, wantChecked)
	}
	if !reflect.DeepEqual(out.Candidates, []string{"fresh.example.net"}) {
		t.Errorf("Candidates mismatch: got %v, want %v", out.Candidates, []string{"fresh.example.net"})
	}
}

func TestProcessStopsWithoutCandidates(t *testing.T) {
	env := newTestEnv(model.Wiki{ID: "viwiki"})
	env.repo.ignored["known.example.com"] = true
	env.clients.rest.revision = &wiki.Revision{Source: "http://known.example.com"}

	if _, err := env.uc.Process(context.Background(), detection.ProcessInput{Change: newPageChange("1.2.3.4")}); err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if env.features.calls != 0 {
		t.Errorf("CollectMany calls mismatch: got %d, want 0", env.features.calls)
	}
	if len(env.classifier.modelIDs) != 0 {
		t.Errorf("Classify calls mismatch: got %d, want 0", len(env.classifier.modelIDs))
	}
}

func TestProcessIgnoredUserGroup(t *testing.T) {
	w := model.Wiki{ID: "viwiki", IgnoredUserGroups: []string{"sysop", "rollbacker"}}

	t.Run("member skipped and cached", func(t *testing.T) {
		env := newTestEnv(w)
		env.clients.action.groups["Admin"] = []string{"*", "user", "sysop"}
		env.clients.rest.revision = &wiki.Revision{Source: "http://spam.example.bet"}

		for i := 0; i < 2; i++ {
			out, err := env.uc.Process(context.Background(), detection.ProcessInput{Change: newPageChange("Admin")})
			if err != nil {
				t.Fatalf("Process returned error: %v", err)
			}
			if !out.SkippedUser {
				t.Errorf("SkippedUser mismatch: got false, want true")
			}
		}
		if env.clients.action.groupsCalls != 1 {
			t.Errorf("lookup calls mismatch: got %d, want 1", env.clients.action.groupsCalls)
		}
		if len(env.repo.created) != 0 {
			t.Errorf("created count mismatch: got %d, want 0", len(env.repo.created))
		}
	})

	t.Run("lookup failure is not ignored", func(t *testing.T) {
		env := newTestEnv(w)
		env.clients.action.err = errors.New("api down")
		env.clients.rest.revision = &wiki.Revision{Source: "http://spam.example.bet"}

		out, err := env.uc.Process(context.Background(), detection.ProcessInput{Change: newPageChange("Admin")})
		if err != nil {
			t.Fatalf("Process returned error: %v", err)
		}
		if out.SkippedUser {
			t.Errorf("SkippedUser mismatch: got true, want false")
		}
		if len(env.repo.created) != 1 {
			t.Errorf("created count mismatch: got %d, want 1", len(env.repo.created))
		}
	})

	t.Run("IPv6 editor bypasses lookup", func(t *testing.T) {
		env := newTestEnv(w)
		env.clients.rest.revision = &wiki.Revision{Source: "nothing here"}

		if _, err := env.uc.Process(context.Background(), detection.ProcessInput{Change: newPageChange("2001:db8::1")}); err != nil {
			t.Fatalf("Process returned error: %v", err)
		}
		if env.clients.action.groupsCalls != 0 {
			t.Errorf("lookup calls mismatch: got %d, want 0", env.clients.action.groupsCalls)
		}
	})
}

func TestProcessClassifierFailure(t *testing.T) {
	env := newTestEnv(model.Wiki{ID: "viwiki", ModelID: "viwiki_model_v1"})
	env.classifier.err = classifier.ErrInferenceFailed
	env.clients.rest.revision = &wiki.Revision{Source: "http://spam.example.bet"}

	_, err := env.uc.Process(context.Background(), detection.ProcessInput{Change: newPageChange("1.2.3.4")})
	if !errors.Is(err, classifier.ErrInferenceFailed) {
		t.Errorf("error mismatch: got %v, want %v", err, classifier.ErrInferenceFailed)
	}
	if len(env.repo.created) != 0 {
		t.Errorf("created count mismatch: got %d, want 0", len(env.repo.created))
	}
	if !reflect.DeepEqual(env.classifier.modelIDs, []string{"viwiki_model_v1"}) {
		t.Errorf("model ids mismatch: got %v", env.classifier.modelIDs)
	}
}

func TestProcessDiffUnavailable(t *testing.T) {
	env := newTestEnv(model.Wiki{ID: "viwiki"})
	env.clients.rest.err = wiki.ErrNotFound

	_, err := env.uc.Process(context.Background(), detection.ProcessInput{Change: newPageChange("1.2.3.4")})
	if !errors.Is(err, detection.ErrDiffUnavailable) {
		t.Errorf("error mismatch: got %v, want %v", err, detection.ErrDiffUnavailable)
	}
}

func TestProcessPublishFailureIsNotFatal(t *testing.T) {
	env := newTestEnv(model.Wiki{ID: "viwiki"})
	env.publisher.err = errors.New("broker down")
	env.clients.rest.revision = &wiki.Revision{Source: "http://spam.example.bet"}

	if _, err := env.uc.Process(context.Background(), detection.ProcessInput{Change: newPageChange("1.2.3.4")}); err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if len(env.repo.created) != 1 {
		t.Errorf("created count mismatch: got %d, want 1", len(env.repo.created))
	}
}

func TestProcessUnknownWiki(t *testing.T) {
	env := newTestEnv(model.Wiki{ID: "viwiki"})
	c := newPageChange("1.2.3.4")
	c.Wiki = "enwiki"

	if _, err := env.uc.Process(context.Background(), detection.ProcessInput{Change: c}); !errors.Is(err, detection.ErrWikiNotConfigured) {
		t.Errorf("error mismatch: got %v, want %v", err, detection.ErrWikiNotConfigured)
	}
}

func TestIgnoreHostnameIsIdempotent(t *testing.T) {
	env := newTestEnv(model.Wiki{ID: "viwiki"})
	ctx := context.Background()

	first, err := env.uc.IgnoreHostname(ctx, detection.IgnoreHostnameInput{WikiID: "viwiki", Hostname: " Spam.Example.COM "})
	if err != nil {
		t.Fatalf("IgnoreHostname returned error: %v", err)
	}
	if !first.Created || first.Hostname.Hostname != "spam.example.com" {
		t.Errorf("first mismatch: got %+v", first)
	}

	second, err := env.uc.IgnoreHostname(ctx, detection.IgnoreHostnameInput{WikiID: "viwiki", Hostname: "spam.example.com"})
	if err != nil {
		t.Fatalf("IgnoreHostname returned error: %v", err)
	}
	if second.Created {
		t.Errorf("Created mismatch: got true, want false")
	}

	if _, err := env.uc.IgnoreHostname(ctx, detection.IgnoreHostnameInput{WikiID: "viwiki", Hostname: "  "}); !errors.Is(err, detection.ErrEmptyHostname) {
		t.Errorf("error mismatch: got %v, want %v", err, detection.ErrEmptyHostname)
	}
}

func TestCheckHostnamesEmpty(t *testing.T) {
	env := newTestEnv(model.Wiki{ID: "viwiki"})
	got, err := env.uc.CheckHostnames(context.Background(), detection.CheckHostnamesInput{WikiID: "viwiki"})
	if err != nil {
		t.Fatalf("CheckHostnames returned error: %v", err)
	}
	if len(got) != 0 || len(env.repo.checked) != 0 {
		t.Errorf("empty input mismatch: got %v, queries %d", got, len(env.repo.checked))
	}
}
