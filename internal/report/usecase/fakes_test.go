package usecase

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"citron-srv/internal/detection"
	"citron-srv/internal/model"
	"citron-srv/internal/report/repository"
	"citron-srv/pkg/log"
	"citron-srv/pkg/minio"
	"citron-srv/pkg/wiki"
)

type fakeRepo struct {
	mu        sync.Mutex
	feedbacks []model.Feedback
}

func (r *fakeRepo) CreateFeedback(_ context.Context, opt repository.CreateFeedbackOptions) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.feedbacks = append(r.feedbacks, opt.Feedback)
	return nil
}

func (r *fakeRepo) ListFeedbacks(_ context.Context, _ repository.ListFeedbacksOptions) ([]model.Feedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.feedbacks, nil
}

type fakeDetection struct {
	mu      sync.Mutex
	rows    []model.ReportedHostname
	ignored map[string]bool
	newly   []string
}

func (f *fakeDetection) Process(_ context.Context, _ detection.ProcessInput) (detection.ProcessOutput, error) {
	return detection.ProcessOutput{}, nil
}

func (f *fakeDetection) Extract(_ context.Context, _ detection.ExtractInput) ([]string, error) {
	return nil, nil
}

func (f *fakeDetection) GetDetections(_ context.Context, _ detection.GetDetectionsInput) (detection.GetDetectionsOutput, error) {
	return detection.GetDetectionsOutput{Detections: f.rows}, nil
}

func (f *fakeDetection) ListDetections(_ context.Context, _ detection.ListDetectionsInput) ([]model.ReportedHostname, error) {
	return f.rows, nil
}

func (f *fakeDetection) HasDetections(_ context.Context, _ detection.HasDetectionsInput) (bool, error) {
	return len(f.rows) > 0, nil
}

func (f *fakeDetection) CheckHostnames(_ context.Context, ip detection.CheckHostnamesInput) ([]detection.HostnameCheck, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	checks := make([]detection.HostnameCheck, 0, len(ip.Hostnames))
	for _, h := range ip.Hostnames {
		checks = append(checks, detection.HostnameCheck{Hostname: h, Existed: f.ignored[h]})
	}
	return checks, nil
}

func (f *fakeDetection) IsIgnored(_ context.Context, ip detection.IsIgnoredInput) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ignored[ip.Hostname], nil
}

func (f *fakeDetection) IgnoreHostname(_ context.Context, ip detection.IgnoreHostnameInput) (detection.IgnoreHostnameOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ignored == nil {
		f.ignored = make(map[string]bool)
	}
	f.ignored[ip.Hostname] = true
	f.newly = append(f.newly, ip.Hostname)
	return detection.IgnoreHostnameOutput{
		Hostname: model.IgnoredHostname{WikiID: ip.WikiID, Hostname: ip.Hostname},
		Created:  true,
	}, nil
}

func (f *fakeDetection) GetIgnoredHostnames(_ context.Context, _ detection.GetIgnoredHostnamesInput) (detection.GetIgnoredHostnamesOutput, error) {
	return detection.GetIgnoredHostnamesOutput{}, nil
}

type fakeREST struct {
	mu    sync.Mutex
	pages map[string]string
	err   error
}

func (f *fakeREST) CompareRevisions(_ context.Context, _, _ int64) (*wiki.Comparison, error) {
	return nil, wiki.ErrNotFound
}

func (f *fakeREST) GetRevision(_ context.Context, _ int64) (*wiki.Revision, error) {
	return nil, wiki.ErrNotFound
}

func (f *fakeREST) GetPage(_ context.Context, title string) (*wiki.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	source, ok := f.pages[title]
	if !ok {
		return nil, wiki.ErrNotFound
	}
	return &wiki.Page{Title: title, Source: source}, nil
}

type fakeAction struct {
	mu     sync.Mutex
	edits  []map[string]string
	purged []string
	err    error
}

func (f *fakeAction) Login(_ context.Context, _, _ string) error { return nil }

func (f *fakeAction) GetUserGroups(_ context.Context, _ string) ([]string, error) {
	return nil, nil
}

func (f *fakeAction) Edit(_ context.Context, params map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.edits = append(f.edits, params)
	return nil
}

func (f *fakeAction) Purge(_ context.Context, titles string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.purged = append(f.purged, titles)
	return nil
}

type fakeClients struct {
	rest   *fakeREST
	action *fakeAction
}

func (f *fakeClients) REST(_ string) wiki.RESTClient { return f.rest }

func (f *fakeClients) Action(_ context.Context, _ string) (wiki.ActionClient, error) {
	return f.action, nil
}

type fakeMinIO struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (f *fakeMinIO) Connect(_ context.Context) error { return nil }

func (f *fakeMinIO) HealthCheck(_ context.Context) error { return nil }

func (f *fakeMinIO) Close() error { return nil }

func (f *fakeMinIO) EnsureBucket(_ context.Context, _ string) error { return nil }

func (f *fakeMinIO) DefaultBucket() string { return "citron-reports" }

func (f *fakeMinIO) PutObject(_ context.Context, req *minio.UploadRequest) (*minio.FileInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	buf, err := io.ReadAll(req.Reader)
	if err != nil {
		return nil, err
	}
	if f.objects == nil {
		f.objects = make(map[string][]byte)
	}
	f.objects[req.BucketName+"/"+req.ObjectName] = buf
	return &minio.FileInfo{}, nil
}

func (f *fakeMinIO) GetObject(_ context.Context, bucketName, objectName string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	body, ok := f.objects[bucketName+"/"+objectName]
	if !ok {
		return nil, minio.ErrObjectNotFound
	}
	return body, nil
}

func (f *fakeMinIO) ListObjects(_ context.Context, bucketName, prefix string) ([]*minio.FileInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*minio.FileInfo
	for key, body := range f.objects {
		name, ok := strings.CutPrefix(key, bucketName+"/")
		if !ok || !strings.HasPrefix(name, prefix) {
			continue
		}
		out = append(out, &minio.FileInfo{BucketName: bucketName, ObjectName: name, Size: int64(len(body))})
	}
	return out, nil
}

type testEnv struct {
	uc        *implUseCase
	repo      *fakeRepo
	detection *fakeDetection
	rest      *fakeREST
	action    *fakeAction
	minio     *fakeMinIO
}

var testNow = time.Date(2024, 5, 2, 10, 30, 0, 0, time.UTC)

func newTestEnv() *testEnv {
	env := &testEnv{
		repo:      &fakeRepo{},
		detection: &fakeDetection{},
		rest:      &fakeREST{pages: map[string]string{}},
		action:    &fakeAction{},
		minio:     &fakeMinIO{},
	}
	wikis := map[string]model.Wiki{
		"zhwiki": {
			ID:                  "zhwiki",
			ServerName:          "zh.wikipedia.org",
			AnnouncementPage:    "Project:Spam",
			AnnouncementSection: "{year}-{month}-{day}",
		},
	}
	uc := New(log.NewNop(), env.repo, env.detection, &fakeClients{rest: env.rest, action: env.action}, env.minio, nil, nil, Config{
		Wikis: wikis,
	}).(*implUseCase)
	uc.now = func() time.Time { return testNow }
	env.uc = uc
	return env
}
