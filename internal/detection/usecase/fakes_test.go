package usecase

import (
	"context"
	"sync"

	"citron-srv/internal/classifier"
	"citron-srv/internal/detection/repository"
	"citron-srv/internal/feature"
	"citron-srv/internal/model"
	"citron-srv/pkg/paginator"
	"citron-srv/pkg/wiki"
)

type fakeRepo struct {
	mu       sync.Mutex
	ignored  map[string]bool
	created  []model.ReportedHostname
	checked  [][]string
	checkErr error
}

func (r *fakeRepo) CreateReportedHostname(_ context.Context, opt repository.CreateReportedHostnameOptions) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created = append(r.created, opt.ReportedHostname)
	return nil
}

func (r *fakeRepo) ListReportedHostnames(_ context.Context, _ repository.ListReportedHostnamesOptions) ([]model.ReportedHostname, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.created, nil
}

func (r *fakeRepo) GetReportedHostnames(_ context.Context, opt repository.GetReportedHostnamesOptions) ([]model.ReportedHostname, paginator.Paginator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.created, paginator.Paginator{Total: int64(len(r.created)), PerPage: opt.Limit, CurrentPage: opt.Page}, nil
}

func (r *fakeRepo) ExistsReportedHostname(_ context.Context, _ repository.ExistsReportedHostnameOptions) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.created) > 0, nil
}

func (r *fakeRepo) CheckIgnoredHostnames(_ context.Context, opt repository.CheckIgnoredHostnamesOptions) ([]repository.CheckHostnameResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.checkErr != nil {
		return nil, r.checkErr
	}
	r.checked = append(r.checked, opt.Hostnames)
	results := make([]repository.CheckHostnameResult, 0, len(opt.Hostnames))
	for _, h := range opt.Hostnames {
		results = append(results, repository.CheckHostnameResult{Hostname: h, Existed: r.ignored[h]})
	}
	return results, nil
}

func (r *fakeRepo) ExistsIgnoredHostname(_ context.Context, opt repository.ExistsIgnoredHostnameOptions) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ignored[opt.Hostname], nil
}

func (r *fakeRepo) CreateIgnoredHostname(_ context.Context, opt repository.CreateIgnoredHostnameOptions) (model.IgnoredHostname, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ignored[opt.Hostname] {
		return model.IgnoredHostname{}, repository.ErrAlreadyExists
	}
	if r.ignored == nil {
		r.ignored = map[string]bool{}
	}
	r.ignored[opt.Hostname] = true
	return model.IgnoredHostname{WikiID: opt.WikiID, Hostname: opt.Hostname}, nil
}

func (r *fakeRepo) GetIgnoredHostnames(_ context.Context, _ repository.GetIgnoredHostnamesOptions) ([]model.IgnoredHostname, paginator.Paginator, error) {
	return nil, paginator.Paginator{}, nil
}

type fakeCache struct {
	mu     sync.Mutex
	groups map[string][]string
	saves  int
}

func (c *fakeCache) GetUserGroups(_ context.Context, opt repository.GetUserGroupsOptions) ([]string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	g, ok := c.groups[opt.Username]
	return g, ok, nil
}

func (c *fakeCache) SaveUserGroups(_ context.Context, opt repository.SaveUserGroupsOptions) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.groups == nil {
		c.groups = map[string][]string{}
	}
	c.groups[opt.Username] = opt.Groups
	c.saves++
	return nil
}

type fakeREST struct {
	comparison *wiki.Comparison
	revision   *wiki.Revision
	err        error
}

func (f *fakeREST) CompareRevisions(_ context.Context, _, _ int64) (*wiki.Comparison, error) {
	return f.comparison, f.err
}

func (f *fakeREST) GetRevision(_ context.Context, _ int64) (*wiki.Revision, error) {
	return f.revision, f.err
}

func (f *fakeREST) GetPage(_ context.Context, _ string) (*wiki.Page, error) {
	return nil, wiki.ErrNotFound
}

type fakeAction struct {
	mu          sync.Mutex
	groups      map[string][]string
	groupsCalls int
	err         error
}

func (f *fakeAction) Login(_ context.Context, _, _ string) error { return nil }

func (f *fakeAction) GetUserGroups(_ context.Context, username string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.groupsCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.groups[username], nil
}

func (f *fakeAction) Edit(_ context.Context, _ map[string]string) error { return nil }

func (f *fakeAction) Purge(_ context.Context, _ string) error { return nil }

type fakeClients struct {
	rest   *fakeREST
	action *fakeAction
}

func (f *fakeClients) REST(_ string) wiki.RESTClient { return f.rest }

func (f *fakeClients) Action(_ context.Context, _ string) (wiki.ActionClient, error) {
	return f.action, nil
}

type fakeFeatures struct {
	calls int
}

func (f *fakeFeatures) Collect(_ context.Context, input feature.CollectInput) (feature.HostnameFeature, error) {
	return feature.HostnameFeature{Hostname: input.Hostname}, nil
}

func (f *fakeFeatures) CollectMany(_ context.Context, input feature.CollectManyInput) ([]feature.HostnameFeature, error) {
	f.calls++
	out := make([]feature.HostnameFeature, 0, len(input.Hostnames))
	for _, h := range input.Hostnames {
		out = append(out, feature.HostnameFeature{Hostname: h})
	}
	return out, nil
}

type fakeClassifier struct {
	probability float32
	err         error
	modelIDs    []string
}

func (f *fakeClassifier) Classify(_ context.Context, input classifier.ClassifyInput) (classifier.ClassifyOutput, error) {
	f.modelIDs = append(f.modelIDs, input.ModelID)
	if f.err != nil {
		return classifier.ClassifyOutput{}, f.err
	}
	out := classifier.ClassifyOutput{Model: classifier.ModelInfo{ID: "viwiki_model_v1", Number: 1}}
	for _, feat := range input.Features {
		out.Results = append(out.Results, classifier.Result{Hostname: feat.Hostname, Label: 1, Probability: f.probability})
	}
	return out, nil
}

func (f *fakeClassifier) Model(_ string) (classifier.ModelInfo, error) {
	return classifier.ModelInfo{ID: "viwiki_model_v1", Number: 1}, nil
}

type fakePublisher struct {
	published []model.ReportedHostname
	err       error
}

func (f *fakePublisher) PublishDetections(_ context.Context, detections []model.ReportedHostname) error {
	f.published = append(f.published, detections...)
	return f.err
}
