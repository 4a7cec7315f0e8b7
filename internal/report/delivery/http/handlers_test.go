package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"citron-srv/internal/middleware"
	"citron-srv/internal/model"
	"citron-srv/internal/report"
	"citron-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type fakeUseCase struct {
	input report.JobInput
}

func (f *fakeUseCase) run(ip report.JobInput, status string) (report.JobOutput, error) {
	f.input = ip
	if ip.WikiID == "enwiki" {
		return report.JobOutput{}, report.ErrWikiNotConfigured
	}
	if ip.Date == "bad" {
		return report.JobOutput{}, report.ErrInvalidDate
	}
	return report.JobOutput{
		Date:    "2024-05-01",
		Results: []report.WikiResult{{WikiID: "zhwiki", Status: status}},
	}, nil
}

func (f *fakeUseCase) Reconcile(_ context.Context, ip report.JobInput) (report.JobOutput, error) {
	return f.run(ip, report.StatusUpdated)
}

func (f *fakeUseCase) Announce(_ context.Context, ip report.JobInput) (report.JobOutput, error) {
	return f.run(ip, report.StatusAnnounced)
}

func (f *fakeUseCase) SyncFeedback(_ context.Context, ip report.JobInput) (report.JobOutput, error) {
	return f.run(ip, report.StatusSynced)
}

func (f *fakeUseCase) GetReport(_ context.Context, ip report.GetReportInput) (model.Report, error) {
	if ip.Date == "2024-01-01" {
		return model.Report{}, report.ErrReportNotFound
	}
	return model.Report{Version: 1, UpdatedAt: "2024-05-01T23:59:59Z"}, nil
}

func (f *fakeUseCase) ListArchives(_ context.Context, ip report.ListArchivesInput) ([]report.ArchivedVersion, error) {
	if ip.WikiID == "enwiki" {
		return nil, report.ErrArchiveDisabled
	}
	return []report.ArchivedVersion{{Version: "2024-05-01T23:59:59Z", Size: 120}}, nil
}

func (f *fakeUseCase) GetArchive(_ context.Context, ip report.GetArchiveInput) (model.Report, error) {
	if ip.Version != "2024-05-01T23:59:59Z" {
		return model.Report{}, report.ErrReportNotFound
	}
	return model.Report{Version: 1, UpdatedAt: ip.Version}, nil
}

func newTestRouter(uc report.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(log.NewNop(), uc, nil).RegisterRoutes(r.Group("/api/v1"), middleware.New(log.NewNop(), "secret"))
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer secret")
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJobs(t *testing.T) {
	tcs := map[string]struct {
		path       string
		body       string
		wantCode   int
		wantStatus string
		wantInput  report.JobInput
	}{
		"reconcile all wikis": {
			path:       "/api/v1/reports/reconcile",
			wantCode:   http.StatusOK,
			wantStatus: report.StatusUpdated,
		},
		"announce one wiki": {
			path:       "/api/v1/reports/announce",
			body:       `{"wiki_id":"zhwiki","date":"2024-05-01"}`,
			wantCode:   http.StatusOK,
			wantStatus: report.StatusAnnounced,
			wantInput:  report.JobInput{WikiID: "zhwiki", Date: "2024-05-01"},
		},
		"sync feedback": {
			path:       "/api/v1/reports/feedback/sync",
			body:       `{}`,
			wantCode:   http.StatusOK,
			wantStatus: report.StatusSynced,
		},
		"unknown wiki": {
			path:      "/api/v1/reports/reconcile",
			body:      `{"wiki_id":"enwiki"}`,
			wantCode:  http.StatusNotFound,
			wantInput: report.JobInput{WikiID: "enwiki"},
		},
		"invalid date": {
			path:      "/api/v1/reports/reconcile",
			body:      `{"date":"bad"}`,
			wantCode:  http.StatusBadRequest,
			wantInput: report.JobInput{Date: "bad"},
		},
		"malformed body": {
			path:     "/api/v1/reports/reconcile",
			body:     `{"wiki_id":`,
			wantCode: http.StatusBadRequest,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			uc := &fakeUseCase{}
			w := do(newTestRouter(uc), http.MethodPost, tc.path, tc.body)
			if w.Code != tc.wantCode {
				t.Fatalf("status code mismatch: got %d, want %d", w.Code, tc.wantCode)
			}
			if uc.input != tc.wantInput {
				t.Errorf("input mismatch: got %+v, want %+v", uc.input, tc.wantInput)
			}
			if tc.wantCode != http.StatusOK {
				return
			}

			var body struct {
				Data jobResp `json:"data"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if len(body.Data.Results) != 1 || body.Data.Results[0].Status != tc.wantStatus {
				t.Errorf("results mismatch: got %+v", body.Data.Results)
			}
		})
	}
}

func TestGetReport(t *testing.T) {
	r := newTestRouter(&fakeUseCase{})

	w := do(r, http.MethodGet, "/api/v1/wikis/zhwiki/report?date=2024-05-01", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status code mismatch: got %d, want %d", w.Code, http.StatusOK)
	}
	var body struct {
		Data model.Report `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if body.Data.UpdatedAt != "2024-05-01T23:59:59Z" {
		t.Errorf("updatedAt mismatch: got %s", body.Data.UpdatedAt)
	}

	w = do(r, http.MethodGet, "/api/v1/wikis/zhwiki/report?date=2024-01-01", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("status code mismatch: got %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestArchives(t *testing.T) {
	r := newTestRouter(&fakeUseCase{})

	w := do(r, http.MethodGet, "/api/v1/wikis/zhwiki/report/archives?date=2024-05-01", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status code mismatch: got %d, want %d", w.Code, http.StatusOK)
	}
	var list struct {
		Data listArchivesResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(list.Data.Versions) != 1 || list.Data.Versions[0].Version != "2024-05-01T23:59:59Z" {
		t.Errorf("versions mismatch: got %+v", list.Data.Versions)
	}

	w = do(r, http.MethodGet, "/api/v1/wikis/enwiki/report/archives", "")
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status code mismatch: got %d, want %d", w.Code, http.StatusServiceUnavailable)
	}

	w = do(r, http.MethodGet, "/api/v1/wikis/zhwiki/report/archives/2024-05-01T23:59:59Z?date=2024-05-01", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status code mismatch: got %d, want %d", w.Code, http.StatusOK)
	}

	w = do(r, http.MethodGet, "/api/v1/wikis/zhwiki/report/archives/2024-05-01T00:00:00Z", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("status code mismatch: got %d, want %d", w.Code, http.StatusNotFound)
	}
}
