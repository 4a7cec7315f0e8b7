package postgre

import (
	"errors"
	"testing"
	"time"

	"citron-srv/internal/model"

	"github.com/google/uuid"
)

type fakeRow struct {
	values []any
	err    error
}

func (f fakeRow) Scan(dest ...any) error {
	if f.err != nil {
		return f.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *uuid.UUID:
			*p = f.values[i].(uuid.UUID)
		case *time.Time:
			*p = f.values[i].(time.Time)
		case *string:
			*p = f.values[i].(string)
		case *int64:
			*p = f.values[i].(int64)
		case *int:
			*p = f.values[i].(int)
		case *float64:
			*p = f.values[i].(float64)
		}
	}
	return nil
}

func TestReportedHostnameRoundTrip(t *testing.T) {
	id := uuid.Must(uuid.NewV7())
	loc := time.FixedZone("ICT", 7*3600)
	in := model.ReportedHostname{
		ID:                id,
		CreatedAt:         time.Date(2024, 5, 1, 10, 0, 0, 0, loc),
		WikiID:            "viwiki",
		User:              "Alice",
		Page:              "Trang Chính",
		RevisionID:        42,
		RevisionTimestamp: 1714532400,
		Hostname:          "spam.example.bet",
		Score:             0.912345,
		ModelNumber:       1,
	}

	args := buildReportedHostnameArgs(in)
	if len(args) != 10 {
		t.Fatalf("arg count mismatch: got %d, want 10", len(args))
	}
	if args[1].(time.Time).Location() != time.UTC {
		t.Errorf("created_at location mismatch: got %v, want UTC", args[1].(time.Time).Location())
	}

	out, err := scanReportedHostname(fakeRow{values: args})
	if err != nil {
		t.Fatalf("scanReportedHostname returned error: %v", err)
	}
	if !out.CreatedAt.Equal(in.CreatedAt) {
		t.Errorf("CreatedAt mismatch: got %v, want %v", out.CreatedAt, in.CreatedAt)
	}
	out.CreatedAt = in.CreatedAt
	if out != in {
		t.Errorf("row mismatch: got %+v, want %+v", out, in)
	}
}

func TestScanIgnoredHostnameError(t *testing.T) {
	want := errors.New("scan failed")
	if _, err := scanIgnoredHostname(fakeRow{err: want}); !errors.Is(err, want) {
		t.Errorf("error mismatch: got %v, want %v", err, want)
	}
}
