package minio

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateConfig(t *testing.T) {
	t.Run("adds default port and region", func(t *testing.T) {
		cfg := Config{Endpoint: "minio", AccessKey: "a", SecretKey: "s", Bucket: "citron-reports"}
		if err := validateConfig(&cfg); err != nil {
			t.Fatalf("validateConfig returned error: %v", err)
		}
		if cfg.Endpoint != "minio:9000" {
			t.Errorf("Endpoint mismatch: got %s, want minio:9000", cfg.Endpoint)
		}
		if cfg.Region != "us-east-1" {
			t.Errorf("Region mismatch: got %s, want us-east-1", cfg.Region)
		}
	})

	t.Run("bucket required", func(t *testing.T) {
		cfg := Config{Endpoint: "minio:9000", AccessKey: "a", SecretKey: "s"}
		if err := validateConfig(&cfg); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("error mismatch: got %v, want ErrInvalidInput", err)
		}
	})
}

func TestValidateUploadRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     UploadRequest
		wantErr bool
	}{
		{name: "valid", req: UploadRequest{BucketName: "b", ObjectName: "viwiki/2024-05-01/x.json", Reader: strings.NewReader("{}"), Size: 2}},
		{name: "leading slash", req: UploadRequest{BucketName: "b", ObjectName: "/x.json", Reader: strings.NewReader("{}"), Size: 2}, wantErr: true},
		{name: "empty body", req: UploadRequest{BucketName: "b", ObjectName: "x.json", Reader: strings.NewReader(""), Size: 0}, wantErr: true},
		{name: "no reader", req: UploadRequest{BucketName: "b", ObjectName: "x.json", Size: 2}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateUploadRequest(&tt.req)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateUploadRequest error mismatch: got %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	req := UploadRequest{BucketName: "b", ObjectName: "x.json", Reader: strings.NewReader("{}"), Size: 2}
	_ = validateUploadRequest(&req)
	if req.ContentType != "application/octet-stream" {
		t.Errorf("ContentType mismatch: got %s", req.ContentType)
	}
}
