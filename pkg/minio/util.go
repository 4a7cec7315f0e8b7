package minio

import "strings"

func validateConfig(cfg *Config) error {
	if cfg.Endpoint == "" {
		return invalidInput("endpoint is required")
	}
	if cfg.AccessKey == "" {
		return invalidInput("access key is required")
	}
	if cfg.SecretKey == "" {
		return invalidInput("secret key is required")
	}
	if cfg.Bucket == "" {
		return invalidInput("bucket is required")
	}
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}
	if !strings.Contains(cfg.Endpoint, ":") {
		cfg.Endpoint = cfg.Endpoint + DefaultEndpointPort
	}
	return nil
}

func validateUploadRequest(req *UploadRequest) error {
	if req.BucketName == "" {
		return invalidInput("bucket name is required")
	}
	if req.ObjectName == "" {
		return invalidInput("object name is required")
	}
	if strings.HasPrefix(req.ObjectName, "/") || strings.HasSuffix(req.ObjectName, "/") {
		return invalidInput("object name cannot start or end with '/'")
	}
	if req.Reader == nil {
		return invalidInput("reader is required")
	}
	if req.Size <= 0 || req.Size > MaxObjectSizeBytes {
		return invalidInput("size out of range")
	}
	if req.ContentType == "" {
		req.ContentType = "application/octet-stream"
	}
	return nil
}
