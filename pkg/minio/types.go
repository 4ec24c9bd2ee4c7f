package minio

import "io"

// Config is the connection configuration of an object store.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	Bucket    string
}

// Object is one upload into the configured bucket.
type Object struct {
	Name        string
	Body        io.Reader
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// Stored describes an uploaded object.
type Stored struct {
	Bucket string
	Name   string
	Size   int64
	ETag   string
}
