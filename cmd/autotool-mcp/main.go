// Command autotool-mcp is a reference MCP server that exposes a wrapped
// client's admitted operations over stdio.
//
// The wrapped client here is an in-memory bucket store. Which of its
// operations become tools is controlled by the AUTOTOOL_CRUD_* environment
// variables (loaded from .env when present); by default only read
// operations are exposed.
//
// Usage:
//
//	go run ./cmd/autotool-mcp
//
// Example configuration for an MCP client:
//
//	{
//	    "mcpServers": {
//	        "bucket-tools": {
//	            "command": "go",
//	            "args": ["run", "./cmd/autotool-mcp"],
//	            "env": {"AUTOTOOL_CRUD_DELETE": "true"}
//	        }
//	    }
//	}
package main

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/joho/godotenv"

	"github.com/spetersoncode/autotool/crud"
	"github.com/spetersoncode/autotool/introspect"
	"github.com/spetersoncode/autotool/mcp"
	"github.com/spetersoncode/autotool/toolkit"
)

func main() {
	godotenv.Load()

	controls, err := crud.New(crud.FromEnv()...)
	if err != nil {
		log.Fatal(err)
	}

	enumerator := introspect.NewEnumerator(newBucketStore(), introspect.WithDescriptions(map[string]string{
		"list_buckets":  "List every bucket with its object count.",
		"get_bucket":    "Fetch one bucket by name.",
		"create_bucket": "Create an empty bucket.",
		"put_object":    "Store an object in a bucket.",
		"delete_bucket": "Delete a bucket and its objects.",
	}))

	w, err := toolkit.Wrap(enumerator, toolkit.WithControls(controls))
	if err != nil {
		log.Fatal(err)
	}

	if err := mcp.ServeStdio(w.Registry(),
		mcp.WithName("autotool-bucket-tools"),
		mcp.WithVersion("1.0.0"),
	); err != nil {
		log.Fatal(err)
	}
}

// bucketStore is the demo client wrapped by the server.
type bucketStore struct {
	mu      sync.Mutex
	buckets map[string]map[string]string
}

func newBucketStore() *bucketStore {
	return &bucketStore{
		buckets: map[string]map[string]string{
			"logs":    {"2026-08-28": "rotated"},
			"backups": {},
		},
	}
}

// BucketInfo summarizes one bucket for the model.
type BucketInfo struct {
	Name    string `json:"name"`
	Objects int    `json:"objects"`
}

// NameArgs selects a bucket by name.
type NameArgs struct {
	Name string `json:"name" desc:"Bucket name" required:"true"`
}

// PutObjectArgs stores one object.
type PutObjectArgs struct {
	Bucket string `json:"bucket" desc:"Target bucket" required:"true"`
	Key    string `json:"key" desc:"Object key" required:"true"`
	Value  string `json:"value" desc:"Object content" required:"true"`
}

func (s *bucketStore) ListBuckets(ctx context.Context) ([]BucketInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]BucketInfo, 0, len(s.buckets))
	for name, objects := range s.buckets {
		out = append(out, BucketInfo{Name: name, Objects: len(objects)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *bucketStore) GetBucket(ctx context.Context, args NameArgs) (BucketInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	objects, ok := s.buckets[args.Name]
	if !ok {
		return BucketInfo{}, fmt.Errorf("no such bucket: %s", args.Name)
	}
	return BucketInfo{Name: args.Name, Objects: len(objects)}, nil
}

func (s *bucketStore) CreateBucket(ctx context.Context, args NameArgs) (BucketInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.buckets[args.Name]; exists {
		return BucketInfo{}, fmt.Errorf("bucket already exists: %s", args.Name)
	}
	s.buckets[args.Name] = map[string]string{}
	return BucketInfo{Name: args.Name}, nil
}

func (s *bucketStore) PutObject(ctx context.Context, args PutObjectArgs) (BucketInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	objects, ok := s.buckets[args.Bucket]
	if !ok {
		return BucketInfo{}, fmt.Errorf("no such bucket: %s", args.Bucket)
	}
	objects[args.Key] = args.Value
	return BucketInfo{Name: args.Bucket, Objects: len(objects)}, nil
}

func (s *bucketStore) DeleteBucket(ctx context.Context, args NameArgs) (BucketInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.buckets[args.Name]; !ok {
		return BucketInfo{}, fmt.Errorf("no such bucket: %s", args.Name)
	}
	delete(s.buckets, args.Name)
	return BucketInfo{Name: args.Name}, nil
}
