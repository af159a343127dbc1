package storage

import (
	"bytes"
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/i474232898/weather-archiver/internal/report"
)

const contentTypeJSON = "application/json"

// defaultRegion is the one region that must not carry a LocationConstraint
// on bucket creation.
const defaultRegion = "us-east-1"

// S3API is the slice of the S3 client the store uses. The aws-sdk-go-v2
// *s3.Client satisfies it; tests substitute a fake.
type S3API interface {
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
	CreateBucket(ctx context.Context, params *s3.CreateBucketInput, optFns ...func(*s3.Options)) (*s3.CreateBucketOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// BucketStore archives JSON documents into a single S3 bucket.
type BucketStore struct {
	client S3API
	bucket string
	region string
	rep    report.Reporter
}

// NewBucketStore creates a store for the given bucket. An empty region falls
// back to us-east-1, matching the SDK's own default.
func NewBucketStore(client S3API, bucket, region string, rep report.Reporter) *BucketStore {
	if region == "" {
		region = defaultRegion
	}
	return &BucketStore{
		client: client,
		bucket: bucket,
		region: region,
		rep:    rep,
	}
}

// EnsureBucket probes the bucket and creates it when the probe reports it
// does not exist. Every outcome is non-fatal: a failed probe or create is
// reported and the run continues, letting individual writes surface their
// own errors later.
func (s *BucketStore) EnsureBucket(ctx context.Context) {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)})
	if err == nil {
		s.rep.Report(report.LevelInfo, "bucket exists", report.Fields{"bucket": s.bucket})
		return
	}

	var notFound *types.NotFound
	if !errors.As(err, &notFound) {
		s.rep.Report(report.LevelError, "error accessing bucket", report.Fields{"bucket": s.bucket, "error": err})
		return
	}

	s.rep.Report(report.LevelInfo, "bucket does not exist, creating it", report.Fields{"bucket": s.bucket, "region": s.region})

	in := &s3.CreateBucketInput{Bucket: aws.String(s.bucket)}
	if s.region != defaultRegion {
		in.CreateBucketConfiguration = &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(s.region),
		}
	}

	if _, err := s.client.CreateBucket(ctx, in); err != nil {
		s.rep.Report(report.LevelError, "error creating bucket", report.Fields{"bucket": s.bucket, "error": err})
		return
	}

	s.rep.Report(report.LevelInfo, "bucket created", report.Fields{"bucket": s.bucket})
}

// Put writes one JSON object under key. The error is returned for the
// caller to report with its own context.
func (s *BucketStore) Put(ctx context.Context, key string, body []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentTypeJSON),
	})
	return err
}
