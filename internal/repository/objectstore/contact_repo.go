package objectstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"

	"realestate-form-intake/internal/domain"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// ObjectAPI is the subset of *s3.Client the repository needs.
type ObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
}

type contactRepo struct {
	client ObjectAPI
	bucket string
	prefix string
	newID  func() string
}

// NewContactRepository writes each contact form as its own JSON object
// under prefix/ in bucket.
func NewContactRepository(client ObjectAPI, bucket, prefix string) domain.ContactRepository {
	return &contactRepo{
		client: client,
		bucket: bucket,
		prefix: prefix,
		newID:  uuid.NewString,
	}
}

func (r *contactRepo) Create(ctx context.Context, form domain.ContactForm) (string, error) {
	doc, err := json.Marshal(form)
	if err != nil {
		return "", fmt.Errorf("failed to encode contact form: %w", err)
	}

	id := r.newID()
	key := path.Join(r.prefix, id+".json")

	_, err = r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(doc),
		ContentType: aws.String("application/json"),
		// fresh uuid keys never collide; refuse to overwrite if one ever does
		IfNoneMatch: aws.String("*"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to put %s: %w", key, err)
	}
	return id, nil
}

func (r *contactRepo) Ping(ctx context.Context) error {
	_, err := r.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(r.bucket)})
	if err != nil {
		return fmt.Errorf("failed to access bucket %s: %w", r.bucket, err)
	}
	return nil
}
