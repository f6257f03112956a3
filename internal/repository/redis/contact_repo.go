package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"realestate-form-intake/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

// documentField is the single stream entry field holding the JSON record.
const documentField = "document"

type contactRepo struct {
	client goredis.Cmdable
	stream string
}

// NewContactRepository appends each contact form as one entry of stream.
// Redis assigns the entry id.
func NewContactRepository(client goredis.Cmdable, stream string) domain.ContactRepository {
	return &contactRepo{client: client, stream: stream}
}

// EncodeDocument is the stream payload for one record.
func EncodeDocument(form domain.ContactForm) (string, error) {
	doc, err := json.Marshal(form)
	if err != nil {
		return "", fmt.Errorf("failed to encode contact form: %w", err)
	}
	return string(doc), nil
}

func (r *contactRepo) Create(ctx context.Context, form domain.ContactForm) (string, error) {
	doc, err := EncodeDocument(form)
	if err != nil {
		return "", err
	}

	return r.client.XAdd(ctx, &goredis.XAddArgs{
		Stream: r.stream,
		Values: []interface{}{documentField, doc},
	}).Result()
}

func (r *contactRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
