package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/worlddominion/worldbot/worldbot/database/models"
)

// ArchiveService exports daily slices of the transaction ledger to an
// S3-compatible bucket (DigitalOcean Spaces) for offline audit and replay.
type ArchiveService struct {
	client *s3.Client
	bucket string
	region string
	prefix string
}

func NewArchiveService(key, secret, region, bucket, prefix string) (*ArchiveService, error) {
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.digitaloceanspaces.com", region),
		}, nil
	})

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithEndpointResolverWithOptions(resolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(key, secret, "")),
		config.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load spaces config: %w", err)
	}

	return &ArchiveService{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
		prefix: prefix,
	}, nil
}

// UploadLedger writes one day's transactions as a JSON document keyed by date.
func (s *ArchiveService) UploadLedger(ctx context.Context, day time.Time, txs []*models.Transaction) error {
	body, err := json.Marshal(txs)
	if err != nil {
		return fmt.Errorf("failed to marshal ledger archive: %w", err)
	}

	key := fmt.Sprintf("%s/ledger/%s.json", s.prefix, day.UTC().Format("2006-01-02"))
	contentType := "application/json"

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &key,
		Body:        bytes.NewReader(body),
		ContentType: &contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload ledger archive %s: %w", key, err)
	}
	return nil
}
