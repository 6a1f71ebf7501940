package aws

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// MaxObjectBatch is the most keys DeleteObjects accepts per call.
const MaxObjectBatch = 1000

// EmptyBucket removes every object version and delete marker from a bucket.
func (c *Client) EmptyBucket(ctx context.Context, name string) (int, error) {
	var (
		pending   []s3types.ObjectIdentifier
		removed   int
		keyMarker *string
		verMarker *string
	)

	// drain deletes full batches, or everything when all is set.
	drain := func(all bool) error {
		for len(pending) >= MaxObjectBatch || (all && len(pending) > 0) {
			n := min(len(pending), MaxObjectBatch)
			if err := c.deleteObjectBatch(ctx, name, pending[:n]); err != nil {
				return err
			}
			removed += n
			pending = pending[n:]
		}
		return nil
	}

	for {
		var page *s3.ListObjectVersionsOutput
		err := c.read(ctx, func() error {
			var err error
			page, err = c.s3.ListObjectVersions(ctx, &s3.ListObjectVersionsInput{
				Bucket:          aws.String(name),
				KeyMarker:       keyMarker,
				VersionIdMarker: verMarker,
			})
			return err
		})
		if err != nil {
			if isNotFoundError(err) {
				return removed, notFound("bucket", name, err)
			}
			return removed, fmt.Errorf("failed to list object versions in bucket %s: %w", name, err)
		}

		for _, v := range page.Versions {
			pending = append(pending, s3types.ObjectIdentifier{Key: v.Key, VersionId: v.VersionId})
		}
		for _, m := range page.DeleteMarkers {
			pending = append(pending, s3types.ObjectIdentifier{Key: m.Key, VersionId: m.VersionId})
		}
		if err := drain(false); err != nil {
			return removed, err
		}

		if !aws.ToBool(page.IsTruncated) {
			break
		}
		keyMarker, verMarker = page.NextKeyMarker, page.NextVersionIdMarker
	}

	if err := drain(true); err != nil {
		return removed, err
	}
	return removed, nil
}

func (c *Client) deleteObjectBatch(ctx context.Context, bucket string, objects []s3types.ObjectIdentifier) error {
	out, err := c.s3.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: aws.String(bucket),
		Delete: &s3types.Delete{
			Objects: objects,
			Quiet:   aws.Bool(true),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to delete objects in bucket %s: %w", bucket, err)
	}
	if len(out.Errors) > 0 {
		msgs := make([]string, 0, len(out.Errors))
		for _, e := range out.Errors {
			msgs = append(msgs, fmt.Sprintf("%s: %s", aws.ToString(e.Key), aws.ToString(e.Code)))
		}
		return fmt.Errorf("failed to delete %d objects in bucket %s: %s", len(out.Errors), bucket, strings.Join(msgs, ", "))
	}
	return nil
}

// DeleteBucket deletes a bucket. The bucket must be empty.
func (c *Client) DeleteBucket(ctx context.Context, name string) error {
	_, err := c.s3.DeleteBucket(ctx, &s3.DeleteBucketInput{Bucket: aws.String(name)})
	if err != nil {
		if isNotFoundError(err) {
			return notFound("bucket", name, err)
		}
		return fmt.Errorf("failed to delete bucket %s: %w", name, err)
	}
	return nil
}
