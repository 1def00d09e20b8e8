package catalog

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGetter struct {
	body  string
	err   error
	input *s3.GetObjectInput
}

func (f *fakeGetter) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.input = in
	if f.err != nil {
		return nil, f.err
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(f.body))}, nil
}

func TestS3Source_Events(t *testing.T) {
	fg := &fakeGetter{body: `[{"id":"1","title":"Middle East Aviation Tour","category":"tour","participants":15,"maxParticipants":25,"status":"upcoming"}]`}
	src := NewS3SourceWithClient(fg, "levant", "")

	events, err := src.Events(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Middle East Aviation Tour", events[0].Title)
	assert.Equal(t, 25, events[0].MaxParticipants)

	assert.Equal(t, "levant", aws.ToString(fg.input.Bucket))
	assert.Equal(t, DefaultKey, aws.ToString(fg.input.Key))
}

func TestS3Source_Errors(t *testing.T) {
	_, err := NewS3SourceWithClient(&fakeGetter{err: errors.New("no such bucket")}, "b", "k.json").Events(context.Background())
	require.ErrorContains(t, err, "get s3://b/k.json")

	_, err = NewS3SourceWithClient(&fakeGetter{body: "not json"}, "b", "k.json").Events(context.Background())
	require.ErrorContains(t, err, "decode s3://b/k.json")
}

func TestNewS3Source_NotConfigured(t *testing.T) {
	_, err := NewS3Source(context.Background(), S3Config{})
	require.ErrorIs(t, err, ErrNotConfigured)
}

func TestNewS3Source_AppliesOptions(t *testing.T) {
	origLoad, origNew := loadDefaultAWSConfig, newS3ClientFromConfig
	t.Cleanup(func() { loadDefaultAWSConfig, newS3ClientFromConfig = origLoad, origNew })

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		assert.Equal(t, "eu-central-1", lo.Region)
		require.NotNil(t, lo.Credentials)
		creds, err := lo.Credentials.Retrieve(ctx)
		require.NoError(t, err)
		assert.Equal(t, "minio", creds.AccessKeyID)
		assert.Equal(t, "secret", creds.SecretAccessKey)
		return aws.Config{Region: lo.Region}, nil
	}

	fg := &fakeGetter{body: `[]`}
	var opts s3.Options
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) ObjectGetter {
		for _, fn := range optFns {
			fn(&opts)
		}
		return fg
	}

	src, err := NewS3Source(context.Background(), S3Config{
		Bucket: "levant", Region: "eu-central-1",
		User: "minio", Password: "secret",
		Endpoint: "http://localhost:9000",
	})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000", aws.ToString(opts.BaseEndpoint))
	assert.True(t, opts.UsePathStyle)

	events, err := src.Events(context.Background())
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestNewS3Source_LoadError(t *testing.T) {
	orig := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = orig })

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}
	_, err := NewS3Source(context.Background(), S3Config{Bucket: "b"})
	require.EqualError(t, err, "load-fail")
}
