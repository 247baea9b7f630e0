package s3

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"agrox/internal/domain/repository"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const noSuchKeyBody = `<?xml version="1.0" encoding="UTF-8"?>
<Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message></Error>`

// fakeS3 answers path-style object requests from a map.
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (f *fakeS3) RoundTrip(req *http.Request) (*http.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	// /<bucket>/<key>
	parts := strings.SplitN(strings.TrimPrefix(req.URL.Path, "/"), "/", 2)
	key := ""
	if len(parts) == 2 {
		key = parts[1]
	}

	switch req.Method {
	case http.MethodHead:
		return respond(http.StatusOK, nil), nil
	case http.MethodPut:
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}
		f.objects[key] = body

		return respond(http.StatusOK, nil), nil
	case http.MethodGet:
		body, ok := f.objects[key]
		if !ok {
			return respond(http.StatusNotFound, []byte(noSuchKeyBody)), nil
		}

		return respond(http.StatusOK, body), nil
	case http.MethodDelete:
		delete(f.objects, key)

		return respond(http.StatusNoContent, nil), nil
	}

	return respond(http.StatusNotImplemented, nil), nil
}

func respond(status int, body []byte) *http.Response {
	header := http.Header{}
	if status >= http.StatusBadRequest {
		header.Set("Content-Type", "application/xml")
	}

	return &http.Response{
		StatusCode:    status,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(body)),
		ContentLength: int64(len(body)),
	}
}

func newTestStore(t *testing.T) (*Store, *fakeS3) {
	t.Helper()

	fake := &fakeS3{objects: make(map[string][]byte)}
	client := s3.New(s3.Options{
		Region:                     "us-east-1",
		Credentials:                credentials.NewStaticCredentialsProvider("AKIA", "SECRET", ""),
		HTTPClient:                 &http.Client{Transport: fake},
		BaseEndpoint:               aws.String("https://mock.s3.local"),
		UsePathStyle:               true,
		RequestChecksumCalculation: aws.RequestChecksumCalculationWhenRequired,
		ResponseChecksumValidation: aws.ResponseChecksumValidationWhenRequired,
	})

	return NewWithClient(client, "agrox-bucket", "dev/"), fake
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s, fake := newTestStore(t)

	require.NoError(t, s.Ping(ctx))

	_, err := s.Get(ctx, "facilities")
	require.ErrorIs(t, err, repository.ErrKeyNotFound)

	require.NoError(t, s.Set(ctx, "facilities", []byte(`[{"id":"1"}]`)))
	assert.Contains(t, fake.objects, "dev/facilities")

	got, err := s.Get(ctx, "facilities")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(got))

	require.NoError(t, s.Remove(ctx, "facilities"))
	_, err = s.Get(ctx, "facilities")
	require.ErrorIs(t, err, repository.ErrKeyNotFound)
}

func TestNew_RequiresBucket(t *testing.T) {
	_, err := New(context.Background(), nil, "")
	require.Error(t, err)
}
