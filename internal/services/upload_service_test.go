package services

import (
	"context"
	"encoding/base64"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"steamwiki/internal/models/db_models"
	"steamwiki/internal/models/request_models"
	"steamwiki/pkg/utils"
)

type storedObject struct {
	Key         string
	Body        []byte
	ContentType string
}

type fakeObjectStore struct {
	base    string
	objects []storedObject
	putErr  error
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{base: "https://cdn.example.test/bucket"}
}

func (f *fakeObjectStore) Put(ctx context.Context, key string, body []byte, contentType string) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.objects = append(f.objects, storedObject{Key: key, Body: body, ContentType: contentType})
	return nil
}

func (f *fakeObjectStore) PublicURL(key string) string {
	return f.base + "/" + key
}

func (f *fakeObjectStore) Locations() []string {
	return []string{f.base}
}

func newUploadService(store *fakeObjectStore) UploadServiceInterface {
	return NewUploadService(store, NewAccessPolicy(testSuperAdminSteamID))
}

var uploadKeyPattern = regexp.MustCompile(`^wiki/\d{8}/[0-9a-f]{32}\.png$`)

func TestUploadImageRequiresAuthentication(t *testing.T) {
	svc := newUploadService(newFakeObjectStore())

	_, err := svc.UploadImage(context.Background(), nil, request_models.UploadImageRequest{Image: "aGk="})

	assert.ErrorIs(t, err, utils.ErrAuthRequired)
}

func TestUploadImageStripsDataURI(t *testing.T) {
	store := newFakeObjectStore()
	svc := newUploadService(store)

	payload := base64.StdEncoding.EncodeToString([]byte("binary image bytes"))
	url, err := svc.UploadImage(context.Background(), testUser(db_models.RoleEditor), request_models.UploadImageRequest{
		Image: "data:image/png;base64," + payload,
	})

	require.NoError(t, err)
	require.Len(t, store.objects, 1)
	obj := store.objects[0]
	assert.Equal(t, []byte("binary image bytes"), obj.Body)
	assert.Regexp(t, uploadKeyPattern, obj.Key)
	assert.Equal(t, "image/png", obj.ContentType)
	assert.Equal(t, store.PublicURL(obj.Key), url)
}

func TestUploadImageContentTypeFromFilename(t *testing.T) {
	store := newFakeObjectStore()
	svc := newUploadService(store)

	payload := base64.StdEncoding.EncodeToString([]byte("jpeg bytes"))
	_, err := svc.UploadImage(context.Background(), testUser(db_models.RoleEditor), request_models.UploadImageRequest{
		Image:    payload,
		Filename: "Photo.JPG",
	})

	require.NoError(t, err)
	require.Len(t, store.objects, 1)
	assert.Equal(t, "image/jpeg", store.objects[0].ContentType)
	assert.Regexp(t, `\.jpg$`, store.objects[0].Key)
}

func TestUploadImageRejectsBadPayload(t *testing.T) {
	svc := newUploadService(newFakeObjectStore())

	_, err := svc.UploadImage(context.Background(), testUser(db_models.RoleEditor), request_models.UploadImageRequest{
		Image: "not base64!!",
	})
	assert.ErrorIs(t, err, utils.ErrMissingFields)

	_, err = svc.UploadImage(context.Background(), testUser(db_models.RoleEditor), request_models.UploadImageRequest{})
	assert.ErrorIs(t, err, utils.ErrMissingFields)
}

func TestUploadImageStoreFailure(t *testing.T) {
	store := newFakeObjectStore()
	store.putErr = errors.New("bucket gone")
	svc := newUploadService(store)

	_, err := svc.UploadImage(context.Background(), testUser(db_models.RoleEditor), request_models.UploadImageRequest{Image: "aGk="})

	assert.Error(t, err)
}

func TestUploadImageWithoutStore(t *testing.T) {
	svc := NewUploadService(nil, NewAccessPolicy(testSuperAdminSteamID))

	_, err := svc.UploadImage(context.Background(), testUser(db_models.RoleEditor), request_models.UploadImageRequest{Image: "aGk="})

	assert.ErrorIs(t, err, utils.ErrStorageUnavailable)
}
