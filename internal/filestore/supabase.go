package filestore

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	storage "github.com/supabase-community/storage-go"
)

// SupabaseStore keeps uploaded files in a Supabase Storage bucket, as an
// alternative to local disk for hosted deployments.
type SupabaseStore struct {
	client *storage.Client
	bucket string
}

func NewSupabaseStore(supabaseURL, key, bucket string) (*SupabaseStore, error) {
	baseURL := strings.TrimSuffix(supabaseURL, "/")
	client := storage.NewClient(baseURL+"/storage/v1", key, nil)

	return &SupabaseStore{
		client: client,
		bucket: bucket,
	}, nil
}

func (s *SupabaseStore) Save(name string, data []byte) error {
	contentType := mimetype.Detect(data).String()
	upsert := false
	_, err := s.client.UploadFile(s.bucket, name, bytes.NewReader(data), storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return fmt.Errorf("failed to upload file: %w", err)
	}
	return nil
}

func (s *SupabaseStore) Open(name string) ([]byte, error) {
	data, err := s.client.DownloadFile(s.bucket, name)
	if err != nil {
		return nil, ErrNotFound
	}
	return data, nil
}

func (s *SupabaseStore) Delete(name string) error {
	_, err := s.client.RemoveFile(s.bucket, []string{name})
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
