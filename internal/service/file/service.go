package file

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/openleave/leave-backend-go/internal/domain/leave"
	"github.com/openleave/leave-backend-go/internal/pkg/storage"
)

const maxAttachmentSize = 5 << 20 // 5 MB

var allowedMimeTypes = map[string]bool{
	"image/jpeg":         true,
	"image/png":          true,
	"image/webp":         true,
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

type FileService interface {
	UploadAttachment(ctx context.Context, fh *multipart.FileHeader, employeeID string) (leave.Attachment, error)
	DeleteAttachment(ctx context.Context, att leave.Attachment) error
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(st storage.FileStorage) FileService {
	return &fileServiceImpl{storage: st}
}

func (s *fileServiceImpl) UploadAttachment(ctx context.Context, fh *multipart.FileHeader, employeeID string) (leave.Attachment, error) {
	if fh.Size > maxAttachmentSize {
		return leave.Attachment{}, leave.ErrAttachmentTooLarge
	}

	contentType := fh.Header.Get("Content-Type")
	if !allowedMimeTypes[contentType] {
		return leave.Attachment{}, fmt.Errorf("unsupported attachment type %q", contentType)
	}

	src, err := fh.Open()
	if err != nil {
		return leave.Attachment{}, fmt.Errorf("open attachment: %w", err)
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	key := fmt.Sprintf("leave/%s/%s%s", employeeID, uuid.NewString(), ext)

	storedKey, err := s.storage.Upload(ctx, src, key, contentType)
	if err != nil {
		return leave.Attachment{}, fmt.Errorf("upload attachment: %w", err)
	}

	url, err := s.storage.GetURL(ctx, storedKey, 0)
	if err != nil {
		return leave.Attachment{}, fmt.Errorf("resolve attachment url: %w", err)
	}

	return leave.Attachment{
		URL:          url,
		StorageKey:   storedKey,
		OriginalName: fh.Filename,
		Size:         fh.Size,
		MimeType:     contentType,
	}, nil
}

func (s *fileServiceImpl) DeleteAttachment(ctx context.Context, att leave.Attachment) error {
	if att.StorageKey == "" {
		return nil
	}
	return s.storage.Delete(ctx, att.StorageKey)
}
