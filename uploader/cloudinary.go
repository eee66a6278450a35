package uploader

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"

	"sintnew/config"
)

// CategoryFolder is the folder hint for category cover images. Product
// images go to the configured root directly.
const CategoryFolder = "categories"

// ImageRef is the handle pair returned by the remote image store. SecureURL
// is what clients render; PublicID is what a later delete needs. The two are
// always both set or both empty.
type ImageRef struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
}

// ImageService bridges uploaded image bytes to remote object storage.
//
// Upload failures halt the calling workflow before anything is persisted.
// Delete is best effort: an orphaned remote asset is acceptable, a blocked
// admin workflow is not.
type ImageService interface {
	Upload(ctx context.Context, image io.Reader, folderHint string) (ImageRef, error)
	Delete(publicID string)
}

type CloudinaryService struct {
	client *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryService(cfg *config.Cloudinary) (*CloudinaryService, error) {
	client, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudinary client: %w", err)
	}
	return &CloudinaryService{client: client, folder: cfg.Folder}, nil
}

// UploadFolder joins the configured root with the per-entity hint.
func UploadFolder(root, hint string) string {
	if hint == "" {
		return root
	}
	return strings.TrimSuffix(root, "/") + "/" + hint
}

func (s *CloudinaryService) Upload(ctx context.Context, image io.Reader, folderHint string) (ImageRef, error) {
	result, err := s.client.Upload.Upload(ctx, image, uploader.UploadParams{
		Folder:   UploadFolder(s.folder, folderHint),
		PublicID: uuid.New().String(),
	})
	if err != nil {
		return ImageRef{}, fmt.Errorf("image upload failed: %w", err)
	}
	return ImageRef{SecureURL: result.SecureURL, PublicID: result.PublicID}, nil
}

// Delete destroys a previously uploaded asset. Errors are logged and
// swallowed so an unreachable image store never blocks an entity mutation.
func (s *CloudinaryService) Delete(publicID string) {
	if publicID == "" {
		return
	}
	if _, err := s.client.Upload.Destroy(context.Background(), uploader.DestroyParams{PublicID: publicID}); err != nil {
		log.Println("Failed to delete image", publicID+":", err)
	}
}
