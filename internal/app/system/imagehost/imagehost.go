// internal/app/system/imagehost/imagehost.go

// Package imagehost uploads client-supplied images (base64 data URIs) to
// Cloudinary and returns the hosted URL. The server never renders or decodes
// the image itself; certificate layout happens client-side.
package imagehost

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.uber.org/zap"
)

// Uploader stores an image and returns its public URL. The gallery and
// certificate features depend on this interface so tests can stub it.
type Uploader interface {
	Upload(ctx context.Context, dataURI, folder string) (string, error)
}

// ErrBadImage is returned when the payload is not a base64 image data URI.
var ErrBadImage = errors.New("image must be a base64 data URI")

// Client is the production Uploader backed by Cloudinary.
type Client struct {
	cld *cloudinary.Cloudinary
	log *zap.Logger
}

// New builds an image host client from Cloudinary credentials. With no
// credentials configured (local development) the client is created but
// every Upload fails; startup validation warns about this.
func New(cloudName, apiKey, apiSecret string, log *zap.Logger) (*Client, error) {
	if cloudName == "" {
		return &Client{log: log}, nil
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &Client{cld: cld, log: log}, nil
}

// Upload sends the data URI to Cloudinary and returns the hosted HTTPS URL.
func (c *Client) Upload(ctx context.Context, dataURI, folder string) (string, error) {
	if c.cld == nil {
		return "", errors.New("image host is not configured")
	}
	if !ValidDataURI(dataURI) {
		return "", ErrBadImage
	}

	resp, err := c.cld.Upload.Upload(ctx, dataURI, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", fmt.Errorf("image upload: %w", err)
	}
	if resp.SecureURL == "" {
		return "", fmt.Errorf("image upload: empty URL in response")
	}

	c.log.Info("image uploaded",
		zap.String("folder", folder),
		zap.String("public_id", resp.PublicID))

	return resp.SecureURL, nil
}

// ValidDataURI reports whether s looks like a base64 image data URI
// ("data:image/png;base64,...."). Kept permissive; the host re-validates.
func ValidDataURI(s string) bool {
	if !strings.HasPrefix(s, "data:image/") {
		return false
	}
	i := strings.Index(s, ",")
	return i > 0 && strings.Contains(s[:i], ";base64") && i+1 < len(s)
}
