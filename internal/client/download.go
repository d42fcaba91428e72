// internal/client/download.go
package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DownloadImage fetches an image from an arbitrary URL (no Mealie auth)
// so it can be re-uploaded to the instance. Returns the image bytes and
// a file extension inferred from the Content-Type header, falling back
// to the URL suffix and finally "jpg".
func DownloadImage(ctx context.Context, imageURL string) ([]byte, string, error) {
	httpClient := &http.Client{Timeout: 30 * time.Second}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("invalid image URL: %w", err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, "", fmt.Errorf("failed to download image: HTTP %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read image: %w", err)
	}

	extension := extensionFor(resp.Header.Get("Content-Type"), imageURL)
	return data, extension, nil
}

func extensionFor(contentType, imageURL string) string {
	switch {
	case strings.Contains(contentType, "jpeg"), strings.Contains(contentType, "jpg"):
		return "jpg"
	case strings.Contains(contentType, "png"):
		return "png"
	case strings.Contains(contentType, "webp"):
		return "webp"
	}

	parts := strings.Split(imageURL, ".")
	ext := strings.ToLower(parts[len(parts)-1])
	switch ext {
	case "jpg", "jpeg", "png", "webp":
		return ext
	}
	return "jpg"
}
