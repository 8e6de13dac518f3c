package service

import (
	"fmt"
	"image/color"
	"net/url"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// PNGQRGenerator renders square PNG QR codes
type PNGQRGenerator struct {
	size int
}

// NewPNGQRGenerator creates a QR generator producing size x size images
func NewPNGQRGenerator(size int) *PNGQRGenerator {
	return &PNGQRGenerator{size: size}
}

// Generate renders content as a PNG
func (g *PNGQRGenerator) Generate(content string) ([]byte, error) {
	code, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to encode qr code: %w", err)
	}
	code.ForegroundColor = color.Black
	code.BackgroundColor = color.White

	png, err := code.PNG(g.size)
	if err != nil {
		return nil, fmt.Errorf("failed to render qr code: %w", err)
	}
	return png, nil
}

// VoteURL is the voting page URL encoded into a project's QR code
func VoteURL(baseURL, projectID string) string {
	return strings.TrimRight(baseURL, "/") + "/vote?projectId=" + url.QueryEscape(projectID)
}
