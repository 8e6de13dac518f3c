package service_test

import (
	"bytes"
	"image/png"
	"testing"

	"event-voting-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPNGQRGenerator_Generate(t *testing.T) {
	data, err := service.NewPNGQRGenerator(256).Generate("https://vote.example.com/vote?projectId=T1")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
	assert.Equal(t, 256, img.Bounds().Dy())
}

func TestPNGQRGenerator_TooLong(t *testing.T) {
	_, err := service.NewPNGQRGenerator(128).Generate(string(bytes.Repeat([]byte("x"), 5000)))
	assert.Error(t, err)
}

func TestVoteURL(t *testing.T) {
	assert.Equal(t, "https://vote.example.com/vote?projectId=T1", service.VoteURL("https://vote.example.com/", "T1"))
	assert.Equal(t, "http://localhost:7008/vote?projectId=A%26B", service.VoteURL("http://localhost:7008", "A&B"))
}
