package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestYouTubeID(t *testing.T) {
	tests := []struct {
		input  string
		wantID string
		wantOK bool
	}{
		{input: "https://www.youtube.com/watch?v=8aGhZQkoFbQ", wantID: "8aGhZQkoFbQ", wantOK: true},
		{input: "http://youtube.com/watch?v=abc&list=xyz", wantID: "abc", wantOK: true},
		{input: "youtu.be/dQw4w9WgXcQ", wantID: "dQw4w9WgXcQ", wantOK: true},
		{input: "www.youtube.com/embed", wantID: "embed", wantOK: true},
		{input: "https://vimeo.com/12345", wantOK: false},
		{input: "8aGhZQkoFbQ", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			id, ok := YouTubeID(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestYouTubeWatchURL(t *testing.T) {
	url := YouTubeWatchURL("8aGhZQkoFbQ")
	assert.Equal(t, "https://www.youtube.com/watch?v=8aGhZQkoFbQ", url)

	id, ok := YouTubeID(url)
	assert.True(t, ok)
	assert.Equal(t, "8aGhZQkoFbQ", id)
}
