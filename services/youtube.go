package services

import "regexp"

var youtubeURLPattern = regexp.MustCompile(`(?:https?:/{2})?(?:w{3}\.)?youtu(?:be)?\.(?:com|be)(?:/watch\?v=|/)([^\s&]+)`)

// YouTubeID extracts the video id from a youtube.com or youtu.be URL.
func YouTubeID(rawURL string) (string, bool) {
	match := youtubeURLPattern.FindStringSubmatch(rawURL)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// YouTubeWatchURL is the inverse of YouTubeID.
func YouTubeWatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}
