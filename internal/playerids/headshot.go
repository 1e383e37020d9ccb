package playerids

import (
	"fmt"
	"regexp"
	"strconv"

	"nba-player-ids/internal/domain/players"
)

// headshotCDN is where the consuming app loads headshots for a given id.
const headshotCDN = "https://cdn.nba.com/headshots/nba/latest/260x190/%d.png"

// NBA CDN headshots end in /<id>.png, e.g. .../260x190/1629029.png.
var headshotPattern = regexp.MustCompile(`/([0-9]+)\.png`)

// IDFromImageURL returns the numeric id of the first "/<digits>.png" segment in
// url. URLs without one, or with a digit run too large for an ID, are rejected.
func IDFromImageURL(url string) (players.ID, bool) {
	if url == "" {
		return 0, false
	}
	m := headshotPattern.FindStringSubmatch(url)
	if m == nil || m[1] == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// HeadshotURL builds the canonical NBA CDN headshot URL for id.
func HeadshotURL(id players.ID) string {
	return fmt.Sprintf(headshotCDN, id)
}
