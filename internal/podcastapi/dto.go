package podcastapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// PreviewDTO is one element of the catalog array
type PreviewDTO struct {
	ID          flexString `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
	Genres      genreList  `json:"genres"`
	GenreIDs    genreList  `json:"genre_ids"` // older payloads use this name
	Updated     string     `json:"updated"`
	Seasons     int        `json:"seasons"`
}

// ShowDTO is the detail endpoint payload
type ShowDTO struct {
	ID          flexString  `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
	Genres      genreList   `json:"genres"`
	GenreIDs    genreList   `json:"genre_ids"`
	Updated     string      `json:"updated"`
	Seasons     []SeasonDTO `json:"seasons"`
}

// SeasonDTO is a season inside ShowDTO
type SeasonDTO struct {
	Season   int          `json:"season"`
	Title    string       `json:"title"`
	Image    string       `json:"image"`
	Episodes []EpisodeDTO `json:"episodes"`
}

// EpisodeDTO is an episode inside SeasonDTO
type EpisodeDTO struct {
	Episode     int    `json:"episode"`
	Title       string `json:"title"`
	Description string `json:"description"`
	File        string `json:"file"`
	Date        string `json:"date,omitempty"`
}

// flexString accepts a JSON string or number
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*f = flexString(n.String())
	return nil
}

// genreList accepts genre ids as numbers or numeric strings. The detail
// endpoint sometimes sends genre titles instead; those land in Labels.
type genreList struct {
	IDs    []int
	Labels []string
}

func (g *genreList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("genres must be an array: %w", err)
	}
	for _, item := range raw {
		var n int
		if err := json.Unmarshal(item, &n); err == nil {
			g.IDs = append(g.IDs, n)
			continue
		}
		var s string
		if err := json.Unmarshal(item, &s); err != nil {
			return fmt.Errorf("genre entry %s is neither number nor string", string(item))
		}
		s = strings.TrimSpace(s)
		if n, err := strconv.Atoi(s); err == nil {
			g.IDs = append(g.IDs, n)
		} else if s != "" {
			g.Labels = append(g.Labels, s)
		}
	}
	return nil
}

// merge prefers the "genres" key and falls back to "genre_ids"
func mergeGenres(primary, fallback genreList) genreList {
	if len(primary.IDs) > 0 || len(primary.Labels) > 0 {
		return primary
	}
	return fallback
}
