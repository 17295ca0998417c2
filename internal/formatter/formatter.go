// package formatter provides functions to export track listings to various formats (CSV, Markdown, plain text, JSON)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/emberfm/ember/internal/library"
	"github.com/emberfm/ember/internal/shared"
)

// Listing is an exportable set of tracks: a playlist or a filtered view of
// the catalog.
type Listing struct {
	Name   string
	Source string
	Tracks []library.Track
}

// slug normalizes a listing name into a safe base filename.
func (l Listing) slug() string {
	name := strings.ToLower(strings.TrimSpace(l.Name))
	if name == "" {
		name = "listing"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, name)
}

// ExportToCSV converts a Listing to CSV format with columns: ID, Title, Artist, Album, Duration, Format
func ExportToCSV(listing *Listing) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Artist", "Album", "Duration", "Format"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, track := range listing.Tracks {
		record := []string{
			strconv.FormatInt(track.ID, 10),
			track.Title,
			track.Artist,
			track.Album,
			strconv.FormatInt(track.DurationMillis, 10),
			track.Format,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a Listing to Markdown format
func ExportToMarkdown(listing *Listing) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", listing.Name))

	if listing.Source != "" {
		buf.WriteString(fmt.Sprintf("**Source**: %s\n", listing.Source))
	}
	buf.WriteString(fmt.Sprintf("**Tracks**: %d\n\n", len(listing.Tracks)))

	buf.WriteString("## Tracks\n\n")
	for i, track := range listing.Tracks {
		duration := shared.FormatDuration(track.DurationMillis)
		albumPart := ""
		if track.Album != "" {
			albumPart = fmt.Sprintf(" (%s)", track.Album)
		}
		buf.WriteString(fmt.Sprintf("%d. %s - %s%s [%s]\n", i+1, track.Artist, track.Title, albumPart, duration))
	}

	return buf.Bytes(), nil
}

// ExportToText converts a Listing to plain text format
func ExportToText(listing *Listing) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Listing: %s\n", listing.Name))
	if listing.Source != "" {
		buf.WriteString(fmt.Sprintf("Source: %s\n", listing.Source))
	}
	buf.WriteString(fmt.Sprintf("Tracks: %d\n\n", len(listing.Tracks)))

	for i, track := range listing.Tracks {
		buf.WriteString(fmt.Sprintf("%d. %s - %s\n", i+1, track.Artist, track.Title))
	}

	return buf.Bytes(), nil
}

// ExportToJSON converts a Listing to indented JSON
func ExportToJSON(listing *Listing) ([]byte, error) {
	return shared.MarshalJSON(listing, true)
}

// WriteCSVExport exports a listing to CSV format.
//
// Defaults to the listing slug as the base filename & creates {base}_tracks.csv
func WriteCSVExport(listing *Listing, baseFilepath string) (string, error) {
	if baseFilepath == "" {
		baseFilepath = listing.slug()
	}

	csvData, err := ExportToCSV(listing)
	if err != nil {
		return "", fmt.Errorf("failed to generate CSV: %w", err)
	}

	tracksFile := baseFilepath + "_tracks.csv"
	if err := os.WriteFile(tracksFile, csvData, 0644); err != nil {
		return "", fmt.Errorf("failed to write CSV file: %w", err)
	}

	return tracksFile, nil
}

// WriteMarkdownExport exports a listing to Markdown format.
//
// Defaults to {slug}.md as the filename.
func WriteMarkdownExport(listing *Listing, filepath string) (string, error) {
	if filepath == "" {
		filepath = listing.slug() + ".md"
	}

	mdData, err := ExportToMarkdown(listing)
	if err != nil {
		return "", fmt.Errorf("failed to generate Markdown: %w", err)
	}

	if err := os.WriteFile(filepath, mdData, 0644); err != nil {
		return "", fmt.Errorf("failed to write Markdown file: %w", err)
	}

	return filepath, nil
}

// WriteTextExport exports a listing to plain text format.
//
// Defaults to {slug}_tracks.txt as the filename.
func WriteTextExport(listing *Listing, filepath string) (string, error) {
	if filepath == "" {
		filepath = fmt.Sprintf("%s_tracks.txt", listing.slug())
	}

	textData, err := ExportToText(listing)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if err := os.WriteFile(filepath, textData, 0644); err != nil {
		return "", fmt.Errorf("failed to write text file: %w", err)
	}

	return filepath, nil
}

// WriteJSONExport exports a listing to JSON format.
//
// Defaults to {slug}.json as the filename.
func WriteJSONExport(listing *Listing, filepath string) (string, error) {
	if filepath == "" {
		filepath = listing.slug() + ".json"
	}

	jsonData, err := ExportToJSON(listing)
	if err != nil {
		return "", fmt.Errorf("failed to generate JSON: %w", err)
	}

	if err := os.WriteFile(filepath, jsonData, 0644); err != nil {
		return "", fmt.Errorf("failed to write JSON file: %w", err)
	}

	return filepath, nil
}

// Write exports a listing in the named format ("csv", "markdown", "text",
// "json") and returns the written path.
func Write(listing *Listing, format, path string) (string, error) {
	switch strings.ToLower(format) {
	case "csv":
		return WriteCSVExport(listing, path)
	case "markdown", "md":
		return WriteMarkdownExport(listing, path)
	case "text", "txt":
		return WriteTextExport(listing, path)
	case "json":
		return WriteJSONExport(listing, path)
	}
	return "", fmt.Errorf("%w: unknown export format %q", shared.ErrInvalidArgument, format)
}
