package launchbox

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"lbimport/core/codec"
	"lbimport/core/reconcile"
	"lbimport/core/storage"
	"lbimport/core/utils"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/ianaindex"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Adapter implements the reconcile.Adapter interface for LaunchBox XML exports.
type Adapter struct {
	path string

	mu    sync.Mutex
	stats Stats
}

// NewAdapter creates an adapter reading the export at path.
func NewAdapter(path string) *Adapter {
	return &Adapter{path: path}
}

// Name returns the unique name of this adapter.
func (a *Adapter) Name() string {
	return "launchbox"
}

// Path returns the export path.
func (a *Adapter) Path() string {
	return a.path
}

// Stats returns the counters of the last LoadEntries call.
func (a *Adapter) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stats
}

// LoadEntries reads the export and converts every titled game to an entry.
func (a *Adapter) LoadEntries(ctx context.Context, client storage.Client) ([]reconcile.Entry, error) {
	data, err := client.ReadFile(ctx, a.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read launchbox export: %w", err)
	}

	entries, stats, err := Parse(data)
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	a.stats = stats
	a.mu.Unlock()

	return entries, nil
}

// Parse decodes an export already in memory.
func Parse(data []byte) ([]reconcile.Entry, Stats, error) {
	var stats Stats

	dec := xml.NewDecoder(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	dec.CharsetReader = charsetReader

	entries := make([]reconcile.Entry, 0)
	byTitle := make(map[string]int)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, stats, fmt.Errorf("failed to parse launchbox XML: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "Game" {
			continue
		}

		var game gameXML
		if err := dec.DecodeElement(&game, &start); err != nil {
			return nil, stats, fmt.Errorf("failed to parse launchbox game %d: %w", stats.Games+1, err)
		}
		stats.Games++

		entry, ok := toEntry(game, &stats)
		if !ok {
			stats.Untitled++
			continue
		}

		if i, seen := byTitle[entry.Title]; seen {
			entries[i] = entry
			stats.Duplicates++
			continue
		}
		byTitle[entry.Title] = len(entries)
		entries = append(entries, entry)
	}

	stats.Entries = len(entries)
	return entries, stats, nil
}

func toEntry(g gameXML, stats *Stats) (reconcile.Entry, bool) {
	title := strings.TrimSpace(g.Title)
	if title == "" {
		return reconcile.Entry{}, false
	}

	var id int32
	if raw := strings.TrimSpace(g.DatabaseID); raw != "" {
		n, ok := utils.ToInt32(raw)
		if !ok {
			stats.InvalidIDs++
		}
		id = n
	}

	guid := codec.Truncate(strings.TrimSpace(g.ID), codec.GUIDLen)
	if guid != "" {
		if _, err := uuid.Parse(guid); err != nil {
			stats.InvalidGUIDs++
		}
	}

	return reconcile.Entry{
		Title:      title,
		Publisher:  codec.Truncate(strings.TrimSpace(g.Publisher), codec.PublisherLen),
		Year:       codec.Truncate(strings.TrimSpace(g.ReleaseDate), codec.YearLen),
		Genre:      utils.FirstSegment(g.Genre, ";"),
		DatabaseID: id,
		GUID:       guid,
	}, true
}

// charsetReader decodes exports declaring a non UTF-8 encoding.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported charset %q: %w", label, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported charset %q", label)
	}
	return enc.NewDecoder().Reader(input), nil
}
