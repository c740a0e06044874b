package soundboard

import (
	"context"
	"fmt"

	"github.com/lendres/go-vs1000/protocol"
)

// DefaultCatalogCapacity is the default cap on file listing entries,
// matching the stock firmware's track table.
const DefaultCatalogCapacity = 25

// Catalog is the cached result of the most recent file listing.
type Catalog struct {
	entries []protocol.FileEntry
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entry returns the catalog entry at index i.
func (c *Catalog) Entry(i int) (protocol.FileEntry, bool) {
	if i < 0 || i >= len(c.entries) {
		return protocol.FileEntry{}, false
	}
	return c.entries[i], true
}

// Find returns the index of the entry with the given name.
func (c *Catalog) Find(name string) (int, bool) {
	for i, entry := range c.entries {
		if entry.Name == name {
			return i, true
		}
	}
	return 0, false
}

// ListFiles queries the board for its file listing and rebuilds the
// cached catalog.
//
// Records arrive one per line and the listing ends with an empty line.
// Lines that do not parse as records, such as the firmware's own command
// echo, are logged and skipped without counting against the capacity cap.
// Once the cap is reached no further lines are read.
func (d *Driver) ListFiles(ctx context.Context) ([]protocol.FileEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := d.ch.send([]byte(protocol.CmdList)); err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}

	entries := make([]protocol.FileEntry, 0, d.config.CatalogCapacity)
	for len(entries) < d.config.CatalogCapacity {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		line, err := d.ch.readLine()
		if err != nil {
			return nil, fmt.Errorf("list: %w", err)
		}
		if len(line) == 0 {
			break
		}

		entry, err := protocol.ParseCatalogRecord(line)
		if err != nil {
			d.logDebug("skipping unparsable list line", "error", err)
			continue
		}
		entries = append(entries, entry)
	}

	d.catalog = Catalog{entries: entries}
	d.logDebug("file listing complete", "entries", len(entries))
	return entries, nil
}

// Catalog returns the catalog from the most recent ListFiles call.
func (d *Driver) Catalog() *Catalog {
	return &d.catalog
}
