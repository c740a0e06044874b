package protocol

// FileEntry is one record from the chip's file listing.
// Returned by ParseCatalogRecord.
type FileEntry struct {
	// Name is the file name with trailing padding removed
	// (at most NameLength characters)
	Name string

	// Size is the file size in bytes
	Size uint32
}
