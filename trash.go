package desktopentry

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gopasspw/gopass/pkg/appdir"
	"github.com/gopasspw/gopass/pkg/debug"
)

const (
	// TrashInfoGroup is the well-known group header of trash info files.
	TrashInfoGroup = "Trash Info"

	deletionDateLayout = "2006-01-02T15:04:05"
)

// TrashInfo maps the `[Trash Info]` group of a freedesktop trash info
// file onto a path and a deletion timestamp.
//
// It retains the document it was read from, so converting back with
// Document preserves every comment, blank run and unrelated entry of the
// original file and only touches the first Path and DeletionDate
// entries.
type TrashInfo struct {
	doc *Document

	// Path of the trashed file.
	Path string
	// DeletionDate of the trashed file, second precision, no zone.
	DeletionDate time.Time
}

// NewTrashInfo creates a trash info record for a freshly trashed file.
// The path goes through the ASCII sanitizer at the call site, so the
// resulting entry is guaranteed to serialize cleanly.
func NewTrashInfo(path ASCIIString, deletedAt time.Time) *TrashInfo {
	return &TrashInfo{
		Path:         path.String(),
		DeletionDate: deletedAt,
	}
}

// TrashInfoFrom extracts the trash info record from a parsed document.
//
// The document must contain a `[Trash Info]` group with both a Path and
// a DeletionDate entry; a missing group or key fails with a
// *NotFoundError naming it. A DeletionDate that does not parse under
// `YYYY-MM-DDThh:mm:ss` fails with a *DateError.
func TrashInfoFrom(doc *Document) (*TrashInfo, error) {
	group, err := doc.Require(TrashInfoGroup)
	if err != nil {
		return nil, err
	}

	rawDate, err := group.Require("DeletionDate")
	if err != nil {
		return nil, err
	}

	rawPath, err := group.Require("Path")
	if err != nil {
		return nil, err
	}

	date, err := time.Parse(deletionDateLayout, rawDate.Value())
	if err != nil {
		return nil, &DateError{Err: err}
	}

	return &TrashInfo{
		doc:          doc,
		Path:         rawPath.Value(),
		DeletionDate: date,
	}, nil
}

// Document converts the record back into a document.
//
// An existing `[Trash Info]` group is edited in place: the first Path
// and the first DeletionDate entry get their value replaced, everything
// else in the group, including duplicates and comments, stays untouched
// and in its original position. Missing entries are appended to the
// group; a missing group is appended at the end of the document.
func (t *TrashInfo) Document() *Document {
	doc := t.doc
	if doc == nil {
		doc = &Document{}
	}

	group := doc.GetOrInsertGroup(TrashInfoGroup)
	group.GetOrInsert("Path").Values = []string{t.Path}
	group.GetOrInsert("DeletionDate").Values = []string{t.DeletionDate.Format(deletionDateLayout)}

	return doc
}

// TrashInfoDir returns the per-user trash info directory,
// $XDG_DATA_HOME/Trash/info by default.
func TrashInfoDir() string {
	return filepath.Join(appdir.New("Trash").UserData(), "info")
}

// LoadTrashInfo reads and parses a trash info file from the given path.
func LoadTrashInfo(fn string) (*TrashInfo, error) {
	content, err := os.ReadFile(fn)
	if err != nil {
		return nil, err
	}

	doc, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", fn, err)
	}

	debug.V(1).Log("loaded trash info from %s", fn)

	return TrashInfoFrom(doc)
}

// Write renders the record and persists it to the given path, creating
// the parent directory if needed.
func (t *TrashInfo) Write(fn string) error {
	if err := os.MkdirAll(filepath.Dir(fn), 0o700); err != nil {
		return fmt.Errorf("%w %q for %q: %v", ErrCreateTrashDir, filepath.Dir(fn), fn, err)
	}

	if err := os.WriteFile(fn, []byte(t.Document().String()), 0o600); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteTrashInfo, fn, err)
	}

	debug.V(1).Log("wrote trash info to %s", fn)

	return nil
}
