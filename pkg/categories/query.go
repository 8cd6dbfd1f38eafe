package categories

import (
	"bufio"
	"io"
	"strings"

	"github.com/agentstation/marquee/pkg/constants"
	"github.com/agentstation/marquee/pkg/drivers"
	"github.com/agentstation/marquee/pkg/errors"
	"github.com/agentstation/marquee/pkg/logging"
)

// Query returns the drivers listed in the category that starts at offset
// in file. Names the registry cannot resolve are skipped. When the file
// cannot be opened, or seeking does not land exactly on offset because the
// file changed since indexing, the result is empty.
func (x *Index) Query(file File, offset int64) drivers.Set {
	result := drivers.NewSet()

	f, err := x.fs.Open(file.Name)
	if err != nil {
		logging.Error().
			Err(errors.WrapIO("open", file.Name, err)).
			Msg("Failed to open category file for reading")
		return result
	}
	defer f.Close()

	pos, err := f.Seek(offset, io.SeekStart)
	if err != nil || pos != offset {
		stale := errors.NewStaleIndexError(file.Name, offset, pos)
		logging.Error().
			Err(errors.Join(stale, err)).
			Str("category_file", file.Name).
			Int64("offset", offset).
			Msg("Failed to seek to category offset")
		return result
	}

	br := bufio.NewReader(f)
	for {
		line, err := br.ReadString('\n')
		if line == "" || line[0] == constants.SectionOpen {
			break
		}
		if d, ok := x.registry.Find(strings.TrimRight(line, "\r\n")); ok {
			result.Add(d)
		}
		if err != nil {
			break
		}
	}
	return result
}

// QueryCategory resolves file and category by name and queries them.
func (x *Index) QueryCategory(file, category string) (drivers.Set, error) {
	f, c, ok := x.Lookup(file, category)
	if !ok {
		return nil, errors.NewNotFoundError("category", file+"/"+category)
	}
	return x.Query(f, c.Offset), nil
}
