package favorites

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"github.com/agentstation/marquee/pkg/constants"
	"github.com/agentstation/marquee/pkg/drivers"
	"github.com/agentstation/marquee/pkg/errors"
	"github.com/agentstation/marquee/pkg/logging"
	"github.com/agentstation/marquee/pkg/softlists"
)

// Encode writes the favorites file header followed by one sixteen-line
// record per entry.
func Encode(w io.Writer, entries []*Entry) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(constants.FavoritesHeader); err != nil {
		return err
	}
	for _, e := range entries {
		for _, field := range record(e) {
			bw.WriteString(field)
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}

// record lays out the persisted fields of e. Line breaks inside a field
// would shift every later record, so they are flattened to spaces.
func record(e *Entry) [constants.FavoriteFields]string {
	return [constants.FavoriteFields]string{
		flatten(e.ShortName),
		flatten(e.LongName),
		flatten(e.ParentName),
		flatten(e.Year),
		flatten(e.Publisher),
		strconv.Itoa(int(e.Support)),
		flatten(e.Part),
		flatten(e.DriverName),
		flatten(e.ListName),
		flatten(e.Interface),
		flatten(e.Instance),
		boolField(e.StartEmpty),
		flatten(e.ParentLongName),
		"", // reserved
		flatten(e.DeviceType),
		boolField(e.Available),
	}
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

func flatten(s string) string {
	if strings.ContainsAny(s, "\r\n") {
		return lineBreaks.Replace(s)
	}
	return s
}

func boolField(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// Decode reads a favorites file. Records naming a driver reg cannot
// resolve are dropped, as is a trailing record cut short.
func Decode(r io.Reader, reg drivers.Registry) ([]*Entry, error) {
	lr := lineReader{r: bufio.NewReader(r)}

	// Header lines start with '[' and are followed by one separator line.
	line, ok := lr.next()
	for ok && strings.HasPrefix(line, string(constants.SectionOpen)) {
		line, ok = lr.next()
	}

	var entries []*Entry
	for n := 1; ; n++ {
		var fields [constants.FavoriteFields]string
		for i := range fields {
			if fields[i], ok = lr.next(); !ok {
				if i > 0 {
					logging.Debug().Int("record", n).Int("fields", i).Msg("Dropping truncated favorite record")
				}
				return entries, lr.err
			}
		}

		e, resolved := fromRecord(fields, reg)
		if !resolved {
			logging.Debug().Int("record", n).Str("driver", fields[7]).Msg("Dropping favorite for unknown driver")
			continue
		}
		entries = append(entries, e)
	}
}

func fromRecord(f [constants.FavoriteFields]string, reg drivers.Registry) (*Entry, bool) {
	d, ok := reg.Find(f[7])
	if !ok {
		return nil, false
	}
	e := &Entry{
		ShortName:      f[0],
		LongName:       f[1],
		ParentName:     f[2],
		Year:           f[3],
		Publisher:      f[4],
		Support:        supportField(f[5]),
		Part:           f[6],
		DriverName:     d.Name,
		Driver:         d,
		ListName:       f[8],
		Interface:      f[9],
		Instance:       f[10],
		StartEmpty:     intField(f[11]) != 0,
		ParentLongName: f[12],
		DeviceType:     f[14],
		Available:      intField(f[15]) != 0,
	}
	e.InfoText = infoText(e)
	return e, true
}

// intField parses a leading decimal number, yielding 0 when there is none.
func intField(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

func supportField(s string) softlists.SupportStatus {
	status := softlists.SupportStatus(intField(s))
	if !status.Valid() {
		return softlists.Supported
	}
	return status
}

// lineReader yields lines with trailing line endings removed.
type lineReader struct {
	r    *bufio.Reader
	err  error
	done bool
}

func (lr *lineReader) next() (string, bool) {
	if lr.done {
		return "", false
	}
	line, err := lr.r.ReadString('\n')
	if err != nil {
		lr.done = true
		if err != io.EOF {
			lr.err = err
		}
		if line == "" {
			return "", false
		}
	}
	return strings.TrimRight(line, "\r\n"), true
}

// load reads the store's file. A missing file is an empty store. Open and
// read failures are logged and leave whatever was decoded before them.
func (s *Store) load() {
	f, err := s.fs.Open(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Error().
				Err(errors.WrapIO("open", s.path, err)).
				Msg("Failed to open favorites file")
		}
		return
	}
	defer f.Close()

	entries, err := Decode(f, s.drivers)
	for _, e := range entries {
		s.set.Insert(e)
	}
	if err != nil {
		logging.Error().
			Err(errors.WrapIO("read", s.path, err)).
			Int("favorites", s.set.Len()).
			Msg("Failed to read favorites file")
		return
	}
	logging.Debug().Str("path", s.path).Int("favorites", s.set.Len()).Msg("Loaded favorites")
}

// Save rewrites the favorites file from scratch, or deletes it when there
// are no favorites.
func (s *Store) Save() error {
	if s.set.Len() == 0 {
		if err := s.fs.Remove(s.path); err != nil && !os.IsNotExist(err) {
			return errors.WrapIO("delete", s.path, err)
		}
		return nil
	}

	var buf bytes.Buffer
	if err := Encode(&buf, s.set.Entries()); err != nil {
		return errors.WrapIO("write", s.path, err)
	}
	if err := s.fs.MkdirAll(filepath.Dir(s.path), constants.DirPermissions); err != nil {
		return errors.WrapIO("create", filepath.Dir(s.path), err)
	}
	if err := afero.WriteFile(s.fs, s.path, buf.Bytes(), constants.FilePermissions); err != nil {
		return errors.WrapIO("write", s.path, err)
	}
	return nil
}
