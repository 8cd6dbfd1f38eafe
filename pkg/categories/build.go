package categories

import (
	"bufio"
	"io"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"

	"github.com/agentstation/marquee/pkg/constants"
	"github.com/agentstation/marquee/pkg/drivers"
	"github.com/agentstation/marquee/pkg/logging"
)

// Build scans dir for category files and indexes every one of them.
// Files that cannot be opened or yield no categories are left out; Build
// itself never fails.
func Build(fsys afero.Fs, dir string, registry drivers.Registry, opts ...Option) *Index {
	x := indexDefaults()
	for _, opt := range opts {
		opt(x)
	}
	x.fs = scopedFs(fsys, dir)
	x.registry = registry
	if x.registry == nil {
		x.registry = drivers.NewCatalog()
	}

	names, err := doublestar.Glob(afero.NewIOFS(x.fs), "*")
	if err != nil {
		logging.Warn().Err(err).Str("dir", dir).Msg("Failed to scan category directory")
		return x
	}

	for _, name := range names {
		if !hasExtension(name, x.extension) {
			continue
		}
		file, ok := x.indexFile(name)
		if !ok {
			continue
		}
		x.files = append(x.files, file)
	}
	x.collator.sortFiles(x.files)

	logging.Debug().
		Str("dir", dir).
		Int("files", len(x.files)).
		Msg("Built category index")
	return x
}

// hasExtension reports whether name ends in ext, ignoring case.
func hasExtension(name, ext string) bool {
	return strings.HasSuffix(strings.ToLower(name), strings.ToLower(ext))
}

// scopedFs roots fsys at dir so file names in the index are relative to it.
func scopedFs(fsys afero.Fs, dir string) afero.Fs {
	if dir == "" || dir == "." {
		return fsys
	}
	return afero.NewBasePathFs(fsys, dir)
}

// indexFile records every category header of one file.
func (x *Index) indexFile(name string) (File, bool) {
	f, err := x.fs.Open(name)
	if err != nil {
		logging.Debug().Err(err).Str("category_file", name).Msg("Skipping unreadable category file")
		return File{}, false
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil && info.IsDir() {
		return File{}, false
	}

	categories := scanHeaders(f)
	if len(categories) == 0 {
		return File{}, false
	}
	x.collator.sortCategories(categories)
	return File{Name: name, Categories: categories}, true
}

// scanHeaders reads r line by line and returns the categories in discovery order.
func scanHeaders(r io.Reader) []Category {
	var (
		categories []Category
		pos        int64
	)
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		pos += int64(len(line))
		if len(line) > 0 && line[0] == constants.SectionOpen {
			if name := headerName(line); name != constants.FolderSettings {
				categories = append(categories, Category{Name: name, Offset: pos})
			}
		}
		if err != nil {
			if err != io.EOF {
				logging.Debug().Err(err).Msg("Stopped reading category file early")
			}
			return categories
		}
	}
}

// headerName returns the text after the opening marker up to the closing
// marker, or up to the end of the line when there is none.
func headerName(line string) string {
	name := strings.TrimRight(line[1:], "\r\n")
	if end := strings.IndexByte(name, constants.SectionClose); end >= 0 {
		name = name[:end]
	}
	return name
}
