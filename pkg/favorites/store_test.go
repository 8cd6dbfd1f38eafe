package favorites

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/marquee/pkg/logging"
	"github.com/agentstation/marquee/pkg/softlists"
)

func openTestStore(t *testing.T, fsys afero.Fs, opts ...Option) *Store {
	t.Helper()
	s, err := Open(fsys, "ui", testDrivers(), opts...)
	require.NoError(t, err)
	return s
}

func TestOpenMissingFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	s := openTestStore(t, fsys)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, "ui/favorites.ini", s.Path())

	exists, err := afero.Exists(fsys, "ui/favorites.ini")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestOpenLoadsExistingFile(t *testing.T) {
	logging.DisableLoggingForTest(t)

	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("ui", 0o755))
	require.NoError(t, afero.WriteFile(fsys, "ui/favorites.ini", []byte("[ROOT_FOLDER]\n[Favorite]\n\n"+pacmanRecord), 0o644))

	s := openTestStore(t, fsys)
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.IsFavoriteSystem(mustDriver(t, testDrivers(), "pacman")))
}

// deniedFs refuses to open one path.
type deniedFs struct {
	afero.Fs
	path string
}

func (fs deniedFs) Open(name string) (afero.File, error) {
	if filepath.Clean(name) == fs.path {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
	}
	return fs.Fs.Open(name)
}

// failingFs serves files whose reads fail after limit bytes.
type failingFs struct {
	afero.Fs
	limit int
}

func (fs failingFs) Open(name string) (afero.File, error) {
	f, err := fs.Fs.Open(name)
	if err != nil {
		return nil, err
	}
	return &failingFile{File: f, left: fs.limit}, nil
}

type failingFile struct {
	afero.File
	left int
}

func (f *failingFile) Read(p []byte) (int, error) {
	if f.left <= 0 {
		return 0, os.ErrDeadlineExceeded
	}
	if len(p) > f.left {
		p = p[:f.left]
	}
	n, err := f.File.Read(p)
	f.left -= n
	return n, err
}

func TestOpenUnreadableFile(t *testing.T) {
	logs := logging.CaptureLoggingForTest(t)

	base := afero.NewMemMapFs()
	require.NoError(t, base.MkdirAll("ui", 0o755))
	require.NoError(t, afero.WriteFile(base, "ui/favorites.ini", []byte("[ROOT_FOLDER]\n[Favorite]\n\n"+pacmanRecord), 0o644))

	s, err := Open(deniedFs{Fs: base, path: "ui/favorites.ini"}, "ui", testDrivers())
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, 0, s.Len())
	assert.True(t, logs.Contains("Failed to open favorites file"))
	assert.True(t, logs.Contains("permission denied"))
}

func TestOpenKeepsRecordsReadBeforeFailure(t *testing.T) {
	logs := logging.CaptureLoggingForTest(t)

	head := "[ROOT_FOLDER]\n[Favorite]\n\n" + pacmanRecord
	base := afero.NewMemMapFs()
	require.NoError(t, base.MkdirAll("ui", 0o755))
	require.NoError(t, afero.WriteFile(base, "ui/favorites.ini", []byte(head+"galaga\nGalaga\n"), 0o644))

	s, err := Open(failingFs{Fs: base, limit: len(head) + 4}, "ui", testDrivers())
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.IsFavoriteSystem(mustDriver(t, testDrivers(), "pacman")))
	assert.True(t, logs.Contains("Failed to read favorites file"))
}

func TestStorePersistsEveryMutation(t *testing.T) {
	logging.DisableLoggingForTest(t)

	fsys := afero.NewMemMapFs()
	s := openTestStore(t, fsys)
	pacman := mustDriver(t, s.drivers, "pacman")

	require.True(t, s.AddSystem(pacman))
	data, err := afero.ReadFile(fsys, "ui/favorites.ini")
	require.NoError(t, err)
	assert.Equal(t, "[ROOT_FOLDER]\n[Favorite]\n\n"+pacmanRecord, string(data))

	require.True(t, s.RemoveSystem(pacman))
	exists, err := afero.Exists(fsys, "ui/favorites.ini")
	require.NoError(t, err)
	assert.False(t, exists, "empty favorites delete the file")

	reopened := openTestStore(t, fsys)
	assert.Equal(t, 0, reopened.Len())
}

func TestStoreAddIsIdempotent(t *testing.T) {
	logging.DisableLoggingForTest(t)

	s := openTestStore(t, afero.NewMemMapFs())
	pacman := mustDriver(t, s.drivers, "pacman")

	assert.True(t, s.AddSystem(pacman))
	assert.False(t, s.AddSystem(pacman))
	assert.Equal(t, 1, s.Len())
	assert.False(t, s.AddSystem(nil))
}

func TestStoreRemoveAddContains(t *testing.T) {
	logging.DisableLoggingForTest(t)

	s := openTestStore(t, afero.NewMemMapFs())
	galaga := mustDriver(t, s.drivers, "galaga")

	assert.False(t, s.RemoveSystem(galaga))
	s.AddSystem(galaga)
	assert.True(t, s.Contains(SystemKey(galaga)))
	assert.True(t, s.RemoveSystem(galaga))
	assert.False(t, s.Contains(SystemKey(galaga)))
	s.AddSystem(galaga)
	assert.True(t, s.Contains(SystemKey(galaga)))
}

func TestStoreSoftwareLookups(t *testing.T) {
	logging.DisableLoggingForTest(t)

	fsys := afero.NewMemMapFs()
	s := openTestStore(t, fsys)
	nes := mustDriver(t, s.drivers, "nes")
	famicom := mustDriver(t, s.drivers, "famicom")

	smb := NewSoftwareEntry(softlists.Software{ShortName: "smb", LongName: "Super Mario Bros."}, softlists.Part{Name: "cart"}, famicom, "nes", "cartridge", "cart")
	require.True(t, s.AddSoftware(smb))

	onNES := smb
	onNES.Driver = nes
	onNES.DriverName = "nes"

	assert.True(t, s.IsFavoriteSoftware(onNES), "same item on another driver")
	assert.False(t, s.IsFavoriteSystemSoftware(onNES))
	assert.True(t, s.IsFavoriteSystemSoftware(smb))
	assert.False(t, s.IsFavoriteSystem(famicom), "software favorite is not a system favorite")

	other := smb
	other.ShortName = "zelda"
	assert.False(t, s.IsFavoriteSoftware(other))

	// Entries before and after in key order must not confuse the neighbour search.
	s.AddSystem(mustDriver(t, s.drivers, "pacman"))
	s.AddSoftware(Entry{ShortName: "aaa", ListName: "nes", DriverName: "nes"})
	s.AddSoftware(Entry{ShortName: "zzz", ListName: "nes", DriverName: "nes"})
	assert.True(t, s.IsFavoriteSoftware(onNES))
	assert.False(t, s.IsFavoriteSoftware(other))

	assert.True(t, s.RemoveSoftware(smb))
	assert.False(t, s.IsFavoriteSoftware(onNES))
}

func TestStoreAddSoftwareResolvesDriver(t *testing.T) {
	logging.DisableLoggingForTest(t)

	s := openTestStore(t, afero.NewMemMapFs())
	assert.False(t, s.AddSoftware(Entry{ShortName: "x", ListName: "nes", DriverName: "nosuch"}))

	require.True(t, s.AddSoftware(Entry{ShortName: "smb", LongName: "Super Mario Bros.", ListName: "nes", DriverName: "nes"}))
	e, ok := s.Find(SoftwareKey(mustDriver(t, s.drivers, "nes"), "nes", "smb"))
	require.True(t, ok)
	assert.NotNil(t, e.Driver)
	assert.Equal(t, "Super Mario Bros.\nSoftware list/item\nnes:smb", e.InfoText)
}

func TestStoreEntriesForDisplay(t *testing.T) {
	logging.DisableLoggingForTest(t)

	s := openTestStore(t, afero.NewMemMapFs())
	nes := mustDriver(t, s.drivers, "nes")
	for _, name := range []string{"Zeta", "Alpha", "Mu"} {
		s.AddSoftware(Entry{ShortName: name, LongName: name, ListName: "nes", DriverName: "nes", Driver: nes})
	}

	longNames := func() []string {
		var names []string
		for _, e := range s.EntriesForDisplay() {
			names = append(names, e.LongName)
		}
		return names
	}
	assert.Equal(t, []string{"Alpha", "Mu", "Zeta"}, longNames())

	s.AddSoftware(Entry{ShortName: "beta", LongName: "beta", ListName: "nes", DriverName: "nes", Driver: nes})
	assert.Equal(t, []string{"Alpha", "beta", "Mu", "Zeta"}, longNames())

	s.RemoveSoftware(Entry{ShortName: "Mu", ListName: "nes", DriverName: "nes"})
	assert.Equal(t, []string{"Alpha", "beta", "Zeta"}, longNames())
}

func TestStoreSaveFailureKeepsMemoryState(t *testing.T) {
	tl := logging.CaptureLoggingForTest(t)

	s := openTestStore(t, afero.NewReadOnlyFs(afero.NewMemMapFs()))
	galaga := mustDriver(t, s.drivers, "galaga")

	assert.True(t, s.AddSystem(galaga))
	assert.True(t, s.IsFavoriteSystem(galaga))
	assert.Error(t, s.Save())
	assert.True(t, tl.Contains("Failed to save favorites"))
}

func TestStoreRunningSession(t *testing.T) {
	logging.DisableLoggingForTest(t)

	lists := softlists.NewCatalog(softlists.List{
		Name: "nes",
		Software: []softlists.Software{
			{ShortName: "smb3j", LongName: "Super Mario Bros. 3 (Japan)"},
			{ShortName: "smb3", LongName: "Super Mario Bros. 3", Parent: "smb3j"},
			{ShortName: "zelda", LongName: "The Legend of Zelda"},
		},
	})
	s := openTestStore(t, afero.NewMemMapFs(), WithSoftwareLists(lists))
	nes := mustDriver(t, s.drivers, "nes")

	smb3, _ := lists.FindSoftware("nes", "smb3")
	zelda, _ := lists.FindSoftware("nes", "zelda")
	cart := &softlists.Part{Name: "cart", Interface: "nes_cart"}

	running := StaticSession{
		Driver: nes,
		Mounted: []MountedImage{
			{Exists: false, FromSoftwareList: true, ListName: "nes", Software: zelda, Part: cart},
			{Exists: true, FromSoftwareList: false, ListName: "nes", Software: zelda, Part: cart},
			{Exists: true, FromSoftwareList: true, ListName: "nes", Instance: "cartridge", TypeName: "cart", Software: smb3, Part: cart},
		},
	}

	assert.False(t, s.IsFavoriteRunning(running))
	assert.Equal(t, 1, s.AddRunning(running))
	assert.Equal(t, 0, s.AddRunning(running))
	assert.True(t, s.IsFavoriteRunning(running))
	assert.False(t, s.IsFavoriteSystem(nes))

	e, ok := s.Find(SoftwareKey(nes, "nes", "smb3"))
	require.True(t, ok)
	assert.True(t, e.Available)
	assert.Equal(t, "Super Mario Bros. 3 (Japan)", e.ParentLongName)
	assert.Equal(t, "nes_cart", e.Interface)
	assert.Equal(t, "cartridge", e.Instance)
	assert.Equal(t, "cart", e.DeviceType)

	assert.True(t, s.RemoveRunning(running))
	assert.False(t, s.RemoveRunning(running))
	assert.Equal(t, 0, s.Len())
}

func TestStoreRunningSessionWithoutSoftware(t *testing.T) {
	logging.DisableLoggingForTest(t)

	s := openTestStore(t, afero.NewMemMapFs())
	pacman := mustDriver(t, s.drivers, "pacman")
	running := StaticSession{Driver: pacman}

	assert.Equal(t, 1, s.AddRunning(running))
	assert.True(t, s.IsFavoriteSystem(pacman))
	assert.True(t, s.IsFavoriteRunning(running))
	assert.True(t, s.RemoveRunning(running))
	assert.False(t, s.IsFavoriteSystem(pacman))

	assert.Equal(t, 0, s.AddRunning(StaticSession{}))
}

func TestStoreRemoveRunningStopsAtFirstHit(t *testing.T) {
	logging.DisableLoggingForTest(t)

	s := openTestStore(t, afero.NewMemMapFs())
	nes := mustDriver(t, s.drivers, "nes")
	a := &softlists.Software{ShortName: "a", LongName: "A"}
	b := &softlists.Software{ShortName: "b", LongName: "B"}
	running := StaticSession{
		Driver: nes,
		Mounted: []MountedImage{
			{Exists: true, FromSoftwareList: true, ListName: "nes", Software: a},
			{Exists: true, FromSoftwareList: true, ListName: "nes", Software: b},
		},
	}

	require.Equal(t, 2, s.AddRunning(running))
	assert.True(t, s.RemoveRunning(running))
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Contains(SoftwareKey(nes, "nes", "b")))
}

func TestStoreWritesSystemRecordsLast(t *testing.T) {
	logging.DisableLoggingForTest(t)

	fsys := afero.NewMemMapFs()
	s := openTestStore(t, fsys)
	require.True(t, s.AddSystem(mustDriver(t, s.drivers, "pacman")))
	require.True(t, s.AddSoftware(Entry{ShortName: "smb", LongName: "Super Mario Bros.", ListName: "nes", DriverName: "nes"}))

	data, err := afero.ReadFile(fsys, "ui/favorites.ini")
	require.NoError(t, err)
	lines := strings.Split(string(data), "\n")
	require.Greater(t, len(lines), 3+16)

	// Records start after the three header lines, sixteen lines each.
	assert.Equal(t, "smb", lines[3])
	assert.Equal(t, "pacman", lines[3+16])
}
