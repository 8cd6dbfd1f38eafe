package favorites

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/marquee/pkg/drivers"
	"github.com/agentstation/marquee/pkg/logging"
	"github.com/agentstation/marquee/pkg/softlists"
)

func testDrivers() *drivers.Catalog {
	return drivers.NewCatalog(
		drivers.Driver{Name: "pacman", FullName: "Pac-Man (Midway)", Parent: "puckman", Year: "1980", Manufacturer: "Namco (Midway license)"},
		drivers.Driver{Name: "nes", FullName: "Nintendo Entertainment System / Famicom", Year: "1985", Manufacturer: "Nintendo"},
		drivers.Driver{Name: "famicom", FullName: "Famicom", Year: "1983", Manufacturer: "Nintendo"},
		drivers.Driver{Name: "galaga", FullName: "Galaga", Year: "1981", Manufacturer: "Namco"},
	)
}

func mustDriver(t *testing.T, reg drivers.Registry, name string) *drivers.Driver {
	t.Helper()
	d, ok := reg.Find(name)
	require.True(t, ok, "driver %s", name)
	return d
}

const pacmanRecord = "pacman\nPac-Man (Midway)\npuckman\n1980\nNamco (Midway license)\n0\n\npacman\n\n\n\n1\n\n\n\n0\n"

func TestEncodeSystemFavorite(t *testing.T) {
	reg := testDrivers()
	e := NewSystemEntry(mustDriver(t, reg, "pacman"))

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, []*Entry{&e}))
	assert.Equal(t, "[ROOT_FOLDER]\n[Favorite]\n\n"+pacmanRecord, buf.String())
	assert.Equal(t, 3+16, strings.Count(buf.String(), "\n"))
}

func TestEncodeFlattensLineBreaks(t *testing.T) {
	e := &Entry{ShortName: "smb", LongName: "Super\nMario\r\nBros.", DriverName: "nes", ListName: "nes"}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, []*Entry{e}))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3+16)
	assert.Equal(t, "Super Mario Bros.", lines[4])
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	logging.DisableLoggingForTest(t)

	reg := testDrivers()
	nes := mustDriver(t, reg, "nes")
	system := NewSystemEntry(mustDriver(t, reg, "galaga"))
	software := NewSoftwareEntry(
		softlists.Software{ShortName: "smb3", LongName: "Super Mario Bros. 3", Parent: "smb3j", Year: "1990", Publisher: "Nintendo", Supported: softlists.PartiallySupported},
		softlists.Part{Name: "cart", Interface: "nes_cart"},
		nes, "nes", "cartridge", "cart",
	)
	software.ParentLongName = "Super Mario Bros. 3 (Japan)"
	software.Available = true

	want := []*Entry{&software, &system}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, want))
	got, err := Decode(&buf, reg)
	require.NoError(t, err)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode(t *testing.T) {
	logging.DisableLoggingForTest(t)
	reg := testDrivers()

	unknown := strings.Replace(pacmanRecord, "\npacman\n\n", "\nnosuchdriver\n\n", 1)
	galaga := strings.ReplaceAll(pacmanRecord, "pacman", "galaga")

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
		{
			name:  "header only",
			input: "[ROOT_FOLDER]\n[Favorite]\n\n",
			want:  nil,
		},
		{
			name:  "single record",
			input: "[ROOT_FOLDER]\n[Favorite]\n\n" + pacmanRecord,
			want:  []string{"pacman"},
		},
		{
			name:  "crlf line endings",
			input: strings.ReplaceAll("[ROOT_FOLDER]\n[Favorite]\n\n"+pacmanRecord, "\n", "\r\n"),
			want:  []string{"pacman"},
		},
		{
			name:  "unknown driver drops only that record",
			input: "[ROOT_FOLDER]\n[Favorite]\n\n" + unknown + galaga,
			want:  []string{"galaga"},
		},
		{
			name:  "truncated trailing record",
			input: "[ROOT_FOLDER]\n[Favorite]\n\n" + galaga + "pacman\nPac-Man\n",
			want:  []string{"galaga"},
		},
		{
			name:  "last line without newline",
			input: "[ROOT_FOLDER]\n[Favorite]\n\n" + strings.TrimSuffix(pacmanRecord, "\n"),
			want:  []string{"pacman"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := Decode(strings.NewReader(tt.input), reg)
			require.NoError(t, err)
			var names []string
			for _, e := range entries {
				names = append(names, e.DriverName)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestDecodeFields(t *testing.T) {
	reg := testDrivers()
	input := "[ROOT_FOLDER]\n[Favorite]\n\n" +
		"smb3\nSuper Mario Bros. 3\nsmb3j\n1990\nNintendo\n1\ncart\nnes\nnes\nnes_cart\ncartridge\n0\nSuper Mario Bros. 3 (Japan)\nignored usage\ncart\n1\n"

	entries, err := Decode(strings.NewReader(input), reg)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, "smb3", e.ShortName)
	assert.Equal(t, softlists.PartiallySupported, e.Support)
	assert.Equal(t, "nes_cart", e.Interface)
	assert.Equal(t, "cartridge", e.Instance)
	assert.False(t, e.StartEmpty)
	assert.True(t, e.Available)
	assert.Equal(t, "cart", e.DeviceType)
	assert.Same(t, mustDriver(t, reg, "nes"), e.Driver)
	assert.Equal(t, "Super Mario Bros. 3\nSoftware list/item\nnes:smb3", e.InfoText)
}

func TestIntField(t *testing.T) {
	tests := map[string]int{
		"":     0,
		"0":    0,
		"1":    1,
		" 2 ":  2,
		"12ab": 12,
		"-1":   -1,
		"x":    0,
	}
	for in, want := range tests {
		assert.Equal(t, want, intField(in), "intField(%q)", in)
	}
	assert.Equal(t, softlists.Supported, supportField("7"))
	assert.Equal(t, softlists.Unsupported, supportField("2"))
}
