package categories

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/marquee"
	"github.com/agentstation/marquee/internal/cmd/application"
	"github.com/agentstation/marquee/pkg/drivers"
	"github.com/agentstation/marquee/pkg/errors"
	"github.com/agentstation/marquee/pkg/logging"
)

func testApp(t *testing.T, format string) *application.Mock {
	t.Helper()
	logging.DisableLoggingForTest(t)

	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("folders", 0o755))
	require.NoError(t, afero.WriteFile(fsys, "folders/genre.ini", []byte("[Maze]\npacman\nmspacman\n[Action]\npacman\n"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "folders/year.ini", []byte("[1980]\npacman\n"), 0o644))

	fe, err := marquee.New(
		marquee.WithFs(fsys),
		marquee.WithDrivers(drivers.NewCatalog(
			drivers.Driver{Name: "pacman", FullName: "Pac-Man", Year: "1980"},
			drivers.Driver{Name: "mspacman", FullName: "Ms. Pac-Man", Year: "1981"},
		)),
	)
	require.NoError(t, err)

	return &application.Mock{
		FrontendFunc:     func() (*marquee.Frontend, error) { return fe, nil },
		OutputFormatFunc: func() string { return format },
	}
}

func run(t *testing.T, app *application.Mock, args ...string) (string, error) {
	t.Helper()
	cmd := NewCommand(app)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCategoriesListFiles(t *testing.T) {
	out, err := run(t, testApp(t, "json"))
	require.NoError(t, err)

	var files []struct {
		File       string `json:"file"`
		Categories []struct {
			Name string `json:"name"`
		} `json:"categories"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &files))
	require.Len(t, files, 2)
	assert.Equal(t, "genre.ini", files[0].File)
	assert.Equal(t, "Action", files[0].Categories[0].Name)
	assert.Equal(t, "year.ini", files[1].File)
}

func TestCategoriesOfFile(t *testing.T) {
	out, err := run(t, testApp(t, "table"), "genre.ini")
	require.NoError(t, err)
	assert.Contains(t, out, "Action")
	assert.Contains(t, out, "Maze")

	_, err = run(t, testApp(t, "table"), "missing.ini")
	assert.True(t, errors.IsNotFound(err))
}

func TestCategoriesShow(t *testing.T) {
	out, err := run(t, testApp(t, "json"), "show", "genre.ini", "Maze")
	require.NoError(t, err)

	var systems []drivers.Driver
	require.NoError(t, json.Unmarshal([]byte(out), &systems))
	require.Len(t, systems, 2)
	assert.Equal(t, "mspacman", systems[0].Name)
	assert.Equal(t, "pacman", systems[1].Name)

	_, err = run(t, testApp(t, "json"), "show", "genre.ini", "Shooter")
	assert.True(t, errors.IsNotFound(err))
}
