package output

import (
	"strconv"

	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentstation/marquee/pkg/categories"
	"github.com/agentstation/marquee/pkg/drivers"
	"github.com/agentstation/marquee/pkg/favorites"
)

var title = cases.Title(language.English)

func headers(names ...string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = title.String(n)
	}
	return out
}

// CategoryFilesData lists indexed category files.
func CategoryFilesData(files []categories.File) Data {
	d := Data{
		Headers:         headers("file", "categories"),
		ColumnAlignment: []tw.Align{tw.AlignLeft, tw.AlignRight},
	}
	for _, f := range files {
		d.Rows = append(d.Rows, []string{f.Name, strconv.Itoa(len(f.Categories))})
	}
	return d
}

// CategoriesData lists the categories of one file.
func CategoriesData(file categories.File) Data {
	d := Data{
		Headers:         headers("category", "offset"),
		ColumnAlignment: []tw.Align{tw.AlignLeft, tw.AlignRight},
	}
	for _, c := range file.Categories {
		d.Rows = append(d.Rows, []string{c.Name, strconv.FormatInt(c.Offset, 10)})
	}
	return d
}

// DriversData lists systems.
func DriversData(list []*drivers.Driver) Data {
	d := Data{Headers: headers("name", "description", "year", "manufacturer")}
	for _, drv := range list {
		d.Rows = append(d.Rows, []string{drv.Name, drv.DisplayName(), drv.Year, drv.Manufacturer})
	}
	return d
}

// FavoritesData lists favorites in the order given.
func FavoritesData(entries []favorites.Entry) Data {
	d := Data{Headers: headers("name", "system", "list", "software", "year", "support")}
	for _, e := range entries {
		d.Rows = append(d.Rows, []string{
			e.LongName,
			e.DriverDisplayName(),
			e.ListName,
			softwareName(e),
			e.Year,
			e.Support.String(),
		})
	}
	return d
}

func softwareName(e favorites.Entry) string {
	if e.IsSystem() {
		return ""
	}
	return e.ShortName
}
