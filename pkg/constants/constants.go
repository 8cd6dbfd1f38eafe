// Package constants provides shared constants used throughout the marquee codebase.
// This includes file names, section markers of the category and favorites
// formats, file permissions and configuration defaults.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Category file constants
const (
	// CategoryExtension is the extension of category definition files
	CategoryExtension = ".ini"

	// SectionOpen starts a section header line
	SectionOpen = '['

	// SectionClose ends a section header name
	SectionClose = ']'

	// FolderSettings is the reserved header that never names a real category
	FolderSettings = "FOLDER_SETTINGS"
)

// Favorites file constants
const (
	// FavoritesFilename is the fixed name of the persisted favorites file
	FavoritesFilename = "favorites.ini"

	// FavoritesHeader is written at the top of the favorites file
	FavoritesHeader = "[ROOT_FOLDER]\n[Favorite]\n\n"

	// FavoriteFields is the number of lines in one persisted favorite record
	FavoriteFields = 16

	// SoftwareInfoLabel labels the list/item line of a favorite's info text
	SoftwareInfoLabel = "Software list/item"
)

// Registry file constants
const (
	// DriversFilename is the default name of the driver registry file
	DriversFilename = "drivers.yaml"

	// SoftwareListsFilename is the default name of the software-list registry file
	SoftwareListsFilename = "softlists.yaml"
)

// Configuration defaults
const (
	// AppName is the command name, used for completion and man page files
	AppName = "marquee"

	// DefaultLocale is the collation locale used when none is configured
	DefaultLocale = "en"

	// DefaultCategoryPath is the default directory scanned for category files
	DefaultCategoryPath = "folders"

	// DefaultUIPath is the default directory holding favorites.ini
	DefaultUIPath = "ui"

	// ConfigName is the base name of the user configuration file
	ConfigName = ".marquee"

	// EnvPrefix prefixes environment variables read by the configuration layer
	EnvPrefix = "MARQUEE"
)
