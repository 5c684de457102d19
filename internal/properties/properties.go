package properties

import "os"

func RootPath() string {
	return os.Getenv("ROOT_PATH")
}

func CopernicusClientID() string {
	return os.Getenv("COPERNICUS_CLIENT_ID")
}

func CopernicusClientSecret() string {
	return os.Getenv("COPERNICUS_CLIENT_SECRET")
}

func CopernicusTokenURL() string {
	if url := os.Getenv("COPERNICUS_TOKEN_URL"); url != "" {
		return url
	}
	return "https://identity.dataspace.copernicus.eu/auth/realms/CDSE/protocol/openid-connect/token"
}

// BoundaryDataset is the GeoJSON file the region filter reads when no
// database is configured.
func BoundaryDataset() string {
	return os.Getenv("BOUNDARY_DATASET")
}

func BoundaryNameProperty() string {
	if property := os.Getenv("BOUNDARY_NAME_PROPERTY"); property != "" {
		return property
	}
	return "ADM2_NAME"
}

// DatabaseURL selects the PostGIS boundary source when set.
func DatabaseURL() string {
	return os.Getenv("DATABASE_URL")
}

func DiscordErrorNotificationUrl() string {
	return os.Getenv("DISCORD_ERROR_NOTIFICATION_URL")
}
func DiscordSuccessNotificationUrl() string {
	return os.Getenv("DISCORD_SUCCESS_NOTIFICATION_URL")
}

type Color struct {
	R, G, B uint8
}

// RampColors spans composite values from bare ground through transition to
// vegetation across [-1, 1].
var RampColors = []Color{
	{255, 0, 0},
	{255, 255, 0},
	{0, 128, 0},
}

// ColorMap colors the class masks on rendered maps.
var ColorMap = map[string]Color{
	"Dense Vegetation":    {0, 100, 0},
	"Moderate Vegetation": {0, 128, 0},
	"Sparse Vegetation":   {255, 165, 0},
	"Built-up / Bare":     {128, 128, 128},
	"unknown":             {255, 0, 0},
}

// PointColorMap colors sample points. Built-up points use red instead of
// the mask gray so they stay visible over the gray mask.
var PointColorMap = map[string]Color{
	"Dense Vegetation":    {0, 100, 0},
	"Moderate Vegetation": {0, 128, 0},
	"Sparse Vegetation":   {255, 165, 0},
	"Built-up / Bare":     {255, 0, 0},
}
