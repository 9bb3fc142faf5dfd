package docgen

// Fixed lookup tables for the component library. These are initialized once
// and never mutated; rendering only reads them.

const (
	// providerClassName identifies the one data-supplying component in the
	// building blocks group. Its inventory row goes to the provider table,
	// every other building block to the details table.
	providerClassName = "PlaceDataProvider"

	// consumerBaseClass is the base type of components that render data
	// supplied by an enclosing provider.
	consumerBaseClass = "PlaceDataConsumer"

	// buildingBlocksDir is the subtree (under src/) holding the
	// provider/consumer component group.
	buildingBlocksDir = "place_building_blocks"

	buildingBlocksTitle = "Place building blocks"
	buildingBlocksBlurb = "Low-level components for composing your own place representations."

	consumerCallout = "> This component is designed to work within a [Place data provider](../place_data_provider/README.md), which supplies the place data it renders."

	reflectsYes = "✅"
	reflectsNo  = "❌"

	optionalYes = "✅"
	optionalNo  = "❌"

	tokenMarker   = "†"
	tokenFootnote = "† This token is shared across components. Set it on a common ancestor to restyle the whole library at once."
)

// friendlyNames maps class names to the display names used in headers and
// inventory tables. Classes absent from this table fall back to their tag
// name.
var friendlyNames = map[string]string{
	"APILoader":             "API loader",
	"IconButton":            "Icon button",
	"OverlayLayout":         "Overlay layout",
	"PlaceOverview":         "Place overview",
	"PlacePicker":           "Place picker",
	"RouteOverview":         "Route overview",
	"SplitLayout":           "Split layout",
	"StoreLocator":          "Store locator",
	"PlaceAttribution":      "Place attribution",
	"PlaceDataProvider":     "Place data provider",
	"PlaceDirectionsButton": "Place directions button",
	"PlaceFieldBoolean":     "Place field boolean",
	"PlaceFieldLink":        "Place field link",
	"PlaceFieldText":        "Place field text",
	"PlaceOpeningHours":     "Place opening hours",
	"PlacePhotoGallery":     "Place photo gallery",
	"PlacePriceLevel":       "Place price level",
	"PlaceRating":           "Place rating",
	"PlaceReviews":          "Place reviews",
}

// globalStyleDefaults resolves the default value of shared style custom
// properties when a declaration does not carry one of its own.
var globalStyleDefaults = map[string]string{
	"--placeui-color-surface":            "#fff",
	"--placeui-color-on-surface":         "#212121",
	"--placeui-color-on-surface-variant": "#757575",
	"--placeui-color-primary":            "#1e88e5",
	"--placeui-color-on-primary":         "#fff",
	"--placeui-color-outline":            "#e0e0e0",
	"--placeui-font-family-base":         "'Inter', sans-serif",
	"--placeui-font-family-headings":     "--placeui-font-family-base",
	"--placeui-font-size-base":           "0.875rem",
	"--placeui-rating-color":             "#ffb300",
	"--placeui-rating-color-empty":       "#e0e0e0",
}

// globalTokens marks the design tokens that appear with the shared-token
// footnote in styling tables.
var globalTokens = map[string]bool{
	"--placeui-color-surface":            true,
	"--placeui-color-on-surface":         true,
	"--placeui-color-on-surface-variant": true,
	"--placeui-color-primary":            true,
	"--placeui-color-on-primary":         true,
	"--placeui-color-outline":            true,
	"--placeui-font-family-base":         true,
	"--placeui-font-family-headings":     true,
	"--placeui-font-size-base":           true,
}

// simpleTextStyled lists components that expose no styling hooks of their
// own and inherit plain text styling from the document.
var simpleTextStyled = map[string]bool{
	"PlaceAttribution": true,
	"PlaceFieldLink":   true,
	"PlaceFieldText":   true,
}
