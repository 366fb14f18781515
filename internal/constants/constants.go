package constants

// Canvas and rack grid
const (
	DefaultColumns     = 3
	DefaultCanvasWidth = 1800.0
	DefaultTopMargin   = 40.0
	DefaultGapX        = 120.0
	DefaultGapY        = 80.0

	RackWidth          = 260.0
	RackStandardHeight = 650.0
	RackCompactRatio   = 0.4
	RackTitleOffset    = 25.0
)

// Standard (wide) device footprint and stacking
const (
	DeviceWidth          = 240.0
	DeviceHeight         = 28.0
	DeviceLeftInset      = 8.0
	DeviceTitleClearance = 40.0
	DeviceRowPitch       = 32.0
)

// Power-backup (UPS) footprint and bottom-anchored grid
const (
	UPSWidth         = 80.0
	UPSHeight        = 60.0
	UPSColumns       = 2
	UPSColumnGap     = 20.0
	UPSRowGap        = 10.0
	UPSSideInset     = 20.0
	UPSBottomPadding = 20.0
)

// Ordering sentinels
const (
	OrderSentinel    = 9999
	PrioritySentinel = 100
)

// Cable display colors
const (
	ColorPowerFeed = "#cd840e"
	ColorUPS       = "#ff9900"
	ColorStorage   = "#00c3ff"
	ColorSwitch    = "#00ff62"
	ColorDefault   = "#ffffff"
)

// Lane and group separation (pixels)
const (
	LaneOffsetStep       = 15.0
	DefaultGroupSpacing  = 6.0
	DefaultMemberSpacing = 6.0
)

// Group key prefixes
const (
	GroupPrefixDestination = "dest-"
	GroupPrefixOrigin      = "orig-"
	GroupPrefixUnique      = "unique-"
)

// Router geometry
const (
	AnchorOffsetStandard  = 14.0
	AnchorOffsetUPS       = 30.0
	ClearanceStandard     = 20.0
	ClearanceUPS          = 45.0
	DownwardEpsilon       = 2.0
	EntryMargin           = 12.0
	CloseSeparation       = 25.0
	NearDistance          = 200.0
	NearLift              = 20.0
	FarLift               = 60.0
	UPSOriginCorrection   = 20.0
	UPSDestCorrection     = -20.0
	UPSBothEndsCorrection = 40.0
)

// Port dots
const (
	PortSize      = 8.0
	PortGap       = 2.0
	PortTopOffset = 6.0
)

// Catalog file extensions
var CatalogExtensions = []string{".yaml", ".yml", ".toml"}
