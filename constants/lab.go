package constants

// LabNameATI identifies the ATI Aquaristik report format. It is stamped onto
// every record produced by the ATI parser.
const LabNameATI = "ATI Aquaristik"

// WaterType is the sampled water source a test record describes.
type WaterType string

const (
	WaterTypeSaltwater WaterType = "saltwater"
	WaterTypeROWater   WaterType = "ro_water"
)

// WaterTypes holds the stable values stored in the water_type column.
var WaterTypes = []string{
	string(WaterTypeSaltwater),
	string(WaterTypeROWater),
}

// ElementStatus is the lab's qualitative judgement of a measured value
// relative to its target range.
type ElementStatus string

const (
	StatusNormal         ElementStatus = "NORMAL"
	StatusAboveNormal    ElementStatus = "ABOVE_NORMAL"
	StatusBelowNormal    ElementStatus = "BELOW_NORMAL"
	StatusSlightlyHigh   ElementStatus = "SLIGHTLY_HIGH"
	StatusSlightlyLow    ElementStatus = "SLIGHTLY_LOW"
	StatusCriticallyHigh ElementStatus = "CRITICALLY_HIGH"
	StatusCriticallyLow  ElementStatus = "CRITICALLY_LOW"
)

// ElementStatuses holds the stable values stored in *_status columns.
var ElementStatuses = []string{
	string(StatusNormal),
	string(StatusAboveNormal),
	string(StatusBelowNormal),
	string(StatusSlightlyHigh),
	string(StatusSlightlyLow),
	string(StatusCriticallyHigh),
	string(StatusCriticallyLow),
}
