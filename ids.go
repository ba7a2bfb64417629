package escher

import (
	"strconv"
)

// Record IDs of container records.
const (
	DggContainerID    uint16 = 0xF000
	BStoreContainerID uint16 = 0xF001
	DgContainerID     uint16 = 0xF002
	SpgrContainerID   uint16 = 0xF003
	SpContainerID     uint16 = 0xF004
	SolverContainerID uint16 = 0xF005
)

// Record IDs of leaf records.
const (
	DggID             uint16 = 0xF006
	BSEID             uint16 = 0xF007
	DgID              uint16 = 0xF008
	SpgrID            uint16 = 0xF009
	SpID              uint16 = 0xF00A
	OptID             uint16 = 0xF00B
	TextboxNameID     uint16 = 0xF00C // Listed by record-name tables only.
	TextboxID         uint16 = 0xF00D // Client textbox; holds host data.
	AnchorID          uint16 = 0xF00E
	ChildAnchorID     uint16 = 0xF00F
	ClientAnchorID    uint16 = 0xF010
	ClientDataID      uint16 = 0xF011
	ConnectorRuleID   uint16 = 0xF012
	AlignRuleID       uint16 = 0xF013
	ArcRuleID         uint16 = 0xF014
	ClientRuleID      uint16 = 0xF015
	CLSIDID           uint16 = 0xF016
	CalloutRuleID     uint16 = 0xF017
	RegroupItemsID    uint16 = 0xF118
	SelectionID       uint16 = 0xF119
	ColorMRUID        uint16 = 0xF11A
	DeletedPsplID     uint16 = 0xF11D
	SplitMenuColorsID uint16 = 0xF11E
	OleObjectID       uint16 = 0xF11F
	ColorSchemeID     uint16 = 0xF120
	TertiaryOptID     uint16 = 0xF122
)

// Record IDs of picture records. Every ID within [BlipStartID, BlipEndID] is
// a picture record.
const (
	BlipStartID uint16 = 0xF018
	BlipEndID   uint16 = 0xF117

	BlipEMFID  = BlipStartID + BlipTypeEMF
	BlipWMFID  = BlipStartID + BlipTypeWMF
	BlipPICTID = BlipStartID + BlipTypePICT
	BlipJPEGID = BlipStartID + BlipTypeJPEG
	BlipPNGID  = BlipStartID + BlipTypePNG
	BlipDIBID  = BlipStartID + BlipTypeDIB
)

// IsContainer returns whether a record with the given options and ID contains
// child records.
//
// The six container IDs are always containers. A client textbox is never a
// container, even when its options claim otherwise, because it holds data of
// the host application rather than Escher records. Any other record is a
// container when the version nibble of its options is 0xF.
func IsContainer(options, id uint16) bool {
	switch {
	case DggContainerID <= id && id <= SolverContainerID:
		return true
	case id == TextboxID:
		return false
	default:
		return options&0x000F == 0x000F
	}
}

// IsBlipID returns whether id is within the range of picture record IDs.
func IsBlipID(id uint16) bool {
	return BlipStartID <= id && id <= BlipEndID
}

var recordNames = map[uint16]string{
	DggContainerID:    "DggContainer",
	BStoreContainerID: "BStoreContainer",
	DgContainerID:     "DgContainer",
	SpgrContainerID:   "SpgrContainer",
	SpContainerID:     "SpContainer",
	SolverContainerID: "SolverContainer",
	DggID:             "Dgg",
	BSEID:             "BSE",
	DgID:              "Dg",
	SpgrID:            "Spgr",
	SpID:              "Sp",
	OptID:             "Opt",
	TextboxNameID:     "Textbox",
	TextboxID:         "ClientTextbox",
	AnchorID:          "Anchor",
	ChildAnchorID:     "ChildAnchor",
	ClientAnchorID:    "ClientAnchor",
	ClientDataID:      "ClientData",
	ConnectorRuleID:   "ConnectorRule",
	AlignRuleID:       "AlignRule",
	ArcRuleID:         "ArcRule",
	ClientRuleID:      "ClientRule",
	CLSIDID:           "CLSID",
	CalloutRuleID:     "CalloutRule",
	RegroupItemsID:    "RegroupItems",
	SelectionID:       "Selection",
	ColorMRUID:        "ColorMRU",
	DeletedPsplID:     "DeletedPspl",
	SplitMenuColorsID: "SplitMenuColors",
	OleObjectID:       "OleObject",
	ColorSchemeID:     "ColorScheme",
	TertiaryOptID:     "TertiaryOpt",
}

// RecordName returns a readable name for a record ID. Unnamed picture IDs
// return "Blip", and any other unnamed ID returns "Unknown 0x" followed by the
// ID in hexadecimal.
func RecordName(id uint16) string {
	if name, ok := recordNames[id]; ok {
		return name
	}
	if IsBlipID(id) {
		if t := byte(id - BlipStartID); t <= BlipTypeDIB {
			return "Blip" + BlipTypeName(t)
		}
		return "Blip"
	}
	return "Unknown 0x" + strconv.FormatUint(uint64(id), 16)
}
