package hid

// Usage Pages, per the HID Usage Tables.
const (
	UsagePageGenericDesktop uint16 = 0x01
	UsagePageSimulation     uint16 = 0x02
	UsagePageButton         uint16 = 0x09
)

// Generic Desktop usages.
const (
	UsageJoystick  uint16 = 0x04
	UsageGamePad   uint16 = 0x05
	UsageX         uint16 = 0x30
	UsageY         uint16 = 0x31
	UsageWheel     uint16 = 0x38
	UsageHatSwitch uint16 = 0x39
)

// CollectionKind values.
type CollectionKind uint8

const (
	CollectionPhysical    CollectionKind = 0x00
	CollectionApplication CollectionKind = 0x01
	CollectionLogical     CollectionKind = 0x02
)

type MainFlags uint8

const (
	MainData  MainFlags = 0x00
	MainConst MainFlags = 0x01

	MainArray MainFlags = 0x00
	MainVar   MainFlags = 0x02

	MainAbs MainFlags = 0x00
	MainRel MainFlags = 0x04

	MainNoNullPosition MainFlags = 0x00
	MainNullState      MainFlags = 0x40
)
