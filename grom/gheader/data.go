package gheader

type (
	// Fields holds the decoded ROM header metadata. Every value is kept
	// as display text; numeric fields arrive pre-rendered as fixed-width
	// hex. The layout imposes no validity rules beyond the offsets, so
	// decoding garbage yields garbage strings rather than errors.
	Fields struct {
		System           string `json:"system"`
		Copyright        string `json:"copyright"`
		GameNameDomestic string `json:"game_name_domestic"`
		GameNameOverseas string `json:"game_name_overseas"`
		SoftwareType     string `json:"software_type"`
		ProductCode      string `json:"product_code"`
		Checksum         string `json:"checksum"`
		IOSupport        string `json:"io_support"`
		RomStart         string `json:"rom_start"`
		RomEnd           string `json:"rom_end"`
		ModemData        string `json:"modem_data"`
		Memo             string `json:"memo"`
		Countries        string `json:"countries"`
	}
)

const (
	// Size is the length of the header region at the start of a decoded
	// BIN image. All named fields live between offsets 0x100 and 0x1FF;
	// the bytes before 0x100 are vector tables this tool does not touch.
	Size = 512
)

// Field offsets and lengths within the header region.
const (
	OffsetSystem           = 0x100
	OffsetCopyright        = 0x110
	OffsetGameNameDomestic = 0x120
	OffsetGameNameOverseas = 0x150
	OffsetSoftwareType     = 0x180
	OffsetProductCode      = 0x183
	OffsetChecksum         = 0x18E
	OffsetIOSupport        = 0x190
	OffsetRomStart         = 0x1A0
	OffsetRomEnd           = 0x1A4
	OffsetModemData        = 0x1BC
	OffsetMemo             = 0x1C8
	OffsetCountries        = 0x1F0

	LenSystem       = 16
	LenCopyright    = 16
	LenGameName     = 48
	LenSoftwareType = 2
	LenProductCode  = 11
	LenIOSupport    = 16
	LenModemData    = 20
	LenMemo         = 40
	LenCountries    = 3
)

// Pairs returns the fields as label/value pairs in the fixed display
// order used by the info report.
func (f Fields) Pairs() [][2]string {
	return [][2]string{
		{"System", f.System},
		{"Copyright", f.Copyright},
		{"Game name (domestic)", f.GameNameDomestic},
		{"Game name (overseas)", f.GameNameOverseas},
		{"Software type", f.SoftwareType},
		{"Product code and version", f.ProductCode},
		{"Checksum", f.Checksum},
		{"I/O support", f.IOSupport},
		{"ROM start address", f.RomStart},
		{"ROM end address", f.RomEnd},
		{"Modem data", f.ModemData},
		{"Memo", f.Memo},
		{"Countries", f.Countries},
	}
}
