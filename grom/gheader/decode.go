package gheader

import (
	"bytes"
	"fmt"
)

// Decode extracts the named metadata fields from a header region laid
// out in BIN byte order. The region must be Size bytes; decoding never
// fails.
func Decode(region []byte) Fields {
	return Fields{
		System:           textField(region, OffsetSystem, LenSystem),
		Copyright:        textField(region, OffsetCopyright, LenCopyright),
		GameNameDomestic: textField(region, OffsetGameNameDomestic, LenGameName),
		GameNameOverseas: textField(region, OffsetGameNameOverseas, LenGameName),
		SoftwareType:     softwareType(region),
		ProductCode:      textField(region, OffsetProductCode, LenProductCode),
		Checksum:         hexField(region, OffsetChecksum, 2),
		IOSupport:        textField(region, OffsetIOSupport, LenIOSupport),
		RomStart:         hexField(region, OffsetRomStart, 4),
		RomEnd:           hexField(region, OffsetRomEnd, 4),
		ModemData:        textField(region, OffsetModemData, LenModemData),
		Memo:             textField(region, OffsetMemo, LenMemo),
		Countries:        textField(region, OffsetCountries, LenCountries),
	}
}

// textField copies a fixed-width text field. An embedded zero byte ends
// the text; padding spaces are kept as stored.
func textField(region []byte, offset, length int) string {
	raw := region[offset : offset+length]
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}
	return string(raw)
}

// hexField renders length bytes as "0x"-prefixed uppercase hex, two
// digits per byte.
func hexField(region []byte, offset, length int) string {
	return fmt.Sprintf("0x%X", region[offset:offset+length])
}

// softwareType decodes the two-character software type code. Only the
// two codes the console ecosystem actually shipped get names; anything
// else is shown as the literal characters.
func softwareType(region []byte) string {
	code := region[OffsetSoftwareType : OffsetSoftwareType+LenSoftwareType]
	switch {
	case code[0] == 'G' && code[1] == 'M':
		return "Game"
	case code[0] == 'A' && code[1] == 'l':
		return "Educational"
	}
	return string(code)
}
