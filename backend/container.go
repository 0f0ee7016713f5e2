package backend

import "encoding/binary"

// Format identifies how a kernel payload is encoded.
type Format int

const (
	// FormatSource is plain text, compiled at load time.
	FormatSource Format = iota
	// FormatSPIRV is a pre-compiled SPIR-V binary.
	FormatSPIRV
)

const (
	spirvMagicLE uint32 = 0x07230203
	spirvMagicBE uint32 = 0x03022307
)

// DetectContainerFormat inspects a payload's first four bytes for the
// SPIR-V magic number in either byte order, matching the original tool's
// is_spirv_file check. Payloads shorter than four bytes are FormatSource.
func DetectContainerFormat(payload []byte) Format {
	if len(payload) < 4 {
		return FormatSource
	}

	magic := binary.LittleEndian.Uint32(payload[:4])
	if magic == spirvMagicLE || magic == spirvMagicBE {
		return FormatSPIRV
	}
	return FormatSource
}
