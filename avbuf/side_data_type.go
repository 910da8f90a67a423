// side_data_type.go defines the side-data kind enumeration.

package avbuf

import (
	"fmt"
)

// SideDataType is the closed set of side-data kinds understood by the
// buffer layer. The integer values are the stable native encoding.
type SideDataType int

const (
	SideDataTypePanScan                  = SideDataType(0x0)
	SideDataTypeA53CC                    = SideDataType(0x1)
	SideDataTypeStereo3D                 = SideDataType(0x2)
	SideDataTypeMatrixEncoding           = SideDataType(0x3)
	SideDataTypeDownmixInfo              = SideDataType(0x4)
	SideDataTypeReplayGain               = SideDataType(0x5)
	SideDataTypeDisplayMatrix            = SideDataType(0x6)
	SideDataTypeAFD                      = SideDataType(0x7)
	SideDataTypeMotionVectors            = SideDataType(0x8)
	SideDataTypeSkipSamples              = SideDataType(0x9)
	SideDataTypeAudioServiceType         = SideDataType(0xa)
	SideDataTypeMasteringDisplayMetadata = SideDataType(0xb)
	SideDataTypeGOPTimecode              = SideDataType(0xc)
	SideDataTypeSpherical                = SideDataType(0xd)
	SideDataTypeContentLightLevel        = SideDataType(0xe)
	SideDataTypeICCProfile               = SideDataType(0xf)
)

func SideDataTypes() []SideDataType {
	return []SideDataType{
		SideDataTypePanScan,
		SideDataTypeA53CC,
		SideDataTypeStereo3D,
		SideDataTypeMatrixEncoding,
		SideDataTypeDownmixInfo,
		SideDataTypeReplayGain,
		SideDataTypeDisplayMatrix,
		SideDataTypeAFD,
		SideDataTypeMotionVectors,
		SideDataTypeSkipSamples,
		SideDataTypeAudioServiceType,
		SideDataTypeMasteringDisplayMetadata,
		SideDataTypeGOPTimecode,
		SideDataTypeSpherical,
		SideDataTypeContentLightLevel,
		SideDataTypeICCProfile,
	}
}

func (t SideDataType) String() string {
	switch t {
	case SideDataTypePanScan:
		return "pan_scan"
	case SideDataTypeA53CC:
		return "a53_cc"
	case SideDataTypeStereo3D:
		return "stereo3d"
	case SideDataTypeMatrixEncoding:
		return "matrix_encoding"
	case SideDataTypeDownmixInfo:
		return "downmix_info"
	case SideDataTypeReplayGain:
		return "replay_gain"
	case SideDataTypeDisplayMatrix:
		return "display_matrix"
	case SideDataTypeAFD:
		return "afd"
	case SideDataTypeMotionVectors:
		return "motion_vectors"
	case SideDataTypeSkipSamples:
		return "skip_samples"
	case SideDataTypeAudioServiceType:
		return "audio_service_type"
	case SideDataTypeMasteringDisplayMetadata:
		return "mastering_display_metadata"
	case SideDataTypeGOPTimecode:
		return "gop_timecode"
	case SideDataTypeSpherical:
		return "spherical"
	case SideDataTypeContentLightLevel:
		return "content_light_level"
	case SideDataTypeICCProfile:
		return "icc_profile"
	default:
		return "SideDataType(" + fmt.Sprintf("%d", int(t)) + ")"
	}
}
