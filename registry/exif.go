// seehuhn.de/go/xmpmeta - extract metadata from XMP packets
// Copyright (C) 2024  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package registry

var exifSchema = Schema{
	Namespace: NSExif,
	Properties: []Descriptor{
		{Local: "ApertureValue", Group: Exif, Shape: Simple, Check: CheckRational},
		{Local: "BrightnessValue", Group: Exif, Shape: Simple, Check: CheckRational},
		{Local: "CompressedBitsPerPixel", Group: Exif, Shape: Simple, Check: CheckRational},
		{Local: "DigitalZoomRatio", Group: Exif, Shape: Simple, Check: CheckRational},
		{Local: "ExposureBiasValue", Group: Exif, Shape: Simple, Check: CheckRational},
		{Local: "ExposureIndex", Group: Exif, Shape: Simple, Check: CheckRational},
		{Local: "ExposureTime", Group: Exif, Shape: Simple, Check: CheckRational},
		{Local: "FlashEnergy", Group: Exif, Shape: Simple, Check: CheckRational},
		{Local: "FNumber", Group: Exif, Shape: Simple, Check: CheckRational},
		{Local: "FocalLength", Group: Exif, Shape: Simple, Check: CheckRational},
		{Local: "FocalPlaneXResolution", Group: Exif, Shape: Simple, Check: CheckRational},
		{Local: "FocalPlaneYResolution", Group: Exif, Shape: Simple, Check: CheckRational},
		{Local: "GPSAltitude", Group: Exif, Shape: Simple, Check: CheckRational},
		{Local: "GPSDestBearing", Group: Exif, Shape: Simple, Check: CheckRational},
		{Local: "GPSDestDistance", Group: Exif, Shape: Simple, Check: CheckRational},
		{Local: "GPSDOP", Group: Exif, Shape: Simple, Check: CheckRational},
		{Local: "GPSImgDirection", Group: Exif, Shape: Simple, Check: CheckRational},
		{Local: "GPSSpeed", Group: Exif, Shape: Simple, Check: CheckRational},
		{Local: "GPSTrack", Group: Exif, Shape: Simple, Check: CheckRational},
		{Local: "MaxApertureValue", Group: Exif, Shape: Simple, Check: CheckRational},
		{Local: "ShutterSpeedValue", Group: Exif, Shape: Simple, Check: CheckRational},
		{Local: "SubjectDistance", Group: Exif, Shape: Simple, Check: CheckRational},

		// The flash structure and its fields.
		{
			Local: "Flash", Group: Exif, Shape: Struct, Check: CheckFlash,
			Children: choices("Fired", "Function", "Mode", "RedEyeMode", "Return"),
		},
		{Local: "Fired", Group: Exif, Shape: Simple, Check: CheckBoolean, StructPart: true},
		{Local: "Function", Group: Exif, Shape: Simple, Check: CheckBoolean, StructPart: true},
		{Local: "Mode", Group: Exif, Shape: Simple, Check: CheckClosed, Choices: choices("0", "1", "2", "3"), StructPart: true},
		{Local: "Return", Group: Exif, Shape: Simple, Check: CheckClosed, Choices: choices("0", "2", "3"), StructPart: true},
		{Local: "RedEyeMode", Group: Exif, Shape: Simple, Check: CheckBoolean, StructPart: true},

		{Local: "ISOSpeedRatings", Group: Exif, Shape: Seq, Check: CheckInteger},
		{Local: "ColorSpace", Group: Exif, Shape: Simple, Check: CheckClosed, Choices: choices("1", "65535")},
		{Local: "ComponentsConfiguration", Group: Exif, Shape: Seq, Check: CheckClosed, Choices: choices("1", "2", "3", "4", "5", "6")},
		{Local: "Contrast", Group: Exif, Shape: Simple, Check: CheckClosed, Choices: choices("0", "1", "2")},
		{Local: "CustomRendered", Group: Exif, Shape: Simple, Check: CheckClosed, Choices: choices("0", "1")},
		{Local: "DateTimeOriginal", Group: Exif, Shape: Simple, Check: CheckDate},
		{Local: "DateTimeDigitized", Group: Exif, Shape: Simple, Check: CheckDate},
		{Local: "ExifVersion", Group: Exif, Shape: Simple},
		{Local: "ExposureMode", Group: Exif, Shape: Simple, Check: CheckClosed, Range: &Range{0, 2}},
		{Local: "ExposureProgram", Group: Exif, Shape: Simple, Check: CheckClosed, Range: &Range{0, 8}},
		{Local: "FileSource", Group: Exif, Shape: Simple, Check: CheckClosed, Choices: choices("3")},
		{Local: "FlashpixVersion", Group: Exif, Shape: Simple},
		{Local: "FocalLengthIn35mmFilm", Group: Exif, Shape: Simple, Check: CheckInteger},
		{Local: "FocalPlaneResolutionUnit", Group: Exif, Shape: Simple, Check: CheckClosed, Choices: choices("2", "3")},
		{Local: "GainControl", Group: Exif, Shape: Simple, Check: CheckClosed, Range: &Range{0, 4}},

		// GPSAltitudeRef is folded into GPSAltitude when results are
		// reported.
		{Local: "GPSAltitudeRef", Group: Exif, Shape: Simple, Check: CheckClosed, Choices: choices("0", "1")},
		{Local: "GPSAreaInformation", Group: Exif, Shape: Simple},
		{Local: "GPSDestBearingRef", Group: Exif, Shape: Simple, Check: CheckClosed, Choices: choices("T", "M")},
		{Local: "GPSDestDistanceRef", Group: Exif, Shape: Simple, Check: CheckClosed, Choices: choices("K", "M", "N")},
		{Local: "GPSDestLatitude", Group: Exif, Shape: Simple, Check: CheckGPS},
		{Local: "GPSDestLongitude", Group: Exif, Shape: Simple, Check: CheckGPS},
		{Local: "GPSDifferential", Group: Exif, Shape: Simple, Check: CheckClosed, Choices: choices("0", "1")},
		{Local: "GPSImgDirectionRef", Group: Exif, Shape: Simple, Check: CheckClosed, Choices: choices("T", "M")},
		{Local: "GPSLatitude", Group: Exif, Shape: Simple, Check: CheckGPS},
		{Local: "GPSLongitude", Group: Exif, Shape: Simple, Check: CheckGPS},
		{Local: "GPSMapDatum", Group: Exif, Shape: Simple},
		{Local: "GPSMeasureMode", Group: Exif, Shape: Simple, Check: CheckClosed, Choices: choices("2", "3")},
		{Local: "GPSProcessingMethod", Group: Exif, Shape: Simple},
		{Local: "GPSSatellites", Group: Exif, Shape: Simple},
		{Local: "GPSSpeedRef", Group: Exif, Shape: Simple, Check: CheckClosed, Choices: choices("K", "M", "N")},
		{Local: "GPSStatus", Group: Exif, Shape: Simple, Check: CheckClosed, Choices: choices("A", "V")},

		// In Exif, GPSDateStamp holds only the date.  The XMP property
		// includes the time.
		{Local: "GPSTimeStamp", Name: "GPSDateStamp", Group: Exif, Shape: Simple, Check: CheckDate},
		{Local: "GPSTrackRef", Group: Exif, Shape: Simple, Check: CheckClosed, Choices: choices("T", "M")},
		{Local: "GPSVersionID", Group: Exif, Shape: Simple},
		{Local: "ImageUniqueID", Group: Exif, Shape: Simple},
		{
			Local: "LightSource", Group: Exif, Shape: Simple, Check: CheckClosed,
			Choices: choices("0", "1", "2", "3", "4", "9", "10", "11", "12", "13",
				"14", "15", "17", "18", "19", "20", "21", "22", "23", "24", "255"),
		},
		{Local: "MeteringMode", Group: Exif, Shape: Simple, Check: CheckClosed, Range: &Range{0, 6}, Choices: choices("255")},
		{Local: "PixelXDimension", Group: Exif, Shape: Simple, Check: CheckInteger},
		{Local: "PixelYDimension", Group: Exif, Shape: Simple, Check: CheckInteger},
		{Local: "Saturation", Group: Exif, Shape: Simple, Check: CheckClosed, Range: &Range{0, 2}},
		{Local: "SceneCaptureType", Group: Exif, Shape: Simple, Check: CheckClosed, Range: &Range{0, 3}},
		{Local: "SceneType", Group: Exif, Shape: Simple, Check: CheckClosed, Choices: choices("1")},

		// 6 is not a valid sensing method.
		{Local: "SensingMethod", Group: Exif, Shape: Simple, Check: CheckClosed, Range: &Range{1, 5}, Choices: choices("7", "8")},
		{Local: "Sharpness", Group: Exif, Shape: Simple, Check: CheckClosed, Range: &Range{0, 2}},
		{Local: "SpectralSensitivity", Group: Exif, Shape: Simple},
		{Local: "SubjectArea", Group: Exif, Shape: Seq, Check: CheckInteger},
		{Local: "SubjectDistanceRange", Group: Exif, Shape: Simple, Check: CheckClosed, Range: &Range{0, 3}},
		{Local: "SubjectLocation", Group: Exif, Shape: Seq, Check: CheckInteger},
		{Local: "UserComment", Group: Exif, Shape: Lang},
		{Local: "WhiteBalance", Group: Exif, Shape: Simple, Check: CheckClosed, Choices: choices("0", "1")},
	},
}

// tiff:Orientation is deliberately missing, since it would interfere with
// automatic rotation based on the Exif data.  tiff:YCbCrSubSampling is
// missing since many files store a string instead of an rdf:Seq.
var tiffSchema = Schema{
	Namespace: NSTIFF,
	Properties: []Descriptor{
		{Local: "Artist", Group: Exif, Shape: Simple},
		{Local: "BitsPerSample", Group: Exif, Shape: Seq, Check: CheckInteger},
		{Local: "Compression", Group: Exif, Shape: Simple, Check: CheckClosed, Choices: choices("1", "6")},

		// dc:rights should be used instead
		{Local: "Copyright", Group: Exif, Shape: Lang},

		// xmp:ModifyDate should be used instead
		{Local: "DateTime", Group: Exif, Shape: Simple, Check: CheckDate},

		// dc:description should be used instead
		{Local: "ImageDescription", Group: Exif, Shape: Lang},
		{Local: "ImageLength", Group: Exif, Shape: Simple, Check: CheckInteger},
		{Local: "ImageWidth", Group: Exif, Shape: Simple, Check: CheckInteger},
		{Local: "Make", Group: Exif, Shape: Simple},
		{Local: "Model", Group: Exif, Shape: Simple},
		{Local: "PhotometricInterpretation", Group: Exif, Shape: Simple, Check: CheckClosed, Choices: choices("2", "6")},
		{Local: "PlanerConfiguration", Group: Exif, Shape: Simple, Check: CheckClosed, Choices: choices("1", "2")},
		{Local: "PrimaryChromaticities", Group: Exif, Shape: Seq, Check: CheckRational},
		{Local: "ReferenceBlackWhite", Group: Exif, Shape: Seq, Check: CheckRational},
		{Local: "ResolutionUnit", Group: Exif, Shape: Simple, Check: CheckClosed, Choices: choices("2", "3")},
		{Local: "SamplesPerPixel", Group: Exif, Shape: Simple, Check: CheckInteger},
		{Local: "Software", Group: Exif, Shape: Simple},
		{Local: "WhitePoint", Group: Exif, Shape: Seq, Check: CheckRational},
		{Local: "XResolution", Group: Exif, Shape: Simple, Check: CheckRational},
		{Local: "YResolution", Group: Exif, Shape: Simple, Check: CheckRational},
		{Local: "YCbCrCoefficients", Group: Exif, Shape: Seq, Check: CheckRational},
		{Local: "YCbCrPositioning", Group: Exif, Shape: Simple, Check: CheckClosed, Choices: choices("1", "2")},
	},
}

var auxSchema = Schema{
	Namespace: NSExifAux,
	Properties: []Descriptor{
		{Local: "Lens", Group: Exif, Shape: Simple},
		{Local: "SerialNumber", Group: Exif, Shape: Simple},
		{Local: "OwnerName", Name: "CameraOwnerName", Group: Exif, Shape: Simple},
	},
}
