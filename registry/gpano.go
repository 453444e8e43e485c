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

// gpanoSchema lists the Google photo sphere properties.
//
// See https://developers.google.com/streetview/spherical-metadata .
var gpanoSchema = Schema{
	Namespace: NSGPano,
	Properties: []Descriptor{
		{Local: "UsePanoramaViewer", Group: General, Shape: Simple, Check: CheckBoolean},
		{Local: "CaptureSoftware", Group: General, Shape: Simple},
		{Local: "StitchingSoftware", Group: General, Shape: Simple},
		{Local: "ProjectionType", Group: General, Shape: Simple, Check: CheckClosed, Choices: choices("equirectangular")},
		{Local: "PoseHeadingDegrees", Group: General, Shape: Simple, Check: CheckReal, Range: &Range{0, 360}},
		{Local: "PosePitchDegrees", Group: General, Shape: Simple, Check: CheckReal, Range: &Range{-90, 90}},
		{Local: "PoseRollDegrees", Group: General, Shape: Simple, Check: CheckReal, Range: &Range{-180, 180}},
		{Local: "InitialViewHeadingDegrees", Group: General, Shape: Simple, Check: CheckInteger},
		{Local: "InitialViewRollDegrees", Group: General, Shape: Simple, Check: CheckInteger},
		{Local: "InitialHorizontalFOVDegrees", Group: General, Shape: Simple, Check: CheckReal, Range: &Range{0, 360}},
		{Local: "InitialVerticalFOVDegrees", Group: General, Shape: Simple, Check: CheckReal, Range: &Range{0, 360}},
		{Local: "FirstPhotoDate", Group: General, Shape: Simple, Check: CheckDate},
		{Local: "LastPhotoDate", Group: General, Shape: Simple, Check: CheckDate},
		{Local: "SourcePhotosCount", Group: General, Shape: Simple, Check: CheckInteger},
		{Local: "ExposureLockUsed", Group: General, Shape: Simple, Check: CheckBoolean},
		{Local: "CroppedAreaImageWidthPixels", Group: General, Shape: Simple, Check: CheckInteger},
		{Local: "CroppedAreaImageHeightPixels", Group: General, Shape: Simple, Check: CheckInteger},
		{Local: "FullPanoWidthPixels", Group: General, Shape: Simple, Check: CheckInteger},
		{Local: "FullPanoHeightPixels", Group: General, Shape: Simple, Check: CheckInteger},
		{Local: "CroppedAreaLeftPixels", Group: General, Shape: Simple, Check: CheckInteger},
		{Local: "CroppedAreaTopPixels", Group: General, Shape: Simple, Check: CheckInteger},
		{Local: "InitialCameraDolly", Group: General, Shape: Simple, Check: CheckReal, Range: &Range{-1, 1}},
	},
}
