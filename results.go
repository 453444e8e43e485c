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

package xmpmeta

import (
	"strconv"
	"strings"

	"seehuhn.de/go/xmpmeta/registry"
)

// Results returns the metadata extracted so far, in the form intended for
// consumers:
//
//   - The first dc:creator entry is annotated with
//     photoshop:AuthorsPosition, as "<creator>, <position>".
//   - The fields of the first Iptc4xmpExt:LocationShown and
//     Iptc4xmpExt:LocationCreated structures are reported in the group
//     "xmp-general", with suffix "Dest" and "Created" respectively.
//   - If exif:GPSAltitudeRef is present, exif:GPSAltitude is converted to
//     a float64 which is negative below sea level, and GPSAltitudeRef is
//     removed.
//   - The group "xmp-special" is omitted.
//
// Results can be called at any time, including after Parse has reported a
// failure.
func (r *Reader) Results() Results {
	res := r.results.Clone()
	general := registry.General.Tag()
	special := res[registry.Special.Tag()]

	if pos, ok := special["AuthorsPosition"].(string); ok {
		if artists, ok := res[general]["Artist"].(List); ok && len(artists) > 0 {
			if first, ok := artists[0].(string); ok {
				artists[0] = first + ", " + pos
			}
		}
	}

	for key, suffix := range map[string]string{
		"LocationShown":   "Dest",
		"LocationCreated": "Created",
	} {
		locations, ok := special[key].(List)
		if !ok || len(locations) == 0 {
			continue
		}
		if loc, ok := locations[0].(Struct); ok {
			for field, v := range loc {
				res.set(general, field+suffix, v)
			}
		}
	}

	delete(res, registry.Special.Tag())

	exif := res[registry.Exif.Tag()]
	if ref, ok := exif["GPSAltitudeRef"]; ok {
		if alt, ok := exif["GPSAltitude"].(string); ok {
			if x, ok := parseRational(alt); ok {
				if ref == "1" {
					x = -x
				}
				exif["GPSAltitude"] = x
			}
		}
		delete(exif, "GPSAltitudeRef")
		if len(exif) == 0 {
			delete(res, registry.Exif.Tag())
		}
	}

	return res
}

// parseRational converts a value of the form "n/d" to a float64.
func parseRational(s string) (float64, bool) {
	num, den, ok := strings.Cut(s, "/")
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, false
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil || d == 0 {
		return 0, false
	}
	return n / d, true
}
