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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/xmpmeta/registry"
)

func TestEncodeRoundTrip(t *testing.T) {
	in := wrap(`
		<tiff:Make>Canon</tiff:Make>
		<dc:creator><rdf:Seq><rdf:li>Claude Monet</rdf:li><rdf:li>Edgar Degas</rdf:li></rdf:Seq></dc:creator>
		<dc:subject><rdf:Bag><rdf:li>water &amp; lilies</rdf:li></rdf:Bag></dc:subject>
		<dc:title><rdf:Alt>
			<rdf:li xml:lang="fr-FR">Nymphéas</rdf:li>
			<rdf:li xml:lang="x-default">Water Lilies</rdf:li>
		</rdf:Alt></dc:title>
		<exif:Flash rdf:parseType="Resource">
			<exif:Fired>True</exif:Fired>
			<exif:Return>3</exif:Return>
			<exif:Mode>1</exif:Mode>
			<exif:Function>False</exif:Function>
			<exif:RedEyeMode>True</exif:RedEyeMode>
		</exif:Flash>
		<Iptc4xmpCore:CreatorContactInfo Iptc4xmpCore:CiAdrCity="Giverny"/>
		<Iptc4xmpExt:LocationShown><rdf:Bag>
			<rdf:li Iptc4xmpExt:City="Paris" Iptc4xmpExt:CountryName="France"/>
			<rdf:li Iptc4xmpExt:City="Lyon"/>
		</rdf:Bag></Iptc4xmpExt:LocationShown>
		<xmp:CreateDate>1982-12-15T20:12+02:30</xmp:CreateDate>
		<exif:GPSLatitude>1,1,1S</exif:GPSLatitude>
		<exif:GPSLongitude>12,30.5E</exif:GPSLongitude>`)

	r := New()
	if !r.Parse([]byte(in), true) {
		t.Fatal(r.Err())
	}
	want := r.RawResults()

	data, err := want.Encode(nil)
	if err != nil {
		t.Fatal(err)
	}

	r2 := New()
	if !r2.Parse(data, true) {
		t.Fatalf("cannot parse encoded packet: %v\n%s", r2.Err(), data)
	}
	got := r2.RawResults()

	if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-6)); d != "" {
		t.Errorf("round trip changed results (-want +got):\n%s\n%s", d, data)
	}
}

func TestEncodeAltitude(t *testing.T) {
	in := head + `<rdf:Description exif:GPSAltitude="1234/10" exif:GPSAltitudeRef="1"/>` + foot
	r := New()
	if !r.Parse([]byte(in), true) {
		t.Fatal(r.Err())
	}
	res := r.Results()

	data, err := res.Encode(nil)
	if err != nil {
		t.Fatal(err)
	}
	r2 := New()
	if !r2.Parse(data, true) {
		t.Fatalf("cannot parse encoded packet: %v\n%s", r2.Err(), data)
	}

	want := Results{"xmp-exif": {"GPSAltitude": -123.4}}
	if d := cmp.Diff(want, r2.Results(), cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Errorf("wrong altitude (-want +got):\n%s", d)
	}
}

func TestEncodeSkipsUnknown(t *testing.T) {
	res := Results{
		"xmp-general": {
			"CityDest": "Paris",
			"Keywords": "not a list",
		},
		"xmp-exif": {"Make": "Canon"},
		"xmp-other": {"Make": "Nikon"},
	}
	data, err := res.Encode(nil)
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	for _, bad := range []string{"Paris", "not a list", "Nikon"} {
		if strings.Contains(s, bad) {
			t.Errorf("unexpected %q in output:\n%s", bad, s)
		}
	}
	if !strings.Contains(s, "<tiff:Make>Canon</tiff:Make>") {
		t.Errorf("missing tiff:Make in output:\n%s", s)
	}
	if !strings.HasPrefix(s, "<?xpacket begin=") || !strings.HasSuffix(s, `<?xpacket end="w"?>`) {
		t.Errorf("missing packet wrapper:\n%s", s)
	}
}

func TestEncodeCustomNamespace(t *testing.T) {
	const ns = "http://ns.example.com/camera/1.0/"
	reg := registry.New(registry.Schema{
		Namespace: ns,
		Properties: []registry.Descriptor{
			{Local: "Lens", Group: registry.General, Shape: registry.Simple},
		},
	})
	res := Results{"xmp-general": {"Lens": "50mm"}}
	data, err := res.Encode(reg)
	if err != nil {
		t.Fatal(err)
	}

	r := New(WithRegistry(reg))
	if !r.Parse(data, true) {
		t.Fatalf("cannot parse encoded packet: %v\n%s", r.Err(), data)
	}
	if d := cmp.Diff(res, r.Results()); d != "" {
		t.Errorf("round trip changed results (-want +got):\n%s", d)
	}
}

func TestMakePrefix(t *testing.T) {
	used := map[string]bool{"rdf": true, "camera": true}
	cases := []struct {
		ns, want string
	}{
		{"http://ns.example.com/lens/", "lens"},
		{"http://ns.example.com/camera#", "camera1"},
		{"urn:example:xmlthing", "ns"},
		{"http://ns.example.com/1.0/", "ns"},
	}
	for _, c := range cases {
		if got := makePrefix(c.ns, used); got != c.want {
			t.Errorf("makePrefix(%q) = %q, want %q", c.ns, got, c.want)
		}
	}
}

func TestFormatGPS(t *testing.T) {
	cases := []struct {
		x        float64
		latitude bool
		want     string
	}{
		{12.5, true, "12,30.000000N"},
		{-12.5, true, "12,30.000000S"},
		{-0.25, false, "0,15.000000W"},
		{179.999999999, false, "180,0.000000E"},
	}
	for _, c := range cases {
		if got := formatGPS(c.x, c.latitude); got != c.want {
			t.Errorf("formatGPS(%g, %t) = %q, want %q", c.x, c.latitude, got, c.want)
		}
	}
}
