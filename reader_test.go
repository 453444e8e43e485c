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
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"seehuhn.de/go/xmpmeta/registry"
)

const (
	head = `<x:xmpmeta xmlns:x="adobe:ns:meta/">
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	xmlns:exif="http://ns.adobe.com/exif/1.0/"
	xmlns:tiff="http://ns.adobe.com/tiff/1.0/"
	xmlns:dc="http://purl.org/dc/elements/1.1/"
	xmlns:xmp="http://ns.adobe.com/xap/1.0/"
	xmlns:xmpRights="http://ns.adobe.com/xap/1.0/rights/"
	xmlns:xmpNote="http://ns.adobe.com/xmp/note/"
	xmlns:photoshop="http://ns.adobe.com/photoshop/1.0/"
	xmlns:Iptc4xmpCore="http://iptc.org/std/Iptc4xmpCore/1.0/xmlns/"
	xmlns:Iptc4xmpExt="http://iptc.org/std/Iptc4xmpExt/2008-02-29/">
`
	foot = "\n</rdf:RDF>\n</x:xmpmeta>\n"
)

func wrap(body string) string {
	return head + `<rdf:Description rdf:about="">` + body + `</rdf:Description>` + foot
}

type parseTestCase struct {
	desc string
	in   string
	out  Results
}

// parseTestCases lists complete documents together with the results they
// produce, as returned by RawResults.
var parseTestCases = []parseTestCase{
	{
		desc: "attributes and elements",
		in: head + `<rdf:Description rdf:about="" tiff:Make="Canon">
			<tiff:Model>EOS 5D</tiff:Model>
		</rdf:Description>` + foot,
		out: Results{
			"xmp-exif": {"Make": "Canon", "Model": "EOS 5D"},
		},
	},
	{
		desc: "rdf:resource",
		in:   wrap(`<xmpRights:WebStatement rdf:resource="http://example.com/"/>`),
		out: Results{
			"xmp-general": {"WebStatement": "http://example.com/"},
		},
	},
	{
		desc: "CDATA",
		in:   wrap(`<tiff:Model><![CDATA[<b>&amp;</b>]]></tiff:Model>`),
		out: Results{
			"xmp-exif": {"Model": "<b>&amp;</b>"},
		},
	},
	{
		desc: "ordered array",
		in: wrap(`<dc:creator><rdf:Seq>
			<rdf:li>Claude Monet</rdf:li>
			<rdf:li>Edgar Degas</rdf:li>
		</rdf:Seq></dc:creator>`),
		out: Results{
			"xmp-general": {"Artist": List{"Claude Monet", "Edgar Degas"}},
		},
	},
	{
		desc: "bag used for seq",
		in:   wrap(`<dc:creator><rdf:Bag><rdf:li>Claude Monet</rdf:li></rdf:Bag></dc:creator>`),
		out: Results{
			"xmp-general": {"Artist": List{"Claude Monet"}},
		},
	},
	{
		desc: "seq used for bag",
		in:   wrap(`<dc:subject><rdf:Seq><rdf:li>water lilies</rdf:li></rdf:Seq></dc:subject>`),
		out:  Results{},
	},
	{
		desc: "empty array",
		in:   wrap(`<dc:creator><rdf:Seq/></dc:creator><tiff:Make>M</tiff:Make>`),
		out: Results{
			"xmp-exif": {"Make": "M"},
		},
	},
	{
		desc: "array items are validated",
		in: wrap(`<exif:ISOSpeedRatings><rdf:Seq>
			<rdf:li>100</rdf:li><rdf:li>abc</rdf:li><rdf:li>200</rdf:li>
		</rdf:Seq></exif:ISOSpeedRatings>`),
		out: Results{
			"xmp-exif": {"ISOSpeedRatings": List{"100", "200"}},
		},
	},
	{
		desc: "character data in array",
		in:   wrap(`<dc:creator><rdf:Seq>junk<rdf:li>Claude Monet</rdf:li></rdf:Seq></dc:creator>`),
		out:  Results{},
	},
	{
		desc: "unexpected element in array",
		in: wrap(`<dc:creator><rdf:Seq>
			<dc:other>x</dc:other><rdf:li>Claude Monet</rdf:li>
		</rdf:Seq></dc:creator>`),
		out: Results{
			"xmp-general": {"Artist": List{"Claude Monet"}},
		},
	},
	{
		desc: "language alternative",
		in: wrap(`<dc:title><rdf:Alt>
			<rdf:li xml:lang="x-default">Water Lilies</rdf:li>
			<rdf:li xml:lang="fr-FR">Nymphéas</rdf:li>
			<rdf:li>no language</rdf:li>
		</rdf:Alt></dc:title>`),
		out: Results{
			"xmp-general": {"ObjectName": Lang{
				"x-default": "Water Lilies",
				"fr-fr":     "Nymphéas",
				"_type":     "lang",
			}},
		},
	},
	{
		desc: "language alternative in wrong container",
		in:   wrap(`<dc:title><rdf:Bag><rdf:li xml:lang="x-default">Water Lilies</rdf:li></rdf:Bag></dc:title>`),
		out:  Results{},
	},
	{
		desc: "structure with parseType Resource",
		in: wrap(`<exif:Flash rdf:parseType="Resource">
			<exif:Fired>True</exif:Fired>
			<exif:Return>0</exif:Return>
			<exif:Mode>1</exif:Mode>
			<exif:Function>False</exif:Function>
			<exif:RedEyeMode>False</exif:RedEyeMode>
		</exif:Flash>`),
		out: Results{
			"xmp-exif": {"Flash": 9},
		},
	},
	{
		desc: "structure with mixed attribute and element fields",
		in: wrap(`<exif:Flash exif:Fired="True" exif:Return="3" exif:Mode="1">
			<exif:Function>False</exif:Function>
			<exif:RedEyeMode>True</exif:RedEyeMode>
		</exif:Flash>`),
		out: Results{
			"xmp-exif": {"Flash": 1 | 3<<1 | 1<<3 | 1<<6},
		},
	},
	{
		desc: "structure with inner description",
		in: wrap(`<exif:Flash><rdf:Description exif:Fired="False" exif:Return="0"
			exif:Mode="2" exif:Function="False" exif:RedEyeMode="True"/></exif:Flash>`),
		out: Results{
			"xmp-exif": {"Flash": 2<<3 | 1<<6},
		},
	},
	{
		desc: "incomplete structure",
		in:   wrap(`<exif:Flash exif:Fired="True" exif:Return="0" exif:Mode="1" exif:Function="False"/>`),
		out:  Results{},
	},
	{
		desc: "structure where all fields fail",
		in: wrap(`<exif:Flash rdf:parseType="Resource">
			<exif:Fired>foo</exif:Fired>
			<exif:Return>bar</exif:Return>
			<exif:Mode>baz</exif:Mode>
			<exif:Function>fred</exif:Function>
			<exif:RedEyeMode>xyzzy</exif:RedEyeMode>
		</exif:Flash>`),
		out: Results{},
	},
	{
		desc: "structure given as attribute",
		in:   head + `<rdf:Description exif:Flash="9"/>` + foot,
		out: Results{
			"xmp-exif": {"Flash": "9"},
		},
	},
	{
		desc: "structure fields outside of structure",
		in:   head + `<rdf:Description exif:Fired="True"><exif:Mode>1</exif:Mode></rdf:Description>` + foot,
		out:  Results{},
	},
	{
		desc: "foreign field in structure",
		in: wrap(`<Iptc4xmpCore:CreatorContactInfo
			Iptc4xmpCore:CiAdrCity="Giverny"
			Iptc4xmpCore:CiEmailWork="claude@example.com"
			Iptc4xmpExt:City="Paris"/>`),
		out: Results{
			"xmp-general": {"Contact": Struct{
				"CiAdrCity":   "Giverny",
				"CiEmailWork": "claude@example.com",
			}},
		},
	},
	{
		desc: "array of structures",
		in: wrap(`<Iptc4xmpExt:LocationShown><rdf:Bag>
			<rdf:li rdf:parseType="Resource">
				<Iptc4xmpExt:City>Paris</Iptc4xmpExt:City>
				<Iptc4xmpExt:CountryName>France</Iptc4xmpExt:CountryName>
			</rdf:li>
			<rdf:li><rdf:Description Iptc4xmpExt:City="Lyon"/></rdf:li>
			<rdf:li Iptc4xmpExt:Sublocation="Old Town"/>
		</rdf:Bag></Iptc4xmpExt:LocationShown>`),
		out: Results{
			"xmp-special": {"LocationShown": List{
				Struct{"City": "Paris", "Country": "France"},
				Struct{"City": "Lyon"},
				Struct{"Sublocation": "Old Town"},
			}},
		},
	},
	{
		desc: "qualifiers with parseType Resource",
		in: wrap(`<dc:source rdf:parseType="Resource">
			<rdf:value>archive</rdf:value>
			<xmp:Rating>4</xmp:Rating>
		</dc:source>`),
		out: Results{
			"xmp-general": {"dc-source": "archive"},
		},
	},
	{
		desc: "qualifiers with inner description",
		in: wrap(`<dc:source><rdf:Description>
			<rdf:value>archive</rdf:value>
			<tiff:Make>Canon</tiff:Make>
		</rdf:Description></dc:source>`),
		out: Results{
			"xmp-general": {"dc-source": "archive"},
		},
	},
	{
		desc: "qualified array items",
		in: wrap(`<dc:creator><rdf:Seq>
			<rdf:li rdf:parseType="Resource"><rdf:value>Claude Monet</rdf:value><x:role xmlns:x="http://ns.example.com/">painter</x:role></rdf:li>
		</rdf:Seq></dc:creator>`),
		out: Results{
			"xmp-general": {"Artist": List{"Claude Monet"}},
		},
	},
	{
		desc: "element inside simple property",
		in:   wrap(`<tiff:Model>EOS <b xmlns="http://ns.example.com/">5D</b></tiff:Model><tiff:Make>Canon</tiff:Make>`),
		out: Results{
			"xmp-exif": {"Make": "Canon"},
		},
	},
	{
		desc: "validated values",
		in: head + `<rdf:Description
			xmp:CreateDate="1982-12-15T20:12+02:30"
			xmp:Rating="7"
			xmp:ModifyDate="0000-01-01"
			exif:GPSLatitude="1,1,1S"
			exif:FNumber="lol"/>` + foot,
		out: Results{
			"xmp-general": {"DateTimeDigitized": "1982:12:15 22:42", "Rating": "5"},
			"xmp-exif":    {"GPSLatitude": -1.0169444444444444},
		},
	},
	{
		desc: "unrecognized elements and attributes",
		in: head + `<rdf:Description rdf:about="" foo="bar" tiff:Unknown="1">
			<tiff:Other>1</tiff:Other>
			<Bar>x</Bar>
			<rdf:type>y</rdf:type>
			<tiff:Make>Canon</tiff:Make>
		</rdf:Description>
		<rdf:Other/>` + foot,
		out: Results{
			"xmp-exif": {"Make": "Canon"},
		},
	},
	{
		desc: "character data before description",
		in:   head + `text<rdf:Description tiff:Make="Canon">more</rdf:Description>` + foot,
		out: Results{
			"xmp-exif": {"Make": "Canon"},
		},
	},
	{
		desc: "multiple descriptions",
		in: head + `<rdf:Description tiff:Make="Canon" tiff:Model="A"/>
			<rdf:Description xmlns:t2="http://ns.adobe.com/tiff/1.0/" t2:Model="B"/>` + foot,
		out: Results{
			"xmp-exif": {"Make": "Canon", "Model": "B"},
		},
	},
	{
		desc: "extra XML around the packet",
		in: `<?xpacket begin="` + "\uFEFF" + `" id="W5M0MpCehiHzreSzNTczkc9d"?>` +
			`<wrapper><tiff:Make xmlns:tiff="http://ns.adobe.com/tiff/1.0/">X</tiff:Make></wrapper>`,
		out: Results{},
	},
	{
		desc: "packet wrapper",
		in: `<?xpacket begin="` + "\uFEFF" + `" id="W5M0MpCehiHzreSzNTczkc9d"?>` +
			wrap(`<tiff:Make>Canon</tiff:Make>`) + `<?xpacket end="w"?>`,
		out: Results{
			"xmp-exif": {"Make": "Canon"},
		},
	},
}

var cmpResults = cmpopts.EquateApprox(0, 1e-12)

func TestParse(t *testing.T) {
	for _, test := range parseTestCases {
		t.Run(test.desc, func(t *testing.T) {
			r := New()
			if !r.Parse([]byte(test.in), true) {
				t.Fatalf("parse failed: %v", r.Err())
			}
			if d := cmp.Diff(test.out, r.RawResults(), cmpResults); d != "" {
				t.Errorf("wrong results (-want +got):\n%s", d)
			}
		})
	}
}

// TestParseChunks checks that splitting the input into chunks does not
// change the results.
func TestParseChunks(t *testing.T) {
	for _, size := range []int{1, 2, 3, 7, 64} {
		for _, test := range parseTestCases {
			t.Run(fmt.Sprintf("%s/%d", test.desc, size), func(t *testing.T) {
				in := []byte(test.in)
				r := New()
				for len(in) > 0 {
					n := min(size, len(in))
					if !r.Parse(in[:n], n == len(in)) {
						t.Fatalf("parse failed: %v", r.Err())
					}
					in = in[n:]
				}
				if d := cmp.Diff(test.out, r.RawResults(), cmpResults); d != "" {
					t.Errorf("wrong results (-want +got):\n%s", d)
				}
			})
		}
	}
}

func TestMultipleDocuments(t *testing.T) {
	xmp1 := `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"` +
		` xmlns:t="http://ns.adobe.com/tiff/1.0/">` +
		`<rdf:Description t:Artist="Claude Monet"/></rdf:RDF>`
	xmp2 := `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"` +
		` xmlns:t2="http://ns.adobe.com/tiff/1.0/">` +
		`<rdf:Description t2:Model="SuperScanner"/></rdf:RDF>`

	r := New()
	if !r.Parse([]byte(xmp1), true) {
		t.Fatal(r.Err())
	}
	if !r.Parse([]byte(xmp2), true) {
		t.Fatal(r.Err())
	}

	want := Results{
		"xmp-exif": {
			"Artist": "Claude Monet",
			"Model":  "SuperScanner",
		},
	}
	if d := cmp.Diff(want, r.Results()); d != "" {
		t.Errorf("wrong results (-want +got):\n%s", d)
	}
}

func TestMalformed(t *testing.T) {
	r := New()
	in := head + `<rdf:Description tiff:Make="Canon"/><rdf:Description><tiff:Model>A</rdf:Description>` + foot
	if r.Parse([]byte(in), true) {
		t.Fatal("malformed document accepted")
	}
	if !errors.Is(r.Err(), errMalformed) {
		t.Errorf("wrong error %v", r.Err())
	}
	want := Results{"xmp-exif": {"Make": "Canon"}}
	if d := cmp.Diff(want, r.Results()); d != "" {
		t.Errorf("salvaged values are wrong (-want +got):\n%s", d)
	}

	// the next document is parsed normally
	if !r.Parse([]byte(wrap(`<tiff:Model>B</tiff:Model>`)), true) {
		t.Fatalf("parse failed: %v", r.Err())
	}
	want = Results{"xmp-exif": {"Make": "Canon", "Model": "B"}}
	if d := cmp.Diff(want, r.Results()); d != "" {
		t.Errorf("wrong results (-want +got):\n%s", d)
	}
}

func TestMalformedChunks(t *testing.T) {
	r := New()
	if r.Parse([]byte(head+`<rdf:Description tiff:Make="Canon"/></rdf:Bag>`), false) {
		t.Fatal("mismatched end tag accepted")
	}
	if r.Parse([]byte(foot), false) {
		t.Error("parse succeeded after error")
	}
	if r.Parse(nil, true) {
		t.Error("parse succeeded after error")
	}
	if !r.Parse([]byte(wrap(`<tiff:Model>B</tiff:Model>`)), true) {
		t.Errorf("new document failed: %v", r.Err())
	}
}

func TestNotXML(t *testing.T) {
	for _, in := range []string{"", "hello world", "<", "<rdf:RDF", "\x00\x00\x00"} {
		r := New()
		if r.Parse([]byte(in), true) {
			t.Errorf("%q accepted", in)
		}
		if len(r.RawResults()) != 0 {
			t.Errorf("%q: unexpected results", in)
		}
	}
}

func TestTooDeep(t *testing.T) {
	r := New(WithMaxDepth(10))
	body := strings.Repeat("<a>", 20) + strings.Repeat("</a>", 20)
	in := head + `<rdf:Description tiff:Make="Canon"/>` + body + foot
	if r.Parse([]byte(in), true) {
		t.Fatal("deeply nested document accepted")
	}
	if !errors.Is(r.Err(), errTooDeep) {
		t.Errorf("wrong error %v", r.Err())
	}
	want := Results{"xmp-exif": {"Make": "Canon"}}
	if d := cmp.Diff(want, r.Results()); d != "" {
		t.Errorf("wrong results (-want +got):\n%s", d)
	}
}

func TestDoctype(t *testing.T) {
	in := `<?xml version="1.0"?>
<!DOCTYPE rdf:RDF [<!ENTITY lol "lol">]>` + wrap(`<tiff:Make>&lol;</tiff:Make>`)

	r := New()
	valid := true
	for i := 0; i < len(in); i++ {
		valid = r.Parse([]byte{in[i]}, i == len(in)-1)
	}
	if valid {
		t.Error("document type declaration not detected")
	}
	if !errors.Is(r.Err(), errUnsafe) {
		t.Errorf("wrong error %v", r.Err())
	}
	if len(r.RawResults()) != 0 {
		t.Errorf("unexpected results %v", r.RawResults())
	}

	// the reader refuses all further input
	if r.Parse([]byte(wrap(`<tiff:Make>Canon</tiff:Make>`)), true) {
		t.Error("input accepted after document type declaration")
	}
	if len(r.RawResults()) != 0 {
		t.Errorf("unexpected results %v", r.RawResults())
	}
}

func TestDoctypeAfterData(t *testing.T) {
	r := New()
	if !r.Parse([]byte(wrap(`<tiff:Make>Canon</tiff:Make>`)), true) {
		t.Fatal(r.Err())
	}
	if !r.Parse([]byte(head+`<rdf:Description tiff:Model="A"/>`), false) {
		t.Fatal(r.Err())
	}
	if r.Parse([]byte(`<!DocType`), false) {
		t.Error("document type declaration not detected")
	}
	if r.Parse([]byte(foot), true) {
		t.Error("input accepted after document type declaration")
	}
	want := Results{"xmp-exif": {"Make": "Canon", "Model": "A"}}
	if d := cmp.Diff(want, r.RawResults()); d != "" {
		t.Errorf("wrong results (-want +got):\n%s", d)
	}
}

func TestDoctypeFalsePositive(t *testing.T) {
	in := wrap(`<!-- <!DOCTYP --><tiff:Make>&lt;!DOCTYP</tiff:Make>`)
	r := New()
	var valid bool
	for len(in) > 0 {
		n := min(10, len(in))
		valid = r.Parse([]byte(in[:n]), n == len(in))
		in = in[n:]
	}
	if !valid {
		t.Fatalf("parse failed: %v", r.Err())
	}
	want := Results{"xmp-exif": {"Make": "<!DOCTYP"}}
	if d := cmp.Diff(want, r.Results()); d != "" {
		t.Errorf("wrong results (-want +got):\n%s", d)
	}
}

func TestDirective(t *testing.T) {
	r := New()
	if r.Parse([]byte(`<!ELEMENT x ANY>`+wrap(`<tiff:Make>Canon</tiff:Make>`)), true) {
		t.Error("directive accepted")
	}
	if !errors.Is(r.Err(), errUnsafe) {
		t.Errorf("wrong error %v", r.Err())
	}
}

func TestNullBytes(t *testing.T) {
	in := strings.ReplaceAll(head+`<rdf:Description exif:Flash="9~"/>`+foot+"~~", "~", "\x00")
	r := New()
	var valid bool
	for len(in) > 0 {
		n := min(10, len(in))
		valid = r.Parse([]byte(in[:n]), n == len(in))
		in = in[n:]
	}
	if !valid {
		t.Fatalf("parse failed: %v", r.Err())
	}
	want := Results{"xmp-exif": {"Flash": "9"}}
	if d := cmp.Diff(want, r.Results()); d != "" {
		t.Errorf("wrong results (-want +got):\n%s", d)
	}
}

func TestLogging(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := New(WithLogger(zap.New(core)))
	in := wrap(`<tiff:Other>1</tiff:Other><tiff:Make>Canon</tiff:Make>`)
	if !r.Parse([]byte(in), true) {
		t.Fatal(r.Err())
	}

	entries := logs.FilterMessage("ignoring unrecognized element").AllUntimed()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	want := map[string]any{
		"ns":   "http://ns.adobe.com/tiff/1.0/",
		"name": "Other",
	}
	if d := cmp.Diff(want, entries[0].ContextMap()); d != "" {
		t.Errorf("wrong log fields (-want +got):\n%s", d)
	}

	logs.TakeAll()
	r.Parse([]byte(head+`<rdf:Description xmp:Rating="lol"/>`+foot), true)
	entries = logs.AllUntimed()
	if len(entries) != 1 || entries[0].Message != "expected rating" {
		t.Errorf("expected a single rejection record, got %v", entries)
	}
}

func TestResults(t *testing.T) {
	in := wrap(`<dc:creator><rdf:Seq><rdf:li>Claude Monet</rdf:li><rdf:li>Edgar Degas</rdf:li></rdf:Seq></dc:creator>
		<photoshop:AuthorsPosition>Painter</photoshop:AuthorsPosition>
		<xmpNote:HasExtendedXMP>0123456789ABCDEF0123456789ABCDEF</xmpNote:HasExtendedXMP>
		<Iptc4xmpExt:LocationCreated><rdf:Bag>
			<rdf:li Iptc4xmpExt:City="Giverny" Iptc4xmpExt:CountryName="France"/>
			<rdf:li Iptc4xmpExt:City="Paris"/>
		</rdf:Bag></Iptc4xmpExt:LocationCreated>
		<exif:GPSAltitude>100/10</exif:GPSAltitude>
		<exif:GPSAltitudeRef>1</exif:GPSAltitudeRef>`)
	r := New()
	if !r.Parse([]byte(in), true) {
		t.Fatal(r.Err())
	}

	want := Results{
		"xmp-general": {
			"Artist":         List{"Claude Monet, Painter", "Edgar Degas"},
			"CityCreated":    "Giverny",
			"CountryCreated": "France",
		},
		"xmp-exif": {
			"GPSAltitude": -10.0,
		},
	}
	if d := cmp.Diff(want, r.Results()); d != "" {
		t.Errorf("wrong results (-want +got):\n%s", d)
	}

	// Results must not modify the stored values
	raw := r.RawResults()
	if got := raw["xmp-general"]["Artist"]; !cmp.Equal(got, List{"Claude Monet", "Edgar Degas"}) {
		t.Errorf("raw Artist changed to %v", got)
	}
	if got := raw["xmp-exif"]["GPSAltitudeRef"]; got != "1" {
		t.Errorf("raw GPSAltitudeRef is %v", got)
	}
	if _, ok := raw["xmp-special"]["HasExtendedXMP"]; !ok {
		t.Error("HasExtendedXMP missing from raw results")
	}
}

func TestFlatten(t *testing.T) {
	res := Results{
		"xmp-general":    {"DateTimeOriginal": "general", "A": "1"},
		"xmp-deprecated": {"DateTimeOriginal": "deprecated", "B": "2"},
		"xmp-exif":       {"DateTimeOriginal": "exif"},
	}
	want := map[string]any{"DateTimeOriginal": "general", "A": "1", "B": "2"}
	if d := cmp.Diff(want, res.Flatten(DefaultPrecedence)); d != "" {
		t.Errorf("wrong result (-want +got):\n%s", d)
	}

	got := res.Flatten([]registry.Group{registry.Deprecated, registry.Exif})
	want = map[string]any{"DateTimeOriginal": "deprecated", "B": "2"}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("wrong result (-want +got):\n%s", d)
	}

	if d := cmp.Diff([]string{"xmp-deprecated", "xmp-exif", "xmp-general"}, res.Groups()); d != "" {
		t.Errorf("wrong groups (-want +got):\n%s", d)
	}
}

func TestIsSupported(t *testing.T) {
	if !IsSupported() {
		t.Error("IsSupported returned false")
	}
}
