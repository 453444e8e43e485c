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

// Package validate normalizes and rejects property values extracted from XMP
// packets.
//
// Every validator is a pure function of a property descriptor and a
// candidate value.  Scalar validators run once per leaf value
// ("standalone"), aggregate validators run once per structure after all
// fields have been collected.  A validator is a no-op outside of the phase it
// is designed for.
package validate

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"seehuhn.de/go/xmpmeta/registry"
)

// Set dispatches values to the validator named by a property descriptor.
// A Set holds no mutable state and can be shared between goroutines.
type Set struct {
	log *zap.Logger
}

// New returns a validator set which reports rejected values to log.
// If log is nil, nothing is logged.
func New(log *zap.Logger) *Set {
	if log == nil {
		log = zap.NewNop()
	}
	return &Set{log: log}
}

// Validate checks the value v against the validator named by d.Check.
// On success, the normalized value is returned together with true.
// If the value is rejected, an informational log record is emitted and
// Validate returns nil, false.
//
// Scalar values are passed as strings with standalone set to true.
// Structures are passed as map[string]any with standalone set to false.
func (s *Set) Validate(d *registry.Descriptor, v any, standalone bool) (any, bool) {
	var fn func(*registry.Descriptor, any) (any, bool)
	scalar := true
	switch d.Check {
	case registry.CheckNone:
		return v, true
	case registry.CheckBoolean:
		fn = s.boolean
	case registry.CheckRational:
		fn = s.rational
	case registry.CheckRating:
		fn = s.rating
	case registry.CheckInteger:
		fn = s.integer
	case registry.CheckClosed:
		fn = s.closed
	case registry.CheckReal:
		fn = s.real
	case registry.CheckLangCode:
		fn = s.langCode
	case registry.CheckDate:
		fn = s.date
	case registry.CheckGPS:
		fn = s.gps
	case registry.CheckFlash:
		fn = s.flash
		scalar = false
	default:
		s.log.Info("unknown validator",
			zap.Stringer("check", d.Check),
			zap.Stringer("property", d))
		return nil, false
	}
	if scalar != standalone {
		return v, true
	}
	return fn(d, v)
}

func (s *Set) reject(d *registry.Descriptor, msg string, v any) {
	s.log.Info(msg,
		zap.Stringer("check", d.Check),
		zap.String("ns", d.Namespace),
		zap.String("name", d.Local),
		zap.Any("value", v))
}

// text extracts the string form of a scalar value.
func (s *Set) text(d *registry.Descriptor, v any) (string, bool) {
	str, ok := v.(string)
	if !ok {
		s.reject(d, "expected a text value", v)
	}
	return str, ok
}

func (s *Set) boolean(d *registry.Descriptor, v any) (any, bool) {
	val, ok := s.text(d, v)
	if !ok {
		return nil, false
	}
	if val != "True" && val != "False" {
		s.reject(d, "expected True or False", val)
		return nil, false
	}
	return val, true
}

var (
	rationalRE = regexp.MustCompile(`^-?\d+/(?:\d+[1-9]|[1-9]\d*)$`)
	ratingRE   = regexp.MustCompile(`^[-+]?\d*\.?\d*$`)
	integerRE  = regexp.MustCompile(`^[-+]?\d+$`)
	langCodeRE = regexp.MustCompile(`^[-A-Za-z0-9]{2,}$`)
)

func (s *Set) rational(d *registry.Descriptor, v any) (any, bool) {
	val, ok := s.text(d, v)
	if !ok {
		return nil, false
	}
	if !rationalRE.MatchString(val) {
		s.reject(d, "expected rational", val)
		return nil, false
	}
	return val, true
}

func (s *Set) rating(d *registry.Descriptor, v any) (any, bool) {
	val, ok := s.text(d, v)
	if !ok {
		return nil, false
	}
	x, isNum := parseNumber(val)
	if !ratingRE.MatchString(val) || !isNum {
		s.reject(d, "expected rating", val)
		return nil, false
	}
	switch {
	case x < 0:
		// -1 is the reserved "rejected" rating; values in (-1, 0) are
		// illegal as well.
		s.reject(d, "rating too low, setting to -1 (rejected)", val)
		return "-1", true
	case x > 5:
		s.reject(d, "rating too high, setting to 5", val)
		return "5", true
	}
	return val, true
}

func (s *Set) integer(d *registry.Descriptor, v any) (any, bool) {
	val, ok := s.text(d, v)
	if !ok {
		return nil, false
	}
	if !integerRE.MatchString(val) {
		s.reject(d, "expected integer", val)
		return nil, false
	}
	return val, true
}

func (s *Set) closed(d *registry.Descriptor, v any) (any, bool) {
	val, ok := s.text(d, v)
	if !ok {
		return nil, false
	}
	if d.Choices[val] {
		return val, true
	}
	if x, isNum := parseNumber(val); isNum && d.Range != nil {
		// the range applies to the integer part of the value
		n := float64(int64(x))
		if d.Range.Contains(n) {
			return val, true
		}
	}
	s.reject(d, "expected closed choice", val)
	return nil, false
}

func (s *Set) real(d *registry.Descriptor, v any) (any, bool) {
	val, ok := s.text(d, v)
	if !ok {
		return nil, false
	}
	x, isNum := parseNumber(val)
	if !isNum {
		s.reject(d, "expected real", val)
		return nil, false
	}
	if d.Range != nil && !d.Range.Contains(x) {
		s.log.Info("value out of range",
			zap.Stringer("check", d.Check),
			zap.String("ns", d.Namespace),
			zap.String("name", d.Local),
			zap.String("value", val),
			zap.Float64("low", d.Range.Low),
			zap.Float64("high", d.Range.High))
		return nil, false
	}
	return val, true
}

func (s *Set) langCode(d *registry.Descriptor, v any) (any, bool) {
	val, ok := s.text(d, v)
	if !ok {
		return nil, false
	}
	if !langCodeRE.MatchString(val) {
		s.reject(d, "expected language code", val)
		return nil, false
	}
	return val, true
}

// parseNumber reports whether val is a decimal number, allowing leading
// white space, a sign, a fractional part and an exponent.
func parseNumber(val string) (float64, bool) {
	val = strings.TrimLeft(val, " \t\n\r\v\f")
	if val == "" {
		return 0, false
	}
	for _, c := range val {
		switch {
		case c >= '0' && c <= '9':
		case c == '+' || c == '-' || c == '.' || c == 'e' || c == 'E':
		default:
			// excludes "Inf", "NaN" and hexadecimal forms
			return 0, false
		}
	}
	x, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false
	}
	return x, true
}

var (
	dateRE = regexp.MustCompile(`^([0-3]\d{3})(?:-([01]\d)(?:-([0-3]\d)(?:T([0-2]\d):([0-6]\d)(?::([0-6]\d)(?:\.\d+)?)?([-+]\d{2}:\d{2}|Z)?)?)?)?$`)

	// exifDateRE matches values which are already in normalized form.
	exifDateRE = regexp.MustCompile(`^[0-3]\d{3}(?::[01]\d(?::[0-3]\d(?: [0-2]\d:[0-6]\d(?::[0-6]\d)?)?)?)?$`)
)

// date converts an XMP date to the EXIF form "YYYY:MM:DD HH:MM[:SS]".
// Dates without a time component are kept at their original precision.
func (s *Set) date(d *registry.Descriptor, v any) (any, bool) {
	val, ok := s.text(d, v)
	if !ok {
		return nil, false
	}
	if strings.HasPrefix(val, "0000") {
		s.reject(d, "invalid date (year 0)", val)
		return nil, false
	}
	if exifDateRE.MatchString(val) {
		return val, true
	}

	m := dateRE.FindStringSubmatch(val)
	if m == nil {
		s.reject(d, "expected date", val)
		return nil, false
	}
	year, month, day, hour, minute, sec, tz := m[1], m[2], m[3], m[4], m[5], m[6], m[7]

	if hour == "" {
		res := year
		if month != "" {
			res += ":" + month
		}
		if day != "" {
			res += ":" + day
		}
		return res, true
	}

	res := year + ":" + month + ":" + day + " " + hour + ":" + minute
	if tz == "" || tz == "Z" {
		if sec != "" {
			res += ":" + sec
		}
		return res, true
	}

	stripSeconds := sec == ""
	if stripSeconds {
		sec = "00"
	}
	t := time.Date(atoi(year), time.Month(atoi(month)), atoi(day),
		atoi(hour), atoi(minute), atoi(sec), 0, time.UTC)
	offset := time.Duration(atoi(tz[1:3]))*time.Hour +
		time.Duration(atoi(tz[4:6]))*time.Minute
	if tz[0] == '-' {
		offset = -offset
	}
	t = t.Add(offset)

	if stripSeconds {
		return t.Format("2006:01:02 15:04"), true
	}
	return t.Format("2006:01:02 15:04:05"), true
}

// atoi converts a string of ASCII digits, as matched by dateRE.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

var (
	gpsDMSRE = regexp.MustCompile(`^(\d{1,3}),(\d{1,2}),(\d{1,2})([NWSE])$`)
	gpsDMRE  = regexp.MustCompile(`^(\d{1,3}),(\d{1,2}(?:\.\d*)?)([NWSE])$`)
)

// gps converts a coordinate of the form "D,M,SX" or "D,M.mX" to signed
// decimal degrees.
func (s *Set) gps(d *registry.Descriptor, v any) (any, bool) {
	if x, isFloat := v.(float64); isFloat {
		return x, true
	}
	val, ok := s.text(d, v)
	if !ok {
		return nil, false
	}
	val = strings.TrimSpace(val)

	var coord float64
	var hemisphere string
	if m := gpsDMSRE.FindStringSubmatch(val); m != nil {
		coord = float64(atoi(m[1]))
		coord += float64(atoi(m[2])) * (1.0 / 60)
		coord += float64(atoi(m[3])) * (1.0 / 3600)
		hemisphere = m[4]
	} else if m := gpsDMRE.FindStringSubmatch(val); m != nil {
		minutes, _ := strconv.ParseFloat(m[2], 64)
		coord = float64(atoi(m[1]))
		coord += minutes * (1.0 / 60)
		hemisphere = m[3]
	} else {
		s.reject(d, "expected GPS coordinate", val)
		return nil, false
	}
	if hemisphere == "S" || hemisphere == "W" {
		coord = -coord
	}
	return coord, true
}

// flashFields are the members of an exif:Flash structure, in the order of
// their bits.
var flashFields = []string{"Fired", "Return", "Mode", "Function", "RedEyeMode"}

// flash packs an exif:Flash structure into the EXIF Flash bit field.
func (s *Set) flash(d *registry.Descriptor, v any) (any, bool) {
	if n, isInt := v.(int); isInt {
		return n, true
	}
	fields, ok := v.(map[string]any)
	if !ok {
		s.reject(d, "expected a structure", v)
		return nil, false
	}
	for _, name := range flashFields {
		if _, present := fields[name]; !present {
			s.log.Info("flash structure is incomplete",
				zap.Stringer("check", d.Check),
				zap.String("missing", name))
			return nil, false
		}
	}

	flag := func(name string) int {
		if fields[name] == "True" {
			return 1
		}
		return 0
	}
	num := func(name string) int {
		switch x := fields[name].(type) {
		case int:
			return x
		case string:
			f, _ := parseNumber(x)
			return int(f)
		}
		return 0
	}

	res := flag("Fired") |
		num("Return")<<1 |
		num("Mode")<<3 |
		flag("Function")<<5 |
		flag("RedEyeMode")<<6
	return res, true
}
