package models

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// localLayouts are the non-ISO shapes older app versions wrote (JavaScript
// toLocaleString and friends). They carry no zone, so they are read as local
// time. Only the en-US month-first shapes are accepted: a 24-hour
// "d/m/yyyy, hh:mm:ss" value from other locales is indistinguishable from
// a month-first one for days up to 12, so it is kept verbatim instead.
var localLayouts = []string{
	"1/2/2006, 3:04:05 PM",
	"1/2/2006 3:04:05 PM",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// localSpaces maps the no-break spaces ICU puts before the day period
// ("6:56:46\u202fAM") to a plain space.
var localSpaces = strings.NewReplacer("\u202f", " ", "\u00a0", " ")

// Timestamp is a formatted point in time as stored on a note. Values that
// match no known layout are kept verbatim so they survive a save unchanged;
// such values have a zero Time.
type Timestamp struct {
	t   time.Time
	raw string
}

// NewTimestamp wraps t in UTC without its monotonic reading.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t: t.Round(0).UTC()}
}

// ParseTimestamp reads s in any of the supported layouts.
func ParseTimestamp(s string) Timestamp {
	s = strings.TrimSpace(s)
	if s == "" {
		return Timestamp{}
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return NewTimestamp(t)
	}
	local := localSpaces.Replace(s)
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, local, time.Local); err == nil {
			return NewTimestamp(t)
		}
	}
	return Timestamp{raw: s}
}

// Time returns the parsed instant, or the zero time when the value was
// empty or unparsable.
func (ts Timestamp) Time() time.Time { return ts.t }

// IsZero reports whether ts holds neither a time nor a verbatim value.
func (ts Timestamp) IsZero() bool { return ts.t.IsZero() && ts.raw == "" }

func (ts Timestamp) Equal(other Timestamp) bool {
	return ts.t.Equal(other.t) && ts.raw == other.raw
}

func (ts Timestamp) After(other Timestamp) bool { return ts.t.After(other.t) }

func (ts Timestamp) String() string {
	if !ts.t.IsZero() {
		return ts.t.Format(time.RFC3339Nano)
	}
	return ts.raw
}

// Display formats ts for people, in local time.
func (ts Timestamp) Display() string {
	if !ts.t.IsZero() {
		return ts.t.Local().Format("Jan 2, 2006 15:04")
	}
	return ts.raw
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.String())
}

// UnmarshalJSON accepts a string in any supported layout, a number of
// milliseconds since the Unix epoch, or null.
func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*ts = Timestamp{}
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*ts = ParseTimestamp(s)
		return nil
	}

	var ms float64
	if err := json.Unmarshal(b, &ms); err != nil {
		return err
	}
	*ts = NewTimestamp(time.UnixMilli(int64(ms)))
	return nil
}
