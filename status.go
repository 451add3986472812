// seehuhn.de/go/overlay - highlight overlays for PDF pages
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

package overlay

// Status is the verification outcome of a citation.
//
// The text form of a Status is the string used by the citation API.
// Text that matches none of the known values decodes to StatusUnknown,
// which is rendered like StatusPending.
type Status int

// Verification states, in the order a citation usually passes through them.
const (
	StatusUnknown Status = iota
	StatusPending
	StatusVerified
	StatusMismatch
	StatusSectionNotFound
	StatusActUnavailable
)

var statusNames = [...]string{
	StatusUnknown:         "unknown",
	StatusPending:         "pending",
	StatusVerified:        "verified",
	StatusMismatch:        "mismatch",
	StatusSectionNotFound: "section_not_found",
	StatusActUnavailable:  "act_unavailable",
}

// ParseStatus returns the Status with the given text form.
// Unrecognized text gives StatusUnknown.
func ParseStatus(s string) Status {
	for i, name := range statusNames {
		if i != int(StatusUnknown) && name == s {
			return Status(i)
		}
	}
	return StatusUnknown
}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return statusNames[StatusUnknown]
	}
	return statusNames[s]
}

// MarshalText implements [encoding.TextMarshaler].
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// It never fails: unknown values decode to StatusUnknown.
func (s *Status) UnmarshalText(text []byte) error {
	*s = ParseStatus(string(text))
	return nil
}

// Kind is the category of a highlight, used where highlights are coloured
// by what they mark rather than by a verification outcome.
type Kind int

// Highlight categories.
const (
	KindUnknown Kind = iota
	KindCitation
	KindEntity
	KindContradiction
)

var kindNames = [...]string{
	KindUnknown:       "unknown",
	KindCitation:      "citation",
	KindEntity:        "entity",
	KindContradiction: "contradiction",
}

// ParseKind returns the Kind with the given text form.
// Unrecognized text gives KindUnknown.
func ParseKind(s string) Kind {
	for i, name := range kindNames {
		if i != int(KindUnknown) && name == s {
			return Kind(i)
		}
	}
	return KindUnknown
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[KindUnknown]
	}
	return kindNames[k]
}

// MarshalText implements [encoding.TextMarshaler].
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// It never fails: unknown values decode to KindUnknown.
func (k *Kind) UnmarshalText(text []byte) error {
	*k = ParseKind(string(text))
	return nil
}
