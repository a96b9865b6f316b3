package scan

import (
	"fmt"
	"strings"
)

// Kind identifies the notation a match was written in.
type Kind uint8

// Kinds in match priority order.
const (
	KindHexa Kind = iota
	KindHex
	KindHexaCompressed
	KindHexCompressed
	KindRGB
	KindRGBA
	KindHSL
	KindHSLA
	KindHWB
	KindHWBA
	KindGray
	KindGrayA
	KindPantone
	KindRAL
	KindANSI
	KindWebColor

	numKinds
)

var kindNames = [numKinds]string{
	KindHexa:           "hexa",
	KindHex:            "hex",
	KindHexaCompressed: "hexa_compressed",
	KindHexCompressed:  "hex_compressed",
	KindRGB:            "rgb",
	KindRGBA:           "rgba",
	KindHSL:            "hsl",
	KindHSLA:           "hsla",
	KindHWB:            "hwb",
	KindHWBA:           "hwba",
	KindGray:           "gray",
	KindGrayA:          "graya",
	KindPantone:        "pantone_code",
	KindRAL:            "ral_code",
	KindANSI:           "ansi_code",
	KindWebColor:       "webcolor",
}

// String returns the notation's name, which is also its regexp group name.
func (k Kind) String() string {
	if k >= numKinds {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Arity is the number of captured parts a match of this kind carries.
func (k Kind) Arity() int {
	switch k {
	case KindRGB, KindHSL, KindHWB:
		return 3
	case KindRGBA, KindHSLA, KindHWBA:
		return 4
	case KindGrayA:
		return 2
	default:
		return 1
	}
}

// HasAlpha reports whether translations of this kind carry an alpha channel.
func (k Kind) HasAlpha() bool {
	switch k {
	case KindHexa, KindHexaCompressed, KindRGBA, KindHSLA, KindHWBA, KindGrayA:
		return true
	default:
		return false
	}
}

// ParseKind resolves a notation name case-insensitively.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "webcolors" {
		return KindWebColor, nil
	}
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown color notation %q — valid notations: %s", name, strings.Join(kindNames[:], ", "))
}

// KindSet is a set of notation kinds.
type KindSet uint32

// AllKinds contains every notation.
const AllKinds KindSet = 1<<numKinds - 1

// NewKindSet builds a set from kinds.
func NewKindSet(kinds ...Kind) KindSet {
	var s KindSet
	for _, k := range kinds {
		s |= 1 << k
	}
	return s
}

// ParseKindSet parses notation names. An empty list means every notation.
func ParseKindSet(names []string) (KindSet, error) {
	if len(names) == 0 {
		return AllKinds, nil
	}
	var s KindSet
	for _, name := range names {
		k, err := ParseKind(name)
		if err != nil {
			return 0, err
		}
		s |= 1 << k
	}
	return s, nil
}

// Has reports whether k is in the set.
func (s KindSet) Has(k Kind) bool {
	return k < numKinds && s&(1<<k) != 0
}

// Kinds lists the members in priority order.
func (s KindSet) Kinds() []Kind {
	var kinds []Kind
	for k := Kind(0); k < numKinds; k++ {
		if s.Has(k) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// Strings lists the member names in priority order.
func (s KindSet) Strings() []string {
	kinds := s.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}
