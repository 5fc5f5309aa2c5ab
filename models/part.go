package models

import "encoding/json"

// Part identifies a member's instrument section.
type Part string

const (
	PartFlute      Part = "fl"
	PartClarinet   Part = "cl"
	PartSaxophone  Part = "sax"
	PartDoubleReed Part = "wr"
	PartTrumpet    Part = "trp"
	PartHorn       Part = "hrn"
	PartTrombone   Part = "trb"
	PartBass       Part = "bass"
	PartPercussion Part = "perc"
	PartUnknown    Part = "unk"
)

// Parts lists every part in section order.
var Parts = []Part{
	PartFlute, PartClarinet, PartSaxophone, PartDoubleReed, PartTrumpet,
	PartHorn, PartTrombone, PartBass, PartPercussion, PartUnknown,
}

// PartDetail carries the display names of a part.
type PartDetail struct {
	JP      string `json:"jp"`
	EN      string `json:"en"`
	ENShort string `json:"en_short"`
}

var partDetails = map[Part]PartDetail{
	PartFlute:      {JP: "フルート", EN: "Flute", ENShort: "Fl"},
	PartClarinet:   {JP: "クラリネット", EN: "Clarinet", ENShort: "Cl"},
	PartSaxophone:  {JP: "サクソフォン", EN: "Saxophone", ENShort: "Sax"},
	PartDoubleReed: {JP: "ダブルリード", EN: "Double Reed", ENShort: "Wr"},
	PartTrumpet:    {JP: "トランペット", EN: "Trumpet", ENShort: "Tp"},
	PartHorn:       {JP: "ホルン", EN: "Horn", ENShort: "Hrn"},
	PartTrombone:   {JP: "トロンボーン", EN: "Trombone", ENShort: "Tb"},
	PartBass:       {JP: "バス", EN: "Bass", ENShort: "Bass"},
	PartPercussion: {JP: "パーカッション", EN: "Percussion", ENShort: "Perc"},
	PartUnknown:    {JP: "不明", EN: "Unknown", ENShort: "-"},
}

// Detail returns the display names for the part.
func (p Part) Detail() PartDetail {
	if d, ok := partDetails[p]; ok {
		return d
	}
	return partDetails[PartUnknown]
}

// NormalizePart maps an arbitrary string onto a known part value.
// Anything unrecognized becomes PartUnknown rather than an error.
func NormalizePart(value string) Part {
	if _, ok := partDetails[Part(value)]; ok {
		return Part(value)
	}
	return PartUnknown
}

func (p *Part) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*p = NormalizePart(s)
	return nil
}
