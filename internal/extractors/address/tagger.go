// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package address

import (
	"errors"
	"regexp"
	"strings"
)

// Label names the role of a token in a US address.
type Label string

const (
	AddressNumber             Label = "AddressNumber"
	StreetNamePreDirectional  Label = "StreetNamePreDirectional"
	StreetNamePreType         Label = "StreetNamePreType"
	StreetName                Label = "StreetName"
	StreetNamePostType        Label = "StreetNamePostType"
	StreetNamePostDirectional Label = "StreetNamePostDirectional"
	OccupancyType             Label = "OccupancyType"
	OccupancyIdentifier       Label = "OccupancyIdentifier"
	SubaddressType            Label = "SubaddressType"
	SubaddressIdentifier      Label = "SubaddressIdentifier"
	USPSBoxType               Label = "USPSBoxType"
	USPSBoxID                 Label = "USPSBoxID"
	PlaceName                 Label = "PlaceName"
	StateName                 Label = "StateName"
	ZipCode                   Label = "ZipCode"
)

// streetLabels are concatenated, in tag order, to form the street line.
var streetLabels = map[Label]bool{
	AddressNumber:             true,
	StreetNamePreDirectional:  true,
	StreetNamePreType:         true,
	StreetName:                true,
	StreetNamePostType:        true,
	StreetNamePostDirectional: true,
	OccupancyType:             true,
	OccupancyIdentifier:       true,
	SubaddressType:            true,
	SubaddressIdentifier:      true,
	USPSBoxType:               true,
	USPSBoxID:                 true,
}

// ErrRepeatedLabel is returned when the text holds more than one address, so
// the same label appears in two separate runs.
var ErrRepeatedLabel = errors.New("address: repeated component label")

// Component is a labelled span of the input.
type Component struct {
	Label Label
	Text  string
}

const (
	maxStreetWords = 4
	maxPlaceWords  = 3
)

var (
	houseNumber = regexp.MustCompile(`^\d{1,6}[A-Za-z]?$|^\d{1,5}-\d{1,5}$`)
	ordinal     = regexp.MustCompile(`^(?i)\d+(?:st|nd|rd|th)$`)
	zipCode     = regexp.MustCompile(`^\d{5}(?:-\d{4})?$`)
	nameWord    = regexp.MustCompile(`^[A-Za-z][A-Za-z'&-]*$`)
	placeWord   = regexp.MustCompile(`^[A-Z][A-Za-z'.-]*$`)
	numeric     = regexp.MustCompile(`^\d+[A-Za-z]?$`)
)

var directionals = map[string]bool{
	"N": true, "S": true, "E": true, "W": true,
	"NE": true, "NW": true, "SE": true, "SW": true,
	"NORTH": true, "SOUTH": true, "EAST": true, "WEST": true,
	"NORTHEAST": true, "NORTHWEST": true, "SOUTHEAST": true, "SOUTHWEST": true,
}

var preTypes = map[string]bool{
	"HIGHWAY": true, "HWY": true, "ROUTE": true, "RTE": true,
	"INTERSTATE": true, "SH": true, "US": true,
}

var occupancyTypes = map[string]bool{
	"SUITE": true, "STE": true, "APT": true, "APARTMENT": true,
	"UNIT": true, "ROOM": true, "RM": true, "#": true,
}

var subaddressTypes = map[string]bool{
	"BLDG": true, "BUILDING": true, "FLOOR": true, "FL": true, "LOT": true,
}

type token struct {
	text string
	sep  bool
}

func tokenize(text string) []token {
	text = strings.NewReplacer(",", " , ", ";", " ; ").Replace(text)
	var toks []token
	for _, f := range strings.Fields(text) {
		if f == "," || f == ";" {
			toks = append(toks, token{text: f, sep: true})
			continue
		}
		w := strings.Trim(f, `()"'[]:.`)
		if w == "" {
			continue
		}
		toks = append(toks, token{text: w})
	}
	return toks
}

// Tagger labels the address components of free text.
type Tagger struct {
	states *StateTable
}

// NewTagger creates a tagger that recognizes the states in the table.
func NewTagger(states *StateTable) *Tagger {
	if states == nil {
		states = NewStateTable(nil)
	}
	return &Tagger{states: states}
}

// tagSet accumulates components, merging adjacent tokens with the same label.
type tagSet struct {
	components []Component
	seen       map[Label]bool
	open       bool
}

func (s *tagSet) add(c Component) error {
	if s.seen == nil {
		s.seen = make(map[Label]bool)
	}
	if n := len(s.components); s.open && n > 0 && s.components[n-1].Label == c.Label {
		s.components[n-1].Text += " " + c.Text
		return nil
	}
	if s.seen[c.Label] {
		return ErrRepeatedLabel
	}
	s.seen[c.Label] = true
	s.components = append(s.components, c)
	s.open = true
	return nil
}

func (s *tagSet) breakRun() { s.open = false }

// Tag returns the address components found in text, in order. Tokens that
// are not part of an address are dropped.
func (t *Tagger) Tag(text string) ([]Component, error) {
	toks := tokenize(text)
	var tags tagSet
	for i := 0; i < len(toks); {
		comps, next := t.parseAt(toks, i)
		if next == i {
			tags.breakRun()
			i++
			continue
		}
		for _, c := range comps {
			if err := tags.add(c); err != nil {
				return nil, err
			}
		}
		tags.breakRun()
		i = next
	}
	return tags.components, nil
}

func (t *Tagger) parseAt(toks []token, i int) ([]Component, int) {
	if comps, j, ok := t.parseStreet(toks, i); ok {
		place, k := t.parsePlace(toks, j, true)
		return append(comps, place...), k
	}
	// A bare "City, ST 12345" line needs all three parts.
	place, k := t.parsePlace(toks, i, false)
	if hasLabel(place, PlaceName) && hasLabel(place, StateName) && hasLabel(place, ZipCode) {
		return place, k
	}
	return nil, i
}

func (t *Tagger) parseStreet(toks []token, i int) ([]Component, int, bool) {
	n := len(toks)
	j := i
	var comps []Component
	word := func(k int) string {
		if k < n && !toks[k].sep {
			return toks[k].text
		}
		return ""
	}

	if w, ok := poBoxAt(toks, j); ok {
		id := word(j + w)
		if id == "" || !numeric.MatchString(id) {
			return nil, i, false
		}
		comps = append(comps, Component{USPSBoxType, "PO Box"}, Component{USPSBoxID, id})
		return comps, j + w + 1, true
	}

	if !houseNumber.MatchString(word(j)) {
		return nil, i, false
	}
	comps = append(comps, Component{AddressNumber, toks[j].text})
	j++

	if directionals[strings.ToUpper(word(j))] && word(j+1) != "" && !isStreetSuffix(word(j+1)) {
		comps = append(comps, Component{StreetNamePreDirectional, toks[j].text})
		j++
	}

	terminal := false
	names := 0
	if preTypes[strings.ToUpper(word(j))] && numeric.MatchString(word(j+1)) {
		comps = append(comps, Component{StreetNamePreType, toks[j].text}, Component{StreetName, toks[j+1].text})
		j += 2
		names = 1
		terminal = true
	} else {
		for j < n {
			w := word(j)
			if w == "" {
				break
			}
			if names > 0 && isStreetSuffix(w) {
				comps = append(comps, Component{StreetNamePostType, w})
				j++
				terminal = true
				break
			}
			if names == maxStreetWords {
				break
			}
			if ordinal.MatchString(w) {
				comps = appendComponent(comps, StreetName, w)
				names++
				j++
				if s := word(j); s != "" && isStreetSuffix(s) {
					comps = append(comps, Component{StreetNamePostType, s})
					j++
				}
				terminal = true
				break
			}
			// "348928 E 910 Road": a numbered road.
			if names == 0 && numeric.MatchString(w) && isStreetSuffix(word(j+1)) {
				comps = append(comps, Component{StreetName, w})
				names++
				j++
				continue
			}
			// "12101 N MacArthur Box 158": a rural box after the street name.
			if names > 0 && strings.EqualFold(w, "Box") && numeric.MatchString(word(j+1)) {
				comps = append(comps, Component{USPSBoxType, w}, Component{USPSBoxID, toks[j+1].text})
				j += 2
				terminal = true
				break
			}
			if !nameWord.MatchString(w) {
				break
			}
			comps = appendComponent(comps, StreetName, w)
			names++
			j++
		}
	}
	if names == 0 {
		return nil, i, false
	}
	if !terminal {
		// "100 Broadway, Tulsa, OK" has no street type; accept it only
		// when a city line with a state or zip follows.
		if j >= n || toks[j].text != "," {
			return nil, i, false
		}
		place, _ := t.parsePlace(toks, j, true)
		if !hasLabel(place, StateName) && !hasLabel(place, ZipCode) {
			return nil, i, false
		}
	}

	if d := word(j); directionals[strings.ToUpper(d)] && (j+1 >= n || toks[j+1].sep || occupancyTypes[strings.ToUpper(word(j+1))]) {
		comps = append(comps, Component{StreetNamePostDirectional, d})
		j++
	}

	// "Parkway, Suite 170": the unit may follow a comma.
	if j < n && toks[j].text == "," {
		if w := word(j + 1); (strings.HasPrefix(w, "#") && len(w) > 1) || (occupancyTypes[strings.ToUpper(w)] && word(j+2) != "") {
			j++
		}
	}

	if w := word(j); strings.HasPrefix(w, "#") && len(w) > 1 {
		comps = append(comps, Component{OccupancyType, "#"}, Component{OccupancyIdentifier, w[1:]})
		j++
	} else if occupancyTypes[strings.ToUpper(w)] && word(j+1) != "" {
		comps = append(comps, Component{OccupancyType, w}, Component{OccupancyIdentifier, toks[j+1].text})
		j += 2
	}

	if w := word(j); subaddressTypes[strings.ToUpper(w)] && numeric.MatchString(word(j+1)) {
		comps = append(comps, Component{SubaddressType, w}, Component{SubaddressIdentifier, toks[j+1].text})
		j += 2
	}

	return comps, j, true
}

// parsePlace reads "City, ST 12345" starting at j. afterStreet allows a city
// on its own when a comma separates it from the street.
func (t *Tagger) parsePlace(toks []token, j int, afterStreet bool) ([]Component, int) {
	n := len(toks)
	start := j
	commaBefore := false
	if j < n && toks[j].text == "," {
		commaBefore = true
		j++
	}

	var comps []Component
	words := 0
	for j < n && words < maxPlaceWords {
		tk := toks[j]
		if tk.sep || zipCode.MatchString(tk.text) {
			break
		}
		if w := t.stateAt(toks, j); w > 0 && (words > 0 || (j+w < n && zipCode.MatchString(toks[j+w].text))) {
			break
		}
		if !placeWord.MatchString(tk.text) {
			break
		}
		comps = appendComponent(comps, PlaceName, tk.text)
		words++
		j++
	}
	cityEnd := j

	if j < n && toks[j].text == "," {
		j++
	}
	if w := t.stateAt(toks, j); w > 0 {
		comps = append(comps, Component{StateName, joinTokens(toks[j : j+w])})
		j += w
	}
	if j < n && zipCode.MatchString(toks[j].text) {
		comps = append(comps, Component{ZipCode, toks[j].text})
		j++
	}

	if !hasLabel(comps, StateName) && !hasLabel(comps, ZipCode) {
		if !afterStreet || !commaBefore || !hasLabel(comps, PlaceName) {
			return nil, start
		}
		j = cityEnd
	}
	return comps, j
}

// stateAt returns how many tokens at j form a state name or code, or 0.
func (t *Tagger) stateAt(toks []token, j int) int {
	n := len(toks)
	for w := t.states.maxWords; w >= 1; w-- {
		if j+w > n {
			continue
		}
		span := toks[j : j+w]
		if hasSeparator(span) {
			continue
		}
		text := joinTokens(span)
		if w == 1 && t.states.IsCode(text) {
			if text == strings.ToUpper(text) || (j+1 < n && zipCode.MatchString(toks[j+1].text)) {
				return 1
			}
			continue
		}
		if !t.states.IsName(text) {
			continue
		}
		// "Oklahoma City" is a place, not a state.
		if j+w < n && !toks[j+w].sep && placeWord.MatchString(toks[j+w].text) && !t.states.IsCode(toks[j+w].text) {
			continue
		}
		return w
	}
	return 0
}

// Assemble builds an address record from tagged components.
func Assemble(comps []Component) (street, city, state, zip string) {
	var parts []string
	for _, c := range comps {
		switch {
		case streetLabels[c.Label]:
			parts = append(parts, c.Text)
		case c.Label == PlaceName:
			city = c.Text
		case c.Label == StateName:
			state = c.Text
		case c.Label == ZipCode:
			zip = c.Text
		}
	}
	return strings.Join(parts, " "), city, state, zip
}

func poBoxAt(toks []token, j int) (int, bool) {
	upper := func(k int) string {
		if k < len(toks) && !toks[k].sep {
			return strings.ToUpper(strings.ReplaceAll(toks[k].text, ".", ""))
		}
		return ""
	}
	switch {
	case upper(j) == "PO" && upper(j+1) == "BOX":
		return 2, true
	case upper(j) == "P" && upper(j+1) == "O" && upper(j+2) == "BOX":
		return 3, true
	case upper(j) == "POST" && upper(j+1) == "OFFICE" && upper(j+2) == "BOX":
		return 3, true
	case upper(j) == "POB":
		return 1, true
	}
	return 0, false
}

func appendComponent(comps []Component, label Label, text string) []Component {
	if n := len(comps); n > 0 && comps[n-1].Label == label {
		comps[n-1].Text += " " + text
		return comps
	}
	return append(comps, Component{label, text})
}

func hasLabel(comps []Component, label Label) bool {
	for _, c := range comps {
		if c.Label == label {
			return true
		}
	}
	return false
}

func hasSeparator(toks []token) bool {
	for _, tk := range toks {
		if tk.sep {
			return true
		}
	}
	return false
}

func joinTokens(toks []token) string {
	parts := make([]string, len(toks))
	for i, tk := range toks {
		parts[i] = tk.text
	}
	return strings.Join(parts, " ")
}
