// Package statelaw provides the jurisdiction rule catalog for the
// Tenantry evaluation tools: per-state late-fee limits, security
// deposit caps, and lease termination notice requirements.
//
// All rule records are immutable after catalog construction. Lookups
// are keyed by two-letter USPS state codes; callers must source keys
// from AllStates rather than free text. There is no fuzzy matching.
package statelaw

import "sort"

// StateCode identifies a U.S. state or the District of Columbia by its
// two-letter USPS code. Keys are case-sensitive canonical codes.
type StateCode string

// Supported jurisdictions.
const (
	StateAL StateCode = "AL"
	StateAK StateCode = "AK"
	StateAZ StateCode = "AZ"
	StateAR StateCode = "AR"
	StateCA StateCode = "CA"
	StateCO StateCode = "CO"
	StateCT StateCode = "CT"
	StateDE StateCode = "DE"
	StateDC StateCode = "DC"
	StateFL StateCode = "FL"
	StateGA StateCode = "GA"
	StateHI StateCode = "HI"
	StateID StateCode = "ID"
	StateIL StateCode = "IL"
	StateIN StateCode = "IN"
	StateIA StateCode = "IA"
	StateKS StateCode = "KS"
	StateKY StateCode = "KY"
	StateLA StateCode = "LA"
	StateME StateCode = "ME"
	StateMD StateCode = "MD"
	StateMA StateCode = "MA"
	StateMI StateCode = "MI"
	StateMN StateCode = "MN"
	StateMS StateCode = "MS"
	StateMO StateCode = "MO"
	StateMT StateCode = "MT"
	StateNE StateCode = "NE"
	StateNV StateCode = "NV"
	StateNH StateCode = "NH"
	StateNJ StateCode = "NJ"
	StateNM StateCode = "NM"
	StateNY StateCode = "NY"
	StateNC StateCode = "NC"
	StateND StateCode = "ND"
	StateOH StateCode = "OH"
	StateOK StateCode = "OK"
	StateOR StateCode = "OR"
	StatePA StateCode = "PA"
	StateRI StateCode = "RI"
	StateSC StateCode = "SC"
	StateSD StateCode = "SD"
	StateTN StateCode = "TN"
	StateTX StateCode = "TX"
	StateUT StateCode = "UT"
	StateVT StateCode = "VT"
	StateVA StateCode = "VA"
	StateWA StateCode = "WA"
	StateWV StateCode = "WV"
	StateWI StateCode = "WI"
	StateWY StateCode = "WY"
)

var stateNames = map[StateCode]string{
	StateAL: "Alabama",
	StateAK: "Alaska",
	StateAZ: "Arizona",
	StateAR: "Arkansas",
	StateCA: "California",
	StateCO: "Colorado",
	StateCT: "Connecticut",
	StateDE: "Delaware",
	StateDC: "District of Columbia",
	StateFL: "Florida",
	StateGA: "Georgia",
	StateHI: "Hawaii",
	StateID: "Idaho",
	StateIL: "Illinois",
	StateIN: "Indiana",
	StateIA: "Iowa",
	StateKS: "Kansas",
	StateKY: "Kentucky",
	StateLA: "Louisiana",
	StateME: "Maine",
	StateMD: "Maryland",
	StateMA: "Massachusetts",
	StateMI: "Michigan",
	StateMN: "Minnesota",
	StateMS: "Mississippi",
	StateMO: "Missouri",
	StateMT: "Montana",
	StateNE: "Nebraska",
	StateNV: "Nevada",
	StateNH: "New Hampshire",
	StateNJ: "New Jersey",
	StateNM: "New Mexico",
	StateNY: "New York",
	StateNC: "North Carolina",
	StateND: "North Dakota",
	StateOH: "Ohio",
	StateOK: "Oklahoma",
	StateOR: "Oregon",
	StatePA: "Pennsylvania",
	StateRI: "Rhode Island",
	StateSC: "South Carolina",
	StateSD: "South Dakota",
	StateTN: "Tennessee",
	StateTX: "Texas",
	StateUT: "Utah",
	StateVT: "Vermont",
	StateVA: "Virginia",
	StateWA: "Washington",
	StateWV: "West Virginia",
	StateWI: "Wisconsin",
	StateWY: "Wyoming",
}

// StateName returns the full display name for a code, or "" if the
// code is not part of the published enumeration.
func StateName(code StateCode) string {
	return stateNames[code]
}

// IsValidState reports whether code belongs to the published enumeration.
func IsValidState(code StateCode) bool {
	_, ok := stateNames[code]
	return ok
}

// AllStates returns the published jurisdiction enumeration in sorted
// order. This is the key set callers select from; any other key is
// rejected by the catalog.
func AllStates() []StateCode {
	codes := make([]StateCode, 0, len(stateNames))
	for c := range stateNames {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}
