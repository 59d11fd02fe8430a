// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package zk

import (
	"fmt"
	"time"
)

type Region string

const (
	RegionNA Region = "NA"
	RegionSA Region = "SA"
	RegionEU Region = "EU"
	RegionAF Region = "AF"
	RegionAS Region = "AS"
	RegionOC Region = "OC"
)

// Regions lists every region in display order.
var Regions = []Region{RegionNA, RegionSA, RegionEU, RegionAF, RegionAS, RegionOC}

func (r Region) Valid() bool {
	for _, v := range Regions {
		if r == v {
			return true
		}
	}
	return false
}

// ParseRegion accepts one of the six region codes.
func ParseRegion(s string) (Region, error) {
	r := Region(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRegion, s)
	}
	return r, nil
}

type Option string

const (
	OptionClimate Option = "climate"
	OptionHealth  Option = "health"
	OptionSpace   Option = "space"
	OptionAI      Option = "ai"
	OptionFreedom Option = "freedom"
)

// Options lists every ballot option in display order.
var Options = []Option{OptionClimate, OptionHealth, OptionSpace, OptionAI, OptionFreedom}

func (o Option) Valid() bool {
	for _, v := range Options {
		if o == v {
			return true
		}
	}
	return false
}

// ParseOption accepts one of the five ballot options.
func ParseOption(s string) (Option, error) {
	o := Option(s)
	if !o.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidOption, s)
	}
	return o, nil
}

// Credential is an anonymous secret token bound to a region at issuance.
type Credential struct {
	Token    string
	Region   Region
	IssuedAt time.Time
}

// Proof is what a voter submits: it never contains the token.
type Proof struct {
	Proof     string `json:"proof"`
	Nullifier string `json:"nullifier"`
	Option    Option `json:"option"`
}

type Poll struct {
	ID     string
	EndsAt time.Time
}

// Vote is one counted ballot as kept by the journal.
type Vote struct {
	PollID    string
	Nullifier string
	Option    Option
	Region    Region
}

// Results is a snapshot of one poll's tallies. It shares no memory with the ledger.
type Results struct {
	Tallies    map[Option]int            `json:"tallies"`
	Regions    map[Region]map[Option]int `json:"regions"`
	TotalVotes int                       `json:"totalVotes"`
}

func emptyTallies() map[Option]int {
	t := make(map[Option]int, len(Options))
	for _, o := range Options {
		t[o] = 0
	}
	return t
}

func emptyRegionTallies() map[Region]map[Option]int {
	t := make(map[Region]map[Option]int, len(Regions))
	for _, r := range Regions {
		t[r] = emptyTallies()
	}
	return t
}
