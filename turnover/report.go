// SPDX-License-Identifier: MIT

package turnover

import "fmt"

// TieClass is a candidate's relationship to the round's sponsor.
type TieClass int

const (
	// TieSponsor is the sponsor itself.
	TieSponsor TieClass = iota
	// TiePartner is a current partner of the sponsor.
	TiePartner
	// TieStranger is anyone else.
	TieStranger
)

// String implements fmt.Stringer.
func (c TieClass) String() string {
	switch c {
	case TieSponsor:
		return "sponsor"
	case TiePartner:
		return "partner"
	case TieStranger:
		return "stranger"
	default:
		return fmt.Sprintf("TieClass(%d)", int(c))
	}
}

// ClassCounts tallies events per relationship class.
type ClassCounts struct {
	Sponsor  int `json:"sponsor"`
	Partner  int `json:"partner"`
	Stranger int `json:"stranger"`
}

func (cc *ClassCounts) add(c TieClass) {
	switch c {
	case TieSponsor:
		cc.Sponsor++
	case TiePartner:
		cc.Partner++
	default:
		cc.Stranger++
	}
}

func (cc *ClassCounts) merge(o ClassCounts) {
	cc.Sponsor += o.Sponsor
	cc.Partner += o.Partner
	cc.Stranger += o.Stranger
}

// Total returns the sum over all classes.
func (cc ClassCounts) Total() int { return cc.Sponsor + cc.Partner + cc.Stranger }

// RoundReport describes one committed round.
type RoundReport struct {
	// Round is the 0-based round index.
	Round    int    `json:"round"`
	Removed  string `json:"removed"`
	Sponsor  string `json:"sponsor"`
	Newcomer string `json:"newcomer"`
	// PartnerNumber is the sponsor's degree after the departure and before
	// the newcomer joined.
	PartnerNumber int `json:"partner_number"`
	// Trials counts candidates considered, per class.
	Trials ClassCounts `json:"trials"`
	// Ties counts ties formed, per class.
	Ties ClassCounts `json:"ties"`
}

// Report summarizes a whole run.
type Report struct {
	Rule   string      `json:"rule"`
	Rounds int         `json:"rounds"`
	Trials ClassCounts `json:"trials"`
	Ties   ClassCounts `json:"ties"`
	// Last is the final committed round; zero when Rounds == 0.
	Last RoundReport `json:"last"`
}

func (r *round) report(idx int, newcomer string) RoundReport {
	rr := RoundReport{
		Round:         idx,
		Removed:       r.removed,
		Sponsor:       r.sponsor,
		Newcomer:      newcomer,
		PartnerNumber: len(r.sponsorWeights),
		Trials:        r.trials,
	}
	for _, t := range r.ties {
		rr.Ties.add(t.class)
	}

	return rr
}
