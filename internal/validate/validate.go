// Package validate decides whether a scraped record is a legitimate member
// of a target catalog. It is a pure function over layered blacklists: the
// same record and category always produce the same verdict, which lets the
// merge engine re-run it over previously persisted data.
package validate

import (
	"regexp"
	"strings"

	"github.com/matforge/materialdb/internal/catalog"
)

// patternSet is a named, pre-compiled blacklist.
type patternSet struct {
	name     string
	patterns []*regexp.Regexp
}

func newPatternSet(name string, exprs []string) patternSet {
	compiled := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		compiled = append(compiled, regexp.MustCompile("(?i)"+expr))
	}
	return patternSet{name: name, patterns: compiled}
}

// match returns the source expression of the first matching pattern.
func (s patternSet) match(text string) (string, bool) {
	for _, p := range s.patterns {
		if p.MatchString(text) {
			return p.String(), true
		}
	}
	return "", false
}

// filamentSet rejects filament products from the resin catalog.
var filamentSet = newPatternSet("filament", []string{
	`\bfilament\b`, `\bpla\b`, `\bpetg\b`, `\bpet-cf\b`, `\btpu\b`,
	`\bpeba\b`, `\bpa-cf\b`, `\bnylon\b`, `\basa\b`, `\bspidermaker\b`,
	`フィラメント`,
})

// hardwareSet rejects printers, spare parts, and accessories from both
// catalogs.
var hardwareSet = newPatternSet("hardware", []string{
	`\bhalot\b`, `\bmage\b`, `\bcombo\b`, `\bplate\b`,
	`\btoolkit\b`, `\blcd\b`, `\bscreen\b`, `\bfep\b`, `\bnfep\b`, `\bfilm\b`,
	`\bcuring station\b`, `\bwashing station\b`, `\bwash.*cure\b`, `\bcure.*wash\b`,
	`\bheater\b`, `\bretrofit\b`, `\bdryer\b`, `\bkobra\b`, `\bneptune\b`,
	`\bnozzle\b`, `\bhotend\b`, `\bextruder\b`, `\bplatform\b`, `\bmagnetic\b`,
	`\bairpure\b`, `\btube\b`, `\bhub\b`, `\bkit\b`, `\bpart\b`, `\badhesive\b`,
	`\bsheet\b`, `\bglass\b`, `\bboard\b`, `\bcontroller\b`, `\bcable\b`,
	`\bmodule\b`, `\bsensor\b`, `\bfan\b`, `\bmotor\b`, `\bcamera\b`, `\bled\b`,
	`\bcfs\b`, `\bspacepi\b`, `\bstorage\b`, `\bbox\b`, `\bsystem\b`,
	`\bscrew\b`, `\bwiper\b`, `\bcutter\b`, `\bassembly\b`, `\bpcba\b`,
	`\bantenna\b`, `\bpower\s*supply\b`, `\bwire\b`, `\btools\b`, `\bshaft\b`,
	`\bnut\b`, `filter`, `switch`, `coupler`, `holder`, `ace\s*pro`, `belt`,
	`touchscreen`, `relay`, `spring`, `lock`, `\bhose\b`, `reusable\s*spool`,
	`coating`, `\bprinter\b`,
})

// spamSet rejects non-product listings: guides, promotions, services.
var spamSet = newPatternSet("spam", []string{
	`guide`, `review`, `recensione`, `guarantee`, `support`, `shipping`, `service`,
	`years of`, `black friday`, `deal`, `campfire`, `202.`, `bundle`, `pack`,
	`set`, `gift`, `protection`, `deposit`, `claim`, `link`, `coupon`, `discount`,
	`sale`, `clearance`, `refurbished`, `renewed`, `usado`, `reacondicionado`,
	`membership`, `subscription`, `prize`, `reward`, `seel`, `insurance`,
	`soleyin`, `3d\s*pen`,
})

// resinSet rejects resin products (and resin printers) from the filament
// catalog.
var resinSet = newPatternSet("resin", []string{
	`resin`, `wash`, `cure`, `dlp`, `sla`, `photon`, `mono`, `halot`,
	`creality\s*3d\s*printer`, `anycubic\s*3d\s*printer`, `elegoo\s*3d\s*printer`,
})

// absToken matches a standalone "abs" word; "ABS-Like" resins are exempted
// when "like" also appears in the name.
var absToken = regexp.MustCompile(`(?i)\babs\b`)

// Verdict is the result of a validation check. Matched and List are filled
// only on rejection, for diagnostics.
type Verdict struct {
	OK      bool
	Matched string
	List    string
}

func reject(set, pattern string) Verdict {
	return Verdict{Matched: pattern, List: set}
}

var accepted = Verdict{OK: true}

// Check decides whether a record named name with the given tags belongs in
// the target category. The rule activation is asymmetric on purpose: tags
// are noisier on filament-leaning catalogs, so the resin and hardware sets
// only see the name when the target is filament.
func Check(name string, tags []string, target catalog.Category) Verdict {
	nameLower := strings.ToLower(name)
	allText := nameLower
	for _, t := range tags {
		allText += " " + strings.ToLower(t)
	}

	switch target {
	case catalog.CategoryResin:
		for _, set := range []patternSet{filamentSet, hardwareSet, spamSet} {
			if pat, ok := set.match(allText); ok {
				return reject(set.name, pat)
			}
		}
		if absToken.MatchString(nameLower) && !strings.Contains(nameLower, "like") {
			return reject("filament", absToken.String())
		}
	case catalog.CategoryFilament:
		for _, set := range []patternSet{resinSet, hardwareSet} {
			if pat, ok := set.match(nameLower); ok {
				return reject(set.name, pat)
			}
		}
		if pat, ok := spamSet.match(allText); ok {
			return reject(spamSet.name, pat)
		}
	}
	return accepted
}

// Product checks a raw product against the target category.
func Product(p catalog.RawProduct, target catalog.Category) Verdict {
	return Check(p.Name, p.Tags, target)
}

// Entry checks a persisted entry against the target category; the merge
// engine uses this for its post-merge sweep.
func Entry(e catalog.Entry, target catalog.Category) Verdict {
	return Check(e.Name, e.Tags, target)
}
